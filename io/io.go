// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package io implements small printf-style helpers used for optional
// solver diagnostics. No package of this module imports io, and the
// default user-log callback (solverstate.AlwaysContinue) does not print.
package io

import (
	"fmt"
	"os"
)

// Pf prints a formatted message to standard output.
func Pf(msg string, args ...interface{}) {
	fmt.Printf(msg, args...)
}

// Pl prints a blank line.
func Pl() {
	fmt.Println()
}

// Ff formats a message without printing it.
func Ff(msg string, args ...interface{}) string {
	return fmt.Sprintf(msg, args...)
}

// Pfred prints a formatted message to standard error, flagging it as
// an important / failure diagnostic.
func Pfred(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
