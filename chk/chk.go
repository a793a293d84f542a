// Copyright 2016 The Gosl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chk implements assertions and panic-based precondition checks
// used throughout the solver core. It is an internal assertion mechanism,
// not a replacement for the structured errors returned at package
// boundaries (see the minimize package).
package chk

import "fmt"

// Panic panics with a formatted message. Use for invariant violations that
// indicate a bug in this package itself (e.g. an uninitialised receiver, a
// slice-length mismatch between two values this package constructed).
func Panic(msg string, args ...interface{}) {
	panic(fmt.Sprintf(msg, args...))
}

// PanicSimple panics with an unformatted message.
func PanicSimple(msg string) {
	panic(msg)
}

// Err returns a formatted error. Use at public API boundaries where a
// precondition violation must be surfaced to the caller instead of
// panicking.
func Err(msg string, args ...interface{}) error {
	return fmt.Errorf(msg, args...)
}

// IntAssert panics if a != b. Typically used to check vector lengths.
func IntAssert(a, b int) {
	if a != b {
		Panic("size assertion failed: %d != %d", a, b)
	}
}

// IntAssertLessThan panics unless a < b.
func IntAssertLessThan(a, b int) {
	if !(a < b) {
		Panic("size assertion failed: %d is not < %d", a, b)
	}
}
