// assert.go - runtime assertions for invariants that must never fail.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package assert provides small runtime assertions for preconditions
// and invariants that indicate a programming error in this module, not
// a user-input error, if they are ever violated.
package assert

import "errors"

// True panics with the given message if condition is false.
func True(condition bool, message string) {
	if !condition {
		panic(errors.New(message))
	}
}
