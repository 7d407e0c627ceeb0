// option_terminator.go - the -- option terminator.
// SPDX-License-Identifier: GPL-3.0-or-later

package dralithus

import (
	"github.com/sumanthvepa/dralithus/internal/assert"
	"github.com/sumanthvepa/dralithus/pkg/lexer"
)

func terminatorIsOption(current, _ string, _ bool) bool {
	return current == lexer.Terminator
}

// terminatorMake never returns an [Option]: the driver recognizes the
// terminator bool instead and never merges it.
func terminatorMake(current, lookahead string, hasLookahead bool) (Option, bool, bool, error) {
	assert.True(terminatorIsOption(current, lookahead, hasLookahead), "terminatorMake precondition violated")
	return nil, true, false, nil
}
