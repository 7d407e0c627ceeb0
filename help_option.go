// help_option.go - the -h / --help option.
// SPDX-License-Identifier: GPL-3.0-or-later

package dralithus

import (
	"github.com/sumanthvepa/dralithus/internal/assert"
	"github.com/sumanthvepa/dralithus/pkg/lexer"
)

// HelpOption represents a request for help. Its value is always true;
// merging it is idempotent, so repeating "-h" any number of times has
// the same effect as supplying it once.
type HelpOption struct {
	flag string
}

var _ Option = HelpOption{}

// Flag implements [Option].
func (o HelpOption) Flag() string {
	return o.flag
}

// Merge implements [Option].
func (o HelpOption) Merge(cfg *Configuration) {
	cfg.RequiresHelp = true
}

func helpIsOption(current, _ string, _ bool) bool {
	flag, _, hasValue := lexer.SplitFlagValue(current)
	return !hasValue && (flag == "h" || flag == "help")
}

func helpMake(current, lookahead string, hasLookahead bool) (Option, bool, bool, error) {
	assert.True(helpIsOption(current, lookahead, hasLookahead), "helpMake precondition violated")
	flag, _, _ := lexer.SplitFlagValue(current)
	return HelpOption{flag: flag}, false, false, nil
}
