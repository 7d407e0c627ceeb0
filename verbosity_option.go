// verbosity_option.go - the -v / --verbose / --verbosity option.
// SPDX-License-Identifier: GPL-3.0-or-later

package dralithus

import (
	"github.com/sumanthvepa/dralithus/internal/assert"
	"github.com/sumanthvepa/dralithus/pkg/lexer"
)

// VerbosityOption represents one verbosity contribution. Merging adds
// its value into [Configuration.Verbosity]; repeated verbosity options
// accumulate rather than replace, so "-v -v" and "-vv" both yield 2.
type VerbosityOption struct {
	flag  string
	value int
}

var _ Option = VerbosityOption{}

// Flag implements [Option].
func (o VerbosityOption) Flag() string {
	return o.flag
}

// Merge implements [Option].
func (o VerbosityOption) Merge(cfg *Configuration) {
	cfg.Verbosity += o.value
}

func isVerbosityFlag(flag string) bool {
	return flag == "v" || flag == "verbose" || flag == "verbosity"
}

// parseUnsignedInt parses s as an unsigned decimal integer, the only
// shape accepted as a verbosity value. Unlike strconv.Atoi it rejects a
// leading sign, so "-2" is a type error rather than a negative domain
// value.
func parseUnsignedInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// verbosityIsOption reports whether current is a verbosity flag whose
// value - inline, taken from the lookahead, or implicit - is valid.
func verbosityIsOption(current, lookahead string, hasLookahead bool) bool {
	flag, inline, hasInline := lexer.SplitFlagValue(current)
	if !isVerbosityFlag(flag) {
		return false
	}
	n, ok := resolveVerbosityValue(inline, hasInline, lookahead, hasLookahead)
	return ok && n >= 1
}

// resolveVerbosityValue resolves a verbosity value in priority order:
// an inline value takes precedence, then a lookahead that parses as an
// unsigned integer, then the implicit default of 1.
func resolveVerbosityValue(inline string, hasInline bool, lookahead string, hasLookahead bool) (int, bool) {
	if hasInline {
		return parseUnsignedInt(inline)
	}
	if hasLookahead {
		if n, ok := parseUnsignedInt(lookahead); ok {
			return n, true
		}
	}
	return 1, true
}

// verbosityConsumesLookahead reports whether verbosityMake should treat
// the lookahead token as this option's value rather than leaving it for
// the next driver iteration.
func verbosityConsumesLookahead(inline string, hasInline bool, lookahead string, hasLookahead bool) bool {
	if hasInline || !hasLookahead {
		return false
	}
	_, ok := parseUnsignedInt(lookahead)
	return ok
}

func verbosityMake(current, lookahead string, hasLookahead bool) (Option, bool, bool, error) {
	assert.True(verbosityIsOption(current, lookahead, hasLookahead), "verbosityMake precondition violated")
	flag, inline, hasInline := lexer.SplitFlagValue(current)
	value, _ := resolveVerbosityValue(inline, hasInline, lookahead, hasLookahead)
	skip := verbosityConsumesLookahead(inline, hasInline, lookahead, hasLookahead)
	return VerbosityOption{flag: flag, value: value}, false, skip, nil
}

// verbosityValueError refines a right-flag-wrong-value verbosity
// failure into a specific error: a value that isn't an unsigned
// integer at all is a type error; one that parses but is out of domain
// (zero) is a domain error. The value checked is the inline one if
// present, else the lookahead: a lookahead reaches this function only
// when it parses as zero, since a lookahead that does not parse never
// stops verbosityIsOption from succeeding (it just falls back to the
// implicit default of 1).
func verbosityValueError(current, lookahead string, _ bool) error {
	flag, inline, hasInline := lexer.SplitFlagValue(current)
	assert.True(isVerbosityFlag(flag), "verbosityValueError precondition violated")
	value := inline
	if !hasInline {
		value = lookahead
	}
	n, ok := parseUnsignedInt(value)
	if !ok {
		return ErrInvalidValueType{Token: current, Value: value}
	}
	return ErrInvalidVerbosity{Value: n}
}
