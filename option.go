// option.go - the Option abstraction and its dispatcher.
// SPDX-License-Identifier: GPL-3.0-or-later

package dralithus

import "github.com/sumanthvepa/dralithus/pkg/lexer"

// Option is a recognized command-line option: a polymorphic capability
// implemented by [HelpOption], [VerbosityOption], [EnvironmentOption],
// and [MultiOption]. The option terminator ([OptionTerminator]) is not
// an [Option]: the parse driver recognizes and halts on it directly,
// instead of merging it.
type Option interface {
	// Flag returns the exact spelling encountered (e.g. "v", "verbose").
	Flag() string

	// Merge folds this option's value into cfg.
	Merge(cfg *Configuration)
}

// OptionTerminator names the "--" token, which halts option scanning
// and is never merged into a [Configuration]. The driver never
// constructs it: the terminator variant reports "--" through the
// terminator bool of its make function instead.
type OptionTerminator struct{}

// variant is the contract each concrete option type satisfies at the
// package level: a predicate that recognizes it, and a factory that
// builds it once recognized.
type variant struct {
	// name identifies the variant for diagnostics and test tables.
	name string

	// isOption reports whether (current, lookahead) is fully valid for
	// this variant: correct flag spelling and, if a value is required
	// or present inline, a value that passes the variant's domain
	// checks.
	isOption func(current, lookahead string, hasLookahead bool) bool

	// make constructs the option, precondition isOption(current, lookahead).
	// It returns the option (or the terminator sentinel as a plain
	// bool), whether the lookahead token was consumed, and an error if
	// construction fails. Every variant's isOption already evaluates
	// the value's domain (including the verbosity range), so no current
	// variant's make returns a non-nil error.
	make func(current, lookahead string, hasLookahead bool) (opt Option, terminator bool, skip bool, err error)
}

// variants lists every concrete option kind in dispatch order.
// OptionTerminator is checked first so that "--" is always recognized
// as the terminator rather than falling through to any other variant.
var variants = []variant{
	{name: "terminator", isOption: terminatorIsOption, make: terminatorMake},
	{name: "help", isOption: helpIsOption, make: helpMake},
	{name: "verbosity", isOption: verbosityIsOption, make: verbosityMake},
	{name: "environment", isOption: environmentIsOption, make: environmentMake},
	{name: "multi", isOption: multiIsOption, make: multiMake},
}

// supportedShortFlags and supportedLongFlags are the closed universe of
// flag spellings across every variant, used, once a token has passed
// the option-shape check, to distinguish an unknown option
// (ErrUnknownOption) from a known one with an invalid value
// (ErrInvalidValueType / ErrMissingValue and the like).
var (
	supportedShortFlags = NewStringSet("h", "v", "e")
	supportedLongFlags  = NewStringSet("help", "verbose", "verbosity", "env", "environment")
)

// dispatch tries each variant in order and returns the first whose
// isOption predicate matches.
func dispatch(current, lookahead string, hasLookahead bool) *variant {
	for i := range variants {
		if variants[i].isOption(current, lookahead, hasLookahead) {
			return &variants[i]
		}
	}
	return nil
}

// makeResult is the uniform shape of [makeOption]'s outcome: exactly
// one of isParam, terminator, or opt is meaningful, unless err is
// non-nil, in which case none are.
type makeResult struct {
	opt        Option
	terminator bool
	isParam    bool
	skip       bool
}

// makeOption is the top-level classifier: given the current token and
// its lookahead, decide whether current is a parameter, the terminator,
// a recognized option, or malformed/unknown.
func makeOption(current, lookahead string, hasLookahead bool) (makeResult, error) {
	if v := dispatch(current, lookahead, hasLookahead); v != nil {
		opt, terminator, skip, err := v.make(current, lookahead, hasLookahead)
		if err != nil {
			return makeResult{}, err
		}
		return makeResult{opt: opt, terminator: terminator, skip: skip}, nil
	}

	if lexer.MaybeParameter(current) {
		return makeResult{isParam: true}, nil
	}

	if !lexer.MaybeOption(current) {
		return makeResult{}, ErrMalformedOption{Token: current}
	}

	flag, _, _ := lexer.SplitFlagValue(current)
	if !supportedShortFlags.Contains(flag) && !supportedLongFlags.Contains(flag) {
		return makeResult{}, ErrUnknownOption{Token: current}
	}
	// The flag is recognized but no variant accepted it: the value is
	// missing, of the wrong type, or out of the option's domain, or the
	// option disallows a value it was given.
	return makeResult{}, classifyValueError(flag, current, lookahead, hasLookahead)
}

// classifyValueError refines a "right flag, wrong value" failure into
// the most specific error kind available, by asking each flag family
// directly.
func classifyValueError(flag, current, lookahead string, hasLookahead bool) error {
	switch flag {
	case "h", "help":
		return ErrDisallowedValue{Token: current}
	case "v", "verbose", "verbosity":
		return verbosityValueError(current, lookahead, hasLookahead)
	case "e", "env", "environment":
		return environmentValueError(current, lookahead, hasLookahead)
	default:
		return ErrUnknownOption{Token: current}
	}
}
