// environment_option.go - the -e / --env / --environment option.
// SPDX-License-Identifier: GPL-3.0-or-later

package dralithus

import (
	"strings"

	"github.com/sumanthvepa/dralithus/internal/assert"
	"github.com/sumanthvepa/dralithus/pkg/lexer"
)

// EnvironmentOption represents one --env contribution: a comma-separated
// list of environment names, each drawn from [AllowedEnvironments].
// Merging unions its value into [Configuration.Environments]; repeated
// environment options accumulate, so "-e local -e test" and
// "-e local,test" both yield {local, test}.
type EnvironmentOption struct {
	flag         string
	environments StringSet
}

var _ Option = EnvironmentOption{}

// Flag implements [Option].
func (o EnvironmentOption) Flag() string {
	return o.flag
}

// Merge implements [Option].
func (o EnvironmentOption) Merge(cfg *Configuration) {
	cfg.environments.Union(o.environments)
}

func isEnvironmentFlag(flag string) bool {
	return flag == "e" || flag == "env" || flag == "environment"
}

// validEnvironmentList reports whether s is non-empty and every
// comma-separated member names an allowed environment.
func validEnvironmentList(s string) bool {
	if s == "" {
		return false
	}
	for _, name := range strings.Split(s, ",") {
		if !AllowedEnvironments.Contains(name) {
			return false
		}
	}
	return true
}

// resolveEnvironmentValue implements the same inline-then-lookahead
// order as verbosity: an inline value takes precedence; otherwise a
// lookahead is consumed only if every one of its comma-separated
// members names an allowed environment, which is why "-e -- local"
// and "-e -h" both fall through to a missing-value error rather than
// treating "--" or "-h" as the value.
func resolveEnvironmentValue(inline string, hasInline bool, lookahead string, hasLookahead bool) (string, bool) {
	if hasInline {
		return inline, validEnvironmentList(inline)
	}
	if hasLookahead && validEnvironmentList(lookahead) {
		return lookahead, true
	}
	return "", false
}

func environmentIsOption(current, lookahead string, hasLookahead bool) bool {
	flag, inline, hasInline := lexer.SplitFlagValue(current)
	if !isEnvironmentFlag(flag) {
		return false
	}
	_, ok := resolveEnvironmentValue(inline, hasInline, lookahead, hasLookahead)
	return ok
}

func environmentMake(current, lookahead string, hasLookahead bool) (Option, bool, bool, error) {
	assert.True(environmentIsOption(current, lookahead, hasLookahead), "environmentMake precondition violated")
	flag, inline, hasInline := lexer.SplitFlagValue(current)
	value, _ := resolveEnvironmentValue(inline, hasInline, lookahead, hasLookahead)
	environments := NewStringSet()
	for _, name := range strings.Split(value, ",") {
		environments.Add(strings.TrimSpace(name))
	}
	skip := !hasInline && hasLookahead
	return EnvironmentOption{flag: flag, environments: environments}, false, skip, nil
}

// environmentValueError refines a right-flag-wrong-value environment
// failure: no usable value at all (neither inline nor a lookahead that
// passes the domain check) is ErrMissingValue; an inline value present
// but containing a disallowed name is ErrInvalidEnvironmentName.
func environmentValueError(current, _ string, _ bool) error {
	flag, inline, hasInline := lexer.SplitFlagValue(current)
	assert.True(isEnvironmentFlag(flag), "environmentValueError precondition violated")
	if !hasInline {
		return ErrMissingValue{Token: current}
	}
	for _, name := range strings.Split(inline, ",") {
		if !AllowedEnvironments.Contains(name) {
			return ErrInvalidEnvironmentName{Name: name}
		}
	}
	return ErrInvalidEnvironmentName{Name: inline}
}
