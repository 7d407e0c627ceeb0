// multi_option.go - clustered short options such as "-vh".
// SPDX-License-Identifier: GPL-3.0-or-later

package dralithus

import "github.com/sumanthvepa/dralithus/internal/assert"

// MultiOption represents a cluster of single-letter short options
// sharing one hyphen, e.g. "-vh" for "-v -h". Only help and verbosity
// may appear in a cluster, and a cluster carries no value: "-hv=1" is
// not a valid multi-option.
type MultiOption struct {
	flag    string
	options []Option
}

var _ Option = MultiOption{}

// multiShortFlags is the set of single letters a cluster may combine.
var multiShortFlags = NewStringSet("h", "v")

// Flag implements [Option].
func (o MultiOption) Flag() string {
	return o.flag
}

// Merge implements [Option], folding each clustered option in turn.
func (o MultiOption) Merge(cfg *Configuration) {
	for _, opt := range o.options {
		opt.Merge(cfg)
	}
}

func multiIsOption(current, _ string, _ bool) bool {
	if len(current) <= 2 || current[0] != '-' {
		return false
	}
	for _, c := range current[1:] {
		if !multiShortFlags.Contains(string(c)) {
			return false
		}
	}
	return true
}

// multiMake explodes current into single-letter sub-arguments and
// builds the matching component option for each one. Each component is
// built as if it stood alone with no lookahead, so a clustered "-v"
// always contributes exactly 1: the real lookahead belongs to whatever
// token follows the whole cluster, not to any one component of it, and
// a cluster never consumes it.
func multiMake(current, lookahead string, hasLookahead bool) (Option, bool, bool, error) {
	assert.True(multiIsOption(current, lookahead, hasLookahead), "multiMake precondition violated")
	letters := current[1:]
	options := make([]Option, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		sub := "-" + string(letters[i])
		switch {
		case helpIsOption(sub, "", false):
			opt, _, _, err := helpMake(sub, "", false)
			if err != nil {
				return nil, false, false, err
			}
			options = append(options, opt)
		case verbosityIsOption(sub, "", false):
			opt, _, _, err := verbosityMake(sub, "", false)
			if err != nil {
				return nil, false, false, err
			}
			options = append(options, opt)
		}
	}
	return MultiOption{flag: letters, options: options}, false, false, nil
}
