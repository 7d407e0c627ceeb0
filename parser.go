// parser.go - the exported parsing entry point.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dralithus parses the dralithus command line: a fixed set of
// options (help, verbosity, environment, and their clustered short
// forms) followed by one or more positional parameters.
package dralithus

// Parse scans args - the command line excluding the program name -
// into a [Configuration] and the set of remaining positional
// parameters.
//
// Parsing stops at the first token that is not a recognized option and
// does not start with a hyphen, or at an explicit "--" terminator;
// everything from that point on is a parameter, regardless of its
// shape. A hyphen-prefixed token before that point that is not a valid
// option is an error. Parse requires at least one
// environment and at least one parameter, returning [ErrNoEnvironments]
// or [ErrNoParameters] if either is missing.
func Parse(args []string) (Configuration, StringSet, error) {
	input := &deque[string]{values: append([]string(nil), args...)}

	cfg, err := scan(input)
	if err != nil {
		return Configuration{}, nil, err
	}

	parameters := NewStringSet(input.values...)

	if cfg.Environments().Len() == 0 {
		return Configuration{}, nil, ErrNoEnvironments{}
	}
	if parameters.Len() == 0 {
		return Configuration{}, nil, ErrNoParameters{}
	}

	return cfg, parameters, nil
}
