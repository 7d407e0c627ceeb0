// parse.go - the option-scanning driver.
// SPDX-License-Identifier: GPL-3.0-or-later

package dralithus

import (
	"fmt"
	"io"
)

// parseDebugWriter receives a step-by-step trace of the parse driver.
// Tests swap it for a buffer; production code leaves it discarding.
var parseDebugWriter io.Writer = io.Discard

// scan consumes args from the front, merging every recognized option
// into cfg, until it sees the first token that is not an option (which
// it leaves untouched) or the option terminator (which it consumes).
// Everything left in the deque afterward, in original order, is the
// parameter list.
//
// Unlike a permuting getopt, scanning never resumes once it stops:
// dralithus does not interleave options found after the first
// parameter back into the option set; once scanning sees a parameter
// or the terminator, it never walks further.
func scan(args *deque[string]) (Configuration, error) {
	cfg := newConfiguration()

	for !args.Empty() {
		current, _ := args.Front()
		lookahead, hasLookahead := args.Second()
		fmt.Fprintf(parseDebugWriter, "\nprocessing token: %q (lookahead=%q, has=%v)\n", current, lookahead, hasLookahead)

		result, err := makeOption(current, lookahead, hasLookahead)
		if err != nil {
			return Configuration{}, err
		}

		if result.isParam {
			fmt.Fprintf(parseDebugWriter, "%q is a parameter: stopping option scan\n", current)
			break
		}

		args.PopFront()
		if result.terminator {
			fmt.Fprint(parseDebugWriter, "consumed option terminator: stopping option scan\n")
			break
		}

		fmt.Fprintf(parseDebugWriter, "merging option: %+v\n", result.opt)
		result.opt.Merge(&cfg)
		if result.skip {
			args.PopFront()
		}
	}

	return cfg, nil
}
