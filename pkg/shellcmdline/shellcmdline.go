// shellcmdline.go - shell-quoted command-line helpers.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package shellcmdline reads and writes dralithus argument vectors as a
// single shell-quoted string, for callers that store or log a command
// line as one field (a config file value, a history entry) rather than
// as a native argv.
package shellcmdline

import "github.com/kballard/go-shellquote"

// Split parses a shell-quoted command line into its individual tokens,
// the form [dralithus.Parse] expects.
func Split(line string) ([]string, error) {
	return shellquote.Split(line)
}

// Join renders args back into a single shell-quoted string, escaping
// any token that contains whitespace or shell metacharacters.
func Join(args ...string) string {
	return shellquote.Join(args...)
}
