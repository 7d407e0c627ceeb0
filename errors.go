// errors.go - the parser's error taxonomy.
// SPDX-License-Identifier: GPL-3.0-or-later

package dralithus

import "fmt"

// ErrUnknownOption indicates that a token has the shape of an option
// but its flag spelling does not correspond to any recognized option.
type ErrUnknownOption struct {
	// Token is the offending token.
	Token string
}

var _ error = ErrUnknownOption{}

// Error implements error.
func (err ErrUnknownOption) Error() string {
	return fmt.Sprintf("unknown option: %s", err.Token)
}

// ErrMalformedOption indicates that a token starts with a hyphen but
// does not match any recognized option shape (e.g. "-v=", bare "-2").
type ErrMalformedOption struct {
	// Token is the offending token.
	Token string
}

var _ error = ErrMalformedOption{}

// Error implements error.
func (err ErrMalformedOption) Error() string {
	return fmt.Sprintf("malformed option: %s", err.Token)
}

// ErrMissingValue indicates that an option requiring a value was given
// neither an inline nor a lookahead value.
type ErrMissingValue struct {
	// Token is the offending token.
	Token string
}

var _ error = ErrMissingValue{}

// Error implements error.
func (err ErrMissingValue) Error() string {
	return fmt.Sprintf("missing value for option: %s", err.Token)
}

// ErrInvalidValueType indicates that a supplied value fails the
// option's syntactic predicate (e.g. "-v=abc").
type ErrInvalidValueType struct {
	// Token is the offending token.
	Token string

	// Value is the offending value.
	Value string
}

var _ error = ErrInvalidValueType{}

// Error implements error.
func (err ErrInvalidValueType) Error() string {
	return fmt.Sprintf("invalid value type for option %s: %q", err.Token, err.Value)
}

// ErrInvalidVerbosity indicates that a verbosity value parsed as an
// integer but is not positive.
type ErrInvalidVerbosity struct {
	// Value is the offending (parsed) verbosity.
	Value int
}

var _ error = ErrInvalidVerbosity{}

// Error implements error.
func (err ErrInvalidVerbosity) Error() string {
	return fmt.Sprintf("verbosity must be a positive number, not %d", err.Value)
}

// ErrInvalidEnvironmentName indicates that an environment value names
// something outside [AllowedEnvironments].
type ErrInvalidEnvironmentName struct {
	// Name is the offending environment name.
	Name string
}

var _ error = ErrInvalidEnvironmentName{}

// Error implements error.
func (err ErrInvalidEnvironmentName) Error() string {
	return fmt.Sprintf("invalid environment name: %s (allowed: %v)", err.Name, AllowedEnvironments.Slice())
}

// ErrDisallowedValue indicates that an option which accepts no value
// was given one (e.g. "-h=true").
type ErrDisallowedValue struct {
	// Token is the offending token.
	Token string
}

var _ error = ErrDisallowedValue{}

// Error implements error.
func (err ErrDisallowedValue) Error() string {
	return fmt.Sprintf("option does not accept a value: %s", err.Token)
}

// ErrNoEnvironments indicates that, after a successful scan, no
// environment option was encountered.
type ErrNoEnvironments struct{}

var _ error = ErrNoEnvironments{}

// Error implements error.
func (err ErrNoEnvironments) Error() string {
	return "no environments specified"
}

// ErrNoParameters indicates that, after a successful scan, the
// parameter set is empty.
type ErrNoParameters struct{}

var _ error = ErrNoParameters{}

// Error implements error.
func (err ErrNoParameters) Error() string {
	return "no parameters specified"
}
