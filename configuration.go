// configuration.go - parsed configuration and string sets.
// SPDX-License-Identifier: GPL-3.0-or-later

package dralithus

// Configuration is the consolidated result of merging every recognized
// option encountered while scanning an argument vector.
//
// The default configuration, as produced by [newConfiguration], has
// help not requested, zero verbosity, and an empty environment set.
type Configuration struct {
	// RequiresHelp is true if at least one help flag (bare, long, or
	// as a component of a multi-option) was consumed.
	RequiresHelp bool

	// Verbosity is the sum of every verbosity contribution encountered.
	Verbosity int

	// environments is the union of every environment option's value.
	environments StringSet
}

// Environments returns the set of environment names consolidated from
// every environment option encountered.
func (c Configuration) Environments() StringSet {
	return c.environments
}

// newConfiguration returns the default [Configuration]: the starting
// point every merge folds into.
func newConfiguration() Configuration {
	return Configuration{
		RequiresHelp: false,
		Verbosity:    0,
		environments: NewStringSet(),
	}
}

// StringSet is an unordered set of strings, used both for
// [Configuration.Environments] and for the parameter set returned by
// [Parse].
type StringSet map[string]struct{}

// NewStringSet returns a [StringSet] containing the given items.
func NewStringSet(items ...string) StringSet {
	set := make(StringSet, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// Contains reports whether s is a member of the set.
func (set StringSet) Contains(s string) bool {
	_, found := set[s]
	return found
}

// Add inserts s into the set.
func (set StringSet) Add(s string) {
	set[s] = struct{}{}
}

// Union adds every member of other into set.
func (set StringSet) Union(other StringSet) {
	for s := range other {
		set.Add(s)
	}
}

// Len returns the number of members in the set.
func (set StringSet) Len() int {
	return len(set)
}

// Slice returns the set's members as a slice, in unspecified order.
func (set StringSet) Slice() []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	return out
}

// AllowedEnvironments is the closed set of valid environment names.
//
// Centralizing the set here keeps [EnvironmentOption]'s domain
// predicate, the diagnostic text in [ErrInvalidEnvironmentName], and
// this documentation in sync.
var AllowedEnvironments = NewStringSet("local", "development", "test", "staging", "production")
