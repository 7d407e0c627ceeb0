// environment_option_test.go
// SPDX-License-Identifier: GPL-3.0-or-later

package dralithus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnvironmentIsOption(t *testing.T) {
	cases := []struct {
		name               string
		current, lookahead string
		hasLookahead       bool
		want               bool
	}{
		{"inline single", "-e=local", "", false, true},
		{"inline list", "--environment=local,staging", "", false, true},
		{"inline with unknown name", "--environment=local,bogus", "", false, false},
		{"lookahead consumed", "-e", "local", true, true},
		{"lookahead terminator rejected", "-e", "--", true, false},
		{"lookahead option rejected", "-e", "-h", true, false},
		{"missing value", "-e", "", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := environmentIsOption(tc.current, tc.lookahead, tc.hasLookahead); got != tc.want {
				t.Fatalf("environmentIsOption(%q, %q, %v) = %v, want %v", tc.current, tc.lookahead, tc.hasLookahead, got, tc.want)
			}
		})
	}
}

func TestEnvironmentMake(t *testing.T) {
	opt, _, skip, err := environmentMake("--environment=local,staging", "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skip {
		t.Fatal("inline value should not consume lookahead")
	}
	env, ok := opt.(EnvironmentOption)
	if !ok {
		t.Fatalf("expected EnvironmentOption, got %T", opt)
	}
	if diff := cmp.Diff(NewStringSet("local", "staging"), env.environments); diff != "" {
		t.Fatal(diff)
	}

	opt, _, skip, err = environmentMake("-e", "test", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !skip {
		t.Fatal("lookahead value should be consumed")
	}
	env = opt.(EnvironmentOption)
	if diff := cmp.Diff(NewStringSet("test"), env.environments); diff != "" {
		t.Fatal(diff)
	}
}

func TestEnvironmentMergeUnions(t *testing.T) {
	cfg := newConfiguration()
	EnvironmentOption{environments: NewStringSet("local")}.Merge(&cfg)
	EnvironmentOption{environments: NewStringSet("test")}.Merge(&cfg)
	if diff := cmp.Diff(NewStringSet("local", "test"), cfg.environments); diff != "" {
		t.Fatal(diff)
	}
}

func TestEnvironmentValueError(t *testing.T) {
	if err := environmentValueError("-e", "", false); !errorIs[ErrMissingValue](err) {
		t.Fatalf("expected ErrMissingValue, got %v (%T)", err, err)
	}
	if err := environmentValueError("--environment=local,bogus", "", false); !errorIs[ErrInvalidEnvironmentName](err) {
		t.Fatalf("expected ErrInvalidEnvironmentName, got %v (%T)", err, err)
	}
}
