// configuration_test.go
// SPDX-License-Identifier: GPL-3.0-or-later

package dralithus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewConfigurationDefaults(t *testing.T) {
	cfg := newConfiguration()
	if cfg.RequiresHelp {
		t.Error("RequiresHelp should default to false")
	}
	if cfg.Verbosity != 0 {
		t.Errorf("Verbosity = %d, want 0", cfg.Verbosity)
	}
	if cfg.Environments().Len() != 0 {
		t.Errorf("Environments() should default to empty, got %v", cfg.Environments().Slice())
	}
}

func TestStringSet(t *testing.T) {
	set := NewStringSet("a", "b")
	if !set.Contains("a") || !set.Contains("b") {
		t.Fatal("expected set to contain both seed members")
	}
	if set.Contains("c") {
		t.Fatal("did not expect set to contain c")
	}

	set.Add("c")
	if !set.Contains("c") || set.Len() != 3 {
		t.Fatalf("Add did not grow the set correctly: %v", set.Slice())
	}

	other := NewStringSet("c", "d")
	set.Union(other)
	if diff := cmp.Diff(NewStringSet("a", "b", "c", "d"), set); diff != "" {
		t.Fatal(diff)
	}
}

func TestAllowedEnvironmentsIsClosed(t *testing.T) {
	for _, name := range []string{"local", "development", "test", "staging", "production"} {
		if !AllowedEnvironments.Contains(name) {
			t.Errorf("expected %q to be an allowed environment", name)
		}
	}
	if AllowedEnvironments.Contains("prod") {
		t.Error("did not expect the abbreviation \"prod\" to be allowed")
	}
}
