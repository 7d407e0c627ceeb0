// option_test.go
// SPDX-License-Identifier: GPL-3.0-or-later

package dralithus

import "testing"

func TestMakeOptionParameter(t *testing.T) {
	result, err := makeOption("sample", "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.isParam {
		t.Fatal("expected \"sample\" to be classified as a parameter")
	}
}

func TestMakeOptionUnknown(t *testing.T) {
	_, err := makeOption("-x", "", false)
	if !errorIs[ErrUnknownOption](err) {
		t.Fatalf("expected ErrUnknownOption, got %v (%T)", err, err)
	}
}

func TestMakeOptionMalformed(t *testing.T) {
	cases := []string{"-2", "-v="}
	for _, current := range cases {
		_, err := makeOption(current, "", false)
		if !errorIs[ErrMalformedOption](err) {
			t.Errorf("makeOption(%q): expected ErrMalformedOption, got %v (%T)", current, err, err)
		}
	}
}

func TestMakeOptionDisallowedValue(t *testing.T) {
	_, err := makeOption("-h=true", "", false)
	if !errorIs[ErrDisallowedValue](err) {
		t.Fatalf("expected ErrDisallowedValue, got %v (%T)", err, err)
	}
}

func TestMakeOptionTerminator(t *testing.T) {
	result, err := makeOption("--", "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.terminator {
		t.Fatal("expected \"--\" to be classified as the terminator")
	}
}

func TestDispatchOrder(t *testing.T) {
	if v := dispatch("--", "", false); v == nil || v.name != "terminator" {
		t.Fatalf("expected the terminator variant to win for \"--\", got %v", v)
	}
	if v := dispatch("-h", "", false); v == nil || v.name != "help" {
		t.Fatalf("expected the help variant to win for \"-h\", got %v", v)
	}
	if v := dispatch("-vh", "", false); v == nil || v.name != "multi" {
		t.Fatalf("expected the multi variant to win for \"-vh\", got %v", v)
	}
}
