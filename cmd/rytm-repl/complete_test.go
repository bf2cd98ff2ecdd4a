package main

import (
	"slices"
	"testing"
)

func TestComplete(t *testing.T) {
	for _, c := range []struct {
		line string
		want string
		head string
	}{
		{"qu", "query", ""},
		{":sa", ":save", ""},
		{"get pattern_", "pattern_wb", "get "},
		{"get pattern 3 5 10 plocks", "plockset", "get pattern 3 5 10 "},
		{"set kit 2 fxlfodestination:fil", "fxlfodestination:filter", "set kit 2 "},
		{"debug ", "0", "debug "},
	} {
		head, completions, tail := complete(c.line, len(c.line))
		if head != c.head || tail != "" {
			t.Errorf("complete(%q) split as %q, %q", c.line, head, tail)
		}
		if !slices.Contains(completions, c.want) {
			t.Errorf("complete(%q) = %v, want %q among them", c.line, completions, c.want)
		}
	}
}

func TestCompleteWordUnderCursor(t *testing.T) {
	for _, pos := range []int{10, 12, 13} {
		head, completions, tail := complete("get kit 1 sou 2", pos)
		if head != "get kit 1 " || tail != " 2" {
			t.Fatalf("pos %d: split as %q, %q", pos, head, tail)
		}
		if !slices.Contains(completions, "sound") {
			t.Errorf("pos %d: completions are %v", pos, completions)
		}
	}
	head, _, tail := complete("get kit 1 sou 2", 14)
	if head != "get kit 1 sou " || tail != "" {
		t.Errorf("pos 14: split as %q, %q", head, tail)
	}
}

func TestCompleteNothing(t *testing.T) {
	if _, completions, _ := complete(":save foo", 9); len(completions) != 0 {
		t.Errorf("file names were completed with %v", completions)
	}
	if _, completions, _ := complete("set kit 2 nosuchtype:", 21); len(completions) != 0 {
		t.Errorf("unknown type completed with %v", completions)
	}
}
