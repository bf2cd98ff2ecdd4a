package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	var b bytes.Buffer
	if err := render(&b); err != nil {
		t.Fatal(err)
	}
	doc := b.String()
	for _, want := range []string{
		"## Pattern",
		"## Settings",
		"| `pattern` | 0..127 |",
		"| `pattern_wb` | none |",
		"`filtcutoff`",
		"plockset, plockget, plockclear",
		"`fxlfodestination:`",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("reference lacks %q", want)
		}
	}
}
