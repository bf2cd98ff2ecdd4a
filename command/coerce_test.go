package command

import (
	"testing"

	"github.com/rytmctl/rytm"
)

func TestBool01(t *testing.T) {
	for _, a := range []Atom{Int(0), Int(1)} {
		if _, err := Bool01("enable", a); err != nil {
			t.Errorf("Bool01(%v): %v", a, err)
		}
	}
	for _, a := range []Atom{Int(-1), Int(2), Float(2), Float(1), Symbol("on")} {
		_, err := Bool01("enable", a)
		if KindOf(err) != ParameterError {
			t.Errorf("Bool01(%v %v) = %v, want a parameter error", a.Kind, a, err)
		}
	}
}

func TestNumber(t *testing.T) {
	if v, err := Number("note", Int(-3)); err != nil || v != -3 {
		t.Errorf("Number(-3) = %v, %v", v, err)
	}
	if v, err := Number("note", Float(0.25)); err != nil || v != 0.25 {
		t.Errorf("Number(0.25) = %v, %v", v, err)
	}
	if _, err := Number("note", Symbol("64")); KindOf(err) != ParameterError {
		t.Errorf("Number accepted a symbol: %v", err)
	}
}

func TestName(t *testing.T) {
	if n, err := Name("name", Symbol("SN 808")); err != nil || n != "SN 808" {
		t.Errorf("Name = %q, %v", n, err)
	}
	for _, a := range []Atom{Symbol(""), Symbol("0123456789ABCDEF"), Symbol("café"), Int(1)} {
		if _, err := Name("name", a); KindOf(err) != ParameterError {
			t.Errorf("Name(%q) = %v, want a parameter error", a.String(), err)
		}
	}
}

func TestVariant(t *testing.T) {
	i, err := Variant("notelength", rytm.TrigNoteLength, Int(16))
	if err != nil || rytm.NoteLengthEnum.Variant(i) != "16" {
		t.Errorf("Variant(16) = %d, %v", i, err)
	}
	i, err = Variant("notelength", rytm.TrigNoteLength, Symbol("1/16"))
	if err != nil || rytm.NoteLengthEnum.Variant(i) != "1/16" {
		t.Errorf("Variant(1/16) = %d, %v", i, err)
	}
	if _, err := Variant("notelength", rytm.TrigNoteLength, Symbol("5")); KindOf(err) != EnumError {
		t.Errorf("Variant(5) = %v, want an enum error", err)
	}
	if _, err := Variant("notelength", rytm.TrigNoteLength, Float(0.5)); KindOf(err) != ParameterError {
		t.Errorf("Variant(0.5) = %v, want a parameter error", err)
	}
}

func TestParamValue(t *testing.T) {
	v, err := paramValue("note", rytm.TrigNote, Float(64.9))
	if err != nil || v != 64 {
		t.Errorf("integer params truncate floats, got %v, %v", v, err)
	}
	if a := paramAtom(rytm.TrigNote, 64); !a.Equal(Int(64)) {
		t.Errorf("paramAtom(note) = %v", a)
	}
	if a := paramAtom(rytm.SoundFilterType, 1); !a.Equal(Symbol("lp1")) {
		t.Errorf("paramAtom(filtertype) = %v", a)
	}
}

func TestIndex(t *testing.T) {
	if _, err := index("velmodamt", Int(3), 4); err != nil {
		t.Error(err)
	}
	if _, err := index("velmodamt", Int(-1), 4); KindOf(err) != ParameterError {
		t.Errorf("index(-1) = %v", err)
	}
	if _, err := index("velmodamt", Symbol("one"), 4); KindOf(err) != FormatError {
		t.Errorf("index(one) = %v", err)
	}
}
