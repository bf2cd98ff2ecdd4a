package command

import (
	"testing"

	"github.com/rytmctl/rytm"
)

func TestPlockTriState(t *testing.T) {
	p := rytm.NewProject()
	const trig = "pattern 7 2 63 "
	set(t, p, trig+"plockclear filtcutoff")
	assertAtoms(t, get(t, p, trig+"plockget filtcutoff"), Symbol("filtcutoff"), Int(7), Symbol(Unset))
	set(t, p, trig+"plockset filtcutoff 33")
	assertAtoms(t, get(t, p, trig+"plockget filtcutoff"), Symbol("filtcutoff"), Int(7), Int(33))
	set(t, p, trig+"plockclear filtcutoff")
	set(t, p, trig+"plockclear filtcutoff")
	assertAtoms(t, get(t, p, trig+"plockget filtcutoff"), Symbol("filtcutoff"), Int(7), Symbol(Unset))
	if n := len(p.Patterns[7].Tracks[2].Trigs[63].Locks); n != 0 {
		t.Fatalf("trig still holds %d locks", n)
	}
}

func TestPlockEnum(t *testing.T) {
	p := rytm.NewProject()
	set(t, p, "pattern 0 3 1 plockset lfowaveform:sqr")
	assertAtoms(t, get(t, p, "pattern 0 3 1 plockget lfowaveform"), Symbol("lfowaveform"), Int(0), Symbol("sqr"))
	assertAtoms(t, get(t, p, "pattern 0 3 1 plockget lfowaveform:"), Symbol("lfowaveform"), Int(0), Symbol("sqr"))
	set(t, p, "pattern 0 3 1 plockclear lfowaveform:")
	assertAtoms(t, get(t, p, "pattern 0 3 1 plockget lfowaveform"), Symbol("lfowaveform"), Int(0), Symbol(Unset))
	if p.Patterns[0].Tracks[3].Trigs[1].Locks == nil {
		t.Fatal("lock table was never allocated")
	}
}

func TestPlockFXTrack(t *testing.T) {
	p := rytm.NewProject()
	set(t, p, "pattern_wb 12 0 plockset fxdelaytime 100")
	set(t, p, "pattern_wb 12 0 plockset fxcompratio:1:8")
	set(t, p, "pattern_wb 12 0 plockset fxlfodepth -12.5")
	assertAtoms(t, get(t, p, "pattern_wb 12 0 plockget fxdelaytime"), Symbol("fxdelaytime"), Int(0), Int(100))
	assertAtoms(t, get(t, p, "pattern_wb 12 0 plockget fxcompratio"), Symbol("fxcompratio"), Int(0), Symbol("1:8"))
	assertAtoms(t, get(t, p, "pattern_wb 12 0 plockget fxlfodepth"), Symbol("fxlfodepth"), Int(0), Float(-12.5))
	if p.Patterns[0].Tracks[12].Trigs[0].Locks != nil {
		t.Fatal("work buffer lock reached the pool")
	}
}

// Every lockable parameter can be set to both ends of its range and read
// back through the plock path, on the track it belongs to.
func TestPlockRoundTrip(t *testing.T) {
	for name, param := range plockPlain {
		info := param.Info()
		track := 0
		if info.FX {
			track = rytm.FXTrack
		}
		addr := []Atom{Symbol("pattern"), Int(1), Int(track), Int(4)}
		var values []Atom
		switch info.Kind {
		case rytm.BoolParam:
			values = []Atom{Int(0), Int(1)}
		case rytm.FloatParam:
			values = []Atom{Float(info.Min), Float(info.Max)}
		default:
			values = []Atom{Int(int(info.Min)), Int(int(info.Max))}
		}
		for _, v := range values {
			p := rytm.NewProject()
			setAtoms(t, p, append(append([]Atom{}, addr...), Symbol(PlockSet), Symbol(name), v))
			got := getAtoms(t, p, append(append([]Atom{}, addr...), Symbol(PlockGet), Symbol(name)))
			assertAtoms(t, got, Symbol(name), Int(1), v)
		}
	}
}

func TestPlockIdentifiersAreFields(t *testing.T) {
	for name, param := range plockPlain {
		k, kok := kitTable.plain[name]
		s, sok := soundTable.plain[name]
		if !(kok && k.param == param) && !(sok && s.param == param) {
			t.Errorf("plock identifier %q is not a plain kit or sound field", name)
		}
	}
	for name, param := range plockEnums {
		k, kok := kitTable.enums[name]
		s, sok := soundTable.enums[name]
		if !(kok && k.param == param) && !(sok && s.param == param) {
			t.Errorf("plock identifier %q is not an enumerated kit or sound field", name)
		}
	}
	if _, ok := plockPlain["ampvolume"]; !ok {
		t.Error("ampvolume can not be locked")
	}
	if _, ok := plockEnums["fxcompattack"]; !ok {
		t.Error("fxcompattack can not be locked")
	}
	if len(PlockIdentifiers()) != len(plockPlain)+len(plockEnums) {
		t.Error("PlockIdentifiers does not list every identifier")
	}
}
