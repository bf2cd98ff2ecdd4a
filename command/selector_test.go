package command

import (
	"fmt"
	"testing"

	"github.com/rytmctl/rytm"
)

func TestSelectorBounds(t *testing.T) {
	for _, c := range Classes() {
		if !c.Indexed() {
			sel, rest, err := ParseSelector([]Atom{Symbol(c.String()), Int(5), Symbol("x")})
			if err != nil || sel.Class != c || len(rest) != 2 {
				t.Errorf("%v consumed an index: %v %v %v", c, sel, rest, err)
			}
			continue
		}
		for _, i := range []int{0, c.Slots() - 1} {
			sel, rest, err := ParseSelector([]Atom{Symbol(c.String()), Int(i)})
			if err != nil || sel.Class != c || sel.Index != i || len(rest) != 0 {
				t.Errorf("%v %d: %v %v", c, i, sel, err)
			}
		}
		for _, i := range []int{-1, c.Slots()} {
			_, _, err := ParseSelector([]Atom{Symbol(c.String()), Int(i)})
			if KindOf(err) != SelectorError {
				t.Errorf("%v %d: got %v, want a selector error", c, i, err)
			}
		}
		if _, _, err := ParseSelector([]Atom{Symbol(c.String())}); KindOf(err) != SelectorError {
			t.Errorf("%v without an index: %v", c, err)
		}
		if _, _, err := ParseSelector([]Atom{Symbol(c.String()), Float(1)}); KindOf(err) != SelectorError {
			t.Errorf("%v with a float index: %v", c, err)
		}
	}
}

func TestSelectorRanges(t *testing.T) {
	want := map[string]int{
		"pattern":  rytm.NumPatterns,
		"kit":      rytm.NumKits,
		"sound":    rytm.NumPoolSounds,
		"sound_wb": rytm.NumSoundTracks,
		"global":   rytm.NumGlobals,
	}
	for _, c := range Classes() {
		if c.Slots() != want[c.String()] {
			t.Errorf("%v takes %d indices, want %d", c, c.Slots(), want[c.String()])
		}
	}
}

func TestPathBounds(t *testing.T) {
	p := rytm.NewProject()
	for _, track := range []int{0, rytm.NumTracks - 1} {
		for _, trig := range []int{0, rytm.NumTrigs - 1} {
			set(t, p, fmt.Sprintf("pattern 0 %d %d velocity 1", track, trig))
		}
	}
	for _, line := range []string{
		"pattern 0 -1 0 velocity 1",
		"pattern 0 13 0 velocity 1",
		"pattern 0 0 -1 velocity 1",
		"pattern 0 0 64 velocity 1",
		"kit 0 sound -1 ampvolume 1",
		"kit 0 sound 12 ampvolume 1",
	} {
		assertKind(t, NewDispatcher(nil).Set(p, ParseAtoms(line)), SelectorError)
	}
}
