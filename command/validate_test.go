package command

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/rytmctl/rytm"
)

func TestValidateDefaults(t *testing.T) {
	if err := ValidateProject(rytm.NewProject()); err != nil {
		t.Fatalf("a new project does not validate: %v", err)
	}
	p := rytm.NewProject()
	set(t, p, "pattern 3 12 7 plockset fxcompratio:max")
	set(t, p, "pattern 3 1 7 plockset lfodepth -3.25")
	set(t, p, "kit_wb sound 11 velmodamt 3 -128")
	if err := ValidateProject(p); err != nil {
		t.Fatalf("values accepted by set do not validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		breaks func(p *rytm.Project)
		ident  string
	}{
		{"speed", func(p *rytm.Project) { p.Patterns[4].Speed = 99 }, "speed"},
		{"note", func(p *rytm.Project) { p.WorkBuffer.Pattern.Tracks[1].Trigs[2].Note = 999 }, "note"},
		{"steps", func(p *rytm.Project) { p.Patterns[0].Tracks[12].Steps = 0 }, "steps"},
		{"lock", func(p *rytm.Project) {
			p.Patterns[0].Tracks[0].Trigs[0].Locks = map[rytm.Param]float64{rytm.TrigNote: 1}
		}, PlockSet},
		{"bpm", func(p *rytm.Project) { p.Patterns[9].BPM = math.NaN() }, "patternbpm"},
		{"slot", func(p *rytm.Project) { p.Kits[0].ControlIn2ModAmount[3] = 300 }, "ctrlin2modamt"},
		{"element", func(p *rytm.Project) { p.Kits[0].TrackRetrigRate[12] = -1 }, "trackretrigrate"},
		{"name", func(p *rytm.Project) { p.PoolSounds[0].Name = "" }, "name"},
		{"global", func(p *rytm.Project) { p.WorkBuffer.Global.Channels.Tracks[0] = 100 }, "trackchannels"},
	}
	for _, test := range tests {
		p := rytm.NewProject()
		test.breaks(p)
		err := ValidateProject(p)
		if KindOf(err) != SDKError {
			t.Errorf("%s: got %v, want an SDK error", test.name, err)
			continue
		}
		var e *Error
		if errors.As(err, &e); e.Identifier != test.ident {
			t.Errorf("%s: error names %q, want %q", test.name, e.Identifier, test.ident)
		}
	}
	if err := Validate(new(int)); err == nil {
		t.Error("validated an *int")
	}
}
