package external_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rytmctl/rytm"
	"github.com/rytmctl/rytm/command"
	"github.com/rytmctl/rytm/external"
	"github.com/rytmctl/rytm/sysex"
)

func TestQueryIsSerial(t *testing.T) {
	var got []byte
	o := external.New(external.Serial(func(v int) { got = append(got, byte(v)) }), nil, nil)
	if err := o.Message(command.ParseAtoms("query sound_wb 3")); err != nil {
		t.Fatal(err)
	}
	want, _ := sysex.Query(0, rytm.SoundObject, 3, true)
	if !bytes.Equal(got, want) {
		t.Fatalf("query sent % X, want % X", got, want.Bytes())
	}
	for _, line := range []string{"query", "query pattern 128", "query settings 1", "query pattern 1 2"} {
		if err := o.Message(command.ParseAtoms(line)); err == nil {
			t.Errorf("%s did not fail", line)
		}
	}
}

// A dump sent by one object and fed byte by byte into another replaces the
// addressed object there.
func TestSendReceive(t *testing.T) {
	dst := external.New(nil, nil, nil)
	var feedErr error
	src := external.New(external.Serial(func(v int) {
		if err := dst.Int(v); err != nil && feedErr == nil {
			feedErr = err
		}
	}), nil, nil)
	for _, line := range []string{
		"set kit 7 name SNAREKIT",
		"set kit 7 sound 1 ampvolume 42",
		"send kit 7",
	} {
		if err := src.Message(command.ParseAtoms(line)); err != nil {
			t.Fatalf("%s: %v", line, err)
		}
	}
	if feedErr != nil {
		t.Fatal(feedErr)
	}
	dst.Project(func(p *rytm.Project) {
		if p.Kits[7].Name != "SNAREKIT" || p.Kits[7].Sounds[1].Amp.Volume != 42 {
			t.Fatalf("kit was not received: %q %d", p.Kits[7].Name, p.Kits[7].Sounds[1].Amp.Volume)
		}
		if p.Kits[7].Index != 7 || p.Kits[6].Name == "SNAREKIT" {
			t.Fatal("received kit landed in the wrong slot")
		}
	})
}

func TestSetGet(t *testing.T) {
	out := make(command.ChanOutlet, 4)
	o := external.New(nil, out, nil)
	if err := o.Anything("set", command.ParseAtoms("global 2 metronomevolume 80")); err != nil {
		t.Fatal(err)
	}
	if err := o.Anything("get", command.ParseAtoms("global 2 metronomevolume")); err != nil {
		t.Fatal(err)
	}
	if got := command.FormatAtoms(<-out); got != "metronomevolume 2 80" {
		t.Fatalf("get sent %q", got)
	}
	err := o.Anything("get", command.ParseAtoms("global 4 metronomevolume"))
	if command.KindOf(err) != command.SelectorError {
		t.Fatalf("global 4: %v", err)
	}
}

func TestSelectors(t *testing.T) {
	o := external.New(nil, nil, nil)
	if err := o.Anything("bang", nil); err == nil || !strings.Contains(err.Error(), "bang") {
		t.Fatalf("unknown selector: %v", err)
	}
	for _, args := range []string{"", "2", "on", "1 1"} {
		if err := o.Anything("debug", command.ParseAtoms(args)); err == nil {
			t.Errorf("debug %q did not fail", args)
		}
	}
	if err := o.Anything("debug", command.ParseAtoms("1")); err != nil {
		t.Fatal(err)
	}
	if err := o.Int(0x42); err == nil {
		t.Fatal("a byte outside of SysEx was accepted")
	}
}
