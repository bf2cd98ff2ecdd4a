package command

import (
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/rytmctl/rytm"
)

func get(t *testing.T, p *rytm.Project, line string) []Atom {
	t.Helper()
	out := make(ChanOutlet, 1)
	if err := NewDispatcher(nil).Get(p, ParseAtoms(line), out); err != nil {
		t.Fatalf("get %s: %v", line, err)
	}
	select {
	case ret := <-out:
		return ret
	default:
		t.Fatalf("get %s sent no result", line)
	}
	return nil
}

func set(t *testing.T, p *rytm.Project, line string) {
	t.Helper()
	if err := NewDispatcher(nil).Set(p, ParseAtoms(line)); err != nil {
		t.Fatalf("set %s: %v", line, err)
	}
}

func setAtoms(t *testing.T, p *rytm.Project, atoms []Atom) {
	t.Helper()
	if err := NewDispatcher(nil).Set(p, atoms); err != nil {
		t.Fatalf("set %s: %v", FormatAtoms(atoms), err)
	}
}

func getAtoms(t *testing.T, p *rytm.Project, atoms []Atom) []Atom {
	t.Helper()
	out := make(ChanOutlet, 1)
	if err := NewDispatcher(nil).Get(p, atoms, out); err != nil {
		t.Fatalf("get %s: %v", FormatAtoms(atoms), err)
	}
	return <-out
}

func assertAtoms(t *testing.T, got []Atom, want ...Atom) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %s, want %s", FormatAtoms(got), FormatAtoms(want))
	}
	for i := range got {
		if !got[i].Equal(want[i]) {
			t.Fatalf("got %s, want %s", FormatAtoms(got), FormatAtoms(want))
		}
	}
}

func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a %v, got none", want)
	}
	if got := KindOf(err); got != want {
		t.Fatalf("expected a %v, got %v (%v)", want, got, err)
	}
}

func TestSetGetTrigNote(t *testing.T) {
	p := rytm.NewProject()
	set(t, p, "pattern 3 5 10 note 64")
	if n := p.Patterns[3].Tracks[5].Trigs[10].Note; n != 64 {
		t.Fatalf("note is %d, want 64", n)
	}
	assertAtoms(t, get(t, p, "pattern 3 5 10 note"), Symbol("note"), Int(3), Int(64))
}

func TestSetGetKitEnum(t *testing.T) {
	p := rytm.NewProject()
	set(t, p, "kit 2 fxlfodestination:filter")
	assertAtoms(t, get(t, p, "kit 2 fxlfodestination"), Symbol("fxlfodestination"), Int(2), Symbol("filter"))
	assertAtoms(t, get(t, p, "kit 2 fxlfodestination:"), Symbol("fxlfodestination"), Int(2), Symbol("filter"))
}

func TestPlockSetGetClear(t *testing.T) {
	p := rytm.NewProject()
	set(t, p, "pattern 0 0 0 plockset ampvolume 90")
	assertAtoms(t, get(t, p, "pattern 0 0 0 plockget ampvolume"), Symbol("ampvolume"), Int(0), Int(90))
	set(t, p, "pattern 0 0 0 plockclear ampvolume")
	assertAtoms(t, get(t, p, "pattern 0 0 0 plockget ampvolume"), Symbol("ampvolume"), Int(0), Symbol(Unset))
}

func TestSoundIndexOutOfRange(t *testing.T) {
	p := rytm.NewProject()
	err := NewDispatcher(nil).Set(p, ParseAtoms("sound 12 ampvolume 10"))
	assertKind(t, err, SelectorError)
	if !reflect.DeepEqual(p, rytm.NewProject()) {
		t.Fatal("failed set mutated the project")
	}
}

func TestFailedSetLeavesObject(t *testing.T) {
	for _, line := range []string{
		"pattern 0 0 0 note 200",
		"pattern 0 0 0 note loud",
		"pattern 0 0 0 enable 2",
		"pattern 0 0 0 notelength:forever",
		"kit 0 name WAYTOOLONGFORAKIT",
		"sound 0 velmodamt 4 10",
		"sound 0 ampvolume 10 11",
		"pattern 0 0 0 plockset fxdelaytime 10",
		"pattern 0 12 0 plockset ampvolume 10",
	} {
		p := rytm.NewProject()
		if err := NewDispatcher(nil).Set(p, ParseAtoms(line)); err == nil {
			t.Errorf("set %s did not fail", line)
			continue
		}
		if !reflect.DeepEqual(p, rytm.NewProject()) {
			t.Errorf("failed set %s mutated the project", line)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		get  bool
		line string
		kind Kind
	}{
		{false, "", SelectorError},
		{false, "song 0 note 1", SelectorError},
		{false, "pattern", SelectorError},
		{false, "pattern x", SelectorError},
		{false, "pattern 128 masterlength 16", SelectorError},
		{false, "pattern 0 13 note 1", SelectorError},
		{false, "pattern 0 0 64 note 1", SelectorError},
		{false, "kit 0 sound 12 ampvolume 1", SelectorError},
		{false, "pattern 0", FormatError},
		{false, "pattern 0 0 0", FormatError},
		{false, "pattern 0 0 0 note", FormatError},
		{false, "pattern 0 1.5 note 1", FormatError},
		{false, "pattern 0 0 0 note 1 2", FormatError},
		{false, "kit 0 sound ampvolume", FormatError},
		{false, "sound 0 velmodamt x 1", FormatError},
		{true, "pattern 0 0 0 plockset ampvolume", FormatError},
		{false, "pattern 0 0 0 plockget ampvolume", FormatError},
		{false, "pattern 0 0 0 bogus 1", IdentifierError},
		{false, "kit 0 ampvolume 1", IdentifierError},
		{false, "pattern 0 version 2", IdentifierError},
		{false, "pattern 0 0 0 plockset fxdelaytimeonthegrid:1/4 ", IdentifierError},
		{false, "pattern 0 0 0 plockset bogus 1", IdentifierError},
		{false, "pattern 0 0 0 bogus:x", EnumError},
		{false, "pattern 0 0 0 notelength:forever", EnumError},
		{false, "pattern 0 0 0 notelength 1/4", EnumError},
		{false, "pattern 0 0 0 plockset filtertype:nope", EnumError},
		{false, "pattern 0 0 0 plockset filtertype lp2", EnumError},
		{false, "sound 0 ampvolume:5", EnumError},
		{false, "pattern 0 0 0 plockset ampvolume:5", EnumError},
		{false, "pattern 0 0 0 plockclear ampvolume:", EnumError},
		{false, "pattern 0 0 0 enable 2", ParameterError},
		{false, "pattern 0 0 0 note loud", ParameterError},
		{false, "sound 0 velmodamt 4 1", ParameterError},
		{false, "sound 0 name TOOLONGFORASOUND", ParameterError},
		{false, "sound 0 name 12", ParameterError},
		{false, "pattern 0 0 0 note 128", SDKError},
		{false, "pattern 0 0 0 plockset ampvolume 200", SDKError},
		{false, "pattern 0 0 0 plockset fxdelaytime 1", SDKError},
		{false, "pattern 0 12 0 plockclear ampvolume", SDKError},
	}
	d := NewDispatcher(nil)
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			p := rytm.NewProject()
			var err error
			if test.get {
				err = d.Get(p, ParseAtoms(test.line), nil)
			} else {
				err = d.Set(p, ParseAtoms(test.line))
			}
			assertKind(t, err, test.kind)
		})
	}
}

// fixture addresses one object of every kind, with the index echoed in the
// result tuple.
var fixtures = []struct {
	kind  ObjectKind
	path  string
	index int
}{
	{PatternKind, "pattern 3", 3},
	{TrackKind, "pattern 3 5", 3},
	{TrigKind, "pattern 3 5 10", 3},
	{KitKind, "kit 2", 2},
	{SoundKind, "sound 4", 4},
	{GlobalKind, "global 1", 1},
	{SettingsKind, "settings", 0},
}

func TestPlainRoundTrip(t *testing.T) {
	for _, fix := range fixtures {
		for _, id := range Identifiers(fix.kind) {
			if id.ReadOnly || id.Kind == EnumIdentifier {
				continue
			}
			var values []Atom
			info := id.Param.Info()
			switch {
			case id.IsName:
				values = Symbols("KICK", "BD_01", "ABCDEFGHIJKLMNO")
			case info.Kind == rytm.BoolParam:
				values = []Atom{Int(0), Int(1)}
			case info.Kind == rytm.FloatParam:
				values = []Atom{Float(info.Min), Float((info.Min + info.Max) / 2), Float(info.Max)}
			case info.Kind == rytm.IntParam:
				values = []Atom{Int(int(info.Min)), Int(int(info.Max))}
			default:
				for _, v := range info.Enum.Variants {
					values = append(values, Symbol(v))
				}
			}
			slots := []int{-1}
			if id.Slots > 0 {
				slots = []int{0, id.Slots - 1}
			}
			for _, slot := range slots {
				for _, v := range values {
					p := rytm.NewProject()
					addr := append(ParseAtoms(fix.path), Symbol(id.Name))
					want := []Atom{Symbol(id.Name), Int(fix.index)}
					if slot >= 0 {
						addr = append(addr, Int(slot))
						want = append(want, Int(slot))
					}
					setAtoms(t, p, append(append([]Atom{}, addr...), v))
					assertAtoms(t, getAtoms(t, p, addr), append(want, v)...)
				}
			}
		}
	}
}

func TestEnumRoundTrip(t *testing.T) {
	for _, fix := range fixtures {
		for _, id := range Identifiers(fix.kind) {
			if id.Kind != EnumIdentifier {
				continue
			}
			for _, variant := range id.Variants() {
				p := rytm.NewProject()
				addr := ParseAtoms(fix.path)
				want := []Atom{Symbol(id.Name), Int(fix.index)}
				var slot []Atom
				if id.Slots > 0 {
					slot = []Atom{Int(id.Slots - 1)}
					want = append(want, slot...)
				}
				setAtoms(t, p, append(append(append([]Atom{}, addr...), Symbol(id.Name+":"+variant)), slot...))
				got := getAtoms(t, p, append(append(append([]Atom{}, addr...), Symbol(id.Name)), slot...))
				assertAtoms(t, got, append(want, Symbol(variant))...)
			}
		}
	}
}

func TestSlotPlacement(t *testing.T) {
	p := rytm.NewProject()
	set(t, p, "sound 1 velmodamt 2 -100")
	set(t, p, "sound 1 velmodtarget:lfospeed 2")
	assertAtoms(t, get(t, p, "sound 1 velmodamt 2"), Symbol("velmodamt"), Int(1), Int(2), Int(-100))
	assertAtoms(t, get(t, p, "sound 1 velmodtarget 2"), Symbol("velmodtarget"), Int(1), Int(2), Symbol("lfospeed"))
	if p.PoolSounds[1].VelModAmount[2] != -100 || p.PoolSounds[1].VelModAmount[1] != 0 {
		t.Fatalf("velmodamt went to the wrong slot: %v", p.PoolSounds[1].VelModAmount)
	}
}

func TestKitElementsAndSounds(t *testing.T) {
	p := rytm.NewProject()
	set(t, p, "kit 5 tracklevel 12 99")
	if p.Kits[5].TrackLevel[12] != 99 {
		t.Fatalf("track level is %d", p.Kits[5].TrackLevel[12])
	}
	set(t, p, "kit 5 sound 11 name HAT")
	set(t, p, "kit 5 sound 11 filtertype:hp2")
	assertAtoms(t, get(t, p, "kit 5 sound 11 name"), Symbol("name"), Int(5), Symbol("HAT"))
	assertAtoms(t, get(t, p, "kit 5 sound 11 filtertype"), Symbol("filtertype"), Int(5), Symbol("hp2"))
	if p.Kits[5].Sounds[11].Name != "HAT" {
		t.Fatal("kit sound name was not set")
	}
	assertAtoms(t, get(t, p, "kit 5 sound 11 iskit"), Symbol("iskit"), Int(5), Int(1))

	set(t, p, "kit 5 trackretrigrate:1/8 3")
	set(t, p, "kit 5 trackretriglength 4 1/16")
	if p.Kits[5].TrackRetrigRate[3] != 6 {
		t.Errorf("retrig rate is %d", p.Kits[5].TrackRetrigRate[3])
	}
	assertAtoms(t, get(t, p, "kit 5 trackretrigrate:1/8 3"), get(t, p, "kit 5 trackretrigrate 3")...)
	if err := NewDispatcher(nil).Set(p, ParseAtoms("kit 5 trackretrigrate:1/7 3")); KindOf(err) != EnumError {
		t.Errorf("unknown variant gave %v", err)
	}
	if err := NewDispatcher(nil).Set(p, ParseAtoms("kit 5 tracklevel:5 3")); KindOf(err) != EnumError {
		t.Errorf("compound int element gave %v", err)
	}
}

func TestWorkBufferClasses(t *testing.T) {
	p := rytm.NewProject()
	set(t, p, "pattern_wb masterlength 32")
	set(t, p, "kit_wb fxdelayvolume 3")
	set(t, p, "sound_wb 7 ampvolume 7")
	set(t, p, "global_wb clocksend 1")
	if p.WorkBuffer.Pattern.MasterLength != 32 || p.WorkBuffer.Kit.Delay.Volume != 3 ||
		p.WorkBuffer.Sounds[7].Amp.Volume != 7 || !p.WorkBuffer.Global.ClockSend {
		t.Fatalf("work buffer was not updated: %+v", p.WorkBuffer)
	}
	assertAtoms(t, get(t, p, "pattern_wb iswb"), Symbol("iswb"), Int(0), Int(1))
	assertAtoms(t, get(t, p, "sound_wb 7 ampvolume"), Symbol("ampvolume"), Int(7), Int(7))
	if p.Patterns[0].MasterLength == 32 {
		t.Fatal("work buffer write reached the pool")
	}
}

func TestGetWithoutOutlet(t *testing.T) {
	p := rytm.NewProject()
	if err := NewDispatcher(nil).Get(p, ParseAtoms("pattern 0 masterlength"), nil); err != nil {
		t.Fatal(err)
	}
	full := make(ChanOutlet)
	if err := NewDispatcher(nil).Get(p, ParseAtoms("pattern 0 masterlength"), full); err != nil {
		t.Fatalf("a full outlet failed the get: %v", err)
	}
}

func TestDebugTrace(t *testing.T) {
	var b strings.Builder
	d := NewDispatcher(log.New(&b, "", 0))
	d.Debug = true
	if err := d.Set(rytm.NewProject(), ParseAtoms("pattern 3 5 10 note 64")); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"set pattern 3", "track 5", "trig 10", "trig note"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("trace %q does not mention %q", b.String(), want)
		}
	}
}
