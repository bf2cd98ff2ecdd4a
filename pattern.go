package rytm

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

type (
	// Pattern is a sequence of 13 tracks: 12 sound tracks and the FX track.
	// Index and IsWorkBuffer are positional metadata stamped by the owning
	// Project and are not part of the serialized form.
	Pattern struct {
		Index        int  `yaml:"-"`
		IsWorkBuffer bool `yaml:"-"`
		Version      int

		MasterLength   int
		MasterChange   int
		KitNumber      int
		SwingAmount    int
		GlobalQuantize int
		BPM            float64
		Speed          int
		TimeMode       int

		Tracks [NumTracks]Track
	}

	// Track holds the defaults its trigs fall back to and the 64 trigs.
	Track struct {
		Index        int  `yaml:"-"`
		PatternIndex int  `yaml:"-"`
		IsWorkBuffer bool `yaml:"-"`

		DefaultNote        int
		DefaultVelocity    int
		DefaultProbability int
		DefaultNoteLength  int
		Steps              int
		QuantizeAmount     int
		SendsMIDI          bool
		RootNote           int
		PadScale           int

		// Euclidean sequencer settings.
		Euclidean bool
		Pulses1   int
		Pulses2   int
		Rotation1 int
		Rotation2 int
		Rotation  int

		Trigs [NumTrigs]Trig
	}

	// Trig is one step of a track. Locks holds the parameter locks of the
	// step; a missing key means the parameter is not locked.
	Trig struct {
		Index      int `yaml:"-"`
		TrackIndex int `yaml:"-"`

		Enable bool
		Retrig bool
		Mute   bool
		Accent bool
		Swing  bool
		Slide  bool

		Note                 int
		Velocity             int
		RetrigVelocityOffset int
		SoundLock            int
		MicroTime            int
		NoteLength           int
		RetrigLength         int
		RetrigRate           int
		Condition            int

		Locks map[Param]float64 `yaml:",omitempty"`
	}
)

func mustVariant(e *Enum, name string) int {
	i, err := e.Parse(name)
	if err != nil {
		panic(err)
	}
	return i
}

func newPattern(index int, workBuffer bool) Pattern {
	p := Pattern{
		Version:      Version,
		MasterLength: 16,
		MasterChange: 16,
		SwingAmount:  50,
		BPM:          120,
		Speed:        mustVariant(SpeedEnum, "x1"),
		TimeMode:     mustVariant(TimeModeEnum, "normal"),
	}
	for i := range p.Tracks {
		p.Tracks[i] = newTrack()
	}
	p.relink(index, workBuffer)
	return p
}

func newTrack() Track {
	t := Track{
		DefaultNote:        60,
		DefaultVelocity:    100,
		DefaultProbability: 100,
		DefaultNoteLength:  mustVariant(NoteLengthEnum, "1/16"),
		Steps:              16,
	}
	for i := range t.Trigs {
		t.Trigs[i] = Trig{
			Note:         60,
			Velocity:     100,
			MicroTime:    mustVariant(MicroTimeEnum, "ongrid"),
			NoteLength:   mustVariant(NoteLengthEnum, "unset"),
			RetrigLength: mustVariant(NoteLengthEnum, "unset"),
			RetrigRate:   mustVariant(RetrigRateEnum, "1/16"),
		}
	}
	return t
}

func (p *Pattern) relink(index int, workBuffer bool) {
	p.Index = index
	p.IsWorkBuffer = workBuffer
	for i := range p.Tracks {
		t := &p.Tracks[i]
		t.Index = i
		t.PatternIndex = index
		t.IsWorkBuffer = workBuffer
		for j := range t.Trigs {
			t.Trigs[j].Index = j
			t.Trigs[j].TrackIndex = i
		}
	}
}

// Track returns the track at index i.
func (p *Pattern) Track(i int) (*Track, error) {
	if err := checkIndex("track", i, NumTracks); err != nil {
		return nil, err
	}
	return &p.Tracks[i], nil
}

// Trig returns the trig at index i.
func (t *Track) Trig(i int) (*Trig, error) {
	if err := checkIndex("trig", i, NumTrigs); err != nil {
		return nil, err
	}
	return &t.Trigs[i], nil
}

func (t *Track) IsFX() bool { return t.Index == FXTrack }

func (t *Trig) checkLock(p Param) error { return checkLock(p, t.TrackIndex) }

func checkLock(p Param, track int) error {
	info := p.Info()
	if !p.Valid() || !info.Lockable {
		return errors.Wrapf(ErrNotLockable, "%s (%d)", info.Name, int(p))
	}
	if info.FX && track != FXTrack {
		return errors.Wrap(ErrFXLockTrack, info.Name)
	}
	if !info.FX && track == FXTrack {
		return errors.Wrap(ErrSoundLockFX, info.Name)
	}
	return nil
}

// CheckLocks validates every lock of the trig as SetPlock would, for a trig
// on the given track. Trigs decoded from a dump carry no track index, so the
// caller names it.
func (t *Trig) CheckLocks(track int) error {
	for _, p := range t.Plocks() {
		if err := checkLock(p, track); err != nil {
			return err
		}
		v := t.Locks[p]
		if err := p.Check(v); err != nil {
			return err
		}
		if p.Info().Kind != FloatParam && v != math.Trunc(v) {
			return errors.Wrapf(ErrLockValue, "%s: %v", p, v)
		}
	}
	return nil
}

// SetPlock locks parameter p to v on this trig. Enumerated parameters take
// the variant index, booleans 0 or 1.
func (t *Trig) SetPlock(p Param, v float64) error {
	if err := t.checkLock(p); err != nil {
		return err
	}
	if err := p.Check(v); err != nil {
		return err
	}
	if t.Locks == nil {
		t.Locks = make(map[Param]float64)
	}
	t.Locks[p] = v
	return nil
}

// Plock returns the locked value of p and whether a lock is set.
func (t *Trig) Plock(p Param) (float64, bool, error) {
	if err := t.checkLock(p); err != nil {
		return 0, false, err
	}
	v, ok := t.Locks[p]
	return v, ok, nil
}

// ClearPlock removes the lock of p. Clearing a parameter that is not locked
// does nothing.
func (t *Trig) ClearPlock(p Param) error {
	if err := t.checkLock(p); err != nil {
		return err
	}
	delete(t.Locks, p)
	return nil
}

// Plocks returns the locked parameters of the trig in declaration order.
func (t *Trig) Plocks() []Param {
	ret := make([]Param, 0, len(t.Locks))
	for p := range t.Locks {
		ret = append(ret, p)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}
