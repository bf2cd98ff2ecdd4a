package rytm

type (
	// Kit holds the FX track settings, the per-track settings of all 13
	// tracks and the 12 sounds loaded on the sound tracks.
	Kit struct {
		Index        int  `yaml:"-"`
		IsWorkBuffer bool `yaml:"-"`
		Version      int
		Name         string

		Delay      Delay
		Reverb     Reverb
		Comp       Compressor
		Lfo        FxLfo
		Distortion Distortion

		ControlIn1ModAmount [NumModSlots]int
		ControlIn1ModTarget [NumModSlots]int
		ControlIn2ModAmount [NumModSlots]int
		ControlIn2ModTarget [NumModSlots]int

		TrackLevel                [NumTracks]int
		TrackRetrigRate           [NumTracks]int
		TrackRetrigLength         [NumTracks]int
		TrackRetrigVelocityOffset [NumTracks]int
		TrackRetrigAlwaysOn       [NumTracks]bool

		Sounds [NumSoundTracks]Sound
	}

	Delay struct {
		Time        int
		TimeOnGrid  int
		PingPong    bool
		StereoWidth int
		Feedback    int
		HPF         int
		LPF         int
		ReverbSend  int
		Volume      int
	}

	Reverb struct {
		PreDelay int
		Decay    int
		Freq     int
		Gain     int
		HPF      int
		LPF      int
		Volume   int
	}

	Compressor struct {
		Threshold   int
		Attack      int
		Release     int
		Ratio       int
		SidechainEq int
		Gain        int
		Mix         int
		Volume      int
	}

	FxLfo struct {
		Speed       int
		Fade        int
		StartPhase  int
		Depth       float64
		Destination int
	}

	Distortion struct {
		DelayOverdrive int
		DelayPost      bool
		ReverbPost     bool
		Amount         int
		Symmetry       int
	}
)

func newKit(index int, workBuffer bool) Kit {
	k := Kit{
		Version: Version,
		Name:    "NEW KIT",
		Delay: Delay{
			Time:       23,
			TimeOnGrid: mustVariant(DelayTimeOnTheGridEnum, "off"),
			Feedback:   49,
			LPF:        127,
			Volume:     110,
		},
		Reverb: Reverb{PreDelay: 8, Decay: 45, Freq: 64, Gain: 32, LPF: 127, Volume: 110},
		Comp: Compressor{
			Threshold: 96,
			Attack:    mustVariant(CompAttackEnum, "1"),
			Release:   mustVariant(CompReleaseEnum, "a1"),
			Ratio:     mustVariant(CompRatioEnum, "1:4"),
			Mix:       127,
			Volume:    100,
		},
		Lfo: FxLfo{Destination: mustVariant(FxLfoDestinationEnum, "unset")},
	}
	for i := range k.TrackLevel {
		k.TrackLevel[i] = 100
		k.TrackRetrigRate[i] = mustVariant(RetrigRateEnum, "1/16")
		k.TrackRetrigLength[i] = mustVariant(NoteLengthEnum, "1/16")
	}
	for i := range k.Sounds {
		k.Sounds[i] = newSound()
	}
	k.relink(index, workBuffer)
	return k
}

func (k *Kit) relink(index int, workBuffer bool) {
	k.Index = index
	k.IsWorkBuffer = workBuffer
	for i := range k.Sounds {
		s := &k.Sounds[i]
		s.Index = i
		s.IsPool = false
		s.IsKit = true
		s.KitNumber = index
		s.IsWorkBuffer = workBuffer
	}
}

// Sound returns the sound loaded on sound track i.
func (k *Kit) Sound(i int) (*Sound, error) {
	if err := checkIndex("kit sound", i, NumSoundTracks); err != nil {
		return nil, err
	}
	return &k.Sounds[i], nil
}
