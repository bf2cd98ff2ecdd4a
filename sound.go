package rytm

type (
	// Sound is a voice: machine, sample, filter, amp and LFO settings. A
	// sound lives either in the sound pool, in a kit, or in the work buffer;
	// the positional flags tell which.
	Sound struct {
		Index        int  `yaml:"-"`
		IsPool       bool `yaml:"-"`
		IsKit        bool `yaml:"-"`
		IsWorkBuffer bool `yaml:"-"`
		KitNumber    int  `yaml:"-"`
		Version      int
		Name         string

		MachineType   int
		AccentLevel   int
		ChromaticMode int

		Sample Sample
		Filter Filter
		Amp    Amp
		Lfo    Lfo

		VelModAmount [NumModSlots]int
		VelModTarget [NumModSlots]int
		AtModAmount  [NumModSlots]int
		AtModTarget  [NumModSlots]int

		EnvResetFilter bool
		VelToVol       bool
		LegacyFxSend   bool
	}

	Sample struct {
		Tune         int
		FineTune     int
		Number       int
		BitReduction int
		Start        float64
		End          float64
		Loop         bool
		Volume       int
	}

	Filter struct {
		Attack    int
		Hold      int
		Decay     int
		Release   int
		Cutoff    int
		Resonance int
		Type      int
		EnvAmount int
	}

	Amp struct {
		Attack     int
		Hold       int
		Decay      int
		Overdrive  int
		DelaySend  int
		ReverbSend int
		Pan        int
		Volume     int
	}

	Lfo struct {
		Speed       int
		Multiplier  int
		Fade        int
		Destination int
		Waveform    int
		StartPhase  int
		Mode        int
		Depth       float64
	}
)

func newSound() Sound {
	return Sound{
		Version:     Version,
		Name:        "INIT",
		MachineType: mustVariant(MachineTypeEnum, "bdhard"),
		AccentLevel: 32,
		Sample:      Sample{End: 120, Volume: 100},
		Filter: Filter{
			Hold:   127,
			Decay:  64,
			Cutoff: 127,
			Type:   mustVariant(FilterTypeEnum, "lp2"),
		},
		Amp: Amp{Hold: 127, Decay: 64, Volume: 100},
		Lfo: Lfo{
			Multiplier:  mustVariant(LfoMultiplierEnum, "x1"),
			Destination: mustVariant(LfoDestinationEnum, "unset"),
			Waveform:    mustVariant(LfoWaveformEnum, "tri"),
			Mode:        mustVariant(LfoModeEnum, "free"),
		},
		VelToVol: true,
	}
}

func newPoolSound(index int) Sound {
	s := newSound()
	s.Index = index
	s.IsPool = true
	return s
}

func newWorkBufferSound(index int) Sound {
	s := newSound()
	s.Index = index
	s.IsKit = true
	s.IsWorkBuffer = true
	return s
}
