package rytm

// Settings is the device wide state that is not part of any pattern, kit or
// global slot: tempo, selection, mutes and the sample recorder.
type Settings struct {
	Version int

	ProjectBPM          float64
	SelectedTrack       int
	SelectedPage        int
	Mute                [NumSoundTracks]bool
	FixedVelocity       bool
	FixedVelocityAmount int

	ParameterMenuItem   int
	FxParameterMenuItem int
	SequencerMode       int
	PatternMode         int

	SampleRecorderSource    int
	SampleRecorderThreshold int
	SampleRecorderMonitor   bool
	SampleRecordingLength   int
}

func newSettings() Settings {
	return Settings{
		Version:               Version,
		ProjectBPM:            120,
		FixedVelocityAmount:   100,
		SequencerMode:         mustVariant(SequencerModeEnum, "normal"),
		PatternMode:           mustVariant(PatternModeEnum, "sequential"),
		SampleRecordingLength: mustVariant(SampleRecordingLengthEnum, "max"),
	}
}
