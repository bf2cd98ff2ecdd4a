package command

import "github.com/rytmctl/rytm"

var settingsTable = newTable(SettingsKind,
	[]*field[rytm.Settings]{
		readOnly("version", func(s *rytm.Settings) Atom { return Int(s.Version) }),
		scalar("projectbpm", rytm.SettingsProjectBPM, func(s *rytm.Settings) *float64 { return &s.ProjectBPM }),
		scalar("selectedtrack", rytm.SettingsSelectedTrack, func(s *rytm.Settings) *int { return &s.SelectedTrack }),
		scalar("selectedpage", rytm.SettingsSelectedPage, func(s *rytm.Settings) *int { return &s.SelectedPage }),
		slotted("mute", rytm.SettingsMute, rytm.NumSoundTracks, func(s *rytm.Settings, i int) *bool { return &s.Mute[i] }),
		scalar("fixedvelocity", rytm.SettingsFixedVelocity, func(s *rytm.Settings) *bool { return &s.FixedVelocity }),
		scalar("fixedvelocityamt", rytm.SettingsFixedVelocityAmount, func(s *rytm.Settings) *int { return &s.FixedVelocityAmount }),
		scalar("samplerecorderthr", rytm.SettingsSampleRecorderThreshold, func(s *rytm.Settings) *int { return &s.SampleRecorderThreshold }),
		scalar("samplerecordermonitor", rytm.SettingsSampleRecorderMonitor, func(s *rytm.Settings) *bool { return &s.SampleRecorderMonitor }),
	},
	[]*field[rytm.Settings]{
		scalar("parametermenuitem", rytm.SettingsParameterMenuItem, func(s *rytm.Settings) *int { return &s.ParameterMenuItem }),
		scalar("fxparametermenuitem", rytm.SettingsFxParameterMenuItem, func(s *rytm.Settings) *int { return &s.FxParameterMenuItem }),
		scalar("sequencermode", rytm.SettingsSequencerMode, func(s *rytm.Settings) *int { return &s.SequencerMode }),
		scalar("patternmode", rytm.SettingsPatternMode, func(s *rytm.Settings) *int { return &s.PatternMode }),
		scalar("samplerecordersource", rytm.SettingsSampleRecorderSource, func(s *rytm.Settings) *int { return &s.SampleRecorderSource }),
		scalar("samplerecorderrecordinglength", rytm.SettingsSampleRecordingLength, func(s *rytm.Settings) *int { return &s.SampleRecordingLength }),
	},
	nil,
)
