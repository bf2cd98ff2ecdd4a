package command

import "github.com/rytmctl/rytm"

var soundTable = newTable(SoundKind,
	[]*field[rytm.Sound]{
		readOnly("version", func(s *rytm.Sound) Atom { return Int(s.Version) }),
		readOnly("index", func(s *rytm.Sound) Atom { return Int(s.Index) }),
		readOnly("ispool", func(s *rytm.Sound) Atom { return Bool(s.IsPool) }),
		readOnly("iskit", func(s *rytm.Sound) Atom { return Bool(s.IsKit) }),
		readOnly("iswb", func(s *rytm.Sound) Atom { return Bool(s.IsWorkBuffer) }),
		readOnly("kitnumber", func(s *rytm.Sound) Atom { return Int(s.KitNumber) }),
		named("name", func(s *rytm.Sound) *string { return &s.Name }),
		scalar("accentlevel", rytm.SoundAccentLevel, func(s *rytm.Sound) *int { return &s.AccentLevel }),

		scalar("ampattack", rytm.SoundAmpAttack, func(s *rytm.Sound) *int { return &s.Amp.Attack }),
		scalar("amphold", rytm.SoundAmpHold, func(s *rytm.Sound) *int { return &s.Amp.Hold }),
		scalar("ampdecay", rytm.SoundAmpDecay, func(s *rytm.Sound) *int { return &s.Amp.Decay }),
		scalar("ampoverdrive", rytm.SoundAmpOverdrive, func(s *rytm.Sound) *int { return &s.Amp.Overdrive }),
		scalar("ampdelaysend", rytm.SoundAmpDelaySend, func(s *rytm.Sound) *int { return &s.Amp.DelaySend }),
		scalar("ampreverbsend", rytm.SoundAmpReverbSend, func(s *rytm.Sound) *int { return &s.Amp.ReverbSend }),
		scalar("amppan", rytm.SoundAmpPan, func(s *rytm.Sound) *int { return &s.Amp.Pan }),
		scalar("ampvolume", rytm.SoundAmpVolume, func(s *rytm.Sound) *int { return &s.Amp.Volume }),

		scalar("filtattack", rytm.SoundFilterAttack, func(s *rytm.Sound) *int { return &s.Filter.Attack }),
		scalar("filthold", rytm.SoundFilterHold, func(s *rytm.Sound) *int { return &s.Filter.Hold }),
		scalar("filtdecay", rytm.SoundFilterDecay, func(s *rytm.Sound) *int { return &s.Filter.Decay }),
		scalar("filtrelease", rytm.SoundFilterRelease, func(s *rytm.Sound) *int { return &s.Filter.Release }),
		scalar("filtcutoff", rytm.SoundFilterCutoff, func(s *rytm.Sound) *int { return &s.Filter.Cutoff }),
		scalar("filtres", rytm.SoundFilterResonance, func(s *rytm.Sound) *int { return &s.Filter.Resonance }),
		scalar("filtenvamt", rytm.SoundFilterEnvAmount, func(s *rytm.Sound) *int { return &s.Filter.EnvAmount }),

		scalar("lfospeed", rytm.SoundLfoSpeed, func(s *rytm.Sound) *int { return &s.Lfo.Speed }),
		scalar("lfofade", rytm.SoundLfoFade, func(s *rytm.Sound) *int { return &s.Lfo.Fade }),
		scalar("lfostartphase", rytm.SoundLfoStartPhase, func(s *rytm.Sound) *int { return &s.Lfo.StartPhase }),
		scalar("lfodepth", rytm.SoundLfoDepth, func(s *rytm.Sound) *float64 { return &s.Lfo.Depth }),

		scalar("samptune", rytm.SoundSampleTune, func(s *rytm.Sound) *int { return &s.Sample.Tune }),
		scalar("sampfinetune", rytm.SoundSampleFineTune, func(s *rytm.Sound) *int { return &s.Sample.FineTune }),
		scalar("sampnumber", rytm.SoundSampleNumber, func(s *rytm.Sound) *int { return &s.Sample.Number }),
		scalar("sampbitreduction", rytm.SoundSampleBitReduction, func(s *rytm.Sound) *int { return &s.Sample.BitReduction }),
		scalar("sampstart", rytm.SoundSampleStart, func(s *rytm.Sound) *float64 { return &s.Sample.Start }),
		scalar("sampend", rytm.SoundSampleEnd, func(s *rytm.Sound) *float64 { return &s.Sample.End }),
		scalar("samploopflag", rytm.SoundSampleLoop, func(s *rytm.Sound) *bool { return &s.Sample.Loop }),
		scalar("sampvolume", rytm.SoundSampleVolume, func(s *rytm.Sound) *int { return &s.Sample.Volume }),

		slotted("velmodamt", rytm.SoundVelModAmount, rytm.NumModSlots, func(s *rytm.Sound, i int) *int { return &s.VelModAmount[i] }),
		slotted("atmodamt", rytm.SoundAtModAmount, rytm.NumModSlots, func(s *rytm.Sound, i int) *int { return &s.AtModAmount[i] }),

		scalar("envresetfilter", rytm.SoundEnvResetFilter, func(s *rytm.Sound) *bool { return &s.EnvResetFilter }),
		scalar("veltovol", rytm.SoundVelToVol, func(s *rytm.Sound) *bool { return &s.VelToVol }),
		scalar("legacyfxsend", rytm.SoundLegacyFxSend, func(s *rytm.Sound) *bool { return &s.LegacyFxSend }),
	},
	[]*field[rytm.Sound]{
		scalar("machinetype", rytm.SoundMachineType, func(s *rytm.Sound) *int { return &s.MachineType }),
		scalar("lfodestination", rytm.SoundLfoDestination, func(s *rytm.Sound) *int { return &s.Lfo.Destination }),
		slotted("velmodtarget", rytm.SoundVelModTarget, rytm.NumModSlots, func(s *rytm.Sound, i int) *int { return &s.VelModTarget[i] }),
		slotted("atmodtarget", rytm.SoundAtModTarget, rytm.NumModSlots, func(s *rytm.Sound, i int) *int { return &s.AtModTarget[i] }),
		scalar("filtertype", rytm.SoundFilterType, func(s *rytm.Sound) *int { return &s.Filter.Type }),
		scalar("lfomultiplier", rytm.SoundLfoMultiplier, func(s *rytm.Sound) *int { return &s.Lfo.Multiplier }),
		scalar("lfowaveform", rytm.SoundLfoWaveform, func(s *rytm.Sound) *int { return &s.Lfo.Waveform }),
		scalar("lfomode", rytm.SoundLfoMode, func(s *rytm.Sound) *int { return &s.Lfo.Mode }),
		scalar("chromaticmode", rytm.SoundChromaticMode, func(s *rytm.Sound) *int { return &s.ChromaticMode }),
	},
	nil,
)
