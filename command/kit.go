package command

import "github.com/rytmctl/rytm"

var kitTable = newTable(KitKind,
	[]*field[rytm.Kit]{
		readOnly("version", func(k *rytm.Kit) Atom { return Int(k.Version) }),
		readOnly("index", func(k *rytm.Kit) Atom { return Int(k.Index) }),
		readOnly("iswb", func(k *rytm.Kit) Atom { return Bool(k.IsWorkBuffer) }),
		named("name", func(k *rytm.Kit) *string { return &k.Name }),

		scalar("fxdelaytime", rytm.FxDelayTime, func(k *rytm.Kit) *int { return &k.Delay.Time }),
		scalar("fxdelaypingpong", rytm.FxDelayPingPong, func(k *rytm.Kit) *bool { return &k.Delay.PingPong }),
		scalar("fxdelaystereowidth", rytm.FxDelayStereoWidth, func(k *rytm.Kit) *int { return &k.Delay.StereoWidth }),
		scalar("fxdelayfeedback", rytm.FxDelayFeedback, func(k *rytm.Kit) *int { return &k.Delay.Feedback }),
		scalar("fxdelayhpf", rytm.FxDelayHPF, func(k *rytm.Kit) *int { return &k.Delay.HPF }),
		scalar("fxdelaylpf", rytm.FxDelayLPF, func(k *rytm.Kit) *int { return &k.Delay.LPF }),
		scalar("fxdelayreverbsend", rytm.FxDelayReverbSend, func(k *rytm.Kit) *int { return &k.Delay.ReverbSend }),
		scalar("fxdelayvolume", rytm.FxDelayVolume, func(k *rytm.Kit) *int { return &k.Delay.Volume }),

		scalar("fxreverbpredelay", rytm.FxReverbPreDelay, func(k *rytm.Kit) *int { return &k.Reverb.PreDelay }),
		scalar("fxreverbdecay", rytm.FxReverbDecay, func(k *rytm.Kit) *int { return &k.Reverb.Decay }),
		scalar("fxreverbfreq", rytm.FxReverbFreq, func(k *rytm.Kit) *int { return &k.Reverb.Freq }),
		scalar("fxreverbgain", rytm.FxReverbGain, func(k *rytm.Kit) *int { return &k.Reverb.Gain }),
		scalar("fxreverbhpf", rytm.FxReverbHPF, func(k *rytm.Kit) *int { return &k.Reverb.HPF }),
		scalar("fxreverblpf", rytm.FxReverbLPF, func(k *rytm.Kit) *int { return &k.Reverb.LPF }),
		scalar("fxreverbvolume", rytm.FxReverbVolume, func(k *rytm.Kit) *int { return &k.Reverb.Volume }),

		scalar("fxcompthreshold", rytm.FxCompThreshold, func(k *rytm.Kit) *int { return &k.Comp.Threshold }),
		scalar("fxcompgain", rytm.FxCompGain, func(k *rytm.Kit) *int { return &k.Comp.Gain }),
		scalar("fxcompmix", rytm.FxCompMix, func(k *rytm.Kit) *int { return &k.Comp.Mix }),
		scalar("fxcompvolume", rytm.FxCompVolume, func(k *rytm.Kit) *int { return &k.Comp.Volume }),

		scalar("fxlfospeed", rytm.FxLfoSpeed, func(k *rytm.Kit) *int { return &k.Lfo.Speed }),
		scalar("fxlfofade", rytm.FxLfoFade, func(k *rytm.Kit) *int { return &k.Lfo.Fade }),
		scalar("fxlfostartphase", rytm.FxLfoStartPhase, func(k *rytm.Kit) *int { return &k.Lfo.StartPhase }),
		scalar("fxlfodepth", rytm.FxLfoDepth, func(k *rytm.Kit) *float64 { return &k.Lfo.Depth }),

		scalar("fxdistdelayoverdrive", rytm.FxDistDelayOverdrive, func(k *rytm.Kit) *int { return &k.Distortion.DelayOverdrive }),
		scalar("fxdistdelaypost", rytm.FxDistDelayPost, func(k *rytm.Kit) *bool { return &k.Distortion.DelayPost }),
		scalar("fxdistreverbpost", rytm.FxDistReverbPost, func(k *rytm.Kit) *bool { return &k.Distortion.ReverbPost }),
		scalar("fxdistamount", rytm.FxDistAmount, func(k *rytm.Kit) *int { return &k.Distortion.Amount }),
		scalar("fxdistsymmetry", rytm.FxDistSymmetry, func(k *rytm.Kit) *int { return &k.Distortion.Symmetry }),

		slotted("ctrlin1modamt", rytm.KitControlInModAmount, rytm.NumModSlots, func(k *rytm.Kit, i int) *int { return &k.ControlIn1ModAmount[i] }),
		slotted("ctrlin2modamt", rytm.KitControlInModAmount, rytm.NumModSlots, func(k *rytm.Kit, i int) *int { return &k.ControlIn2ModAmount[i] }),
	},
	[]*field[rytm.Kit]{
		scalar("fxdelaytimeonthegrid", rytm.FxDelayTimeOnTheGrid, func(k *rytm.Kit) *int { return &k.Delay.TimeOnGrid }),
		scalar("fxcompattack", rytm.FxCompAttack, func(k *rytm.Kit) *int { return &k.Comp.Attack }),
		scalar("fxcomprelease", rytm.FxCompRelease, func(k *rytm.Kit) *int { return &k.Comp.Release }),
		scalar("fxcompratio", rytm.FxCompRatio, func(k *rytm.Kit) *int { return &k.Comp.Ratio }),
		scalar("fxcompsidechaineq", rytm.FxCompSidechainEq, func(k *rytm.Kit) *int { return &k.Comp.SidechainEq }),
		scalar("fxlfodestination", rytm.FxLfoDestination, func(k *rytm.Kit) *int { return &k.Lfo.Destination }),
		slotted("ctrlin1modtarget", rytm.KitControlInModTarget, rytm.NumModSlots, func(k *rytm.Kit, i int) *int { return &k.ControlIn1ModTarget[i] }),
		slotted("ctrlin2modtarget", rytm.KitControlInModTarget, rytm.NumModSlots, func(k *rytm.Kit, i int) *int { return &k.ControlIn2ModTarget[i] }),
	},
	[]*field[rytm.Kit]{
		slotted("tracklevel", rytm.KitTrackLevel, rytm.NumTracks, func(k *rytm.Kit, i int) *int { return &k.TrackLevel[i] }),
		slotted("trackretrigrate", rytm.KitTrackRetrigRate, rytm.NumTracks, func(k *rytm.Kit, i int) *int { return &k.TrackRetrigRate[i] }),
		slotted("trackretriglength", rytm.KitTrackRetrigLength, rytm.NumTracks, func(k *rytm.Kit, i int) *int { return &k.TrackRetrigLength[i] }),
		slotted("trackretrigveloffset", rytm.KitTrackRetrigVelocityOffset, rytm.NumTracks, func(k *rytm.Kit, i int) *int { return &k.TrackRetrigVelocityOffset[i] }),
		slotted("trackretrigalwayson", rytm.KitTrackRetrigAlwaysOn, rytm.NumTracks, func(k *rytm.Kit, i int) *bool { return &k.TrackRetrigAlwaysOn[i] }),
	},
)
