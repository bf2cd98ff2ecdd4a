package rytm

import (
	"math"
	"strings"
)

type (
	// Param identifies one field of the object model. ParamInfo documents
	// its kind and range, and whether it can be locked per trig.
	Param int

	ParamKind int

	ParamInfo struct {
		Name     string    // human readable name, used in error messages
		Kind     ParamKind //
		Min, Max float64   // inclusive; for enums the variant index range
		Enum     *Enum     // variant domain for EnumParam
		Lockable bool      // can be overridden per trig
		FX       bool      // belongs to the FX track; locks only on track 12
	}
)

const (
	IntParam ParamKind = iota
	FloatParam
	BoolParam
	EnumParam
)

func (k ParamKind) String() string {
	switch k {
	case IntParam:
		return "int"
	case FloatParam:
		return "float"
	case BoolParam:
		return "bool"
	case EnumParam:
		return "enum"
	}
	return "unknown"
}

const (
	NoParam Param = iota

	PatternMasterLength
	PatternMasterChange
	PatternKitNumber
	PatternSwingAmount
	PatternGlobalQuantize
	PatternBPM
	PatternSpeed
	PatternTimeMode

	TrackDefaultNote
	TrackDefaultVelocity
	TrackDefaultProbability
	TrackSteps
	TrackQuantizeAmount
	TrackSendsMIDI
	TrackEuclidean
	TrackPulses1
	TrackPulses2
	TrackRotation1
	TrackRotation2
	TrackRotation
	TrackRootNote
	TrackPadScale
	TrackDefaultNoteLength

	TrigEnable
	TrigRetrig
	TrigMute
	TrigAccent
	TrigSwing
	TrigSlide
	TrigNote
	TrigVelocity
	TrigRetrigVelocityOffset
	TrigSoundLock
	TrigMicroTime
	TrigNoteLength
	TrigRetrigLength
	TrigRetrigRate
	TrigCondition

	FxDelayTime
	FxDelayPingPong
	FxDelayStereoWidth
	FxDelayFeedback
	FxDelayHPF
	FxDelayLPF
	FxDelayReverbSend
	FxDelayVolume
	FxDelayTimeOnTheGrid
	FxReverbPreDelay
	FxReverbDecay
	FxReverbFreq
	FxReverbGain
	FxReverbHPF
	FxReverbLPF
	FxReverbVolume
	FxCompThreshold
	FxCompGain
	FxCompMix
	FxCompVolume
	FxCompAttack
	FxCompRelease
	FxCompRatio
	FxCompSidechainEq
	FxLfoSpeed
	FxLfoFade
	FxLfoStartPhase
	FxLfoDepth
	FxLfoDestination
	FxDistDelayOverdrive
	FxDistDelayPost
	FxDistReverbPost
	FxDistAmount
	FxDistSymmetry

	KitControlInModAmount
	KitControlInModTarget
	KitTrackLevel
	KitTrackRetrigRate
	KitTrackRetrigLength
	KitTrackRetrigVelocityOffset
	KitTrackRetrigAlwaysOn

	SoundAccentLevel
	SoundAmpAttack
	SoundAmpHold
	SoundAmpDecay
	SoundAmpOverdrive
	SoundAmpDelaySend
	SoundAmpReverbSend
	SoundAmpPan
	SoundAmpVolume
	SoundFilterAttack
	SoundFilterHold
	SoundFilterDecay
	SoundFilterRelease
	SoundFilterCutoff
	SoundFilterResonance
	SoundFilterEnvAmount
	SoundFilterType
	SoundLfoSpeed
	SoundLfoFade
	SoundLfoStartPhase
	SoundLfoDepth
	SoundLfoDestination
	SoundLfoMultiplier
	SoundLfoWaveform
	SoundLfoMode
	SoundSampleTune
	SoundSampleFineTune
	SoundSampleNumber
	SoundSampleBitReduction
	SoundSampleStart
	SoundSampleEnd
	SoundSampleLoop
	SoundSampleVolume
	SoundVelModAmount
	SoundVelModTarget
	SoundAtModAmount
	SoundAtModTarget
	SoundEnvResetFilter
	SoundVelToVol
	SoundLegacyFxSend
	SoundMachineType
	SoundChromaticMode

	GlobalKitReloadOnChange
	GlobalQuantizeLiveRecord
	GlobalAutoTrackSwitch
	GlobalRouteToMain
	GlobalSendToFx
	GlobalClockReceive
	GlobalClockSend
	GlobalTransportReceive
	GlobalTransportSend
	GlobalProgramChangeReceive
	GlobalProgramChangeSend
	GlobalReceiveNotes
	GlobalReceiveCCNRPN
	GlobalMetronomeActive
	GlobalMetronomePreRollBars
	GlobalMetronomeVolume
	GlobalMetronomeTimeSignature
	GlobalRoutingUSBIn
	GlobalRoutingUSBOut
	GlobalRoutingUSBToMainDb
	GlobalOutPortFunction
	GlobalThruPortFunction
	GlobalInputFrom
	GlobalOutputTo
	GlobalParamOutput
	GlobalPadDest
	GlobalPressureDest
	GlobalEncoderDest
	GlobalMuteDest
	GlobalPortsOutputChannel
	GlobalAutoChannel
	GlobalTrackChannel
	GlobalTrackFxChannel
	GlobalProgramChangeInChannel
	GlobalProgramChangeOutChannel
	GlobalPerformanceChannel

	SettingsProjectBPM
	SettingsSelectedTrack
	SettingsSelectedPage
	SettingsMute
	SettingsFixedVelocity
	SettingsFixedVelocityAmount
	SettingsSampleRecorderThreshold
	SettingsSampleRecorderMonitor
	SettingsParameterMenuItem
	SettingsFxParameterMenuItem
	SettingsSequencerMode
	SettingsPatternMode
	SettingsSampleRecorderSource
	SettingsSampleRecordingLength

	numParams
)

func intp(name string, min, max int) ParamInfo {
	return ParamInfo{Name: name, Kind: IntParam, Min: float64(min), Max: float64(max)}
}

func floatp(name string, min, max float64) ParamInfo {
	return ParamInfo{Name: name, Kind: FloatParam, Min: min, Max: max}
}

func boolp(name string) ParamInfo {
	return ParamInfo{Name: name, Kind: BoolParam, Min: 0, Max: 1}
}

func enump(name string, e *Enum) ParamInfo {
	return ParamInfo{Name: name, Kind: EnumParam, Min: 0, Max: float64(e.Len() - 1), Enum: e}
}

func (p ParamInfo) lock() ParamInfo {
	p.Lockable = true
	return p
}

func (p ParamInfo) fx() ParamInfo {
	p.Lockable = true
	p.FX = true
	return p
}

var params = [numParams]ParamInfo{
	NoParam: {Name: "none"},

	PatternMasterLength:   intp("pattern master length", 1, 1024),
	PatternMasterChange:   intp("pattern master change", 1, 1024),
	PatternKitNumber:      intp("pattern kit number", 0, NumKits-1),
	PatternSwingAmount:    intp("pattern swing amount", 50, 80),
	PatternGlobalQuantize: intp("pattern global quantize", 0, 127),
	PatternBPM:            floatp("pattern bpm", 30, 300),
	PatternSpeed:          enump("pattern speed", SpeedEnum),
	PatternTimeMode:       enump("pattern time mode", TimeModeEnum),

	TrackDefaultNote:        intp("track default note", 0, 127),
	TrackDefaultVelocity:    intp("track default velocity", 0, 127),
	TrackDefaultProbability: intp("track default probability", 0, 100),
	TrackSteps:              intp("track steps", 1, NumTrigs),
	TrackQuantizeAmount:     intp("track quantize amount", 0, 127),
	TrackSendsMIDI:          boolp("track sends midi"),
	TrackEuclidean:          boolp("track euclidean mode"),
	TrackPulses1:            intp("track pulses 1", 0, NumTrigs),
	TrackPulses2:            intp("track pulses 2", 0, NumTrigs),
	TrackRotation1:          intp("track rotation 1", 0, NumTrigs-1),
	TrackRotation2:          intp("track rotation 2", 0, NumTrigs-1),
	TrackRotation:           intp("track rotation", 0, NumTrigs-1),
	TrackRootNote:           enump("track root note", RootNoteEnum),
	TrackPadScale:           enump("track pad scale", PadScaleEnum),
	TrackDefaultNoteLength:  enump("track default note length", NoteLengthEnum),

	TrigEnable:               boolp("trig enable"),
	TrigRetrig:               boolp("trig retrig"),
	TrigMute:                 boolp("trig mute"),
	TrigAccent:               boolp("trig accent"),
	TrigSwing:                boolp("trig swing"),
	TrigSlide:                boolp("trig slide"),
	TrigNote:                 intp("trig note", 0, 127),
	TrigVelocity:             intp("trig velocity", 0, 127),
	TrigRetrigVelocityOffset: intp("trig retrig velocity offset", -128, 127),
	TrigSoundLock:            intp("trig sound lock", 0, 127),
	TrigMicroTime:            enump("trig micro time", MicroTimeEnum),
	TrigNoteLength:           enump("trig note length", NoteLengthEnum),
	TrigRetrigLength:         enump("trig retrig length", NoteLengthEnum),
	TrigRetrigRate:           enump("trig retrig rate", RetrigRateEnum),
	TrigCondition:            enump("trig condition", TrigConditionEnum),

	FxDelayTime:          intp("fx delay time", 0, 127).fx(),
	FxDelayPingPong:      boolp("fx delay ping pong").fx(),
	FxDelayStereoWidth:   intp("fx delay stereo width", -64, 63).fx(),
	FxDelayFeedback:      intp("fx delay feedback", 0, 198).fx(),
	FxDelayHPF:           intp("fx delay hpf", 0, 127).fx(),
	FxDelayLPF:           intp("fx delay lpf", 0, 127).fx(),
	FxDelayReverbSend:    intp("fx delay reverb send", 0, 127).fx(),
	FxDelayVolume:        intp("fx delay volume", 0, 127).fx(),
	FxDelayTimeOnTheGrid: enump("fx delay time on the grid", DelayTimeOnTheGridEnum),
	FxReverbPreDelay:     intp("fx reverb pre delay", 0, 127).fx(),
	FxReverbDecay:        intp("fx reverb decay", 0, 127).fx(),
	FxReverbFreq:         intp("fx reverb shelving frequency", 0, 127).fx(),
	FxReverbGain:         intp("fx reverb shelving gain", 0, 127).fx(),
	FxReverbHPF:          intp("fx reverb hpf", 0, 127).fx(),
	FxReverbLPF:          intp("fx reverb lpf", 0, 127).fx(),
	FxReverbVolume:       intp("fx reverb volume", 0, 127).fx(),
	FxCompThreshold:      intp("fx compressor threshold", 0, 127).fx(),
	FxCompGain:           intp("fx compressor makeup gain", 0, 127).fx(),
	FxCompMix:            intp("fx compressor mix", 0, 127).fx(),
	FxCompVolume:         intp("fx compressor volume", 0, 127).fx(),
	FxCompAttack:         enump("fx compressor attack", CompAttackEnum).fx(),
	FxCompRelease:        enump("fx compressor release", CompReleaseEnum).fx(),
	FxCompRatio:          enump("fx compressor ratio", CompRatioEnum).fx(),
	FxCompSidechainEq:    enump("fx compressor sidechain eq", CompSidechainEqEnum).fx(),
	FxLfoSpeed:           intp("fx lfo speed", -64, 63).fx(),
	FxLfoFade:            intp("fx lfo fade", -64, 63).fx(),
	FxLfoStartPhase:      intp("fx lfo start phase", 0, 127).fx(),
	FxLfoDepth:           floatp("fx lfo depth", -128, 127.99).fx(),
	FxLfoDestination:     enump("fx lfo destination", FxLfoDestinationEnum).fx(),
	FxDistDelayOverdrive: intp("fx distortion delay overdrive", 0, 127).fx(),
	FxDistDelayPost:      boolp("fx distortion delay post"),
	FxDistReverbPost:     boolp("fx distortion reverb post"),
	FxDistAmount:         intp("fx distortion amount", 0, 127).fx(),
	FxDistSymmetry:       intp("fx distortion symmetry", -64, 63).fx(),

	KitControlInModAmount:        intp("kit control in mod amount", -128, 127),
	KitControlInModTarget:        enump("kit control in mod target", ModTargetEnum),
	KitTrackLevel:                intp("kit track level", 0, 127),
	KitTrackRetrigRate:           enump("kit track retrig rate", RetrigRateEnum),
	KitTrackRetrigLength:         enump("kit track retrig length", NoteLengthEnum),
	KitTrackRetrigVelocityOffset: intp("kit track retrig velocity offset", -128, 127),
	KitTrackRetrigAlwaysOn:       boolp("kit track retrig always on"),

	SoundAccentLevel:        intp("sound accent level", 0, 127),
	SoundAmpAttack:          intp("sound amp attack", 0, 127).lock(),
	SoundAmpHold:            intp("sound amp hold", 0, 127).lock(),
	SoundAmpDecay:           intp("sound amp decay", 0, 127).lock(),
	SoundAmpOverdrive:       intp("sound amp overdrive", 0, 127).lock(),
	SoundAmpDelaySend:       intp("sound amp delay send", 0, 127).lock(),
	SoundAmpReverbSend:      intp("sound amp reverb send", 0, 127).lock(),
	SoundAmpPan:             intp("sound amp pan", -64, 63).lock(),
	SoundAmpVolume:          intp("sound amp volume", 0, 127).lock(),
	SoundFilterAttack:       intp("sound filter attack", 0, 127).lock(),
	SoundFilterHold:         intp("sound filter sustain", 0, 127).lock(),
	SoundFilterDecay:        intp("sound filter decay", 0, 127).lock(),
	SoundFilterRelease:      intp("sound filter release", 0, 127).lock(),
	SoundFilterCutoff:       intp("sound filter cutoff", 0, 127).lock(),
	SoundFilterResonance:    intp("sound filter resonance", 0, 127).lock(),
	SoundFilterEnvAmount:    intp("sound filter envelope amount", -64, 63).lock(),
	SoundFilterType:         enump("sound filter type", FilterTypeEnum).lock(),
	SoundLfoSpeed:           intp("sound lfo speed", -64, 63).lock(),
	SoundLfoFade:            intp("sound lfo fade", -64, 63).lock(),
	SoundLfoStartPhase:      intp("sound lfo start phase", 0, 127).lock(),
	SoundLfoDepth:           floatp("sound lfo depth", -128, 127.99).lock(),
	SoundLfoDestination:     enump("sound lfo destination", LfoDestinationEnum).lock(),
	SoundLfoMultiplier:      enump("sound lfo multiplier", LfoMultiplierEnum).lock(),
	SoundLfoWaveform:        enump("sound lfo waveform", LfoWaveformEnum).lock(),
	SoundLfoMode:            enump("sound lfo mode", LfoModeEnum).lock(),
	SoundSampleTune:         intp("sound sample tune", -24, 24).lock(),
	SoundSampleFineTune:     intp("sound sample fine tune", -64, 63).lock(),
	SoundSampleNumber:       intp("sound sample number", 0, 127).lock(),
	SoundSampleBitReduction: intp("sound sample bit reduction", 0, 127).lock(),
	SoundSampleStart:        floatp("sound sample start", 0, 120).lock(),
	SoundSampleEnd:          floatp("sound sample end", 0, 120).lock(),
	SoundSampleLoop:         boolp("sound sample loop").lock(),
	SoundSampleVolume:       intp("sound sample volume", 0, 127).lock(),
	SoundVelModAmount:       intp("sound velocity mod amount", -128, 127),
	SoundVelModTarget:       enump("sound velocity mod target", ModTargetEnum),
	SoundAtModAmount:        intp("sound after touch mod amount", -128, 127),
	SoundAtModTarget:        enump("sound after touch mod target", ModTargetEnum),
	SoundEnvResetFilter:     boolp("sound envelope reset filter"),
	SoundVelToVol:           boolp("sound velocity to volume"),
	SoundLegacyFxSend:       boolp("sound legacy fx send"),
	SoundMachineType:        enump("sound machine type", MachineTypeEnum),
	SoundChromaticMode:      enump("sound chromatic mode", ChromaticModeEnum),

	GlobalKitReloadOnChange:       boolp("global kit reload on change"),
	GlobalQuantizeLiveRecord:      boolp("global quantize live record"),
	GlobalAutoTrackSwitch:         boolp("global auto track switch"),
	GlobalRouteToMain:             boolp("global route to main"),
	GlobalSendToFx:                boolp("global send to fx"),
	GlobalClockReceive:            boolp("global clock receive"),
	GlobalClockSend:               boolp("global clock send"),
	GlobalTransportReceive:        boolp("global transport receive"),
	GlobalTransportSend:           boolp("global transport send"),
	GlobalProgramChangeReceive:    boolp("global program change receive"),
	GlobalProgramChangeSend:       boolp("global program change send"),
	GlobalReceiveNotes:            boolp("global receive notes"),
	GlobalReceiveCCNRPN:           boolp("global receive cc nrpn"),
	GlobalMetronomeActive:         boolp("global metronome active"),
	GlobalMetronomePreRollBars:    intp("global metronome pre roll bars", 0, 16),
	GlobalMetronomeVolume:         intp("global metronome volume", 0, 127),
	GlobalMetronomeTimeSignature:  enump("global metronome time signature", TimeSignatureEnum),
	GlobalRoutingUSBIn:            enump("global usb in routing", USBInEnum),
	GlobalRoutingUSBOut:           enump("global usb out routing", USBOutEnum),
	GlobalRoutingUSBToMainDb:      enump("global usb to main db", USBToMainDbEnum),
	GlobalOutPortFunction:         enump("global out port function", PortFunctionEnum),
	GlobalThruPortFunction:        enump("global thru port function", PortFunctionEnum),
	GlobalInputFrom:               enump("global input from", MIDIPortRouteEnum),
	GlobalOutputTo:                enump("global output to", MIDIPortRouteEnum),
	GlobalParamOutput:             enump("global param output", ParamOutputEnum),
	GlobalPadDest:                 enump("global pad destination", DestinationEnum),
	GlobalPressureDest:            enump("global pressure destination", DestinationEnum),
	GlobalEncoderDest:             enump("global encoder destination", DestinationEnum),
	GlobalMuteDest:                enump("global mute destination", DestinationEnum),
	GlobalPortsOutputChannel:      enump("global ports output channel", PortsOutputChannelEnum),
	GlobalAutoChannel:             enump("global auto channel", MIDIChannelEnum),
	GlobalTrackChannel:            enump("global track channel", MIDIChannelEnum),
	GlobalTrackFxChannel:          enump("global fx track channel", MIDIChannelEnum),
	GlobalProgramChangeInChannel:  enump("global program change in channel", MIDIChannelEnum),
	GlobalProgramChangeOutChannel: enump("global program change out channel", MIDIChannelEnum),
	GlobalPerformanceChannel:      enump("global performance channel", MIDIChannelEnum),

	SettingsProjectBPM:              floatp("settings project bpm", 30, 300),
	SettingsSelectedTrack:           intp("settings selected track", 0, NumSoundTracks-1),
	SettingsSelectedPage:            intp("settings selected page", 0, 3),
	SettingsMute:                    boolp("settings mute"),
	SettingsFixedVelocity:           boolp("settings fixed velocity"),
	SettingsFixedVelocityAmount:     intp("settings fixed velocity amount", 1, 127),
	SettingsSampleRecorderThreshold: intp("settings sample recorder threshold", 0, 127),
	SettingsSampleRecorderMonitor:   boolp("settings sample recorder monitor"),
	SettingsParameterMenuItem:       enump("settings parameter menu item", ParameterMenuItemEnum),
	SettingsFxParameterMenuItem:     enump("settings fx parameter menu item", FxParameterMenuItemEnum),
	SettingsSequencerMode:           enump("settings sequencer mode", SequencerModeEnum),
	SettingsPatternMode:             enump("settings pattern mode", PatternModeEnum),
	SettingsSampleRecorderSource:    enump("settings sample recorder source", SampleRecorderSourceEnum),
	SettingsSampleRecordingLength:   enump("settings sample recording length", SampleRecordingLengthEnum),
}

// Params returns every parameter of the model in declaration order.
func Params() []Param {
	ret := make([]Param, 0, numParams-1)
	for p := NoParam + 1; p < numParams; p++ {
		ret = append(ret, p)
	}
	return ret
}

func (p Param) Valid() bool { return p > NoParam && p < numParams }

func (p Param) Info() ParamInfo {
	if !p.Valid() {
		return params[NoParam]
	}
	return params[p]
}

func (p Param) String() string { return p.Info().Name }

// Check validates v against the range of p.
func (p Param) Check(v float64) error {
	info := p.Info()
	if !p.Valid() {
		return ErrReadOnly
	}
	if math.IsNaN(v) || v < info.Min || v > info.Max {
		return &RangeError{Param: info.Name, Value: v, Min: info.Min, Max: info.Max}
	}
	return nil
}

func (p Param) SetInt(dst *int, v int) error {
	if err := p.Check(float64(v)); err != nil {
		return err
	}
	*dst = v
	return nil
}

func (p Param) SetFloat(dst *float64, v float64) error {
	if err := p.Check(v); err != nil {
		return err
	}
	*dst = v
	return nil
}

func (p Param) SetBool(dst *bool, v bool) error {
	if !p.Valid() {
		return ErrReadOnly
	}
	*dst = v
	return nil
}

// SetVariant stores the index of the named variant of p's enumeration.
func (p Param) SetVariant(dst *int, variant string) error {
	info := p.Info()
	if info.Enum == nil {
		return ErrReadOnly
	}
	i, err := info.Enum.Parse(variant)
	if err != nil {
		return err
	}
	*dst = i
	return nil
}

// Variant returns the variant name stored in an enumerated field.
func (p Param) Variant(v int) string {
	if e := p.Info().Enum; e != nil {
		return e.Variant(v)
	}
	return ""
}

// SetName validates and stores an object name.
func SetName(dst *string, name string) error {
	if err := CheckName(name); err != nil {
		return err
	}
	*dst = name
	return nil
}

func CheckName(name string) error {
	if len(name) == 0 || len(name) > MaxNameLength {
		return ErrName
	}
	if strings.IndexFunc(name, func(r rune) bool { return r < 0x20 || r > 0x7e }) >= 0 {
		return ErrName
	}
	return nil
}
