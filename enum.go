package rytm

import (
	"fmt"
	"strconv"
)

// Enum is a closed, named set of variants. Fields holding an enumerated
// value store the variant index.
type Enum struct {
	Name     string
	Variants []string
	index    map[string]int
}

func newEnum(name string, variants ...string) *Enum {
	e := &Enum{Name: name, Variants: variants, index: make(map[string]int, len(variants))}
	for i, v := range variants {
		if _, ok := e.index[v]; ok {
			panic(fmt.Sprintf("rytm: duplicate variant %q in enum %s", v, name))
		}
		e.index[v] = i
	}
	return e
}

// Parse returns the index of the named variant.
func (e *Enum) Parse(variant string) (int, error) {
	i, ok := e.index[variant]
	if !ok {
		return 0, &VariantError{Enum: e.Name, Value: variant}
	}
	return i, nil
}

// Variant returns the name of the variant at index i, or an empty string if
// i is out of range.
func (e *Enum) Variant(i int) string {
	if i < 0 || i >= len(e.Variants) {
		return ""
	}
	return e.Variants[i]
}

func (e *Enum) Len() int { return len(e.Variants) }

func noteLengths() []string {
	return []string{
		"1/128", "1/64", "1/32", "3/64", "1/16", "3/32", "1/8", "3/16",
		"1/4", "3/8", "1/2", "3/4", "1", "3/2", "2", "3", "4", "6", "8",
		"12", "16", "24", "32", "48", "64", "96", "128", "inf", "unset",
	}
}

func microTimes() []string {
	var ret []string
	for i := -23; i <= 23; i++ {
		if i == 0 {
			ret = append(ret, "ongrid")
			continue
		}
		ret = append(ret, fmt.Sprintf("%+d/384", i))
	}
	return ret
}

func trigConditions() []string {
	ret := []string{"none", "fill", "notfill", "pre", "notpre", "nei", "notnei", "1st", "not1st"}
	for _, p := range []int{1, 2, 4, 6, 9, 13, 19, 25, 33, 41, 50, 59, 67, 75, 81, 87, 91, 94, 96, 98, 99} {
		ret = append(ret, strconv.Itoa(p)+"%")
	}
	for b := 2; b <= 8; b++ {
		for a := 1; a <= b; a++ {
			ret = append(ret, fmt.Sprintf("%d:%d", a, b))
		}
	}
	return ret
}

func timeSignatures() []string {
	var ret []string
	for _, d := range []int{1, 2, 4, 8, 16} {
		for n := 1; n <= 16; n++ {
			ret = append(ret, fmt.Sprintf("%d/%d", n, d))
		}
	}
	return ret
}

func midiChannels(extra ...string) []string {
	ret := append([]string{}, extra...)
	for c := 1; c <= 16; c++ {
		ret = append(ret, strconv.Itoa(c))
	}
	return ret
}

var (
	SpeedEnum    = newEnum("speed", "x2", "x3/2", "x1", "x3/4", "x1/2", "x1/4", "x1/8")
	TimeModeEnum = newEnum("timemode", "normal", "advanced")

	RootNoteEnum = newEnum("rootnote", "c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b")
	PadScaleEnum = newEnum("padscale",
		"chromatic", "ionian", "dorian", "phrygian", "lydian", "mixolydian",
		"aeolian", "locrian", "pentatonicminor", "pentatonicmajor",
		"melodicminor", "harmonicminor", "wholetone", "blues", "combominor",
		"persian", "iwato", "insen", "hirajoshi", "pelog",
		"phrygiandominant", "wholehalfdiminished", "halfwholediminished",
		"spanish", "major", "minor")
	NoteLengthEnum    = newEnum("notelength", noteLengths()...)
	MicroTimeEnum     = newEnum("microtime", microTimes()...)
	RetrigRateEnum    = newEnum("retrigrate", "1/1", "1/2", "1/3", "1/4", "1/5", "1/6", "1/8", "1/10", "1/12", "1/16", "1/20", "1/24", "1/32", "1/40", "1/48", "1/64", "1/80")
	TrigConditionEnum = newEnum("trigcondition", trigConditions()...)

	FxLfoDestinationEnum = newEnum("fxlfodestination",
		"unset", "delaytime", "delaypingpong", "delaystereowidth",
		"delayfeedback", "delayhpf", "delaylpf", "delayreverbsend",
		"delayvolume", "reverbpredelay", "reverbdecay", "reverbfreq",
		"reverbgain", "reverbhpf", "reverblpf", "reverbvolume",
		"distamount", "distsymmetry", "compthreshold", "compattack",
		"comprelease", "compratio", "compsidechaineq", "compgain",
		"compmix", "compvolume", "filter")
	DelayTimeOnTheGridEnum = newEnum("delaytimeonthegrid", "off", "1/128", "1/64", "1/32", "3/64", "1/16", "3/32", "1/8", "3/16", "1/4", "3/8", "1/2")
	CompAttackEnum         = newEnum("compattack", "0.03", "0.1", "0.3", "1", "3", "10", "30")
	CompReleaseEnum        = newEnum("comprelease", "0.1", "0.2", "0.4", "0.6", "1", "2", "a1", "a2")
	CompRatioEnum          = newEnum("compratio", "1:2", "1:4", "1:8", "max")
	CompSidechainEqEnum    = newEnum("compsidechaineq", "off", "lpf", "hpf", "hit")

	ModTargetEnum = newEnum("modtarget",
		"unset", "lfomultiplier", "lfowaveform", "lfotrigmode", "lfospeed",
		"lfofade", "lfophase", "lfodepth", "sampletune", "samplefinetune",
		"sampleslice", "samplebitreduction", "samplestart", "sampleend",
		"sampleloop", "samplelevel", "filterenvelope", "filterattack",
		"filterdecay", "filtersustain", "filterrelease", "filterfrequency",
		"filterresonance", "ampattack", "amphold", "ampdecay",
		"ampoverdrive", "ampvolume", "amppan", "ampaccent", "ampdelaysend",
		"ampreverbsend")
	MachineTypeEnum = newEnum("machinetype",
		"bdhard", "bdclassic", "sdhard", "sdclassic", "rsclassic", "rshard",
		"cpclassic", "btclassic", "xtclassic", "chclassic", "ohclassic",
		"cyclassic", "cbclassic", "bdfm", "sdfm", "unset", "noisegen",
		"impulse", "chmetallic", "ohmetallic", "cymetallic", "cbmetallic",
		"bdplastic", "bdsilky", "sdnatural", "hhbasic", "cyride", "bdsharp",
		"disable", "syraw", "sychip", "bdacoustic", "sdacoustic",
		"tmacoustic", "hhlab", "cpeuclid")
	LfoDestinationEnum = newEnum("lfodestination",
		"unset", "sampletune", "samplefinetune", "sampleslice",
		"samplebitreduction", "samplestart", "sampleend", "sampleloop",
		"samplelevel", "filterattack", "filtersustain", "filterdecay",
		"filterrelease", "filterfrequency", "filterresonance",
		"filterenvelope", "ampattack", "amphold", "ampdecay", "ampoverdrive",
		"ampdelaysend", "ampreverbsend", "amppan", "ampvolume")
	FilterTypeEnum    = newEnum("filtertype", "lp2", "lp1", "bp", "hp1", "hp2", "bs", "pk")
	LfoMultiplierEnum = newEnum("lfomultiplier",
		"x1", "x2", "x4", "x8", "x16", "x32", "x64", "x128", "x256", "x512",
		"x1k", "x2k", ".1", ".2", ".4", ".8", ".16", ".32", ".64", ".128",
		".256", ".512", ".1k", ".2k")
	LfoWaveformEnum   = newEnum("lfowaveform", "tri", "sin", "sqr", "saw", "exp", "rmp", "rnd")
	LfoModeEnum       = newEnum("lfomode", "free", "trig", "hold", "one", "half")
	ChromaticModeEnum = newEnum("chromaticmode", "off", "synth", "sample", "synthandsample")

	TimeSignatureEnum      = newEnum("timesignature", timeSignatures()...)
	USBInEnum              = newEnum("usbin", "preeq", "posteq", "voicerouting")
	USBOutEnum             = newEnum("usbout", "mainout", "trackrouting", "audioin", "off")
	USBToMainDbEnum        = newEnum("usbtomaindb", "0", "+6", "+12", "+18")
	PortFunctionEnum       = newEnum("portfunction", "midi", "din24", "din48")
	MIDIPortRouteEnum      = newEnum("midiportroute", "disabled", "midi", "usb", "midiandusb")
	ParamOutputEnum        = newEnum("paramoutput", "nrpn", "cc")
	DestinationEnum        = newEnum("destination", "int", "intext", "ext")
	PortsOutputChannelEnum = newEnum("portsoutputchannel", "autochannel", "trackchannel")
	MIDIChannelEnum        = newEnum("midichannel", midiChannels("off")...)

	ParameterMenuItemEnum     = newEnum("parametermenuitem", "trig", "src", "smpl", "fltr", "amp", "lfo")
	FxParameterMenuItemEnum   = newEnum("fxparametermenuitem", "trig", "delay", "reverb", "dist", "comp", "lfo")
	SequencerModeEnum         = newEnum("sequencermode", "normal", "chain", "song")
	PatternModeEnum           = newEnum("patternmode", "sequential", "directstart", "directjump", "tempjump")
	SampleRecorderSourceEnum  = newEnum("samplerecordersource", "audlr", "audl", "audr", "bd", "sd", "rs", "cp", "bt", "lt", "mt", "ht", "ch", "oh", "cy", "cb", "main", "usbl", "usbr", "usblr")
	SampleRecordingLengthEnum = newEnum("samplerecordinglength", "1step", "2steps", "4steps", "8steps", "16steps", "32steps", "64steps", "128steps", "max")
)
