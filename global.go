package rytm

type (
	// Global is one of the four global slots: MIDI, sync, routing and
	// metronome configuration.
	Global struct {
		Index        int  `yaml:"-"`
		IsWorkBuffer bool `yaml:"-"`
		Version      int

		KitReloadOnChange  bool
		QuantizeLiveRecord bool
		AutoTrackSwitch    bool
		TurboSpeed         bool // reported by the device, not settable

		RouteToMain [NumSoundTracks]bool
		SendToFx    [NumSoundTracks]bool

		ClockReceive         bool
		ClockSend            bool
		TransportReceive     bool
		TransportSend        bool
		ProgramChangeReceive bool
		ProgramChangeSend    bool
		ReceiveNotes         bool
		ReceiveCCNRPN        bool

		Metronome Metronome
		Routing   Routing
		Channels  Channels
	}

	Metronome struct {
		Active        bool
		PreRollBars   int
		Volume        int
		TimeSignature int
	}

	Routing struct {
		USBIn              int
		USBOut             int
		USBToMainDb        int
		OutPortFunction    int
		ThruPortFunction   int
		InputFrom          int
		OutputTo           int
		ParamOutput        int
		PadDest            int
		PressureDest       int
		EncoderDest        int
		MuteDest           int
		PortsOutputChannel int
	}

	Channels struct {
		Auto             int
		Tracks           [NumSoundTracks]int
		TrackFx          int
		ProgramChangeIn  int
		ProgramChangeOut int
		Performance      int
	}
)

func newGlobal(index int, workBuffer bool) Global {
	g := Global{
		Version:          Version,
		ClockReceive:     true,
		TransportReceive: true,
		ReceiveNotes:     true,
		ReceiveCCNRPN:    true,
		Metronome: Metronome{
			Volume:        64,
			TimeSignature: mustVariant(TimeSignatureEnum, "4/4"),
		},
		Routing: Routing{
			USBIn:       mustVariant(USBInEnum, "posteq"),
			USBOut:      mustVariant(USBOutEnum, "mainout"),
			InputFrom:   mustVariant(MIDIPortRouteEnum, "midiandusb"),
			OutputTo:    mustVariant(MIDIPortRouteEnum, "midiandusb"),
			PadDest:     mustVariant(DestinationEnum, "intext"),
			MuteDest:    mustVariant(DestinationEnum, "intext"),
			EncoderDest: mustVariant(DestinationEnum, "intext"),
		},
	}
	g.Channels.Auto = mustVariant(MIDIChannelEnum, "14")
	g.Channels.TrackFx = mustVariant(MIDIChannelEnum, "13")
	for i := range g.Channels.Tracks {
		g.Channels.Tracks[i] = i + 1 // channel i+1 is variant i+1, after "off"
		g.RouteToMain[i] = true
		g.SendToFx[i] = true
	}
	g.Index = index
	g.IsWorkBuffer = workBuffer
	return g
}
