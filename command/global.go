package command

import "github.com/rytmctl/rytm"

var globalTable = newTable(GlobalKind,
	[]*field[rytm.Global]{
		readOnly("version", func(g *rytm.Global) Atom { return Int(g.Version) }),
		readOnly("index", func(g *rytm.Global) Atom { return Int(g.Index) }),
		readOnly("iswb", func(g *rytm.Global) Atom { return Bool(g.IsWorkBuffer) }),
		readOnly("turbospeed", func(g *rytm.Global) Atom { return Bool(g.TurboSpeed) }),
		scalar("kitreloadonchg", rytm.GlobalKitReloadOnChange, func(g *rytm.Global) *bool { return &g.KitReloadOnChange }),
		scalar("quantizeliverec", rytm.GlobalQuantizeLiveRecord, func(g *rytm.Global) *bool { return &g.QuantizeLiveRecord }),
		scalar("autotrackswitch", rytm.GlobalAutoTrackSwitch, func(g *rytm.Global) *bool { return &g.AutoTrackSwitch }),
		slotted("routetomain", rytm.GlobalRouteToMain, rytm.NumSoundTracks, func(g *rytm.Global, i int) *bool { return &g.RouteToMain[i] }),
		slotted("sendtofx", rytm.GlobalSendToFx, rytm.NumSoundTracks, func(g *rytm.Global, i int) *bool { return &g.SendToFx[i] }),
		scalar("clockreceive", rytm.GlobalClockReceive, func(g *rytm.Global) *bool { return &g.ClockReceive }),
		scalar("clocksend", rytm.GlobalClockSend, func(g *rytm.Global) *bool { return &g.ClockSend }),
		scalar("transportreceive", rytm.GlobalTransportReceive, func(g *rytm.Global) *bool { return &g.TransportReceive }),
		scalar("transportsend", rytm.GlobalTransportSend, func(g *rytm.Global) *bool { return &g.TransportSend }),
		scalar("programchangereceive", rytm.GlobalProgramChangeReceive, func(g *rytm.Global) *bool { return &g.ProgramChangeReceive }),
		scalar("programchangesend", rytm.GlobalProgramChangeSend, func(g *rytm.Global) *bool { return &g.ProgramChangeSend }),
		scalar("receivenotes", rytm.GlobalReceiveNotes, func(g *rytm.Global) *bool { return &g.ReceiveNotes }),
		scalar("receiveccnrpn", rytm.GlobalReceiveCCNRPN, func(g *rytm.Global) *bool { return &g.ReceiveCCNRPN }),
		scalar("metronomeactive", rytm.GlobalMetronomeActive, func(g *rytm.Global) *bool { return &g.Metronome.Active }),
		scalar("metronomeprerollbars", rytm.GlobalMetronomePreRollBars, func(g *rytm.Global) *int { return &g.Metronome.PreRollBars }),
		scalar("metronomevolume", rytm.GlobalMetronomeVolume, func(g *rytm.Global) *int { return &g.Metronome.Volume }),
	},
	[]*field[rytm.Global]{
		scalar("metronometimesignature", rytm.GlobalMetronomeTimeSignature, func(g *rytm.Global) *int { return &g.Metronome.TimeSignature }),
		scalar("routingusbin", rytm.GlobalRoutingUSBIn, func(g *rytm.Global) *int { return &g.Routing.USBIn }),
		scalar("routingusbout", rytm.GlobalRoutingUSBOut, func(g *rytm.Global) *int { return &g.Routing.USBOut }),
		scalar("routingusbtomaindb", rytm.GlobalRoutingUSBToMainDb, func(g *rytm.Global) *int { return &g.Routing.USBToMainDb }),
		scalar("outportfunction", rytm.GlobalOutPortFunction, func(g *rytm.Global) *int { return &g.Routing.OutPortFunction }),
		scalar("thruportfunction", rytm.GlobalThruPortFunction, func(g *rytm.Global) *int { return &g.Routing.ThruPortFunction }),
		scalar("inputfrom", rytm.GlobalInputFrom, func(g *rytm.Global) *int { return &g.Routing.InputFrom }),
		scalar("outputto", rytm.GlobalOutputTo, func(g *rytm.Global) *int { return &g.Routing.OutputTo }),
		scalar("paramoutput", rytm.GlobalParamOutput, func(g *rytm.Global) *int { return &g.Routing.ParamOutput }),
		scalar("paddest", rytm.GlobalPadDest, func(g *rytm.Global) *int { return &g.Routing.PadDest }),
		scalar("pressuredest", rytm.GlobalPressureDest, func(g *rytm.Global) *int { return &g.Routing.PressureDest }),
		scalar("encoderdest", rytm.GlobalEncoderDest, func(g *rytm.Global) *int { return &g.Routing.EncoderDest }),
		scalar("mutedest", rytm.GlobalMuteDest, func(g *rytm.Global) *int { return &g.Routing.MuteDest }),
		scalar("portsoutputchannel", rytm.GlobalPortsOutputChannel, func(g *rytm.Global) *int { return &g.Routing.PortsOutputChannel }),
		scalar("autochannel", rytm.GlobalAutoChannel, func(g *rytm.Global) *int { return &g.Channels.Auto }),
		slotted("trackchannels", rytm.GlobalTrackChannel, rytm.NumSoundTracks, func(g *rytm.Global, i int) *int { return &g.Channels.Tracks[i] }),
		scalar("trackfxchannel", rytm.GlobalTrackFxChannel, func(g *rytm.Global) *int { return &g.Channels.TrackFx }),
		scalar("programchangeinchannel", rytm.GlobalProgramChangeInChannel, func(g *rytm.Global) *int { return &g.Channels.ProgramChangeIn }),
		scalar("programchangeoutchannel", rytm.GlobalProgramChangeOutChannel, func(g *rytm.Global) *int { return &g.Channels.ProgramChangeOut }),
		scalar("performancechannel", rytm.GlobalPerformanceChannel, func(g *rytm.Global) *int { return &g.Channels.Performance }),
	},
	nil,
)
