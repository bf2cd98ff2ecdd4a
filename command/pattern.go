package command

import "github.com/rytmctl/rytm"

var patternTable = newTable(PatternKind,
	[]*field[rytm.Pattern]{
		readOnly("version", func(p *rytm.Pattern) Atom { return Int(p.Version) }),
		readOnly("index", func(p *rytm.Pattern) Atom { return Int(p.Index) }),
		readOnly("iswb", func(p *rytm.Pattern) Atom { return Bool(p.IsWorkBuffer) }),
		scalar("masterlength", rytm.PatternMasterLength, func(p *rytm.Pattern) *int { return &p.MasterLength }),
		scalar("masterchg", rytm.PatternMasterChange, func(p *rytm.Pattern) *int { return &p.MasterChange }),
		scalar("kitnumber", rytm.PatternKitNumber, func(p *rytm.Pattern) *int { return &p.KitNumber }),
		scalar("swingamount", rytm.PatternSwingAmount, func(p *rytm.Pattern) *int { return &p.SwingAmount }),
		scalar("globalquantize", rytm.PatternGlobalQuantize, func(p *rytm.Pattern) *int { return &p.GlobalQuantize }),
		scalar("patternbpm", rytm.PatternBPM, func(p *rytm.Pattern) *float64 { return &p.BPM }),
	},
	[]*field[rytm.Pattern]{
		scalar("speed", rytm.PatternSpeed, func(p *rytm.Pattern) *int { return &p.Speed }),
		scalar("timemode", rytm.PatternTimeMode, func(p *rytm.Pattern) *int { return &p.TimeMode }),
	},
	nil,
)

var trackTable = newTable(TrackKind,
	[]*field[rytm.Track]{
		readOnly("index", func(t *rytm.Track) Atom { return Int(t.Index) }),
		readOnly("parentindex", func(t *rytm.Track) Atom { return Int(t.PatternIndex) }),
		readOnly("iswb", func(t *rytm.Track) Atom { return Bool(t.IsWorkBuffer) }),
		scalar("deftrignote", rytm.TrackDefaultNote, func(t *rytm.Track) *int { return &t.DefaultNote }),
		scalar("deftrigvel", rytm.TrackDefaultVelocity, func(t *rytm.Track) *int { return &t.DefaultVelocity }),
		scalar("deftrigprob", rytm.TrackDefaultProbability, func(t *rytm.Track) *int { return &t.DefaultProbability }),
		scalar("steps", rytm.TrackSteps, func(t *rytm.Track) *int { return &t.Steps }),
		scalar("quantizeamount", rytm.TrackQuantizeAmount, func(t *rytm.Track) *int { return &t.QuantizeAmount }),
		scalar("sendsmidi", rytm.TrackSendsMIDI, func(t *rytm.Track) *bool { return &t.SendsMIDI }),
		scalar("euc", rytm.TrackEuclidean, func(t *rytm.Track) *bool { return &t.Euclidean }),
		scalar("pl1", rytm.TrackPulses1, func(t *rytm.Track) *int { return &t.Pulses1 }),
		scalar("pl2", rytm.TrackPulses2, func(t *rytm.Track) *int { return &t.Pulses2 }),
		scalar("ro1", rytm.TrackRotation1, func(t *rytm.Track) *int { return &t.Rotation1 }),
		scalar("ro2", rytm.TrackRotation2, func(t *rytm.Track) *int { return &t.Rotation2 }),
		scalar("tro", rytm.TrackRotation, func(t *rytm.Track) *int { return &t.Rotation }),
	},
	[]*field[rytm.Track]{
		scalar("rootnote", rytm.TrackRootNote, func(t *rytm.Track) *int { return &t.RootNote }),
		scalar("padscale", rytm.TrackPadScale, func(t *rytm.Track) *int { return &t.PadScale }),
		scalar("defaultnotelength", rytm.TrackDefaultNoteLength, func(t *rytm.Track) *int { return &t.DefaultNoteLength }),
	},
	nil,
)

var trigTable = newTable(TrigKind,
	[]*field[rytm.Trig]{
		scalar("enable", rytm.TrigEnable, func(t *rytm.Trig) *bool { return &t.Enable }),
		scalar("retrig", rytm.TrigRetrig, func(t *rytm.Trig) *bool { return &t.Retrig }),
		scalar("mute", rytm.TrigMute, func(t *rytm.Trig) *bool { return &t.Mute }),
		scalar("accent", rytm.TrigAccent, func(t *rytm.Trig) *bool { return &t.Accent }),
		scalar("swing", rytm.TrigSwing, func(t *rytm.Trig) *bool { return &t.Swing }),
		scalar("slide", rytm.TrigSlide, func(t *rytm.Trig) *bool { return &t.Slide }),
		scalar("note", rytm.TrigNote, func(t *rytm.Trig) *int { return &t.Note }),
		scalar("velocity", rytm.TrigVelocity, func(t *rytm.Trig) *int { return &t.Velocity }),
		scalar("retrigveloffset", rytm.TrigRetrigVelocityOffset, func(t *rytm.Trig) *int { return &t.RetrigVelocityOffset }),
		scalar("soundlock", rytm.TrigSoundLock, func(t *rytm.Trig) *int { return &t.SoundLock }),
	},
	[]*field[rytm.Trig]{
		scalar("microtime", rytm.TrigMicroTime, func(t *rytm.Trig) *int { return &t.MicroTime }),
		scalar("notelength", rytm.TrigNoteLength, func(t *rytm.Trig) *int { return &t.NoteLength }),
		scalar("retriglength", rytm.TrigRetrigLength, func(t *rytm.Trig) *int { return &t.RetrigLength }),
		scalar("retrigrate", rytm.TrigRetrigRate, func(t *rytm.Trig) *int { return &t.RetrigRate }),
		scalar("trigcondition", rytm.TrigCondition, func(t *rytm.Trig) *int { return &t.Condition }),
	},
	nil,
)
