// Package rytm is an in-memory model of the Elektron Analog Rytm object
// space: patterns with their tracks and trigs, kits with their sounds, pool
// sounds, globals and settings, plus the work buffer the device edits live.
//
// Every numeric, boolean and enumerated field is described by the Params
// table. Setters validate against that table and leave the destination
// untouched when they fail, so a rejected value never half-applies.
package rytm

const (
	NumPatterns   = 128
	NumKits       = 128
	NumPoolSounds = 12
	NumGlobals    = 4

	NumTracks      = 13 // 12 sound tracks and the FX track
	NumSoundTracks = 12
	FXTrack        = 12
	NumTrigs       = 64
	NumModSlots    = 4

	MaxNameLength = 15
)

// ObjectType is the SysEx dump identifier of an object class. The matching
// query identifier is the dump identifier plus 0x10.
type ObjectType byte

const (
	KitObject      ObjectType = 0x52
	SoundObject    ObjectType = 0x53
	PatternObject  ObjectType = 0x54
	SettingsObject ObjectType = 0x56
	GlobalObject   ObjectType = 0x57
)

func (t ObjectType) String() string {
	switch t {
	case KitObject:
		return "kit"
	case SoundObject:
		return "sound"
	case PatternObject:
		return "pattern"
	case SettingsObject:
		return "settings"
	case GlobalObject:
		return "global"
	}
	return "unknown"
}

// Version is the structure version stamped on every object this model
// creates.
const Version = 1
