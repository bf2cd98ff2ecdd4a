package command

import "github.com/rytmctl/rytm"

// ObjectKind is a node type of the addressable hierarchy. Each kind has its
// own identifier table.
type ObjectKind int

const (
	PatternKind ObjectKind = iota
	TrackKind
	TrigKind
	KitKind
	SoundKind
	GlobalKind
	SettingsKind
)

var kindNames = [...]string{"pattern", "track", "trig", "kit", "sound", "global", "settings"}

func (k ObjectKind) String() string { return kindNames[k] }

// ObjectKinds returns every kind in hierarchy order.
func ObjectKinds() []ObjectKind {
	return []ObjectKind{PatternKind, TrackKind, TrigKind, KitKind, SoundKind, GlobalKind, SettingsKind}
}

type IdentifierKind int

const (
	PlainIdentifier IdentifierKind = iota
	EnumIdentifier
	ElementIdentifier
)

func (k IdentifierKind) String() string {
	switch k {
	case EnumIdentifier:
		return "enum"
	case ElementIdentifier:
		return "element"
	}
	return "plain"
}

// Identifier describes one entry of an identifier table.
type Identifier struct {
	Name     string
	Kind     IdentifierKind
	Param    rytm.Param // NoParam for read only fields and names
	Slots    int        // number of slot indices the identifier takes, 0 if none
	ReadOnly bool
	IsName   bool
	Lockable bool
}

// Variants returns the variant names of an enumerated identifier.
func (id Identifier) Variants() []string {
	if e := id.Param.Info().Enum; e != nil {
		return e.Variants
	}
	return nil
}

// Value describes the accepted parameter in a compact form, for help texts.
func (id Identifier) Value() string {
	info := id.Param.Info()
	switch {
	case id.ReadOnly:
		return "read only"
	case id.IsName:
		return "name"
	case info.Kind == rytm.BoolParam:
		return "0|1"
	case info.Kind == rytm.EnumParam:
		return info.Enum.Name
	case info.Kind == rytm.FloatParam:
		return Float(info.Min).String() + ".." + Float(info.Max).String() + " (float)"
	}
	return Int(int(info.Min)).String() + ".." + Int(int(info.Max)).String()
}

type describer interface {
	describe() []Identifier
}

// Identifiers returns the identifier table of kind in declaration order.
func Identifiers(kind ObjectKind) []Identifier {
	return tables()[kind].describe()
}

func tables() map[ObjectKind]describer {
	return map[ObjectKind]describer{
		PatternKind:  patternTable,
		TrackKind:    trackTable,
		TrigKind:     trigTable,
		KitKind:      kitTable,
		SoundKind:    soundTable,
		GlobalKind:   globalTable,
		SettingsKind: settingsTable,
	}
}

// Keywords that descend into nested objects and may not be used as field
// identifiers of the kinds they belong to.
const (
	KitSoundKeyword = "sound"
	PlockSet        = "plockset"
	PlockGet        = "plockget"
	PlockClear      = "plockclear"
)

func reserved(kind ObjectKind, name string) bool {
	switch kind {
	case KitKind:
		return name == KitSoundKeyword
	case TrigKind:
		return name == PlockSet || name == PlockGet || name == PlockClear
	}
	return false
}
