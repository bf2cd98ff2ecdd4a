package command

import "github.com/rytmctl/rytm"

// Class is one of the nine addressable object classes.
type Class int

const (
	ClassPattern Class = iota
	ClassPatternWorkBuffer
	ClassKit
	ClassKitWorkBuffer
	ClassSound
	ClassSoundWorkBuffer
	ClassGlobal
	ClassGlobalWorkBuffer
	ClassSettings
	numClasses
)

type classInfo struct {
	name       string
	object     rytm.ObjectType
	workBuffer bool
	slots      int // number of valid indices; 0 if the class takes no index
}

var classes = [numClasses]classInfo{
	ClassPattern:           {"pattern", rytm.PatternObject, false, rytm.NumPatterns},
	ClassPatternWorkBuffer: {"pattern_wb", rytm.PatternObject, true, 0},
	ClassKit:               {"kit", rytm.KitObject, false, rytm.NumKits},
	ClassKitWorkBuffer:     {"kit_wb", rytm.KitObject, true, 0},
	ClassSound:             {"sound", rytm.SoundObject, false, rytm.NumPoolSounds},
	ClassSoundWorkBuffer:   {"sound_wb", rytm.SoundObject, true, rytm.NumSoundTracks},
	ClassGlobal:            {"global", rytm.GlobalObject, false, rytm.NumGlobals},
	ClassGlobalWorkBuffer:  {"global_wb", rytm.GlobalObject, true, 0},
	ClassSettings:          {"settings", rytm.SettingsObject, false, 0},
}

func (c Class) String() string          { return classes[c].name }
func (c Class) Indexed() bool           { return classes[c].slots > 0 }
func (c Class) Slots() int              { return classes[c].slots }
func (c Class) WorkBuffer() bool        { return classes[c].workBuffer }
func (c Class) Object() rytm.ObjectType { return classes[c].object }

// Classes returns every class in declaration order.
func Classes() []Class {
	ret := make([]Class, numClasses)
	for i := range ret {
		ret[i] = Class(i)
	}
	return ret
}

// ParseClass looks up a class keyword.
func ParseClass(name string) (Class, bool) {
	for i, c := range classes {
		if c.name == name {
			return Class(i), true
		}
	}
	return 0, false
}

// Selector is a resolved object class and, for indexed classes, the slot.
type Selector struct {
	Class Class
	Index int
}

func (s Selector) String() string {
	if s.Class.Indexed() {
		return s.Class.String() + " " + Int(s.Index).String()
	}
	return s.Class.String()
}

// ParseSelector resolves the leading class keyword of a message and its
// index, if the class takes one, and returns the remaining tokens. Classes
// without an index never consume the token after the keyword.
func ParseSelector(atoms []Atom) (Selector, []Atom, error) {
	if len(atoms) == 0 {
		return Selector{}, nil, selectorErrorf(nil, "missing object class")
	}
	tok := atoms[0]
	if tok.Kind != SymbolAtom {
		return Selector{}, nil, selectorErrorf(&tok, "object class must be a symbol")
	}
	class, ok := ParseClass(tok.Symbol)
	if !ok {
		return Selector{}, nil, selectorErrorf(&tok, "object class must be one of pattern, pattern_wb, kit, kit_wb, sound, sound_wb, global, global_wb or settings")
	}
	if !class.Indexed() {
		return Selector{Class: class}, atoms[1:], nil
	}
	if len(atoms) < 2 {
		return Selector{}, nil, selectorErrorf(nil, "%s needs an index", class)
	}
	idx := atoms[1]
	if idx.Kind != IntAtom {
		return Selector{}, nil, selectorErrorf(&idx, "%s index must be an integer", class)
	}
	if idx.Int < 0 || idx.Int >= class.Slots() {
		return Selector{}, nil, selectorErrorf(&idx, "%s index must be between 0 and %d", class, class.Slots()-1)
	}
	return Selector{Class: class, Index: idx.Int}, atoms[2:], nil
}
