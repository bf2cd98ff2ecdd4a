package rytm

import "github.com/pkg/errors"

type (
	// Project is the complete object space of one device. It is not safe for
	// concurrent use; callers serialize access, typically holding one lock
	// for the duration of a whole message.
	Project struct {
		Patterns   [NumPatterns]Pattern
		Kits       [NumKits]Kit
		PoolSounds [NumPoolSounds]Sound
		Globals    [NumGlobals]Global
		Settings   Settings
		WorkBuffer WorkBuffer
	}

	// WorkBuffer is the live editing state of the device: the pattern, kit
	// and global currently loaded, and the sounds of the loaded kit.
	WorkBuffer struct {
		Pattern Pattern
		Kit     Kit
		Sounds  [NumSoundTracks]Sound
		Global  Global
	}
)

// NewProject returns a project with every object at its default.
func NewProject() *Project {
	p := new(Project)
	for i := range p.Patterns {
		p.Patterns[i] = newPattern(i, false)
	}
	for i := range p.Kits {
		p.Kits[i] = newKit(i, false)
	}
	for i := range p.PoolSounds {
		p.PoolSounds[i] = newPoolSound(i)
	}
	for i := range p.Globals {
		p.Globals[i] = newGlobal(i, false)
	}
	p.Settings = newSettings()
	p.WorkBuffer.Pattern = newPattern(0, true)
	p.WorkBuffer.Kit = newKit(0, true)
	for i := range p.WorkBuffer.Sounds {
		p.WorkBuffer.Sounds[i] = newWorkBufferSound(i)
	}
	p.WorkBuffer.Global = newGlobal(0, true)
	return p
}

// Relink stamps the positional metadata of every object. Call it after
// replacing objects wholesale, e.g. after decoding a snapshot.
func (p *Project) Relink() {
	for i := range p.Patterns {
		p.Patterns[i].relink(i, false)
	}
	for i := range p.Kits {
		p.Kits[i].relink(i, false)
	}
	for i := range p.PoolSounds {
		s := &p.PoolSounds[i]
		s.Index, s.IsPool, s.IsKit, s.IsWorkBuffer, s.KitNumber = i, true, false, false, 0
	}
	for i := range p.Globals {
		p.Globals[i].Index, p.Globals[i].IsWorkBuffer = i, false
	}
	p.WorkBuffer.Pattern.relink(0, true)
	p.WorkBuffer.Kit.relink(0, true)
	for i := range p.WorkBuffer.Sounds {
		s := &p.WorkBuffer.Sounds[i]
		s.Index, s.IsPool, s.IsKit, s.IsWorkBuffer, s.KitNumber = i, false, true, true, 0
	}
	p.WorkBuffer.Global.Index, p.WorkBuffer.Global.IsWorkBuffer = 0, true
}

func (p *Project) Pattern(i int) (*Pattern, error) {
	if err := checkIndex("pattern", i, NumPatterns); err != nil {
		return nil, err
	}
	return &p.Patterns[i], nil
}

func (p *Project) Kit(i int) (*Kit, error) {
	if err := checkIndex("kit", i, NumKits); err != nil {
		return nil, err
	}
	return &p.Kits[i], nil
}

func (p *Project) PoolSound(i int) (*Sound, error) {
	if err := checkIndex("pool sound", i, NumPoolSounds); err != nil {
		return nil, err
	}
	return &p.PoolSounds[i], nil
}

func (p *Project) Global(i int) (*Global, error) {
	if err := checkIndex("global", i, NumGlobals); err != nil {
		return nil, err
	}
	return &p.Globals[i], nil
}

// WorkBufferSound returns the work buffer sound on sound track i.
func (p *Project) WorkBufferSound(i int) (*Sound, error) {
	if err := checkIndex("work buffer sound", i, NumSoundTracks); err != nil {
		return nil, err
	}
	return &p.WorkBuffer.Sounds[i], nil
}

// Object returns a pointer to the object of type t addressed by index, or by
// the work buffer when workBuffer is set. The index is ignored for objects
// that have a single work buffer instance and for settings.
func (p *Project) Object(t ObjectType, index int, workBuffer bool) (any, error) {
	switch t {
	case PatternObject:
		if workBuffer {
			return &p.WorkBuffer.Pattern, nil
		}
		return p.Pattern(index)
	case KitObject:
		if workBuffer {
			return &p.WorkBuffer.Kit, nil
		}
		return p.Kit(index)
	case SoundObject:
		if workBuffer {
			return p.WorkBufferSound(index)
		}
		return p.PoolSound(index)
	case GlobalObject:
		if workBuffer {
			return &p.WorkBuffer.Global, nil
		}
		return p.Global(index)
	case SettingsObject:
		return &p.Settings, nil
	}
	return nil, errors.Wrapf(ErrUnknownObject, "0x%02x", byte(t))
}
