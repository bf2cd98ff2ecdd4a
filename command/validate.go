package command

import (
	"github.com/pkg/errors"
	"github.com/rytmctl/rytm"
)

// Validate checks an object built outside the dispatcher, such as a decoded
// dump, against the rules set and plockset enforce: every settable field in
// its param's range, every name valid, every lock on a lockable param of the
// right track with a value in range. obj is a *rytm.Pattern, *rytm.Kit,
// *rytm.Sound, *rytm.Global or *rytm.Settings.
func Validate(obj any) error {
	switch o := obj.(type) {
	case *rytm.Pattern:
		return validatePattern(o)
	case *rytm.Kit:
		return validateKit(o)
	case *rytm.Sound:
		return soundTable.validate(o)
	case *rytm.Global:
		return globalTable.validate(o)
	case *rytm.Settings:
		return settingsTable.validate(o)
	}
	return errors.Errorf("can not validate %T", obj)
}

// ValidateProject validates every object of p.
func ValidateProject(p *rytm.Project) error {
	for i := range p.Patterns {
		if err := validatePattern(&p.Patterns[i]); err != nil {
			return errors.Wrapf(err, "pattern %d", i)
		}
	}
	for i := range p.Kits {
		if err := validateKit(&p.Kits[i]); err != nil {
			return errors.Wrapf(err, "kit %d", i)
		}
	}
	for i := range p.PoolSounds {
		if err := soundTable.validate(&p.PoolSounds[i]); err != nil {
			return errors.Wrapf(err, "sound %d", i)
		}
	}
	for i := range p.Globals {
		if err := globalTable.validate(&p.Globals[i]); err != nil {
			return errors.Wrapf(err, "global %d", i)
		}
	}
	if err := settingsTable.validate(&p.Settings); err != nil {
		return errors.Wrap(err, "settings")
	}
	wb := &p.WorkBuffer
	if err := validatePattern(&wb.Pattern); err != nil {
		return errors.Wrap(err, "pattern_wb")
	}
	if err := validateKit(&wb.Kit); err != nil {
		return errors.Wrap(err, "kit_wb")
	}
	for i := range wb.Sounds {
		if err := soundTable.validate(&wb.Sounds[i]); err != nil {
			return errors.Wrapf(err, "sound_wb %d", i)
		}
	}
	if err := globalTable.validate(&wb.Global); err != nil {
		return errors.Wrap(err, "global_wb")
	}
	return nil
}

func validatePattern(p *rytm.Pattern) error {
	if err := patternTable.validate(p); err != nil {
		return err
	}
	for i := range p.Tracks {
		t := &p.Tracks[i]
		if err := trackTable.validate(t); err != nil {
			return errors.Wrapf(err, "track %d", i)
		}
		for j := range t.Trigs {
			trig := &t.Trigs[j]
			if err := trigTable.validate(trig); err != nil {
				return errors.Wrapf(err, "track %d trig %d", i, j)
			}
			if err := trig.CheckLocks(i); err != nil {
				return errors.Wrapf(sdkError(PlockSet, err), "track %d trig %d", i, j)
			}
		}
	}
	return nil
}

func validateKit(k *rytm.Kit) error {
	if err := kitTable.validate(k); err != nil {
		return err
	}
	for i := range k.Sounds {
		if err := soundTable.validate(&k.Sounds[i]); err != nil {
			return errors.Wrapf(err, "kit sound %d", i)
		}
	}
	return nil
}

// validate checks every settable field of o the way set checks a new value.
func (t *table[T]) validate(o *T) error {
	for _, f := range t.order {
		if f.read != nil {
			continue
		}
		slots := max(f.slots, 1)
		for slot := 0; slot < slots; slot++ {
			if err := f.validate(o, slot); err != nil {
				if f.slots > 0 {
					return errors.Wrapf(err, "slot %d", slot)
				}
				return err
			}
		}
	}
	return nil
}

func (f *field[T]) validate(o *T, slot int) error {
	var err error
	switch v := f.ref(o, slot).(type) {
	case *int:
		err = f.param.Check(float64(*v))
	case *float64:
		err = f.param.Check(*v)
	case *string:
		err = rytm.CheckName(*v)
	}
	if err != nil {
		return sdkError(f.name, err)
	}
	return nil
}
