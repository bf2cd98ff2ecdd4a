package sysex

import (
	"github.com/pkg/errors"
	"github.com/rytmctl/rytm"
	"github.com/rytmctl/rytm/command"
)

// Apply replaces the object a dump addresses with the dumped object. Fields
// the dump omits take their zero value rather than keeping the old one. A
// dump holding any value set or plockset would reject is refused whole and
// the project is left unchanged.
func Apply(p *rytm.Project, f Frame) error {
	if f.Query {
		return ErrNotDump
	}
	obj, err := p.Object(f.Type, f.Index, f.WorkBuffer)
	if err != nil {
		return err
	}
	switch o := obj.(type) {
	case *rytm.Pattern:
		err = replace(f, o)
	case *rytm.Kit:
		err = replace(f, o)
	case *rytm.Sound:
		err = replace(f, o)
	case *rytm.Global:
		err = replace(f, o)
	case *rytm.Settings:
		err = replace(f, o)
	default:
		err = errors.Wrapf(rytm.ErrUnknownObject, "%T", obj)
	}
	if err != nil {
		return err
	}
	p.Relink()
	return nil
}

func replace[T any](f Frame, dst *T) error {
	var v T
	if err := f.Decode(&v); err != nil {
		return err
	}
	if err := command.Validate(&v); err != nil {
		return errors.Wrapf(err, "invalid %s dump", f.Type)
	}
	*dst = v
	return nil
}

// Send returns the dump of the object a selector addresses.
func Send(p *rytm.Project, device byte, t rytm.ObjectType, index int, workBuffer bool) ([]byte, error) {
	obj, err := p.Object(t, index, workBuffer)
	if err != nil {
		return nil, err
	}
	msg, err := Dump(device, t, index, workBuffer, obj)
	if err != nil {
		return nil, err
	}
	return msg.Bytes(), nil
}
