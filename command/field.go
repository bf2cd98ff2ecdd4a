package command

import (
	"fmt"
	"strings"

	"github.com/rytmctl/rytm"
)

// field binds an identifier to one field of an object of type T. The same
// descriptor serves get, set and, for lockable params, the plock path, so
// the three can not drift apart.
type field[T any] struct {
	name  string
	param rytm.Param
	slots int                      // >0: the identifier takes a slot index
	ref   func(o *T, slot int) any // *int, *float64, *bool or *string
	read  func(o *T) Atom          // read only fields have read and no ref
}

type value interface {
	int | float64 | bool
}

func scalar[T any, V value](name string, p rytm.Param, ref func(o *T) *V) *field[T] {
	return &field[T]{name: name, param: p, ref: func(o *T, _ int) any { return ref(o) }}
}

func slotted[T any, V value](name string, p rytm.Param, slots int, ref func(o *T, slot int) *V) *field[T] {
	return &field[T]{name: name, param: p, slots: slots, ref: func(o *T, slot int) any { return ref(o, slot) }}
}

func named[T any](name string, ref func(o *T) *string) *field[T] {
	return &field[T]{name: name, ref: func(o *T, _ int) any { return ref(o) }}
}

func readOnly[T any](name string, read func(o *T) Atom) *field[T] {
	return &field[T]{name: name, read: read}
}

func (f *field[T]) enumerated() bool { return f.param.Info().Kind == rytm.EnumParam }

func (f *field[T]) get(o *T, slot int) Atom {
	if f.read != nil {
		return f.read(o)
	}
	switch v := f.ref(o, slot).(type) {
	case *int:
		if f.enumerated() {
			return Symbol(f.param.Variant(*v))
		}
		return Int(*v)
	case *float64:
		return Float(*v)
	case *bool:
		return Bool(*v)
	case *string:
		return Symbol(*v)
	}
	panic(fmt.Sprintf("command: field %s has an unsupported type", f.name))
}

// set coerces tok before touching o; a coercion failure leaves o unchanged.
func (f *field[T]) set(o *T, slot int, tok Atom) error {
	if f.read != nil {
		return identifierErrorf(f.name, "is read only")
	}
	dst := f.ref(o, slot)
	if s, ok := dst.(*string); ok {
		name, err := Name(f.name, tok)
		if err != nil {
			return err
		}
		if err := rytm.SetName(s, name); err != nil {
			return sdkError(f.name, err)
		}
		return nil
	}
	v, err := paramValue(f.name, f.param, tok)
	if err != nil {
		return err
	}
	return f.assign(dst, v)
}

func (f *field[T]) setVariant(o *T, slot int, variant string) error {
	i, err := Variant(f.name, f.param, Symbol(variant))
	if err != nil {
		return err
	}
	return f.assign(f.ref(o, slot), float64(i))
}

func (f *field[T]) assign(dst any, v float64) error {
	var err error
	switch d := dst.(type) {
	case *int:
		err = f.param.SetInt(d, int(v))
	case *float64:
		err = f.param.SetFloat(d, v)
	case *bool:
		err = f.param.SetBool(d, v != 0)
	default:
		err = rytm.ErrReadOnly
	}
	if err != nil {
		return sdkError(f.name, err)
	}
	return nil
}

// table is the identifier table of one object kind. Plain identifiers,
// enumerated types and kit elements are disjoint.
type table[T any] struct {
	kind     ObjectKind
	plain    map[string]*field[T]
	enums    map[string]*field[T]
	elements map[string]*field[T]
	order    []*field[T]
}

func newTable[T any](kind ObjectKind, plain, enums, elements []*field[T]) *table[T] {
	t := &table[T]{
		kind:     kind,
		plain:    map[string]*field[T]{},
		enums:    map[string]*field[T]{},
		elements: map[string]*field[T]{},
	}
	add := func(m map[string]*field[T], fields []*field[T], check func(f *field[T]) bool) {
		for _, f := range fields {
			if t.has(f.name) || strings.Contains(f.name, ":") || reserved(kind, f.name) {
				panic(fmt.Sprintf("command: %s identifier %q is not unique", kind, f.name))
			}
			if !check(f) {
				panic(fmt.Sprintf("command: %s identifier %q is in the wrong table", kind, f.name))
			}
			m[f.name] = f
			t.order = append(t.order, f)
		}
	}
	add(t.plain, plain, func(f *field[T]) bool { return !f.enumerated() })
	add(t.enums, enums, func(f *field[T]) bool { return f.read == nil && f.enumerated() })
	add(t.elements, elements, func(f *field[T]) bool { return f.slots > 0 })
	return t
}

func (t *table[T]) has(name string) bool {
	_, p := t.plain[name]
	_, e := t.enums[name]
	_, el := t.elements[name]
	return p || e || el
}

// lockables adds the lockable params of t to the plock tables.
func (t *table[T]) lockables(plain, enums map[string]rytm.Param) {
	for _, f := range t.order {
		if !f.param.Info().Lockable {
			continue
		}
		m := plain
		if f.enumerated() {
			m = enums
		}
		if _, ok := m[f.name]; ok {
			panic(fmt.Sprintf("command: lockable identifier %q is defined twice", f.name))
		}
		m[f.name] = f.param
	}
}

func (t *table[T]) describe() []Identifier {
	ret := make([]Identifier, 0, len(t.order))
	for _, f := range t.order {
		id := Identifier{
			Name:     f.name,
			Param:    f.param,
			Slots:    f.slots,
			ReadOnly: f.read != nil,
			Lockable: f.param.Info().Lockable,
		}
		switch {
		case t.elements[f.name] == f:
			id.Kind = ElementIdentifier
		case t.enums[f.name] == f:
			id.Kind = EnumIdentifier
		}
		if f.param == rytm.NoParam && f.read == nil {
			id.IsName = true
		}
		ret = append(ret, id)
	}
	return ret
}
