package command

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rytmctl/rytm"
)

// Unset is the result of plockget on a parameter that has no lock.
const Unset = "unset"

// The plock identifiers are the lockable fields of the kit and sound tables,
// collected once so the two paths resolve a name to the same param.
var plockPlain, plockEnums = map[string]rytm.Param{}, map[string]rytm.Param{}

func init() {
	kitTable.lockables(plockPlain, plockEnums)
	soundTable.lockables(plockPlain, plockEnums)
}

// PlockIdentifiers returns the names accepted after plockset, plockget and
// plockclear.
func PlockIdentifiers() []string {
	ret := make([]string, 0, len(plockPlain)+len(plockEnums))
	for _, t := range []map[string]rytm.Param{plockPlain, plockEnums} {
		for name := range t {
			ret = append(ret, name)
		}
	}
	return ret
}

func (w *walker) plock(t *rytm.Trig, keyword string) error {
	switch {
	case keyword == PlockGet && w.op != opGet:
		return formatErrorf(keyword, nil, "is only valid in get messages")
	case keyword != PlockGet && w.op != opSet:
		return formatErrorf(keyword, nil, "is only valid in set messages")
	}
	tok, err := w.symbol(keyword)
	if err != nil {
		return err
	}
	ident := tok.Symbol
	typ, variant, compound := strings.Cut(ident, ":")
	var p rytm.Param
	if compound {
		var ok bool
		if p, ok = plockEnums[typ]; !ok {
			if _, plain := plockPlain[typ]; !plain && locks(typ) {
				return identifierErrorf(typ, "can not be parameter locked")
			}
			return enumError(typ, errors.Errorf("invalid enum type for %s", keyword))
		}
		ident = typ
	} else {
		var ok bool
		if p, ok = plockPlain[ident]; !ok {
			if p, ok = plockEnums[ident]; !ok {
				if locks(ident) {
					return identifierErrorf(ident, "can not be parameter locked")
				}
				return identifierErrorf(ident, "is not a kit or sound identifier")
			}
			if keyword == PlockSet {
				return enumError(ident, errors.Errorf("expected %s:<value>", ident))
			}
		}
	}
	w.d.tracef("%s %s", keyword, ident)

	switch keyword {
	case PlockGet:
		if err := w.end(ident); err != nil {
			return err
		}
		v, ok, err := t.Plock(p)
		if err != nil {
			return sdkError(ident, err)
		}
		val := Symbol(Unset)
		if ok {
			val = paramAtom(p, v)
		}
		w.emit([]Atom{Symbol(ident), Int(w.index), val})
		return nil
	case PlockClear:
		if err := w.end(ident); err != nil {
			return err
		}
		if err := t.ClearPlock(p); err != nil {
			return sdkError(ident, err)
		}
		return nil
	}

	var v float64
	if compound {
		i, err := Variant(ident, p, Symbol(variant))
		if err != nil {
			return err
		}
		v = float64(i)
	} else {
		param, err := w.next(ident, "parameter")
		if err != nil {
			return err
		}
		if v, err = paramValue(ident, p, param); err != nil {
			return err
		}
	}
	if err := w.end(ident); err != nil {
		return err
	}
	if err := t.SetPlock(p, v); err != nil {
		return sdkError(ident, err)
	}
	return nil
}

// locks reports whether name is a kit or sound identifier at all, so an
// unlockable field gets a better error than an unknown one.
func locks(name string) bool {
	return kitTable.has(name) || soundTable.has(name)
}
