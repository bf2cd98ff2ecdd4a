package command

import (
	"math"
	"strconv"

	"github.com/rytmctl/rytm"
)

// Bool01 accepts exactly the integers 0 and 1.
func Bool01(ident string, a Atom) (bool, error) {
	if a.Kind == IntAtom && (a.Int == 0 || a.Int == 1) {
		return a.Int == 1, nil
	}
	return false, parameterErrorf(ident, &a, "expected 0 or 1")
}

// Number accepts integers and floats.
func Number(ident string, a Atom) (float64, error) {
	switch a.Kind {
	case IntAtom:
		return float64(a.Int), nil
	case FloatAtom:
		return a.Float, nil
	}
	return 0, parameterErrorf(ident, &a, "expected a number")
}

// Name accepts a symbol that is a valid object name.
func Name(ident string, a Atom) (string, error) {
	if a.Kind != SymbolAtom {
		return "", parameterErrorf(ident, &a, "expected a name")
	}
	if err := rytm.CheckName(a.Symbol); err != nil {
		return "", parameterErrorf(ident, &a, "%v", err)
	}
	return a.Symbol, nil
}

// Variant resolves a token to a variant index of p's enumeration. Integer
// tokens are matched by their decimal text, so numeric variant names such as
// note lengths can be written bare.
func Variant(ident string, p rytm.Param, a Atom) (int, error) {
	var name string
	switch a.Kind {
	case SymbolAtom:
		name = a.Symbol
	case IntAtom:
		name = strconv.Itoa(a.Int)
	default:
		return 0, parameterErrorf(ident, &a, "expected a variant name")
	}
	e := p.Info().Enum
	if e == nil {
		return 0, identifierErrorf(ident, "is not enumerated")
	}
	i, err := e.Parse(name)
	if err != nil {
		return 0, enumError(ident, err)
	}
	return i, nil
}

// index accepts an integer in [0, n).
func index(ident string, a Atom, n int) (int, error) {
	if a.Kind != IntAtom {
		return 0, formatErrorf(ident, &a, "expected an index")
	}
	if a.Int < 0 || a.Int >= n {
		return 0, parameterErrorf(ident, &a, "index out of range [0, %d]", n-1)
	}
	return a.Int, nil
}

// paramValue coerces a token into the numeric form of p: 0 or 1 for
// booleans, a truncated integer for integer params, the variant index for
// enumerations.
func paramValue(ident string, p rytm.Param, a Atom) (float64, error) {
	switch p.Info().Kind {
	case rytm.BoolParam:
		b, err := Bool01(ident, a)
		return float64(boolInt(b)), err
	case rytm.IntParam:
		v, err := Number(ident, a)
		return math.Trunc(v), err
	case rytm.FloatParam:
		return Number(ident, a)
	case rytm.EnumParam:
		i, err := Variant(ident, p, a)
		return float64(i), err
	}
	return 0, identifierErrorf(ident, "has no value")
}

func paramAtom(p rytm.Param, v float64) Atom {
	switch p.Info().Kind {
	case rytm.BoolParam:
		return Bool(v != 0)
	case rytm.IntParam:
		return Int(int(v))
	case rytm.EnumParam:
		return Symbol(p.Variant(int(v)))
	}
	return Float(v)
}
