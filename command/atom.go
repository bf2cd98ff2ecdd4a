package command

import (
	"strconv"
	"strings"
)

type (
	// Atom is one token of a message: an integer, a float or a symbol.
	Atom struct {
		Kind   AtomKind
		Int    int
		Float  float64
		Symbol string
	}

	AtomKind int
)

const (
	IntAtom AtomKind = iota
	FloatAtom
	SymbolAtom
)

func (k AtomKind) String() string {
	switch k {
	case IntAtom:
		return "int"
	case FloatAtom:
		return "float"
	case SymbolAtom:
		return "symbol"
	}
	return "unknown"
}

func Int(v int) Atom       { return Atom{Kind: IntAtom, Int: v} }
func Float(v float64) Atom { return Atom{Kind: FloatAtom, Float: v} }
func Symbol(s string) Atom { return Atom{Kind: SymbolAtom, Symbol: s} }
func Bool(b bool) Atom     { return Int(boolInt(b)) }

func Symbols(s ...string) []Atom {
	ret := make([]Atom, len(s))
	for i, v := range s {
		ret[i] = Symbol(v)
	}
	return ret
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (a Atom) String() string {
	switch a.Kind {
	case IntAtom:
		return strconv.Itoa(a.Int)
	case FloatAtom:
		return strconv.FormatFloat(a.Float, 'f', -1, 64)
	}
	return a.Symbol
}

// Equal reports whether a and b have the same kind and value.
func (a Atom) Equal(b Atom) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case IntAtom:
		return a.Int == b.Int
	case FloatAtom:
		return a.Float == b.Float
	}
	return a.Symbol == b.Symbol
}

// ParseAtoms splits a line on white space. Tokens that parse as integers
// become Int atoms, tokens that parse as floats become Float atoms and
// everything else is a Symbol.
func ParseAtoms(line string) []Atom {
	fields := strings.Fields(line)
	ret := make([]Atom, 0, len(fields))
	for _, f := range fields {
		ret = append(ret, ParseAtom(f))
	}
	return ret
}

func ParseAtom(token string) Atom {
	if i, err := strconv.Atoi(token); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil && !strings.ContainsAny(token, "nN") {
		return Float(f)
	}
	return Symbol(token)
}

// FormatAtoms joins atoms with single spaces.
func FormatAtoms(atoms []Atom) string {
	var b strings.Builder
	for i, a := range atoms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(a.String())
	}
	return b.String()
}
