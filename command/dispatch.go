package command

import (
	"log"
	"strings"

	"github.com/pkg/errors"
	"github.com/rytmctl/rytm"
)

// Dispatcher resolves get and set messages against a project. It holds no
// project state and does no locking: the caller passes a project it has
// exclusive access to for the duration of the call.
type Dispatcher struct {
	// Debug traces every resolution step through Logger.
	Debug  bool
	Logger *log.Logger
}

func NewDispatcher(logger *log.Logger) *Dispatcher {
	return &Dispatcher{Logger: logger}
}

// Get resolves a get message, e.g. "pattern 3 5 10 note", and sends the
// result tuple to out.
func (d *Dispatcher) Get(p *rytm.Project, atoms []Atom, out Outlet) error {
	return d.dispatch(opGet, p, atoms, out)
}

// Set resolves a set message, e.g. "pattern 3 5 10 note 64", and applies it.
// On error the project is unchanged.
func (d *Dispatcher) Set(p *rytm.Project, atoms []Atom) error {
	return d.dispatch(opSet, p, atoms, nil)
}

func (d *Dispatcher) tracef(format string, args ...any) {
	if d.Debug && d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}

type op int

const (
	opGet op = iota
	opSet
)

func (o op) String() string {
	if o == opGet {
		return "get"
	}
	return "set"
}

func (d *Dispatcher) dispatch(o op, p *rytm.Project, atoms []Atom, out Outlet) error {
	sel, rest, err := ParseSelector(atoms)
	if err != nil {
		return err
	}
	d.tracef("%s %s", o, sel)
	w := &walker{op: o, index: sel.Index, tokens: rest, out: out, d: d}
	switch sel.Class {
	case ClassPattern:
		return w.pattern(&p.Patterns[sel.Index])
	case ClassPatternWorkBuffer:
		return w.pattern(&p.WorkBuffer.Pattern)
	case ClassKit:
		return w.kit(&p.Kits[sel.Index])
	case ClassKitWorkBuffer:
		return w.kit(&p.WorkBuffer.Kit)
	case ClassSound:
		return w.sound(&p.PoolSounds[sel.Index])
	case ClassSoundWorkBuffer:
		return w.sound(&p.WorkBuffer.Sounds[sel.Index])
	case ClassGlobal:
		return w.global(&p.Globals[sel.Index])
	case ClassGlobalWorkBuffer:
		return w.global(&p.WorkBuffer.Global)
	case ClassSettings:
		return w.settings(&p.Settings)
	}
	return selectorErrorf(nil, "unknown class %d", sel.Class)
}

// walker is the cursor over the tokens following the selector.
type walker struct {
	op     op
	index  int // index of the addressed top level object, echoed in results
	tokens []Atom
	pos    int
	out    Outlet
	d      *Dispatcher
}

func (w *walker) next(ident, what string) (Atom, error) {
	if w.pos >= len(w.tokens) {
		return Atom{}, formatErrorf(ident, nil, "missing %s", what)
	}
	tok := w.tokens[w.pos]
	w.pos++
	return tok, nil
}

func (w *walker) end(ident string) error {
	if w.pos < len(w.tokens) {
		tok := w.tokens[w.pos]
		return formatErrorf(ident, &tok, "unexpected trailing token")
	}
	return nil
}

func (w *walker) symbol(level string) (Atom, error) {
	tok, err := w.next(level, "identifier")
	if err != nil {
		return tok, err
	}
	if tok.Kind != SymbolAtom {
		return tok, formatErrorf(level, &tok, "expected an identifier")
	}
	return tok, nil
}

// child reads an index into the next level of the hierarchy.
func (w *walker) child(level string, tok Atom, n int) (int, error) {
	if tok.Int < 0 || tok.Int >= n {
		return 0, selectorErrorf(&tok, "%s index must be between 0 and %d", level, n-1)
	}
	w.d.tracef("%s %d", level, tok.Int)
	return tok.Int, nil
}

func (w *walker) emit(atoms []Atom) {
	if w.out == nil {
		return
	}
	if err := w.out.Send(atoms); err != nil {
		w.d.tracef("dropped %s: %v", FormatAtoms(atoms), err)
	}
}

func (w *walker) pattern(p *rytm.Pattern) error {
	tok, err := w.next("pattern", "track index or identifier")
	if err != nil {
		return err
	}
	switch tok.Kind {
	case IntAtom:
		i, err := w.child("track", tok, rytm.NumTracks)
		if err != nil {
			return err
		}
		return w.track(&p.Tracks[i])
	case SymbolAtom:
		return terminal(w, patternTable, p, tok)
	}
	return formatErrorf("pattern", &tok, "expected a track index or an identifier")
}

func (w *walker) track(t *rytm.Track) error {
	tok, err := w.next("track", "trig index or identifier")
	if err != nil {
		return err
	}
	switch tok.Kind {
	case IntAtom:
		i, err := w.child("trig", tok, rytm.NumTrigs)
		if err != nil {
			return err
		}
		return w.trig(&t.Trigs[i])
	case SymbolAtom:
		return terminal(w, trackTable, t, tok)
	}
	return formatErrorf("track", &tok, "expected a trig index or an identifier")
}

func (w *walker) trig(t *rytm.Trig) error {
	tok, err := w.symbol("trig")
	if err != nil {
		return err
	}
	switch tok.Symbol {
	case PlockSet, PlockGet, PlockClear:
		return w.plock(t, tok.Symbol)
	}
	return terminal(w, trigTable, t, tok)
}

func (w *walker) kit(k *rytm.Kit) error {
	tok, err := w.symbol("kit")
	if err != nil {
		return err
	}
	if tok.Symbol != KitSoundKeyword {
		return terminal(w, kitTable, k, tok)
	}
	tok, err = w.next(KitSoundKeyword, "kit sound index")
	if err != nil {
		return err
	}
	if tok.Kind != IntAtom {
		return formatErrorf(KitSoundKeyword, &tok, "expected a kit sound index")
	}
	i, err := w.child("kit sound", tok, rytm.NumSoundTracks)
	if err != nil {
		return err
	}
	return w.sound(&k.Sounds[i])
}

func (w *walker) sound(s *rytm.Sound) error {
	tok, err := w.symbol("sound")
	if err != nil {
		return err
	}
	return terminal(w, soundTable, s, tok)
}

func (w *walker) global(g *rytm.Global) error {
	tok, err := w.symbol("global")
	if err != nil {
		return err
	}
	return terminal(w, globalTable, g, tok)
}

func (w *walker) settings(s *rytm.Settings) error {
	tok, err := w.symbol("settings")
	if err != nil {
		return err
	}
	return terminal(w, settingsTable, s, tok)
}

// terminal handles the identifier that ends a path. A ':' in the token
// always selects the enumerated form, before any table is consulted.
// Enumerated elements take either form.
func terminal[T any](w *walker, t *table[T], o *T, tok Atom) error {
	ident := tok.Symbol
	if typ, variant, ok := strings.Cut(ident, ":"); ok {
		f, ok := t.enums[typ]
		if !ok {
			// slotted elements over an enumerated param take the same form
			if e, found := t.elements[typ]; found && e.enumerated() {
				f, ok = e, true
			}
		}
		if !ok {
			return enumError(typ, errors.Errorf("invalid enum type for %s", t.kind))
		}
		w.d.tracef("%s enum %s", t.kind, typ)
		slot, err := readSlot(w, f)
		if err != nil {
			return err
		}
		if err := w.end(typ); err != nil {
			return err
		}
		if w.op == opGet {
			w.emit(result(f, w.index, slot, f.get(o, slot)))
			return nil
		}
		return f.setVariant(o, slot, variant)
	}
	f, ok := t.plain[ident]
	if !ok {
		f, ok = t.elements[ident]
	}
	if !ok {
		if f, ok = t.enums[ident]; !ok {
			return identifierErrorf(ident, "is not a %s identifier", t.kind)
		}
		if w.op == opSet {
			return enumError(ident, errors.Errorf("expected %s:<value>", ident))
		}
	}
	w.d.tracef("%s %s", t.kind, ident)
	slot, err := readSlot(w, f)
	if err != nil {
		return err
	}
	if w.op == opGet {
		if err := w.end(ident); err != nil {
			return err
		}
		w.emit(result(f, w.index, slot, f.get(o, slot)))
		return nil
	}
	param, err := w.next(ident, "parameter")
	if err != nil {
		return err
	}
	if err := w.end(ident); err != nil {
		return err
	}
	return f.set(o, slot, param)
}

// readSlot reads the slot index that follows a slotted identifier.
func readSlot[T any](w *walker, f *field[T]) (int, error) {
	if f.slots == 0 {
		return 0, nil
	}
	tok, err := w.next(f.name, "slot index")
	if err != nil {
		return 0, err
	}
	return index(f.name, tok, f.slots)
}

func result[T any](f *field[T], index, slot int, v Atom) []Atom {
	if f.slots > 0 {
		return []Atom{Symbol(f.name), Int(index), Int(slot), v}
	}
	return []Atom{Symbol(f.name), Int(index), v}
}
