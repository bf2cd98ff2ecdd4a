// Package external is the object shell around the dispatcher: it owns the
// project and its lock, turns serial SysEx input into project updates and
// routes the query, send, set, get and debug selectors.
package external

import (
	"log"
	"sync"

	"github.com/pkg/errors"
	"github.com/rytmctl/rytm"
	"github.com/rytmctl/rytm/command"
	"github.com/rytmctl/rytm/sysex"
)

const (
	SelectorQuery = "query"
	SelectorSend  = "send"
	SelectorSet   = "set"
	SelectorGet   = "get"
	SelectorDebug = "debug"
)

var ErrSelector = errors.New("invalid selector; possible selectors are query, send, set, get and debug")

type (
	// SysExOutlet receives outgoing SysEx messages, F0 to F7 inclusive.
	SysExOutlet interface {
		SendSysEx(msg []byte) error
	}

	SysExOutletFunc func(msg []byte) error

	// Object is one instance of the shell. It is safe for concurrent use;
	// every message runs inside one critical section.
	Object struct {
		Device byte // SysEx device id of outgoing messages

		mu         sync.Mutex
		project    *rytm.Project
		dispatcher *command.Dispatcher

		asmMu sync.Mutex
		asm   sysex.Assembler

		sysexOut SysExOutlet
		queryOut command.Outlet
		logger   *log.Logger
	}
)

func (f SysExOutletFunc) SendSysEx(msg []byte) error { return f(msg) }

// Serial adapts a sink taking one byte at a time, like an int outlet that
// feeds a serial SysEx output.
func Serial(f func(v int)) SysExOutlet {
	return SysExOutletFunc(func(msg []byte) error {
		for _, b := range msg {
			f(int(b))
		}
		return nil
	})
}

// New returns an object with a fresh project. Either outlet may be nil, in
// which case its output is discarded.
func New(sysexOut SysExOutlet, queryOut command.Outlet, logger *log.Logger) *Object {
	if logger == nil {
		logger = log.Default()
	}
	return &Object{
		project:    rytm.NewProject(),
		dispatcher: command.NewDispatcher(logger),
		sysexOut:   sysexOut,
		queryOut:   queryOut,
		logger:     logger,
	}
}

// Project runs f with exclusive access to the project.
func (o *Object) Project(f func(p *rytm.Project)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	f(o.project)
}

// Int takes one byte of incoming SysEx. When a message completes, the dump
// it carries replaces the addressed object.
func (o *Object) Int(v int) error {
	o.asmMu.Lock()
	msg, done, err := o.asm.Feed(v)
	o.asmMu.Unlock()
	if err != nil || !done {
		return err
	}
	return o.receive(msg)
}

// SysEx takes a complete incoming message.
func (o *Object) SysEx(msg []byte) error {
	return o.receive(msg)
}

func (o *Object) receive(msg []byte) error {
	f, err := sysex.Parse(msg)
	if err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.dispatcher.Debug {
		o.logger.Printf("received %s dump, index %d, work buffer %v", f.Type, f.Index, f.WorkBuffer)
	}
	return sysex.Apply(o.project, f)
}

// Anything handles a message starting with a selector symbol.
func (o *Object) Anything(selector string, atoms []command.Atom) error {
	switch selector {
	case SelectorQuery:
		return o.query(atoms)
	case SelectorSend:
		return o.send(atoms)
	case SelectorSet:
		o.mu.Lock()
		defer o.mu.Unlock()
		return o.dispatcher.Set(o.project, atoms)
	case SelectorGet:
		return o.GetTo(atoms, o.queryOut)
	case SelectorDebug:
		return o.debug(atoms)
	}
	return errors.Wrap(ErrSelector, selector)
}

// GetTo handles a get message like Anything does, but sends the result to
// out instead of the query outlet.
func (o *Object) GetTo(atoms []command.Atom, out command.Outlet) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dispatcher.Get(o.project, atoms, out)
}

// Message handles a whole message, selector included.
func (o *Object) Message(atoms []command.Atom) error {
	if len(atoms) == 0 || atoms[0].Kind != command.SymbolAtom {
		return ErrSelector
	}
	return o.Anything(atoms[0].Symbol, atoms[1:])
}

func (o *Object) query(atoms []command.Atom) error {
	sel, err := parseTarget(SelectorQuery, atoms)
	if err != nil {
		return err
	}
	msg, err := sysex.Query(o.Device, sel.Class.Object(), sel.Index, sel.Class.WorkBuffer())
	if err != nil {
		return err
	}
	return o.emit(msg.Bytes())
}

func (o *Object) send(atoms []command.Atom) error {
	sel, err := parseTarget(SelectorSend, atoms)
	if err != nil {
		return err
	}
	o.mu.Lock()
	msg, err := sysex.Send(o.project, o.Device, sel.Class.Object(), sel.Index, sel.Class.WorkBuffer())
	o.mu.Unlock()
	if err != nil {
		return err
	}
	return o.emit(msg)
}

func (o *Object) emit(msg []byte) error {
	if o.sysexOut == nil {
		return nil
	}
	return o.sysexOut.SendSysEx(msg)
}

func parseTarget(selector string, atoms []command.Atom) (command.Selector, error) {
	sel, rest, err := command.ParseSelector(atoms)
	if err != nil {
		return sel, err
	}
	if len(rest) > 0 {
		return sel, errors.Errorf("%s takes only an object class and index, got %q", selector, command.FormatAtoms(rest))
	}
	return sel, nil
}

func (o *Object) debug(atoms []command.Atom) error {
	if len(atoms) != 1 {
		return errors.New("debug takes exactly one argument, 0 or 1")
	}
	on, err := command.Bool01(SelectorDebug, atoms[0])
	if err != nil {
		return err
	}
	o.mu.Lock()
	o.dispatcher.Debug = on
	o.mu.Unlock()
	return nil
}
