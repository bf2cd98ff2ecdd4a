package command

import "github.com/pkg/errors"

// Outlet receives the result tuple of a get. Sending is best effort: the
// dispatcher ignores send errors and a get succeeds even when its result is
// dropped.
type Outlet interface {
	Send(atoms []Atom) error
}

type OutletFunc func(atoms []Atom) error

func (f OutletFunc) Send(atoms []Atom) error { return f(atoms) }

var ErrOutletFull = errors.New("outlet is full")

// ChanOutlet delivers results on a channel and drops them when the channel
// is full.
type ChanOutlet chan []Atom

func (c ChanOutlet) Send(atoms []Atom) error {
	select {
	case c <- atoms:
		return nil
	default:
		return ErrOutletFull
	}
}
