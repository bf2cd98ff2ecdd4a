// Package device connects the object shell to an Analog Rytm over MIDI.
// Incoming SysEx is queued on Messages; outgoing SysEx goes to the open
// output port.
package device

import (
	"strings"

	"github.com/pkg/errors"
)

type (
	Context interface {
		Inputs(yield func(port Port) bool)
		Outputs(yield func(port Port) bool)
		Messages() <-chan []byte
		SendSysEx(msg []byte) error
		Close()
		Support() Support
	}

	Port interface {
		Open() error
		Close() error
		IsOpen() bool
		String() string
	}

	Support int
)

const (
	SupportNotCompiled Support = iota
	SupportNoDriver
	Supported
)

var (
	ErrNoDriver = errors.New("no MIDI driver available")
	ErrNoOutput = errors.New("no MIDI output port is open")
	ErrNoPort   = errors.New("no matching MIDI port")
)

func (s Support) String() string {
	switch s {
	case SupportNoDriver:
		return "no driver"
	case Supported:
		return "supported"
	}
	return "not compiled"
}

// FindByPrefix returns the first port whose name starts with prefix. An
// empty prefix matches the first port.
func FindByPrefix(ports func(yield func(Port) bool), prefix string) (Port, bool) {
	var ret Port
	ports(func(p Port) bool {
		if strings.HasPrefix(p.String(), prefix) {
			ret = p
			return false
		}
		return true
	})
	return ret, ret != nil
}

// OpenByPrefix opens the first port matching prefix.
func OpenByPrefix(ports func(yield func(Port) bool), prefix string) (Port, error) {
	p, ok := FindByPrefix(ports, prefix)
	if !ok {
		return nil, errors.Wrapf(ErrNoPort, "prefix %q", prefix)
	}
	if err := p.Open(); err != nil {
		return nil, errors.Wrapf(err, "opening %s", p)
	}
	return p, nil
}

// NullContext is a Context without any ports, used when MIDI support is
// not compiled in.
type NullContext struct{}

func (NullContext) Inputs(yield func(port Port) bool)  {}
func (NullContext) Outputs(yield func(port Port) bool) {}
func (NullContext) Messages() <-chan []byte            { return nil }
func (NullContext) SendSysEx(msg []byte) error         { return ErrNoOutput }
func (NullContext) Close()                             {}
func (NullContext) Support() Support                   { return SupportNotCompiled }
