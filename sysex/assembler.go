package sysex

import (
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
)

// realtime is the lowest MIDI system real-time status byte.
const realtime = 0xF8

var ErrOutsideMessage = errors.New("byte outside of a SysEx message; only SysEx is understood here")

// Assembler rebuilds messages from a stream that delivers one byte at a
// time, as a serial SysEx input does.
type Assembler struct {
	buf    []byte
	inside bool
}

// Feed adds one byte. It returns the complete message when v ends one. A
// start byte in the middle of a message discards the unfinished message.
// Real-time bytes such as clock may arrive anywhere, even inside a message,
// and are skipped.
func (a *Assembler) Feed(v int) (midi.Message, bool, error) {
	if v < 0 || v > 0xFF {
		return nil, false, errors.Wrapf(ErrDataByte, "%d", v)
	}
	if v >= realtime {
		return nil, false, nil
	}
	if v == Start {
		a.buf = append(a.buf[:0], Start)
		a.inside = true
		return nil, false, nil
	}
	if !a.inside {
		return nil, false, errors.Wrapf(ErrOutsideMessage, "0x%02X", v)
	}
	a.buf = append(a.buf, byte(v))
	if v != End {
		return nil, false, nil
	}
	a.inside = false
	msg := make(midi.Message, len(a.buf))
	copy(msg, a.buf)
	return msg, true, nil
}

// Buffering reports whether a message has been started but not finished.
func (a *Assembler) Buffering() bool { return a.inside }

// Reset drops any unfinished message.
func (a *Assembler) Reset() {
	a.buf = a.buf[:0]
	a.inside = false
}
