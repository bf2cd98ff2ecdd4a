//go:build cgo

package device

import (
	"log"
	"sync"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

const sysExBufferSize = 1 << 20

type (
	RTMIDIContext struct {
		driver   *rtmididrv.Driver
		messages chan []byte

		mu        sync.Mutex
		currentIn drivers.In
		stop      func()
		out       drivers.Out
	}

	rtmidiIn struct {
		context *RTMIDIContext
		in      drivers.In
	}

	rtmidiOut struct {
		context *RTMIDIContext
		out     drivers.Out
	}
)

// NewContext opens the RTMIDI driver. If that fails the context still works
// but lists no ports.
func NewContext() *RTMIDIContext {
	m := &RTMIDIContext{messages: make(chan []byte, 64)}
	var err error
	if m.driver, err = rtmididrv.New(); err != nil {
		log.Printf("rtmidi driver unavailable: %v", err)
		m.driver = nil
	}
	return m
}

func (m *RTMIDIContext) Support() Support {
	if m.driver == nil {
		return SupportNoDriver
	}
	return Supported
}

func (m *RTMIDIContext) Inputs(yield func(port Port) bool) {
	if m.driver == nil {
		return
	}
	ins, err := m.driver.Ins()
	if err != nil {
		return
	}
	for _, in := range ins {
		if !yield(rtmidiIn{context: m, in: in}) {
			return
		}
	}
}

func (m *RTMIDIContext) Outputs(yield func(port Port) bool) {
	if m.driver == nil {
		return
	}
	outs, err := m.driver.Outs()
	if err != nil {
		return
	}
	for _, out := range outs {
		if !yield(rtmidiOut{context: m, out: out}) {
			return
		}
	}
}

func (m *RTMIDIContext) Messages() <-chan []byte { return m.messages }

// SendSysEx sends a complete message on the open output port.
func (m *RTMIDIContext) SendSysEx(msg []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.out == nil || !m.out.IsOpen() {
		return ErrNoOutput
	}
	return m.out.Send(msg)
}

func (m *RTMIDIContext) handleMessage(msg midi.Message, timestampms int32) {
	if !msg.Is(midi.SysExMsg) {
		return
	}
	select {
	case m.messages <- append([]byte(nil), msg...): // if the channel is full, just drop the message
	default:
	}
}

func (m *RTMIDIContext) Close() {
	if m.driver == nil {
		return
	}
	m.mu.Lock()
	if m.stop != nil {
		m.stop()
	}
	if m.currentIn != nil && m.currentIn.IsOpen() {
		m.currentIn.Close()
	}
	if m.out != nil && m.out.IsOpen() {
		m.out.Close()
	}
	m.mu.Unlock()
	m.driver.Close()
}

// Open an input port while closing the currently open one if necessary.
func (p rtmidiIn) Open() error {
	m := p.context
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.currentIn == p.in {
		return nil
	}
	if m.driver == nil {
		return ErrNoDriver
	}
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
	if m.currentIn != nil && m.currentIn.IsOpen() {
		m.currentIn.Close()
	}
	m.currentIn = nil
	if err := p.in.Open(); err != nil {
		return errors.Wrap(err, "opening MIDI input failed")
	}
	stop, err := midi.ListenTo(p.in, m.handleMessage, midi.UseSysEx(), midi.SysExBufferSize(sysExBufferSize))
	if err != nil {
		p.in.Close()
		return errors.Wrap(err, "listening to MIDI input failed")
	}
	m.currentIn, m.stop = p.in, stop
	return nil
}

func (p rtmidiIn) Close() error   { return p.in.Close() }
func (p rtmidiIn) IsOpen() bool   { return p.in.IsOpen() }
func (p rtmidiIn) String() string { return p.in.String() }

// Open an output port while closing the currently open one if necessary.
func (p rtmidiOut) Open() error {
	m := p.context
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.out == p.out {
		return nil
	}
	if m.out != nil && m.out.IsOpen() {
		m.out.Close()
	}
	m.out = nil
	if err := p.out.Open(); err != nil {
		return errors.Wrap(err, "opening MIDI output failed")
	}
	m.out = p.out
	return nil
}

func (p rtmidiOut) Close() error   { return p.out.Close() }
func (p rtmidiOut) IsOpen() bool   { return p.out.IsOpen() }
func (p rtmidiOut) String() string { return p.out.String() }
