//go:build !cgo

package cmd

import "github.com/rytmctl/rytm/device"

func NewMIDIContext() device.Context {
	// with no cgo, we cannot use MIDI, so return a null context
	return device.NullContext{}
}
