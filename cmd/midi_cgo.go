//go:build cgo

package cmd

import "github.com/rytmctl/rytm/device"

func NewMIDIContext() device.Context {
	return device.NewContext()
}
