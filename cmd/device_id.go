package cmd

import (
	"strconv"

	"github.com/pkg/errors"
)

// MaxDeviceID is the highest SysEx device id; ids are data bytes.
const MaxDeviceID = 0x7F

// DeviceID is a flag.Value holding a SysEx device id. Set rejects values
// that do not fit in a data byte instead of truncating them.
type DeviceID byte

func (d *DeviceID) String() string {
	if d == nil {
		return "0"
	}
	return strconv.Itoa(int(*d))
}

func (d *DeviceID) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return errors.Errorf("device id %q is not a number", s)
	}
	if v > MaxDeviceID {
		return errors.Errorf("device id %d is out of range [0, %d]", v, MaxDeviceID)
	}
	*d = DeviceID(v)
	return nil
}
