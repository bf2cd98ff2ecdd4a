// Package sysex frames Analog Rytm objects as SysEx messages. A message is
//
//	F0 00 20 3C 07 <device> <type> 01 01 <target> <index>
//	   <packed payload> <checksum hi> <checksum lo> <length x4> F7
//
// where type is the object type for dumps and the object type plus 0x10 for
// queries, target is 1 for the work buffer and 0 for the pool, and the
// payload is the yaml form of the object packed into 7-bit bytes.
package sysex

import (
	"github.com/pkg/errors"
	"github.com/rytmctl/rytm"
	"gitlab.com/gomidi/midi/v2"
	"gopkg.in/yaml.v3"
)

const (
	Start = 0xF0
	End   = 0xF7

	// QueryOffset is added to an object type to form its query type.
	QueryOffset = 0x10

	versionHi = 0x01
	versionLo = 0x01

	headerLen  = 10 // manufacturer through index, without F0
	trailerLen = 6  // checksum and length

	maxPayloadLen = 1<<28 - 1
)

var manufacturer = [...]byte{0x00, 0x20, 0x3C, 0x07}

var (
	ErrNotSysEx = errors.New("not a SysEx message")
	ErrNotRytm  = errors.New("not an Analog Rytm SysEx message")
	ErrChecksum = errors.New("SysEx checksum mismatch")
	ErrLength   = errors.New("SysEx length mismatch")
	ErrPayload  = errors.New("SysEx payload is too large")
	ErrNotDump  = errors.New("SysEx message is a query, not a dump")
	ErrDataByte = errors.New("SysEx data byte out of range")
)

// Frame is a parsed message. Payload holds the unpacked object data and is
// empty for queries.
type Frame struct {
	Device     byte
	Type       rytm.ObjectType
	Query      bool
	WorkBuffer bool
	Index      int
	Payload    []byte
}

// Decode unmarshals the payload of a dump into v.
func (f Frame) Decode(v any) error {
	if f.Query {
		return ErrNotDump
	}
	return errors.Wrapf(yaml.Unmarshal(f.Payload, v), "decoding %s dump", f.Type)
}

// Query returns the message that asks the device for an object.
func Query(device byte, t rytm.ObjectType, index int, workBuffer bool) (midi.Message, error) {
	return frame(device, byte(t)+QueryOffset, index, workBuffer, nil)
}

// Dump returns the message that carries v, the object of type t at index.
func Dump(device byte, t rytm.ObjectType, index int, workBuffer bool, v any) (midi.Message, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s", t)
	}
	return frame(device, byte(t), index, workBuffer, data)
}

func frame(device, typ byte, index int, workBuffer bool, payload []byte) (midi.Message, error) {
	if device > 0x7F || index < 0 || index > 0x7F {
		return nil, ErrDataByte
	}
	packed := pack(payload)
	if len(packed) > maxPayloadLen {
		return nil, ErrPayload
	}
	var target byte
	if workBuffer {
		target = 1
	}
	data := make([]byte, 0, headerLen+len(packed)+trailerLen)
	data = append(data, manufacturer[:]...)
	data = append(data, device, typ, versionHi, versionLo, target, byte(index))
	data = append(data, packed...)
	sum := checksum(packed)
	n := len(packed)
	data = append(data, byte(sum>>7), byte(sum&0x7F),
		byte(n>>21&0x7F), byte(n>>14&0x7F), byte(n>>7&0x7F), byte(n&0x7F))
	return midi.SysEx(data), nil
}

// Parse validates a message and returns its frame.
func Parse(msg midi.Message) (Frame, error) {
	var data []byte
	if !msg.GetSysEx(&data) {
		return Frame{}, ErrNotSysEx
	}
	if len(data) < headerLen+trailerLen {
		return Frame{}, ErrLength
	}
	for i, b := range manufacturer {
		if data[i] != b {
			return Frame{}, ErrNotRytm
		}
	}
	f := Frame{
		Device:     data[4],
		WorkBuffer: data[8] == 1,
		Index:      int(data[9]),
	}
	typ := data[5]
	if typ >= byte(rytm.KitObject)+QueryOffset {
		f.Query = true
		typ -= QueryOffset
	}
	f.Type = rytm.ObjectType(typ)
	if f.Type.String() == "unknown" {
		return Frame{}, errors.Wrapf(rytm.ErrUnknownObject, "type 0x%02X", data[5])
	}
	packed := data[headerLen : len(data)-trailerLen]
	trailer := data[len(data)-trailerLen:]
	n := int(trailer[2])<<21 | int(trailer[3])<<14 | int(trailer[4])<<7 | int(trailer[5])
	if n != len(packed) {
		return Frame{}, errors.Wrapf(ErrLength, "header says %d, got %d", n, len(packed))
	}
	if sum := int(trailer[0])<<7 | int(trailer[1]); sum != checksum(packed) {
		return Frame{}, ErrChecksum
	}
	payload, err := unpack(packed)
	if err != nil {
		return Frame{}, err
	}
	f.Payload = payload
	return f, nil
}

// checksum is the 14-bit sum of the packed payload.
func checksum(packed []byte) int {
	var sum int
	for _, b := range packed {
		sum += int(b)
	}
	return sum & 0x3FFF
}
