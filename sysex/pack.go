package sysex

// pack spreads data over 7-bit bytes. Each group of up to seven bytes is
// preceded by a byte holding their high bits, bit i for byte i.
func pack(data []byte) []byte {
	ret := make([]byte, 0, len(data)+(len(data)+6)/7)
	for len(data) > 0 {
		n := min(len(data), 7)
		var msb byte
		for i, b := range data[:n] {
			msb |= (b >> 7) << i
		}
		ret = append(ret, msb)
		for _, b := range data[:n] {
			ret = append(ret, b&0x7F)
		}
		data = data[n:]
	}
	return ret
}

func unpack(packed []byte) ([]byte, error) {
	ret := make([]byte, 0, len(packed))
	for len(packed) > 0 {
		n := min(len(packed), 8)
		if n == 1 {
			return nil, ErrLength
		}
		msb := packed[0]
		for i, b := range packed[1:n] {
			if b > 0x7F {
				return nil, ErrDataByte
			}
			ret = append(ret, b|(msb>>i&1)<<7)
		}
		packed = packed[n:]
	}
	return ret, nil
}
