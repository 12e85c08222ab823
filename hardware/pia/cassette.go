package pia

import (
	"github.com/mjsallard/dragon6809/host"
)

// Cassette bit timing. Each bit of a cassette byte is presented as a
// square wave on PA0: low for the first half of the threshold count of
// reads, high for the second half. A short period reads as a one, a long
// period as a zero. The ROM's own counting threshold (18, held in Dragon
// RAM at 0x0092) sits between the two.
const (
	bitThresholdHi = 4
	bitThresholdLo = 20
)

// cassettePump synthesises the cassette input bit stream from the mounted
// image file, synchronised to the ROM's polling of PA0.
type cassettePump struct {
	file host.CassetteFile

	current      uint8
	bitIndex     int
	bitThreshold int
	bitCount     int
}

// read produces the next PA0 sample, advancing the bit stream as the
// ROM's reads consume it. Bits leave the current byte LSB first.
func (c *cassettePump) read(data uint8) uint8 {
	if c.bitIndex == 0 {
		c.current = c.nextByte()
		c.bitIndex = 9
		c.bitThreshold = 0
		c.bitCount = 0
	}

	if c.bitCount == c.bitThreshold {
		if c.current&0x01 == 0x01 {
			c.bitThreshold = bitThresholdHi
		} else {
			c.bitThreshold = bitThresholdLo
		}
		c.bitCount = 0
		c.current >>= 1
		c.bitIndex--
	}

	if c.bitCount < c.bitThreshold/2 {
		data &^= 0x01
	} else {
		data |= 0x01
	}

	c.bitCount++

	return data
}

// nextByte reads from the cassette image. At end of file (or with no image
// mounted) the pump feeds 0x55 padding forever and never closes the file:
// the alternating bit pattern is indistinguishable from the leader tone,
// so playback simply runs off the end of the tape.
func (c *cassettePump) nextByte() uint8 {
	if c.file == nil {
		return 0x55
	}
	b, err := c.file.ReadByte()
	if err != nil {
		return 0x55
	}
	return b
}
