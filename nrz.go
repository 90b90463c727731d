package ledstrip

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

// Latch is how long the data line must stay low for the strip to latch a frame. SK6812 needs
// 80µs and recent WS2812B revisions 280µs.
const Latch = 300 * time.Microsecond

// NRZSymbolBits is the number of line bits sent for every data bit.
const NRZSymbolBits = 3

// expandNRZ converts a 8 bit channel intensity into the encoded 24 bits.
func expandNRZ(b byte) uint32 {
	// The stream is 1x01x01x01x01x01x01x01x0 with the x bits being the bits from
	// `b`, most significant first.
	out := uint32(0x924924)
	out |= uint32(b&0x80) << (3*7 + 1 - 7)
	out |= uint32(b&0x40) << (3*6 + 1 - 6)
	out |= uint32(b&0x20) << (3*5 + 1 - 5)
	out |= uint32(b&0x10) << (3*4 + 1 - 4)
	out |= uint32(b&0x08) << (3*3 + 1 - 3)
	out |= uint32(b&0x04) << (3*2 + 1 - 2)
	out |= uint32(b&0x02) << (3*1 + 1 - 1)
	out |= uint32(b&0x01) << (3*0 + 1 - 0)
	return out
}

// rasterNRZ encodes in as the line bits sent to the strip. The channel order is whatever order
// in has; no reordering is done.
//
// Each input byte is encoded over 3 bytes so out must be 3x as large as in.
//
// The encoding is NRZ: https://en.wikipedia.org/wiki/Non-return-to-zero
func rasterNRZ(out, in []byte) {
	for i, b := range in {
		v := expandNRZ(b)
		out[3*i+0] = byte(v >> 16)
		out[3*i+1] = byte(v >> 8)
		out[3*i+2] = byte(v)
	}
}

// latchBytes is the number of zero bytes that keep the line low for [Latch] when sending line
// bits at f.
func latchBytes(f physic.Frequency) int {
	perByte := 8 * f.Period()
	if perByte <= 0 {
		return 0
	}
	return int((Latch + perByte - 1) / perByte)
}
