package pixel

import (
	"fmt"
	"image/color"
	"strings"
)

// Models for the standard color types.
var (
	RGBModel  color.Model = color.ModelFunc(rgbModel)
	RGBWModel color.Model = color.ModelFunc(rgbwModel)
)

// Byte offsets of the channels within an RGBW pixel.
//
// Green comes first because that is the order the strips expect on the wire; the bytes are handed
// to the transmitter unmodified.
const (
	OffsetGreen = iota
	OffsetRed
	OffsetBlue
	OffsetWhite
)

var (
	Black = RGB{}
	White = RGB{R: 0xff, G: 0xff, B: 0xff}
)

// RGB represents a 24-bit color with one byte for each of red, green and blue.
type RGB struct {
	R, G, B uint8
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// IsGray reports if all three channels are equal.
func (c RGB) IsGray() bool {
	return c.R == c.G && c.R == c.B
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func rgbModel(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}
	return toRGB(c)
}

func toRGB(c color.Color) RGB {
	switch c := c.(type) {
	case RGB:
		return c
	default:
		r, g, b, _ := c.RGBA()
		return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	}
}

// RGBW represents a 32-bit pixel with a dedicated white channel.
//
// The bytes are stored as green, red, blue, white; use the accessors rather than indexing.
type RGBW [4]byte

// NewRGBW returns a pixel with all four channels set.
func NewRGBW(r, g, b, w uint8) RGBW {
	var p RGBW
	p[OffsetRed] = r
	p[OffsetGreen] = g
	p[OffsetBlue] = b
	p[OffsetWhite] = w
	return p
}

// FromRGB converts an RGB color to an RGBW pixel, see [RGBW.SetRGB].
func FromRGB(c RGB) RGBW {
	var p RGBW
	p.SetRGB(c)
	return p
}

func (p RGBW) Red() uint8   { return p[OffsetRed] }
func (p RGBW) Green() uint8 { return p[OffsetGreen] }
func (p RGBW) Blue() uint8  { return p[OffsetBlue] }
func (p RGBW) White() uint8 { return p[OffsetWhite] }

func (p *RGBW) SetRed(v uint8)   { p[OffsetRed] = v }
func (p *RGBW) SetGreen(v uint8) { p[OffsetGreen] = v }
func (p *RGBW) SetBlue(v uint8)  { p[OffsetBlue] = v }
func (p *RGBW) SetWhite(v uint8) { p[OffsetWhite] = v }

// Bytes returns the raw pixel bytes. The slice shares storage with p.
func (p *RGBW) Bytes() []byte {
	return p[:]
}

// SetRGB assigns an RGB color to the pixel.
//
// Gray colors (red, green and blue all equal, including black) drive only the white channel.
// Any other color drives red, green and blue and leaves white off. The two are never mixed.
func (p *RGBW) SetRGB(c RGB) {
	if c.IsGray() {
		p[OffsetRed] = 0
		p[OffsetGreen] = 0
		p[OffsetBlue] = 0
		p[OffsetWhite] = c.R
		return
	}
	p[OffsetRed] = c.R
	p[OffsetGreen] = c.G
	p[OffsetBlue] = c.B
	p[OffsetWhite] = 0
}

// RGBA reports the light emitted by the pixel: white adds equally to red, green and blue.
func (p RGBW) RGBA() (r, g, b, a uint32) {
	w := uint32(p[OffsetWhite])
	r = min(uint32(p[OffsetRed])+w, 0xff)
	r |= r << 8
	g = min(uint32(p[OffsetGreen])+w, 0xff)
	g |= g << 8
	b = min(uint32(p[OffsetBlue])+w, 0xff)
	b |= b << 8
	return r, g, b, 0xffff
}

func (p RGBW) String() string {
	return fmt.Sprintf("rgbw(%d,%d,%d,%d)", p.Red(), p.Green(), p.Blue(), p.White())
}

func rgbwModel(c color.Color) color.Color {
	switch c := c.(type) {
	case RGBW:
		return c
	case RGB:
		return FromRGB(c)
	default:
		return FromRGB(toRGB(c))
	}
}

// Slot is one 3-byte pixel position as walked by an RGB strip transmitter.
type Slot [3]byte

// ChannelOrder is the order in which the color channels of an RGB pixel are stored.
type ChannelOrder uint8

// Supported channel orders.
const (
	OrderGRB ChannelOrder = iota // WS2811, WS2812, SK6812
	OrderRGB
	OrderRBG
	OrderGBR
	OrderBRG
	OrderBGR
)

var channelOrderNames = [...]string{"GRB", "RGB", "RBG", "GBR", "BRG", "BGR"}

// channelOffsets are the red, green and blue byte offsets for each order.
var channelOffsets = [...][3]int{
	OrderGRB: {1, 0, 2},
	OrderRGB: {0, 1, 2},
	OrderRBG: {0, 2, 1},
	OrderGBR: {2, 0, 1},
	OrderBRG: {1, 2, 0},
	OrderBGR: {2, 1, 0},
}

func (o ChannelOrder) String() string {
	if int(o) >= len(channelOrderNames) {
		return fmt.Sprintf("ChannelOrder(%d)", o)
	}
	return channelOrderNames[o]
}

// ParseChannelOrder parses names like "GRB" or "rgb".
func ParseChannelOrder(s string) (ChannelOrder, error) {
	for i, name := range channelOrderNames {
		if strings.EqualFold(s, name) {
			return ChannelOrder(i), nil
		}
	}
	return 0, fmt.Errorf("pixel: unknown channel order %q", s)
}

func (o ChannelOrder) offsets() [3]int {
	if int(o) >= len(channelOffsets) {
		return channelOffsets[OrderGRB]
	}
	return channelOffsets[o]
}

