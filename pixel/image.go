package pixel

import (
	"image"
	"image/color"
	"unsafe"

	"github.com/BeatGlow/ledstrip/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Indexed is an image that is also addressed by LED index, in row-major order.
type Indexed interface {
	Image

	// Len is the number of pixels.
	Len() int

	// AtIndex returns the color of the pixel at index i.
	AtIndex(i int) color.Color

	// SetIndex sets the color of the pixel at index i.
	SetIndex(i int, c color.Color)

	// Bytes returns the raw buffer, as it is sent to the strip.
	Bytes() []byte
}

// Buffer holds the pixel values and is a container that is used by all image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	clear(p.Pix)
}

// Bytes returns Pix.
func (p *Buffer) Bytes() []byte {
	return p.Pix
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

func pixelCount(w, h int) (int, error) {
	if w < 0 || h < 0 {
		return 0, ErrNegativeCount
	}
	if h > 0 && w > MaxSlotPixels/h {
		return 0, &OverflowError{N: w, Rows: h}
	}
	return w * h, nil
}

// RGBWImage is a 32-bits per pixel image of RGBW pixels.
//
// Pix is sized with [SlotBytes], so it holds 4*Len() bytes of pixel data followed by up to two
// bytes of zero padding. The whole of Pix can be handed to an RGB strip transmitter.
type RGBWImage struct {
	Buffer
	n int
}

// NewRGBWImage returns a w x h RGBW image. Pixels are numbered in row-major order.
func NewRGBWImage(w, h int) (*RGBWImage, error) {
	n, err := pixelCount(w, h)
	if err != nil {
		return nil, err
	}
	size, err := SlotBytes(n)
	if err != nil {
		return nil, err
	}
	return &RGBWImage{
		Buffer: makeBuffer(w, h, w*4, size),
		n:      n,
	}, nil
}

// NewRGBWStrip returns an n x 1 RGBW image.
func NewRGBWStrip(n int) (*RGBWImage, error) {
	return NewRGBWImage(n, 1)
}

func (p *RGBWImage) ColorModel() color.Model {
	return RGBWModel
}

func (p *RGBWImage) Len() int {
	return p.n
}

func (p *RGBWImage) PixOffset(x, y int) int {
	return y*p.Stride + x*4
}

func (p *RGBWImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return p.rgbwAt(p.PixOffset(x, y))
}

func (p *RGBWImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.setRGBW(p.PixOffset(x, y), rgbwModel(c).(RGBW))
}

func (p *RGBWImage) AtIndex(i int) color.Color {
	if i < 0 || i >= p.n {
		return color.Transparent
	}
	return p.rgbwAt(i * 4)
}

func (p *RGBWImage) SetIndex(i int, c color.Color) {
	if i < 0 || i >= p.n {
		return
	}
	p.setRGBW(i*4, rgbwModel(c).(RGBW))
}

// SetRGB converts c with [RGBW.SetRGB] into the pixel at index i.
func (p *RGBWImage) SetRGB(i int, c RGB) {
	if i < 0 || i >= p.n {
		return
	}
	p.Pixels()[i].SetRGB(c)
}

func (p *RGBWImage) Fill(c color.Color) {
	v := rgbwModel(c).(RGBW)
	for i, l := 0, p.n*4; i < l; i += 4 {
		copy(p.Pix[i:], v[:])
	}
}

func (p *RGBWImage) rgbwAt(offset int) RGBW {
	var v RGBW
	copy(v[:], p.Pix[offset:offset+4])
	return v
}

func (p *RGBWImage) setRGBW(offset int, v RGBW) {
	copy(p.Pix[offset:offset+4], v[:])
}

// Pixels returns the image as a slice of RGBW values sharing storage with Pix.
func (p *RGBWImage) Pixels() []RGBW {
	if p.n == 0 {
		return nil
	}
	return unsafe.Slice((*RGBW)(unsafe.Pointer(&p.Pix[0])), p.n)
}

// Slots returns Pix as a slice of 3-byte slots sharing storage with Pix.
func (p *RGBWImage) Slots() []Slot {
	return slots(p.Pix)
}

// RGBImage is a 24-bits per pixel image for strips without a white channel.
type RGBImage struct {
	Buffer
	Order ChannelOrder
}

// NewRGBImage returns a w x h RGB image in GRB channel order.
func NewRGBImage(w, h int) (*RGBImage, error) {
	n, err := pixelCount(w, h)
	if err != nil {
		return nil, err
	}
	return &RGBImage{
		Buffer: makeBuffer(w, h, w*3, n*3),
		Order:  OrderGRB,
	}, nil
}

// NewRGBStrip returns an n x 1 RGB image in GRB channel order.
func NewRGBStrip(n int) (*RGBImage, error) {
	return NewRGBImage(n, 1)
}

func (p *RGBImage) ColorModel() color.Model {
	return RGBModel
}

func (p *RGBImage) Len() int {
	return len(p.Pix) / 3
}

func (p *RGBImage) PixOffset(x, y int) int {
	return y*p.Stride + x*3
}

func (p *RGBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return p.rgbAt(p.PixOffset(x, y))
}

func (p *RGBImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.setRGB(p.PixOffset(x, y), toRGB(c))
}

func (p *RGBImage) AtIndex(i int) color.Color {
	if i < 0 || i >= p.Len() {
		return color.Transparent
	}
	return p.rgbAt(i * 3)
}

func (p *RGBImage) SetIndex(i int, c color.Color) {
	if i < 0 || i >= p.Len() {
		return
	}
	p.setRGB(i*3, toRGB(c))
}

func (p *RGBImage) Fill(c color.Color) {
	v := toRGB(c)
	for i, l := 0, len(p.Pix); i < l; i += 3 {
		p.setRGB(i, v)
	}
}

func (p *RGBImage) rgbAt(offset int) RGB {
	o := p.Order.offsets()
	return RGB{
		R: p.Pix[offset+o[0]],
		G: p.Pix[offset+o[1]],
		B: p.Pix[offset+o[2]],
	}
}

func (p *RGBImage) setRGB(offset int, c RGB) {
	o := p.Order.offsets()
	p.Pix[offset+o[0]] = c.R
	p.Pix[offset+o[1]] = c.G
	p.Pix[offset+o[2]] = c.B
}

// Slots returns Pix as a slice of 3-byte slots sharing storage with Pix.
func (p *RGBImage) Slots() []Slot {
	return slots(p.Pix)
}

func slots(pix []byte) []Slot {
	if len(pix) < 3 {
		return nil
	}
	return unsafe.Slice((*Slot)(unsafe.Pointer(&pix[0])), len(pix)/3)
}

// Interface checks.
var (
	_ Indexed = (*RGBWImage)(nil)
	_ Indexed = (*RGBImage)(nil)
)
