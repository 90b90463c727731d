// Package ledstrip contains drivers for addressable LED strips.
//
// RGBW strips are driven through the same 3-byte slot transports as RGB strips: the RGBW pixel
// buffer is sized with [pixel.SlotCount] and sent as is.
package ledstrip

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"github.com/BeatGlow/ledstrip/draw"
	"github.com/BeatGlow/ledstrip/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("LEDSTRIP_DEBUG") != ""
}

// Errors
var (
	ErrLength = errors.New("ledstrip: invalid strip geometry")
	ErrClosed = errors.New("ledstrip: strip is closed")
)

// Layout maps matrix coordinates to the position along the strip.
type Layout uint8

// Supported layouts.
const (
	Progressive Layout = iota // Every row runs left to right
	Serpentine                // Odd rows run right to left
)

func (l Layout) String() string {
	switch l {
	case Progressive:
		return "progressive"
	case Serpentine:
		return "serpentine"
	default:
		return fmt.Sprintf("Layout(%d)", l)
	}
}

// Index returns the strip index of (x, y) on a matrix that is width LEDs wide.
func (l Layout) Index(x, y, width int) int {
	if l == Serpentine && y&1 == 1 {
		return y*width + width - 1 - x
	}
	return y*width + x
}

// Strip is an addressable LED strip.
//
// Strips are images: a plain strip is Len() x 1 pixels, a matrix Width x Height. Drawing only
// changes the buffer, Refresh sends it.
type Strip interface {
	draw.Image

	String() string

	// Close the strip and its connection.
	Close() error

	// Clear the strip buffer.
	Clear()

	// Len is the number of LEDs.
	Len() int

	// Buffer is the pixel buffer in strip order.
	Buffer() pixel.Indexed

	// Refresh sends the buffer to the strip.
	Refresh() error
}

// Config is the strip configuration.
type Config struct {
	// Length is the number of LEDs, defaults to Width * Height.
	Length int

	// Width of the matrix in LEDs, defaults to Length / Height.
	Width int

	// Height of the matrix in LEDs, defaults to 1.
	Height int

	// Layout of a matrix.
	Layout Layout

	// Order of the color channels, only used by strips without white channel.
	Order pixel.ChannelOrder

	// BlankOnClose turns all LEDs off when the strip is closed.
	BlankOnClose bool

	// Logger for debug messages.
	Logger *slog.Logger
}

// geometry resolves the defaults.
func (config *Config) geometry() (width, height int, err error) {
	width, height = config.Width, config.Height
	if height == 0 {
		height = 1
	}
	if width == 0 && height > 0 && config.Length%height == 0 {
		width = config.Length / height
	}
	length := config.Length
	if length == 0 {
		length = width * height
	}
	if width <= 0 || height <= 0 || length != width*height {
		return 0, 0, fmt.Errorf("%w: %d LEDs on a %dx%d matrix", ErrLength, config.Length, config.Width, config.Height)
	}
	return width, height, nil
}

func defaultLogger(logger *slog.Logger) *slog.Logger {
	switch {
	case logger != nil:
		return logger
	case debug:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.Default()
	}
}

type baseStrip struct {
	c            Conn
	buf          pixel.Indexed
	width        int
	height       int
	layout       Layout
	blankOnClose bool
	closed       bool
	log          *slog.Logger
}

func (s *baseStrip) init(c Conn, config *Config, buf pixel.Indexed) {
	s.c = c
	s.buf = buf
	s.layout = config.Layout
	s.blankOnClose = config.BlankOnClose
	s.log = defaultLogger(config.Logger)
}

func (s *baseStrip) index(x, y int) int {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return -1
	}
	return s.layout.Index(x, y, s.width)
}

func (s *baseStrip) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

func (s *baseStrip) ColorModel() color.Model {
	return s.buf.ColorModel()
}

func (s *baseStrip) At(x, y int) color.Color {
	i := s.index(x, y)
	if i < 0 {
		return color.Transparent
	}
	return s.buf.AtIndex(i)
}

func (s *baseStrip) Set(x, y int, c color.Color) {
	if i := s.index(x, y); i >= 0 {
		s.buf.SetIndex(i, c)
	}
}

func (s *baseStrip) Clear() {
	s.buf.Clear()
}

func (s *baseStrip) Len() int {
	return s.buf.Len()
}

func (s *baseStrip) Buffer() pixel.Indexed {
	return s.buf
}

func (s *baseStrip) Refresh() error {
	if s.closed {
		return ErrClosed
	}
	return s.c.Write(s.buf.Bytes())
}

func (s *baseStrip) Close() error {
	if s.closed {
		return nil
	}
	if s.blankOnClose {
		s.buf.Clear()
		if err := s.c.Write(s.buf.Bytes()); err != nil {
			_ = s.c.Close()
			s.closed = true
			return err
		}
	}
	s.closed = true
	return s.c.Close()
}
