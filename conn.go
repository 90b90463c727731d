package ledstrip

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	goerrors "github.com/go-errors/errors"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/ledstrip/conn"
)

// Conn errors.
var (
	ErrSlotLength    = errors.New("ledstrip: frame is not a multiple of 3 bytes")
	ErrFrameTooLarge = errors.New("ledstrip: frame has too many slots")
	ErrSpeed         = errors.New("ledstrip: invalid data rate")
)

// Conn is the connection a strip sends its frames over.
//
// Frames are slot buffers: any number of 3-byte pixel slots. The connection does not know if a
// slot holds an RGB pixel or part of one or two RGBW pixels.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Write sends one frame.
	Write(slots []byte) error
}

// bus is what the conn package provides.
type bus interface {
	io.WriteCloser
	String() string
}

// packetizer is a bus that splits writes into several transfers.
type packetizer interface {
	Packets(n int) int
}

// SPIConfig describes the SPI bus configuration.
//
// The strip data line is connected to MOSI, the clock runs at three times Speed.
type SPIConfig struct {
	// Name of the SPI port as known by spireg, empty for the first available port.
	Name string

	// Speed is the data rate of the strip, 800kHz for WS2812 and SK6812.
	Speed physic.Frequency

	// Logger for debug messages.
	Logger *slog.Logger
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Speed: 800 * physic.KiloHertz,
}

// OpenSPI connects to a strip over SPI.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if config.Speed == 0 {
		config.Speed = DefaultSPIConfig.Speed
	}
	if config.Speed < 0 {
		return nil, fmt.Errorf("%w %s", ErrSpeed, config.Speed)
	}

	c, err := conn.OpenSPI(config.Name, NRZSymbolBits*config.Speed)
	if err != nil {
		return nil, goerrors.WrapPrefix(err, "ledstrip: open SPI", 0)
	}
	return newNRZConn(c, NRZSymbolBits*config.Speed, config.Logger), nil
}

// GPIOConfig describes a strip connected to a GPIO pin that supports streaming.
type GPIOConfig struct {
	// Pin name as known by gpioreg.
	Pin string

	// Speed is the data rate of the strip.
	Speed physic.Frequency

	// Logger for debug messages.
	Logger *slog.Logger
}

// DefaultGPIOConfig are the default configuration values.
var DefaultGPIOConfig = GPIOConfig{
	Pin:   "GPIO18",
	Speed: 800 * physic.KiloHertz,
}

// OpenGPIO connects to a strip over a GPIO pin.
func OpenGPIO(config *GPIOConfig) (Conn, error) {
	if config == nil {
		config = new(GPIOConfig)
		*config = DefaultGPIOConfig
	}
	if config.Pin == "" {
		config.Pin = DefaultGPIOConfig.Pin
	}
	if config.Speed == 0 {
		config.Speed = DefaultGPIOConfig.Speed
	}
	if config.Speed < 0 {
		return nil, fmt.Errorf("%w %s", ErrSpeed, config.Speed)
	}

	c, err := conn.OpenGPIO(config.Pin, NRZSymbolBits*config.Speed)
	if err != nil {
		return nil, goerrors.WrapPrefix(err, "ledstrip: open GPIO", 0)
	}
	return newNRZConn(c, NRZSymbolBits*config.Speed, config.Logger), nil
}

// SerialConfig describes a strip driven by a microcontroller on a serial port.
//
// The microcontroller must speak Adalight and run an RGB strip driver, sized with
// [pixel.SlotCount] when the strip is RGBW.
type SerialConfig struct {
	// Port name, such as "/dev/ttyACM0" or "COM3".
	Port string

	// BaudRate of the port.
	BaudRate int

	// Logger for debug messages.
	Logger *slog.Logger
}

// DefaultSerialConfig are the default configuration values.
var DefaultSerialConfig = SerialConfig{
	Port:     "/dev/ttyACM0",
	BaudRate: 115200,
}

// OpenSerial connects to a strip over a serial port.
func OpenSerial(config *SerialConfig) (Conn, error) {
	if config == nil {
		config = new(SerialConfig)
		*config = DefaultSerialConfig
	}
	if config.Port == "" {
		config.Port = DefaultSerialConfig.Port
	}
	if config.BaudRate == 0 {
		config.BaudRate = DefaultSerialConfig.BaudRate
	}

	c, err := conn.OpenSerial(config.Port, config.BaudRate)
	if err != nil {
		return nil, goerrors.WrapPrefix(err, "ledstrip: open serial port "+config.Port, 0)
	}
	return newAdalightConn(c, config.Logger), nil
}

// nrzConn sends frames as NRZ line bits followed by a latch.
type nrzConn struct {
	bus   bus
	buf   []byte
	latch int
	log   *slog.Logger
}

func newNRZConn(b bus, f physic.Frequency, logger *slog.Logger) *nrzConn {
	return &nrzConn{
		bus:   b,
		latch: latchBytes(f),
		log:   defaultLogger(logger),
	}
}

func (c *nrzConn) String() string {
	return "NRZ over " + c.bus.String()
}

func (c *nrzConn) Close() error {
	return c.bus.Close()
}

func (c *nrzConn) Write(slots []byte) error {
	if len(slots)%3 != 0 {
		return ErrSlotLength
	}

	size := len(slots)*NRZSymbolBits + c.latch
	if cap(c.buf) < size {
		c.buf = make([]byte, size)
	}
	c.buf = c.buf[:size]
	rasterNRZ(c.buf, slots)
	clear(c.buf[len(slots)*NRZSymbolBits:])

	if p, ok := c.bus.(packetizer); ok {
		c.log.Debug("write frame", "conn", c.bus.String(), "slots", len(slots)/3, "bytes", size, "packets", p.Packets(size))
	} else {
		c.log.Debug("write frame", "conn", c.bus.String(), "slots", len(slots)/3, "bytes", size)
	}
	if _, err := c.bus.Write(c.buf); err != nil {
		return goerrors.WrapPrefix(err, "ledstrip: write to "+c.bus.String(), 0)
	}
	return nil
}

// adalightMaxSlots is the largest slot count the 16-bit header can express.
const adalightMaxSlots = 1 << 16

// adalightConn sends frames as Adalight packets.
type adalightConn struct {
	bus bus
	buf []byte
	log *slog.Logger
}

func newAdalightConn(b bus, logger *slog.Logger) *adalightConn {
	return &adalightConn{
		bus: b,
		log: defaultLogger(logger),
	}
}

func (c *adalightConn) String() string {
	return "Adalight over " + c.bus.String()
}

func (c *adalightConn) Close() error {
	return c.bus.Close()
}

func (c *adalightConn) Write(slots []byte) error {
	if len(slots)%3 != 0 {
		return ErrSlotLength
	}
	n := len(slots) / 3
	if n == 0 {
		return nil
	}
	if n > adalightMaxSlots {
		return fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, n, adalightMaxSlots)
	}

	c.buf = appendAdalightHeader(c.buf[:0], n)
	c.buf = append(c.buf, slots...)

	c.log.Debug("write frame", "conn", c.bus.String(), "slots", n, "bytes", len(c.buf))
	if _, err := c.bus.Write(c.buf); err != nil {
		return goerrors.WrapPrefix(err, "ledstrip: write to "+c.bus.String(), 0)
	}
	return nil
}

// appendAdalightHeader appends the packet header for n slots: the magic "Ada", the slot count
// minus one as big endian 16-bit value, and a checksum of both count bytes.
func appendAdalightHeader(b []byte, n int) []byte {
	var (
		hi = byte((n - 1) >> 8)
		lo = byte(n - 1)
	)
	return append(b, 'A', 'd', 'a', hi, lo, hi^lo^0x55)
}

// Interface checks.
var (
	_ bus = (*conn.SPI)(nil)
	_ bus = (*conn.GPIO)(nil)
	_ bus = (*conn.Serial)(nil)

	_ packetizer = (*conn.SPI)(nil)
)
