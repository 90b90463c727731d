package conn

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiostream"
	"periph.io/x/conn/v3/physic"
)

// Errors.
var (
	ErrPin         = errors.New("conn: invalid GPIO pin")
	ErrPinStreamer = errors.New("conn: pin can't stream bits")
)

// StreamOuter is a pin that can stream a bit pattern, see [gpiostream.PinOut].
type StreamOuter interface {
	String() string
	StreamOut(s gpiostream.Stream) error
}

// GPIO streams bits out of a single pin, most significant bit first.
type GPIO struct {
	pin  StreamOuter
	freq physic.Frequency
}

// OpenGPIO looks up the named pin, see [gpioreg.ByName]. Every bit written lasts one period of f.
func OpenGPIO(name string, f physic.Frequency) (*GPIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w %q", ErrPin, name)
	}
	s, ok := p.(StreamOuter)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPinStreamer, p)
	}
	return NewGPIO(s, f), nil
}

// NewGPIO wraps a pin that streams at f bits per second.
func NewGPIO(pin StreamOuter, f physic.Frequency) *GPIO {
	return &GPIO{pin: pin, freq: f}
}

func (c *GPIO) String() string {
	return fmt.Sprintf("GPIO %s at %s", c.pin, c.freq)
}

// Close does nothing, pins are owned by the host driver.
func (c *GPIO) Close() error {
	return nil
}

// Write streams p and blocks until it has been sent.
func (c *GPIO) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := c.pin.StreamOut(&gpiostream.BitStream{
		Freq: c.freq,
		Bits: p,
		LSBF: false,
	}); err != nil {
		return 0, err
	}
	return len(p), nil
}
