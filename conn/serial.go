package conn

import (
	"fmt"
	"io"

	"go.bug.st/serial"
)

// Serial is a serial port connection, typically a USB microcontroller.
type Serial struct {
	port io.WriteCloser
	name string
	baud int
}

// OpenSerial opens the named serial port with 8N1 framing.
func OpenSerial(name string, baud int) (*Serial, error) {
	port, err := serial.Open(name, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, err
	}
	return NewSerial(port, name, baud), nil
}

// NewSerial wraps an open port.
func NewSerial(port io.WriteCloser, name string, baud int) *Serial {
	return &Serial{
		port: port,
		name: name,
		baud: baud,
	}
}

// SerialPorts lists the serial ports of the system.
func SerialPorts() ([]string, error) {
	return serial.GetPortsList()
}

func (c *Serial) String() string {
	return fmt.Sprintf("serial %s at %d baud", c.name, c.baud)
}

func (c *Serial) Close() error {
	return c.port.Close()
}

func (c *Serial) Write(p []byte) (int, error) {
	return c.port.Write(p)
}
