package conn

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// DefaultMaxTxSize is used when the SPI driver does not report a limit; it matches the spidev
// default buffer size.
const DefaultMaxTxSize = 4096

// SPI is a write-only SPI connection.
type SPI struct {
	port      spi.PortCloser
	conn      spi.Conn
	maxTxSize int
}

// OpenSPI opens the named SPI port, see [spireg.Open]. An empty name opens the first port.
//
// Only MOSI is used; the clock runs at f.
func OpenSPI(name string, f physic.Frequency) (*SPI, error) {
	port, err := spireg.Open(name)
	if err != nil {
		return nil, err
	}

	c, err := port.Connect(f, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, err
	}

	return NewSPI(port, c), nil
}

// NewSPI wraps an already connected SPI port. The port may be nil if the connection is not
// owned by the caller.
func NewSPI(port spi.PortCloser, c spi.Conn) *SPI {
	maxTxSize := DefaultMaxTxSize
	if l, ok := c.(conn.Limits); ok && l.MaxTxSize() > 0 {
		maxTxSize = l.MaxTxSize()
	}
	return &SPI{
		port:      port,
		conn:      c,
		maxTxSize: maxTxSize,
	}
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI %s", c.conn)
}

func (c *SPI) Close() error {
	if c.port == nil {
		return nil
	}
	return c.port.Close()
}

// MaxTxSize is the largest packet the driver accepts.
func (c *SPI) MaxTxSize() int {
	return c.maxTxSize
}

// Write sends p as a single transaction, split in packets of at most MaxTxSize bytes.
func (c *SPI) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	packets := make([]spi.Packet, 0, (len(p)+c.maxTxSize-1)/c.maxTxSize)
	for buffer := p; len(buffer) > 0; {
		size := min(len(buffer), c.maxTxSize)
		packets = append(packets, spi.Packet{W: buffer[:size], KeepCS: true})
		buffer = buffer[size:]
	}
	packets[len(packets)-1].KeepCS = false
	if err = c.conn.TxPackets(packets); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Packets reports how many packets a write of n bytes is split into.
func (c *SPI) Packets(n int) int {
	return (n + c.maxTxSize - 1) / c.maxTxSize
}
