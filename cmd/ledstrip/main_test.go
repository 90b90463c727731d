package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/ledstrip"
	"github.com/BeatGlow/ledstrip/pixel"
)

func TestParseColor(t *testing.T) {
	testCases := []struct {
		in   string
		want pixel.RGB
	}{
		{"#ff8800", pixel.RGB{R: 0xff, G: 0x88}},
		{"ff8800", pixel.RGB{R: 0xff, G: 0x88}},
		{"#FFF", pixel.White},
		{"White", pixel.White},
		{"off", pixel.Black},
		{"blue", pixel.RGB{B: 0xff}},
	}
	for _, test := range testCases {
		c, err := parseColor(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, c, test.in)
	}

	for _, in := range []string{"", "#12", "purple-ish", "#gggggg"} {
		_, err := parseColor(in)
		assert.Error(t, err, in)
	}
}

func TestPrintSizes(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printSizes(&out, []string{"1", "4", "300"}))
	assert.Equal(t, "1 LEDs: 2 slots, 6 bytes\n4 LEDs: 6 slots, 18 bytes\n300 LEDs: 400 slots, 1200 bytes\n", out.String())

	assert.Error(t, printSizes(&out, []string{"many"}))
	assert.ErrorIs(t, printSizes(&out, []string{"-1"}), pixel.ErrNegativeCount)
}

func TestStripConfig(t *testing.T) {
	defer func() {
		widthFlag, heightFlag, serpentineFlag, orderFlag = 0, 0, false, pixel.OrderGRB.String()
	}()

	widthFlag, heightFlag, serpentineFlag, orderFlag = 8, 4, true, "rgb"
	config, err := stripConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 8, config.Width)
	assert.Equal(t, 4, config.Height)
	assert.Equal(t, ledstrip.Serpentine, config.Layout)
	assert.Equal(t, pixel.OrderRGB, config.Order)

	orderFlag = "xyz"
	_, err = stripConfig(nil)
	assert.Error(t, err)
}

type fakeConn struct {
	writes    int
	failWrite int
	closeErr  error
}

var errWrite = errors.New("write failed")

func (c *fakeConn) String() string { return "fake" }

func (c *fakeConn) Close() error { return c.closeErr }

func (c *fakeConn) Write(slots []byte) error {
	c.writes++
	if c.writes == c.failWrite {
		return errWrite
	}
	return nil
}

func TestShow(t *testing.T) {
	var (
		errClose = errors.New("close failed")
		errDraw  = errors.New("draw failed")
		noop     = func(ledstrip.Strip) error { return nil }
		fail     = func(ledstrip.Strip) error { return errDraw }
	)

	testCases := []struct {
		name   string
		conn   *fakeConn
		config ledstrip.Config
		fn     func(ledstrip.Strip) error
		want   []error
	}{
		{"ok", &fakeConn{}, ledstrip.Config{Length: 3}, noop, nil},
		{"close", &fakeConn{closeErr: errClose}, ledstrip.Config{Length: 3}, noop, []error{errClose}},
		{"draw and close", &fakeConn{closeErr: errClose}, ledstrip.Config{Length: 3}, fail, []error{errDraw, errClose}},
		{"blank", &fakeConn{failWrite: 2}, ledstrip.Config{Length: 3, BlankOnClose: true}, noop, []error{errWrite}},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			s, err := ledstrip.SK6812RGBW(test.conn, &test.config)
			require.NoError(it, err)

			err = show(s, test.fn)
			if test.want == nil {
				assert.NoError(it, err)
				return
			}
			for _, want := range test.want {
				assert.ErrorIs(it, err, want)
			}
		})
	}
}
