package pixel

import (
	"bytes"
	"image/color"
	"testing"
)

func TestRGBWSetRGB(t *testing.T) {
	testCases := []struct {
		in   RGB
		want RGBW
	}{
		{RGB{5, 5, 5}, NewRGBW(0, 0, 0, 5)},
		{RGB{255, 255, 255}, NewRGBW(0, 0, 0, 255)},
		{RGB{0, 0, 0}, NewRGBW(0, 0, 0, 0)},
		{RGB{255, 0, 0}, NewRGBW(255, 0, 0, 0)},
		{RGB{10, 20, 10}, NewRGBW(10, 20, 10, 0)},
		{RGB{10, 10, 20}, NewRGBW(10, 10, 20, 0)},
		{RGB{20, 10, 10}, NewRGBW(20, 10, 10, 0)},
	}
	for _, test := range testCases {
		t.Run(test.in.String(), func(it *testing.T) {
			p := NewRGBW(1, 2, 3, 4)
			p.SetRGB(test.in)
			if p != test.want {
				it.Errorf("expected %s, got %s", test.want, p)
			}
			if v := FromRGB(test.in); v != test.want {
				it.Errorf("expected FromRGB to return %s, got %s", test.want, v)
			}
		})
	}
}

func TestRGBWSetRGBGray(t *testing.T) {
	for v := 0; v < 256; v++ {
		p := FromRGB(RGB{uint8(v), uint8(v), uint8(v)})
		if p.Red() != 0 || p.Green() != 0 || p.Blue() != 0 || p.White() != uint8(v) {
			t.Fatalf("expected gray %d to map to white only, got %s", v, p)
		}
	}
}

func TestRGBWSetRGBColor(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				if c.IsGray() {
					continue
				}
				p := FromRGB(c)
				if p.Red() != c.R || p.Green() != c.G || p.Blue() != c.B || p.White() != 0 {
					t.Fatalf("expected %s to pass through, got %s", c, p)
				}
			}
		}
	}
}

func TestRGBWSetRGBPure(t *testing.T) {
	c := RGB{10, 200, 30}
	var a, b RGBW
	a.SetRGB(c)
	b.SetRGB(c)
	if a != b {
		t.Errorf("expected identical pixels, got %s and %s", a, b)
	}
	a.SetRGB(c)
	if a != b {
		t.Errorf("expected repeated conversion to be stable, got %s and %s", a, b)
	}
}

func TestRGBWLayout(t *testing.T) {
	var p RGBW
	p.SetGreen(1)
	p.SetRed(2)
	p.SetBlue(3)
	p.SetWhite(4)
	if v := p.Bytes(); !bytes.Equal(v, []byte{1, 2, 3, 4}) {
		t.Errorf("expected raw bytes [1 2 3 4], got %v", v)
	}

	raw := p.Bytes()
	copy(raw, []byte{10, 20, 30, 40})
	if p.Green() != 10 || p.Red() != 20 || p.Blue() != 30 || p.White() != 40 {
		t.Errorf("expected writes through Bytes to be visible, got %s", p)
	}

	p.SetWhite(99)
	if raw[OffsetWhite] != 99 {
		t.Errorf("expected SetWhite to be visible through Bytes, got %d", raw[OffsetWhite])
	}
}

func TestRGBWRGBA(t *testing.T) {
	testCases := []struct {
		in      RGBW
		r, g, b uint32
	}{
		{NewRGBW(0, 0, 0, 0), 0, 0, 0},
		{NewRGBW(0, 0, 0, 0xff), 0xffff, 0xffff, 0xffff},
		{NewRGBW(0xff, 0, 0, 0), 0xffff, 0, 0},
		{NewRGBW(0x10, 0x20, 0x30, 0x01), 0x1111, 0x2121, 0x3131},
		{NewRGBW(0xf0, 0x00, 0x00, 0x20), 0xffff, 0x2020, 0x2020},
	}
	for _, test := range testCases {
		t.Run(test.in.String(), func(it *testing.T) {
			r, g, b, a := test.in.RGBA()
			if r != test.r {
				it.Errorf("expected red to be %#04x, got %#04x", test.r, r)
			}
			if g != test.g {
				it.Errorf("expected green to be %#04x, got %#04x", test.g, g)
			}
			if b != test.b {
				it.Errorf("expected blue to be %#04x, got %#04x", test.b, b)
			}
			if a != 0xffff {
				it.Errorf("expected alpha to be 0xffff, got %#04x", a)
			}
		})
	}
}

func TestRGBWModel(t *testing.T) {
	testCases := []struct {
		in   color.Color
		want RGBW
	}{
		{color.Black, NewRGBW(0, 0, 0, 0)},
		{color.White, NewRGBW(0, 0, 0, 0xff)},
		{color.Gray{Y: 0x80}, NewRGBW(0, 0, 0, 0x80)},
		{color.RGBA{R: 0xff, A: 0xff}, NewRGBW(0xff, 0, 0, 0)},
		{RGB{1, 2, 3}, NewRGBW(1, 2, 3, 0)},
		{NewRGBW(1, 2, 3, 4), NewRGBW(1, 2, 3, 4)},
	}
	for _, test := range testCases {
		if v := RGBWModel.Convert(test.in); v != test.want {
			t.Errorf("expected %#v to convert to %s, got %v", test.in, test.want, v)
		}
	}
}

func TestRGB(t *testing.T) {
	for y := 0; y < 256; y += 17 {
		c := RGB{uint8(y), uint8(y), uint8(y)}
		r, g, b, _ := c.RGBA()
		want := uint32(y | y<<8)
		if r != want {
			t.Errorf("expected red to be %#04x, got %#04x", want, r)
		}
		if g != want {
			t.Errorf("expected green to be %#04x, got %#04x", want, g)
		}
		if b != want {
			t.Errorf("expected blue to be %#04x, got %#04x", want, b)
		}
	}
}

func TestParseChannelOrder(t *testing.T) {
	for _, order := range []ChannelOrder{OrderGRB, OrderRGB, OrderRBG, OrderGBR, OrderBRG, OrderBGR} {
		v, err := ParseChannelOrder(order.String())
		if err != nil {
			t.Fatal(err)
		}
		if v != order {
			t.Errorf("expected %s, got %s", order, v)
		}
	}
	if v, err := ParseChannelOrder("grb"); err != nil || v != OrderGRB {
		t.Errorf("expected GRB, got %s (%v)", v, err)
	}
	if _, err := ParseChannelOrder("RGBW"); err == nil {
		t.Error("expected an error for RGBW")
	}
}
