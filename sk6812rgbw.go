package ledstrip

import (
	"fmt"

	"github.com/BeatGlow/ledstrip/pixel"
)

type sk6812rgbw struct {
	baseStrip
	img *pixel.RGBWImage
}

// SK6812RGBW is a strip of SK6812 RGBW (or RGBWW) LEDs.
//
// The pixels are buffered as [pixel.RGBW] and sent as [pixel.SlotCount] RGB slots. When the
// LED count is not a multiple of 3, the last slot carries one or two zero bytes past the final LED;
// they fall off the end of the strip.
func SK6812RGBW(c Conn, config *Config) (Strip, error) {
	width, height, err := config.geometry()
	if err != nil {
		return nil, err
	}

	img, err := pixel.NewRGBWStrip(width * height)
	if err != nil {
		return nil, err
	}

	d := &sk6812rgbw{img: img}
	d.init(c, config, img)
	d.width = width
	d.height = height
	d.log.Debug("init strip", "driver", "SK6812RGBW", "leds", img.Len(), "slots", len(img.Slots()))
	return d, nil
}

func (d *sk6812rgbw) String() string {
	return fmt.Sprintf("SK6812RGBW %dx%d (%d slots) on %s", d.width, d.height, len(d.img.Slots()), d.c)
}

// SetRGB converts c into the pixel at index i, see [pixel.RGBW.SetRGB].
func (d *sk6812rgbw) SetRGB(i int, c pixel.RGB) {
	d.img.SetRGB(i, c)
}

// RGBSetter is implemented by strips that convert RGB colors into their own pixel format.
type RGBSetter interface {
	SetRGB(i int, c pixel.RGB)
}

var _ RGBSetter = (*sk6812rgbw)(nil)
