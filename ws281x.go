package ledstrip

import (
	"fmt"

	"github.com/BeatGlow/ledstrip/pixel"
)

type ws281x struct {
	baseStrip
	img *pixel.RGBImage
}

// WS281x is a strip of WS2811, WS2812, WS2812B or SK6812 RGB LEDs.
//
// The channel order defaults to GRB, see [Config.Order].
func WS281x(c Conn, config *Config) (Strip, error) {
	width, height, err := config.geometry()
	if err != nil {
		return nil, err
	}

	img, err := pixel.NewRGBStrip(width * height)
	if err != nil {
		return nil, err
	}
	img.Order = config.Order

	d := &ws281x{img: img}
	d.init(c, config, img)
	d.width = width
	d.height = height
	d.log.Debug("init strip", "driver", "WS281x", "leds", img.Len(), "order", img.Order)
	return d, nil
}

func (d *ws281x) String() string {
	return fmt.Sprintf("WS281x %dx%d %s on %s", d.width, d.height, d.img.Order, d.c)
}
