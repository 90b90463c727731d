package main

import (
	"strings"

	"github.com/go-errors/errors"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/BeatGlow/ledstrip"
	"github.com/BeatGlow/ledstrip/draw"
	"github.com/BeatGlow/ledstrip/pixel"
)

func init() {
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(gradientCmd)
	rootCmd.AddCommand(offCmd)
}

var fillCmd = &cobra.Command{
	Use:   "fill COLOR",
	Short: "fill the strip with a color",
	Long: `Fill the strip with a color, such as "#ff8800" or "white".

Gray colors light the white LEDs of RGBW strips.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := parseColor(args[0])
		if err != nil {
			fatal(err)
		}
		run(withStrip(func(s ledstrip.Strip) error {
			draw.Fill(s, c)
			return nil
		}))
	},
}

var gradientCmd = &cobra.Command{
	Use:   "gradient FROM TO",
	Short: "blend two colors along the strip",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		from, err := parseColor(args[0])
		if err != nil {
			fatal(err)
		}
		to, err := parseColor(args[1])
		if err != nil {
			fatal(err)
		}
		run(withStrip(func(s ledstrip.Strip) error {
			draw.Gradient(s, from, to)
			return nil
		}))
	},
}

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "turn all LEDs off",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(withStrip(func(s ledstrip.Strip) error {
			s.Clear()
			return nil
		}))
	},
}

var namedColors = map[string]pixel.RGB{
	"black": pixel.Black,
	"off":   pixel.Black,
	"white": pixel.White,
	"red":   {R: 0xff},
	"green": {G: 0xff},
	"blue":  {B: 0xff},
}

// parseColor parses a color name or a hex color with or without the leading '#'.
func parseColor(s string) (pixel.RGB, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return pixel.RGB{}, errors.Errorf("invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return pixel.RGB{R: r, G: g, B: b}, nil
}
