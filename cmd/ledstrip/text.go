package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"

	"github.com/BeatGlow/ledstrip"
	"github.com/BeatGlow/ledstrip/draw"
)

func init() {
	textCmd.Flags().StringVar(&textColorFlag, "color", "white", "text color")
	textCmd.Flags().Float64Var(&textSizeFlag, "size", 0, "font size in LEDs (default: matrix height)")
	textCmd.Flags().IntVar(&textOffsetFlag, "x", 0, "horizontal offset")
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(imageCmd)
}

var (
	textColorFlag  string
	textSizeFlag   float64
	textOffsetFlag int
)

var textCmd = &cobra.Command{
	Use:   "text STRING",
	Short: "render text on an LED matrix",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := parseColor(textColorFlag)
		if err != nil {
			fatal(err)
		}
		run(withStrip(func(s ledstrip.Strip) error {
			size := textSizeFlag
			if size <= 0 {
				size = float64(s.Bounds().Dy())
			}
			s.Clear()
			_, err := draw.Text(s, textOffsetFlag, args[0], c, size)
			return err
		}))
	},
}

var imageCmd = &cobra.Command{
	Use:   "image FILE",
	Short: "show an image scaled to the strip",
	Long: `Show an image scaled to the strip or matrix. PNG, JPEG, GIF and BMP images are
supported.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := loadImage(args[0])
		if err != nil {
			fatal(err)
		}
		run(withStrip(func(s ledstrip.Strip) error {
			draw.Scale(s, src)
			return nil
		}))
	},
}

func loadImage(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.WrapPrefix(err, "decode "+name, 0)
	}
	return m, nil
}
