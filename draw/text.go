package draw

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	defaultFont     *truetype.Font
	defaultFontErr  error
	defaultFontOnce sync.Once
)

// DefaultFont returns the Go regular font.
func DefaultFont() (*truetype.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = freetype.ParseFont(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// Text renders s in the default font with its baseline on the bottom row of dst, starting at
// column x. It returns the column just past the last glyph, which may be beyond the bounds of dst.
//
// Size is in pixels; on a matrix it is usually the height of the matrix.
func Text(dst Image, x int, s string, c color.Color, size float64) (int, error) {
	f, err := DefaultFont()
	if err != nil {
		return x, err
	}
	return TextFont(dst, f, x, s, c, size)
}

// TextFont is like [Text] with a specific font.
func TextFont(dst Image, f *truetype.Font, x int, s string, c color.Color, size float64) (int, error) {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))
	ctx.SetHinting(font.HintingFull)

	// Descenders are clipped.
	end, err := ctx.DrawString(s, freetype.Pt(x, dst.Bounds().Max.Y-1))
	if err != nil {
		return x, err
	}
	return end.X.Ceil(), nil
}
