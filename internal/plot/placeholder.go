package plot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Placeholder writes a plain PNG carrying message, used in place of a chart
// that could not be drawn.
func Placeholder(w io.Writer, opts Options, message string) error {
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = DefaultOptions().Width, DefaultOptions().Height
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(color.RGBA{R: 90, G: 90, B: 90, A: 255}), Face: face}
	tw := d.MeasureString(message).Ceil()
	x := (width - tw) / 2
	if x < 8 {
		x = 8
	}
	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(height / 2)}
	d.DrawString(message)

	return png.Encode(w, img)
}
