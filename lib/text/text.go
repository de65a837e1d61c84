// Package text rasterises strings with a fixed 7x13 bitmap face so that
// they can be uploaded as textures.
package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// Ascent is the distance in pixels from the top of a rendered line to its
// baseline.
func Ascent() int {
	return face.Ascent
}

// Measure returns the pixel size of s rendered at scale 1.
func Measure(s string) (width, height int) {
	if s == "" {
		return 0, 0
	}
	adv := font.MeasureString(face, s)
	return adv.Ceil(), face.Height
}

// Render draws s as white glyphs on a transparent background. The image is
// tightly sized: its top row is Ascent() pixels above the baseline.
func Render(s string) *image.NRGBA {
	w, h := Measure(s)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == 0 {
		return img
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)
	return img
}
