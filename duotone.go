package glyphcanvas

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Duotone recolors img by mapping its luma onto the Lab gradient from dark
// (luma 0) to light (luma 255).
func Duotone(img image.Image, dark, light colorful.Color) *image.RGBA {
	var lut [256]color.RGBA
	for i := range lut {
		c := dark.BlendLab(light, float64(i)/255).Clamped()
		r, g, b := c.RGB255()
		lut[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	gray, isGray := img.(*image.Gray)
	for y := range h {
		for x := range w {
			var l uint8
			if isGray {
				l = gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y
			} else {
				l = lumaOf(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			}
			out.SetRGBA(x, y, lut[l])
		}
	}
	return out
}

// DuotoneFromPalette uses the darkest and brightest palette entries as the
// gradient ends. A palette with fewer than two colors falls back to black
// and white.
func DuotoneFromPalette(img image.Image, palette []colorful.Color) *image.RGBA {
	dark := colorful.Color{}
	light := colorful.Color{R: 1, G: 1, B: 1}
	if len(palette) >= 2 {
		dark, light = palette[0], palette[0]
		dl, ll := relativeLuminance(dark), relativeLuminance(light)
		for _, c := range palette[1:] {
			y := relativeLuminance(c)
			if y < dl {
				dark, dl = c, y
			}
			if y > ll {
				light, ll = c, y
			}
		}
	}
	return Duotone(img, dark, light)
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
