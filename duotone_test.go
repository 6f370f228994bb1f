package glyphcanvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func ramp() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, 256, 1))
	for x := range 256 {
		g.Pix[x] = uint8(x)
	}
	return g
}

func TestDuotoneEnds(t *testing.T) {
	red := colorful.Color{R: 1}
	yellow := colorful.Color{R: 1, G: 1}
	out := Duotone(ramp(), red, yellow)
	if got := out.RGBAAt(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("luma 0 -> %v, want red", got)
	}
	if got := out.RGBAAt(255, 0); got != (color.RGBA{255, 255, 0, 255}) {
		t.Errorf("luma 255 -> %v, want yellow", got)
	}
}

func TestDuotoneFromPaletteOrder(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{}
	red := colorful.Color{R: 1}
	out := DuotoneFromPalette(ramp(), []colorful.Color{white, red, black})
	if got := out.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("luma 0 -> %v, want black", got)
	}
	if got := out.RGBAAt(255, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("luma 255 -> %v, want white", got)
	}
}

func TestDuotoneFromShortPalette(t *testing.T) {
	out := DuotoneFromPalette(uniform(2, 2, 255), []colorful.Color{{R: 1}})
	if got := out.RGBAAt(1, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("white stays white without a palette, got %v", got)
	}
}
