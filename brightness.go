package glyphcanvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Luma weights, scaled by 10000.
const (
	lumaR   = 2126
	lumaG   = 7152
	lumaB   = 722
	lumaDiv = 10000
)

func Luma(r, g, b uint8) uint8 {
	return uint8((lumaR*uint32(r) + lumaG*uint32(g) + lumaB*uint32(b)) / lumaDiv)
}

func lumaOf(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	return Luma(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// SampleBrightness reduces img to a single pixel with the Gaussian kernel
// and returns that pixel's luma.
func SampleBrightness(img image.Image) uint8 {
	if img.Bounds().Empty() {
		return 0
	}
	px := image.NewRGBA(image.Rect(0, 0, 1, 1))
	Gaussian.Scale(px, px.Bounds(), img, img.Bounds(), draw.Src, nil)
	return Luma(px.Pix[0], px.Pix[1], px.Pix[2])
}

// LumaGrid holds one brightness sample per cell, row-major.
type LumaGrid struct {
	W, H int
	Pix  []uint8 // len = W*H
}

func NewLumaGrid(img image.Image) LumaGrid {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	g := LumaGrid{
		W:   w,
		H:   h,
		Pix: make([]uint8, w*h),
	}
	if rgba, ok := img.(*image.RGBA); ok {
		for y := range h {
			for x := range w {
				off := rgba.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				g.Pix[y*w+x] = Luma(rgba.Pix[off], rgba.Pix[off+1], rgba.Pix[off+2])
			}
		}
		return g
	}
	for y := range h {
		for x := range w {
			g.Pix[y*w+x] = lumaOf(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return g
}

func (g LumaGrid) At(x, y int) uint8 {
	return g.Pix[y*g.W+x]
}

func (g LumaGrid) Size() image.Point {
	return image.Pt(g.W, g.H)
}
