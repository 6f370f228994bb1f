package glyphcanvas

import (
	"image"
	"math"
)

// CorrectionDelta is floor((original - canvas) / damping).
func CorrectionDelta(original, canvas uint8, damping float64) int {
	return int(math.Floor(float64(int(original)-int(canvas)) / damping))
}

// Brighten adds delta to every color channel of img in place, clamping to
// [0,255]. Alpha is left alone.
func Brighten(img *image.RGBA, delta int) {
	if delta == 0 {
		return
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		row := img.Pix[off : off+4*b.Dx()]
		for i := 0; i < len(row); i += 4 {
			row[i] = clampChannel(int(row[i]) + delta)
			row[i+1] = clampChannel(int(row[i+1]) + delta)
			row[i+2] = clampChannel(int(row[i+2]) + delta)
		}
	}
}

func clampChannel(v int) uint8 {
	return uint8(max(0, min(255, v)))
}

// Grayscale desaturates img with the luma weights.
func Grayscale(img *image.RGBA) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rectangle{Max: b.Size()})
	for y := range b.Dy() {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := range b.Dx() {
			p := img.Pix[off+4*x : off+4*x+3]
			out.Pix[y*out.Stride+x] = Luma(p[0], p[1], p[2])
		}
	}
	return out
}

// Correct samples the canvas brightness and shifts the whole canvas toward
// original by the damped difference. It returns the canvas sample and the
// applied delta.
func Correct(canvas *image.RGBA, original uint8, damping float64) (sampled uint8, delta int) {
	sampled = SampleBrightness(canvas)
	delta = CorrectionDelta(original, sampled, damping)
	Brighten(canvas, delta)
	return sampled, delta
}
