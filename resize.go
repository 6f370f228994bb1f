package glyphcanvas

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Gaussian is a Gaussian resampling kernel (sigma 0.5, support 3).
// Downscaling and brightness sampling both go through it.
var Gaussian = &draw.Kernel{
	Support: 3,
	At:      gaussian,
}

func gaussian(t float64) float64 {
	const sigma = 0.5
	return math.Exp(-t*t/(2*sigma*sigma)) / (math.Sqrt(2*math.Pi) * sigma)
}

// TargetSize returns round(scale * max(width, height)), never below 1.
func TargetSize(width, height int, scale float64) (int, error) {
	if !(scale > 0 && scale <= 1) {
		return 0, fmt.Errorf("%w: got %g", ErrScaleOutOfBound, scale)
	}
	target := int(math.Round(scale * float64(max(width, height))))
	return max(target, 1), nil
}

// FitSize returns the largest size with the aspect ratio of (width, height)
// that fits inside a maxW x maxH box.
func FitSize(width, height, maxW, maxH int) image.Point {
	if width <= 0 || height <= 0 {
		return image.Point{}
	}
	ratio := min(float64(maxW)/float64(width), float64(maxH)/float64(height))
	nw := max(int(math.Round(float64(width)*ratio)), 1)
	nh := max(int(math.Round(float64(height)*ratio)), 1)
	return image.Pt(nw, nh)
}

// Resize fits src into a maxW x maxH box, keeping its aspect ratio.
func Resize(src image.Image, maxW, maxH int) *image.RGBA {
	b := src.Bounds()
	size := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	dst := image.NewRGBA(image.Rectangle{Max: size})
	if size == (image.Point{}) {
		return dst
	}
	Gaussian.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Downscale shrinks src so that its larger side becomes
// round(scale * max(width, height)).
func Downscale(src image.Image, scale float64) (*image.RGBA, error) {
	b := src.Bounds()
	target, err := TargetSize(b.Dx(), b.Dy(), scale)
	if err != nil {
		return nil, err
	}
	return Resize(src, target, target), nil
}
