package glyphcanvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCorrectionDelta(t *testing.T) {
	cases := []struct {
		original, canvas uint8
		damping          float64
		want             int
	}{
		{200, 140, 1.5, 40},
		{140, 200, 1.5, -40},
		{100, 99, 1.5, 0},
		{99, 100, 1.5, -1},
		{128, 128, 1.5, 0},
		{255, 0, 1, 255},
		{0, 255, 1.5, -170},
	}
	for _, c := range cases {
		if got := CorrectionDelta(c.original, c.canvas, c.damping); got != c.want {
			t.Errorf("CorrectionDelta(%d, %d, %g) = %d, want %d",
				c.original, c.canvas, c.damping, got, c.want)
		}
	}
}

func TestBrighten(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Pix = []uint8{0, 100, 230, 255, 255, 20, 215, 128}

	Brighten(img, 40)
	want := []uint8{40, 140, 255, 255, 255, 60, 255, 128}
	if d := cmp.Diff(want, img.Pix); d != "" {
		t.Errorf("Brighten(+40) (-want +got):\n%s", d)
	}

	Brighten(img, -50)
	want = []uint8{0, 90, 205, 255, 205, 10, 205, 128}
	if d := cmp.Diff(want, img.Pix); d != "" {
		t.Errorf("Brighten(-50) (-want +got):\n%s", d)
	}
}

func TestBrightenSubImage(t *testing.T) {
	img := uniform(4, 4, 10)
	sub := img.SubImage(image.Rect(2, 2, 4, 4)).(*image.RGBA)
	Brighten(sub, 5)
	if got := img.RGBAAt(0, 0); got.R != 10 {
		t.Errorf("pixel outside the sub-image changed to %v", got)
	}
	if got := img.RGBAAt(3, 3); got.R != 15 {
		t.Errorf("pixel inside the sub-image is %v, want 15", got)
	}
}

func TestCorrect(t *testing.T) {
	canvas := uniform(20, 10, 140)
	sampled, delta := Correct(canvas, 200, 1.5)
	if sampled != 140 || delta != 40 {
		t.Fatalf("Correct = (%d, %d), want (140, 40)", sampled, delta)
	}
	for y := range 10 {
		for x := range 20 {
			if c := canvas.RGBAAt(x, y); c != (color.RGBA{180, 180, 180, 255}) {
				t.Fatalf("pixel (%d,%d) = %v, want 180", x, y, c)
			}
		}
	}
}

func TestGrayscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Pix = []uint8{
		255, 0, 0, 255,
		77, 77, 77, 255,
		0, 255, 0, 255,
	}
	g := Grayscale(img)
	if d := cmp.Diff([]uint8{54, 77, 182}, g.Pix); d != "" {
		t.Errorf("Grayscale (-want +got):\n%s", d)
	}
}
