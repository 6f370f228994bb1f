package glyphcanvas

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTonal(t *testing.T) {
	g := LumaGrid{W: 4, H: 1, Pix: []uint8{0, 0, 255, 255}}
	ts := Tonal(g, ToneMapper{Palette: Palette("#+. ")})
	if ts.Mean != 127.5 {
		t.Errorf("mean %g, want 127.5", ts.Mean)
	}
	// Sample standard deviation of {0, 0, 255, 255}.
	if want := 255 / math.Sqrt(3); math.Abs(ts.StdDev-want) > 1e-9 {
		t.Errorf("sd %g, want %g", ts.StdDev, want)
	}
	if d := cmp.Diff([]float64{0.5, 0, 0, 0.5}, ts.Coverage); d != "" {
		t.Errorf("coverage (-want +got):\n%s", d)
	}
}

func TestTonalSingleCell(t *testing.T) {
	ts := Tonal(LumaGrid{W: 1, H: 1, Pix: []uint8{90}}, ToneMapper{Palette: Palette(DefaultPalette)})
	if ts.Mean != 90 || ts.StdDev != 0 {
		t.Errorf("got %+v, want mean 90 sd 0", ts)
	}
}

func TestReportString(t *testing.T) {
	opt := DefaultOptions()
	opt.Scale = 1
	r, err := Render(uniform(4, 2, 200), opt)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Report.Canvas; got != r.Canvas.Bounds().Size() {
		t.Errorf("report canvas %v, want the canvas size %v", got, r.Canvas.Bounds().Size())
	}
	if got, want := r.Report.Delta, CorrectionDelta(r.Report.Original, r.Report.Rendered, opt.Damping); got != want {
		t.Errorf("delta %d, want %d from brightness %d/%d", got, want, r.Report.Original, r.Report.Rendered)
	}
	s := r.Report.String()
	for _, part := range []string{"grid 4x2", "canvas 68x34", "original 200"} {
		if !strings.Contains(s, part) {
			t.Errorf("report %q lacks %q", s, part)
		}
	}
}
