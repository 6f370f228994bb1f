package glyphcanvas

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/stat"
)

// Report summarises one rendering.
type Report struct {
	Grid     image.Point // grid size in cells
	Canvas   image.Point // canvas size in pixels
	Original uint8       // brightness of the downscaled source
	Rendered uint8       // brightness of the canvas before correction
	Delta    int
	Scheme   ColorScheme
	Tonal    TonalStats
}

// TonalStats describes the brightness distribution of the grid samples.
type TonalStats struct {
	Mean   float64
	StdDev float64
	// Share of cells per palette index.
	Coverage []float64
}

func newReport(r *Renderer, rendered uint8, delta int) Report {
	return Report{
		Grid:     r.Grid.Size(),
		Canvas:   r.Canvas.Bounds().Size(),
		Original: r.Original,
		Rendered: rendered,
		Delta:    delta,
		Scheme:   r.Scheme,
		Tonal:    Tonal(r.Grid, r.Mapper),
	}
}

func Tonal(g LumaGrid, m ToneMapper) TonalStats {
	ts := TonalStats{Coverage: make([]float64, len(m.Palette))}
	if len(g.Pix) == 0 {
		return ts
	}
	x := make([]float64, len(g.Pix))
	for i, v := range g.Pix {
		x[i] = float64(v)
	}
	ts.Mean, ts.StdDev = stat.MeanStdDev(x, nil)
	if len(x) == 1 {
		ts.StdDev = 0
	}
	for _, idx := range m.Indices(g) {
		ts.Coverage[idx]++
	}
	for i := range ts.Coverage {
		ts.Coverage[i] /= float64(len(g.Pix))
	}
	return ts
}

func (r Report) String() string {
	return fmt.Sprintf("grid %dx%d, canvas %dx%d, brightness original %d rendered %d, delta %+d, background %d, luma mean %.1f sd %.1f",
		r.Grid.X, r.Grid.Y, r.Canvas.X, r.Canvas.Y,
		r.Original, r.Rendered, r.Delta, r.Scheme.Background,
		r.Tonal.Mean, r.Tonal.StdDev)
}
