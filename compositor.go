package glyphcanvas

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"
)

// ProgressFunc observes the compositor at row boundaries. done counts
// finished rows out of total. Calls never overlap.
type ProgressFunc func(done, total int)

// Compositor renders one glyph per grid sample onto a fixed-cell canvas.
type Compositor struct {
	Font       *opentype.Font
	CellWidth  int
	CellHeight int
	FontSize   float64
	XOffset    int
	YOffset    int
	Workers    int
	Progress   ProgressFunc
}

func NewCompositor(f *opentype.Font, opt Options) *Compositor {
	return &Compositor{
		Font:       f,
		CellWidth:  opt.CellWidth,
		CellHeight: opt.CellHeight,
		FontSize:   opt.FontSize,
		XOffset:    opt.XOffset,
		YOffset:    opt.YOffset,
		Workers:    opt.Workers,
	}
}

func (c *Compositor) CanvasSize(g LumaGrid) image.Point {
	return image.Pt(g.W*c.CellWidth, g.H*c.CellHeight)
}

// Anchor returns the top-left glyph position of the cell at (col, row).
func (c *Compositor) Anchor(col, row int) image.Point {
	return image.Pt(col*c.CellWidth+c.XOffset, row*c.CellHeight+c.YOffset)
}

// Compose allocates a canvas filled with the scheme background and draws
// the glyph chosen by m for every sample of g.
func (c *Compositor) Compose(g LumaGrid, scheme ColorScheme, m ToneMapper) (*image.RGBA, error) {
	if c.Font == nil {
		return nil, ErrFontLoad
	}
	face, err := newFace(c.Font, c.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	canvas := image.NewRGBA(image.Rectangle{Max: c.CanvasSize(g)})
	bg := image.NewUniform(color.Gray{Y: scheme.Background})
	draw.Draw(canvas, canvas.Bounds(), bg, image.Point{}, draw.Src)

	fg := image.NewUniform(color.Gray{Y: scheme.Glyph})
	progress := c.progress(g.H)

	k := c.RowSpacing(face, m.Palette)
	if c.Workers < 2 || g.H <= k {
		for row := range g.H {
			c.drawRow(canvas, face, fg, g, m, row)
			progress()
		}
		return canvas, nil
	}

	// Rows drawn concurrently are k cell rows apart, far enough that their
	// glyphs never touch the same pixels.
	for phase := range k {
		var eg errgroup.Group
		eg.SetLimit(c.Workers)
		for row := phase; row < g.H; row += k {
			eg.Go(func() error {
				face, err := newFace(c.Font, c.FontSize)
				if err != nil {
					return err
				}
				defer face.Close()
				c.drawRow(canvas, face, fg, g, m, row)
				progress()
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}
	return canvas, nil
}

// RowSpacing returns the smallest number of cell rows k such that glyphs
// from p drawn in rows r and r+k cannot cover a common canvas row.
func (c *Compositor) RowSpacing(face font.Face, p Palette) int {
	m := face.Metrics()
	top, bottom := -m.Ascent, m.Descent
	for _, r := range p {
		if r == ' ' {
			continue
		}
		b, _, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		top = min(top, b.Min.Y)
		bottom = max(bottom, b.Max.Y)
	}
	// The glyph mask is rounded outward around a fractional baseline.
	extent := (bottom-top).Ceil() + 1
	return max(1, (extent+c.CellHeight-1)/c.CellHeight)
}

func (c *Compositor) drawRow(canvas *image.RGBA, face font.Face, fg image.Image, g LumaGrid, m ToneMapper, row int) {
	d := font.Drawer{
		Dst:  canvas,
		Src:  fg,
		Face: face,
	}
	ascent := face.Metrics().Ascent
	for col := range g.W {
		r := m.Glyph(g.At(col, row))
		if r == ' ' {
			continue
		}
		at := c.Anchor(col, row)
		d.Dot = fixed.Point26_6{X: fixed.I(at.X), Y: fixed.I(at.Y) + ascent}
		d.DrawString(string(r))
	}
}

func (c *Compositor) progress(total int) func() {
	if c.Progress == nil {
		return func() {}
	}
	var mu sync.Mutex
	done := 0
	return func() {
		mu.Lock()
		defer mu.Unlock()
		done++
		c.Progress(done, total)
	}
}
