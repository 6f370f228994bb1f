package glyphcanvas

import (
	"errors"
	"fmt"
	"image"
	"runtime"
)

var (
	ErrMissingArgument = errors.New("please provide path to the original image")
	ErrScaleOutOfBound = errors.New("the scaling factor should be between 0 and 1")
	ErrFontLoad        = errors.New("cannot load font")
)

// DefaultPalette runs from the densest glyph to the blank one.
const DefaultPalette = "@%#?+=:-. "

type Options struct {
	// Fraction of the larger source side kept as the grid size, in (0,1].
	Scale float64
	// Glyphs ordered from visually densest (index 0) to sparsest.
	Palette Palette
	// Cell size in canvas pixels. Every grid sample owns exactly one cell.
	CellWidth  int
	CellHeight int
	// Font size in pixels (72 DPI). Tied to the cell size: 20 suits 17x17.
	FontSize float64
	// Top-left glyph anchor inside its cell. Glyphs may still overflow into
	// the next cell row through descenders.
	XOffset int
	YOffset int
	// Global brightness below Threshold selects light glyphs on black and
	// inverts the palette mapping.
	Threshold uint8
	// Divisor applied to the brightness error before correcting the canvas.
	// Values above 1 under-correct.
	Damping float64
	// Desaturate the corrected canvas to an *image.Gray.
	Monochrome bool
	// Goroutines used by the compositor. Values below 2 render sequentially.
	Workers int
	// TrueType/OpenType data. Nil selects the embedded Go Mono Bold.
	Font []byte
}

func DefaultOptions() Options {
	return Options{
		Scale:      0.33,
		Palette:    Palette(DefaultPalette),
		CellWidth:  17,
		CellHeight: 17,
		FontSize:   20,
		XOffset:    3,
		YOffset:    1,
		Threshold:  110,
		Damping:    1.5,
		Monochrome: true,
		Workers:    1,
	}
}

// OptionsFromSize returns the defaults with a worker count suited to a
// downscaled grid of the given size. Small grids are not worth the
// goroutine setup.
func OptionsFromSize(size image.Point) Options {
	opt := DefaultOptions()
	if size.X <= 0 || size.Y <= 0 {
		return opt
	}
	cells := size.X * size.Y
	switch {
	case cells <= 64*64:
		opt.Workers = 1
	case cells <= 256*256:
		opt.Workers = min(4, runtime.NumCPU())
	default:
		opt.Workers = runtime.NumCPU()
	}
	return opt
}

func (o Options) Validate() error {
	if !(o.Scale > 0 && o.Scale <= 1) {
		return fmt.Errorf("%w: got %g", ErrScaleOutOfBound, o.Scale)
	}
	if len(o.Palette) == 0 {
		return errors.New("glyphcanvas: empty palette")
	}
	if o.CellWidth <= 0 || o.CellHeight <= 0 {
		return fmt.Errorf("glyphcanvas: invalid cell size %dx%d", o.CellWidth, o.CellHeight)
	}
	if o.FontSize <= 0 {
		return fmt.Errorf("glyphcanvas: invalid font size %g", o.FontSize)
	}
	if o.Damping <= 0 {
		return fmt.Errorf("glyphcanvas: invalid damping %g", o.Damping)
	}
	return nil
}
