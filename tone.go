package glyphcanvas

import "math"

// Palette lists glyphs from visually densest to sparsest.
type Palette []rune

func (p Palette) String() string {
	return string(p)
}

// MapRange maps v linearly from [a, b] onto [c, d].
func MapRange(v, a, b, c, d float64) float64 {
	return c + (v-a)*(d-c)/(b-a)
}

// ColorScheme is always one of the two black/white pairings.
type ColorScheme struct {
	Background uint8
	Glyph      uint8
}

var (
	DarkOnLight = ColorScheme{Background: 255, Glyph: 0}
	LightOnDark = ColorScheme{Background: 0, Glyph: 255}
)

// SchemeFor picks light glyphs on black for sources darker than threshold.
func SchemeFor(brightness, threshold uint8) ColorScheme {
	if brightness < threshold {
		return LightOnDark
	}
	return DarkOnLight
}

// ToneMapper turns brightness samples into palette indices.
//
// The palette is authored for a light canvas, where a dense glyph stands for
// a dark pixel. On a dark canvas (Dark set) the mapping is mirrored so dense
// glyphs keep marking the prominent, here bright, regions.
type ToneMapper struct {
	Palette Palette
	Dark    bool
}

func NewToneMapper(p Palette, brightness, threshold uint8) ToneMapper {
	return ToneMapper{
		Palette: p,
		Dark:    brightness < threshold,
	}
}

// Index returns the palette index for brightness v, in [0, len(Palette)-1].
func (m ToneMapper) Index(v uint8) int {
	last := len(m.Palette) - 1
	if last <= 0 {
		return 0
	}
	idx := int(math.Round(MapRange(float64(v), 0, 255, 0, float64(last))))
	idx = max(0, min(last, idx))
	if m.Dark {
		idx = last - idx
	}
	return idx
}

func (m ToneMapper) Glyph(v uint8) rune {
	return m.Palette[m.Index(v)]
}

// Indices maps every grid sample, row-major.
func (m ToneMapper) Indices(g LumaGrid) []int {
	out := make([]int, len(g.Pix))
	for i, v := range g.Pix {
		out[i] = m.Index(v)
	}
	return out
}
