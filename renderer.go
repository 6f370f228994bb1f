package glyphcanvas

import (
	"image"

	"golang.org/x/image/font/opentype"
)

// Renderer turns one source image into its glyph rendering. Build runs
// the stages in order; the intermediate results stay on the struct.
type Renderer struct {
	InputImage image.Image
	Options    Options
	// Shared parsed font. Loaded from Options.Font on Build when nil.
	Font     *opentype.Font
	Progress ProgressFunc

	Downscaled *image.RGBA
	Grid       LumaGrid
	Original   uint8
	Scheme     ColorScheme
	Mapper     ToneMapper
	Canvas     *image.RGBA
	Result     image.Image
	Report     Report
}

func NewRenderer(input image.Image, opt Options) *Renderer {
	return &Renderer{
		InputImage: input,
		Options:    opt,
	}
}

func (r *Renderer) Build() error {
	if err := r.Options.Validate(); err != nil {
		return err
	}
	if r.Font == nil {
		f, err := LoadFont(r.Options.Font)
		if err != nil {
			return err
		}
		r.Font = f
	}
	if err := r.downscale(); err != nil {
		return err
	}
	r.chooseScheme()
	if err := r.compose(); err != nil {
		return err
	}
	r.correct()
	return nil
}

func (r *Renderer) downscale() error {
	img, err := Downscale(r.InputImage, r.Options.Scale)
	if err != nil {
		return err
	}
	r.Downscaled = img
	r.Grid = NewLumaGrid(img)
	return nil
}

func (r *Renderer) chooseScheme() {
	r.Original = SampleBrightness(r.Downscaled)
	r.Scheme = SchemeFor(r.Original, r.Options.Threshold)
	r.Mapper = NewToneMapper(r.Options.Palette, r.Original, r.Options.Threshold)
}

func (r *Renderer) compose() error {
	c := NewCompositor(r.Font, r.Options)
	c.Progress = r.Progress
	canvas, err := c.Compose(r.Grid, r.Scheme, r.Mapper)
	if err != nil {
		return err
	}
	r.Canvas = canvas
	return nil
}

func (r *Renderer) correct() {
	sampled, delta := Correct(r.Canvas, r.Original, r.Options.Damping)
	r.Report = newReport(r, sampled, delta)
	if r.Options.Monochrome {
		r.Result = Grayscale(r.Canvas)
	} else {
		r.Result = r.Canvas
	}
}

// Render is a shortcut for NewRenderer(img, opt).Build().
func Render(img image.Image, opt Options) (*Renderer, error) {
	r := NewRenderer(img, opt)
	if err := r.Build(); err != nil {
		return nil, err
	}
	return r, nil
}
