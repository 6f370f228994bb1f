// Command glyphcanvas renders an image as ASCII art and saves the result
// as a PNG image.
//
//	glyphcanvas [options] image [scale]
//
// Options must come before image.
//
// scale is the fraction of the larger image side used as the grid size,
// in (0,1]. It defaults to 0.33.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/setanarut/glyphcanvas"
	"github.com/setanarut/glyphcanvas/utils"
)

const defaultScale = 0.33

var errExtraArgument = errors.New("unexpected arguments after image and scale")

type options struct {
	Output    string  `short:"o" long:"output" default:"output/output.png" description:"Where to write the rendered PNG"`
	Original  string  `long:"original" default:"output/original.png" description:"Where to write the downscaled source for comparison (empty disables)"`
	Workers   int     `short:"w" long:"workers" description:"Compositor goroutines (0 picks from the grid size)"`
	Palette   string  `long:"palette" description:"Glyphs ordered from densest to sparsest"`
	Font      string  `long:"font" description:"TrueType/OpenType file used instead of Go Mono Bold"`
	Threshold uint8   `long:"threshold" default:"110" description:"Sources darker than this get light glyphs on black"`
	Damping   float64 `long:"damping" default:"1.5" description:"Divisor applied to the brightness correction"`
	Tint      bool    `long:"tint" description:"Color the output with two tones taken from the source"`
	Method    string  `long:"tint-method" default:"dominantcolor" choice:"dominantcolor" choice:"kmeans" description:"How tint colors are extracted"`
	Swatch    string  `long:"swatch" description:"Write the tint colors as a swatch PNG"`
	Verbose   bool    `short:"v" long:"verbose" description:"Log every stage"`

	Args struct {
		Image string `positional-arg-name:"image"`
		Scale string `positional-arg-name:"scale"`
	} `positional-args:"yes"`
}

var verbose bool

func logV(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	var opts options
	// Options go before the image; everything after it is positional so
	// that a negative scale is not read as a flag.
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash|flags.PassAfterNonOption)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return nil
		}
		return err
	}
	verbose = opts.Verbose

	if opts.Args.Image == "" {
		return glyphcanvas.ErrMissingArgument
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: %q", errExtraArgument, rest)
	}
	scale, err := parseScale(opts.Args.Scale)
	if err != nil {
		return err
	}

	var fontData []byte
	if opts.Font != "" {
		fontData, err = os.ReadFile(opts.Font)
		if err != nil {
			return fmt.Errorf("%w: %v", glyphcanvas.ErrFontLoad, err)
		}
	}
	method, err := utils.ParsePaletteMethod(opts.Method)
	if err != nil {
		return err
	}

	img, err := utils.ReadImage(opts.Args.Image)
	if err != nil {
		return err
	}
	b := img.Bounds()
	logV("source %s: %dx%d", opts.Args.Image, b.Dx(), b.Dy())

	target, err := glyphcanvas.TargetSize(b.Dx(), b.Dy(), scale)
	if err != nil {
		return err
	}
	opt := glyphcanvas.OptionsFromSize(glyphcanvas.FitSize(b.Dx(), b.Dy(), target, target))
	opt.Scale = scale
	opt.Threshold = opts.Threshold
	opt.Damping = opts.Damping
	opt.Font = fontData
	if opts.Palette != "" {
		opt.Palette = glyphcanvas.Palette(opts.Palette)
	}
	if opts.Workers > 0 {
		opt.Workers = opts.Workers
	}

	r := glyphcanvas.NewRenderer(img, opt)
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.Progress = func(done, total int) {
			fmt.Fprintf(stdout, "\r%d%%", done*100/total)
			if done == total {
				fmt.Fprintln(stdout)
			}
		}
	}
	if err := r.Build(); err != nil {
		return err
	}
	log.Printf("original image brightness: %d", r.Report.Original)
	log.Printf("output image brightness: %d", r.Report.Rendered)
	logV("%s", r.Report)

	result := r.Result
	if opts.Tint {
		palette := utils.ExtractPalette(r.Downscaled, 2, method)
		utils.SortPaletteByBrightness(palette)
		logV("tint palette (%s): %v", method, palette)
		result = glyphcanvas.DuotoneFromPalette(result, palette)
		if opts.Swatch != "" {
			if err := utils.SavePalette(palette, 64, opts.Swatch); err != nil {
				return err
			}
		}
	}

	logV("saving %s", opts.Output)
	if err := utils.SaveImage(result, opts.Output); err != nil {
		return err
	}
	if opts.Original != "" {
		logV("saving %s", opts.Original)
		if err := utils.SaveImage(r.Downscaled, opts.Original); err != nil {
			return err
		}
	}
	return nil
}

// parseScale reads the optional scale argument.
func parseScale(s string) (float64, error) {
	if s == "" {
		return defaultScale, nil
	}
	scale, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid scale %q: %w", s, err)
	}
	if !(scale > 0 && scale <= 1) {
		return 0, fmt.Errorf("%w: got %s", glyphcanvas.ErrScaleOutOfBound, s)
	}
	return scale, nil
}
