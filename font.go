package glyphcanvas

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

// LoadFont parses TrueType/OpenType data. Nil data loads the embedded
// Go Mono Bold. The result is safe to share between compositors; faces
// made from it are not.
func LoadFont(data []byte) (*opentype.Font, error) {
	if data == nil {
		data = gomonobold.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	return f, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	return face, nil
}
