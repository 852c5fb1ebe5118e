package fonts

import (
	"fmt"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Result FontName = "result"
	Debug  FontName = "debug"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadDefaults registers the bundled Go Regular faces. Safe to call twice.
func LoadDefaults(resultSize float64) error {
	if _, ok := fonts[Result]; ok {
		return nil
	}
	if err := LoadFontWithSize(Result, goregular.TTF, resultSize); err != nil {
		return err
	}
	return LoadFont(Debug, goregular.TTF)
}

// Measure returns the pixel size of a possibly multi-line string, with line
// advance scaled by lineSpacing.
func Measure(face font.Face, s string, lineSpacing float64) (width, height float64) {
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		w := float64(font.MeasureString(face, line)) / 64
		width = max(width, w)
	}
	lineHeight := float64(face.Metrics().Height) / 64
	height = lineHeight * (1 + lineSpacing*float64(len(lines)-1))
	return width, height
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
