// internal/app/pdfexport/fonts.go
package pdfexport

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the parsed typefaces the renderer draws with. The deck content
// is largely Traditional Chinese, which the bundled Go fonts cannot shape, so
// deployments point DECKHUB_EXPORT_FONT / DECKHUB_EXPORT_FONT_BOLD at a CJK
// TTF (Noto Sans TC in the shipped container). The Go fonts remain the
// fallback so dev setups still produce a readable, if boxy, PDF.
type Fonts struct {
	regular *truetype.Font
	bold    *truetype.Font
}

// LoadFonts parses the configured font files, falling back to the embedded Go
// fonts for any path left empty.
func LoadFonts(regularPath, boldPath string) (*Fonts, error) {
	regular, err := loadFont(regularPath, goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := loadFont(boldPath, gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &Fonts{regular: regular, bold: bold}, nil
}

func loadFont(path string, fallback []byte) (*truetype.Font, error) {
	data := fallback
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		data = b
	}
	return truetype.Parse(data)
}

// Regular returns a face at the given point size.
func (f *Fonts) Regular(size float64) font.Face {
	return truetype.NewFace(f.regular, &truetype.Options{Size: size})
}

// Bold returns a bold face at the given point size.
func (f *Fonts) Bold(size float64) font.Face {
	return truetype.NewFace(f.bold, &truetype.Options{Size: size})
}
