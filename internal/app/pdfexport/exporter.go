// internal/app/pdfexport/exporter.go

// Package pdfexport renders the deck to a downloadable PDF: each slide is
// rasterized on an offscreen canvas, JPEG-compressed, and placed on its own
// landscape A4 page. Rasterizing sidesteps per-type PDF layout entirely and
// guarantees the export matches the viewer's composition.
package pdfexport

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"sync"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/domain/models"
)

// Filename is the fixed download name for every export.
const Filename = "linkedin-strategies-by-RobinHsu.PDF"

// Page geometry in millimeters, landscape A4.
const (
	pageWidthMM  = 297
	pageHeightMM = 210
)

// jpegQuality balances export size against raster sharpness.
const jpegQuality = 75

// Exporter turns a deck into a PDF. Export is serialized: rendering is
// CPU-heavy and the download gate already limits each account to one export
// per day, so concurrent passes would only be contention.
type Exporter struct {
	renderer *Renderer
	log      *zap.Logger
	mu       sync.Mutex
}

// New builds an exporter over the given fonts.
func New(fonts *Fonts, logger *zap.Logger) *Exporter {
	return &Exporter{renderer: NewRenderer(fonts), log: logger}
}

// Export renders every slide and assembles the PDF. The context is checked
// between slides so an abandoned download stops burning CPU.
func (e *Exporter) Export(ctx context.Context, slides []models.Slide) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(slides) == 0 {
		return nil, fmt.Errorf("export: deck is empty")
	}

	start := time.Now()
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(true)
	pdf.SetTitle("LinkedIn Strategies", true)
	pdf.SetAutoPageBreak(false, 0)

	for i, slide := range slides {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("export canceled at slide %d: %w", i+1, ctx.Err())
		default:
		}

		img := e.renderer.Render(slide, i, len(slides))

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("export: encode slide %d: %w", i+1, err)
		}

		name := fmt.Sprintf("slide-%d", i+1)
		opts := fpdf.ImageOptions{ImageType: "JPG"}
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		pdf.AddPage()
		pdf.ImageOptions(name, 0, 0, pageWidthMM, pageHeightMM, false, opts, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("export: assemble pdf: %w", err)
	}

	e.log.Info("pdf export complete",
		zap.Int("slides", len(slides)),
		zap.Int("bytes", out.Len()),
		zap.Duration("elapsed", time.Since(start)))

	return out.Bytes(), nil
}
