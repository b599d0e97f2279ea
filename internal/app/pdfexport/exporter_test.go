// internal/app/pdfexport/exporter_test.go
package pdfexport_test

import (
	"bytes"
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/robinaudi/deckhub/internal/app/pdfexport"
	"github.com/robinaudi/deckhub/internal/domain/models"
)

func loadTestFonts(t *testing.T) *pdfexport.Fonts {
	t.Helper()
	fonts, err := pdfexport.LoadFonts("", "")
	if err != nil {
		t.Fatalf("embedded fonts must always load: %v", err)
	}
	return fonts
}

func TestLoadFontsMissingFile(t *testing.T) {
	if _, err := pdfexport.LoadFonts("/nonexistent/font.ttf", ""); err == nil {
		t.Error("a configured but missing font file must fail loudly")
	}
}

func TestRenderDimensions(t *testing.T) {
	r := pdfexport.NewRenderer(loadTestFonts(t))
	deck := models.DefaultDeck()

	for i, slide := range deck {
		img := r.Render(slide, i, len(deck))
		b := img.Bounds()
		if b.Dx() != 1800 || b.Dy() != 1200 {
			t.Fatalf("slide %d: rendered %dx%d, want 1800x1200", i+1, b.Dx(), b.Dy())
		}
	}
}

func TestExportProducesPDF(t *testing.T) {
	e := pdfexport.New(loadTestFonts(t), zap.NewNop())

	data, err := e.Export(context.Background(), models.DefaultDeck())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
	if len(data) < 10_000 {
		t.Errorf("ten rasterized pages should not fit in %d bytes", len(data))
	}
}

func TestExportEmptyDeck(t *testing.T) {
	e := pdfexport.New(loadTestFonts(t), zap.NewNop())
	if _, err := e.Export(context.Background(), nil); err == nil {
		t.Error("an empty deck must be refused")
	}
}

func TestExportCanceledContext(t *testing.T) {
	e := pdfexport.New(loadTestFonts(t), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Export(ctx, models.DefaultDeck()); err == nil {
		t.Error("a canceled context must abort the export")
	}
}
