// internal/app/pdfexport/render.go
package pdfexport

import (
	"fmt"
	"image"
	"strings"

	"github.com/fogleman/gg"

	"github.com/robinaudi/deckhub/internal/app/system/icons"
	"github.com/robinaudi/deckhub/internal/domain/models"
)

// Raster geometry. Slides are composed on a 1200x800 stage and rendered at
// 1.5x for print sharpness, matching the on-screen aspect of the viewer.
const (
	stageW = 1200
	stageH = 800
	scale  = 1.5
)

// Theme colors, hex RGB.
var (
	colorBG       = [3]float64{0x0f / 255.0, 0x17 / 255.0, 0x2a / 255.0} // slate-900
	colorPanel    = [3]float64{0x1e / 255.0, 0x29 / 255.0, 0x3b / 255.0} // slate-800
	colorAccent   = [3]float64{0x0a / 255.0, 0x66 / 255.0, 0xc2 / 255.0} // brand blue
	colorText     = [3]float64{0xf1 / 255.0, 0xf5 / 255.0, 0xf9 / 255.0}
	colorMuted    = [3]float64{0x94 / 255.0, 0xa3 / 255.0, 0xb8 / 255.0}
	colorGreen    = [3]float64{0x22 / 255.0, 0xc5 / 255.0, 0x5e / 255.0}
	colorCodeText = [3]float64{0x7d / 255.0, 0xd3 / 255.0, 0xfc / 255.0}
)

// Renderer rasterizes one slide at a time. Not safe for concurrent use;
// Exporter serializes access.
type Renderer struct {
	fonts *Fonts
}

// NewRenderer builds a renderer over the given fonts.
func NewRenderer(fonts *Fonts) *Renderer {
	return &Renderer{fonts: fonts}
}

// Render draws slide number idx+1 of total and returns the raster.
func (r *Renderer) Render(s models.Slide, idx, total int) image.Image {
	dc := gg.NewContext(int(stageW*scale), int(stageH*scale))
	dc.Scale(scale, scale)

	setRGB(dc, colorBG)
	dc.Clear()

	r.drawChrome(dc, s, idx, total)
	r.drawTitleBlock(dc, s)

	y := 230.0
	switch s.Type {
	case models.SlideChecklist:
		y = r.drawChecklist(dc, s, y)
	case models.SlideResource:
		y = r.drawArticles(dc, s, y)
	default:
		y = r.drawContent(dc, s, y)
		y = r.drawPoints(dc, s, y)
	}
	if s.ActionItem != nil {
		y = r.drawActionItem(dc, *s.ActionItem, y)
	}
	if s.HasReveal() {
		r.drawReveal(dc, s, y)
	}

	return dc.Image()
}

// drawChrome paints the module ribbon and the page counter.
func (r *Renderer) drawChrome(dc *gg.Context, s models.Slide, idx, total int) {
	setRGB(dc, colorAccent)
	dc.DrawRectangle(0, 0, stageW, 6)
	dc.Fill()

	dc.SetFontFace(r.fonts.Regular(16))
	setRGB(dc, colorMuted)
	if s.Module != "" {
		dc.DrawString(s.Module, 60, 50)
	}
	dc.DrawStringAnchored(fmt.Sprintf("%d / %d", idx+1, total), stageW-60, 50, 1, 0)
}

func (r *Renderer) drawTitleBlock(dc *gg.Context, s models.Slide) {
	title := s.Title
	if ic, ok := icons.Lookup(s.IconName); ok {
		title = string(ic.Glyph) + " " + title
	}

	dc.SetFontFace(r.fonts.Bold(44))
	setRGB(dc, colorText)
	dc.DrawStringWrapped(title, 60, 90, 0, 0, stageW-120, 1.2, gg.AlignLeft)

	if s.Subtitle != "" {
		dc.SetFontFace(r.fonts.Regular(24))
		setRGB(dc, colorAccent)
		dc.DrawStringWrapped(s.Subtitle, 60, 160, 0, 0, stageW-120, 1.2, gg.AlignLeft)
	}
}

// drawContent lays out the content sequence: bare strings as bullet lines,
// record items as titled cards.
func (r *Renderer) drawContent(dc *gg.Context, s models.Slide, y float64) float64 {
	for _, item := range s.Content {
		if y > stageH-80 {
			break
		}
		if item.IsText() {
			dc.SetFontFace(r.fonts.Regular(22))
			setRGB(dc, colorAccent)
			dc.DrawString("▪", 60, y+22)
			setRGB(dc, colorText)
			dc.DrawStringWrapped(item.Text, 90, y, 0, 0, stageW-150, 1.3, gg.AlignLeft)
			y += measureWrapped(dc, item.Text, stageW-150, 1.3) + 18
			continue
		}

		cardH := 64.0
		if item.Desc != "" {
			dc.SetFontFace(r.fonts.Regular(18))
			cardH += measureWrapped(dc, item.Desc, stageW-220, 1.3)
		}
		setRGB(dc, colorPanel)
		dc.DrawRoundedRectangle(60, y, stageW-120, cardH, 10)
		dc.Fill()

		glyph := icons.NoIcon.Glyph
		if ic, ok := icons.Lookup(item.IconName); ok {
			glyph = ic.Glyph
		}
		dc.SetFontFace(r.fonts.Bold(24))
		setRGB(dc, colorAccent)
		dc.DrawString(string(glyph), 80, y+38)

		dc.SetFontFace(r.fonts.Bold(22))
		setRGB(dc, colorText)
		dc.DrawString(item.Title, 120, y+38)
		if item.Desc != "" {
			dc.SetFontFace(r.fonts.Regular(18))
			setRGB(dc, colorMuted)
			dc.DrawStringWrapped(item.Desc, 120, y+52, 0, 0, stageW-220, 1.3, gg.AlignLeft)
		}
		y += cardH + 16
	}
	return y
}

func (r *Renderer) drawPoints(dc *gg.Context, s models.Slide, y float64) float64 {
	for _, p := range s.Points {
		if y > stageH-80 {
			break
		}
		dc.SetFontFace(r.fonts.Bold(22))
		setRGB(dc, colorAccent)
		dc.DrawString(p.Title, 60, y+22)
		y += 34

		dc.SetFontFace(r.fonts.Regular(19))
		setRGB(dc, colorText)
		dc.DrawStringWrapped(p.Desc, 60, y, 0, 0, stageW-120, 1.3, gg.AlignLeft)
		y += measureWrapped(dc, p.Desc, stageW-120, 1.3) + 22
	}
	return y
}

func (r *Renderer) drawChecklist(dc *gg.Context, s models.Slide, y float64) float64 {
	for _, item := range s.Checklist {
		if y > stageH-120 {
			break
		}
		dc.SetFontFace(r.fonts.Bold(22))
		setRGB(dc, colorGreen)
		dc.DrawString("✓", 60, y+22)

		dc.SetFontFace(r.fonts.Regular(21))
		setRGB(dc, colorText)
		dc.DrawStringWrapped(item, 95, y, 0, 0, stageW-160, 1.3, gg.AlignLeft)
		y += measureWrapped(dc, item, stageW-160, 1.3) + 20
	}

	if s.Quote != "" {
		setRGB(dc, colorPanel)
		dc.DrawRoundedRectangle(60, stageH-110, stageW-120, 70, 10)
		dc.Fill()
		dc.SetFontFace(r.fonts.Regular(20))
		setRGB(dc, colorAccent)
		dc.DrawStringWrapped(s.Quote, 80, stageH-92, 0, 0, stageW-160, 1.25, gg.AlignLeft)
	}
	return y
}

func (r *Renderer) drawArticles(dc *gg.Context, s models.Slide, y float64) float64 {
	for _, a := range s.Articles {
		if y > stageH-100 {
			break
		}
		setRGB(dc, colorPanel)
		dc.DrawRoundedRectangle(60, y, stageW-120, 96, 10)
		dc.Fill()

		dc.SetFontFace(r.fonts.Bold(21))
		setRGB(dc, colorText)
		dc.DrawString(a.Title, 80, y+32)

		dc.SetFontFace(r.fonts.Regular(17))
		setRGB(dc, colorMuted)
		dc.DrawString(a.Subtitle, 80, y+58)

		setRGB(dc, colorAccent)
		dc.DrawString(a.Link, 80, y+82)
		y += 112
	}
	return y
}

func (r *Renderer) drawActionItem(dc *gg.Context, a models.ActionItem, y float64) float64 {
	dc.SetFontFace(r.fonts.Bold(22))
	setRGB(dc, colorText)
	dc.DrawString(a.Title, 60, y+22)
	y += 40

	dc.SetFontFace(r.fonts.Regular(18))
	codeH := measureWrapped(dc, a.Code, stageW-160, 1.35) + 36
	setRGB(dc, colorPanel)
	dc.DrawRoundedRectangle(60, y, stageW-120, codeH, 10)
	dc.Fill()
	setRGB(dc, colorCodeText)
	dc.DrawStringWrapped(a.Code, 80, y+18, 0, 0, stageW-160, 1.35, gg.AlignLeft)
	y += codeH + 18

	if a.Example != "" && y < stageH-60 {
		setRGB(dc, colorMuted)
		dc.DrawStringWrapped("例："+a.Example, 60, y, 0, 0, stageW-120, 1.3, gg.AlignLeft)
		y += measureWrapped(dc, "例："+a.Example, stageW-120, 1.3) + 16
	}
	return y
}

// drawReveal prints the question and answer. The on-screen viewer hides the
// answer behind a click; the export always shows both.
func (r *Renderer) drawReveal(dc *gg.Context, s models.Slide, y float64) {
	if y > stageH-140 {
		y = stageH - 140
	}
	question := labeled("Q: ", s.Question)
	dc.SetFontFace(r.fonts.Bold(21))
	setRGB(dc, colorAccent)
	dc.DrawStringWrapped(question, 60, y, 0, 0, stageW-120, 1.3, gg.AlignLeft)
	y += measureWrapped(dc, question, stageW-120, 1.3) + 14

	dc.SetFontFace(r.fonts.Regular(20))
	setRGB(dc, colorGreen)
	dc.DrawStringWrapped(labeled("A: ", s.Answer), 60, y, 0, 0, stageW-120, 1.3, gg.AlignLeft)
}

// labeled prefixes text with the given label unless the authored text
// already carries it; the seed questions are written as "Q: ...".
func labeled(prefix, text string) string {
	if strings.HasPrefix(text, prefix) {
		return text
	}
	return prefix + text
}

func setRGB(dc *gg.Context, c [3]float64) {
	dc.SetRGB(c[0], c[1], c[2])
}

// measureWrapped returns the height the wrapped string will occupy with the
// context's current face.
func measureWrapped(dc *gg.Context, s string, width, lineSpacing float64) float64 {
	lines := dc.WordWrap(s, width)
	_, lh := dc.MeasureString("M")
	return float64(len(lines)) * lh * lineSpacing
}
