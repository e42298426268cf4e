// Package render composes letter-size pages from image cells, captions
// and page decorations.
package render

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/Armando-Castillo/loteria/internal/cards"
	"github.com/Armando-Castillo/loteria/internal/deck"
	"github.com/Armando-Castillo/loteria/internal/layout"
	"github.com/Armando-Castillo/loteria/internal/text"
)

// qrStampSize is the edge length of the share QR drawn in the bottom
// margin of card pages.
const qrStampSize = 80

// Config carries the caller-supplied rendering knobs. LabelFontSize has
// no engine default on purpose: call sites disagree on it, so the engine
// refuses to guess.
type Config struct {
	FontPath      string
	LabelFontSize float64
	Logger        *slog.Logger
}

// Renderer turns cards and deck pages into page rasters. It holds the
// resolved font faces so a run pays font parsing once, not per cell.
type Renderer struct {
	spec  layout.Spec
	label font.Face
	title font.Face
	folio font.Face
	log   *slog.Logger
}

// New resolves fonts and validates geometry up front so page rendering
// itself cannot fail on configuration.
func New(spec layout.Spec, cfg Config) (*Renderer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if cfg.LabelFontSize <= 0 {
		return nil, fmt.Errorf("label font size must be positive, got %v", cfg.LabelFontSize)
	}

	label, err := text.ResolveFace(cfg.FontPath, cfg.LabelFontSize)
	if err != nil {
		return nil, err
	}
	var title font.Face
	if cfg.FontPath != "" {
		title, err = text.ResolveFace(cfg.FontPath, spec.TitleFontSize)
	} else {
		title, err = text.BundledBoldFace(spec.TitleFontSize)
	}
	if err != nil {
		return nil, err
	}
	folio, err := text.ResolveFace(cfg.FontPath, spec.FolioFontSize)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Renderer{spec: spec, label: label, title: title, folio: folio, log: log}, nil
}

func (r *Renderer) newPage() *gg.Context {
	dc := gg.NewContext(r.spec.PageWidth, r.spec.PageHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	return dc
}

// CardPage renders one playable card: title band, right-aligned folio,
// and the 4x4 grid. stamp, when non-nil, is drawn small in the bottom
// margin so printed cards link back to their generator.
func (r *Renderer) CardPage(c cards.Card, stamp image.Image) (image.Image, error) {
	if len(c.Assets) != r.spec.CellsPerPage() {
		return nil, fmt.Errorf("card %d has %d images, want %d", c.Folio, len(c.Assets), r.spec.CellsPerPage())
	}
	dc := r.newPage()

	r.drawTitleBand(dc, c.Title, fmt.Sprintf("Card #%02d", c.Folio))

	origin := r.spec.CardGridOrigin()
	for i, asset := range c.Assets {
		rect := r.spec.CellRect(origin, i/r.spec.GridSize, i%r.spec.GridSize)
		if err := r.drawCell(dc, asset, rect, cardCell); err != nil {
			r.log.Warn("skipping cell", "card", c.Folio, "position", i, "error", err)
		}
	}

	if stamp != nil {
		r.drawStamp(dc, stamp)
	}
	return dc.Image(), nil
}

// DeckPage renders one reference page: a full-area grid of bordered
// cells, row-major. Trailing positions of a partial page stay blank.
func (r *Renderer) DeckPage(p deck.Page) (image.Image, error) {
	if len(p.Assets) == 0 {
		return nil, fmt.Errorf("deck page %d has no images", p.Index)
	}
	if len(p.Assets) > r.spec.CellsPerPage() {
		return nil, fmt.Errorf("deck page %d has %d images, max %d", p.Index, len(p.Assets), r.spec.CellsPerPage())
	}
	dc := r.newPage()

	origin := r.spec.DeckGridOrigin()
	for i, asset := range p.Assets {
		rect := r.spec.CellRect(origin, i/r.spec.GridSize, i%r.spec.GridSize)
		if err := r.drawCell(dc, asset, rect, deckCell); err != nil {
			r.log.Warn("skipping cell", "deckPage", p.Index, "position", i, "error", err)
		}
	}
	return dc.Image(), nil
}

func (r *Renderer) drawTitleBand(dc *gg.Context, title, folioText string) {
	bandY := r.spec.MarginTop / 2

	if title != "" {
		dc.SetFontFace(r.title)
		dc.SetRGB(0, 0, 0)
		w, _ := text.Measure(r.title, title)
		x := float64((r.spec.PageWidth - w) / 2)
		y := float64(bandY + r.title.Metrics().Ascent.Ceil())
		dc.DrawString(title, x, y)
	}

	dc.SetFontFace(r.folio)
	dc.SetRGB(0, 0, 0)
	w, _ := text.Measure(r.folio, folioText)
	x := float64(r.spec.PageWidth - r.spec.MarginRight - w)
	y := float64(bandY + r.folio.Metrics().Ascent.Ceil())
	dc.DrawString(folioText, x, y)
}

func (r *Renderer) drawStamp(dc *gg.Context, stamp image.Image) {
	fitted := FitToCell(stamp, qrStampSize, qrStampSize)
	x := r.spec.PageWidth - r.spec.MarginRight - qrStampSize
	y := r.spec.PageHeight - r.spec.MarginBottom + (r.spec.MarginBottom-qrStampSize)/2
	dc.DrawImage(fitted, x, y)
}
