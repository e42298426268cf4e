// Package loteria runs the full generation pipeline: validate, sample,
// render deck and card pages, and assemble the printable PDF.
package loteria

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"math/rand"
	"time"

	"github.com/Armando-Castillo/loteria/internal/cards"
	"github.com/Armando-Castillo/loteria/internal/deck"
	"github.com/Armando-Castillo/loteria/internal/document"
	"github.com/Armando-Castillo/loteria/internal/layout"
	"github.com/Armando-Castillo/loteria/internal/pool"
	"github.com/Armando-Castillo/loteria/internal/render"
)

// MinImages is the smallest pool that can fill one card.
const MinImages = cards.PerCard

// Params configures one generation run.
type Params struct {
	// CardCount is the number of randomized cards to generate. Must be
	// positive.
	CardCount int

	// Title is printed centered at the top of every card page.
	Title string

	// LabelFontSize is the caption size in pixels. Callers must supply
	// it; the engine has no default.
	LabelFontSize float64

	// IncludeDeck prepends reference pages showing every pool image once.
	IncludeDeck bool

	// ShareURL, when set, stamps a small QR code onto each card page.
	ShareURL string

	// FontPath optionally points at a TTF/OTF file. Empty means the
	// platform/bundled fallback chain.
	FontPath string

	// Seed fixes the sampling sequence for reproducible output. Zero
	// means derive a seed from the clock.
	Seed int64

	// Layout overrides the default letter-size geometry when non-nil.
	Layout *layout.Spec

	Logger *slog.Logger
}

func (p Params) validate() error {
	if p.CardCount <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("card count must be positive, got %d", p.CardCount)}
	}
	if p.LabelFontSize <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("label font size must be positive, got %v", p.LabelFontSize)}
	}
	return nil
}

// Generate runs the pipeline over the pool and returns the finished PDF.
// Configuration and pool-size problems surface before any rendering;
// individual bad assets or failed pages are logged and skipped. The run
// can be aborted between pages through ctx.
func Generate(ctx context.Context, p pool.Pool, params Params) ([]byte, error) {
	asm, err := GeneratePages(ctx, p, params)
	if err != nil {
		return nil, err
	}
	out, err := asm.Bytes()
	if err != nil {
		return nil, &AssemblyError{Err: err}
	}
	return out, nil
}

// GeneratePages renders every page of the run and returns the assembler
// holding them, deck pages first, cards in folio order.
func GeneratePages(ctx context.Context, p pool.Pool, params Params) (*document.Assembler, error) {
	log := params.Logger
	if log == nil {
		log = slog.Default()
	}

	if err := params.validate(); err != nil {
		return nil, err
	}
	if len(p) < MinImages {
		return nil, &InsufficientImagesError{Have: len(p), Need: MinImages}
	}

	spec := layout.Default()
	if params.Layout != nil {
		spec = *params.Layout
	}

	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Sampling happens before any page render so an impossible request
	// fails fast instead of mid-batch.
	sampled, err := cards.Sample(p, params.CardCount, params.Title, rng)
	if err != nil {
		return nil, fmt.Errorf("sampling cards: %w", err)
	}

	r, err := render.New(spec, render.Config{
		FontPath:      params.FontPath,
		LabelFontSize: params.LabelFontSize,
		Logger:        log,
	})
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	var stamp image.Image
	if params.ShareURL != "" {
		stamp, err = render.ShareQR(params.ShareURL, 256)
		if err != nil {
			log.Warn("share QR generation failed, continuing without", "error", err)
			stamp = nil
		}
	}

	asm := document.New()

	if params.IncludeDeck {
		for _, pg := range deck.Paginate(p) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			img, err := r.DeckPage(pg)
			if err != nil {
				log.Warn("skipping deck page", "page", pg.Index, "error", err)
				continue
			}
			if err := asm.Append(img); err != nil {
				return nil, &AssemblyError{Err: err}
			}
			log.Info("rendered deck page", "page", pg.Index, "images", len(pg.Assets))
		}
	}

	for _, c := range sampled {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := r.CardPage(c, stamp)
		if err != nil {
			log.Warn("skipping card", "folio", c.Folio, "error", err)
			continue
		}
		if err := asm.Append(img); err != nil {
			return nil, &AssemblyError{Err: err}
		}
		log.Info("rendered card", "folio", c.Folio, "of", params.CardCount)
	}

	return asm, nil
}
