// Package cards draws randomized game cards from the image pool.
package cards

import (
	"fmt"
	"math/rand"

	"github.com/Armando-Castillo/loteria/internal/pool"
)

// PerCard is the number of images on one card, a full 4x4 grid.
const PerCard = 16

// Card is one playable page: exactly PerCard distinct assets, the
// document title, and a 1-based folio number.
type Card struct {
	Folio  int
	Title  string
	Assets []*pool.ImageAsset
}

// Sample draws count cards from the pool. Each card is an independent
// uniform sample of PerCard distinct assets; the same image may appear on
// many cards, never twice on one. The rand source is injected so callers
// can seed it for reproducible runs.
func Sample(p pool.Pool, count int, title string, rng *rand.Rand) ([]Card, error) {
	if count <= 0 {
		return nil, fmt.Errorf("card count must be positive, got %d", count)
	}
	if len(p) < PerCard {
		return nil, fmt.Errorf("pool has %d images, need at least %d", len(p), PerCard)
	}

	out := make([]Card, 0, count)
	for folio := 1; folio <= count; folio++ {
		perm := rng.Perm(len(p))
		assets := make([]*pool.ImageAsset, PerCard)
		for i := 0; i < PerCard; i++ {
			assets[i] = p[perm[i]]
		}
		out = append(out, Card{Folio: folio, Title: title, Assets: assets})
	}
	return out, nil
}
