package layout

import (
	"fmt"
	"image"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec holds the fixed page and grid geometry. All values are pixels at
// 300 DPI unless noted. Cell dimensions are derived, never stored, so the
// invariant cellW = (usable width - (N-1)*gap) / N always holds.
type Spec struct {
	GridSize int

	PageWidth  int
	PageHeight int

	MarginTop    int
	MarginBottom int
	MarginLeft   int
	MarginRight  int

	// Card pages reserve these two bands above the grid.
	TitleHeight int
	FolioHeight int

	Gap int

	TitleFontSize float64
	FolioFontSize float64

	LabelPaddingBottom int
	LabelSidePadding   int
	LabelLineSpacing   int
	OutlineWidth       int

	// Deck-page cell decoration.
	DeckBorderWidth  int
	DeckInnerInset   int
	DeckInnerWidth   int
	DeckLegendHeight int
}

// Default returns the letter-size 300 DPI layout used for printing.
func Default() Spec {
	return Spec{
		GridSize: 4,

		PageWidth:  2550, // 8.5" * 300 DPI
		PageHeight: 3300, // 11"  * 300 DPI

		MarginTop:    100,
		MarginBottom: 100,
		MarginLeft:   150,
		MarginRight:  150,

		TitleHeight: 200,
		FolioHeight: 80,

		Gap: 15,

		TitleFontSize: 80,
		FolioFontSize: 40,

		LabelPaddingBottom: 35,
		LabelSidePadding:   20,
		LabelLineSpacing:   6,
		OutlineWidth:       2,

		DeckBorderWidth:  5,
		DeckInnerInset:   8,
		DeckInnerWidth:   2,
		DeckLegendHeight: 90,
	}
}

// CellsPerPage is the number of grid positions on one page.
func (s Spec) CellsPerPage() int {
	return s.GridSize * s.GridSize
}

// CellWidth derives the cell width with floor division; any fractional
// remainder is absorbed as unused margin on the trailing edge.
func (s Spec) CellWidth() int {
	avail := s.PageWidth - s.MarginLeft - s.MarginRight
	return (avail - (s.GridSize-1)*s.Gap) / s.GridSize
}

// CellHeight derives the cell height from the card-page usable area.
// Deck pages reuse the same cell size so both page kinds render cells at
// identical dimensions; their leftover space stays as bottom margin.
func (s Spec) CellHeight() int {
	avail := s.PageHeight - s.MarginTop - s.MarginBottom - s.TitleHeight - s.FolioHeight
	return (avail - (s.GridSize-1)*s.Gap) / s.GridSize
}

// CardGridOrigin is the top-left corner of the grid on a card page, below
// the title and folio bands.
func (s Spec) CardGridOrigin() image.Point {
	return image.Pt(s.MarginLeft, s.MarginTop+s.TitleHeight+s.FolioHeight)
}

// DeckGridOrigin is the top-left corner of the grid on a deck page.
func (s Spec) DeckGridOrigin() image.Point {
	return image.Pt(s.MarginLeft, s.MarginTop)
}

// CellRect returns the pixel rectangle of the cell at (row, col) for a
// grid anchored at origin.
func (s Spec) CellRect(origin image.Point, row, col int) image.Rectangle {
	x := origin.X + col*(s.CellWidth()+s.Gap)
	y := origin.Y + row*(s.CellHeight()+s.Gap)
	return image.Rect(x, y, x+s.CellWidth(), y+s.CellHeight())
}

// Validate rejects geometry that cannot produce a usable page.
func (s Spec) Validate() error {
	if s.GridSize <= 0 {
		return fmt.Errorf("layout: grid size must be positive, got %d", s.GridSize)
	}
	if s.PageWidth <= 0 || s.PageHeight <= 0 {
		return fmt.Errorf("layout: page dimensions must be positive, got %dx%d", s.PageWidth, s.PageHeight)
	}
	if s.CellWidth() <= 0 || s.CellHeight() <= 0 {
		return fmt.Errorf("layout: margins and gaps leave no room for cells (%dx%d)", s.CellWidth(), s.CellHeight())
	}
	return nil
}

// overrides mirrors Spec with optional fields for the YAML layout file.
// Only the knobs that make sense to tune per run are exposed.
type overrides struct {
	Gap                *int     `yaml:"gap"`
	MarginTop          *int     `yaml:"margin_top"`
	MarginBottom       *int     `yaml:"margin_bottom"`
	MarginLeft         *int     `yaml:"margin_left"`
	MarginRight        *int     `yaml:"margin_right"`
	TitleHeight        *int     `yaml:"title_height"`
	FolioHeight        *int     `yaml:"folio_height"`
	TitleFontSize      *float64 `yaml:"title_font_size"`
	FolioFontSize      *float64 `yaml:"folio_font_size"`
	LabelPaddingBottom *int     `yaml:"label_padding_bottom"`
	OutlineWidth       *int     `yaml:"outline_width"`
	DeckBorderWidth    *int     `yaml:"deck_border_width"`
	DeckLegendHeight   *int     `yaml:"deck_legend_height"`
}

// LoadFile applies overrides from a YAML file on top of s.
func (s Spec) LoadFile(path string) (Spec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("layout: reading %s: %w", path, err)
	}
	var o overrides
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return s, fmt.Errorf("layout: parsing %s: %w", path, err)
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&s.Gap, o.Gap)
	setInt(&s.MarginTop, o.MarginTop)
	setInt(&s.MarginBottom, o.MarginBottom)
	setInt(&s.MarginLeft, o.MarginLeft)
	setInt(&s.MarginRight, o.MarginRight)
	setInt(&s.TitleHeight, o.TitleHeight)
	setInt(&s.FolioHeight, o.FolioHeight)
	setInt(&s.LabelPaddingBottom, o.LabelPaddingBottom)
	setInt(&s.OutlineWidth, o.OutlineWidth)
	setInt(&s.DeckBorderWidth, o.DeckBorderWidth)
	setInt(&s.DeckLegendHeight, o.DeckLegendHeight)
	if o.TitleFontSize != nil {
		s.TitleFontSize = *o.TitleFontSize
	}
	if o.FolioFontSize != nil {
		s.FolioFontSize = *o.FolioFontSize
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}
