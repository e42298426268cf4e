package layout

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestCellSizeFitsCanvas(t *testing.T) {
	s := Default()

	gridW := s.GridSize*s.CellWidth() + (s.GridSize-1)*s.Gap
	if gridW > s.PageWidth-s.MarginLeft-s.MarginRight {
		t.Errorf("grid width %d overflows usable width %d", gridW, s.PageWidth-s.MarginLeft-s.MarginRight)
	}

	gridH := s.GridSize*s.CellHeight() + (s.GridSize-1)*s.Gap
	availH := s.PageHeight - s.MarginTop - s.MarginBottom - s.TitleHeight - s.FolioHeight
	if gridH > availH {
		t.Errorf("grid height %d overflows usable height %d", gridH, availH)
	}
}

func TestCellRect(t *testing.T) {
	s := Default()
	origin := s.CardGridOrigin()

	tests := []struct {
		name     string
		row, col int
		want     image.Point
	}{
		{"top left", 0, 0, origin},
		{"one right", 0, 1, image.Pt(origin.X+s.CellWidth()+s.Gap, origin.Y)},
		{"one down", 1, 0, image.Pt(origin.X, origin.Y+s.CellHeight()+s.Gap)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := s.CellRect(origin, tt.row, tt.col)
			if r.Min != tt.want {
				t.Errorf("cell (%d,%d) at %v, want %v", tt.row, tt.col, r.Min, tt.want)
			}
			if r.Dx() != s.CellWidth() || r.Dy() != s.CellHeight() {
				t.Errorf("cell size %dx%d, want %dx%d", r.Dx(), r.Dy(), s.CellWidth(), s.CellHeight())
			}
		})
	}

	// Last cell must stay inside the page.
	last := s.CellRect(origin, s.GridSize-1, s.GridSize-1)
	if last.Max.X > s.PageWidth || last.Max.Y > s.PageHeight {
		t.Errorf("last cell %v exceeds page %dx%d", last, s.PageWidth, s.PageHeight)
	}
}

func TestDeckAndCardCellsMatch(t *testing.T) {
	s := Default()
	card := s.CellRect(s.CardGridOrigin(), 2, 3)
	deck := s.CellRect(s.DeckGridOrigin(), 2, 3)
	if card.Dx() != deck.Dx() || card.Dy() != deck.Dy() {
		t.Errorf("deck cell %dx%d differs from card cell %dx%d", deck.Dx(), deck.Dy(), card.Dx(), card.Dy())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	content := "gap: 30\ntitle_font_size: 96\ndeck_legend_height: 120\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Default().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Gap != 30 {
		t.Errorf("gap = %d, want 30", s.Gap)
	}
	if s.TitleFontSize != 96 {
		t.Errorf("title font size = %v, want 96", s.TitleFontSize)
	}
	if s.DeckLegendHeight != 120 {
		t.Errorf("deck legend height = %d, want 120", s.DeckLegendHeight)
	}
	// Untouched knobs keep their defaults.
	if s.OutlineWidth != Default().OutlineWidth {
		t.Errorf("outline width changed unexpectedly: %d", s.OutlineWidth)
	}
}

func TestLoadFileRejectsBrokenGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("margin_left: 2000\nmargin_right: 2000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Default().LoadFile(path); err == nil {
		t.Fatal("expected validation error for margins wider than the page")
	}
}
