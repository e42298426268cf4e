package document

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func whitePage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 255, 330))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func TestEmptyAssemblerFails(t *testing.T) {
	if _, err := New().Bytes(); !errors.Is(err, ErrNoPages) {
		t.Fatalf("expected ErrNoPages, got %v", err)
	}
}

func TestAssembleProducesPDF(t *testing.T) {
	a := New()
	for i := 0; i < 3; i++ {
		if err := a.Append(whitePage()); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	if a.PageCount() != 3 {
		t.Fatalf("PageCount = %d, want 3", a.PageCount())
	}

	pdf, err := a.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatalf("output does not start with %%PDF-: %q", pdf[:8])
	}

	// The PDF must hold exactly one page per appended raster, in order.
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		t.Fatal(err)
	}
	n, err := api.PageCountFile(path)
	if err != nil {
		t.Fatalf("PageCountFile: %v", err)
	}
	if n != 3 {
		t.Errorf("PDF has %d pages, want 3", n)
	}
}

func TestPageBytesStableForIdenticalPages(t *testing.T) {
	a := New()
	if err := a.Append(whitePage()); err != nil {
		t.Fatal(err)
	}
	if err := a.Append(whitePage()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.PageBytes(0), a.PageBytes(1)) {
		t.Error("identical rasters encoded differently")
	}
}
