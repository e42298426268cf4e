// Package document serializes rendered pages into a single paginated PDF.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// ErrNoPages is returned when assembly is attempted with zero pages; an
// empty document is never emitted.
var ErrNoPages = errors.New("document has no pages")

// importSpec places each image on a letter page, filling it. The page
// rasters are rendered at letter aspect ratio, so filling is lossless.
const importSpec = "form:Letter, pos:full"

// Assembler collects rendered pages in order. Each page is compressed to
// PNG on append so only one raw raster is resident at a time, however
// many pages a run produces.
type Assembler struct {
	pages [][]byte
}

// New returns an empty Assembler.
func New() *Assembler {
	return &Assembler{}
}

// Append encodes one rendered page and adds it after the pages already
// collected. The caller may drop its reference to img immediately.
func (a *Assembler) Append(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding page %d: %w", len(a.pages)+1, err)
	}
	a.pages = append(a.pages, buf.Bytes())
	return nil
}

// PageCount reports how many pages have been appended.
func (a *Assembler) PageCount() int { return len(a.pages) }

// PageBytes returns the compressed raster of page i (0-based), for
// callers that need to inspect or compare pages before serialization.
func (a *Assembler) PageBytes(i int) []byte { return a.pages[i] }

// Encode serializes the collected pages, in order, as one PDF.
func (a *Assembler) Encode(w io.Writer) error {
	if len(a.pages) == 0 {
		return ErrNoPages
	}
	imp, err := api.Import(importSpec, types.POINTS)
	if err != nil {
		return fmt.Errorf("building import config: %w", err)
	}
	readers := make([]io.Reader, len(a.pages))
	for i, p := range a.pages {
		readers[i] = bytes.NewReader(p)
	}
	if err := api.ImportImages(nil, w, readers, imp, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// Bytes serializes the collected pages and returns the PDF.
func (a *Assembler) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := a.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
