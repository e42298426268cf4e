// Package deck splits the image pool into reference pages that show every
// source image once, for calling during play.
package deck

import "github.com/Armando-Castillo/loteria/internal/pool"

// PageSize is the number of grid positions per deck page.
const PageSize = 16

// Page is one deck page: up to PageSize assets plus a 1-based index. The
// last page of a pool may be partially filled.
type Page struct {
	Index  int
	Assets []*pool.ImageAsset
}

// Paginate chunks the pool into consecutive pages of PageSize, preserving
// pool order. Concatenating the pages reproduces the pool exactly.
func Paginate(p pool.Pool) []Page {
	if len(p) == 0 {
		return nil
	}
	pages := make([]Page, 0, (len(p)+PageSize-1)/PageSize)
	for start := 0; start < len(p); start += PageSize {
		end := start + PageSize
		if end > len(p) {
			end = len(p)
		}
		pages = append(pages, Page{
			Index:  len(pages) + 1,
			Assets: p[start:end],
		})
	}
	return pages
}
