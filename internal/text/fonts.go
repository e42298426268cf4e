package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts that commonly exist on the platforms we run on. Tried in order
// after any explicitly configured font, before falling back to the
// bundled Go fonts.
var platformFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/Library/Fonts/Arial.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// ResolveFace builds a font face of the given pixel size. Resolution is an
// ordered chain: the explicit path (when non-empty), then known platform
// fonts, then the bundled Go regular font, which always succeeds. An
// explicit path that fails to load is an error rather than a silent
// fallback, so a misconfigured --font flag is visible.
func ResolveFace(path string, size float64) (font.Face, error) {
	if path != "" {
		face, err := loadFaceFile(path, size)
		if err != nil {
			return nil, fmt.Errorf("loading font %s: %w", path, err)
		}
		return face, nil
	}
	for _, p := range platformFonts {
		if face, err := loadFaceFile(p, size); err == nil {
			return face, nil
		}
	}
	return BundledFace(size)
}

// BundledFace returns the embedded Go regular font at the given pixel size.
func BundledFace(size float64) (font.Face, error) {
	return parseFace(goregular.TTF, size)
}

// BundledBoldFace returns the embedded Go bold font, used for page titles.
func BundledBoldFace(size float64) (font.Face, error) {
	return parseFace(gobold.TTF, size)
}

func loadFaceFile(path string, size float64) (font.Face, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseFace(raw, size)
}

func parseFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	// DPI 72 makes the point size equal the pixel size, so callers can
	// think in page pixels throughout.
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
