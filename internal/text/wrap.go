// Package text measures strings and wraps them into pixel-constrained
// lines for caption rendering.
package text

import (
	"strings"

	"golang.org/x/image/font"
)

// Measure returns the pixel width of s and the line height (ascent +
// descent) of the face.
func Measure(face font.Face, s string) (width, height int) {
	m := face.Metrics()
	return font.MeasureString(face, s).Ceil(), (m.Ascent + m.Descent).Ceil()
}

// Wrap splits s into lines no wider than maxWidth pixels. If the whole
// string already fits it comes back as a single line, untouched.
// Otherwise words are packed greedily: a word that would push the current
// line past maxWidth starts a new one. A single word wider than maxWidth
// is emitted alone on its own line; there is no character-level splitting.
func Wrap(face font.Face, s string, maxWidth int) []string {
	if s == "" {
		return nil
	}
	if w, _ := Measure(face, s); w <= maxWidth {
		return []string{s}
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, 2)
	current := words[0]
	for _, word := range words[1:] {
		trial := current + " " + word
		if w, _ := Measure(face, trial); w <= maxWidth {
			current = trial
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}
