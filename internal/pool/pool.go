// Package pool loads and holds the source images for one generation run.
package pool

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

// ImageAsset is one decoded source image. Name is the filename stem and
// is used verbatim as the caption text.
type ImageAsset struct {
	Name  string
	Image image.Image
}

// Width returns the intrinsic pixel width.
func (a *ImageAsset) Width() int { return a.Image.Bounds().Dx() }

// Height returns the intrinsic pixel height.
func (a *ImageAsset) Height() int { return a.Image.Bounds().Dy() }

// Pool is the ordered set of assets available for a run, unique by name.
type Pool []*ImageAsset

var validExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Source pairs a filename with its raw image bytes, decoupling the pool
// from where uploads or files come from.
type Source struct {
	Name   string
	Reader io.Reader
}

// Load decodes the given sources into a Pool. Sources with unsupported
// extensions are ignored; sources that fail to decode are logged and
// skipped rather than failing the run. Duplicate names keep the first
// occurrence, so a name maps to exactly one image within a run.
func Load(sources []Source, log *slog.Logger) (Pool, error) {
	if log == nil {
		log = slog.Default()
	}
	seen := make(map[string]bool, len(sources))
	var p Pool
	for _, src := range sources {
		ext := strings.ToLower(filepath.Ext(src.Name))
		if !validExtensions[ext] {
			log.Warn("skipping unsupported file", "name", src.Name)
			continue
		}
		name := Stem(src.Name)
		if seen[name] {
			log.Warn("skipping duplicate image name", "name", src.Name)
			continue
		}
		img, err := imaging.Decode(src.Reader)
		if err != nil {
			log.Warn("skipping undecodable image", "name", src.Name, "error", err)
			continue
		}
		seen[name] = true
		p = append(p, &ImageAsset{Name: name, Image: img})
	}
	return p, nil
}

// LoadDir reads every valid image in dir, sorted by filename so runs over
// the same directory see the pool in a stable order.
func LoadDir(dir string, log *slog.Logger) (Pool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading image directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if validExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	sources := make([]Source, 0, len(names))
	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			if log != nil {
				log.Warn("skipping unreadable file", "name", name, "error", err)
			}
			continue
		}
		files = append(files, f)
		sources = append(sources, Source{Name: name, Reader: f})
	}
	return Load(sources, log)
}

// Stem strips the directory and extension from a filename, leaving the
// caption text exactly as the user named the file.
func Stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
