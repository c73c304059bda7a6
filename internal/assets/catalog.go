// Package assets discovers the fonts and styles available for rendering.
//
// Catalogs read their directory on every call; the asset sets are small and
// files may be added while the bot runs.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReservedPrefix marks style files that are not selectable styles.
const ReservedPrefix = "__"

// StyleExt is the extension of a style definition file.
const StyleExt = ".json"

// ErrFontNotFound is returned when a font name has no matching file.
var ErrFontNotFound = errors.New("font not found")

// fontExts lists the supported font file extensions (lower-case).
var fontExts = []string{".ttf", ".otf"}

// FontCatalog lists the fonts in a directory.
type FontCatalog struct {
	dir string
}

// NewFontCatalog creates a new FontCatalog for dir.
func NewFontCatalog(dir string) *FontCatalog {
	return &FontCatalog{dir: dir}
}

// List returns the names of every font file, in directory order.
func (c *FontCatalog) List() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read fonts directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !isFontFile(e.Name()) {
			continue
		}
		names = append(names, stem(e.Name()))
	}
	return names, nil
}

// Path returns the file path of the named font.
func (c *FontCatalog) Path(name string) (string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return "", fmt.Errorf("failed to read fonts directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !isFontFile(e.Name()) {
			continue
		}
		if stem(e.Name()) == name {
			return filepath.Join(c.dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrFontNotFound, name)
}

// StyleCatalog lists the style definitions in a directory.
type StyleCatalog struct {
	dir string
}

// NewStyleCatalog creates a new StyleCatalog for dir.
func NewStyleCatalog(dir string) *StyleCatalog {
	return &StyleCatalog{dir: dir}
}

// Dir returns the style directory.
func (c *StyleCatalog) Dir() string {
	return c.dir
}

// List returns the names of every selectable style sorted by order.
func (c *StyleCatalog) List(order Order) ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read styles directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != StyleExt {
			continue
		}
		name := stem(e.Name())
		if strings.HasPrefix(name, ReservedPrefix) {
			continue
		}
		names = append(names, name)
	}

	order.Sort(names)
	return names, nil
}

// Path returns the definition file path of the named style.
func (c *StyleCatalog) Path(name string) string {
	return filepath.Join(c.dir, name+StyleExt)
}

func isFontFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, fe := range fontExts {
		if ext == fe {
			return true
		}
	}
	return false
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
