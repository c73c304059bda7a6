package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Image is an encoded image ready to attach to a message.
type Image struct {
	Name string
	Data []byte
}

// Blur opens the image at path, converts it to NRGBA, applies a Gaussian
// blur with sigma scale/5 and re-encodes it as PNG. The returned name keeps
// the file stem with a .png extension.
func Blur(path string, scale float64) (*Image, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	img := imaging.Clone(src)
	if sigma := max(0, scale/5); sigma > 0 {
		img = imaging.Blur(img, sigma)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &Image{Name: pngName(path), Data: buf.Bytes()}, nil
}

func pngName(path string) string {
	name := filepath.Base(path)
	if strings.EqualFold(filepath.Ext(name), ".png") {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
}
