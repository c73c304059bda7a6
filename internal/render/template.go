package render

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/google/uuid"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Definition describes where and how text is drawn on a template image.
// X and Y are fractions of the template width and height.
type Definition struct {
	Template string  `json:"template"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	AnchorX  float64 `json:"anchor_x"`
	AnchorY  float64 `json:"anchor_y"`
	Size     float64 `json:"size"`
	Color    string  `json:"color"`
	Rotation float64 `json:"rotation"`

	// templatePath is Template resolved against the definition's directory.
	templatePath string
}

// Definition defaults.
const (
	defaultFontSize = 48
	defaultColor    = "#000000"
	fontDPI         = 72
)

// LoadDefinition reads a style definition file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	def := &Definition{
		X:       0.5,
		Y:       0.5,
		AnchorX: 0.5,
		AnchorY: 0.5,
		Size:    defaultFontSize,
		Color:   defaultColor,
	}
	if err := json.Unmarshal(data, def); err != nil {
		return nil, fmt.Errorf("failed to parse style definition: %w", err)
	}
	if def.Template == "" {
		return nil, errors.New("style definition has no template")
	}
	if def.Size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", def.Size)
	}

	def.templatePath = def.Template
	if !filepath.IsAbs(def.templatePath) {
		def.templatePath = filepath.Join(filepath.Dir(path), def.Template)
	}
	if _, err := os.Stat(def.templatePath); err != nil {
		return nil, fmt.Errorf("template image unavailable: %w", err)
	}

	return def, nil
}

// FontResolver resolves a font name to its file.
type FontResolver interface {
	Path(name string) (string, error)
}

// TemplateRenderer draws the requested text onto a template image.
type TemplateRenderer struct {
	style  string
	def    *Definition
	fonts  FontResolver
	outDir string
}

// NewTemplateRenderer creates a new TemplateRenderer.
func NewTemplateRenderer(
	style string,
	def *Definition,
	fonts FontResolver,
	outDir string,
) *TemplateRenderer {
	return &TemplateRenderer{
		style:  style,
		def:    def,
		fonts:  fonts,
		outDir: outDir,
	}
}

// Render writes a PNG into the output directory and returns its path.
func (r *TemplateRenderer) Render(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpl, err := gg.LoadImage(r.def.templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to load template: %w", err)
	}

	face, err := r.loadFace(req.Font)
	if err != nil {
		return "", err
	}
	defer face.Close()

	dc := gg.NewContextForImage(tmpl)
	dc.SetFontFace(face)
	dc.SetHexColor(r.def.Color)

	x, y := r.position(tmpl.Bounds())
	if r.def.Rotation != 0 {
		dc.RotateAbout(gg.Radians(r.def.Rotation), x, y)
	}
	dc.DrawStringAnchored(req.Text, x, y, r.def.AnchorX, r.def.AnchorY)

	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	out := filepath.Join(r.outDir, fmt.Sprintf("%s_%d_%s.png",
		strings.ToLower(r.style), req.UserID, uuid.NewString()))
	if err := dc.SavePNG(out); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return out, nil
}

func (r *TemplateRenderer) position(bounds image.Rectangle) (float64, float64) {
	return float64(bounds.Min.X) + r.def.X*float64(bounds.Dx()),
		float64(bounds.Min.Y) + r.def.Y*float64(bounds.Dy())
}

func (r *TemplateRenderer) loadFace(name string) (font.Face, error) {
	path, err := r.fonts.Path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    r.def.Size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}
