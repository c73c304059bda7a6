// Package render turns fansign requests into image files.
package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/assets"
)

// ErrMissingRenderer is returned when a style has no registered renderer.
var ErrMissingRenderer = errors.New("style has no renderer")

// Request describes a single fansign to render.
type Request struct {
	UserID snowflake.ID
	Text   string
	Font   string
}

// Renderer renders a fansign and returns the path of the written image.
type Renderer interface {
	Render(ctx context.Context, req Request) (string, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, req Request) (string, error)

// Render calls f.
func (f RendererFunc) Render(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Registry maps style names to renderers. Names are case-insensitive.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// Register adds or replaces the renderer for style.
func (r *Registry) Register(style string, renderer Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[strings.ToLower(style)] = renderer
}

// Lookup returns the renderer for style.
func (r *Registry) Lookup(style string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[strings.ToLower(style)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRenderer, style)
	}
	return renderer, nil
}

// Len returns the number of registered styles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.renderers)
}

// StyleLister lists style definitions.
type StyleLister interface {
	List(order assets.Order) ([]string, error)
	Path(name string) string
}

// LoadTemplates registers a TemplateRenderer for every style definition that
// loads. Styles whose definition is invalid are logged and left unregistered,
// so requests for them fail with ErrMissingRenderer.
func LoadTemplates(
	registry *Registry,
	styles StyleLister,
	fonts FontResolver,
	outDir string,
) error {
	names, err := styles.List(assets.NaturalOrder)
	if err != nil {
		return err
	}

	for _, name := range names {
		def, err := LoadDefinition(styles.Path(name))
		if err != nil {
			slog.Warn("skipped style with invalid definition", "style", name, "error", err)
			continue
		}
		registry.Register(name, NewTemplateRenderer(name, def, fonts, outDir))
	}

	slog.Info("loaded style renderers", "count", registry.Len(), "styles", len(names))
	return nil
}
