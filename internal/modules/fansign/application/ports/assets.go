package ports

import (
	"github.com/esigns/signbot/internal/assets"
	"github.com/esigns/signbot/internal/render"
)

// FontLister lists the available font names.
type FontLister interface {
	List() ([]string, error)
}

// StyleLister lists the available style names in the given order.
type StyleLister interface {
	List(order assets.Order) ([]string, error)
}

// RendererLookup resolves a style name to its renderer.
type RendererLookup interface {
	Lookup(style string) (render.Renderer, error)
}
