package ports

import (
	"context"
	"time"

	"github.com/esigns/signbot/internal/modules/fansign/domain"
)

// GenerationLog records generated fansigns.
type GenerationLog interface {
	// Record stores a generation.
	Record(ctx context.Context, g domain.Generation) error

	// CountSince returns the number of generations created after since.
	CountSince(ctx context.Context, since time.Time) (int, error)
}
