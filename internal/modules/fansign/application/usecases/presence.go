package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/esigns/signbot/internal/modules/fansign/application/ports"
)

// PresenceWindow is the period the generation counter covers.
const PresenceWindow = 24 * time.Hour

// PresenceService builds the bot's status text from the generation log.
type PresenceService struct {
	log      ports.GenerationLog
	baseline int
	now      func() time.Time
}

// NewPresenceService creates a new PresenceService. baseline is added to the
// number of logged generations.
func NewPresenceService(log ports.GenerationLog, baseline int) *PresenceService {
	return &PresenceService{
		log:      log,
		baseline: baseline,
		now:      time.Now,
	}
}

// RecentCount returns baseline plus the generations of the last 24 hours.
func (s *PresenceService) RecentCount(ctx context.Context) (int, error) {
	n, err := s.log.CountSince(ctx, s.now().Add(-PresenceWindow))
	if err != nil {
		return 0, err
	}
	return s.baseline + n, nil
}

// StatusText returns the status line shown as the bot's activity.
func (s *PresenceService) StatusText(ctx context.Context) (string, error) {
	n, err := s.RecentCount(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(".gg/esigns | %d generated in last 24h", n), nil
}
