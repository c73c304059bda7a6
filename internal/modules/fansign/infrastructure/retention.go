package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adhocore/gronx"
)

// DefaultCleanupCron runs the sweep every six hours.
const DefaultCleanupCron = "0 */6 * * *"

// Sweeper removes generated images older than a maximum age on a cron schedule.
type Sweeper struct {
	dir    string
	maxAge time.Duration
	cron   string
	now    func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a Sweeper for dir. An empty cron uses DefaultCleanupCron.
func NewSweeper(dir string, maxAge time.Duration, cron string) (*Sweeper, error) {
	if cron == "" {
		cron = DefaultCleanupCron
	}
	if !gronx.IsValid(cron) {
		return nil, fmt.Errorf("invalid cleanup cron expression: %s", cron)
	}
	if maxAge <= 0 {
		return nil, fmt.Errorf("retention must be positive, got %s", maxAge)
	}
	return &Sweeper{
		dir:    dir,
		maxAge: maxAge,
		cron:   cron,
		now:    time.Now,
	}, nil
}

// Sweep removes regular files in the directory last modified before the
// retention window and returns how many were removed.
func (s *Sweeper) Sweep() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read generated directory: %w", err)
	}

	cutoff := s.now().Add(-s.maxAge)
	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove generated image", "path", path, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}

// Start runs the sweep on every cron tick until Stop is called.
func (s *Sweeper) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	slog.Info("generated image cleanup enabled", "cron", s.cron, "retention", s.maxAge, "dir", s.dir)
	go s.run(ctx)
}

// Stop stops the scheduler and waits for it to exit.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	for {
		next, err := gronx.NextTickAfter(s.cron, s.now().UTC(), false)
		if err != nil {
			slog.Error("failed to compute next cleanup tick", "cron", s.cron, "error", err)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
		}

		n, err := s.Sweep()
		if err != nil {
			slog.Error("generated image cleanup failed", "error", err)
			continue
		}
		slog.Info("generated image cleanup finished", "removed", n)
	}
}
