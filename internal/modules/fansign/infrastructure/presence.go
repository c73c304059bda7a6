package infrastructure

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// StatusSetter sets the bot's activity text.
type StatusSetter interface {
	UpdateGameStatus(idle int, name string) error
}

// StatusSource produces the activity text.
type StatusSource interface {
	StatusText(ctx context.Context) (string, error)
}

// PresenceUpdater periodically refreshes the bot's activity text.
type PresenceUpdater struct {
	setter   StatusSetter
	source   StatusSource
	interval time.Duration

	once   sync.Once
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPresenceUpdater creates a new PresenceUpdater.
func NewPresenceUpdater(setter StatusSetter, source StatusSource, interval time.Duration) *PresenceUpdater {
	return &PresenceUpdater{
		setter:   setter,
		source:   source,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins updating. Only the first call has an effect, so it is safe to
// call on every Ready event.
func (p *PresenceUpdater) Start(ctx context.Context) {
	p.once.Do(func() {
		p.mu.Lock()
		ctx, p.cancel = context.WithCancel(ctx)
		p.mu.Unlock()
		go p.run(ctx)
	})
}

// Stop stops updating and waits for the loop to exit.
func (p *PresenceUpdater) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-p.done
}

func (p *PresenceUpdater) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.update(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.update(ctx)
		}
	}
}

func (p *PresenceUpdater) update(ctx context.Context) {
	text, err := p.source.StatusText(ctx)
	if err != nil {
		slog.Warn("failed to build presence", "error", err)
		return
	}
	if err := p.setter.UpdateGameStatus(0, text); err != nil {
		slog.Warn("failed to update presence", "error", err)
	}
}
