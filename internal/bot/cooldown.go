package bot

import (
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// pruneThreshold is the number of tracked users above which idle limiters are dropped.
const pruneThreshold = 1024

// Cooldown allows one invocation per user per interval.
type Cooldown struct {
	mu       sync.Mutex
	interval time.Duration
	limiters map[string]*rate.Limiter
}

// NewCooldown creates a new Cooldown with the given interval.
func NewCooldown(interval time.Duration) *Cooldown {
	return &Cooldown{
		interval: interval,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Interval returns the cooldown interval.
func (c *Cooldown) Interval() time.Duration {
	return c.interval
}

// Allow reports whether userID may invoke now, consuming the allowance if so.
func (c *Cooldown) Allow(userID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.limiters) > pruneThreshold {
		c.prune()
	}

	limiter, ok := c.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(c.interval), 1)
		c.limiters[userID] = limiter
	}
	return limiter.Allow()
}

// prune drops limiters that have fully refilled. Callers must hold c.mu.
func (c *Cooldown) prune() {
	for id, limiter := range c.limiters {
		if limiter.Tokens() >= 1 {
			delete(c.limiters, id)
		}
	}
}

// WithCooldown wraps handler so that users invoking it again within the
// cooldown interval get onLimited instead.
func WithCooldown(cd *Cooldown, onLimited InteractionHandler, handler InteractionHandler) InteractionHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate, r Responder) error {
		user := InteractionUser(i)
		if user == nil {
			return handler(s, i, r)
		}

		if !cd.Allow(user.ID) {
			cooldownRejections.WithLabelValues(i.ApplicationCommandData().Name).Inc()
			slog.Debug("rejected command on cooldown",
				"command", i.ApplicationCommandData().Name,
				"user_id", user.ID,
			)
			return onLimited(s, i, r)
		}
		return handler(s, i, r)
	}
}

// CooldownNotice returns a handler replying with an ephemeral warning embed.
func CooldownNotice(title, description string) InteractionHandler {
	return func(_ *discordgo.Session, _ *discordgo.InteractionCreate, r Responder) error {
		return RespondEmbed(r, &discordgo.MessageEmbed{
			Title:       title,
			Description: description,
			Color:       ColorWarning,
		}, true)
	}
}
