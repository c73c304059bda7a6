package ports

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/modules/privateroom/domain"
)

// EntitlementChecker reports whether a user holds a redeemed premium key.
type EntitlementChecker interface {
	IsEntitled(ctx context.Context, userID snowflake.ID) (bool, error)
}

// ChannelManager reads, creates and deletes guild channels.
type ChannelManager interface {
	// Channel returns the channel with the given ID.
	Channel(channelID snowflake.ID) (domain.Channel, error)

	// TextChannels returns the guild's text channels.
	TextChannels(guildID snowflake.ID) ([]domain.Channel, error)

	// CreateRoom creates a text channel in categoryID that only ownerID can view.
	CreateRoom(guildID, categoryID, ownerID snowflake.ID, name string) (domain.Channel, error)

	// DeleteChannel deletes the channel. It returns usecases.ErrChannelGone
	// when the channel no longer exists.
	DeleteChannel(channelID snowflake.ID, reason string) error
}

// Scheduler runs delayed tasks keyed by ID.
type Scheduler interface {
	// Schedule runs fn after d, replacing any task pending under key.
	Schedule(key snowflake.ID, d time.Duration, fn func())

	// Cancel cancels the task under key and reports whether one was pending.
	Cancel(key snowflake.ID) bool

	// Stop cancels every pending task.
	Stop()
}
