package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/modules/fansign/domain"
)

// EntitlementChecker reports whether a user holds a redeemed premium key.
type EntitlementChecker interface {
	IsEntitled(ctx context.Context, userID snowflake.ID) (bool, error)
}

// ChannelResolver looks up a guild channel.
type ChannelResolver interface {
	Channel(channelID snowflake.ID) (domain.Channel, error)
}
