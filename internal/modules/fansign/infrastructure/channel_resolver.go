package infrastructure

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/modules/fansign/application/ports"
	"github.com/esigns/signbot/internal/modules/fansign/domain"
)

// Ensure DiscordChannelResolver implements ports.ChannelResolver.
var _ ports.ChannelResolver = (*DiscordChannelResolver)(nil)

// DiscordChannelResolver resolves channels from the session state, falling
// back to the REST API.
type DiscordChannelResolver struct {
	session *discordgo.Session
}

// NewDiscordChannelResolver creates a new DiscordChannelResolver.
func NewDiscordChannelResolver(session *discordgo.Session) *DiscordChannelResolver {
	return &DiscordChannelResolver{session: session}
}

// Channel returns the channel with its parent category.
func (r *DiscordChannelResolver) Channel(channelID snowflake.ID) (domain.Channel, error) {
	ch, err := r.session.State.Channel(channelID.String())
	if err != nil {
		ch, err = r.session.Channel(channelID.String())
		if err != nil {
			return domain.Channel{}, fmt.Errorf("failed to fetch channel: %w", err)
		}
	}
	return toDomainChannel(ch)
}

func toDomainChannel(ch *discordgo.Channel) (domain.Channel, error) {
	id, err := snowflake.Parse(ch.ID)
	if err != nil {
		return domain.Channel{}, fmt.Errorf("invalid channel id: %w", err)
	}

	out := domain.Channel{ID: id}
	if ch.ParentID != "" {
		parentID, err := snowflake.Parse(ch.ParentID)
		if err != nil {
			return domain.Channel{}, fmt.Errorf("invalid parent id: %w", err)
		}
		out.ParentID = parentID
	}
	return out, nil
}
