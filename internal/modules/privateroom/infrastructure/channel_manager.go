package infrastructure

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/modules/privateroom/application/ports"
	"github.com/esigns/signbot/internal/modules/privateroom/application/usecases"
	"github.com/esigns/signbot/internal/modules/privateroom/domain"
)

const createReason = "Premium private room creation"

// Ensure DiscordChannelManager implements ports.ChannelManager.
var _ ports.ChannelManager = (*DiscordChannelManager)(nil)

// DiscordChannelManager manages guild channels through the session state and
// the REST API.
type DiscordChannelManager struct {
	session *discordgo.Session
}

// NewDiscordChannelManager creates a new DiscordChannelManager.
func NewDiscordChannelManager(session *discordgo.Session) *DiscordChannelManager {
	return &DiscordChannelManager{session: session}
}

// Channel returns the channel with the given ID.
func (m *DiscordChannelManager) Channel(channelID snowflake.ID) (domain.Channel, error) {
	ch, err := m.session.State.Channel(channelID.String())
	if err != nil {
		ch, err = m.session.Channel(channelID.String())
		if err != nil {
			return domain.Channel{}, fmt.Errorf("failed to fetch channel: %w", err)
		}
	}
	return toDomainChannel(ch)
}

// TextChannels returns the guild's text channels.
func (m *DiscordChannelManager) TextChannels(guildID snowflake.ID) ([]domain.Channel, error) {
	var channels []*discordgo.Channel
	if guild, err := m.session.State.Guild(guildID.String()); err == nil {
		channels = guild.Channels
	} else {
		channels, err = m.session.GuildChannels(guildID.String())
		if err != nil {
			return nil, fmt.Errorf("failed to fetch guild channels: %w", err)
		}
	}

	out := make([]domain.Channel, 0, len(channels))
	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildText {
			continue
		}
		c, err := toDomainChannel(ch)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// CreateRoom creates a text channel hidden from @everyone and visible to the owner.
func (m *DiscordChannelManager) CreateRoom(
	guildID, categoryID, ownerID snowflake.ID,
	name string,
) (domain.Channel, error) {
	ch, err := m.session.GuildChannelCreateComplex(guildID.String(), discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             categoryID.String(),
		PermissionOverwrites: roomOverwrites(guildID, ownerID),
	}, discordgo.WithAuditLogReason(createReason))
	if err != nil {
		return domain.Channel{}, fmt.Errorf("failed to create channel: %w", err)
	}
	rememberChannel(m.session.State, ch)
	return toDomainChannel(ch)
}

// rememberChannel adds a created channel to the state cache so guild
// listings see it before the gateway's CHANNEL_CREATE arrives.
func rememberChannel(state *discordgo.State, ch *discordgo.Channel) {
	if state == nil {
		return
	}
	if err := state.ChannelAdd(ch); err != nil {
		slog.Debug("could not cache created channel", "channel_id", ch.ID, "error", err)
	}
}

// DeleteChannel deletes the channel with the given audit log reason.
func (m *DiscordChannelManager) DeleteChannel(channelID snowflake.ID, reason string) error {
	_, err := m.session.ChannelDelete(channelID.String(), discordgo.WithAuditLogReason(reason))
	return classifyDeleteError(err)
}

// roomOverwrites denies @everyone, whose role ID equals the guild ID, and
// lets the owner read and write.
func roomOverwrites(guildID, ownerID snowflake.ID) []*discordgo.PermissionOverwrite {
	return []*discordgo.PermissionOverwrite{
		{
			ID:   guildID.String(),
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    ownerID.String(),
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages,
		},
	}
}

func classifyDeleteError(err error) error {
	switch {
	case err == nil:
		return nil
	case bot.HasRESTCode(err, discordgo.ErrCodeUnknownChannel),
		bot.HasHTTPStatus(err, http.StatusNotFound):
		return fmt.Errorf("%w: %v", usecases.ErrChannelGone, err)
	default:
		return fmt.Errorf("failed to delete channel: %w", err)
	}
}

func toDomainChannel(ch *discordgo.Channel) (domain.Channel, error) {
	id, err := snowflake.Parse(ch.ID)
	if err != nil {
		return domain.Channel{}, fmt.Errorf("invalid channel id: %w", err)
	}

	out := domain.Channel{ID: id, Name: ch.Name}
	if ch.ParentID != "" {
		if out.ParentID, err = snowflake.Parse(ch.ParentID); err != nil {
			return domain.Channel{}, fmt.Errorf("invalid parent id: %w", err)
		}
	}

	for _, ow := range ch.PermissionOverwrites {
		if ow.Type != discordgo.PermissionOverwriteTypeMember || ow.Allow&discordgo.PermissionViewChannel == 0 {
			continue
		}
		memberID, err := snowflake.Parse(ow.ID)
		if err != nil {
			continue
		}
		out.Viewers = append(out.Viewers, memberID)
	}
	return out, nil
}
