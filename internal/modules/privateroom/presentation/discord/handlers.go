package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/modules/privateroom/application/usecases"
	"github.com/esigns/signbot/internal/modules/privateroom/domain"
)

// CommandHandlers holds the private room command handlers.
type CommandHandlers struct {
	rooms *usecases.RoomService
}

// NewCommandHandlers creates new CommandHandlers.
func NewCommandHandlers(rooms *usecases.RoomService) *CommandHandlers {
	return &CommandHandlers{rooms: rooms}
}

// HandlePrivateRoom handles the /privateroom command.
func (h *CommandHandlers) HandlePrivateRoom(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	ids, err := parseInteraction(i)
	if err != nil {
		return bot.RespondText(r, "This command can only be used in a server.", true)
	}

	out, err := h.rooms.Create(context.Background(), usecases.CreateInput{
		GuildID:   ids.guild,
		ChannelID: ids.channel,
		UserID:    ids.user,
		Username:  ids.username,
	})

	var exists *usecases.RoomExistsError
	switch {
	case errors.Is(err, usecases.ErrNotEntitled):
		return bot.RespondText(r, "You don't have premium access. Use a valid key with `/redeem` first.", true)
	case errors.Is(err, usecases.ErrNoCategory):
		return bot.RespondText(r, "This command must be used in a channel inside a category.", true)
	case errors.As(err, &exists):
		return bot.RespondText(r, fmt.Sprintf(
			"You already have a private room: <#%d>. Please wait until it is deleted.", exists.ChannelID,
		), true)
	case err != nil:
		return err
	}

	return bot.RespondText(r, fmt.Sprintf(
		"<@%d>, your private room <#%d> has been created for %s.",
		ids.user, out.Room.ChannelID, domain.FormatLifetime(h.rooms.Lifetime()),
	), true)
}

// HandleCloseRoom handles the /closeroom command.
func (h *CommandHandlers) HandleCloseRoom(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	ids, err := parseInteraction(i)
	if err != nil {
		return bot.RespondText(r, "This command can only be used in a server.", true)
	}

	_, err = h.rooms.Close(context.Background(), usecases.CloseInput{
		GuildID:   ids.guild,
		ChannelID: ids.channel,
		UserID:    ids.user,
	})
	switch {
	case errors.Is(err, usecases.ErrNoCategory):
		return bot.RespondText(r, "This command must be used in a channel inside a category.", true)
	case errors.Is(err, usecases.ErrRoomNotFound):
		return bot.RespondText(r, "You don't have a private room in this category.", true)
	case err != nil:
		return err
	}

	return bot.RespondText(r, "Your private room has been deleted.", true)
}

type interactionIDs struct {
	guild    snowflake.ID
	channel  snowflake.ID
	user     snowflake.ID
	username string
}

func parseInteraction(i *discordgo.InteractionCreate) (interactionIDs, error) {
	user := bot.InteractionUser(i)
	if user == nil || i.GuildID == "" {
		return interactionIDs{}, errors.New("interaction has no guild member")
	}

	var (
		ids interactionIDs
		err error
	)
	if ids.guild, err = snowflake.Parse(i.GuildID); err != nil {
		return interactionIDs{}, err
	}
	if ids.channel, err = snowflake.Parse(i.ChannelID); err != nil {
		return interactionIDs{}, err
	}
	if ids.user, err = snowflake.Parse(user.ID); err != nil {
		return interactionIDs{}, err
	}
	ids.username = user.Username
	return ids, nil
}
