package discord

import (
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/esigns/signbot/internal/bot"
)

// ComponentHandlers handles the buttons attached to fansign replies.
type ComponentHandlers struct {
	messenger bot.DirectMessenger
	messages  Messages
}

// NewComponentHandlers creates new ComponentHandlers.
func NewComponentHandlers(messenger bot.DirectMessenger, messages Messages) *ComponentHandlers {
	return &ComponentHandlers{
		messenger: messenger,
		messages:  messages,
	}
}

// HandleDonate sends the donation information by direct message.
func (h *ComponentHandlers) HandleDonate(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	user := bot.InteractionUser(i)
	if user == nil {
		return bot.RespondText(r, "Invalid user.", true)
	}

	err := h.messenger.SendDirect(user.ID, &discordgo.MessageSend{Content: h.messages.Donate})
	switch {
	case err == nil:
		return bot.RespondText(r, "Check your DMs for donation info.", true)
	case errors.Is(err, bot.ErrDirectMessageForbidden):
		return bot.RespondText(r, "Couldn't DM you. Enable DMs from server members.", true)
	default:
		slog.Error("failed to send donation info", "user_id", user.ID, "error", err)
		return bot.RespondText(r, "Couldn't send donation info right now.", true)
	}
}

// HandleContribute replies with the contribution instructions.
func (h *ComponentHandlers) HandleContribute(
	_ *discordgo.Session,
	_ *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	return bot.RespondText(r, h.messages.Contribute, true)
}
