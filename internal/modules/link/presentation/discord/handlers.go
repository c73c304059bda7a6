package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/modules/link/application/usecases"
	"github.com/esigns/signbot/internal/modules/link/domain"
)

const (
	inviteLink  = "[**.gg/esigns**](https://discord.gg/esigns)"
	brandFooter = ".gg/esigns • Join the original fansign community!"
)

// CommandHandlers holds the link command handlers.
type CommandHandlers struct {
	links *usecases.LinkService
}

// NewCommandHandlers creates new CommandHandlers.
func NewCommandHandlers(links *usecases.LinkService) *CommandHandlers {
	return &CommandHandlers{links: links}
}

// HandleLink handles the /link command.
func (h *CommandHandlers) HandleLink(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	attachment, ok := resolveAttachment(i)
	if !ok {
		return bot.RespondText(r, "Please upload a valid image file.", true)
	}

	switch err := h.links.Validate(attachment); {
	case errors.Is(err, usecases.ErrNotImage):
		return bot.RespondText(r, "Please upload a valid image file.", true)
	case errors.Is(err, usecases.ErrTooLarge):
		return bot.RespondText(r, "That image is too large to link.", true)
	case err != nil:
		return err
	}

	if err := r.Defer(false); err != nil {
		return err
	}

	var userID snowflake.ID
	if user := bot.InteractionUser(i); user != nil {
		userID, _ = snowflake.Parse(user.ID)
	}

	out, err := h.links.CreateLink(context.Background(), usecases.CreateLinkInput{
		UserID:     userID,
		Attachment: attachment,
	})
	switch {
	case errors.Is(err, usecases.ErrNoTargetChannel):
		return bot.FollowupText(r, "Target channel not found.", true)
	case errors.Is(err, usecases.ErrUploadFailed):
		return bot.FollowupText(r, "Image failed to upload.", true)
	case errors.Is(err, usecases.ErrTooLarge):
		return bot.FollowupText(r, "That image is too large to link.", true)
	case err != nil:
		slog.Error("failed to create link", "user_id", userID, "error", err)
		return bot.FollowupText(r, "Something went wrong while creating your link.", true)
	}

	return bot.FollowupEmbed(r, linkEmbed(out.URL), false)
}

func linkEmbed(url string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Your Link from .gg/esigns",
		Description: fmt.Sprintf("Here's your copyable link from %s \n\n`%s`", inviteLink, url),
		Color:       bot.ColorPurple,
		Footer:      &discordgo.MessageEmbedFooter{Text: brandFooter},
	}
}

func resolveAttachment(i *discordgo.InteractionCreate) (domain.Attachment, bool) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return domain.Attachment{}, false
	}
	opt, ok := bot.Options(i)["image"]
	if !ok {
		return domain.Attachment{}, false
	}
	id, ok := opt.Value.(string)
	if !ok {
		return domain.Attachment{}, false
	}

	data := i.ApplicationCommandData()
	if data.Resolved == nil {
		return domain.Attachment{}, false
	}
	att, ok := data.Resolved.Attachments[id]
	if !ok || att == nil {
		return domain.Attachment{}, false
	}

	return domain.Attachment{
		URL:         att.URL,
		Filename:    att.Filename,
		ContentType: att.ContentType,
		Size:        att.Size,
	}, true
}
