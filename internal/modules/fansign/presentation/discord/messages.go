package discord

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/modules/fansign/application/usecases"
	"github.com/esigns/signbot/internal/modules/fansign/domain"
	"github.com/esigns/signbot/internal/render"
)

const (
	inviteLink    = "[**.gg/esigns**](https://discord.gg/esigns)"
	brandFooter   = ".gg/esigns • Join the original fansign community!"
	premiumFooter = "Thank you for supporting this project."

	// maxMessageLength keeps replies under Discord's 2000 character limit.
	maxMessageLength = 1900
)

// Messages holds the configurable button replies.
type Messages struct {
	Donate     string
	Contribute string
}

// validationMessage returns the user-facing text for a validation or access error.
func validationMessage(err error, kind domain.Kind) (string, bool) {
	var choiceErr *usecases.ChoiceError

	switch {
	case errors.Is(err, usecases.ErrTextTooLong):
		return fmt.Sprintf("The text can only be %d characters or less.", domain.MaxTextLength), true
	case errors.As(err, &choiceErr) && errors.Is(err, usecases.ErrUnknownFont):
		return truncate("Invalid font. Available fonts: " + strings.Join(choiceErr.Available, ", ")), true
	case errors.As(err, &choiceErr) && errors.Is(err, usecases.ErrUnknownStyle):
		label := "styles"
		if kind == domain.KindPremium {
			label = "premium styles"
		}
		return truncate(fmt.Sprintf(
			"Invalid style: %s. Available %s: %s",
			choiceErr.Value, label, strings.Join(choiceErr.Available, ", "),
		)), true
	case errors.Is(err, usecases.ErrDuplicateStyle):
		return "You cannot choose the same style more than once.", true
	case errors.Is(err, usecases.ErrNoStyles):
		return "Choose at least one style.", true
	case errors.Is(err, usecases.ErrTooManyStyles):
		return fmt.Sprintf("You can choose at most %d styles.", domain.MaxBulkStyles), true
	case errors.Is(err, usecases.ErrWrongChannel):
		return "You can only use this command in the allowed category channels (except the excluded channel).", true
	case errors.Is(err, usecases.ErrNotEntitled):
		return "You don't have premium access. Use a valid key with `/redeem` first.", true
	}
	return "", false
}

// generationMessage returns the user-facing text for a failed generation.
func generationMessage(err error) string {
	if errors.Is(err, render.ErrMissingRenderer) {
		return "That style is not available right now."
	}
	return "Something went wrong while generating your fansign."
}

func truncate(s string) string {
	if len(s) <= maxMessageLength {
		return s
	}
	cut := maxMessageLength - len("...")
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

func mention(userID string) string {
	return "<@" + userID + ">"
}

func fansignEmbed(text, font, style, filename string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Your Fansign from .gg/esigns ",
		Description: "Generated with love from " + inviteLink + " \nJoin us now at **.gg/esigns**!",
		Color:       bot.ColorPurple,
		Fields:      detailFields(text, font, style+"\n\n"+inviteLink),
		Image:       &discordgo.MessageEmbedImage{URL: "attachment://" + filename},
		Footer:      &discordgo.MessageEmbedFooter{Text: brandFooter},
	}
}

func premiumEmbed(text, font, style, filename string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Your Premium Fansign",
		Description: "Generated with premium style access.",
		Color:       bot.ColorTeal,
		Fields:      detailFields(text, font, style),
		Image:       &discordgo.MessageEmbedImage{URL: "attachment://" + filename},
		Footer:      &discordgo.MessageEmbedFooter{Text: premiumFooter},
	}
}

func detailFields(text, font, style string) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{Name: "Text", Value: text, Inline: true},
		{Name: "Font", Value: font, Inline: true},
		{Name: "Style", Value: style, Inline: true},
	}
}

func fansignButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Donate",
					CustomID: DonateButtonID,
					Style:    discordgo.PrimaryButton,
				},
				discordgo.Button{
					Label:    "Contribute",
					CustomID: ContributeButtonID,
					Style:    discordgo.SecondaryButton,
				},
			},
		},
	}
}

func imageFile(img *render.Image) *discordgo.File {
	return &discordgo.File{
		Name:        img.Name,
		ContentType: "image/png",
		Reader:      bytes.NewReader(img.Data),
	}
}
