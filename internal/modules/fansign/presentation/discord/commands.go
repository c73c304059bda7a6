package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/esigns/signbot/internal/modules/fansign/domain"
)

// Command names.
const (
	CommandFansign = "fansign"
	CommandPremgen = "premgen"
	CommandBulkgen = "bulkgen"
)

// Button custom IDs.
const (
	DonateButtonID     = "donate_button"
	ContributeButtonID = "contribute_button"
)

var ordinals = [domain.MaxBulkStyles]string{
	"First", "Second", "Third", "Fourth", "Fifth",
	"Sixth", "Seventh", "Eighth", "Ninth", "Tenth",
}

// Commands returns all slash commands for the fansign module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandFansign,
			Description: "Generate a fansign with custom text.",
			Options:     singleOptions("Choose a style layout"),
		},
		{
			Name:        CommandPremgen,
			Description: "Generate a premium-style fansign (requires a premium key).",
			Options:     singleOptions("Premium style layout"),
		},
		{
			Name:        CommandBulkgen,
			Description: "Generate multiple fansigns with different styles.",
			Options:     bulkOptions(),
		},
	}
}

func textAndFontOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "text",
			Description: fmt.Sprintf("Text to display (max %d characters)", domain.MaxTextLength),
			Required:    true,
		},
		{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "font",
			Description:  "Font to use",
			Required:     true,
			Autocomplete: true,
		},
	}
}

func singleOptions(styleDescription string) []*discordgo.ApplicationCommandOption {
	return append(textAndFontOptions(), &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "style",
		Description:  styleDescription,
		Required:     true,
		Autocomplete: true,
	})
}

func bulkOptions() []*discordgo.ApplicationCommandOption {
	options := textAndFontOptions()
	for n := 1; n <= domain.MaxBulkStyles; n++ {
		required := n == 1
		qualifier := "optional"
		if required {
			qualifier = "required"
		}
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         styleSlot(n),
			Description:  fmt.Sprintf("%s style (%s)", ordinals[n-1], qualifier),
			Required:     required,
			Autocomplete: true,
		})
	}
	return options
}

func styleSlot(n int) string {
	return fmt.Sprintf("style%d", n)
}
