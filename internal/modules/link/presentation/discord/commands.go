package discord

import "github.com/bwmarrin/discordgo"

// CommandLink is the /link command name.
const CommandLink = "link"

// Commands returns all slash commands for the link module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandLink,
			Description: "Upload an image and get a copyable branded link.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionAttachment,
					Name:        "image",
					Description: "Attach your image here",
					Required:    true,
				},
			},
		},
	}
}
