package discord

import "github.com/bwmarrin/discordgo"

// Command names.
const (
	CommandPrivateRoom = "privateroom"
	CommandCloseRoom   = "closeroom"
)

var dmPermission = false

// Commands returns all slash commands for the private room module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         CommandPrivateRoom,
			Description:  "Create a temporary private room (premium only).",
			DMPermission: &dmPermission,
		},
		{
			Name:         CommandCloseRoom,
			Description:  "Delete your private room before it expires.",
			DMPermission: &dmPermission,
		},
	}
}
