package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/esigns/signbot/internal/modules/keys/domain"
)

// Command names.
const (
	CommandKeygen  = "1keygen"
	CommandGenkeys = "genkeys"
	CommandRedeem  = "redeem"
)

// Commands returns all slash commands for the keys module.
func Commands() []*discordgo.ApplicationCommand {
	dmPermission := false
	minAmount := float64(domain.MinBatch)

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandKeygen,
			Description: "Generate a redeemable premium key",
		},
		{
			Name:        CommandGenkeys,
			Description: "Generate premium keys and get them in DMs. (Owner only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Number of keys to generate",
					Required:    true,
					MinValue:    &minAmount,
					MaxValue:    domain.MaxBatch,
				},
			},
		},
		{
			Name:         CommandRedeem,
			Description:  "Redeem a key",
			DMPermission: &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "key",
					Description: "The key to redeem",
					Required:    true,
				},
			},
		},
	}
}
