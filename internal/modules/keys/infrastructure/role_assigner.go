package infrastructure

import (
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/modules/keys/application/ports"
	"github.com/esigns/signbot/internal/modules/keys/application/usecases"
)

// Ensure DiscordRoleAssigner implements ports.RoleAssigner.
var _ ports.RoleAssigner = (*DiscordRoleAssigner)(nil)

// DiscordRoleAssigner assigns roles through the Discord API.
type DiscordRoleAssigner struct {
	session *discordgo.Session
}

// NewDiscordRoleAssigner creates a new DiscordRoleAssigner.
func NewDiscordRoleAssigner(session *discordgo.Session) *DiscordRoleAssigner {
	return &DiscordRoleAssigner{session: session}
}

// AssignRole adds the role to the guild member.
func (a *DiscordRoleAssigner) AssignRole(guildID, userID, roleID snowflake.ID) error {
	err := a.session.GuildMemberRoleAdd(guildID.String(), userID.String(), roleID.String())
	return classifyRoleError(err)
}

func classifyRoleError(err error) error {
	switch {
	case err == nil:
		return nil
	case bot.HasRESTCode(err, discordgo.ErrCodeUnknownRole):
		return fmt.Errorf("%w: %v", usecases.ErrRoleNotFound, err)
	case bot.HasRESTCode(err, discordgo.ErrCodeMissingPermissions),
		bot.HasHTTPStatus(err, http.StatusForbidden):
		return fmt.Errorf("%w: %v", usecases.ErrRoleForbidden, err)
	default:
		return fmt.Errorf("failed to add role: %w", err)
	}
}
