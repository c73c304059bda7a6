package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/ledger"
)

// KeyLedger mints and redeems premium keys.
type KeyLedger interface {
	Generate(ctx context.Context, count int) ([]ledger.Key, error)
	Redeem(ctx context.Context, key ledger.Key, userID snowflake.ID) error
}

// RoleAssigner grants guild roles to members.
type RoleAssigner interface {
	// AssignRole adds roleID to the member. Implementations return
	// usecases.ErrRoleNotFound or usecases.ErrRoleForbidden where they apply.
	AssignRole(guildID, userID, roleID snowflake.ID) error
}
