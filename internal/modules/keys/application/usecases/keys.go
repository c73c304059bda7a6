package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/ledger"
	"github.com/esigns/signbot/internal/modules/keys/application/ports"
	"github.com/esigns/signbot/internal/modules/keys/domain"
)

// KeyService mints and redeems premium keys.
type KeyService struct {
	ledger  ports.KeyLedger
	roles   ports.RoleAssigner
	owner   domain.Owner
	premium snowflake.ID
}

// NewKeyService creates a new KeyService. A zero premiumRoleID disables role
// assignment on redemption.
func NewKeyService(
	keyLedger ports.KeyLedger,
	roles ports.RoleAssigner,
	owner domain.Owner,
	premiumRoleID snowflake.ID,
) *KeyService {
	return &KeyService{
		ledger:  keyLedger,
		roles:   roles,
		owner:   owner,
		premium: premiumRoleID,
	}
}

// GenerateInput contains the input for the Generate use case.
type GenerateInput struct {
	RequesterID snowflake.ID
	Amount      int
}

// GenerateOutput contains the output for the Generate use case.
type GenerateOutput struct {
	Keys []ledger.Key
}

// Generate mints Amount keys for the owner.
func (s *KeyService) Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error) {
	if !s.owner.Is(input.RequesterID) {
		return nil, ErrNotOwner
	}
	if !domain.ValidBatchSize(input.Amount) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAmount, input.Amount)
	}

	keys, err := s.ledger.Generate(ctx, input.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keys: %w", err)
	}

	slog.Info("generated premium keys", "count", len(keys), "user_id", input.RequesterID)
	return &GenerateOutput{Keys: keys}, nil
}

// RedeemInput contains the input for the Redeem use case.
type RedeemInput struct {
	UserID  snowflake.ID
	GuildID snowflake.ID
	Key     string
}

// RedeemOutput contains the output for the Redeem use case.
type RedeemOutput struct {
	// RoleErr is set when the key was redeemed but the premium role could
	// not be assigned. The redemption is not rolled back.
	RoleErr error
}

// Redeem binds the key to the user and assigns the premium role when one is
// configured and the command was used in a guild.
func (s *KeyService) Redeem(ctx context.Context, input RedeemInput) (*RedeemOutput, error) {
	if err := s.ledger.Redeem(ctx, ledger.Key(input.Key), input.UserID); err != nil {
		return nil, err
	}
	slog.Info("redeemed premium key", "user_id", input.UserID)

	out := &RedeemOutput{}
	if s.premium == 0 || input.GuildID == 0 {
		return out, nil
	}

	if err := s.roles.AssignRole(input.GuildID, input.UserID, s.premium); err != nil {
		slog.Warn("failed to assign premium role",
			"guild_id", input.GuildID,
			"user_id", input.UserID,
			"error", err,
		)
		out.RoleErr = err
	}
	return out, nil
}
