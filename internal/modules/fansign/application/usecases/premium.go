package usecases

import (
	"context"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/modules/fansign/application/ports"
	"github.com/esigns/signbot/internal/modules/fansign/domain"
)

// PremiumService decides whether a user may use premium generation.
type PremiumService struct {
	gate         domain.PremiumGate
	channels     ports.ChannelResolver
	entitlements ports.EntitlementChecker
}

// NewPremiumService creates a new PremiumService.
func NewPremiumService(
	gate domain.PremiumGate,
	channels ports.ChannelResolver,
	entitlements ports.EntitlementChecker,
) *PremiumService {
	return &PremiumService{
		gate:         gate,
		channels:     channels,
		entitlements: entitlements,
	}
}

// CheckAccessInput contains the input for the CheckAccess use case.
type CheckAccessInput struct {
	UserID    snowflake.ID
	ChannelID snowflake.ID
}

// CheckAccess checks the channel gate first, then the user's entitlement.
func (s *PremiumService) CheckAccess(ctx context.Context, input CheckAccessInput) error {
	ch, err := s.channels.Channel(input.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to resolve channel: %w", err)
	}
	if !s.gate.Allows(ch) {
		return ErrWrongChannel
	}

	entitled, err := s.entitlements.IsEntitled(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to check entitlement: %w", err)
	}
	if !entitled {
		return ErrNotEntitled
	}
	return nil
}
