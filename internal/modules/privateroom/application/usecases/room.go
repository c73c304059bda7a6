package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/modules/privateroom/application/ports"
	"github.com/esigns/signbot/internal/modules/privateroom/domain"
)

const closeReason = "Private room closed by owner"

// RoomService creates private rooms and deletes them when they expire.
type RoomService struct {
	entitlements ports.EntitlementChecker
	channels     ports.ChannelManager
	scheduler    ports.Scheduler
	lifetime     time.Duration
	now          func() time.Time

	// creating serializes room creation so two requests from one user cannot
	// both pass the existing-room check.
	creating sync.Mutex
}

// NewRoomService creates a new RoomService. A non-positive lifetime uses
// domain.DefaultLifetime.
func NewRoomService(
	entitlements ports.EntitlementChecker,
	channels ports.ChannelManager,
	scheduler ports.Scheduler,
	lifetime time.Duration,
) *RoomService {
	if lifetime <= 0 {
		lifetime = domain.DefaultLifetime
	}
	return &RoomService{
		entitlements: entitlements,
		channels:     channels,
		scheduler:    scheduler,
		lifetime:     lifetime,
		now:          time.Now,
	}
}

// Lifetime returns how long created rooms live.
func (s *RoomService) Lifetime() time.Duration {
	return s.lifetime
}

// CreateInput contains the input for the Create use case.
type CreateInput struct {
	GuildID   snowflake.ID
	ChannelID snowflake.ID
	UserID    snowflake.ID
	Username  string
}

// CreateOutput contains the output for the Create use case.
type CreateOutput struct {
	Room domain.Room
}

// Create creates a private room in the category of the invoking channel and
// schedules its deletion.
func (s *RoomService) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	entitled, err := s.entitlements.IsEntitled(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check entitlement: %w", err)
	}
	if !entitled {
		return nil, ErrNotEntitled
	}

	categoryID, err := s.categoryOf(input.ChannelID)
	if err != nil {
		return nil, err
	}

	s.creating.Lock()
	defer s.creating.Unlock()

	channels, err := s.channels.TextChannels(input.GuildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	if existing, ok := domain.FindRoom(channels, categoryID, input.UserID); ok {
		return nil, &RoomExistsError{ChannelID: existing.ID}
	}

	ch, err := s.channels.CreateRoom(input.GuildID, categoryID, input.UserID, domain.RoomName(input.Username))
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	room := domain.Room{
		ChannelID:  ch.ID,
		OwnerID:    input.UserID,
		CategoryID: categoryID,
		ExpiresAt:  s.now().Add(s.lifetime),
	}
	s.scheduler.Schedule(ch.ID, s.lifetime, func() {
		s.expire(ch.ID)
	})

	slog.Info("created private room",
		"channel_id", ch.ID,
		"user_id", input.UserID,
		"expires_at", room.ExpiresAt,
	)
	return &CreateOutput{Room: room}, nil
}

// CloseInput contains the input for the Close use case.
type CloseInput struct {
	GuildID   snowflake.ID
	ChannelID snowflake.ID
	UserID    snowflake.ID
}

// Close deletes the user's room in the category of the invoking channel
// before it expires.
func (s *RoomService) Close(_ context.Context, input CloseInput) (snowflake.ID, error) {
	categoryID, err := s.categoryOf(input.ChannelID)
	if err != nil {
		return 0, err
	}

	channels, err := s.channels.TextChannels(input.GuildID)
	if err != nil {
		return 0, fmt.Errorf("failed to list channels: %w", err)
	}
	room, ok := domain.FindRoom(channels, categoryID, input.UserID)
	if !ok {
		return 0, ErrRoomNotFound
	}

	s.scheduler.Cancel(room.ID)
	if err := s.delete(room.ID, closeReason); err != nil {
		return 0, err
	}
	slog.Info("closed private room", "channel_id", room.ID, "user_id", input.UserID)
	return room.ID, nil
}

// RestoreOutput contains the output for the Restore use case.
type RestoreOutput struct {
	Rescheduled int
	Expired     int
}

// Restore re-arms the deletion of rooms left in a guild by a previous run.
// Rooms past their lifetime are deleted right away.
func (s *RoomService) Restore(_ context.Context, guildID snowflake.ID) (*RestoreOutput, error) {
	channels, err := s.channels.TextChannels(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}

	out := &RestoreOutput{}
	now := s.now()
	for _, ch := range channels {
		if !ch.IsRoom() {
			continue
		}

		remaining := ch.CreatedAt().Add(s.lifetime).Sub(now)
		if remaining <= 0 {
			s.expire(ch.ID)
			out.Expired++
			continue
		}

		s.scheduler.Schedule(ch.ID, remaining, func() {
			s.expire(ch.ID)
		})
		out.Rescheduled++
	}

	if out.Rescheduled > 0 || out.Expired > 0 {
		slog.Info("restored private rooms",
			"guild_id", guildID,
			"rescheduled", out.Rescheduled,
			"expired", out.Expired,
		)
	}
	return out, nil
}

// Shutdown cancels pending deletions. Rooms are left in place and are
// picked up again by Restore.
func (s *RoomService) Shutdown() {
	s.scheduler.Stop()
}

func (s *RoomService) categoryOf(channelID snowflake.ID) (snowflake.ID, error) {
	ch, err := s.channels.Channel(channelID)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve channel: %w", err)
	}
	if ch.ParentID == 0 {
		return 0, ErrNoCategory
	}
	return ch.ParentID, nil
}

func (s *RoomService) expire(channelID snowflake.ID) {
	reason := fmt.Sprintf("Private room expired after %s", domain.FormatLifetime(s.lifetime))
	if err := s.delete(channelID, reason); err != nil {
		slog.Error("failed to delete expired private room", "channel_id", channelID, "error", err)
		return
	}
	slog.Info("deleted expired private room", "channel_id", channelID)
}

func (s *RoomService) delete(channelID snowflake.ID, reason string) error {
	err := s.channels.DeleteChannel(channelID, reason)
	if err != nil && !errors.Is(err, ErrChannelGone) {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
