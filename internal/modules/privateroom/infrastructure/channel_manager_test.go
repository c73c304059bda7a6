package infrastructure

import (
	"errors"
	"net/http"
	"slices"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/modules/privateroom/application/usecases"
	"github.com/esigns/signbot/internal/modules/privateroom/domain"
)

func TestToDomainChannel_Viewers(t *testing.T) {
	ch := &discordgo.Channel{
		ID:       "10",
		Name:     "private-alice",
		ParentID: "20",
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			{ID: "1", Type: discordgo.PermissionOverwriteTypeRole, Deny: discordgo.PermissionViewChannel},
			{ID: "42", Type: discordgo.PermissionOverwriteTypeMember, Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages},
			{ID: "43", Type: discordgo.PermissionOverwriteTypeMember, Allow: discordgo.PermissionSendMessages},
			{ID: "44", Type: discordgo.PermissionOverwriteTypeRole, Allow: discordgo.PermissionViewChannel},
		},
	}

	got, err := toDomainChannel(ch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 10 || got.ParentID != 20 || got.Name != "private-alice" {
		t.Errorf("unexpected channel %+v", got)
	}
	if !slices.Equal(got.Viewers, []snowflake.ID{42}) {
		t.Errorf("expected viewers [42], got %v", got.Viewers)
	}
}

func TestRoomOverwrites(t *testing.T) {
	ows := roomOverwrites(1, 42)
	if len(ows) != 2 {
		t.Fatalf("expected 2 overwrites, got %d", len(ows))
	}

	everyone := ows[0]
	if everyone.ID != "1" || everyone.Type != discordgo.PermissionOverwriteTypeRole ||
		everyone.Deny&discordgo.PermissionViewChannel == 0 {
		t.Errorf("expected @everyone to be denied view, got %+v", everyone)
	}

	owner := ows[1]
	want := int64(discordgo.PermissionViewChannel | discordgo.PermissionSendMessages)
	if owner.ID != "42" || owner.Type != discordgo.PermissionOverwriteTypeMember || owner.Allow != want {
		t.Errorf("expected owner to be allowed view and send, got %+v", owner)
	}
}

func TestClassifyDeleteError(t *testing.T) {
	unknown := &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusNotFound},
		Message:  &discordgo.APIErrorMessage{Code: discordgo.ErrCodeUnknownChannel},
	}
	forbidden := &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusForbidden},
		Message:  &discordgo.APIErrorMessage{Code: discordgo.ErrCodeMissingPermissions},
	}

	if err := classifyDeleteError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := classifyDeleteError(unknown); !errors.Is(err, usecases.ErrChannelGone) {
		t.Errorf("expected ErrChannelGone, got %v", err)
	}
	if err := classifyDeleteError(forbidden); err == nil || errors.Is(err, usecases.ErrChannelGone) {
		t.Errorf("expected generic error, got %v", err)
	}
}

func TestDiscordChannelManager_TextChannelsFromState(t *testing.T) {
	state := discordgo.NewState()
	if err := state.GuildAdd(&discordgo.Guild{ID: "1"}); err != nil {
		t.Fatalf("failed to add guild: %v", err)
	}
	for _, ch := range []*discordgo.Channel{
		{ID: "20", GuildID: "1", Type: discordgo.ChannelTypeGuildCategory},
		{ID: "21", GuildID: "1", Type: discordgo.ChannelTypeGuildText, ParentID: "20", Name: "general"},
		{ID: "22", GuildID: "1", Type: discordgo.ChannelTypeGuildVoice, ParentID: "20"},
	} {
		if err := state.ChannelAdd(ch); err != nil {
			t.Fatalf("failed to add channel: %v", err)
		}
	}
	m := NewDiscordChannelManager(&discordgo.Session{State: state})

	got, err := m.TextChannels(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 21 {
		t.Errorf("expected only text channel 21, got %+v", got)
	}

	ch, err := m.Channel(21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.ParentID != 20 {
		t.Errorf("expected parent 20, got %d", ch.ParentID)
	}
}

func TestRememberChannel_VisibleToTextChannels(t *testing.T) {
	state := discordgo.NewState()
	if err := state.GuildAdd(&discordgo.Guild{ID: "1"}); err != nil {
		t.Fatalf("failed to add guild: %v", err)
	}
	m := NewDiscordChannelManager(&discordgo.Session{State: state})

	rememberChannel(state, &discordgo.Channel{
		ID:                   "500",
		GuildID:              "1",
		Name:                 "private-alice",
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             "20",
		PermissionOverwrites: roomOverwrites(1, 42),
	})

	channels, err := m.TextChannels(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := domain.FindRoom(channels, 20, 42); !ok {
		t.Errorf("expected created room to be listed, got %+v", channels)
	}
}

func TestRememberChannel_UnknownGuild(t *testing.T) {
	state := discordgo.NewState()

	// Must not panic when the guild is not cached yet.
	rememberChannel(state, &discordgo.Channel{ID: "500", GuildID: "9"})
	rememberChannel(nil, &discordgo.Channel{ID: "500"})
}
