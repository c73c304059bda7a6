package discord

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/esigns/signbot/internal/bot"
)

func componentInteraction(customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:   discordgo.InteractionMessageComponent,
			Data:   discordgo.MessageComponentInteractionData{CustomID: customID},
			Member: &discordgo.Member{User: &discordgo.User{ID: testUserID}},
		},
	}
}

func TestHandleDonate(t *testing.T) {
	tests := []struct {
		name        string
		sendErr     error
		wantContent string
	}{
		{name: "sent", wantContent: "Check your DMs for donation info."},
		{name: "dms closed", sendErr: bot.ErrDirectMessageForbidden, wantContent: "Couldn't DM you. Enable DMs from server members."},
		{name: "other failure", sendErr: errors.New("timeout"), wantContent: "Couldn't send donation info right now."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messenger := &mockMessenger{err: tt.sendErr}
			h := NewComponentHandlers(messenger, Messages{Donate: "send coins", Contribute: "send signs"})
			r := &bot.MockResponder{}

			if err := h.HandleDonate(nil, componentInteraction(DonateButtonID), r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			data := r.LastResponse.Data
			if data.Content != tt.wantContent || data.Flags != discordgo.MessageFlagsEphemeral {
				t.Errorf("unexpected response %+v", data)
			}
			if tt.sendErr == nil && messenger.sent[0].Content != "send coins" {
				t.Errorf("expected donation text in DM, got %q", messenger.sent[0].Content)
			}
		})
	}
}

func TestHandleContribute(t *testing.T) {
	h := NewComponentHandlers(&mockMessenger{}, Messages{Contribute: "send signs"})
	r := &bot.MockResponder{}

	if err := h.HandleContribute(nil, componentInteraction(ContributeButtonID), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := r.LastResponse.Data
	if data.Content != "send signs" || data.Flags != discordgo.MessageFlagsEphemeral {
		t.Errorf("unexpected response %+v", data)
	}
}
