package link

import (
	"testing"
	"time"

	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/modules/link/presentation/discord"
)

func TestLinkModule_LoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		want    uint64
		wantErr bool
	}{
		{name: "unset"},
		{name: "set", channel: "1403389648452980870", want: 1403389648452980870},
		{name: "invalid", channel: "uploads", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LINK_CHANNEL_ID", tt.channel)
			m := &LinkModule{}

			err := m.LoadConfig()
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error = %v, got %v", tt.wantErr, err)
			}
			if err != nil {
				return
			}
			if uint64(m.channelID) != tt.want {
				t.Errorf("expected %d, got %d", tt.want, m.channelID)
			}
			if m.config.DownloadTimeout != 15*time.Second {
				t.Errorf("expected default timeout, got %v", m.config.DownloadTimeout)
			}
		})
	}
}

func TestLinkModule_Init(t *testing.T) {
	m := &LinkModule{}
	if err := m.Init(bot.ModuleDependencies{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.CommandHandlers()[discord.CommandLink] == nil {
		t.Error("missing link handler")
	}
}
