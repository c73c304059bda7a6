package fansign

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/modules/fansign/presentation/discord"
)

func setTestEnv(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"fonts", "styles"} {
		if err := os.Mkdir(filepath.Join(root, dir), 0o700); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
	t.Setenv("FONTS_DIR", filepath.Join(root, "fonts"))
	t.Setenv("STYLES_DIR", filepath.Join(root, "styles"))
	t.Setenv("PREMIUM_STYLES_DIR", filepath.Join(root, "premium_styles"))
	t.Setenv("GENERATED_DIR", filepath.Join(root, "generated"))
	t.Setenv("FANSIGN_DB_PATH", filepath.Join(root, "fansign.db"))
	return root
}

func TestFansignModule_LoadConfigDefaults(t *testing.T) {
	setTestEnv(t)
	m := &FansignModule{}

	if err := m.LoadConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := m.config
	if cfg.BlurScale != 3 || cfg.PremiumBlurScale != 5 {
		t.Errorf("unexpected blur scales %v and %v", cfg.BlurScale, cfg.PremiumBlurScale)
	}
	if cfg.PresenceInterval != 10*time.Second {
		t.Errorf("expected 10s presence interval, got %s", cfg.PresenceInterval)
	}
	if cfg.GeneratedRetention != 0 {
		t.Errorf("expected retention disabled by default, got %s", cfg.GeneratedRetention)
	}
	if cfg.CleanupCron != "0 */6 * * *" {
		t.Errorf("unexpected cleanup cron %q", cfg.CleanupCron)
	}
}

func TestFansignModule_LoadConfigRejectsInvalidIDs(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "category", key: "PREMIUM_CATEGORY_ID"},
		{name: "excluded channel", key: "PREMIUM_EXCLUDED_CHANNEL_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setTestEnv(t)
			t.Setenv(tt.key, "not-a-snowflake")

			if err := (&FansignModule{}).LoadConfig(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFansignModule_Init(t *testing.T) {
	root := setTestEnv(t)
	t.Setenv("PREMIUM_CATEGORY_ID", "100")
	t.Setenv("GENERATED_RETENTION", "24h")
	m := &FansignModule{}

	if err := m.LoadConfig(); err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}
	if err := m.Init(bot.ModuleDependencies{}); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	t.Cleanup(func() { _ = m.Shutdown() })

	if _, err := os.Stat(filepath.Join(root, "generated")); err != nil {
		t.Errorf("expected generated directory: %v", err)
	}

	for _, name := range []string{discord.CommandFansign, discord.CommandPremgen, discord.CommandBulkgen} {
		if _, ok := m.CommandHandlers()[name]; !ok {
			t.Errorf("missing command handler %s", name)
		}
		if _, ok := m.AutocompleteHandlers()[name]; !ok {
			t.Errorf("missing autocomplete handler %s", name)
		}
	}
	for _, id := range []string{discord.DonateButtonID, discord.ContributeButtonID} {
		if _, ok := m.ComponentHandlers()[id]; !ok {
			t.Errorf("missing component handler %s", id)
		}
	}
	if len(m.Commands()) != 3 {
		t.Errorf("expected 3 commands, got %d", len(m.Commands()))
	}
	if m.sweeper == nil {
		t.Error("expected cleanup sweeper when retention is set")
	}
	if m.presence != nil {
		t.Error("expected no presence updater without a session")
	}
}

func TestFansignModule_ShutdownWithoutInit(t *testing.T) {
	if err := (&FansignModule{}).Shutdown(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
