package bot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingToken is returned when neither the config file nor the environment supplies a token.
var ErrMissingToken = errors.New("discord token is not configured")

// Config holds the bot configuration loaded from the config file and environment variables.
type Config struct {
	ConfigPath   string     `env:"CONFIG_PATH" envDefault:"config.json"`
	DiscordToken string     `env:"DISCORD_TOKEN"`
	GuildID      string     `env:"DISCORD_GUILD_ID"`
	KeysPath     string     `env:"KEYS_PATH" envDefault:"keys.txt"`
	MetricsAddr  string     `env:"METRICS_ADDR"`
	LogLevel     slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// fileConfig mirrors the JSON config file layout.
type fileConfig struct {
	Token string `json:"token"`
}

// LoadConfig loads configuration from an optional .env file, the JSON config
// file and environment variables, in increasing order of precedence.
// Returns an error if no token is configured.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.DiscordToken == "" {
		token, err := readTokenFile(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.DiscordToken = token
	}

	if cfg.DiscordToken == "" {
		return nil, ErrMissingToken
	}

	return cfg, nil
}

// readTokenFile returns the token from the JSON config file, or an empty
// string if the file does not exist.
func readTokenFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return "", fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc.Token, nil
}
