package fansign

import (
	"fmt"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Config holds the fansign module configuration.
type Config struct {
	FontsDir         string `env:"FONTS_DIR"          envDefault:"fonts"`
	StylesDir        string `env:"STYLES_DIR"         envDefault:"styles"`
	PremiumStylesDir string `env:"PREMIUM_STYLES_DIR" envDefault:"premium_styles"`
	GeneratedDir     string `env:"GENERATED_DIR"      envDefault:"generated"`
	DatabasePath     string `env:"FANSIGN_DB_PATH"    envDefault:"fansign.db"`

	BlurScale        float64 `env:"BLUR_SCALE"         envDefault:"3"`
	PremiumBlurScale float64 `env:"PREMIUM_BLUR_SCALE" envDefault:"5"`

	PremiumCategoryID        string `env:"PREMIUM_CATEGORY_ID"`
	PremiumExcludedChannelID string `env:"PREMIUM_EXCLUDED_CHANNEL_ID"`

	PresenceBaseline int           `env:"PRESENCE_BASELINE" envDefault:"0"`
	PresenceInterval time.Duration `env:"PRESENCE_INTERVAL" envDefault:"10s"`

	// GeneratedRetention enables the cleanup of old generated images when non-zero.
	GeneratedRetention time.Duration `env:"GENERATED_RETENTION"`
	CleanupCron        string        `env:"GENERATED_CLEANUP_CRON" envDefault:"0 */6 * * *"`

	DonateMessage     string `env:"DONATE_MESSAGE"     envDefault:"**Thank you for supporting us!**\nDM a server admin to donate and claim your donator role."`
	ContributeMessage string `env:"CONTRIBUTE_MESSAGE" envDefault:"By contributing you give us a free fansign to use for our service.\nDM a server admin to contribute and get the Contributor role."`
}

// premiumGate parses the premium channel restriction.
func (c *Config) premiumGate() (categoryID, excludedID snowflake.ID, err error) {
	if c.PremiumCategoryID != "" {
		if categoryID, err = snowflake.Parse(c.PremiumCategoryID); err != nil {
			return 0, 0, fmt.Errorf("invalid PREMIUM_CATEGORY_ID: %w", err)
		}
	}
	if c.PremiumExcludedChannelID != "" {
		if excludedID, err = snowflake.Parse(c.PremiumExcludedChannelID); err != nil {
			return 0, 0, fmt.Errorf("invalid PREMIUM_EXCLUDED_CHANNEL_ID: %w", err)
		}
	}
	return categoryID, excludedID, nil
}
