package link

import "time"

// Config holds the link module configuration.
type Config struct {
	// ChannelID is the channel images are re-hosted in.
	ChannelID string `env:"LINK_CHANNEL_ID"`

	// DownloadTimeout bounds fetching the user's attachment.
	DownloadTimeout time.Duration `env:"LINK_DOWNLOAD_TIMEOUT" envDefault:"15s"`
}
