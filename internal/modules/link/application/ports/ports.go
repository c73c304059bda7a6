package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// Downloader fetches remote files.
type Downloader interface {
	// Download returns the body at url, failing when it exceeds maxBytes.
	Download(ctx context.Context, url string, maxBytes int64) ([]byte, error)
}

// Uploader posts files to a channel and returns their hosted URL.
type Uploader interface {
	Upload(ctx context.Context, channelID snowflake.ID, name, contentType string, data []byte) (string, error)
}
