package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/modules/link/application/ports"
	"github.com/esigns/signbot/internal/modules/link/domain"
)

// LinkService re-hosts user images in a target channel.
type LinkService struct {
	downloader ports.Downloader
	uploader   ports.Uploader
	channelID  snowflake.ID
}

// NewLinkService creates a new LinkService.
func NewLinkService(downloader ports.Downloader, uploader ports.Uploader, channelID snowflake.ID) *LinkService {
	return &LinkService{
		downloader: downloader,
		uploader:   uploader,
		channelID:  channelID,
	}
}

// CreateLinkInput contains the input for the CreateLink use case.
type CreateLinkInput struct {
	UserID     snowflake.ID
	Attachment domain.Attachment
}

// CreateLinkOutput contains the output for the CreateLink use case.
type CreateLinkOutput struct {
	URL string
}

// Validate checks the attachment without transferring it.
func (s *LinkService) Validate(a domain.Attachment) error {
	if !a.IsImage() {
		return ErrNotImage
	}
	if a.Size > domain.MaxImageBytes {
		return ErrTooLarge
	}
	return nil
}

// CreateLink downloads the attachment and uploads it to the target channel.
func (s *LinkService) CreateLink(ctx context.Context, input CreateLinkInput) (*CreateLinkOutput, error) {
	if err := s.Validate(input.Attachment); err != nil {
		return nil, err
	}
	if s.channelID == 0 {
		return nil, ErrNoTargetChannel
	}

	data, err := s.downloader.Download(ctx, input.Attachment.URL, domain.MaxImageBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment: %w", err)
	}

	url, err := s.uploader.Upload(ctx, s.channelID, input.Attachment.Filename, input.Attachment.ContentType, data)
	if err != nil {
		return nil, err
	}

	slog.Info("re-hosted image", "user_id", input.UserID, "bytes", len(data))
	return &CreateLinkOutput{URL: url}, nil
}
