package infrastructure

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/modules/link/application/ports"
	"github.com/esigns/signbot/internal/modules/link/application/usecases"
)

// Ensure DiscordUploader implements ports.Uploader.
var _ ports.Uploader = (*DiscordUploader)(nil)

// DiscordUploader uploads files as channel message attachments.
type DiscordUploader struct {
	session *discordgo.Session
}

// NewDiscordUploader creates a new DiscordUploader.
func NewDiscordUploader(session *discordgo.Session) *DiscordUploader {
	return &DiscordUploader{session: session}
}

// Upload sends the file to the channel and returns the attachment URL.
func (u *DiscordUploader) Upload(
	ctx context.Context,
	channelID snowflake.ID,
	name, contentType string,
	data []byte,
) (string, error) {
	msg, err := u.session.ChannelMessageSendComplex(channelID.String(), &discordgo.MessageSend{
		Files: []*discordgo.File{
			{Name: name, ContentType: contentType, Reader: bytes.NewReader(data)},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to send attachment: %w", err)
	}
	return attachmentURL(msg)
}

func attachmentURL(msg *discordgo.Message) (string, error) {
	if msg == nil || len(msg.Attachments) == 0 || msg.Attachments[0].URL == "" {
		return "", usecases.ErrUploadFailed
	}
	return msg.Attachments[0].URL, nil
}
