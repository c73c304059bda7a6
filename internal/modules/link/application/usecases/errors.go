package usecases

import "errors"

// Domain errors for the link module.
var (
	// ErrNotImage is returned when the attachment is not an image.
	ErrNotImage = errors.New("attachment is not an image")

	// ErrTooLarge is returned when the attachment exceeds the size limit.
	ErrTooLarge = errors.New("attachment is too large")

	// ErrNoTargetChannel is returned when no upload channel is configured.
	ErrNoTargetChannel = errors.New("target channel not configured")

	// ErrUploadFailed is returned when the upload produced no hosted file.
	ErrUploadFailed = errors.New("image failed to upload")
)
