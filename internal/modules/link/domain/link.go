package domain

import "strings"

// MaxImageBytes is the largest attachment re-hosted by /link.
const MaxImageBytes = 25 << 20

// Attachment is an image supplied by the user.
type Attachment struct {
	URL         string
	Filename    string
	ContentType string
	Size        int
}

// IsImage reports whether the attachment declares an image content type.
func (a Attachment) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(a.ContentType), "image/")
}
