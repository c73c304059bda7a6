package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

const (
	// RoomPrefix starts the name of every private room.
	RoomPrefix = "private-"

	// DefaultLifetime is how long a private room exists before it is deleted.
	DefaultLifetime = 30 * time.Minute
)

// RoomName returns the channel name of a user's private room.
func RoomName(username string) string {
	return RoomPrefix + username
}

// FormatLifetime renders a lifetime for user-facing text, e.g. "30 minutes".
func FormatLifetime(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int(d/time.Hour), "hour")
	case d >= time.Minute && d%time.Minute == 0:
		return plural(int(d/time.Minute), "minute")
	default:
		return d.String()
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Channel is the part of a guild text channel the room rules look at.
type Channel struct {
	ID       snowflake.ID
	Name     string
	ParentID snowflake.ID

	// Viewers are the members with an overwrite allowing them to view the channel.
	Viewers []snowflake.ID
}

// IsRoomOf reports whether the channel is a private room in categoryID
// that userID can view.
func (c Channel) IsRoomOf(categoryID, userID snowflake.ID) bool {
	return strings.HasPrefix(c.Name, RoomPrefix) &&
		c.ParentID == categoryID &&
		slices.Contains(c.Viewers, userID)
}

// IsRoom reports whether the channel looks like a private room owned by a member.
func (c Channel) IsRoom() bool {
	return strings.HasPrefix(c.Name, RoomPrefix) && len(c.Viewers) > 0
}

// CreatedAt returns the creation time encoded in the channel ID.
func (c Channel) CreatedAt() time.Time {
	return c.ID.Time()
}

// FindRoom returns the user's private room in the category, if any.
func FindRoom(channels []Channel, categoryID, userID snowflake.ID) (Channel, bool) {
	for _, ch := range channels {
		if ch.IsRoomOf(categoryID, userID) {
			return ch, true
		}
	}
	return Channel{}, false
}

// Room is a created private room.
type Room struct {
	ChannelID  snowflake.ID
	OwnerID    snowflake.ID
	CategoryID snowflake.ID
	ExpiresAt  time.Time
}
