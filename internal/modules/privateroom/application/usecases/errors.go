package usecases

import (
	"errors"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
)

// Domain errors for the private room module.
var (
	// ErrNotEntitled is returned when the user has not redeemed a premium key.
	ErrNotEntitled = errors.New("no premium access")

	// ErrNoCategory is returned when the command is used outside a category.
	ErrNoCategory = errors.New("channel is not inside a category")

	// ErrRoomExists is returned when the user already has a room in the category.
	ErrRoomExists = errors.New("private room already exists")

	// ErrRoomNotFound is returned when the user has no room in the category.
	ErrRoomNotFound = errors.New("private room not found")

	// ErrChannelGone is returned by channel managers for channels that no longer exist.
	ErrChannelGone = errors.New("channel no longer exists")
)

// RoomExistsError carries the channel of the existing room.
type RoomExistsError struct {
	ChannelID snowflake.ID
}

// Error implements error.
func (e *RoomExistsError) Error() string {
	return fmt.Sprintf("%v: %d", ErrRoomExists, e.ChannelID)
}

// Unwrap returns ErrRoomExists.
func (e *RoomExistsError) Unwrap() error {
	return ErrRoomExists
}
