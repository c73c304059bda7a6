package bot

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// ErrDirectMessageForbidden is returned when a user does not accept direct messages.
var ErrDirectMessageForbidden = errors.New("cannot send direct messages to user")

// DirectMessenger sends direct messages to users.
type DirectMessenger interface {
	SendDirect(userID string, msg *discordgo.MessageSend) error
}

// SessionMessenger implements DirectMessenger using a Discord session.
type SessionMessenger struct {
	session *discordgo.Session
}

// NewSessionMessenger creates a new SessionMessenger.
func NewSessionMessenger(session *discordgo.Session) *SessionMessenger {
	return &SessionMessenger{session: session}
}

// SendDirect opens a DM channel with the user and sends msg to it.
func (m *SessionMessenger) SendDirect(userID string, msg *discordgo.MessageSend) error {
	ch, err := m.session.UserChannelCreate(userID)
	if err != nil {
		return classifyDirectError(err)
	}
	if _, err := m.session.ChannelMessageSendComplex(ch.ID, msg); err != nil {
		return classifyDirectError(err)
	}
	return nil
}

func classifyDirectError(err error) error {
	if HasRESTCode(err, discordgo.ErrCodeCannotSendMessagesToThisUser) || HasHTTPStatus(err, http.StatusForbidden) {
		return fmt.Errorf("%w: %v", ErrDirectMessageForbidden, err)
	}
	return fmt.Errorf("failed to send direct message: %w", err)
}

// HasRESTCode reports whether err is a Discord API error with the given JSON code.
func HasRESTCode(err error, code int) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) || restErr.Message == nil {
		return false
	}
	return restErr.Message.Code == code
}

// HasHTTPStatus reports whether err is a Discord API error with the given HTTP status.
func HasHTTPStatus(err error, status int) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) || restErr.Response == nil {
		return false
	}
	return restErr.Response.StatusCode == status
}
