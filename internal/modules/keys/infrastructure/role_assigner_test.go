package infrastructure

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/esigns/signbot/internal/modules/keys/application/usecases"
)

func TestClassifyRoleError(t *testing.T) {
	restErr := func(status, code int) error {
		return &discordgo.RESTError{
			Response: &http.Response{StatusCode: status},
			Message:  &discordgo.APIErrorMessage{Code: code},
		}
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unknown role", err: restErr(http.StatusNotFound, discordgo.ErrCodeUnknownRole), want: usecases.ErrRoleNotFound},
		{name: "missing permissions", err: restErr(http.StatusForbidden, discordgo.ErrCodeMissingPermissions), want: usecases.ErrRoleForbidden},
		{name: "forbidden status", err: restErr(http.StatusForbidden, 0), want: usecases.ErrRoleForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyRoleError(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if classifyRoleError(nil) != nil {
		t.Error("expected nil for nil")
	}
	other := errors.New("timeout")
	if got := classifyRoleError(other); !errors.Is(got, other) ||
		errors.Is(got, usecases.ErrRoleForbidden) || errors.Is(got, usecases.ErrRoleNotFound) {
		t.Errorf("expected wrapped unclassified error, got %v", got)
	}
}
