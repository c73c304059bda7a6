package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/esigns/signbot/internal/bot"
	"github.com/esigns/signbot/internal/modules/fansign/application/usecases"
)

// AutocompleteHandler suggests fonts and styles for one command.
type AutocompleteHandler struct {
	suggestions *usecases.AutocompleteService
}

// NewAutocompleteHandler creates a new AutocompleteHandler.
func NewAutocompleteHandler(suggestions *usecases.AutocompleteService) *AutocompleteHandler {
	return &AutocompleteHandler{suggestions: suggestions}
}

// Handle responds with the choices for the focused option.
func (h *AutocompleteHandler) Handle(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	focused := bot.FocusedOption(i)
	if focused == nil {
		return bot.RespondChoices(r, nil)
	}

	input := usecases.SuggestInput{Current: focused.StringValue()}

	var (
		names []string
		err   error
	)
	switch {
	case focused.Name == "font":
		names, err = h.suggestions.SuggestFonts(input)
	case strings.HasPrefix(focused.Name, "style"):
		input.Selected = siblingStyles(i, focused.Name)
		names, err = h.suggestions.SuggestStyles(input)
	}
	if err != nil {
		slog.Warn("failed to list autocomplete choices", "option", focused.Name, "error", err)
		names = nil
	}

	return bot.RespondChoices(r, names)
}

// siblingStyles returns the values of the other style options already filled in.
func siblingStyles(i *discordgo.InteractionCreate, focused string) []string {
	var selected []string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == focused || !strings.HasPrefix(opt.Name, "style") {
			continue
		}
		if v := opt.StringValue(); v != "" {
			selected = append(selected, v)
		}
	}
	return selected
}
