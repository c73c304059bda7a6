package usecases

import (
	"github.com/esigns/signbot/internal/assets"
)

// AutocompleteService suggests fonts and styles for a GenerationService.
type AutocompleteService struct {
	generation *GenerationService
}

// NewAutocompleteService creates a new AutocompleteService.
func NewAutocompleteService(generation *GenerationService) *AutocompleteService {
	return &AutocompleteService{generation: generation}
}

// SuggestInput contains the input for the suggestion use cases.
type SuggestInput struct {
	// Current is the partial value typed so far.
	Current string

	// Selected holds values already chosen in sibling options; they are not
	// suggested again.
	Selected []string
}

// SuggestFonts returns the fonts matching the partial input.
func (s *AutocompleteService) SuggestFonts(input SuggestInput) ([]string, error) {
	fonts, err := s.generation.Fonts()
	if err != nil {
		return nil, err
	}
	return assets.Match(fonts, input.Current, input.Selected, assets.MaxChoices), nil
}

// SuggestStyles returns the styles matching the partial input.
func (s *AutocompleteService) SuggestStyles(input SuggestInput) ([]string, error) {
	styles, err := s.generation.Styles()
	if err != nil {
		return nil, err
	}
	return assets.Match(styles, input.Current, input.Selected, assets.MaxChoices), nil
}
