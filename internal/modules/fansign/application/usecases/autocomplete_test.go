package usecases

import (
	"slices"
	"testing"

	"github.com/esigns/signbot/internal/modules/fansign/domain"
)

func TestAutocompleteService_SuggestStyles(t *testing.T) {
	f := newGenerationFixture(t, "neon1", "neon2", "retro", "Neon3")
	svc := NewAutocompleteService(f.service(GenerationOptions{Kind: domain.KindBulk}))

	tests := []struct {
		name  string
		input SuggestInput
		want  []string
	}{
		{name: "empty input lists all", input: SuggestInput{}, want: []string{"neon1", "neon2", "retro", "Neon3"}},
		{name: "case-insensitive substring", input: SuggestInput{Current: "NEO"}, want: []string{"neon1", "neon2", "Neon3"}},
		{
			name:  "sibling selections excluded",
			input: SuggestInput{Current: "neon", Selected: []string{"NEON2", ""}},
			want:  []string{"neon1", "Neon3"},
		},
		{name: "no match", input: SuggestInput{Current: "zzz"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.SuggestStyles(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAutocompleteService_SuggestFonts(t *testing.T) {
	f := newGenerationFixture(t)
	f.fonts.names = []string{"Arial", "Comic Sans", "Courier"}
	svc := NewAutocompleteService(f.service(GenerationOptions{Kind: domain.KindStandard}))

	got, err := svc.SuggestFonts(SuggestInput{Current: "co"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"Comic Sans", "Courier"}; !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAutocompleteService_CapsAtMaxChoices(t *testing.T) {
	names := make([]string, 40)
	for i := range names {
		names[i] = "style" + string(rune('a'+i%26)) + string(rune('a'+i/26))
	}
	f := newGenerationFixture(t)
	f.styles.names = names
	svc := NewAutocompleteService(f.service(GenerationOptions{Kind: domain.KindStandard}))

	got, err := svc.SuggestStyles(SuggestInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 25 {
		t.Errorf("expected 25 choices, got %d", len(got))
	}
}
