package domain

import (
	"slices"
	"strings"
	"testing"
)

func TestTextFits(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{text: "", want: true},
		{text: "fourteen chars", want: true},
		{text: "fifteen chars!!", want: false},
		{text: strings.Repeat("é", 14), want: true},
		{text: strings.Repeat("é", 15), want: false},
	}

	for _, tt := range tests {
		if got := TextFits(tt.text); got != tt.want {
			t.Errorf("TextFits(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestNormalizeStyles(t *testing.T) {
	got := NormalizeStyles([]string{"Neon", "", "retro", "", "PASTEL"})
	want := []string{"neon", "retro", "pastel"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFirstDuplicate(t *testing.T) {
	if _, dup := FirstDuplicate([]string{"a", "b", "c"}); dup {
		t.Error("expected no duplicate")
	}

	got, dup := FirstDuplicate([]string{"neon", "retro", "NEON"})
	if !dup {
		t.Fatal("expected duplicate")
	}
	if got != "NEON" {
		t.Errorf("expected duplicate %q, got %q", "NEON", got)
	}
}

func TestBatch(t *testing.T) {
	tests := []struct {
		name  string
		items int
		want  []int
	}{
		{name: "empty", items: 0, want: []int{}},
		{name: "single partial batch", items: 3, want: []int{3}},
		{name: "exact batch", items: 5, want: []int{5}},
		{name: "two batches", items: 7, want: []int{5, 2}},
		{name: "full bulk", items: 10, want: []int{5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]int, tt.items)
			for i := range items {
				items[i] = i
			}

			batches := Batch(items, AttachmentsPerMessage)

			sizes := make([]int, len(batches))
			var flat []int
			for i, b := range batches {
				sizes[i] = len(b)
				flat = append(flat, b...)
			}
			if !slices.Equal(sizes, tt.want) {
				t.Errorf("expected batch sizes %v, got %v", tt.want, sizes)
			}
			if len(flat) != tt.items || (tt.items > 0 && !slices.Equal(flat, items)) {
				t.Errorf("expected batches to preserve order, got %v", flat)
			}
		})
	}
}

func TestPremiumGate_Allows(t *testing.T) {
	gate := PremiumGate{CategoryID: 100, ExcludedChannelID: 5}

	tests := []struct {
		name string
		ch   Channel
		want bool
	}{
		{name: "channel in category", ch: Channel{ID: 1, ParentID: 100}, want: true},
		{name: "excluded channel", ch: Channel{ID: 5, ParentID: 100}, want: false},
		{name: "other category", ch: Channel{ID: 1, ParentID: 200}, want: false},
		{name: "no category", ch: Channel{ID: 1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gate.Allows(tt.ch); got != tt.want {
				t.Errorf("Allows(%+v) = %v, want %v", tt.ch, got, tt.want)
			}
		})
	}
}

func TestPremiumGate_UnconfiguredDeniesEverything(t *testing.T) {
	if (PremiumGate{}).Allows(Channel{ID: 1}) {
		t.Error("expected unconfigured gate to deny")
	}
}
