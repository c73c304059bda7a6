package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/disgoorg/snowflake/v2"
)

const (
	// MaxTextLength is the longest text, in characters, a fansign may carry.
	MaxTextLength = 14

	// MaxBulkStyles is the number of style slots offered by bulk generation.
	MaxBulkStyles = 10

	// AttachmentsPerMessage is the most images delivered in one message.
	AttachmentsPerMessage = 5
)

// Kind distinguishes standard from premium generations.
type Kind string

const (
	KindStandard Kind = "standard"
	KindPremium  Kind = "premium"
	KindBulk     Kind = "bulk"
)

// TextFits reports whether text is within MaxTextLength characters.
func TextFits(text string) bool {
	return utf8.RuneCountInString(text) <= MaxTextLength
}

// NormalizeStyles lower-cases the non-empty style selections, keeping slot order.
func NormalizeStyles(selections []string) []string {
	styles := make([]string, 0, len(selections))
	for _, s := range selections {
		if s == "" {
			continue
		}
		styles = append(styles, strings.ToLower(s))
	}
	return styles
}

// FirstDuplicate returns the first style that appears more than once.
func FirstDuplicate(styles []string) (string, bool) {
	seen := make(map[string]struct{}, len(styles))
	for _, s := range styles {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			return s, true
		}
		seen[key] = struct{}{}
	}
	return "", false
}

// Batch splits items into consecutive groups of at most size.
func Batch[T any](items []T, size int) [][]T {
	if size < 1 {
		size = 1
	}
	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		batches = append(batches, items[start:end])
	}
	return batches
}

// Generation records one successfully generated fansign.
type Generation struct {
	UserID    snowflake.ID
	Style     string
	Kind      Kind
	CreatedAt time.Time
}
