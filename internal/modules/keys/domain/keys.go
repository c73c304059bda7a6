package domain

import (
	"strings"

	"github.com/disgoorg/snowflake/v2"
)

const (
	// MinBatch is the fewest keys one batch request may generate.
	MinBatch = 1

	// MaxBatch is the most keys one batch request may generate.
	MaxBatch = 100000

	// BatchFileName is the name of the file a key batch is delivered in.
	BatchFileName = "premium_keys.txt"
)

// ValidBatchSize reports whether n keys may be generated in one request.
func ValidBatchSize(n int) bool {
	return n >= MinBatch && n <= MaxBatch
}

// Owner identifies the user allowed to mint keys.
type Owner snowflake.ID

// Is reports whether userID is the owner. An unset owner matches nobody.
func (o Owner) Is(userID snowflake.ID) bool {
	return o != 0 && snowflake.ID(o) == userID
}

// BatchFile formats keys one per line.
func BatchFile[K ~string](keys []K) string {
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(k))
	}
	return sb.String()
}
