package ledger

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/disgoorg/snowflake/v2"
)

// KeyLength is the number of characters in a generated key.
const KeyLength = 20

// keyAlphabet is the set of characters a generated key is drawn from.
const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!$?"

// Key is an opaque premium key.
type Key string

// String returns the key text.
func (k Key) String() string {
	return string(k)
}

// NewKey returns a random key of KeyLength characters.
func NewKey() (Key, error) {
	var sb strings.Builder
	sb.Grow(KeyLength)

	limit := big.NewInt(int64(len(keyAlphabet)))
	for range KeyLength {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate key: %w", err)
		}
		sb.WriteByte(keyAlphabet[n.Int64()])
	}

	return Key(sb.String()), nil
}

// Record is a single ledger entry.
// A zero RedeemedBy means the key has not been redeemed.
type Record struct {
	Key        Key
	RedeemedBy snowflake.ID
}

// Redeemed reports whether the key is bound to a user.
func (r Record) Redeemed() bool {
	return r.RedeemedBy != 0
}
