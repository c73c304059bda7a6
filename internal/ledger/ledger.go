// Package ledger tracks premium keys and the users that redeemed them.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/disgoorg/snowflake/v2"
)

// Ledger errors.
var (
	// ErrKeyNotFound is returned when redeeming a key the ledger does not hold.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyAlreadyRedeemed is returned when redeeming a key that is already bound to a user.
	ErrKeyAlreadyRedeemed = errors.New("key already redeemed")

	// ErrInvalidCount is returned when asked to generate fewer than one key.
	ErrInvalidCount = errors.New("key count must be at least 1")
)

// Ledger is the single owner of the key store.
// Every read-modify-write cycle on the store runs under one mutex, and under
// the store's lock when the store is a Locker.
type Ledger struct {
	mu     sync.Mutex
	store  Store
	newKey func() (Key, error)
}

// New creates a new Ledger backed by store.
func New(store Store) *Ledger {
	return &Ledger{
		store:  store,
		newKey: NewKey,
	}
}

// Generate creates count new unredeemed keys, all distinct from each other
// and from every key already in the ledger, and persists them.
func (l *Ledger) Generate(ctx context.Context, count int) ([]Key, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	unlock, err := l.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	records, err := l.store.Load()
	if err != nil {
		return nil, err
	}

	existing := make(map[Key]struct{}, len(records)+count)
	for _, r := range records {
		existing[r.Key] = struct{}{}
	}

	keys := make([]Key, 0, count)
	for len(keys) < count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		key, err := l.newKey()
		if err != nil {
			return nil, err
		}
		if _, dup := existing[key]; dup {
			continue
		}
		existing[key] = struct{}{}
		keys = append(keys, key)
		records = append(records, Record{Key: key})
	}

	if err := l.store.Save(records); err != nil {
		return nil, err
	}

	return keys, nil
}

// Redeem binds key to userID. A key can only be redeemed once.
func (l *Ledger) Redeem(_ context.Context, key Key, userID snowflake.ID) error {
	unlock, err := l.lock()
	if err != nil {
		return err
	}
	defer unlock()

	records, err := l.store.Load()
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].Key != key {
			continue
		}
		if records[i].Redeemed() {
			return ErrKeyAlreadyRedeemed
		}

		records[i].RedeemedBy = userID
		if err := l.store.Save(records); err != nil {
			return fmt.Errorf("failed to save redemption: %w", err)
		}
		return nil
	}

	return ErrKeyNotFound
}

// IsEntitled reports whether any key is bound to userID.
func (l *Ledger) IsEntitled(_ context.Context, userID snowflake.ID) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	unlock, err := l.lock()
	if err != nil {
		return false, err
	}
	defer unlock()

	records, err := l.store.Load()
	if err != nil {
		return false, err
	}

	for _, r := range records {
		if r.RedeemedBy == userID {
			return true, nil
		}
	}
	return false, nil
}

// Records returns a snapshot of every record in stored order.
func (l *Ledger) Records(_ context.Context) ([]Record, error) {
	unlock, err := l.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	return l.store.Load()
}

// lock acquires the in-process mutex and then the store lock, if any.
func (l *Ledger) lock() (func(), error) {
	l.mu.Lock()

	locker, ok := l.store.(Locker)
	if !ok {
		return l.mu.Unlock, nil
	}

	release, err := locker.Lock()
	if err != nil {
		l.mu.Unlock()
		return nil, fmt.Errorf("failed to lock ledger: %w", err)
	}
	return func() {
		if err := release(); err != nil {
			slog.Warn("failed to unlock ledger", "error", err)
		}
		l.mu.Unlock()
	}, nil
}
