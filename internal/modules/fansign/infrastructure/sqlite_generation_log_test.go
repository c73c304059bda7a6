package infrastructure

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/esigns/signbot/internal/modules/fansign/domain"
)

func openTestLog(t *testing.T) *SQLiteGenerationLog {
	t.Helper()
	log, err := OpenGenerationLog(filepath.Join(t.TempDir(), "fansign.db"))
	if err != nil {
		t.Fatalf("failed to open log: %v", err)
	}
	t.Cleanup(func() { _ = log.Close() })
	return log
}

func TestSQLiteGenerationLog_CountSince(t *testing.T) {
	ctx := context.Background()
	log := openTestLog(t)
	now := time.Now()

	records := []domain.Generation{
		{UserID: 1, Style: "neon", Kind: domain.KindStandard, CreatedAt: now.Add(-time.Hour)},
		{UserID: 2, Style: "retro", Kind: domain.KindPremium, CreatedAt: now.Add(-23 * time.Hour)},
		{UserID: 3, Style: "neon", Kind: domain.KindBulk, CreatedAt: now.Add(-25 * time.Hour)},
	}
	for _, r := range records {
		if err := log.Record(ctx, r); err != nil {
			t.Fatalf("failed to record: %v", err)
		}
	}

	n, err := log.CountSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 generations in window, got %d", n)
	}
}

func TestSQLiteGenerationLog_RecordDefaultsTimestamp(t *testing.T) {
	ctx := context.Background()
	log := openTestLog(t)

	if err := log.Record(ctx, domain.Generation{UserID: 1, Style: "neon", Kind: domain.KindStandard}); err != nil {
		t.Fatalf("failed to record: %v", err)
	}

	n, err := log.CountSince(ctx, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 generation, got %d", n)
	}
}

func TestSQLiteGenerationLog_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fansign.db")

	log, err := OpenGenerationLog(path)
	if err != nil {
		t.Fatalf("failed to open log: %v", err)
	}
	if err := log.Record(ctx, domain.Generation{UserID: 1, Style: "neon", Kind: domain.KindStandard, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("failed to record: %v", err)
	}
	if err := log.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}

	reopened, err := OpenGenerationLog(path)
	if err != nil {
		t.Fatalf("failed to reopen log: %v", err)
	}
	defer reopened.Close()

	n, err := reopened.CountSince(ctx, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("expected persisted generation, got %d", n)
	}
}
