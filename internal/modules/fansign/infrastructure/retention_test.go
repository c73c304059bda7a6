package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewSweeper_Validation(t *testing.T) {
	tests := []struct {
		name    string
		maxAge  time.Duration
		cron    string
		wantErr bool
	}{
		{name: "default cron", maxAge: time.Hour},
		{name: "custom cron", maxAge: time.Hour, cron: "*/5 * * * *"},
		{name: "invalid cron", maxAge: time.Hour, cron: "not a cron", wantErr: true},
		{name: "zero retention", maxAge: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSweeper(t.TempDir(), tt.maxAge, tt.cron)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error = %v, got %v", tt.wantErr, err)
			}
			if err == nil && tt.cron == "" && s.cron != DefaultCleanupCron {
				t.Errorf("expected default cron, got %q", s.cron)
			}
		})
	}
}

func TestSweeper_Sweep(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	files := map[string]time.Duration{
		"fresh.png": time.Minute,
		"old.png":   3 * time.Hour,
		"older.png": 48 * time.Hour,
	}
	for name, age := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("png"), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		mtime := now.Add(-age)
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatalf("failed to set mtime: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o700); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}

	s, err := NewSweeper(dir, 2*time.Hour, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.now = func() time.Time { return now }

	removed, err := s.Sweep()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 2 || names[0] != "fresh.png" || names[1] != "subdir" {
		t.Errorf("expected fresh.png and subdir to remain, got %v", names)
	}
}

func TestSweeper_SweepMissingDir(t *testing.T) {
	s, err := NewSweeper(filepath.Join(t.TempDir(), "missing"), time.Hour, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	removed, err := s.Sweep()
	if err != nil || removed != 0 {
		t.Errorf("expected no-op, got %d, %v", removed, err)
	}
}

func TestSweeper_StartStop(t *testing.T) {
	s, err := NewSweeper(t.TempDir(), time.Hour, "0 0 1 1 *")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Start(context.Background())

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}
