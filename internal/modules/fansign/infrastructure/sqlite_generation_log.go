package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/esigns/signbot/internal/modules/fansign/application/ports"
	"github.com/esigns/signbot/internal/modules/fansign/domain"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// Ensure SQLiteGenerationLog implements ports.GenerationLog.
var _ ports.GenerationLog = (*SQLiteGenerationLog)(nil)

// SQLiteGenerationLog stores generation records in a SQLite database.
type SQLiteGenerationLog struct {
	db *sql.DB
}

// OpenGenerationLog opens (creating if needed) the generation database at path.
func OpenGenerationLog(path string) (*SQLiteGenerationLog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS generations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		style TEXT NOT NULL,
		kind TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create generations table: %w", err)
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS generations_created_at ON generations (created_at)`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create generations index: %w", err)
	}

	return &SQLiteGenerationLog{db: db}, nil
}

// Record inserts one generation.
func (l *SQLiteGenerationLog) Record(ctx context.Context, g domain.Generation) error {
	createdAt := g.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := l.db.ExecContext(
		ctx,
		`INSERT INTO generations (user_id, style, kind, created_at) VALUES (?, ?, ?, ?)`,
		int64(g.UserID),
		g.Style,
		string(g.Kind),
		createdAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert generation: %w", err)
	}
	return nil
}

// CountSince returns the number of generations created after since.
func (l *SQLiteGenerationLog) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := l.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM generations WHERE created_at > ?`,
		since.UTC().UnixMilli(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count generations: %w", err)
	}
	return n, nil
}

// Close closes the database.
func (l *SQLiteGenerationLog) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}
