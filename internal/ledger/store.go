package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disgoorg/snowflake/v2"
	"github.com/gofrs/flock"
)

// Store persists the full set of ledger records.
type Store interface {
	// Load returns every record in stored order.
	Load() ([]Record, error)

	// Save replaces the stored records.
	Save(records []Record) error
}

// Locker is implemented by stores shared with other processes.
type Locker interface {
	// Lock blocks until the caller holds the store exclusively and returns
	// the function that releases it.
	Lock() (unlock func() error, err error)
}

// FileStore stores records in a line-oriented text file.
// Each line is either "<key>" (unredeemed) or "<key>:<userID>" (redeemed).
type FileStore struct {
	path string
}

// NewFileStore creates a new FileStore backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// LockPath returns the path of the advisory lock file guarding the ledger.
func (s *FileStore) LockPath() string {
	return s.path + ".lock"
}

// Lock takes an exclusive advisory lock on the lock file so the bot and the
// offline CLI never interleave their read-modify-write cycles.
func (s *FileStore) Lock() (func() error, error) {
	fl := flock.New(s.LockPath())
	if err := fl.Lock(); err != nil {
		return nil, err
	}
	return fl.Unlock, nil
}

// Load reads every record from the file. A missing file is an empty ledger.
func (s *FileStore) Load() ([]Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		record, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("ledger line %d: %w", lineNo, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	return records, nil
}

// Save rewrites the whole file. The records are written to a temporary file
// in the same directory which then replaces the ledger.
func (s *FileStore) Save(records []Record) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary ledger: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, r := range records {
		if _, err := w.WriteString(formatRecord(r) + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write ledger: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary ledger: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace ledger: %w", err)
	}
	return nil
}

func parseRecord(line string) (Record, error) {
	key, user, found := strings.Cut(line, ":")
	if !found {
		return Record{Key: Key(line)}, nil
	}

	user = strings.TrimSpace(user)
	if user == "" {
		return Record{Key: Key(key)}, nil
	}

	userID, err := snowflake.Parse(user)
	if err != nil {
		return Record{}, fmt.Errorf("invalid user id %q: %w", user, err)
	}
	return Record{Key: Key(key), RedeemedBy: userID}, nil
}

func formatRecord(r Record) string {
	if !r.Redeemed() {
		return r.Key.String()
	}
	return r.Key.String() + ":" + r.RedeemedBy.String()
}

// Ensure FileStore implements Store and Locker.
var (
	_ Store  = (*FileStore)(nil)
	_ Locker = (*FileStore)(nil)
)
