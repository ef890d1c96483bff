package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/doeshing/procsh/internal/domain"
	"github.com/doeshing/procsh/internal/ports"
)

// SQLiteStore persists history in a SQLite database. When the database
// cannot be opened it falls back to a text log next to it.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	mu       sync.Mutex
	fallback *FileStore
}

// NewSQLiteStore creates (or opens) the database at path.
func NewSQLiteStore(path string) *SQLiteStore {
	if path == "" {
		path = domain.DefaultHistoryDB
	}
	store := &SQLiteStore{path: path}
	if err := store.open(); err != nil {
		store.fallback = NewFileStore(strings.TrimSuffix(path, filepath.Ext(path)))
	}
	return store
}

func (s *SQLiteStore) open() error {
	if dir := filepath.Dir(s.path); dir != "." {
		_ = os.MkdirAll(dir, domain.DirectoryPermissions)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS history (
		number INTEGER PRIMARY KEY,
		line   TEXT NOT NULL
	);`); err != nil {
		db.Close()
		return err
	}
	s.db = db
	return nil
}

// Append inserts the next numbered line inside a transaction.
func (s *SQLiteStore) Append(ctx context.Context, line domain.CommandLine) (domain.HistoryEntry, error) {
	if s.fallback != nil {
		return s.fallback.Append(ctx, line)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureOpen(); err != nil {
		return domain.HistoryEntry{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM history").Scan(&count); err != nil {
		return domain.HistoryEntry{}, err
	}
	entry := domain.HistoryEntry{Number: count + 1, Text: line.Encode()}
	if _, err := tx.ExecContext(ctx, "INSERT INTO history (number, line) VALUES (?, ?)", entry.Number, entry.Text); err != nil {
		return domain.HistoryEntry{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.HistoryEntry{}, err
	}
	return entry, nil
}

// List writes every row in number order.
func (s *SQLiteStore) List(ctx context.Context, out io.Writer) error {
	if s.fallback != nil {
		return s.fallback.List(ctx, out)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureOpen(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrHistoryEmpty, err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT number, line FROM history ORDER BY number")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrHistoryEmpty, err)
	}
	defer rows.Close()

	listed := 0
	for rows.Next() {
		var entry domain.HistoryEntry
		if err := rows.Scan(&entry.Number, &entry.Text); err != nil {
			return err
		}
		if _, err := io.WriteString(out, entry.String()+"\n"); err != nil {
			return err
		}
		listed++
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if listed == 0 {
		return domain.ErrHistoryEmpty
	}
	return nil
}

// Line returns the command text stored under number n.
func (s *SQLiteStore) Line(ctx context.Context, n int) (string, error) {
	if s.fallback != nil {
		return s.fallback.Line(ctx, n)
	}
	if n < 1 {
		return "", fmt.Errorf("%w: %d", domain.ErrHistoryMiss, n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureOpen(); err != nil {
		return "", fmt.Errorf("%w: %d", domain.ErrHistoryMiss, n)
	}

	var text string
	err := s.db.QueryRowContext(ctx, "SELECT line FROM history WHERE number = ?", n).Scan(&text)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %d: %v", domain.ErrHistoryMiss, n, err)
		}
		return "", fmt.Errorf("%w: %d", domain.ErrHistoryMiss, n)
	}
	return text, nil
}

// Clear deletes every row and removes the database file. The database is
// reopened on the next Append.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if s.fallback != nil {
		return s.fallback.Clear(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return fmt.Errorf("%w: %s", domain.ErrHistoryEmpty, s.path)
	}

	res, err := s.db.ExecContext(ctx, "DELETE FROM history")
	if err != nil {
		return err
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	for _, suffix := range []string{"", "-journal", "-wal", "-shm"} {
		if err := os.Remove(s.path + suffix); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrHistoryEmpty, s.path)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.fallback != nil {
		return s.fallback.Close()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}
	return s.open()
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)
