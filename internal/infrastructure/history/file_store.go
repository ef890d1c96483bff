package history

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/doeshing/procsh/internal/domain"
	"github.com/doeshing/procsh/internal/ports"
)

// FileStore keeps the session history as a numbered text log, one
// "<n> <command>" entry per line.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path. The file is created on the
// first Append.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = domain.DefaultHistoryFile
	}
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Append implements ports.HistoryStore. The next number is one past the
// current line count; an unreadable log counts as empty.
func (f *FileStore) Append(_ context.Context, line domain.CommandLine) (domain.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	_ = f.scan(func(int, string) bool {
		count++
		return true
	})

	entry := domain.HistoryEntry{Number: count + 1, Text: line.Encode()}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return domain.HistoryEntry{}, err
		}
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.HistoryFilePermissions)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	defer file.Close()

	if _, err := io.WriteString(file, entry.String()+"\n"); err != nil {
		return domain.HistoryEntry{}, err
	}
	return entry, nil
}

// List implements ports.HistoryStore.
func (f *FileStore) List(_ context.Context, out io.Writer) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrHistoryEmpty, err)
	}
	defer file.Close()

	_, err = io.Copy(out, file)
	return err
}

// Line implements ports.HistoryStore.
func (f *FileStore) Line(_ context.Context, n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: %d", domain.ErrHistoryMiss, n)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var (
		text  string
		found bool
	)
	err := f.scan(func(index int, raw string) bool {
		if index != n {
			return true
		}
		_, text, _ = strings.Cut(raw, " ")
		found = true
		return false
	})
	if err != nil || !found {
		return "", fmt.Errorf("%w: %d", domain.ErrHistoryMiss, n)
	}
	return text, nil
}

// Clear removes the history file.
func (f *FileStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrHistoryEmpty, f.path)
		}
		return err
	}
	return nil
}

// Close implements ports.HistoryStore.
func (f *FileStore) Close() error {
	return nil
}

// scan calls fn with every line of the log (1-based, newline stripped)
// until fn returns false. A final line without newline still counts.
func (f *FileStore) scan(fn func(index int, raw string) bool) error {
	file, err := os.Open(f.path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	for index := 1; ; index++ {
		raw, err := reader.ReadString('\n')
		if raw != "" {
			if !fn(index, strings.TrimRight(raw, "\r\n")) {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

var _ ports.HistoryStore = (*FileStore)(nil)
