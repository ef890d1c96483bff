package history

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"

	"github.com/doeshing/procsh/internal/domain"
	"github.com/doeshing/procsh/internal/ports"
)

// RedisStore keeps each session's history in a redis list. The list index
// is the line number, so RPUSH hands out numbers atomically.
type RedisStore struct {
	client    *backend.Client
	prefix    string
	sessionID string
	owned     bool
}

type RedisOption func(*RedisStore)

// WithPrefix sets the key prefix for session lists.
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithSessionID pins the session id instead of generating one.
func WithSessionID(id string) RedisOption {
	return func(s *RedisStore) {
		s.sessionID = id
	}
}

// NewRedisStore dials a new client for the store.
func NewRedisStore(address, password string, db int, opts ...RedisOption) *RedisStore {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	store := NewRedisStoreFromClient(rdb, opts...)
	store.owned = true
	return store
}

// NewRedisStoreFromClient wraps an existing client. The caller keeps
// ownership of the client.
func NewRedisStoreFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	store := &RedisStore{
		client: client,
		prefix: domain.DefaultRedisPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	if store.sessionID == "" {
		store.sessionID = uuid.NewString()
	}
	return store
}

// Key returns the redis key holding this session's list.
func (s *RedisStore) Key() string {
	return s.prefix + s.sessionID
}

// Append implements ports.HistoryStore.
func (s *RedisStore) Append(ctx context.Context, line domain.CommandLine) (domain.HistoryEntry, error) {
	text := line.Encode()
	n, err := s.client.RPush(ctx, s.Key(), text).Result()
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("failed to append to redis: %w", err)
	}
	return domain.HistoryEntry{Number: int(n), Text: text}, nil
}

// List implements ports.HistoryStore.
func (s *RedisStore) List(ctx context.Context, out io.Writer) error {
	lines, err := s.client.LRange(ctx, s.Key(), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrHistoryEmpty, err)
	}
	if len(lines) == 0 {
		return domain.ErrHistoryEmpty
	}
	for i, text := range lines {
		entry := domain.HistoryEntry{Number: i + 1, Text: text}
		if _, err := io.WriteString(out, entry.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Line implements ports.HistoryStore.
func (s *RedisStore) Line(ctx context.Context, n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: %d", domain.ErrHistoryMiss, n)
	}
	text, err := s.client.LIndex(ctx, s.Key(), int64(n-1)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", fmt.Errorf("%w: %d", domain.ErrHistoryMiss, n)
		}
		return "", fmt.Errorf("%w: %d: %v", domain.ErrHistoryMiss, n, err)
	}
	return text, nil
}

// Clear deletes the session list.
func (s *RedisStore) Clear(ctx context.Context) error {
	deleted, err := s.client.Del(ctx, s.Key()).Result()
	if err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: %s", domain.ErrHistoryEmpty, s.Key())
	}
	return nil
}

// Close closes the client when the store dialed it.
func (s *RedisStore) Close() error {
	if !s.owned {
		return nil
	}
	return s.client.Close()
}

var _ ports.HistoryStore = (*RedisStore)(nil)
