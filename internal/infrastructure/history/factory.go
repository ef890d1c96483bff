package history

import (
	"fmt"
	"strings"

	"github.com/doeshing/procsh/internal/domain"
	"github.com/doeshing/procsh/internal/ports"
)

// New builds the history store selected by settings.Backend.
func New(settings domain.HistorySettings) (ports.HistoryStore, error) {
	switch strings.ToLower(strings.TrimSpace(settings.Backend)) {
	case "", domain.HistoryBackendFile:
		return NewFileStore(settings.Path), nil
	case domain.HistoryBackendSQLite:
		return NewSQLiteStore(settings.SQLitePath), nil
	case domain.HistoryBackendRedis:
		redis := settings.Redis
		if redis.Addr == "" {
			return nil, fmt.Errorf("history backend redis requires an address")
		}
		var opts []RedisOption
		if redis.Prefix != "" {
			opts = append(opts, WithPrefix(redis.Prefix))
		}
		return NewRedisStore(redis.Addr, redis.Password, redis.DB, opts...), nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", settings.Backend)
	}
}
