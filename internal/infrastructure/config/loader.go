package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/procsh/assets"
	"github.com/doeshing/procsh/internal/domain"
	"github.com/doeshing/procsh/internal/pkg/filesystem"
	"github.com/doeshing/procsh/internal/ports"
)

// Environment variables read by the loader.
const (
	EnvConfigPath     = "PROCSH_CONFIG"
	EnvHistoryBackend = "PROCSH_HISTORY_BACKEND"
	EnvHistoryPath    = "PROCSH_HISTORY_PATH"
	EnvRedisAddr      = "PROCSH_REDIS_ADDR"
)

// FileLoader loads YAML configuration from ~/.procsh/config.yaml (overridable via PROCSH_CONFIG).
// A missing file is not an error and is never created: the embedded defaults apply.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	cfg, err := defaultConfig()
	if err != nil {
		return domain.Config{}, err
	}

	path := l.resolvePath()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return domain.Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return hydrateDefaults(cfg), nil
}

// Path returns the file the loader reads.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".procsh", "config.yaml")
}

func defaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *domain.Config) {
	if backend := os.Getenv(EnvHistoryBackend); backend != "" {
		cfg.History.Backend = backend
	}
	if path := os.Getenv(EnvHistoryPath); path != "" {
		cfg.History.Path = path
	}
	if addr := os.Getenv(EnvRedisAddr); addr != "" {
		cfg.History.Redis.Addr = addr
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	cfg.History.Backend = strings.ToLower(strings.TrimSpace(cfg.History.Backend))
	if cfg.History.Backend == "" {
		cfg.History.Backend = domain.HistoryBackendFile
	}
	if cfg.History.Path == "" {
		cfg.History.Path = domain.DefaultHistoryFile
	}
	if cfg.History.SQLitePath == "" {
		cfg.History.SQLitePath = domain.DefaultHistoryDB
	}
	if cfg.History.Redis.Prefix == "" {
		cfg.History.Redis.Prefix = domain.DefaultRedisPrefix
	}
	if cfg.Prompt == "" {
		cfg.Prompt = domain.DefaultPrompt
	}
	if cfg.ProcRoot == "" {
		cfg.ProcRoot = domain.DefaultProcRoot
	}
	if cfg.Color == "" {
		cfg.Color = domain.ColorAuto
	}
	if cfg.Replay.MaxDepth <= 0 {
		cfg.Replay.MaxDepth = domain.DefaultReplayDepth
	}
	cfg.History.Path = filesystem.ExpandPath(cfg.History.Path)
	cfg.History.SQLitePath = filesystem.ExpandPath(cfg.History.SQLitePath)
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
