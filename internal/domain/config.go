package domain

// Config mirrors ~/.procsh/config.yaml.
type Config struct {
	Prompt   string          `yaml:"prompt"`
	Color    string          `yaml:"color"`
	ProcRoot string          `yaml:"proc_root"`
	History  HistorySettings `yaml:"history"`
	Replay   ReplaySettings  `yaml:"replay"`
}

// HistorySettings selects and configures the history backend.
type HistorySettings struct {
	Backend    string        `yaml:"backend"`
	Path       string        `yaml:"path"`
	SQLitePath string        `yaml:"sqlite_path"`
	Redis      RedisSettings `yaml:"redis"`
}

// RedisSettings configures the redis history backend.
type RedisSettings struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// ReplaySettings bounds history replay.
type ReplaySettings struct {
	MaxDepth int `yaml:"max_depth"`
}
