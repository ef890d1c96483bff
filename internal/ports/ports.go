// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The interpreter core in internal/application depends only on these
// contracts. Adapters in internal/infrastructure implement them:
//   - HistoryStore: text log, sqlite or redis backed session history
//   - ProcessExecutor: spawns external programs and waits for them
//   - LineReader: acquires one line of input per prompt
package ports

import (
	"context"
	"io"

	"github.com/doeshing/procsh/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.procsh/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// HistoryStore is the append-only, line-numbered session log.
// Line numbers start at 1 and grow by exactly one per Append.
type HistoryStore interface {
	Append(ctx context.Context, line domain.CommandLine) (domain.HistoryEntry, error)
	// List writes every stored line, number prefix included, one per line.
	List(ctx context.Context, out io.Writer) error
	// Line returns the raw command text stored at number n.
	Line(ctx context.Context, n int) (string, error)
	// Clear deletes the log entirely.
	Clear(ctx context.Context) error
	Close() error
}

// ProcessExecutor runs an external program and blocks until it ends.
type ProcessExecutor interface {
	Run(ctx context.Context, line domain.CommandLine) (domain.Status, error)
}

// LineReader acquires one line of input. It returns io.EOF once input is exhausted.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Prompter renders the prompt and user-facing error messages.
type Prompter interface {
	Prompt(out io.Writer)
	Error(errOut io.Writer, msg string)
}

// Terminator ends the process immediately with the given code.
type Terminator func(code int)

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
