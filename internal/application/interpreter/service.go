// Package interpreter is the command core: it routes tokenized lines to
// builtins or external programs, replays history entries and drives the
// prompt loop.
package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/doeshing/procsh/internal/domain"
	"github.com/doeshing/procsh/internal/ports"
)

// Service holds the collaborators of one interpreter session.
type Service struct {
	History  ports.HistoryStore
	Executor ports.ProcessExecutor
	Reader   ports.LineReader
	Prompter ports.Prompter
	Logger   ports.Logger

	// Terminate ends the process when a replayed exit succeeds.
	// Defaults to os.Exit.
	Terminate ports.Terminator

	Out io.Writer
	Err io.Writer

	// ProcRoot is the directory read by the /proc builtin.
	ProcRoot string
	// MaxReplayDepth bounds nested history replays.
	MaxReplayDepth int

	terminated bool
}

func (s *Service) validate() error {
	if s.History == nil || s.Executor == nil || s.Reader == nil || s.Logger == nil {
		return errors.New("interpreter.Service dependencies not satisfied")
	}
	return nil
}

// Shutdown deletes the session history and releases the store. It runs
// once at normal process exit, however the loop ended.
func (s *Service) Shutdown(ctx context.Context) error {
	if s.History == nil {
		return errors.New("history store unavailable")
	}
	err := s.History.Clear(ctx)
	if err != nil {
		s.report(domain.MsgHistoryDeleteFail)
		s.Logger.Debug("history clear failed", map[string]interface{}{"error": err.Error()})
	} else {
		fmt.Fprintln(s.out(), domain.MsgHistoryDeleted)
	}
	if closeErr := s.History.Close(); closeErr != nil {
		s.Logger.Error("history close failed", closeErr, nil)
	}
	return err
}

// record appends a dispatched line to history. Failures are logged and
// never interrupt the session.
func (s *Service) record(ctx context.Context, line domain.CommandLine) {
	entry, err := s.History.Append(ctx, line)
	if err != nil {
		s.Logger.Error("history append failed", err, nil)
		return
	}
	s.Logger.Debug("history recorded", map[string]interface{}{"line": entry.Number})
}

func (s *Service) report(msg string) {
	if s.Prompter != nil {
		s.Prompter.Error(s.errOut(), msg)
		return
	}
	fmt.Fprintln(s.errOut(), msg)
}

func (s *Service) terminate(code int) {
	s.terminated = true
	if s.Terminate != nil {
		s.Terminate(code)
		return
	}
	os.Exit(code)
}

func (s *Service) out() io.Writer {
	if s.Out == nil {
		return os.Stdout
	}
	return s.Out
}

func (s *Service) errOut() io.Writer {
	if s.Err == nil {
		return os.Stderr
	}
	return s.Err
}

func (s *Service) procRoot() string {
	if s.ProcRoot == "" {
		return domain.DefaultProcRoot
	}
	return s.ProcRoot
}

func (s *Service) maxReplayDepth() int {
	if s.MaxReplayDepth <= 0 {
		return domain.DefaultReplayDepth
	}
	return s.MaxReplayDepth
}
