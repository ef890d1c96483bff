package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/doeshing/procsh/internal/application/interpreter"
	"github.com/doeshing/procsh/internal/domain"
	"github.com/doeshing/procsh/internal/infrastructure/config"
	"github.com/doeshing/procsh/internal/infrastructure/executor"
	"github.com/doeshing/procsh/internal/infrastructure/history"
	"github.com/doeshing/procsh/internal/infrastructure/terminal"
	"github.com/doeshing/procsh/internal/pkg/logger"
	"github.com/doeshing/procsh/internal/ports"
)

// IO carries the streams the session reads from and writes to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	Logger         ports.Logger
	HistoryStore   ports.HistoryStore
	Interpreter    *interpreter.Service
}

// BuildContainer constructs the dependency graph. terminate may be nil, in
// which case a replayed exit ends the process with os.Exit.
func BuildContainer(ctx context.Context, verbose bool, stdio IO, terminate ports.Terminator) (*Container, error) {
	if stdio.In == nil {
		stdio.In = os.Stdin
	}
	if stdio.Out == nil {
		stdio.Out = os.Stdout
	}
	if stdio.Err == nil {
		stdio.Err = os.Stderr
	}

	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithWriter(stdio.Err, verbose)
	historyStore, err := history.New(cfg.History)
	if err != nil {
		return nil, fmt.Errorf("history store: %w", err)
	}
	log.Debug("history store ready", map[string]interface{}{"backend": cfg.History.Backend})

	svc := &interpreter.Service{
		History:        historyStore,
		Executor:       executor.NewLocalExecutor(stdio.In, stdio.Out, stdio.Err, log),
		Reader:         terminal.NewReader(stdio.In),
		Prompter:       terminal.NewPrompter(cfg.Prompt, cfg.Color, stdio.Out),
		Logger:         log,
		Terminate:      terminate,
		Out:            stdio.Out,
		Err:            stdio.Err,
		ProcRoot:       cfg.ProcRoot,
		MaxReplayDepth: cfg.Replay.MaxDepth,
	}

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		Logger:         log,
		HistoryStore:   historyStore,
		Interpreter:    svc,
	}, nil
}
