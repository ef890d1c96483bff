package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/doeshing/procsh/internal/domain"
	"github.com/doeshing/procsh/internal/ports"
)

// LocalExecutor spawns programs on the host and waits for them. The
// child's exit status is never propagated: only a failure to create the
// process at all is reported to the caller.
type LocalExecutor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger ports.Logger
}

// NewLocalExecutor builds an executor wired to the given streams. Nil
// streams default to the process's own stdio.
func NewLocalExecutor(stdin io.Reader, stdout, stderr io.Writer, logger ports.Logger) *LocalExecutor {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &LocalExecutor{stdin: stdin, stdout: stdout, stderr: stderr, logger: logger}
}

// Run implements ports.ProcessExecutor. The first token is both the
// program looked up on PATH and argv[0].
func (e *LocalExecutor) Run(ctx context.Context, line domain.CommandLine) (domain.Status, error) {
	if line.IsNoop() {
		return domain.StatusOK, nil
	}

	c := exec.CommandContext(ctx, line.Name(), line.Args()...)
	c.Stdin = e.stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr

	start := time.Now()
	if err := c.Start(); err != nil {
		if isSpawnFailure(err) {
			fmt.Fprintln(e.stderr, domain.MsgSpawnFailed)
			return domain.StatusFailure, fmt.Errorf("%w: %v", domain.ErrSpawn, err)
		}
		// The program could not be executed; like a child that failed to
		// exec, this is only reported on the error stream.
		fmt.Fprintln(e.stderr, domain.MsgExecFailed)
		e.debug("exec failed", map[string]interface{}{"command": line.Name(), "error": err.Error()})
		return domain.StatusOK, nil
	}

	err := c.Wait()
	fields := map[string]interface{}{
		"command":     line.Name(),
		"duration_ms": time.Since(start).Milliseconds(),
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		fields["exit_code"] = exitErr.ExitCode()
	}
	e.debug("child finished", fields)
	return domain.StatusOK, nil
}

func (e *LocalExecutor) debug(msg string, fields map[string]interface{}) {
	if e.logger != nil {
		e.logger.Debug(msg, fields)
	}
}

// isSpawnFailure separates resource exhaustion while creating the child
// from errors about the program itself.
func isSpawnFailure(err error) bool {
	return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.ENOMEM)
}

var _ ports.ProcessExecutor = (*LocalExecutor)(nil)
