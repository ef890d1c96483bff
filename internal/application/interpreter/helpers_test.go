package interpreter

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/doeshing/procsh/internal/domain"
	"github.com/doeshing/procsh/internal/infrastructure/history"
	"github.com/doeshing/procsh/internal/pkg/logger"
)

type stubExecutor struct {
	calls  []domain.CommandLine
	status domain.Status
	err    error
}

func (s *stubExecutor) Run(_ context.Context, line domain.CommandLine) (domain.Status, error) {
	s.calls = append(s.calls, line)
	return s.status, s.err
}

type scriptedReader struct {
	lines []string
}

func (r *scriptedReader) ReadLine(context.Context) (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line + "\n", nil
}

type harness struct {
	svc         *Service
	exec        *stubExecutor
	store       *history.FileStore
	out         *bytes.Buffer
	errOut      *bytes.Buffer
	exitCodes   []int
	historyPath string
}

func newHarness(t *testing.T, input ...string) *harness {
	t.Helper()
	h := &harness{
		exec:        &stubExecutor{},
		out:         &bytes.Buffer{},
		errOut:      &bytes.Buffer{},
		historyPath: filepath.Join(t.TempDir(), ".421sh"),
	}
	h.store = history.NewFileStore(h.historyPath)
	h.svc = &Service{
		History:   h.store,
		Executor:  h.exec,
		Reader:    &scriptedReader{lines: input},
		Logger:    logger.NewNop(),
		Terminate: func(code int) { h.exitCodes = append(h.exitCodes, code) },
		Out:       h.out,
		Err:       h.errOut,
	}
	return h
}

func (h *harness) seed(t *testing.T, lines ...domain.CommandLine) {
	t.Helper()
	for _, line := range lines {
		_, err := h.store.Append(context.Background(), line)
		require.NoError(t, err)
	}
}

func (h *harness) logLines(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(h.historyPath)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}
