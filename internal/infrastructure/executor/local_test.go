package executor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/procsh/internal/domain"
	"github.com/doeshing/procsh/internal/pkg/logger"
)

func newTestExecutor() (*LocalExecutor, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return NewLocalExecutor(strings.NewReader(""), &stdout, &stderr, logger.NewNop()), &stdout, &stderr
}

func TestRunCapturesChildOutput(t *testing.T) {
	exec, stdout, stderr := newTestExecutor()

	status, err := exec.Run(context.Background(), domain.CommandLine{"echo", "hello", "world"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOK, status)
	assert.Equal(t, "hello world\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunIgnoresChildExitStatus(t *testing.T) {
	exec, _, _ := newTestExecutor()

	status, err := exec.Run(context.Background(), domain.CommandLine{"false"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOK, status)
}

func TestRunReportsMissingProgramOnlyOnStderr(t *testing.T) {
	exec, stdout, stderr := newTestExecutor()

	status, err := exec.Run(context.Background(), domain.CommandLine{"procsh-definitely-missing-binary"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOK, status)
	assert.Empty(t, stdout.String())
	assert.Equal(t, domain.MsgExecFailed+"\n", stderr.String())
}

func TestRunReportsNonExecutableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script")
	require.NoError(t, os.WriteFile(path, []byte("not a program"), 0o644))
	exec, _, stderr := newTestExecutor()

	status, err := exec.Run(context.Background(), domain.CommandLine{path})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOK, status)
	assert.Contains(t, stderr.String(), domain.MsgExecFailed)
}

func TestRunNoopDoesNothing(t *testing.T) {
	exec, stdout, stderr := newTestExecutor()

	status, err := exec.Run(context.Background(), domain.CommandLine{""})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOK, status)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunPassesStdin(t *testing.T) {
	var stdout bytes.Buffer
	exec := NewLocalExecutor(strings.NewReader("piped\n"), &stdout, &bytes.Buffer{}, nil)

	_, err := exec.Run(context.Background(), domain.CommandLine{"cat"})
	require.NoError(t, err)
	assert.Equal(t, "piped\n", stdout.String())
}
