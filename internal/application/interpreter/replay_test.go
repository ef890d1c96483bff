package interpreter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/procsh/internal/domain"
)

func TestReplayRunsStoredCommand(t *testing.T) {
	h := newHarness(t)
	h.seed(t, domain.CommandLine{"echo", "hello world"})

	status, err := h.svc.Execute(context.Background(), "history 1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOK, status)
	assert.Equal(t, []domain.CommandLine{{"echo", "hello world"}}, h.exec.calls)
	assert.Equal(t, []string{`1 echo "hello world"`, "2 history 1"}, h.logLines(t))
}

func TestReplayIsTransitive(t *testing.T) {
	h := newHarness(t)
	h.seed(t,
		domain.CommandLine{"date"},
		domain.CommandLine{"history", "1"},
		domain.CommandLine{"history", "2"},
	)

	_, err := h.svc.Execute(context.Background(), "history 3")
	require.NoError(t, err)
	assert.Equal(t, []domain.CommandLine{{"date"}}, h.exec.calls)
	assert.Equal(t, "4 history 3", h.logLines(t)[3])
}

func TestReplayMissingLineStillRecordsOriginal(t *testing.T) {
	h := newHarness(t)
	h.seed(t, domain.CommandLine{"ls"}, domain.CommandLine{"pwd"})

	status, err := h.svc.Execute(context.Background(), "history 5")
	assert.ErrorIs(t, err, domain.ErrHistoryMiss)
	assert.Equal(t, domain.StatusFailure, status)
	assert.Contains(t, h.errOut.String(), domain.MsgHistoryMiss)
	assert.Empty(t, h.exec.calls)
	assert.Equal(t, []string{"1 ls", "2 pwd", "3 history 5"}, h.logLines(t))
}

func TestReplayWithoutLog(t *testing.T) {
	h := newHarness(t)

	status, err := h.svc.Dispatch(context.Background(), domain.CommandLine{"history", "1"})
	assert.ErrorIs(t, err, domain.ErrHistoryMiss)
	assert.Equal(t, domain.StatusFailure, status)
}

func TestReplayOfFailingBuiltinReturnsItsStatus(t *testing.T) {
	h := newHarness(t)
	h.seed(t, domain.CommandLine{"exit", "now"})

	status, err := h.svc.Execute(context.Background(), "history 1")
	assert.ErrorIs(t, err, domain.ErrSyntax)
	assert.Equal(t, domain.StatusFailure, status)
	assert.Empty(t, h.exitCodes)
	assert.Equal(t, "2 history 1", h.logLines(t)[1])
}

func TestReplayedExitTerminatesProcess(t *testing.T) {
	h := newHarness(t)
	h.seed(t, domain.CommandLine{"ls"}, domain.CommandLine{"exit"})

	status, err := h.svc.Execute(context.Background(), "history 2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTerminate, status)
	assert.Equal(t, []int{0}, h.exitCodes)

	lines := h.logLines(t)
	assert.Equal(t, []string{"1 ls", "2 exit", "3 exit"}, lines)
}

func TestNestedReplayedExitTerminatesOnce(t *testing.T) {
	h := newHarness(t)
	h.seed(t, domain.CommandLine{"exit"}, domain.CommandLine{"history", "1"})

	status, err := h.svc.Execute(context.Background(), "history 2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTerminate, status)
	assert.Equal(t, []int{0}, h.exitCodes)

	lines := h.logLines(t)
	assert.Equal(t, "3 exit", lines[len(lines)-1])
	assert.Len(t, lines, 3)
}

func TestReplayCycleIsBounded(t *testing.T) {
	h := newHarness(t)
	h.svc.MaxReplayDepth = 5
	h.seed(t, domain.CommandLine{"history", "1"})

	status, err := h.svc.Dispatch(context.Background(), domain.CommandLine{"history", "1"})
	assert.ErrorIs(t, err, domain.ErrReplayDepth)
	assert.Equal(t, domain.StatusFailure, status)
	assert.Contains(t, h.errOut.String(), domain.MsgReplayDepth)
}

func TestReplayCycleUsesDefaultBound(t *testing.T) {
	h := newHarness(t)
	h.seed(t, domain.CommandLine{"history", "2"}, domain.CommandLine{"history", "1"})

	_, err := h.svc.Dispatch(context.Background(), domain.CommandLine{"history", "1"})
	assert.ErrorIs(t, err, domain.ErrReplayDepth)
}
