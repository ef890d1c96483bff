package interpreter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/doeshing/procsh/internal/application/tokenizer"
	"github.com/doeshing/procsh/internal/domain"
)

// replay re-runs history line arg. The recovered text is tokenized and
// routed from scratch, so a stored "history N" replays again.
//
// A replayed exit that succeeds does not unwind to the prompt loop: the
// exit line is recorded, the store is closed and the process terminates.
// The history log is left in place on that path.
func (s *Service) replay(ctx context.Context, arg string, depth int) (domain.Status, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		s.report(domain.MsgHistorySyntax)
		return domain.StatusFailure, fmt.Errorf("%w: %q is not a line number", domain.ErrSyntax, arg)
	}
	if depth >= s.maxReplayDepth() {
		s.report(domain.MsgReplayDepth)
		return domain.StatusFailure, fmt.Errorf("%w: %d nested replays", domain.ErrReplayDepth, depth)
	}

	raw, err := s.History.Line(ctx, n)
	if err != nil {
		s.report(domain.MsgHistoryMiss)
		return domain.StatusFailure, err
	}

	line, tokErr := tokenizer.Tokenize(raw)
	s.reportTokenizer(tokErr)
	s.Logger.Debug("replaying history", map[string]interface{}{
		"line":    n,
		"command": raw,
		"depth":   depth + 1,
	})

	status, err := s.dispatch(ctx, line, depth+1)
	if status == domain.StatusTerminate && Classify(line).Kind == domain.KindExit {
		s.record(ctx, line)
		if closeErr := s.History.Close(); closeErr != nil {
			s.Logger.Error("history close failed", closeErr, nil)
		}
		s.terminate(domain.StatusOK.ExitCode())
	}
	return status, err
}
