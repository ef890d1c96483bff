package interpreter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/doeshing/procsh/internal/domain"
)

// exit succeeds only without arguments.
func (s *Service) exit(line domain.CommandLine) (domain.Status, error) {
	if len(line) > 1 {
		s.report(domain.MsgExitArgs)
		return domain.StatusFailure, fmt.Errorf("%w: exit takes no arguments, got %d", domain.ErrSyntax, len(line)-1)
	}
	return domain.StatusTerminate, nil
}

// procRead prints <proc root>/<name> by running cat on it. Read errors
// surface through cat's own stderr.
func (s *Service) procRead(ctx context.Context, line domain.CommandLine) (domain.Status, error) {
	switch {
	case len(line) < 2:
		s.report(domain.MsgProcMissing)
		return domain.StatusFailure, fmt.Errorf("%w: /proc needs a file name", domain.ErrSyntax)
	case len(line) > 2:
		s.report(domain.MsgTooManyArgs)
		return domain.StatusFailure, fmt.Errorf("%w: /proc takes one file name, got %d", domain.ErrSyntax, len(line)-1)
	}

	path := strings.TrimRight(s.procRoot(), "/") + "/" + line[1]
	return s.Executor.Run(ctx, domain.CommandLine{"cat", path})
}

// history lists the log with no argument and replays a line with one.
func (s *Service) history(ctx context.Context, line domain.CommandLine, depth int) (domain.Status, error) {
	switch len(line) {
	case 1:
		return s.listHistory(ctx)
	case 2:
		return s.replay(ctx, line[1], depth)
	default:
		s.report(domain.MsgHistorySyntax)
		return domain.StatusFailure, fmt.Errorf("%w: history takes at most one line number, got %d", domain.ErrSyntax, len(line)-1)
	}
}

func (s *Service) listHistory(ctx context.Context) (domain.Status, error) {
	if err := s.History.List(ctx, s.out()); err != nil {
		s.report(domain.MsgNoHistory)
		if !errors.Is(err, domain.ErrHistoryEmpty) {
			s.Logger.Error("history list failed", err, nil)
		}
		return domain.StatusFailure, err
	}
	return domain.StatusOK, nil
}
