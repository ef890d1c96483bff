package interpreter

import (
	"context"

	"github.com/doeshing/procsh/internal/domain"
)

// Classify routes a line by exact match of its first token. "/proc/x" as
// a single token is an external command, not a /proc read.
func Classify(line domain.CommandLine) domain.Command {
	kind := domain.KindExternal
	switch line.Name() {
	case "":
		kind = domain.KindNoop
	case domain.BuiltinExit:
		kind = domain.KindExit
	case domain.BuiltinProc:
		kind = domain.KindProcRead
	case domain.BuiltinHistory:
		kind = domain.KindHistory
	}
	return domain.Command{Kind: kind, Line: line}
}

// Dispatch runs one tokenized line without recording it.
func (s *Service) Dispatch(ctx context.Context, line domain.CommandLine) (domain.Status, error) {
	return s.dispatch(ctx, line, 0)
}

// dispatch is re-entered by history replay with depth+1.
func (s *Service) dispatch(ctx context.Context, line domain.CommandLine, depth int) (domain.Status, error) {
	cmd := Classify(line)
	switch cmd.Kind {
	case domain.KindNoop:
		return domain.StatusOK, nil
	case domain.KindExit:
		return s.exit(cmd.Line)
	case domain.KindProcRead:
		return s.procRead(ctx, cmd.Line)
	case domain.KindHistory:
		return s.history(ctx, cmd.Line, depth)
	default:
		return s.Executor.Run(ctx, cmd.Line)
	}
}
