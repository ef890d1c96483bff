package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/doeshing/procsh/internal/application/tokenizer"
	"github.com/doeshing/procsh/internal/domain"
)

// Run prompts for lines until exit succeeds or input ends, and returns the
// process exit code.
func (s *Service) Run(ctx context.Context) (int, error) {
	if err := s.validate(); err != nil {
		return 1, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return 1, err
		}
		if s.Prompter != nil {
			s.Prompter.Prompt(s.out())
		}

		raw, readErr := s.Reader.ReadLine(ctx)
		if readErr != nil && (!errors.Is(readErr, io.EOF) || raw == "") {
			if errors.Is(readErr, io.EOF) {
				fmt.Fprintln(s.out())
				return domain.StatusOK.ExitCode(), nil
			}
			return 1, fmt.Errorf("read line: %w", readErr)
		}

		status, _ := s.Execute(ctx, raw)
		if s.terminated || status == domain.StatusTerminate || readErr != nil {
			return domain.StatusOK.ExitCode(), nil
		}
	}
}

// Execute tokenizes, dispatches and records one input line. The line is
// recorded whatever the outcome, unless a replayed exit already ended the
// session.
func (s *Service) Execute(ctx context.Context, raw string) (domain.Status, error) {
	line, tokErr := tokenizer.Tokenize(raw)
	s.reportTokenizer(tokErr)

	status, err := s.dispatch(ctx, line, 0)
	if err != nil {
		s.Logger.Debug("dispatch failed", map[string]interface{}{
			"command": line.Name(),
			"status":  status.String(),
			"error":   err.Error(),
		})
	}
	if s.terminated {
		return status, err
	}

	s.record(ctx, line)
	return status, err
}

// reportTokenizer prints every non-fatal tokenizer problem on its own line.
func (s *Service) reportTokenizer(err error) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			s.report(e.Error())
		}
		return
	}
	s.report(err.Error())
}
