package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/procsh/internal/app"
	"github.com/doeshing/procsh/internal/domain"
	"github.com/doeshing/procsh/internal/ports"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	// Terminate replaces os.Exit when a replayed exit ends the session.
	Terminate ports.Terminator
	In        io.Reader
	Out       io.Writer
	Err       io.Writer
}

// NewRootCmd wires the cobra root command. The session's exit code is
// written to code once the command has run.
func NewRootCmd(opts Options, code *int) *cobra.Command {
	root := &cobra.Command{
		Use:   "procsh",
		Short: "procsh - a minimal interactive shell",
		Long:  "procsh reads command lines, runs builtins and external programs, and keeps a numbered session history.",
		// Every argument is a usage error, including ones that look like flags.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stdio := app.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
			if len(args) > 0 {
				*code = 1
				return rejectArgs(ctx, opts, stdio, len(args))
			}

			container, err := app.BuildContainer(ctx, opts.Verbose, stdio, opts.Terminate)
			if err != nil {
				*code = 1
				return err
			}
			svc := container.Interpreter

			status, runErr := svc.Run(ctx)
			if err := svc.Shutdown(ctx); err != nil {
				container.Logger.Debug("history not cleared", map[string]interface{}{"error": err})
			}
			*code = status
			return runErr
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	if opts.In != nil {
		root.SetIn(opts.In)
	}
	if opts.Out != nil {
		root.SetOut(opts.Out)
	}
	if opts.Err != nil {
		root.SetErr(opts.Err)
	}
	return root
}

// Execute runs the interpreter with the given startup arguments and returns
// the process exit code. Arguments are rejected before cobra routes them, so
// its hidden completion commands are unreachable.
func Execute(ctx context.Context, opts Options, args []string) int {
	if len(args) > 0 {
		_ = rejectArgs(ctx, opts, streams(opts), len(args))
		return 1
	}

	code := 0
	root := NewRootCmd(opts, &code)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, domain.ErrUsage) {
			fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		}
		if code == 0 {
			code = 1
		}
	}
	return code
}

// rejectArgs prints the usage error and still clears history. A store that
// cannot be built is reported like a failed delete.
func rejectArgs(ctx context.Context, opts Options, stdio app.IO, n int) error {
	fmt.Fprintln(stdio.Err, domain.MsgUsage)

	container, err := app.BuildContainer(ctx, opts.Verbose, stdio, opts.Terminate)
	if err != nil {
		fmt.Fprintln(stdio.Err, domain.MsgHistoryDeleteFail)
	} else {
		_ = container.Interpreter.Shutdown(ctx)
	}
	return fmt.Errorf("%w: %d", domain.ErrUsage, n)
}

func streams(opts Options) app.IO {
	stdio := app.IO{In: opts.In, Out: opts.Out, Err: opts.Err}
	if stdio.In == nil {
		stdio.In = os.Stdin
	}
	if stdio.Out == nil {
		stdio.Out = os.Stdout
	}
	if stdio.Err == nil {
		stdio.Err = os.Stderr
	}
	return stdio
}
