package domain

// Reserved first tokens routed to builtins.
const (
	BuiltinExit    = "exit"
	BuiltinProc    = "/proc"
	BuiltinHistory = "history"
)

// CommandLine is an ordered sequence of argument tokens. The first token is
// the command name. An empty input line tokenizes to CommandLine{""}.
type CommandLine []string

// Name returns the first token, or "" when the line holds no tokens.
func (c CommandLine) Name() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Args returns every token after the command name.
func (c CommandLine) Args() []string {
	if len(c) < 2 {
		return nil
	}
	return c[1:]
}

// IsNoop reports whether the line carries nothing to run.
func (c CommandLine) IsNoop() bool {
	return c.Name() == ""
}

// CommandKind enumerates the routes a command line can take.
type CommandKind int

const (
	KindNoop CommandKind = iota
	KindExit
	KindProcRead
	KindHistory
	KindExternal
)

func (k CommandKind) String() string {
	switch k {
	case KindNoop:
		return "noop"
	case KindExit:
		return "exit"
	case KindProcRead:
		return "proc"
	case KindHistory:
		return "history"
	case KindExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Command is a classified command line.
type Command struct {
	Kind CommandKind
	Line CommandLine
}

// Status is the outcome of dispatching one command.
type Status int

const (
	// StatusOK means the command ran (or was a no-op) and the loop continues.
	StatusOK Status = 0
	// StatusFailure is the negative result of a failed builtin or spawn.
	StatusFailure Status = -1
	// StatusTerminate is produced only by a successful exit and ends the loop.
	StatusTerminate Status = 1 << 8
)

// ExitCode maps a final dispatch status to a process exit code.
func (s Status) ExitCode() int {
	switch s {
	case StatusOK, StatusTerminate:
		return 0
	default:
		return 1
	}
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFailure:
		return "failure"
	case StatusTerminate:
		return "terminate"
	default:
		return "unknown"
	}
}
