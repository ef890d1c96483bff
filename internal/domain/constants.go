package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// HistoryFilePermissions is the permission for the history log (rw-r--r--)
	HistoryFilePermissions = 0o644
)

// History backends
const (
	HistoryBackendFile   = "file"
	HistoryBackendSQLite = "sqlite"
	HistoryBackendRedis  = "redis"
)

// Defaults
const (
	// DefaultPrompt is printed before every line is read
	DefaultPrompt = "bash >> "
	// DefaultProcRoot is the pseudo-filesystem read by the /proc builtin
	DefaultProcRoot = "/proc"
	// DefaultHistoryFile is the session log, relative to the working directory
	DefaultHistoryFile = ".421sh"
	// DefaultHistoryDB is the sqlite database, relative to the working directory
	DefaultHistoryDB = ".421sh.db"
	// DefaultRedisPrefix namespaces session history lists
	DefaultRedisPrefix = "procsh:history:"
	// DefaultReplayDepth bounds nested history replays
	DefaultReplayDepth = 64
	// ColorAuto enables styling only when stdout is a terminal
	ColorAuto = "auto"
)

// User-facing messages
const (
	MsgUsage             = "Invalid syntax. Too many arguments in function call!"
	MsgExecFailed        = "Command could not be executed. Invalid syntax."
	MsgSpawnFailed       = "Command could not be executed. Failed fork() call."
	MsgProcMissing       = "Invalid syntax. Missing file destination for /proc"
	MsgTooManyArgs       = "Invalid syntax. Too many arguments."
	MsgNoHistory         = "No history to display."
	MsgHistorySyntax     = "Invalid syntax. Input a single line number alongside history"
	MsgHistoryMiss       = "Error using history. Line number does not exist"
	MsgReplayDepth       = "Error using history. Replay nested too deeply"
	MsgExitArgs          = "Invalid syntax. exit takes no arguments"
	MsgHistoryDeleted    = "Exiting terminal & deleting history..."
	MsgHistoryDeleteFail = "Error deleting history file"
)
