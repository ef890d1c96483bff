package domain

import "errors"

var (
	// ErrSyntax marks a builtin invoked with the wrong number of arguments.
	ErrSyntax = errors.New("invalid syntax")
	// ErrSpawn marks a failure to start a child process.
	ErrSpawn = errors.New("spawn failed")
	// ErrHistoryMiss marks a history line that does not exist.
	ErrHistoryMiss = errors.New("line does not exist")
	// ErrHistoryEmpty marks a history log that has not been created yet.
	ErrHistoryEmpty = errors.New("no history")
	// ErrReplayDepth marks a replay chain nested deeper than allowed.
	ErrReplayDepth = errors.New("replay depth exceeded")
	// ErrUsage marks startup arguments passed to the interpreter.
	ErrUsage = errors.New("too many arguments")
)
