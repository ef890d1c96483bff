package main

import (
	"context"
	"os"
	"strings"

	"github.com/doeshing/procsh/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	os.Exit(cli.Execute(ctx, opts, os.Args[1:]))
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("PROCSH_DEBUG"), "1") || strings.EqualFold(os.Getenv("PROCSH_DEBUG"), "true")
}
