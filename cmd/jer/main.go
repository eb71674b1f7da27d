package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/jer-go/internal/infrastructure/cli"
	"github.com/doeshing/jer-go/internal/pkg/cleanup"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()
	root, session := cli.NewRootCmd(ctx, cli.Options{Verbose: isVerbose()})
	// deferred removals log through the session so --debug applies
	defer func() { cleanup.Run(session.Logger()) }()
	defer session.Close()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("JER_DEBUG"), "1") || strings.EqualFold(os.Getenv("JER_DEBUG"), "true")
}
