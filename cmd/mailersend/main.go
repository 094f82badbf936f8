package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fivetwenty-io/mailersend-go/cmd/mailersend/commands"
	"github.com/fivetwenty-io/mailersend-go/pkg/mailersend"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

// run returns 2 for invalid input and 1 for any other failure.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := commands.NewRootCommand(version, commit, date).ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	if errors.Is(err, mailersend.ErrValidation) {
		return 2
	}

	return 1
}
