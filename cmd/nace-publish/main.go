package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"nacepublish.run/cmd/nace-publish/deps"
	"nacepublish.run/internal/publish"
)

const (
	// ReturnCodeSuccess is passed to os.Exit() when no error is reported.
	ReturnCodeSuccess = 0
	// ReturnCodeError is passed to os.Exit() if a command reports an error.
	ReturnCodeError = 1
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx)
	cancel()

	os.Exit(code)
}

func run(ctx context.Context) int {
	container, err := deps.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%s\n", err)
		return ReturnCodeError
	}

	code := ReturnCodeSuccess
	if err := container.Invoke(func(cmd *cobra.Command) {
		if err := cmd.ExecuteContext(ctx); err != nil {
			// failed steps have already been reported
			if _, ok := publish.CategoryOf(err); !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "\n%s\n", err)
			}
			code = ReturnCodeError
		}
	}); err != nil {
		fmt.Fprintf(os.Stderr, "\n%s\n", err)
		return ReturnCodeError
	}

	return code
}
