// Package main is the entry point for the rpx CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rampx/cli/internal/cmd"
	oerrors "github.com/rampx/cli/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.Execute(ctx, os.Args[1:])
	stop()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	os.Exit(oerrors.ExitGeneralError)
}
