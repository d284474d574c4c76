package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes an action with a spinner and returns the action's
// error. Without a terminal the action runs directly.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if !IsTTY() {
		return action()
	}

	errCh := make(chan error, 1)

	spinnerErr := spinner.New().
		Title(cfg.title).
		Action(func() {
			errCh <- action()
		}).
		Run()

	select {
	case err := <-errCh:
		return err
	default:
	}

	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return <-errCh
}

// Step runs action under a spinner titled title. It matches the step hook
// signature used by the scaffolding orchestrator.
func Step(ctx context.Context) func(title string, action func() error) error {
	return func(title string, action func() error) error {
		return RunWithSpinner(ctx, action, WithTitle(title))
	}
}
