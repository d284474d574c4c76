package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	oerrors "github.com/rampx/cli/internal/errors"
	"github.com/rampx/cli/internal/output"
	"github.com/rampx/cli/internal/patterns"
)

// Huh is a terminal Chooser built on huh forms.
type Huh struct {
	theme *huh.Theme
}

// NewHuh creates a terminal chooser.
func NewHuh() *Huh {
	return &Huh{theme: newTheme()}
}

// SelectPattern shows a select list of patterns with the recommended one
// marked.
func (h *Huh) SelectPattern(ctx context.Context, t patterns.ProjectType, options []patterns.Pattern, preselected string) (patterns.Pattern, error) {
	if len(options) == 0 {
		return patterns.Pattern{}, fmt.Errorf("no patterns available for %s", t)
	}

	opts := make([]huh.Option[string], len(options))
	for i, p := range options {
		label := p.Label + " - " + p.Description
		if p.Recommended {
			label += " (recommended)"
		}
		opts[i] = huh.NewOption(label, p.Key)
	}

	selected := preselected
	sel := huh.NewSelect[string]().
		Title(fmt.Sprintf("Choose a %s project structure", t)).
		Options(opts...).
		Value(&selected)

	if err := h.run(ctx, sel); err != nil {
		return patterns.Pattern{}, err
	}

	for _, p := range options {
		if p.Key == selected {
			return p, nil
		}
	}
	return options[0], nil
}

// ResolveConflict asks whether to abort or replace an existing directory.
func (h *Huh) ResolveConflict(ctx context.Context, path string) (ConflictAction, error) {
	action := Abort
	sel := huh.NewSelect[ConflictAction]().
		Title(fmt.Sprintf("Directory %s already exists", path)).
		Description("Overwriting deletes everything in it.").
		Options(
			huh.NewOption("Cancel", Abort),
			huh.NewOption("Overwrite", Overwrite),
		).
		Value(&action)

	if err := h.run(ctx, sel); err != nil {
		return Abort, err
	}
	return action, nil
}

func (h *Huh) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(h.theme).
		WithAccessible(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return oerrors.Wrap(oerrors.ErrCancelled, "prompt cancelled")
		}
		return fmt.Errorf("prompt error: %w", err)
	}
	return nil
}

func newTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(output.ColorCyan).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(output.ColorYellow).SetString("❯ ")
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(output.ColorGreen)
	t.Focused.Description = t.Focused.Description.Foreground(output.ColorDimGray)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(output.ColorGreen).SetString("◆ ")
	return t
}

// ForTerminal returns the huh chooser when stdin and stdout are terminals
// and a Static chooser otherwise.
func ForTerminal() Chooser {
	if output.IsInteractive() {
		return NewHuh()
	}
	return &Static{}
}
