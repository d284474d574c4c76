package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rampx/cli/internal/cmdtypes"
	"github.com/rampx/cli/internal/output"
	"github.com/rampx/cli/internal/patterns"
)

const recommendedBadge = "⭐ RECOMMENDED"

// NewPatternsCmd creates the patterns command.
func NewPatternsCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "patterns <type>",
		Short: "List the patterns available for a project type",
		Long: fmt.Sprintf(`List the architectural patterns available for a project type.

Types: %s

Examples:
  # Browse the Laravel patterns
  rpx patterns laravel

  # Machine-readable listing
  rpx patterns node -o json`, strings.Join(patterns.TypeNames(), ", ")),
		Args: func(c *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(c, args); err != nil {
				return usageError(c.CommandPath(), err)
			}
			return nil
		},
		ValidArgsFunction: completeTypes,
		RunE: func(c *cobra.Command, args []string) error {
			return runPatterns(c.OutOrStdout(), args[0], outputFlag)
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", "text",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runPatterns(w io.Writer, typeArg, format string) error {
	t, err := patterns.ParseType(typeArg)
	if err != nil {
		return err
	}

	f, err := output.ParseOutputFormat(format)
	if err != nil {
		return usageError("rpx patterns", err)
	}

	list := patterns.Default().List(t)

	switch f {
	case output.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case output.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return err
		}
		return enc.Close()
	case output.FormatTable:
		tbl := output.NewTable("KEY", "NAME", "DESCRIPTION", "RECOMMENDED")
		for _, p := range list {
			rec := ""
			if p.Recommended {
				rec = "yes"
			}
			tbl.Row(p.Key, p.Label, p.Description, rec)
		}
		fmt.Fprintln(w, tbl.String())
		return nil
	default:
		renderPatternCards(w, t, list)
		return nil
	}
}

func renderPatternCards(w io.Writer, t patterns.ProjectType, list []patterns.Pattern) {
	fmt.Fprintln(w, output.StyleSummary.Render(fmt.Sprintf("Available patterns for %s", t)))
	fmt.Fprintln(w)

	for _, p := range list {
		card := output.Card{
			Title:     fmt.Sprintf("%s (%s)", p.Label, p.Key),
			Body:      p.Description + "\n\n" + output.StyleDim.Render(p.Structure),
			Footer:    fmt.Sprintf("rpx init %s my-project --pattern=%s", t, p.Key),
			Highlight: p.Recommended,
		}
		if p.Recommended {
			card.Badge = recommendedBadge
		}
		fmt.Fprintln(w, output.RenderCard(card))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleAction.Render("Examples"))
	for _, line := range patternExamples(t) {
		fmt.Fprintln(w, "  "+line)
	}
}

func patternExamples(t patterns.ProjectType) []string {
	first, _ := patterns.Default().First(t)
	return []string{
		output.StyleDim.Render("# Choose interactively"),
		output.StyleCommand.Render(fmt.Sprintf("rpx init %s my-project", t)),
		output.StyleDim.Render("# Pick a pattern directly"),
		output.StyleCommand.Render(fmt.Sprintf("rpx init %s my-project --pattern=%s", t, first.Key)),
		output.StyleDim.Render("# Skip all prompts"),
		output.StyleCommand.Render(fmt.Sprintf("rpx init %s my-project --yes", t)),
	}
}
