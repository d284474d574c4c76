package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rampx/cli/internal/cmdtypes"
	"github.com/rampx/cli/internal/config"
	"github.com/rampx/cli/internal/output"
	"github.com/rampx/cli/internal/patterns"
	"github.com/rampx/cli/internal/prompt"
	"github.com/rampx/cli/internal/scaffold"
	"github.com/rampx/cli/internal/toolchain"
	"github.com/rampx/cli/internal/vcs"
)

// initFlags holds the init command flag values.
type initFlags struct {
	pattern   string
	noGit     bool
	noInstall bool
	yes       bool
	force     bool
	dir       string
}

// chooserFactory picks the prompt implementation. Tests replace it.
var chooserFactory = prompt.ForTerminal

// runnerFactory builds the command runner for git and package managers.
// Tests replace it.
var runnerFactory = func() toolchain.Runner { return toolchain.ExecRunner{} }

// NewInitCmd creates the init command.
func NewInitCmd(g *cmdtypes.GlobalConfig) *cobra.Command {
	var f initFlags

	c := &cobra.Command{
		Use:   "init <type> <name>",
		Short: "Create a new project from a pattern",
		Long: fmt.Sprintf(`Create a new project of the given type in ./<name>.

Types: %s

The project name may contain lowercase letters, digits, hyphens and
underscores. Without --pattern you are asked to pick one; the recommended
pattern is preselected. With --yes the first pattern is used.

Examples:
  # Interactive pattern selection
  rpx init node my-api

  # Explicit pattern, no prompts
  rpx init flutter my_app --pattern=clean --yes

  # Generate only the files
  rpx init laravel shop --no-git --no-install`, strings.Join(patterns.TypeNames(), ", ")),
		Args: func(c *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(c, args); err != nil {
				return usageError(c.CommandPath(), err)
			}
			return nil
		},
		ValidArgsFunction: completeTypes,
		RunE: func(c *cobra.Command, args []string) error {
			return runInit(c, g, args, f)
		},
	}

	c.Flags().StringVarP(&f.pattern, "pattern", "p", "", "Pattern key (see 'rpx patterns <type>')")
	c.Flags().BoolVar(&f.noGit, "no-git", false, "Skip git initialization")
	c.Flags().BoolVar(&f.noInstall, "no-install", false, "Skip dependency installation")
	c.Flags().BoolVarP(&f.yes, "yes", "y", false, "Skip prompts and use defaults")
	c.Flags().BoolVarP(&f.force, "force", "f", false, "Replace an existing target directory without asking")
	c.Flags().StringVarP(&f.dir, "dir", "d", "", "Parent directory for the project (defaults to the current directory)")
	_ = c.RegisterFlagCompletionFunc("pattern", completePatternKeys)

	return c
}

func runInit(c *cobra.Command, g *cmdtypes.GlobalConfig, args []string, f initFlags) error {
	ctx := c.Context()
	cfg := g.Settings()
	out := c.OutOrStdout()

	req := scaffold.Request{
		Type:        patterns.ProjectType(args[0]),
		Name:        args[1],
		PatternKey:  f.pattern,
		ParentDir:   config.ExpandTilde(f.dir),
		SkipGit:     f.noGit || !cfg.Git.Enabled,
		SkipInstall: f.noInstall || !cfg.Install.Enabled,
		AssumeYes:   f.yes,
		Force:       f.force,
	}

	runner := runnerFactory()
	vc, err := vcs.New(cfg.Git.Backend, runner)
	if err != nil {
		return err
	}

	orch := scaffold.New(scaffold.Options{
		Chooser:      chooserFactory(),
		VCS:          vc,
		Installer:    toolchain.NewInstaller(runner),
		Step:         output.Step(ctx),
		Dependencies: cfg.DependenciesFor,
		OverlayDir:   config.ExpandTilde(cfg.Templates.Dir),
	})

	fmt.Fprintln(out, output.FormatBanner("rpx", tagline))
	fmt.Fprintln(out)

	res, err := orch.Run(ctx, req)
	if err != nil {
		return err
	}

	printInitResult(out, res, g.Verbose)
	return nil
}

func printInitResult(w io.Writer, res *scaffold.Result, verbose bool) {
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Created %s project %s", res.Type, output.StyleNoun.Render(res.Name))))

	if verbose {
		fmt.Fprintln(w)
		fmt.Fprintln(w, output.RenderProjectTree(res.Name, res.Dirs, res.Files))
	}

	fmt.Fprintln(w, output.FormatStepLine("Project structure", output.StatusCreated))
	fmt.Fprintln(w, output.FormatStepLine("Git initialization", stageStatus(res.GitInitialized, res.GitSkipped)))
	fmt.Fprintln(w, output.FormatStepLine("Dependency installation", stageStatus(res.Installed, res.InstallSkipped)))

	for _, warning := range res.Warnings {
		fmt.Fprintln(w, output.FormatWarning(warning))
	}

	rows := [][2]string{
		{"Project", res.Name},
		{"Type", res.Type.String()},
		{"Pattern", fmt.Sprintf("%s (%s)", res.Pattern.Label, res.Pattern.Key)},
		{"Location", res.TargetDir},
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.RenderSummaryBox("Project created", rows, "Next steps", res.NextSteps))
}

// stageStatus maps an optional stage outcome to a step status. A stage that
// ran and did not succeed left a warning.
func stageStatus(done, skipped bool) string {
	switch {
	case skipped:
		return output.StatusSkipped
	case done:
		return output.StatusCreated
	default:
		return output.StatusWarning
	}
}

func completeTypes(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return patterns.TypeNames(), cobra.ShellCompDirectiveNoFileComp
}

// completePatternKeys offers the pattern keys of the type given as the first
// argument.
func completePatternKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	t, err := patterns.ParseType(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return patterns.Default().Keys(t), cobra.ShellCompDirectiveNoFileComp
}
