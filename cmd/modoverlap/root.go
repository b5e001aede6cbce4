// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/modoverlap/modoverlap/internal/issue"
	"github.com/modoverlap/modoverlap/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// globalFlags are shared by the root command and every subcommand.
type globalFlags struct {
	verbose    bool
	configPath string
	envFile    string
}

// compareFlags are the root command's own flags.
type compareFlags struct {
	output     string
	force      bool
	workers    int
	precision  int
	skipHeader bool
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	var (
		global globalFlags
		local  compareFlags
	)

	rootCmd := &cobra.Command{
		Use:   "modoverlap <input table>",
		Short: "Compare the members of every pair of modules",
		Long: TitleStyle.Render("modoverlap") + SubtitleStyle.Render(" - pairwise module overlap tables") + `

modoverlap reads a delimited table where each row is a module name followed
by its members, compares every ordered pair of modules and writes three
tables: the shared members, the overlap percentage (|A∩B| / |A∪B|) and the
members of the row module missing from the column module.

Tab separated input is recognized by the .tsv/.tsvc extension; any other
extension is read as comma separated unless a delimiter is configured.

` + SubtitleStyle.Render("Examples:") + `
  modoverlap modules.csv                 Write modules-overlap.csvc and friends
  modoverlap modules.tsv -o out/result   Write out/result-overlap.tsvc and friends
  modoverlap modules.csv -f --workers 4  Overwrite existing tables, 4 workers
  modoverlap config show                 Show the resolved configuration`,
		Args: requireInputArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.runCompare(cmd, args[0], global, local); err != nil {
				return reportError(cmd, app, err, global.verbose)
			}
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&global.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&global.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/modoverlap/config.cue)")
	pf.StringVar(&global.envFile, "env-file", "", "dotenv file with MODOVERLAP_* overrides")

	f := rootCmd.Flags()
	f.StringVarP(&local.output, "output", "o", "", "base path of the output tables (default is the input path)")
	f.BoolVarP(&local.force, "force", "f", false, "overwrite existing output tables without asking")
	f.IntVar(&local.workers, "workers", 1, "number of matrix rows computed concurrently")
	f.IntVar(&local.precision, "precision", 6, "digits after the decimal point in the percentage table")
	f.BoolVar(&local.skipHeader, "skip-header", false, "discard the first row of the input table")

	rootCmd.AddCommand(newConfigCommand(app, &global))

	return rootCmd
}

// requireInputArg accepts exactly one positional argument, the input table.
func requireInputArg(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return nil
	}
	return issue.NewErrorContext().
		WithOperation("parse arguments").
		WithIssue(issue.InvalidArgumentsId).
		WithSuggestion("Pass exactly one input table, e.g. 'modoverlap modules.csv'").
		Wrap(fmt.Errorf("expected 1 input file, got %d", len(args))).
		BuildError()
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute builds the production App and runs the root command.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(int(exitCodeOf(err)))
	}
}

// exitCodeOf maps an error returned by the command tree to a process exit code.
func exitCodeOf(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code.Validate() == nil && !exitErr.Code.IsSuccess() {
		return exitErr.Code
	}
	return types.ExitFailure
}
