// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/modoverlap/modoverlap/internal/compare"
	"github.com/modoverlap/modoverlap/internal/config"
	"github.com/modoverlap/modoverlap/internal/issue"
	"github.com/modoverlap/modoverlap/internal/module"
	"github.com/modoverlap/modoverlap/internal/prompt"
	"github.com/modoverlap/modoverlap/internal/table"
	"github.com/modoverlap/modoverlap/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// ErrInputOpen is wrapped by every failure to open the input table.
var ErrInputOpen = errors.New("couldn't open input file")

// runCompare loads configuration, applies explicitly set flags on top of it
// and runs the comparison pipeline.
func (a *App) runCompare(cmd *cobra.Command, input string, global globalFlags, local compareFlags) error {
	ctx := cmd.Context()

	cfg, err := a.loadConfig(ctx, global)
	if err != nil {
		return err
	}
	if err := applyFlagOverrides(cmd, cfg, local); err != nil {
		return err
	}

	logger := newLogger(a.stderr, cfg.Log.Level, global.verbose)
	logger.Debug("resolved configuration",
		"delimiter", cfg.Delimiter,
		"precision", cfg.Precision,
		"workers", cfg.Workers,
		"skip_header", cfg.SkipHeader,
		"trim_space", cfg.TrimSpace,
		"force", cfg.Force,
	)

	return a.compareTables(ctx, logger, cfg, types.FilesystemPath(input), types.FilesystemPath(local.output), global.verbose)
}

// loadConfig loads configuration honoring --config and --env-file.
func (a *App) loadConfig(ctx context.Context, global globalFlags) (*config.Config, error) {
	return a.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: global.configPath,
		EnvFilePath:    global.envFile,
	})
}

// applyFlagOverrides copies every explicitly set flag into cfg and checks
// the merged result.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, local compareFlags) error {
	flags := cmd.Flags()
	if flags.Changed("force") {
		cfg.Force = local.force
	}
	if flags.Changed("workers") {
		cfg.Workers = local.workers
	}
	if flags.Changed("precision") {
		cfg.Precision = local.precision
	}
	if flags.Changed("skip-header") {
		cfg.SkipHeader = local.skipHeader
	}

	if err := cfg.Validate(); err != nil {
		return issue.NewErrorContext().
			WithOperation("parse arguments").
			WithIssue(issue.InvalidArgumentsId).
			WithSuggestion("Use --precision between 0 and 17 and --workers of at least 1").
			Wrap(err).
			BuildError()
	}
	return nil
}

// compareTables is the comparison pipeline: load, compare, confirm, write.
func (a *App) compareTables(ctx context.Context, logger *log.Logger, cfg *config.Config, input, output types.FilesystemPath, verbose bool) error {
	if err := input.Validate(); err != nil {
		return issue.NewErrorContext().
			WithOperation("parse arguments").
			WithIssue(issue.InvalidArgumentsId).
			Wrap(err).
			BuildError()
	}

	delim, err := cfg.ParsedDelimiter()
	if err != nil {
		return err
	}
	if delim.IsZero() {
		delim = table.DelimiterForExt(input.Ext())
	}
	logger.Debug("reading module table", "path", input, "delimiter", fmt.Sprintf("%q", delim.String()))

	modules, err := loadModules(ctx, input, module.LoadOptions{
		Delimiter:  delim,
		SkipHeader: cfg.SkipHeader,
		TrimSpace:  cfg.TrimSpace,
	})
	if err != nil {
		return err
	}
	for _, name := range modules.Duplicates() {
		logger.Warn("duplicate module name", "module", name)
	}
	logger.Debug("loaded module table", "modules", humanize.Comma(int64(len(modules))))

	m, err := compare.Compare(ctx, modules, compare.Options{Workers: cfg.Workers})
	if err != nil {
		return err
	}

	paths := table.OutputPaths(input, output)
	if !cfg.Force {
		if err := a.confirmOverwrite(paths); err != nil {
			return err
		}
	}

	format := table.Format{Delimiter: delim, Precision: cfg.Precision}
	if err := table.WriteAll(ctx, paths, m, format); err != nil {
		var owe *table.OutputWriteError
		resource := ""
		if errors.As(err, &owe) {
			resource = owe.Path.String()
		}
		return issue.NewErrorContext().
			WithOperation("write output tables").
			WithResource(resource).
			WithIssue(issue.OutputWriteFailedId).
			WithSuggestion("Check that the output directory exists and is writable").
			Wrap(err).
			BuildError()
	}

	for _, path := range paths.All() {
		if info, statErr := os.Stat(path.String()); statErr == nil {
			logger.Debug("wrote table", "path", path, "size", humanize.Bytes(uint64(info.Size())))
		}
	}

	p := painter{color: cfg.UI.Color}
	a.printPaths(p, paths)
	if verbose {
		a.printSummary(p, m)
	}
	return nil
}

// loadModules opens and parses the input table.
func loadModules(ctx context.Context, input types.FilesystemPath, opts module.LoadOptions) (module.ModuleList, error) {
	f, err := os.Open(input.String())
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("open input table").
			WithResource(input.String()).
			WithIssue(issue.InputOpenFailedId).
			WithSuggestion("Check that the path is correct and the file is readable").
			Wrap(fmt.Errorf("%w: %w", ErrInputOpen, err)).
			BuildError()
	}
	defer f.Close()

	modules, err := module.Load(ctx, f, opts)
	if err != nil {
		if errors.Is(err, module.ErrMalformedRow) {
			return nil, issue.NewErrorContext().
				WithOperation("read module table").
				WithResource(input.String()).
				WithIssue(issue.MalformedRowId).
				WithSuggestion("Every row must start with a non-empty module name").
				WithSuggestion("Use --skip-header if the first row holds column titles").
				Wrap(err).
				BuildError()
		}
		return nil, issue.WrapWithContext(err, "read module table", input.String())
	}
	return modules, nil
}

// confirmOverwrite asks before replacing each existing output table.
func (a *App) confirmOverwrite(paths table.Paths) error {
	existing := paths.Existing()
	if len(existing) == 0 {
		return nil
	}

	names := make([]string, len(existing))
	for i, path := range existing {
		names[i] = path.String()
	}

	if err := prompt.New(a.stdin, a.stdout).ConfirmAll(names); err != nil {
		var declined *prompt.DeclinedError
		resource := ""
		if errors.As(err, &declined) {
			resource = declined.Path
		}
		return issue.NewErrorContext().
			WithOperation("overwrite output table").
			WithResource(resource).
			WithIssue(issue.OutputExistsId).
			WithSuggestion("Pass --force to overwrite without asking").
			WithSuggestion("Use --output to write the tables somewhere else").
			Wrap(err).
			BuildError()
	}
	return nil
}

// printPaths lists the written tables on stdout.
func (a *App) printPaths(p painter, paths table.Paths) {
	for _, kind := range table.Kinds() {
		fmt.Fprintf(a.stdout, "%s %s\n", p.render(SuccessStyle, "✓"), p.render(PathStyle, paths.For(kind).String()))
	}
}

// printSummary reports matrix statistics on stdout.
func (a *App) printSummary(p painter, m *compare.Matrix) {
	s := m.Stats()
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, p.render(TitleStyle, "Summary"))
	fmt.Fprintf(a.stdout, "%s %s\n", p.render(SubtitleStyle, "Modules:"), humanize.Comma(int64(m.Size())))
	fmt.Fprintf(a.stdout, "%s %s\n", p.render(SubtitleStyle, "Pairs:"), humanize.Comma(int64(s.Pairs)))
	if s.Pairs == 0 {
		return
	}
	fmt.Fprintf(a.stdout, "%s %s%%\n", p.render(SubtitleStyle, "Mean overlap:"), humanize.FtoaWithDigits(s.MeanPercentage, 2))
	fmt.Fprintf(a.stdout, "%s %s / %s (%s%%)\n", p.render(SubtitleStyle, "Highest overlap:"),
		s.BestRow, s.BestCol, humanize.FtoaWithDigits(s.BestPercentage, 2))
	fmt.Fprintf(a.stdout, "%s %s\n", p.render(SubtitleStyle, "Identical pairs:"), humanize.Comma(int64(s.Identical)))
}
