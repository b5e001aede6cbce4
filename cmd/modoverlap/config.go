// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/modoverlap/modoverlap/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `modoverlap config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App, global *globalFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect modoverlap configuration",
		Long: `Inspect modoverlap configuration.

Configuration is read from config.cue (or config.toml) in:
  - Linux: ~/.config/modoverlap/
  - macOS: ~/Library/Application Support/modoverlap/
  - Windows: %APPDATA%\modoverlap\
falling back to the current directory. MODOVERLAP_* environment variables
override file values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := showConfig(cmd.Context(), app, *global); err != nil {
				return reportError(cmd, app, err, global.verbose)
			}
			return nil
		},
	})

	var dumpFormat string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the resolved configuration as CUE or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := dumpConfig(cmd.Context(), app, *global, dumpFormat); err != nil {
				return reportError(cmd, app, err, global.verbose)
			}
			return nil
		},
	}
	dumpCmd.Flags().StringVar(&dumpFormat, "format", config.ExtCUE, "output format: cue or toml")
	cfgCmd.AddCommand(dumpCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration directory and active file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := showConfigPath(app.stdout, *global); err != nil {
				return reportError(cmd, app, err, global.verbose)
			}
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, global globalFlags) error {
	cfg, err := app.loadConfig(ctx, global)
	if err != nil {
		return err
	}
	path, err := config.FindConfigFile(config.LoadOptions{ConfigFilePath: global.configPath})
	if err != nil {
		return err
	}

	p := painter{color: cfg.UI.Color}
	out := app.stdout

	fmt.Fprintln(out, p.render(TitleStyle, "Current Configuration"))
	fmt.Fprintln(out)
	if path != "" {
		fmt.Fprintf(out, "%s: %s\n", p.render(PathStyle, "Config file"), path)
	} else {
		fmt.Fprintf(out, "%s: %s\n", p.render(PathStyle, "Config file"), p.render(SubtitleStyle, "(using defaults)"))
	}
	fmt.Fprintln(out)

	delimiter := cfg.Delimiter
	if delimiter == "" {
		delimiter = "(from input extension)"
	}
	fmt.Fprintf(out, "%s: %s\n", p.render(PathStyle, "delimiter"), p.render(SuccessStyle, delimiter))
	fmt.Fprintf(out, "%s: %s\n", p.render(PathStyle, "precision"), p.render(SuccessStyle, strconv.Itoa(cfg.Precision)))
	fmt.Fprintf(out, "%s: %s\n", p.render(PathStyle, "workers"), p.render(SuccessStyle, strconv.Itoa(cfg.Workers)))
	fmt.Fprintf(out, "%s: %s\n", p.render(PathStyle, "skip_header"), p.render(SuccessStyle, strconv.FormatBool(cfg.SkipHeader)))
	fmt.Fprintf(out, "%s: %s\n", p.render(PathStyle, "trim_space"), p.render(SuccessStyle, strconv.FormatBool(cfg.TrimSpace)))
	fmt.Fprintf(out, "%s: %s\n", p.render(PathStyle, "force"), p.render(SuccessStyle, strconv.FormatBool(cfg.Force)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", p.render(PathStyle, "log"))
	fmt.Fprintf(out, "  level: %s\n", p.render(SuccessStyle, cfg.Log.Level.String()))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", p.render(PathStyle, "ui"))
	fmt.Fprintf(out, "  color: %s\n", p.render(SuccessStyle, strconv.FormatBool(cfg.UI.Color)))

	return nil
}

func dumpConfig(ctx context.Context, app *App, global globalFlags, format string) error {
	cfg, err := app.loadConfig(ctx, global)
	if err != nil {
		return err
	}

	switch format {
	case config.ExtCUE:
		fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
	case config.ExtTOML:
		out, err := config.GenerateTOML(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(app.stdout, out)
	default:
		return fmt.Errorf("unsupported format %q (valid: %s, %s)", format, config.ExtCUE, config.ExtTOML)
	}
	return nil
}

func showConfigPath(out io.Writer, global globalFlags) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	path, err := config.FindConfigFile(config.LoadOptions{ConfigFilePath: global.configPath})
	if err != nil {
		return err
	}
	if path == "" {
		path = "(none, using defaults)"
	}

	fmt.Fprintf(out, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(out, "Config file: %s\n", path)

	return nil
}
