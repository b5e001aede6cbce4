// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/modoverlap/modoverlap/internal/cueutil"
	"github.com/modoverlap/modoverlap/internal/issue"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "modoverlap"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ExtCUE is the preferred config file extension.
	ExtCUE = "cue"
	// ExtTOML is the alternative config file extension.
	ExtTOML = "toml"
	// EnvPrefix prefixes environment variable overrides (MODOVERLAP_WORKERS, ...).
	EnvPrefix = "MODOVERLAP"

	// maxConfigFileSize guards against accidentally pointing --config at a data file.
	maxConfigFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the modoverlap configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FindConfigFile returns the config file that Load would read, or "" when
// none exists and defaults apply. An explicit ConfigFilePath must exist.
func FindConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'modoverlap config show' to see the default configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}

	for _, dir := range []string{cfgDir, "."} {
		for _, ext := range []string{ExtCUE, ExtTOML} {
			candidate := filepath.Join(dir, ConfigFileName+"."+ext)
			if fileExists(candidate) {
				return candidate, nil
			}
		}
	}
	return "", nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level cache state.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	if opts.EnvFilePath != "" {
		// godotenv.Load never overrides variables already set in the process.
		if err := godotenv.Load(opts.EnvFilePath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load environment file").
				WithResource(opts.EnvFilePath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that the file exists and uses KEY=VALUE lines").
				Wrap(err).
				BuildError()
		}
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("delimiter", defaults.Delimiter)
	v.SetDefault("precision", defaults.Precision)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("skip_header", defaults.SkipHeader)
	v.SetDefault("trim_space", defaults.TrimSpace)
	v.SetDefault("force", defaults.Force)
	v.SetDefault("log.level", string(defaults.Log.Level))
	v.SetDefault("ui.color", defaults.UI.Color)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath, err := FindConfigFile(opts)
	if err != nil {
		return nil, "", err
	}

	if resolvedPath != "" {
		if err := loadFileIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that the file contains valid syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Check " + EnvPrefix + "_* environment variables as well as the config file").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// configSchemaFor compiles the embedded schema once per process.
var configSchemaFor = sync.OnceValues(func() (*cueutil.Schema, error) {
	return cueutil.Compile(configSchema, "#Config", cueutil.WithMaxFileSize(maxConfigFileSize))
})

// loadFileIntoViper reads path, decodes it according to its extension,
// validates it against the #Config schema and merges the result into v.
func loadFileIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	schema, err := configSchemaFor()
	if err != nil {
		return err
	}

	var configMap map[string]any
	if strings.EqualFold(filepath.Ext(path), "."+ExtTOML) {
		if err := cueutil.CheckFileSize(data, maxConfigFileSize, path); err != nil {
			return err
		}
		if err := toml.Unmarshal(data, &configMap); err != nil {
			return fmt.Errorf("invalid TOML: %w", err)
		}
		if err := schema.ValidateMap(configMap, path); err != nil {
			return err
		}
	} else {
		configMap, err = schema.DecodeFile(data, path)
		if err != nil {
			return err
		}
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// GenerateCUE generates a CUE representation of the configuration.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// modoverlap configuration file\n\n")
	fmt.Fprintf(&sb, "delimiter: %q\n", cfg.Delimiter)
	fmt.Fprintf(&sb, "precision: %d\n", cfg.Precision)
	fmt.Fprintf(&sb, "workers: %d\n", cfg.Workers)
	fmt.Fprintf(&sb, "skip_header: %v\n", cfg.SkipHeader)
	fmt.Fprintf(&sb, "trim_space: %v\n", cfg.TrimSpace)
	fmt.Fprintf(&sb, "force: %v\n", cfg.Force)

	sb.WriteString("\nlog: {\n")
	fmt.Fprintf(&sb, "\tlevel: %q\n", cfg.Log.Level)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor: %v\n", cfg.UI.Color)
	sb.WriteString("}\n")

	return sb.String()
}

// GenerateTOML generates a TOML representation of the configuration.
func GenerateTOML(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode TOML: %w", err)
	}
	return string(data), nil
}
