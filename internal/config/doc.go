// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper.
//
// Configuration is read from config.cue or config.toml in the modoverlap
// configuration directory (~/.config/modoverlap on Linux, ~/Library/Application
// Support/modoverlap on macOS, %APPDATA%\modoverlap on Windows), falling back to
// the current directory. CUE files are validated against the embedded #Config
// schema (config_schema.cue); TOML files are decoded with go-toml. Environment
// variables prefixed with MODOVERLAP_ override file values, and a dotenv file
// can seed the environment first.
package config
