// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the modoverlap command line interface.
//
// The root command reads a module table, compares every ordered pair of
// modules and writes the overlap, percentage overlap and non-overlap tables
// next to the input (or at the path given with --output). The config
// subcommands inspect the resolved configuration.
package cmd
