// SPDX-License-Identifier: MPL-2.0

// Package types defines small value types shared by the loader, the table
// writer and the CLI: exit codes, table delimiters and filesystem paths.
// Each type carries its own validation and an Invalid*Error that wraps a
// sentinel for errors.Is() checks.
//
// This package is a leaf dependency: it imports only the standard library.
package types
