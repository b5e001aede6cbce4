// SPDX-License-Identifier: MPL-2.0

// Package fspath provides path/filepath operations typed on
// types.FilesystemPath, so table paths stay typed from the command line to
// the file system.
package fspath

import (
	"path/filepath"

	"github.com/modoverlap/modoverlap/pkg/types"
)

// Split separates p into its directory and final element. The directory is
// "." when p has none, so it can be handed to os.CreateTemp directly.
func Split(p types.FilesystemPath) (dir types.FilesystemPath, name string) {
	d, name := filepath.Split(string(p))
	if d == "" {
		d = "."
	}
	return types.FilesystemPath(d), name
}
