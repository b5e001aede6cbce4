// SPDX-License-Identifier: MPL-2.0

package table

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/modoverlap/modoverlap/internal/compare"
	"github.com/modoverlap/modoverlap/pkg/fspath"
	"github.com/modoverlap/modoverlap/pkg/types"
)

// ErrOutputWrite is the sentinel error wrapped by OutputWriteError.
var ErrOutputWrite = errors.New("output write failed")

// OutputWriteError is returned when an output table cannot be created,
// written or moved into place.
type OutputWriteError struct {
	Path types.FilesystemPath
	Err  error
}

// Error implements the error interface.
func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("couldn't write output file '%s': %v", e.Path, e.Err)
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *OutputWriteError) Unwrap() []error { return []error{ErrOutputWrite, e.Err} }

// ErrNotRegularFile is returned when an output destination exists but is
// not a regular file.
var ErrNotRegularFile = errors.New("destination is not a regular file")

// placement tracks one table moving from its temp file into place.
type placement struct {
	dest   string
	tmp    string
	backup string
	placed bool
}

// WriteAll writes all three tables of m. Each table is first written to a
// temporary file next to its destination. Destinations are replaced only
// once every table has been written, and if any replacement fails the
// tables already moved are rolled back, so a failed run leaves every
// destination as it was.
func WriteAll(ctx context.Context, paths Paths, m *compare.Matrix, f Format) error {
	kinds := Kinds()

	for _, kind := range kinds {
		if err := checkDestination(paths.For(kind)); err != nil {
			return err
		}
	}

	moves := make([]*placement, 0, len(kinds))
	committed := false
	defer func() {
		if committed {
			return
		}
		rollback(moves)
	}()

	for _, kind := range kinds {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("write tables canceled: %w", err)
		}
		dest := paths.For(kind)
		tmp, err := writeTemp(dest, m, kind, f)
		if tmp != "" {
			moves = append(moves, &placement{dest: string(dest), tmp: tmp})
		}
		if err != nil {
			return &OutputWriteError{Path: dest, Err: err}
		}
	}

	for _, mv := range moves {
		if err := mv.place(); err != nil {
			return &OutputWriteError{Path: types.FilesystemPath(mv.dest), Err: err}
		}
	}
	committed = true

	for _, mv := range moves {
		if mv.backup != "" {
			_ = os.Remove(mv.backup)
		}
	}
	return nil
}

func checkDestination(dest types.FilesystemPath) error {
	info, err := os.Lstat(string(dest))
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return &OutputWriteError{Path: dest, Err: err}
	case !info.Mode().IsRegular():
		return &OutputWriteError{Path: dest, Err: ErrNotRegularFile}
	}
	return nil
}

// place moves an existing destination aside, then renames the temp file
// over it.
func (p *placement) place() error {
	if _, err := os.Lstat(p.dest); err == nil {
		dir, name := fspath.Split(types.FilesystemPath(p.dest))
		bak, err := os.CreateTemp(dir.String(), "."+name+".*.bak")
		if err != nil {
			return err
		}
		_ = bak.Close()
		if err := os.Rename(p.dest, bak.Name()); err != nil {
			_ = os.Remove(bak.Name())
			return err
		}
		p.backup = bak.Name()
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.Rename(p.tmp, p.dest); err != nil {
		return err
	}
	p.placed = true
	return nil
}

// rollback restores every destination touched by moves, newest first, and
// removes leftover temp files.
func rollback(moves []*placement) {
	for i := len(moves) - 1; i >= 0; i-- {
		mv := moves[i]
		if mv.placed {
			_ = os.Remove(mv.dest)
		} else {
			_ = os.Remove(mv.tmp)
		}
		if mv.backup != "" {
			_ = os.Rename(mv.backup, mv.dest)
		}
	}
}

func writeTemp(dest types.FilesystemPath, m *compare.Matrix, kind Kind, f Format) (string, error) {
	dir, name := fspath.Split(dest)
	tmp, err := os.CreateTemp(dir.String(), "."+name+".*.tmp")
	if err != nil {
		return "", err
	}

	if err := WriteTable(tmp, m, kind, f); err != nil {
		_ = tmp.Close()
		return tmp.Name(), err
	}
	if err := tmp.Close(); err != nil {
		return tmp.Name(), err
	}
	// CreateTemp uses 0600; output tables are ordinary user files.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return tmp.Name(), err
	}
	return tmp.Name(), nil
}
