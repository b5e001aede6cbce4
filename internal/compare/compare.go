// SPDX-License-Identifier: MPL-2.0

package compare

import (
	"context"
	"fmt"

	"github.com/modoverlap/modoverlap/internal/module"
	"github.com/modoverlap/modoverlap/pkg/setalg"

	"golang.org/x/sync/errgroup"
)

type (
	// Result is the comparison of a row module against a column module.
	Result struct {
		// Overlap lists members shared by both modules.
		Overlap []string
		// NonOverlap lists members of the row module absent from the column module.
		NonOverlap []string
		// Percentage is 100 * |A∩B| / |A∪B|.
		Percentage float64
	}

	// Cell is one entry of the matrix. Diagonal cells carry no result.
	Cell struct {
		Result   Result
		Diagonal bool
	}

	// Matrix is the square comparison matrix. Names orders both axes.
	Matrix struct {
		Names []string
		Rows  [][]Cell
	}

	// Options tunes matrix construction.
	Options struct {
		// Workers is the number of rows computed concurrently.
		// Values below 2 compute rows sequentially.
		Workers int
	}
)

// ComparePair compares module a (row) against module b (column).
// Both member slices must be normalized.
func ComparePair(a, b module.Module) Result {
	overlap := setalg.Intersection(a.Members, b.Members)
	return Result{
		Overlap:    overlap,
		NonOverlap: setalg.Difference(a.Members, b.Members),
		Percentage: setalg.OverlapPercentage(a.Size(), b.Size(), len(overlap)),
	}
}

// Compare builds the matrix for modules. Rows and columns follow the order
// of modules.
func Compare(ctx context.Context, modules module.ModuleList, opts Options) (*Matrix, error) {
	m := &Matrix{
		Names: modules.Names(),
		Rows:  make([][]Cell, len(modules)),
	}

	if opts.Workers < 2 {
		for i := range modules {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("compare modules canceled: %w", err)
			}
			m.Rows[i] = compareRow(modules, i)
		}
		return m, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range modules {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns a distinct row slot.
			m.Rows[i] = compareRow(modules, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compare modules canceled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("compare modules canceled: %w", err)
	}

	return m, nil
}

func compareRow(modules module.ModuleList, i int) []Cell {
	row := make([]Cell, len(modules))
	for j := range modules {
		if i == j {
			row[j] = Cell{Diagonal: true}
			continue
		}
		row[j] = Cell{Result: ComparePair(modules[i], modules[j])}
	}
	return row
}

// Size returns the side length of the matrix.
func (m *Matrix) Size() int { return len(m.Names) }
