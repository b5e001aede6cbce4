// SPDX-License-Identifier: MPL-2.0

package compare

// Stats summarizes a matrix for reporting.
type Stats struct {
	// Pairs is the number of off-diagonal cells.
	Pairs int
	// MeanPercentage averages the percentage over all pairs.
	MeanPercentage float64
	// BestRow and BestCol name the pair with the highest percentage.
	// The first pair in row-major order wins ties.
	BestRow, BestCol string
	BestPercentage   float64
	// Identical counts pairs with 100% overlap.
	Identical int
}

// Stats computes summary statistics. A matrix with fewer than two modules
// has zero pairs and a zero mean.
func (m *Matrix) Stats() Stats {
	var (
		s     Stats
		total float64
	)
	for i, row := range m.Rows {
		for j, cell := range row {
			if cell.Diagonal {
				continue
			}
			p := cell.Result.Percentage
			s.Pairs++
			total += p
			if p == 100 {
				s.Identical++
			}
			if s.Pairs == 1 || p > s.BestPercentage {
				s.BestRow, s.BestCol, s.BestPercentage = m.Names[i], m.Names[j], p
			}
		}
	}
	if s.Pairs > 0 {
		s.MeanPercentage = total / float64(s.Pairs)
	}
	return s
}
