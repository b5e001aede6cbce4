// SPDX-License-Identifier: MPL-2.0

package table

import (
	"fmt"

	"github.com/modoverlap/modoverlap/internal/compare"
)

const (
	// KindOverlap tables list the members shared by row and column module.
	KindOverlap Kind = iota + 1
	// KindPercentage tables hold the Jaccard percentage of each pair.
	KindPercentage
	// KindNonOverlap tables list row module members missing from the column module.
	KindNonOverlap
)

// Kind identifies one of the three output tables.
type Kind int

// Kinds lists every table kind in output order.
func Kinds() []Kind {
	return []Kind{KindOverlap, KindPercentage, KindNonOverlap}
}

// Suffix returns the file name suffix for the kind.
func (k Kind) Suffix() string {
	switch k {
	case KindOverlap:
		return "-overlap"
	case KindPercentage:
		return "-percentage_overlap"
	case KindNonOverlap:
		return "-non_overlap"
	default:
		return ""
	}
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindOverlap:
		return "overlap"
	case KindPercentage:
		return "percentage overlap"
	case KindNonOverlap:
		return "non-overlap"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// cell renders a single off-diagonal result for this kind.
func (k Kind) cell(r compare.Result, f Format) string {
	switch k {
	case KindOverlap:
		return JoinQuoted(r.Overlap, f.Delimiter)
	case KindPercentage:
		return FormatPercentage(r.Percentage, f.Precision)
	case KindNonOverlap:
		return JoinQuoted(r.NonOverlap, f.Delimiter)
	default:
		return ""
	}
}
