// SPDX-License-Identifier: MPL-2.0

// Package compare builds the square comparison matrix of a module list.
//
// Every ordered pair of distinct modules yields a Result holding the overlap
// (intersection), the non-overlap (row module minus column module) and the
// Jaccard percentage. Diagonal cells are placeholders so each row keeps one
// cell per module. Rows may be computed by a bounded worker pool; the matrix
// is identical to the sequential one either way.
package compare
