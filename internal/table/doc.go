// SPDX-License-Identifier: MPL-2.0

// Package table serializes a comparison matrix into the three output tables
// (overlap, percentage overlap, non-overlap) and derives their file names
// and delimiter from the input path.
//
// List cells are written as a single quoted field whose items are joined with
// the table delimiter, so a tabular reader sees one field per cell.
package table
