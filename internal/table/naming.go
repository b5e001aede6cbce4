// SPDX-License-Identifier: MPL-2.0

package table

import (
	"os"
	"strings"

	"github.com/modoverlap/modoverlap/pkg/types"
)

// headerMarker is appended to output extensions to flag that the table
// starts with a header row (e.g. csv -> csvc).
const headerMarker = "c"

// defaultExt is used when the input path has no extension.
const defaultExt = "csv"

// Paths holds the three output file paths of a run.
type Paths struct {
	Overlap    types.FilesystemPath
	Percentage types.FilesystemPath
	NonOverlap types.FilesystemPath
}

// DelimiterForExt selects the delimiter implied by a file extension given
// without its leading dot: tab for tsv/tsvc, comma otherwise.
func DelimiterForExt(ext string) types.Delimiter {
	switch strings.ToLower(ext) {
	case "tsv", "tsv" + headerMarker:
		return types.DelimiterTab
	default:
		return types.DelimiterComma
	}
}

// OutputExt returns the extension for output tables derived from the input
// extension: the header marker is appended unless the input already is a
// csvc or tsvc table.
func OutputExt(inputExt string) string {
	if inputExt == "" {
		inputExt = defaultExt
	}
	switch strings.ToLower(inputExt) {
	case "csv" + headerMarker, "tsv" + headerMarker:
		return inputExt
	default:
		return inputExt + headerMarker
	}
}

// OutputPaths derives the output file paths. The base path is output with
// its extension removed, or input with its extension removed when output is
// empty. The extension always derives from input.
func OutputPaths(input, output types.FilesystemPath) Paths {
	base := input.TrimExt()
	if output != "" {
		base = output.TrimExt()
	}
	ext := "." + OutputExt(input.Ext())
	return Paths{
		Overlap:    base + types.FilesystemPath(KindOverlap.Suffix()+ext),
		Percentage: base + types.FilesystemPath(KindPercentage.Suffix()+ext),
		NonOverlap: base + types.FilesystemPath(KindNonOverlap.Suffix()+ext),
	}
}

// For returns the path of the given table kind.
func (p Paths) For(kind Kind) types.FilesystemPath {
	switch kind {
	case KindOverlap:
		return p.Overlap
	case KindPercentage:
		return p.Percentage
	case KindNonOverlap:
		return p.NonOverlap
	default:
		return ""
	}
}

// All returns the paths in Kinds order.
func (p Paths) All() []types.FilesystemPath {
	kinds := Kinds()
	out := make([]types.FilesystemPath, len(kinds))
	for i, k := range kinds {
		out[i] = p.For(k)
	}
	return out
}

// Existing returns the paths that already exist on disk, in Kinds order.
func (p Paths) Existing() []types.FilesystemPath {
	var existing []types.FilesystemPath
	for _, path := range p.All() {
		if _, err := os.Stat(string(path)); err == nil {
			existing = append(existing, path)
		}
	}
	return existing
}
