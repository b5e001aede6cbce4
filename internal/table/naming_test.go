// SPDX-License-Identifier: MPL-2.0

package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/modoverlap/modoverlap/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelimiterForExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext  string
		want types.Delimiter
	}{
		{"csv", types.DelimiterComma},
		{"csvc", types.DelimiterComma},
		{"tsv", types.DelimiterTab},
		{"tsvc", types.DelimiterTab},
		{"TSV", types.DelimiterTab},
		{"txt", types.DelimiterComma},
		{"", types.DelimiterComma},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DelimiterForExt(tt.ext))
		})
	}
}

func TestOutputExt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "csvc", OutputExt("csv"))
	assert.Equal(t, "tsvc", OutputExt("tsv"))
	assert.Equal(t, "csvc", OutputExt("csvc"))
	assert.Equal(t, "tsvc", OutputExt("tsvc"))
	assert.Equal(t, "txtc", OutputExt("txt"))
	assert.Equal(t, "csvc", OutputExt(""))
}

func TestOutputPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  types.FilesystemPath
		output types.FilesystemPath
		want   Paths
	}{
		{
			name:  "default base from input",
			input: "/data/input.csv",
			want: Paths{
				Overlap:    "/data/input-overlap.csvc",
				Percentage: "/data/input-percentage_overlap.csvc",
				NonOverlap: "/data/input-non_overlap.csvc",
			},
		},
		{
			name:   "explicit output strips its extension",
			input:  "modules.tsv",
			output: "out/result.txt",
			want: Paths{
				Overlap:    "out/result-overlap.tsvc",
				Percentage: "out/result-percentage_overlap.tsvc",
				NonOverlap: "out/result-non_overlap.tsvc",
			},
		},
		{
			name:   "explicit output without extension",
			input:  "modules.csvc",
			output: "report",
			want: Paths{
				Overlap:    "report-overlap.csvc",
				Percentage: "report-percentage_overlap.csvc",
				NonOverlap: "report-non_overlap.csvc",
			},
		},
		{
			name:  "dotted directory kept",
			input: "./run.v2/modules.csv",
			want: Paths{
				Overlap:    "./run.v2/modules-overlap.csvc",
				Percentage: "./run.v2/modules-percentage_overlap.csvc",
				NonOverlap: "./run.v2/modules-non_overlap.csvc",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := OutputPaths(tt.input, tt.output)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []types.FilesystemPath{tt.want.Overlap, tt.want.Percentage, tt.want.NonOverlap}, got.All())
		})
	}
}

func TestPaths_Existing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := OutputPaths(types.FilesystemPath(filepath.Join(dir, "in.csv")), "")
	assert.Empty(t, paths.Existing())

	require.NoError(t, os.WriteFile(string(paths.Percentage), []byte("x"), 0o644))
	assert.Equal(t, []types.FilesystemPath{paths.Percentage}, paths.Existing())
}
