// SPDX-License-Identifier: MPL-2.0

package table

import (
	"bufio"
	"fmt"
	"io"

	"github.com/modoverlap/modoverlap/internal/compare"
	"github.com/modoverlap/modoverlap/pkg/types"
)

// HeaderLabel is the first header field, above the module name column.
const HeaderLabel = "Module"

// WriteTable writes one table of kind for m to w: a header naming every
// module, then one row per module with its name followed by one cell per
// column. Diagonal cells are empty.
func WriteTable(w io.Writer, m *compare.Matrix, kind Kind, f Format) error {
	if f.Delimiter.IsZero() {
		f.Delimiter = types.DelimiterComma
	}
	delim := rune(f.Delimiter)

	bw := bufio.NewWriter(w)

	bw.WriteString(HeaderLabel)
	for _, name := range m.Names {
		bw.WriteRune(delim)
		bw.WriteString(QuoteField(name, f.Delimiter))
	}
	bw.WriteByte('\n')

	for i, row := range m.Rows {
		bw.WriteString(QuoteField(m.Names[i], f.Delimiter))
		for _, c := range row {
			bw.WriteRune(delim)
			if c.Diagonal {
				continue
			}
			bw.WriteString(kind.cell(c.Result, f))
		}
		bw.WriteByte('\n')
	}

	// bufio.Writer keeps the first write error and reports it here.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s table: %w", kind, err)
	}
	return nil
}
