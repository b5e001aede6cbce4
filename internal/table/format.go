// SPDX-License-Identifier: MPL-2.0

package table

import (
	"strconv"
	"strings"

	"github.com/modoverlap/modoverlap/pkg/types"
)

// DefaultPrecision is the number of decimals written for percentages.
const DefaultPrecision = 6

// Format describes how cells are rendered.
type Format struct {
	Delimiter types.Delimiter
	// Precision is the number of digits after the decimal point.
	Precision int
}

// JoinQuoted joins items with delim and wraps the result in double quotes.
// Quotes inside items are doubled. An empty list renders as "".
func JoinQuoted(items []string, delim types.Delimiter) string {
	var b strings.Builder
	b.WriteByte('"')
	for i, item := range items {
		if i > 0 {
			b.WriteRune(rune(delim))
		}
		b.WriteString(strings.ReplaceAll(item, `"`, `""`))
	}
	b.WriteByte('"')
	return b.String()
}

// FormatPercentage renders p in fixed-point notation.
func FormatPercentage(p float64, precision int) string {
	return strconv.FormatFloat(p, 'f', precision, 64)
}

// QuoteField returns s unchanged unless it contains delim, a quote or a line
// break, in which case it is quoted with embedded quotes doubled.
func QuoteField(s string, delim types.Delimiter) string {
	if !strings.ContainsRune(s, rune(delim)) && !strings.ContainsAny(s, "\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
