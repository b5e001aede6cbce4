// SPDX-License-Identifier: MPL-2.0

package module

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/modoverlap/modoverlap/pkg/setalg"
	"github.com/modoverlap/modoverlap/pkg/types"
)

// LoadOptions controls how rows are split into modules.
type LoadOptions struct {
	// Delimiter separates fields. The zero value means comma.
	Delimiter types.Delimiter
	// SkipHeader discards the first non-blank row.
	SkipHeader bool
	// TrimSpace strips surrounding whitespace from every field.
	TrimSpace bool
}

// Load reads every row of r into a ModuleList.
//
// Rows whose fields are all empty are treated as blank and skipped. A row
// with members but an empty name, an unbalanced quote or a field spanning
// lines aborts the load with *MalformedRowError.
func Load(ctx context.Context, r io.Reader, opts LoadOptions) (ModuleList, error) {
	delim := opts.Delimiter
	if delim.IsZero() {
		delim = types.DelimiterComma
	}
	if err := delim.Validate(); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = rune(delim)
	cr.FieldsPerRecord = -1

	var (
		modules    ModuleList
		headerSeen bool
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("load modules canceled: %w", err)
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &MalformedRowError{Line: pe.StartLine, Reason: pe.Err.Error()}
			}
			return nil, fmt.Errorf("failed to read module table: %w", err)
		}

		if opts.TrimSpace {
			for i := range record {
				record[i] = strings.TrimSpace(record[i])
			}
		}
		if isBlank(record) {
			continue
		}
		if opts.SkipHeader && !headerSeen {
			headerSeen = true
			continue
		}

		if record[0] == "" {
			line, _ := cr.FieldPos(0)
			return nil, &MalformedRowError{Line: line, Reason: reasonMissingName}
		}
		// A quoted field may legally span lines, but each module must stay
		// on one row of every output table.
		for i, field := range record {
			if strings.ContainsAny(field, "\r\n") {
				line, _ := cr.FieldPos(i)
				return nil, &MalformedRowError{Line: line, Reason: reasonLineBreak}
			}
		}

		modules = append(modules, Module{
			Name:    record[0],
			Members: setalg.Normalize(record[1:]),
		})
	}

	return modules, nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if field != "" {
			return false
		}
	}
	return true
}
