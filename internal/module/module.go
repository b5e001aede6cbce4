// SPDX-License-Identifier: MPL-2.0

package module

import (
	"errors"
	"fmt"
)

// ErrMalformedRow is the sentinel error wrapped by MalformedRowError.
var ErrMalformedRow = errors.New("malformed row")

const (
	reasonMissingName = "missing module name"
	reasonLineBreak   = "field contains a line break"
)

type (
	// Module is a named set of member identifiers.
	// Members are sorted ascending and duplicate free.
	Module struct {
		Name    string
		Members []string
	}

	// ModuleList holds modules in input row order. That order defines the
	// rows, columns and header of every output table.
	ModuleList []Module

	// MalformedRowError is returned when a row cannot be read as a module:
	// it lacks a name, has unbalanced quotes or spans several lines.
	// Line is the 1-based line the problem was found on.
	MalformedRowError struct {
		Line   int
		Reason string
	}
)

// Size returns the number of members.
func (m Module) Size() int { return len(m.Members) }

// Names returns the module names in row order.
func (l ModuleList) Names() []string {
	names := make([]string, len(l))
	for i, m := range l {
		names[i] = m.Name
	}
	return names
}

// Duplicates returns module names that appear on more than one row, in the
// order of their second occurrence.
func (l ModuleList) Duplicates() []string {
	seen := make(map[string]int, len(l))
	var dups []string
	for _, m := range l {
		seen[m.Name]++
		if seen[m.Name] == 2 {
			dups = append(dups, m.Name)
		}
	}
	return dups
}

// Error implements the error interface.
func (e *MalformedRowError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = reasonMissingName
	}
	return fmt.Sprintf("malformed row at line %d: %s", e.Line, reason)
}

// Unwrap returns ErrMalformedRow for errors.Is() compatibility.
func (e *MalformedRowError) Unwrap() error { return ErrMalformedRow }
