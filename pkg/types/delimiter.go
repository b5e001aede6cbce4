// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// DelimiterComma separates fields in .csv/.csvc tables.
	DelimiterComma Delimiter = ','
	// DelimiterTab separates fields in .tsv/.tsvc tables.
	DelimiterTab Delimiter = '\t'
)

// ErrInvalidDelimiter is the sentinel error wrapped by InvalidDelimiterError.
var ErrInvalidDelimiter = errors.New("invalid delimiter")

type (
	// Delimiter is the single rune separating fields of a table row.
	// The zero value means "choose from the file extension".
	Delimiter rune

	// InvalidDelimiterError is returned when a Delimiter cannot separate
	// fields unambiguously (quote, line break, replacement char).
	InvalidDelimiterError struct {
		Value Delimiter
	}
)

// ParseDelimiter converts a configuration value into a Delimiter.
// The names "comma" and "tab" and the escape `\t` are accepted alongside a
// literal single rune. An empty string yields the zero Delimiter.
func ParseDelimiter(s string) (Delimiter, error) {
	switch s {
	case "":
		return 0, nil
	case "comma":
		return DelimiterComma, nil
	case "tab", `\t`:
		return DelimiterTab, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("%w: %q must be a single character", ErrInvalidDelimiter, s)
	}
	d := Delimiter(r)
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d, nil
}

// Validate returns an error if the Delimiter cannot be used to split rows.
func (d Delimiter) Validate() error {
	switch rune(d) {
	case '"', '\r', '\n', utf8.RuneError:
		return &InvalidDelimiterError{Value: d}
	}
	if !utf8.ValidRune(rune(d)) {
		return &InvalidDelimiterError{Value: d}
	}
	return nil
}

// IsZero reports whether the delimiter is unset.
func (d Delimiter) IsZero() bool { return d == 0 }

// String returns the delimiter as a one-character string.
func (d Delimiter) String() string { return string(rune(d)) }

// Error implements the error interface for InvalidDelimiterError.
func (e *InvalidDelimiterError) Error() string {
	return fmt.Sprintf("invalid delimiter %q: quotes and line breaks cannot separate fields", rune(e.Value))
}

// Unwrap returns ErrInvalidDelimiter for errors.Is() compatibility.
func (e *InvalidDelimiterError) Unwrap() error { return ErrInvalidDelimiter }
