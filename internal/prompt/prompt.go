// SPDX-License-Identifier: MPL-2.0

// Package prompt asks the user to confirm overwriting existing output files.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrDeclined is the sentinel error wrapped by DeclinedError.
var ErrDeclined = errors.New("overwrite declined")

type (
	// Prompter reads yes/no answers from a line-oriented input.
	Prompter struct {
		in  *bufio.Reader
		out io.Writer
	}

	// DeclinedError is returned when the user refuses to overwrite Path,
	// or when no answer could be read.
	DeclinedError struct {
		Path string
	}
)

// New creates a Prompter reading answers from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks whether path may be overwritten. An empty answer accepts the
// advertised default (yes); "y" and "yes" accept, anything else declines.
// End of input declines.
func (p *Prompter) Confirm(path string) (bool, error) {
	fmt.Fprintf(p.out, "File '%s' already exists. Do you wish to override it? [Y/n] ", path)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(p.out)
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ConfirmAll asks about each path in turn and stops at the first refusal.
func (p *Prompter) ConfirmAll(paths []string) error {
	for _, path := range paths {
		ok, err := p.Confirm(path)
		if err != nil {
			return err
		}
		if !ok {
			return &DeclinedError{Path: path}
		}
	}
	return nil
}

// Error implements the error interface.
func (e *DeclinedError) Error() string {
	return fmt.Sprintf("file '%s' already exists and was not overwritten", e.Path)
}

// Unwrap returns ErrDeclined for errors.Is() compatibility.
func (e *DeclinedError) Unwrap() error { return ErrDeclined }
