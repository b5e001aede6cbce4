// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Schema is a compiled root definition that documents are checked against.
type Schema struct {
	ctx     *cue.Context
	root    cue.Value
	options parseOptions
}

// Compile compiles source and looks up the definition at rootPath
// (e.g. "#Config").
func Compile(source, rootPath string, opts ...Option) (*Schema, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	ctx := cuecontext.New()
	compiled := ctx.CompileString(source)
	if compiled.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", compiled.Err())
	}

	root := compiled.LookupPath(cue.ParsePath(rootPath))
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", rootPath, root.Err())
	}

	return &Schema{ctx: ctx, root: root, options: options}, nil
}

// DecodeFile compiles a CUE document, validates it and returns its fields.
// filename only appears in error messages.
func (s *Schema) DecodeFile(data []byte, filename string) (map[string]any, error) {
	if err := CheckFileSize(data, s.options.maxFileSize, filename); err != nil {
		return nil, err
	}

	user := s.ctx.CompileBytes(data, cue.Filename(filename))
	if user.Err() != nil {
		return nil, FormatError(user.Err(), filename)
	}

	unified, err := s.validate(user, filename)
	if err != nil {
		return nil, err
	}

	var values map[string]any
	if err := unified.Decode(&values); err != nil {
		return nil, FormatError(err, filename)
	}
	return values, nil
}

// ValidateMap checks values decoded by another parser against the schema.
func (s *Schema) ValidateMap(values map[string]any, filename string) error {
	encoded := s.ctx.Encode(values)
	if encoded.Err() != nil {
		return FormatError(encoded.Err(), filename)
	}
	_, err := s.validate(encoded, filename)
	return err
}

func (s *Schema) validate(v cue.Value, filename string) (cue.Value, error) {
	unified := s.root.Unify(v)
	if err := unified.Validate(cue.Concrete(s.options.concrete)); err != nil {
		return cue.Value{}, FormatError(err, filename)
	}
	return unified, nil
}
