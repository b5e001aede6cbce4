// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `
#Config: {
	workers?: int & >=1
	log?: {
		level?: "debug" | "info"
	}
}
`

func mustCompile(t *testing.T, opts ...Option) *Schema {
	t.Helper()
	s, err := Compile(testSchema, "#Config", opts...)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return s
}

func TestCompileMissingDefinition(t *testing.T) {
	t.Parallel()

	if _, err := Compile(testSchema, "#Missing"); err == nil {
		t.Fatal("Compile() with unknown definition should fail")
	}
	if _, err := Compile("#Config: {", "#Config"); err == nil {
		t.Fatal("Compile() with broken schema should fail")
	}
}

func TestDecodeFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		wantErr  string
		wantKeys []string
	}{
		{name: "empty document", data: ""},
		{name: "valid fields", data: "workers: 2\nlog: level: \"debug\"\n", wantKeys: []string{"workers", "log"}},
		{name: "syntax error", data: "workers: [", wantErr: "app.cue"},
		{name: "out of range", data: "workers: 0\n", wantErr: "workers"},
		{name: "unknown field", data: "colour: true\n", wantErr: "colour"},
		{name: "nested violation", data: "log: level: \"loud\"\n", wantErr: "log.level"},
	}

	s := mustCompile(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values, err := s.DecodeFile([]byte(tt.data), "app.cue")
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("DecodeFile() = %v, want error containing %q", values, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("DecodeFile() error = %q, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeFile() error = %v", err)
			}
			for _, key := range tt.wantKeys {
				if _, ok := values[key]; !ok {
					t.Errorf("DecodeFile() result lacks key %q: %v", key, values)
				}
			}
		})
	}
}

func TestValidateMap(t *testing.T) {
	t.Parallel()

	s := mustCompile(t)
	if err := s.ValidateMap(map[string]any{"workers": int64(3)}, "app.toml"); err != nil {
		t.Errorf("ValidateMap(valid) = %v", err)
	}

	err := s.ValidateMap(map[string]any{"workers": int64(0)}, "app.toml")
	if !errors.Is(err, ErrSchemaViolation) {
		t.Errorf("ValidateMap(invalid) = %v, want ErrSchemaViolation", err)
	}
}

func TestDecodeFileSizeLimit(t *testing.T) {
	t.Parallel()

	s := mustCompile(t, WithMaxFileSize(8))
	if _, err := s.DecodeFile([]byte("workers: 10000000"), "big.cue"); err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("DecodeFile() error = %v, want size error", err)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"workers"}, "workers"},
		{[]string{"#Config", "log", "level"}, "log.level"},
	}
	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestFormatErrorNonCUE(t *testing.T) {
	t.Parallel()

	err := FormatError(errors.New("plain"), "x.cue")
	if err == nil || !strings.Contains(err.Error(), "x.cue") || !strings.Contains(err.Error(), "plain") {
		t.Errorf("FormatError() = %v, want file name and message", err)
	}
	if FormatError(nil, "x.cue") != nil {
		t.Error("FormatError(nil) should be nil")
	}
}
