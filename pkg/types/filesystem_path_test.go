// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestFilesystemPath_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    FilesystemPath
		wantErr bool
	}{
		{"absolute path", FilesystemPath("/data/modules.csv"), false},
		{"relative path", FilesystemPath("modules.tsv"), false},
		{"path with spaces", FilesystemPath("/path/to/my modules.csv"), false},
		{"empty is invalid", FilesystemPath(""), true},
		{"whitespace only is invalid", FilesystemPath("   "), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.path.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("FilesystemPath(%q).Validate() error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFilesystemPath) {
					t.Errorf("error should wrap ErrInvalidFilesystemPath, got: %v", err)
				}
				var fpErr *InvalidFilesystemPathError
				if !errors.As(err, &fpErr) {
					t.Errorf("error should be *InvalidFilesystemPathError, got: %T", err)
				}
			}
		})
	}
}

func TestFilesystemPath_Ext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     FilesystemPath
		wantExt  string
		wantTrim FilesystemPath
	}{
		{"input.csv", "csv", "input"},
		{"~/data/input.tsvc", "tsvc", "~/data/input"},
		{"./dir.v2/modules", "", "./dir.v2/modules"},
		{"archive.tar.csv", "csv", "archive.tar"},
		{"noext", "", "noext"},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			t.Parallel()
			if got := tt.path.Ext(); got != tt.wantExt {
				t.Errorf("Ext() = %q, want %q", got, tt.wantExt)
			}
			if got := tt.path.TrimExt(); got != tt.wantTrim {
				t.Errorf("TrimExt() = %q, want %q", got, tt.wantTrim)
			}
		})
	}
}
