// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustSetenvRestores(t *testing.T) {
	const key = "MODOVERLAP_TESTUTIL_PROBE"
	cleanup := MustSetenv(t, key, "one")
	if got := os.Getenv(key); got != "one" {
		t.Fatalf("Getenv(%q) = %q, want %q", key, got, "one")
	}
	cleanup()
	if _, ok := os.LookupEnv(key); ok {
		t.Errorf("%s still set after cleanup", key)
	}
}

func TestWriteModuleTable(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	path := WriteModuleTable(t, dir, "in.csv", ',',
		[]string{"ModA", "g1", "g2"},
		[]string{"ModB", "g2"},
	)

	if got, want := MustReadFile(t, path), "ModA,g1,g2\nModB,g2\n"; got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestMustChdir(t *testing.T) {
	dir := t.TempDir()
	restore := MustChdir(t, dir)
	defer restore()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if wd != resolved && wd != dir {
		t.Errorf("Getwd() = %q, want %q", wd, dir)
	}
}
