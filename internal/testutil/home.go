// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"
)

// configDirEnvVars lists the variables besides HOME that steer config directory lookup.
var configDirEnvVars = []string{"APPDATA", "XDG_CONFIG_HOME"}

// SetHomeDir sets the appropriate HOME environment variable based on platform
// and returns a cleanup function to restore the original value.
//
// Platform handling:
//   - Windows: Sets USERPROFILE
//   - Linux/macOS: Sets HOME
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		return MustSetenv(t, "USERPROFILE", dir)
	default:
		return MustSetenv(t, "HOME", dir)
	}
}

// IsolateConfigDirs points every config directory variable at dir and clears
// MODOVERLAP_* overrides for the listed keys, so tests never read the
// developer's real configuration. Cleanup is registered with t.Cleanup.
func IsolateConfigDirs(t testing.TB, dir string, overrideKeys ...string) {
	t.Helper()
	t.Cleanup(SetHomeDir(t, dir))
	for _, key := range configDirEnvVars {
		t.Cleanup(MustSetenv(t, key, dir))
	}
	for _, key := range overrideKeys {
		t.Cleanup(MustUnsetenv(t, "MODOVERLAP_"+key))
	}
}
