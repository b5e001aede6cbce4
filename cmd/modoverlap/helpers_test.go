// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/modoverlap/modoverlap/internal/config"
)

// stubConfigProvider returns a fixed configuration, or err when set.
type stubConfigProvider struct {
	cfg  *config.Config
	err  error
	seen []config.LoadOptions
}

func (s *stubConfigProvider) Load(_ context.Context, opts config.LoadOptions) (*config.Config, error) {
	s.seen = append(s.seen, opts)
	if s.err != nil {
		return nil, s.err
	}
	cp := *s.cfg
	return &cp, nil
}

type testRun struct {
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	err    error
}

// runCLI executes the command tree with the given stdin and arguments.
// A nil cfg uses defaults with colors disabled.
func runCLI(t *testing.T, cfg *config.Config, stdin string, args ...string) testRun {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
		cfg.UI.Color = false
	}
	return runWithProvider(t, &stubConfigProvider{cfg: cfg}, stdin, args...)
}

func runWithProvider(t *testing.T, provider ConfigProvider, stdin string, args ...string) testRun {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config: provider,
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return testRun{stdout: &stdout, stderr: &stderr, err: err}
}
