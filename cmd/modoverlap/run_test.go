// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modoverlap/modoverlap/internal/config"
	"github.com/modoverlap/modoverlap/internal/issue"
	"github.com/modoverlap/modoverlap/internal/prompt"
	"github.com/modoverlap/modoverlap/internal/testutil"
	"github.com/modoverlap/modoverlap/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoModules = "ModA,g1,g2,g3\nModB,g2,g3,g4\n"

func TestCompareWritesThreeTables(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.MustWriteFile(t, dir, "mods.csv", twoModules)

	res := runCLI(t, nil, "", input)
	require.NoError(t, res.err, res.stderr.String())

	base := filepath.Join(dir, "mods")
	assert.Equal(t, "Module,ModA,ModB\nModA,,\"g2,g3\"\nModB,\"g2,g3\",\n",
		testutil.MustReadFile(t, base+"-overlap.csvc"))
	assert.Equal(t, "Module,ModA,ModB\nModA,,50.000000\nModB,50.000000,\n",
		testutil.MustReadFile(t, base+"-percentage_overlap.csvc"))
	assert.Equal(t, "Module,ModA,ModB\nModA,,\"g1\"\nModB,\"g4\",\n",
		testutil.MustReadFile(t, base+"-non_overlap.csvc"))

	out := res.stdout.String()
	assert.Contains(t, out, base+"-overlap.csvc")
	assert.Contains(t, out, base+"-percentage_overlap.csvc")
	assert.Contains(t, out, base+"-non_overlap.csvc")
}

func TestCompareTabSeparatedInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.WriteModuleTable(t, dir, "mods.tsv", '\t',
		[]string{"ModA", "g1", "g2"},
		[]string{"ModB", "g2"},
	)

	res := runCLI(t, nil, "", input)
	require.NoError(t, res.err, res.stderr.String())

	got := testutil.MustReadFile(t, filepath.Join(dir, "mods-overlap.tsvc"))
	assert.Equal(t, "Module\tModA\tModB\nModA\t\t\"g2\"\nModB\t\"g2\"\t\n", got)
}

func TestCompareOutputFlag(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.MustWriteFile(t, dir, "mods.csvc", twoModules)
	outDir := filepath.Join(dir, "out")
	testutil.MustMkdirAll(t, outDir, 0o755)

	res := runCLI(t, nil, "", input, "-o", filepath.Join(outDir, "result.txt"))
	require.NoError(t, res.err, res.stderr.String())

	for _, name := range []string{"result-overlap.csvc", "result-percentage_overlap.csvc", "result-non_overlap.csvc"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestCompareDeclinedOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.MustWriteFile(t, dir, "mods.csv", twoModules)
	existing := testutil.MustWriteFile(t, dir, "mods-overlap.csvc", "keep me\n")

	res := runCLI(t, nil, "n\n", input)
	require.Error(t, res.err)

	var exitErr *ExitError
	require.ErrorAs(t, res.err, &exitErr)
	assert.Equal(t, types.ExitFailure, exitErr.Code)
	assert.ErrorIs(t, res.err, prompt.ErrDeclined)
	assert.Equal(t, issue.OutputExistsId, issue.IssueOf(res.err))

	assert.Contains(t, res.stdout.String(), "File '"+existing+"' already exists. Do you wish to override it? [Y/n]")
	assert.Equal(t, "keep me\n", testutil.MustReadFile(t, existing))
	_, err := os.Stat(filepath.Join(dir, "mods-percentage_overlap.csvc"))
	assert.True(t, os.IsNotExist(err), "no table may be written after a refusal")
}

func TestCompareAcceptedOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.MustWriteFile(t, dir, "mods.csv", twoModules)
	existing := testutil.MustWriteFile(t, dir, "mods-overlap.csvc", "old\n")

	res := runCLI(t, nil, "\n", input)
	require.NoError(t, res.err, res.stderr.String())

	assert.True(t, strings.HasPrefix(testutil.MustReadFile(t, existing), "Module,ModA,ModB\n"))
}

func TestCompareForceSkipsPrompt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.MustWriteFile(t, dir, "mods.csv", twoModules)
	testutil.MustWriteFile(t, dir, "mods-overlap.csvc", "old\n")

	res := runCLI(t, nil, "", input, "--force")
	require.NoError(t, res.err, res.stderr.String())
	assert.NotContains(t, res.stdout.String(), "already exists")
}

func TestCompareMissingInput(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, res.err)

	assert.ErrorIs(t, res.err, ErrInputOpen)
	assert.Equal(t, issue.InputOpenFailedId, issue.IssueOf(res.err))
	assert.Equal(t, types.ExitFailure, exitCodeOf(res.err))
	assert.Contains(t, res.stderr.String(), "Error:")
	assert.Contains(t, res.stderr.String(), "absent.csv")
}

func TestCompareMalformedRow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.MustWriteFile(t, dir, "mods.csv", "ModA,g1\n,g2\n")

	res := runCLI(t, nil, "", input)
	require.Error(t, res.err)
	assert.Equal(t, issue.MalformedRowId, issue.IssueOf(res.err))
	assert.Contains(t, res.stderr.String(), "line 2")
}

func TestCompareArgumentCount(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "")
	require.Error(t, res.err)
	assert.Equal(t, issue.InvalidArgumentsId, issue.IssueOf(res.err))

	res = runCLI(t, nil, "", "a.csv", "b.csv")
	require.Error(t, res.err)
}

func TestCompareInvalidFlagValues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.MustWriteFile(t, dir, "mods.csv", twoModules)

	res := runCLI(t, nil, "", input, "--workers", "0")
	require.Error(t, res.err)
	assert.Equal(t, issue.InvalidArgumentsId, issue.IssueOf(res.err))
	assert.ErrorIs(t, res.err, config.ErrInvalidConfig)
}

func TestComparePrecisionFlag(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.MustWriteFile(t, dir, "mods.csv", twoModules)

	res := runCLI(t, nil, "", input, "--precision", "2")
	require.NoError(t, res.err, res.stderr.String())
	assert.Equal(t, "Module,ModA,ModB\nModA,,50.00\nModB,50.00,\n",
		testutil.MustReadFile(t, filepath.Join(dir, "mods-percentage_overlap.csvc")))
}

func TestCompareFlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.MustWriteFile(t, dir, "mods.csv", "Module,Members\n"+twoModules)

	cfg := config.DefaultConfig()
	cfg.UI.Color = false
	cfg.Precision = 1
	cfg.SkipHeader = true

	res := runCLI(t, cfg, "", input, "--precision", "3")
	require.NoError(t, res.err, res.stderr.String())
	assert.Equal(t, "Module,ModA,ModB\nModA,,50.000\nModB,50.000,\n",
		testutil.MustReadFile(t, filepath.Join(dir, "mods-percentage_overlap.csvc")))
}

func TestCompareConfiguredDelimiter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.MustWriteFile(t, dir, "mods.txt", "ModA;g1;g2\nModB;g2\n")

	cfg := config.DefaultConfig()
	cfg.UI.Color = false
	cfg.Delimiter = ";"

	res := runCLI(t, cfg, "", input)
	require.NoError(t, res.err, res.stderr.String())
	assert.Equal(t, "Module;ModA;ModB\nModA;;\"g2\"\nModB;\"g2\";\n",
		testutil.MustReadFile(t, filepath.Join(dir, "mods-overlap.txtc")))
}

func TestCompareWorkersMatchSequential(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"M1", "a", "b", "c"},
		{"M2", "b", "c", "d"},
		{"M3", "x"},
		{"M4", "a", "x", "y", "z"},
		{"M5"},
	}
	seqDir, parDir := t.TempDir(), t.TempDir()
	seqIn := testutil.WriteModuleTable(t, seqDir, "m.csv", ',', rows...)
	parIn := testutil.WriteModuleTable(t, parDir, "m.csv", ',', rows...)

	require.NoError(t, runCLI(t, nil, "", seqIn).err)
	require.NoError(t, runCLI(t, nil, "", parIn, "--workers", "4").err)

	for _, name := range []string{"m-overlap.csvc", "m-percentage_overlap.csvc", "m-non_overlap.csvc"} {
		assert.Equal(t,
			testutil.MustReadFile(t, filepath.Join(seqDir, name)),
			testutil.MustReadFile(t, filepath.Join(parDir, name)),
			name)
	}
}

func TestCompareVerboseSummary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.MustWriteFile(t, dir, "mods.csv", twoModules+"ModA,g9\n")

	res := runCLI(t, nil, "", input, "-v")
	require.NoError(t, res.err, res.stderr.String())

	out := res.stdout.String()
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Modules: 3")
	assert.Contains(t, out, "Pairs: 6")
	assert.Contains(t, out, "Highest overlap: ModA / ModB (50%)")
	assert.Contains(t, res.stderr.String(), "duplicate module name")
}

func TestCompareConfigLoadFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := testutil.MustWriteFile(t, dir, "mods.csv", twoModules)
	loadErr := issue.NewErrorContext().
		WithOperation("load configuration").
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(errors.New("boom")).
		BuildError()

	provider := &stubConfigProvider{err: loadErr}
	res := runWithProvider(t, provider, "", input, "--config", "custom.cue", "--env-file", "x.env")
	require.Error(t, res.err)
	assert.Equal(t, issue.ConfigLoadFailedId, issue.IssueOf(res.err))

	require.Len(t, provider.seen, 1)
	assert.Equal(t, "custom.cue", provider.seen[0].ConfigFilePath)
	assert.Equal(t, "x.env", provider.seen[0].EnvFilePath)
}
