package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/adjpower/core"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestGenerate_YAML(t *testing.T) {
	out, _, err := run(t, "generate",
		"--size", "5", "--edges", "6", "--mode", "SYMM", "--seed", "7", "--format", "yaml")
	require.NoError(t, err)

	var snap core.Snapshot
	require.NoError(t, yaml.Unmarshal([]byte(out), &snap))
	assert.Equal(t, 5, snap.Size)
	assert.Equal(t, "SYMM", snap.GenType)
	assert.Equal(t, 6, snap.EdgeNumber)
	assert.Equal(t, 1, snap.Components)
	assert.Len(t, snap.Matrix, 5)
}

func TestGenerate_LongModeName(t *testing.T) {
	out, _, err := run(t, "generate",
		"--size", "4", "--edges", "4", "--mode", "SYMMETRICAL", "--seed", "2", "--format", "yaml")
	require.NoError(t, err)

	var snap core.Snapshot
	require.NoError(t, yaml.Unmarshal([]byte(out), &snap))
	assert.Equal(t, "SYMM", snap.GenType)
	assert.Equal(t, 4, snap.EdgeNumber)
}

func TestGenerate_TableSpanning(t *testing.T) {
	out, _, err := run(t, "generate",
		"--size", "6", "--edges", "5", "--mode", "asymm", "--seed", "3",
		"--strategy", "spanning", "--connectivity", "forward")
	require.NoError(t, err)
	assert.Contains(t, out, "generated")
	assert.Contains(t, out, "type=ASYMM size=6 edges=5")
	assert.Contains(t, out, "components=1")
}

func TestGenerate_VerboseLogs(t *testing.T) {
	_, errOut, err := run(t, "generate", "--size", "4", "--edges", "3", "--seed", "1", "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "generation attempt")
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "generate", "--mode", "RING")
	assert.ErrorContains(t, err, "invalid configuration")

	_, _, err = run(t, "generate", "--size", "4", "--edges", "2", "--seed", "1")
	assert.ErrorContains(t, err, "edge count out of range")

	_, _, err = run(t, "generate", "--format", "json")
	assert.Error(t, err)
}

func TestPower_LogicalYAML(t *testing.T) {
	out, _, err := run(t, "power",
		"--matrix", "0,1,0;0,0,1;0,0,0", "--op", "logical", "--power", "2", "--format", "yaml")
	require.NoError(t, err)

	var rep powerReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "logical", rep.Op)
	assert.Equal(t, 2, rep.Power)
	assert.Equal(t, [][]int64{{0, 1, 0}, {0, 0, 1}, {0, 0, 0}}, rep.Base.Matrix)
	assert.Equal(t, [][]int64{{0, 0, 1}, {0, 0, 0}, {0, 0, 0}}, rep.Result.Matrix)
	assert.Equal(t, 2, rep.Result.Components)
}

func TestPower_TropicalTable(t *testing.T) {
	out, _, err := run(t, "power",
		"--matrix", "0,2,0;0,0,3;0,0,0", "--op", "tropical", "--power", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "base")
	assert.Contains(t, out, "tropical power 2")
	assert.Contains(t, out, "weights=5")
}

func TestPower_InvalidPower(t *testing.T) {
	_, _, err := run(t, "power", "--matrix", "0,1;1,0", "--power", "0")
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestClassify(t *testing.T) {
	out, _, err := run(t, "classify", "--matrix", "0,1;0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "type=ANTISYMM")

	_, _, err = run(t, "classify")
	assert.ErrorContains(t, err, "requires --matrix")

	_, _, err = run(t, "classify", "--matrix", "0,1;1")
	assert.Error(t, err)
}

func TestDemo_YAML(t *testing.T) {
	out, _, err := run(t, "demo",
		"--matrix", "0,1,0;0,0,1;1,0,0", "--op", "classic", "--levels", "3", "--format", "yaml")
	require.NoError(t, err)

	var rep demoReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.NotEmpty(t, rep.ID)
	require.Len(t, rep.Levels, 3)
	assert.Equal(t, 3, rep.Levels[2].Power)
	assert.Equal(t, [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, rep.Levels[2].Answer.Matrix)
}

func TestDemo_Table(t *testing.T) {
	out, _, err := run(t, "demo", "--matrix", "0,1;1,0", "--levels", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "power 1")
	assert.Contains(t, out, "power 2")
}

func TestConfigFile_FlagsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adjpower.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"size: 6\nedges: 9\nmode: ANTISYMM\nseed: 12\nformat: yaml\n"), 0o600))

	out, _, err := run(t, "generate", "--config", path, "--edges", "7")
	require.NoError(t, err)

	var snap core.Snapshot
	require.NoError(t, yaml.Unmarshal([]byte(out), &snap))
	assert.Equal(t, 6, snap.Size)
	assert.Equal(t, "ANTISYMM", snap.GenType)
	assert.Equal(t, 7, snap.EdgeNumber)

	_, _, err = run(t, "generate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}
