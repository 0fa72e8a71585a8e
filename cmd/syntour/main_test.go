package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/v4rm4n/syntour/internal/config"
	"go.uber.org/zap"
)

const wantTranscript = `Red
x is greater
0
1
2
Helper function
5
Drawing at (1, 2)
Success: 1
Value: 5
Hello from macro!
First element: 1
[2, 4, 6]
{"key": 123}
`

func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	cfg = config.DefaultConfig()
	logger = zap.NewNop()
	onlySteps = nil
	inspectJSON, inspectYAML, inspectStrict, inspectTests = false, false, false, false
	inspectWorkers = 0
	return &bytes.Buffer{}
}

func command(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	return cmd
}

func TestRunTour(t *testing.T) {
	out := setup(t)
	require.NoError(t, runTour(command(out), nil))
	assert.Equal(t, wantTranscript, out.String())
}

func TestRunTourSelectedSteps(t *testing.T) {
	out := setup(t)
	onlySteps = []string{"closure", "interface"}
	require.NoError(t, runTour(command(out), nil))
	assert.Equal(t, "5\nDrawing at (1, 2)\n", out.String())

	onlySteps = []string{"nope"}
	assert.ErrorContains(t, runTour(command(out), nil), "unknown step(s): nope")
}

func TestRunTourGoFormat(t *testing.T) {
	out := setup(t)
	cfg.Tour.Format = "go"
	require.NoError(t, runTour(command(out), nil))
	assert.True(t, strings.HasSuffix(out.String(), "[2 4 6]\nmap[key:123]\n"))
}

func TestListSteps(t *testing.T) {
	out := setup(t)
	require.NoError(t, listSteps(command(out), nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 22)
	assert.Contains(t, lines[0], "bindings")
	assert.Contains(t, lines[21], "map")
}

func TestRunInspect(t *testing.T) {
	out := setup(t)
	require.NoError(t, runInspect(command(out), []string{"../../internal/tour/..."}))
	assert.Contains(t, out.String(), "coverage: 15/15 features")
	assert.NotContains(t, out.String(), "missing:")
}

func TestRunInspectStrict(t *testing.T) {
	out := setup(t)
	inspectStrict = true
	err := runInspect(command(out), []string{"../../internal/inspect/testdata/flow.go"})
	assert.ErrorContains(t, err, "missing features: ")
}

func TestRunInspectJSON(t *testing.T) {
	out := setup(t)
	inspectJSON = true
	require.NoError(t, runInspect(command(out), []string{"main.go"}))
	assert.True(t, strings.HasPrefix(out.String(), "{"))
	assert.Contains(t, out.String(), `"package": "main"`)
}

func TestRootCommandDefaultsToTour(t *testing.T) {
	out := setup(t)
	t.Setenv("SYNTOUR_LOG_LEVEL", "error")
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, wantTranscript, out.String())
}
