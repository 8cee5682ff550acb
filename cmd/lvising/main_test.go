package main

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvising/results"
)

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-seed", "9", "-plot-dir", "figs", "params.txt"})
	require.NoError(t, err)
	assert.Equal(t, "params.txt", o.paramFile)
	assert.Equal(t, int64(9), o.seed)
	assert.Equal(t, "figs", o.plotDir)
	assert.True(t, o.set["seed"])
	assert.False(t, o.set["workers"])

	_, err = parseFlags(nil)
	assert.Error(t, err)
	_, err = parseFlags([]string{"a.txt", "b.txt"})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	paramFile := filepath.Join(dir, "params.txt")
	content := "rows: 4\ncols: 4\ntherm_steps: 10\nmeasure_steps: 20\n" +
		"temperatures: 1.5, 0, 3\nmeasure_struct_fact: false\noutputfile: " + out + "\n"
	require.NoError(t, os.WriteFile(paramFile, []byte(content), 0o644))

	var logs bytes.Buffer
	o := options{
		paramFile:  paramFile,
		plotDir:    filepath.Join(dir, "plots"),
		plotFormat: "svg",
		workers:    2,
		set:        map[string]bool{"workers": true},
	}
	require.NoError(t, run(context.Background(), o, log.New(&logs, "", 0)))

	table, err := results.ReadFile(out)
	require.NoError(t, err)
	temps, ok := table.Column(results.ColTemperature)
	require.True(t, ok)
	assert.Equal(t, []float64{1.5, 1e-6, 3}, temps)
	assert.NotContains(t, table.Columns, results.ColCorrelationLength)

	assert.Contains(t, logs.String(), "temperature[1]=0 replaced")
	assert.Contains(t, logs.String(), "Time taken:")
	assert.FileExists(t, filepath.Join(dir, "plots", results.ColMagnetisation+".svg"))
}

func TestRunMissingFile(t *testing.T) {
	o := options{paramFile: filepath.Join(t.TempDir(), "absent.txt"), set: map[string]bool{}}
	err := run(context.Background(), o, log.New(&bytes.Buffer{}, "", 0))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
