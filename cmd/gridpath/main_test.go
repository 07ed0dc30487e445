package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hill = "Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n"

const basin = "#.######\n#>>.<^<#\n#.<..<<#\n#>v.><>#\n#<^v^^>#\n######.#\n"

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDistancesCmd(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "hill.txt", hill)
	noEnv := filepath.Join(dir, "none.env")

	out, err := run(t, "distances", path, "--env", noEnv)
	require.NoError(t, err)
	assert.Equal(t, path+"\t31\n", out)

	out, err = run(t, "distances", path, "--env", noEnv,
		"--start", "E", "--reverse", "--nearest", "--target", "aS")
	require.NoError(t, err)
	assert.Equal(t, path+"\t29\n", out)
}

func TestJourneyCmd(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "basin.txt", basin)

	out, err := run(t, "journey", path, "--legs", "3", "--env", filepath.Join(dir, "none.env"))
	require.NoError(t, err)
	assert.Equal(t, path+"\t54\t[18 23 13]\n", out)

	_, err = run(t, "journey", path, "--legs", "0")
	assert.Error(t, err)
}

func TestRunCmd(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "hill.txt", hill)
	write(t, dir, "basin.txt", basin)
	metrics := filepath.Join(dir, "gridpath.prom")
	cfg := write(t, dir, "jobs.yaml", `
metrics:
  file: `+metrics+`
jobs:
  - {name: hill, kind: distances, start: S, goal: E, rule: "climb:1", file: hill.txt}
  - {name: basin, kind: journey, file: basin.txt}
  - {name: cube, kind: surface, rows: ["1,1,1", "2,1,1"]}
`)

	out, err := run(t, "run", "--config", cfg, "--env", filepath.Join(dir, "none.env"), "--log-format", "json")
	require.NoError(t, err)
	assert.Equal(t, "hill\t31\nbasin\t18\ncube\t10\n", out)

	raw, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "gridpath_search_runs_total"))
}

func TestRunCmd_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "run", "--config", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	cfg := write(t, dir, "jobs.yaml", `
jobs:
  - {name: walled, kind: distances, legend: maze, start: S, goal: E, rows: ["S#E"]}
`)
	out, err := run(t, "run", "--config", cfg, "--env", filepath.Join(dir, "none.env"))
	assert.Error(t, err)
	assert.Contains(t, out, "walled\terror:")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "debug", "json")
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	_, err = newLogger(&buf, "loud", "text")
	assert.Error(t, err)
	_, err = newLogger(&buf, "info", "xml")
	assert.Error(t, err)
}
