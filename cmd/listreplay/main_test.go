package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()

	filePath := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))

	return filePath
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "replay.log")

	passing := writeFile(t, dir, "passing.yaml", `steps:
  - op: push
    value: 1
  - op: push
    value: 2
    expect:
      render: "1 -> 2"
`)
	failing := writeFile(t, dir, "failing.yaml", `steps:
  - op: pop
    expect:
      value: 1
`)

	require.NoError(t, run(context.Background(), []string{"--logger.outputPaths", logPath, passing}))

	err := run(context.Background(), []string{"--logger.outputPaths", logPath, "--replay.workers", "2", passing, failing})
	require.ErrorIs(t, err, errScriptsFailed)
	require.ErrorContains(t, err, "script failing")

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(logs), "replay finished")
}

func TestRunWithConfigFile(t *testing.T) {
	dir := t.TempDir()

	script := writeFile(t, dir, "script.json", `{"steps": [{"op": "addAt", "index": 0, "value": 3, "expect": {"length": 1}}]}`)
	config := writeFile(t, dir, "config.yaml", "replay:\n  scripts:\n    - "+script+"\nlogger:\n  level: warn\n  outputPaths:\n    - "+filepath.Join(dir, "replay.log")+"\n")

	require.NoError(t, run(context.Background(), []string{"--config", config}))
	require.NoError(t, run(context.Background(), []string{"--config", config, "--printConfig"}))
}

func TestRunWithoutScripts(t *testing.T) {
	require.Error(t, run(context.Background(), nil))
	require.Error(t, run(context.Background(), []string{"--unknown"}))
}
