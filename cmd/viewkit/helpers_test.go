package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

type commandResult struct {
	app    *AppContext
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, args ...string) commandResult {
	t.Helper()

	app := &AppContext{Lookup: noEnv}
	root := newRootCmd(app)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return commandResult{app: app, stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
