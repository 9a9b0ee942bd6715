package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "hashcollide.log")
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestLogger_InfoGoesToFileOnly(t *testing.T) {
	path := logPath(t)
	var console bytes.Buffer

	l, err := New(path, &console)
	require.NoError(t, err)

	l.Infof("search started offset=%d", 300)
	require.NoError(t, l.Close())

	assert.Contains(t, readLog(t, path), "INFO  search started offset=300")
	assert.Empty(t, console.String())
}

func TestLogger_ErrorsReachConsole(t *testing.T) {
	path := logPath(t)
	var console bytes.Buffer

	l, err := New(path, &console)
	require.NoError(t, err)

	l.Warnf("clipboard unavailable")
	l.Errorf("search failed: %s", "boom")
	require.NoError(t, l.Close())

	assert.Contains(t, console.String(), "WARN: clipboard unavailable")
	assert.Contains(t, console.String(), "ERROR: search failed: boom")
	assert.Contains(t, readLog(t, path), "search failed: boom")
}

func TestLogger_RunID(t *testing.T) {
	path := logPath(t)

	l, err := New(path, nil)
	require.NoError(t, err)

	l.SetRunID("abc123")
	l.Debugf("tick")
	require.NoError(t, l.Close())

	assert.Contains(t, readLog(t, path), "run=abc123 tick")
}

func TestNew_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "logs", "hashcollide.log")

	l, err := New(path, nil)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestGlobal_UninitializedIsSafe(t *testing.T) {
	require.NoError(t, Close())

	Debugf("dropped")
	Infof("dropped")
	SetRunID("x")
}

func TestGlobal_InitAndClose(t *testing.T) {
	path := logPath(t)

	require.NoError(t, Init(path))
	Infof("hello %s", "world")
	require.NoError(t, Close())

	assert.Contains(t, readLog(t, path), "hello world")
}

func TestGlobal_ErrorfReachesFileAndConsole(t *testing.T) {
	path := logPath(t)
	var console bytes.Buffer

	l, err := New(path, &console)
	require.NoError(t, err)
	globalLogger = l
	defer func() { _ = Close() }()

	Errorf("search: %s", "context canceled")
	require.NoError(t, Close())

	assert.Contains(t, console.String(), "ERROR: search: context canceled")
	assert.Contains(t, readLog(t, path), "ERROR search: context canceled")
}
