package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedBeforeInit(t *testing.T) {
	l := Named("test")
	require.NotNil(t, l)
	assert.Equal(t, "test", l.Name)
	assert.NotPanics(t, func() { l.Infow("hello", "k", "v") })
}

func TestInitWritesFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	dir := t.TempDir()
	require.NoError(t, Init(Config{Debug: true, LogToFile: true, LogsDir: dir}))
	assert.Equal(t, dir, Log.LogsPath)

	Named("file").Infow("written", "answer", 42)
	_ = Log.Sync()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"written"`)
	assert.Contains(t, string(data), `"answer":42`)
}
