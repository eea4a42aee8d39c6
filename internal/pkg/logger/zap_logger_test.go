package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogsFiltersAndPaginates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget.log")
	lines := `{"level":"INFO","timestamp":"2026-01-01T10:00:00Z","message":"catalog loaded","module":"CatalogService"}
not json at all
{"level":"ERROR","timestamp":"2026-01-01T10:00:01Z","message":"dispatch failed","module":"Interaction"}
{"level":"INFO","timestamp":"2026-01-01T10:00:02Z","message":"conversation started","module":"ChatService"}
`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))

	l := &ZapLogger{filePath: path}

	t.Run("newest first", func(t *testing.T) {
		entries, err := l.GetLogs(LogFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "conversation started", entries[0].Message)
		assert.NotEmpty(t, entries[0].Id)
	})

	t.Run("level filter", func(t *testing.T) {
		entries, err := l.GetLogs(LogFilter{Level: "ERROR"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Interaction", entries[0].Module)
	})

	t.Run("module filter", func(t *testing.T) {
		entries, err := l.GetLogs(LogFilter{Module: "CatalogService"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("offset past end", func(t *testing.T) {
		entries, err := l.GetLogs(LogFilter{Limit: 5, Offset: 7})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestGetLogsMissingFile(t *testing.T) {
	l := &ZapLogger{filePath: filepath.Join(t.TempDir(), "absent.log")}
	entries, err := l.GetLogs(LogFilter{})
	assert.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = NewNopLogger().GetLogs(LogFilter{})
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
