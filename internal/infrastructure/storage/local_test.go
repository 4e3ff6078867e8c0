package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalArtifactSink(t *testing.T) {
	t.Run("empty directory returns error", func(t *testing.T) {
		_, err := NewLocalArtifactSink("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "directory is required")
	})

	t.Run("creates the directory if missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "exports", "nested")
		_, err := NewLocalArtifactSink(dir)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestLocalArtifactSink_Save(t *testing.T) {
	t.Run("writes content under the final name", func(t *testing.T) {
		dir := t.TempDir()
		sink, err := NewLocalArtifactSink(dir)
		require.NoError(t, err)

		location, err := sink.Save(context.Background(), "Rossi_S.R.L._Analisi.pdf",
			strings.NewReader("%PDF-1.4 content"), "application/pdf", 16)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(location))
		assert.Equal(t, "Rossi_S.R.L._Analisi.pdf", filepath.Base(location))

		data, err := os.ReadFile(location)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 content", string(data))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		sink, err := NewLocalArtifactSink(dir)
		require.NoError(t, err)

		_, err = sink.Save(context.Background(), "report.pdf", strings.NewReader("data"), "application/pdf", 4)
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "report.pdf", entries[0].Name())
	})

	t.Run("overwrites an existing export", func(t *testing.T) {
		dir := t.TempDir()
		sink, err := NewLocalArtifactSink(dir)
		require.NoError(t, err)

		_, err = sink.Save(context.Background(), "report.pdf", strings.NewReader("first"), "application/pdf", 5)
		require.NoError(t, err)
		location, err := sink.Save(context.Background(), "report.pdf", strings.NewReader("second"), "application/pdf", 6)
		require.NoError(t, err)

		data, err := os.ReadFile(location)
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})

	t.Run("rejects names with path separators", func(t *testing.T) {
		dir := t.TempDir()
		sink, err := NewLocalArtifactSink(dir)
		require.NoError(t, err)

		for _, name := range []string{"../escape.pdf", "sub/dir.pdf", `back\slash.pdf`, "..", ""} {
			_, err := sink.Save(context.Background(), name, strings.NewReader("x"), "application/pdf", 1)
			assert.Error(t, err, "name %q must be rejected", name)
		}
	})

	t.Run("failed reader leaves the directory clean", func(t *testing.T) {
		dir := t.TempDir()
		sink, err := NewLocalArtifactSink(dir)
		require.NoError(t, err)

		_, err = sink.Save(context.Background(), "report.pdf", failingReader{}, "application/pdf", -1)
		require.Error(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, os.ErrClosed
}
