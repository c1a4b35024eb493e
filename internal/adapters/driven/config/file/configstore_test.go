package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	t.Run("creates store in empty directory", func(t *testing.T) {
		dir := t.TempDir()

		s, err := NewConfigStore(dir)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "config.toml"), s.Path())
	})

	t.Run("starts empty when no file exists", func(t *testing.T) {
		s, err := NewConfigStore(t.TempDir())

		require.NoError(t, err)
		_, ok := s.Get("anything")
		assert.False(t, ok)
	})
}

func TestSetAndGet(t *testing.T) {
	t.Run("round-trips values", func(t *testing.T) {
		s, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, s.Set("llm.model", "gemma:2b"))
		require.NoError(t, s.Set("embedding.dimensions", 768))
		require.NoError(t, s.Set("verbose", true))

		assert.Equal(t, "gemma:2b", s.GetString("llm.model"))
		assert.Equal(t, 768, s.GetInt("embedding.dimensions"))
		assert.True(t, s.GetBool("verbose"))
	})

	t.Run("missing keys return zero values", func(t *testing.T) {
		s, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)

		assert.Empty(t, s.GetString("nope"))
		assert.Zero(t, s.GetInt("nope"))
		assert.False(t, s.GetBool("nope"))
	})

	t.Run("wrong types return zero values", func(t *testing.T) {
		s, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, s.Set("key", 42))

		assert.Empty(t, s.GetString("key"))
	})
}

func TestPersistence(t *testing.T) {
	t.Run("set persists across reopen", func(t *testing.T) {
		dir := t.TempDir()

		s1, err := NewConfigStore(dir)
		require.NoError(t, err)
		require.NoError(t, s1.Set("store.backend", "sqlite"))

		s2, err := NewConfigStore(dir)
		require.NoError(t, err)
		assert.Equal(t, "sqlite", s2.GetString("store.backend"))
	})

	t.Run("loads nested tables as dotted keys", func(t *testing.T) {
		dir := t.TempDir()
		content := "[ollama]\nbase_url = \"http://localhost:11434\"\n\n[embedding]\ndimensions = 768\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

		s, err := NewConfigStore(dir)
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:11434", s.GetString("ollama.base_url"))
		assert.Equal(t, 768, s.GetInt("embedding.dimensions"))
	})
}
