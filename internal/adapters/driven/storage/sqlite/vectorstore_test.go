package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
)

func newStore(t *testing.T) *VectorStore {
	t.Helper()
	s, err := NewVectorStore(t.TempDir(), 3)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func record(id, filename string, idx int, content string, vec []float32) domain.EmbeddingRecord {
	return domain.EmbeddingRecord{
		ID:         id,
		Filename:   filename,
		ChunkIndex: idx,
		Content:    content,
		Embedding:  vec,
	}
}

func TestNewVectorStore(t *testing.T) {
	t.Run("creates database file", func(t *testing.T) {
		dir := t.TempDir()

		s, err := NewVectorStore(dir, 3)

		require.NoError(t, err)
		defer s.Close()
		assert.FileExists(t, s.Path())
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		_, err := NewVectorStore(t.TempDir(), 0)
		assert.Error(t, err)
	})

	t.Run("reopens an existing database", func(t *testing.T) {
		dir := t.TempDir()
		ctx := context.Background()

		s1, err := NewVectorStore(dir, 3)
		require.NoError(t, err)
		require.NoError(t, s1.Insert(ctx, []domain.EmbeddingRecord{
			record("1", "a.txt", 0, "persisted", []float32{1, 0, 0}),
		}))
		require.NoError(t, s1.Close())

		s2, err := NewVectorStore(dir, 3)
		require.NoError(t, err)
		defer s2.Close()

		n, err := s2.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestInsertAndQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips records", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, []domain.EmbeddingRecord{
			record("1", "notes.txt", 0, "alpha beta gamma", []float32{1, 0, 0}),
			record("2", "notes.txt", 1, "gamma delta epsilon", []float32{0, 1, 0}),
		}))

		hits, err := s.Query(ctx, []float32{1, 0, 0}, 5)

		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "alpha beta gamma", hits[0].Content)
		assert.Equal(t, "notes.txt", hits[0].Filename)
		assert.Equal(t, 0, hits[0].ChunkIndex)
		assert.InDelta(t, 0, hits[0].Distance, 1e-6)
	})

	t.Run("orders ascending by distance and limits to k", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, []domain.EmbeddingRecord{
			record("1", "a.txt", 0, "far", []float32{0, 1, 0}),
			record("2", "b.txt", 0, "near", []float32{1, 0.1, 0}),
			record("3", "c.txt", 0, "exact", []float32{1, 0, 0}),
		}))

		hits, err := s.Query(ctx, []float32{1, 0, 0}, 2)

		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "exact", hits[0].Content)
		assert.Equal(t, "near", hits[1].Content)
		assert.LessOrEqual(t, hits[0].Distance, hits[1].Distance)
	})

	t.Run("breaks ties by insertion order", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, []domain.EmbeddingRecord{
			record("1", "first.txt", 0, "first", []float32{0, 1, 0}),
			record("2", "second.txt", 0, "second", []float32{0, 1, 0}),
		}))

		hits, err := s.Query(ctx, []float32{1, 0, 0}, 2)

		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "first", hits[0].Content)
		assert.Equal(t, "second", hits[1].Content)
	})

	t.Run("empty store returns empty result", func(t *testing.T) {
		s := newStore(t)

		hits, err := s.Query(ctx, []float32{1, 0, 0}, 5)

		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("rejects dimension mismatch on insert", func(t *testing.T) {
		s := newStore(t)

		err := s.Insert(ctx, []domain.EmbeddingRecord{
			record("1", "a.txt", 0, "bad", []float32{1, 0}),
		})

		assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
	})

	t.Run("rejects dimension mismatch on query", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Query(ctx, []float32{1, 0, 0, 0}, 1)

		assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
	})

	t.Run("failed batch inserts nothing", func(t *testing.T) {
		s := newStore(t)

		err := s.Insert(ctx, []domain.EmbeddingRecord{
			record("1", "a.txt", 0, "good", []float32{1, 0, 0}),
			record("1", "a.txt", 1, "duplicate id", []float32{0, 1, 0}),
		})

		require.Error(t, err)
		n, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()

	t.Run("removes everything and is idempotent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, []domain.EmbeddingRecord{
			record("1", "a.txt", 0, "x", []float32{1, 0, 0}),
		}))

		require.NoError(t, s.Clear(ctx))
		require.NoError(t, s.Clear(ctx))

		n, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestBlobCodec(t *testing.T) {
	t.Run("round-trips float32 slices", func(t *testing.T) {
		in := []float32{0.25, -1.5, 3.75, 0}

		out := bytesToFloat32Slice(float32SliceToBytes(in))

		assert.Equal(t, in, out)
	})
}

func TestPing(t *testing.T) {
	s := newStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}
