package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	t.Run("succeeds on first attempt", func(t *testing.T) {
		calls := 0

		err := Do(context.Background(), 3, 0, func(_ context.Context) error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0

		err := Do(context.Background(), 5, 0, func(_ context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("not ready")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error when budget exhausted", func(t *testing.T) {
		calls := 0
		boom := errors.New("still down")

		err := Do(context.Background(), 4, 0, func(_ context.Context) error {
			calls++
			return boom
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 4, calls)
	})

	t.Run("zero attempts clamps to one", func(t *testing.T) {
		calls := 0

		_ = Do(context.Background(), 0, 0, func(_ context.Context) error {
			calls++
			return errors.New("down")
		})

		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0

		err := Do(ctx, 10, 50*time.Millisecond, func(_ context.Context) error {
			calls++
			cancel()
			return errors.New("down")
		})

		require.Error(t, err)
		assert.LessOrEqual(t, calls, 2)
	})
}
