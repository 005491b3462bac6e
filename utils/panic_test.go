package utils //nolint:revive // utils is an appropriate package name for utility functions

import (
	"errors"
	"testing"

	arrErrors "github.com/amp-labs/amp-arrays/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPanicRecoveryError(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for nil panic value", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, GetPanicRecoveryError(nil, nil))
	})

	t.Run("wraps error panic value", func(t *testing.T) {
		t.Parallel()

		originalErr := errors.New("test error") //nolint:err113
		err := GetPanicRecoveryError(originalErr, nil)
		require.Error(t, err)
		require.ErrorIs(t, err, arrErrors.ErrPanicRecovery)
		require.ErrorIs(t, err, originalErr)
	})

	t.Run("formats non-error panic value", func(t *testing.T) {
		t.Parallel()

		err := GetPanicRecoveryError(42, nil)
		require.ErrorIs(t, err, arrErrors.ErrPanicRecovery)
		assert.Contains(t, err.Error(), "42")
	})

	t.Run("includes stack trace when provided", func(t *testing.T) {
		t.Parallel()

		stack := []byte("goroutine 1 [running]:\nmain.main()")
		err := GetPanicRecoveryError("boom", stack)
		require.ErrorIs(t, err, arrErrors.ErrPanicRecovery)
		assert.Contains(t, err.Error(), "stack trace:")
		assert.Contains(t, err.Error(), "goroutine 1")
	})
}

func TestCatchPanic(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when fn completes", func(t *testing.T) {
		t.Parallel()

		ran := false

		require.NoError(t, CatchPanic(func() { ran = true }))
		assert.True(t, ran)
	})

	t.Run("converts an index panic", func(t *testing.T) {
		t.Parallel()

		values := []int{1, 2, 3}
		idx := 5

		err := CatchPanic(func() { _ = values[idx] })
		require.ErrorIs(t, err, arrErrors.ErrPanicRecovery)
		assert.Contains(t, err.Error(), "index out of range")
	})
}
