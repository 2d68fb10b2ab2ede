package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeExecute(t *testing.T) {
	t.Run("No panic passes through", func(t *testing.T) {
		err := SafeExecute("load_sample", func() error { return nil })
		assert.NoError(t, err)

		sentinel := New("hook failed")
		err = SafeExecute("load_sample", func() error { return sentinel })
		assert.True(t, Is(err, sentinel))
	})

	t.Run("Panic becomes PanicError", func(t *testing.T) {
		err := SafeExecute("load_sample", func() error {
			panic("bad sample")
		})
		require.Error(t, err)

		var panicErr *PanicError
		require.True(t, As(err, &panicErr))
		assert.Equal(t, "bad sample", panicErr.PanicValue)
		assert.Equal(t, "load_sample", panicErr.Operation)
		assert.NotEmpty(t, panicErr.StackTrace)
		assert.Contains(t, err.Error(), "panic in load_sample")
	})
}

func TestRecoverKeepsOriginalError(t *testing.T) {
	original := New("partial failure")
	fn := func() (err error) {
		defer Recover(&err, "load_data")
		err = original
		panic("then panicked")
	}

	err := fn()
	require.Error(t, err)
	assert.True(t, Is(err, original))
	assert.Contains(t, err.Error(), "panic in load_data")
}
