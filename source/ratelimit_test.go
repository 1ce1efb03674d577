package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimited_Delegates(t *testing.T) {
	inner := NewMemory()
	inner.Put("logo.svg", []byte("<svg/>"))

	src := NewRateLimited(inner, 100, 10)
	ctx := context.Background()

	ok, err := src.Exists(ctx, "logo.svg")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := src.ReadFile(ctx, "logo.svg")
	require.NoError(t, err)
	assert.Equal(t, []byte("<svg/>"), data)

	_, err = src.ReadFile(ctx, "missing.svg")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRateLimited_ContextCancel(t *testing.T) {
	inner := NewMemory()
	// Zero sustained rate with burst 1: the second call can never proceed.
	src := NewRateLimited(inner, 0, 1)

	ctx := context.Background()
	_, err := src.Exists(ctx, "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = src.Exists(ctx, "b")
	require.Error(t, err)
}
