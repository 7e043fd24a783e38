package slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	_, ok, err := mem.Load(ctx, "courses")
	require.NoError(t, err)
	assert.False(t, ok)

	input := []byte(`[]`)
	require.NoError(t, mem.Save(ctx, "courses", input))
	input[0] = 'x'

	data, ok, err := mem.Load(ctx, "courses")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(data))

	data[0] = 'y'
	again, _, _ := mem.Load(ctx, "courses")
	assert.Equal(t, "[]", string(again))
}
