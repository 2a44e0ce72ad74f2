package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DefaultsToLight(t *testing.T) {
	s := NewStore("device:x", NewMemoryPersister())
	assert.Equal(t, Light, s.Mode())
}

func TestStore_Toggle(t *testing.T) {
	ctx := context.Background()
	s := NewStore("device:x", NewMemoryPersister())

	mode, err := s.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, Dark, mode)

	mode, err = s.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, Light, mode)
}

func TestStore_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		s := NewStore("device:x", NewMemoryPersister())
		require.NoError(t, s.Set(ctx, Dark))
		assert.Equal(t, Dark, s.Mode())
	})

	t.Run("Invalid", func(t *testing.T) {
		s := NewStore("device:x", NewMemoryPersister())
		err := s.Set(ctx, Mode("sepia"))
		assert.ErrorIs(t, err, ErrInvalidMode)
		assert.Equal(t, Light, s.Mode())
	})
}

func TestStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	s := NewStore("device:x", NewMemoryPersister())

	var seen []Mode
	s.Subscribe(func(m Mode) { seen = append(seen, m) })

	// Fires immediately with the current mode, then on each change.
	require.Equal(t, []Mode{Light}, seen)

	require.NoError(t, s.Set(ctx, Dark))
	_, err := s.Toggle(ctx)
	require.NoError(t, err)

	assert.Equal(t, []Mode{Light, Dark, Light}, seen)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersister()

	s := NewStore("user:7", p)
	require.NoError(t, s.Set(ctx, Dark))

	reloaded, err := LoadStore(ctx, "user:7", p)
	require.NoError(t, err)
	assert.Equal(t, Dark, reloaded.Mode())

	// Late subscriber converges on the persisted mode.
	var got Mode
	reloaded.Subscribe(func(m Mode) { got = m })
	assert.Equal(t, Dark, got)
}

func TestLoadStore_UnknownKeyDefaultsToLight(t *testing.T) {
	s, err := LoadStore(context.Background(), "device:new", NewMemoryPersister())
	require.NoError(t, err)
	assert.Equal(t, Light, s.Mode())
}
