package credential

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolder(t *testing.T) {
	t.Run("Absent by default", func(t *testing.T) {
		h := NewHolder("")
		key, err := h.Get()
		assert.ErrorIs(t, err, ErrAbsent)
		assert.Empty(t, key)
		assert.False(t, h.Present())
	})

	t.Run("Whitespace-only key is absent", func(t *testing.T) {
		h := NewHolder("  \n")
		assert.False(t, h.Present())
	})

	t.Run("Set replaces key", func(t *testing.T) {
		h := NewHolder("old")
		h.Set(" new\n")

		key, err := h.Get()
		require.NoError(t, err)
		assert.Equal(t, "new", key)
	})

	t.Run("Concurrent readers see a committed value", func(t *testing.T) {
		h := NewHolder("first")
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				key, err := h.Get()
				assert.NoError(t, err)
				assert.Contains(t, []string{"first", "second"}, key)
			}()
		}
		h.Set("second")
		wg.Wait()
	})
}
