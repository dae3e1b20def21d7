package binpack2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRotateIsIdempotentInPairs(t *testing.T) {
	it := NewItem(1, 3, 7)
	it.Rotate()
	assert.Equal(t, 7, it.Width)
	assert.Equal(t, 3, it.Height)
	assert.True(t, it.Rotated)

	it.Rotate()
	assert.Equal(t, 3, it.Width)
	assert.Equal(t, 7, it.Height)
	assert.False(t, it.Rotated)
}

func TestItemAreaTracksCurrentOrientation(t *testing.T) {
	it := NewItem(1, 4, 5)
	require.Equal(t, 20, it.Area())
	it.Rotate()
	require.Equal(t, 20, it.Area())
}

func TestItemNotPlacedUntilCommitted(t *testing.T) {
	it := NewItem(1, 2, 2)
	assert.False(t, it.Placed())
	it.place(3, 4)
	assert.True(t, it.Placed())
	assert.Equal(t, 3, it.X)
	assert.Equal(t, 4, it.Y)
}

func TestFitsOrientation(t *testing.T) {
	assert.True(t, fitsOrientation(3, 4, 5, 5))
	assert.False(t, fitsOrientation(6, 4, 5, 5))
	assert.True(t, fitsOrientation(5, 5, 5, 5))
}
