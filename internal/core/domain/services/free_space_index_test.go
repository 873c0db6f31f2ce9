package services_test

import (
	"testing"

	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/services"
	"loadplanner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeSpaceIndex_Commit(t *testing.T) {
	root := services.FreeSpace{W: 150, D: 200, H: 150}

	t.Run("should split into right, behind and above", func(t *testing.T) {
		index := services.NewFreeSpaceIndex(root)

		at, err := index.Commit(0, kernel.MustDimensions(100, 100, 100))

		require.NoError(t, err)
		assert.Equal(t, "(0,0,0)", at.String())
		assert.Equal(t, []services.FreeSpace{
			{X: 100, Y: 0, Z: 0, W: 50, D: 200, H: 150},
			{X: 0, Y: 100, Z: 0, W: 100, D: 100, H: 150},
			{X: 0, Y: 0, Z: 100, W: 100, D: 100, H: 50},
		}, index.Candidates())
	})

	t.Run("children and box should tile the parent", func(t *testing.T) {
		index := services.NewFreeSpaceIndex(root)
		box := kernel.MustDimensions(30, 70, 20)

		_, err := index.Commit(0, box)
		require.NoError(t, err)

		total := box.Volume()
		for _, s := range index.Candidates() {
			total += s.Volume()
		}
		assert.InDelta(t, root.Volume(), total, kernel.Epsilon)
	})

	t.Run("should drop slivers of one centimetre or less", func(t *testing.T) {
		index := services.NewFreeSpaceIndex(services.FreeSpace{W: 101, D: 100, H: 100.5})

		_, err := index.Commit(0, kernel.MustDimensions(100, 100, 100))

		require.NoError(t, err)
		assert.Equal(t, 0, index.Len())
	})

	t.Run("should remove the used space even when it is filled exactly", func(t *testing.T) {
		index := services.NewFreeSpaceIndex(services.FreeSpace{W: 10, D: 10, H: 10})

		_, err := index.Commit(0, kernel.MustDimensions(10, 10, 10))

		require.NoError(t, err)
		assert.Empty(t, index.Candidates())
	})

	t.Run("should reject an orientation that does not fit", func(t *testing.T) {
		index := services.NewFreeSpaceIndex(root)

		_, err := index.Commit(0, kernel.MustDimensions(151, 10, 10))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 1, index.Len(), "index must be unchanged")
	})

	t.Run("should reject an index out of range", func(t *testing.T) {
		index := services.NewFreeSpaceIndex(root)

		_, err := index.Commit(3, kernel.MustDimensions(1, 1, 1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("candidates should be a snapshot", func(t *testing.T) {
		index := services.NewFreeSpaceIndex(root)

		snapshot := index.Candidates()
		snapshot[0].W = 1

		assert.InDelta(t, 150.0, index.Candidates()[0].W, 0)
	})
}

func TestFreeSpaceIndex_Coalesce(t *testing.T) {
	t.Run("should merge neighbours sharing a cross-section", func(t *testing.T) {
		index := services.NewFreeSpaceIndex(services.FreeSpace{W: 150, D: 200, H: 150})
		_, err := index.Commit(0, kernel.MustDimensions(100, 100, 100))
		require.NoError(t, err)
		// Fill the region behind the first box so two equal tops sit side by side.
		_, err = index.Commit(1, kernel.MustDimensions(100, 100, 100))
		require.NoError(t, err)
		require.Equal(t, 3, index.Len())

		merges := index.Coalesce()

		assert.Equal(t, 1, merges)
		assert.Equal(t, []services.FreeSpace{
			{X: 100, Y: 0, Z: 0, W: 50, D: 200, H: 150},
			{X: 0, Y: 0, Z: 100, W: 100, D: 200, H: 50},
		}, index.Candidates())
	})

	t.Run("should stop at a fixed point", func(t *testing.T) {
		index := services.NewFreeSpaceIndex(services.FreeSpace{W: 20, D: 20, H: 10})
		_, err := index.Commit(0, kernel.MustDimensions(10, 10, 5))
		require.NoError(t, err)
		// right {10,0,0,10,20,10}, behind {0,10,0,10,10,10}, above {0,0,5,10,10,5}
		require.Equal(t, 3, index.Len())

		assert.Equal(t, 0, index.Coalesce())

		_, err = index.Commit(1, kernel.MustDimensions(10, 10, 5))
		require.NoError(t, err)
		// right {10,0,0,10,20,10}, above {0,0,5,10,10,5}, above {0,10,5,10,10,5}

		assert.Equal(t, 1, index.Coalesce())
		assert.Equal(t, []services.FreeSpace{
			{X: 10, Y: 0, Z: 0, W: 10, D: 20, H: 10},
			{X: 0, Y: 0, Z: 5, W: 10, D: 20, H: 5},
		}, index.Candidates())
		assert.Equal(t, 0, index.Coalesce(), "second call must find nothing")
	})

	t.Run("should merge along the width", func(t *testing.T) {
		index := services.NewFreeSpaceIndex(services.FreeSpace{W: 20, D: 10, H: 10})
		_, err := index.Commit(0, kernel.MustDimensions(10, 5, 10))
		require.NoError(t, err)
		// right {10,0,0,10,10,10}, behind {0,5,0,10,5,10}
		_, err = index.Commit(0, kernel.MustDimensions(10, 5, 10))
		require.NoError(t, err)
		// behind {0,5,0,10,5,10}, behind {10,5,0,10,5,10}

		assert.Equal(t, 1, index.Coalesce())
		assert.Equal(t, []services.FreeSpace{{X: 0, Y: 5, Z: 0, W: 20, D: 5, H: 10}}, index.Candidates())
	})
}
