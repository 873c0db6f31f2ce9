package cargo_test

import (
	"testing"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBox(t *testing.T) {
	size := kernel.MustDimensions(40, 30, 25)
	ref := cargo.Reference{Label: "A-1 #1", OrderNumber: 7, ClientCode: "C1", ArticleCode: "A-1"}

	t.Run("should create box with valid parameters", func(t *testing.T) {
		b, err := cargo.NewBox(3, size, 5, ref)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, 3, b.ID())
		assert.True(t, b.Size().IsEqual(size))
		assert.InDelta(t, 5.0, b.WeightKg(), 0)
		assert.InDelta(t, 30000.0, b.Volume(), 0)
		assert.Equal(t, ref, b.Reference())
	})

	t.Run("should fail with unconstructed dimensions", func(t *testing.T) {
		_, err := cargo.NewBox(0, kernel.Dimensions{}, 5, ref)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrDimensionsIsNotConstructed)
	})

	t.Run("should fail with non-positive weight", func(t *testing.T) {
		_, err := cargo.NewBox(0, size, 0, ref)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "box 0")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var b cargo.Box
		assert.ErrorIs(t, b.Validate(), cargo.ErrBoxIsNotConstructed)
	})
}

func TestNewPlacedBox(t *testing.T) {
	box, err := cargo.NewBox(0, kernel.MustDimensions(40, 30, 25), 5, cargo.Reference{})
	require.NoError(t, err)
	origin, err := kernel.NewPoint(0, 0, 0)
	require.NoError(t, err)

	t.Run("should accept a rotation of the box", func(t *testing.T) {
		p, err := cargo.NewPlacedBox(box, origin, kernel.MustDimensions(25, 40, 30))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, box.Volume(), p.Volume(), kernel.Epsilon)
		assert.InDelta(t, 25.0, p.MaxX(), 0)
		assert.InDelta(t, 40.0, p.MaxY(), 0)
		assert.InDelta(t, 30.0, p.MaxZ(), 0)
	})

	t.Run("should reject dimensions that are not a rotation", func(t *testing.T) {
		_, err := cargo.NewPlacedBox(box, origin, kernel.MustDimensions(40, 30, 20))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPlacedBox_Overlaps(t *testing.T) {
	place := func(x, y, z float64) cargo.PlacedBox {
		b, err := cargo.NewBox(0, kernel.MustDimensions(10, 10, 10), 1, cargo.Reference{})
		require.NoError(t, err)
		pos, err := kernel.NewPoint(x, y, z)
		require.NoError(t, err)
		p, err := cargo.NewPlacedBox(b, pos, b.Size())
		require.NoError(t, err)
		return p
	}

	a := place(0, 0, 0)

	assert.True(t, a.Overlaps(place(5, 5, 5)))
	assert.False(t, a.Overlaps(place(10, 0, 0)), "shared face is not an overlap")
	assert.False(t, a.Overlaps(place(0, 0, 10)))
	assert.False(t, a.Overlaps(place(20, 20, 0)))
}
