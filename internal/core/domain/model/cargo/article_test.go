package cargo_test

import (
	"testing"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	box := kernel.MustDimensions(60, 40, 30)

	t.Run("should create article", func(t *testing.T) {
		a, err := cargo.NewArticle(" A-1 ", "Olive oil 5L", box, 12.5, 4, false)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "A-1", a.Code())
		assert.Equal(t, "Olive oil 5L", a.Name())
		assert.InDelta(t, 12.5, a.WeightKg(), 0)
		assert.Equal(t, 4, a.UnitsPerBox())
		assert.False(t, a.Estimated())
	})

	t.Run("should clamp units per box to one", func(t *testing.T) {
		a, err := cargo.NewArticle("A-1", "", box, 1, 0, false)

		require.NoError(t, err)
		assert.Equal(t, 1, a.UnitsPerBox())
	})

	t.Run("should require code and positive weight", func(t *testing.T) {
		_, err := cargo.NewArticle("  ", "", box, -1, 1, false)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestDefaultArticle(t *testing.T) {
	a := cargo.DefaultArticle("UNKNOWN")

	require.NoError(t, a.Validate())
	assert.Equal(t, "40x30x25", a.Box().String())
	assert.InDelta(t, 5.0, a.WeightKg(), 0)
	assert.True(t, a.Estimated())
}

func TestCatalog(t *testing.T) {
	known, err := cargo.NewArticle("A-1", "", kernel.MustDimensions(10, 10, 10), 1, 1, false)
	require.NoError(t, err)
	catalog := cargo.Catalog{"A-1": known}

	t.Run("lookup should fall back to the default box", func(t *testing.T) {
		assert.False(t, catalog.Lookup("A-1").Estimated())
		assert.True(t, catalog.Lookup("B-2").Estimated())
	})

	t.Run("complete should fill every missing code", func(t *testing.T) {
		full := catalog.Complete([]string{"A-1", "B-2", "C-3"})

		require.Len(t, full, 3)
		assert.False(t, full["A-1"].Estimated())
		assert.True(t, full["B-2"].Estimated())
		assert.True(t, full["C-3"].Estimated())
		assert.Len(t, catalog, 1, "receiver must not be modified")
	})
}

func TestOrderLine(t *testing.T) {
	t.Run("box count should round packages and default to one", func(t *testing.T) {
		assert.Equal(t, 3, cargo.OrderLine{ArticleCode: "A", Packages: 2.6}.BoxCount())
		assert.Equal(t, 1, cargo.OrderLine{ArticleCode: "A", Packages: 0}.BoxCount())
		assert.Equal(t, 1, cargo.OrderLine{ArticleCode: "A", Packages: 0.2}.BoxCount())
	})

	t.Run("validate should reject negative counts and missing article", func(t *testing.T) {
		err := cargo.OrderLine{Units: -1}.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestManualItem(t *testing.T) {
	assert.Equal(t, 1, cargo.ManualItem{Quantity: 0}.BoxCount())
	assert.Equal(t, 4, cargo.ManualItem{Quantity: 3.5}.BoxCount())
	assert.True(t, cargo.ManualItem{LengthCm: 1, WidthCm: 1, HeightCm: 1}.HasDimensions())
	assert.False(t, cargo.ManualItem{LengthCm: 1, WidthCm: 1}.HasDimensions())
}
