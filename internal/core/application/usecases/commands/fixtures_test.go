package commands_test

import (
	"testing"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/truck"

	"github.com/stretchr/testify/require"
)

func newTestTruck(t *testing.T) *truck.Truck {
	t.Helper()
	container, err := truck.NewContainer(600, 240, 220)
	require.NoError(t, err)
	tr, err := truck.NewTruck("V01", "Box truck", "1234-ABC", container, 3500, 5)
	require.NoError(t, err)
	return tr
}

func newTestDate(t *testing.T) kernel.PlanDate {
	t.Helper()
	date, err := kernel.NewPlanDate(2025, 3, 14)
	require.NoError(t, err)
	return date
}

func newOilArticle(t *testing.T) cargo.Article {
	t.Helper()
	article, err := cargo.NewArticle("OIL", "Olive oil", kernel.MustDimensions(60, 40, 30), 18, 4, false)
	require.NoError(t, err)
	return article
}

func ptr(v float64) *float64 {
	return &v
}
