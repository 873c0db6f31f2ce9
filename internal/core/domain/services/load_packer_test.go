package services_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/plan"
	"loadplanner/internal/core/domain/model/truck"
	"loadplanner/internal/core/domain/services"
	"loadplanner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoxes(t *testing.T, sizes ...[4]float64) []cargo.Box {
	t.Helper()
	boxes := make([]cargo.Box, 0, len(sizes))
	for i, s := range sizes {
		b, err := cargo.NewBox(i, kernel.MustDimensions(s[0], s[1], s[2]), s[3], cargo.Reference{})
		require.NoError(t, err)
		boxes = append(boxes, b)
	}
	return boxes
}

func repeatBox(t *testing.T, n int, size [4]float64) []cargo.Box {
	t.Helper()
	sizes := make([][4]float64, n)
	for i := range sizes {
		sizes[i] = size
	}
	return newBoxes(t, sizes...)
}

func mustContainer(t *testing.T, lengthCm, widthCm, heightCm float64) truck.Container {
	t.Helper()
	c, err := truck.NewContainer(lengthCm, widthCm, heightCm)
	require.NoError(t, err)
	return c
}

// assertPlanInvariants checks the guarantees every plan must satisfy.
func assertPlanInvariants(t *testing.T, input []cargo.Box, container truck.Container, tolerancePct float64, result plan.Result) {
	t.Helper()
	bounds := container.Bounds(tolerancePct)
	placed := result.Placed()
	overflow := result.Overflow()

	// Every input box appears exactly once.
	var ids []int
	for _, p := range placed {
		ids = append(ids, p.Box().ID())
	}
	for _, b := range overflow {
		ids = append(ids, b.ID())
	}
	slices.Sort(ids)
	want := make([]int, 0, len(input))
	for _, b := range input {
		want = append(want, b.ID())
	}
	slices.Sort(want)
	require.Equal(t, want, ids)

	var used float64
	for i, p := range placed {
		assert.True(t, p.Size().IsRotationOf(p.Box().Size()), "box %d rotation", p.Box().ID())
		assert.LessOrEqual(t, p.MaxX(), bounds.Width()+kernel.Epsilon, "box %d x", p.Box().ID())
		assert.LessOrEqual(t, p.MaxY(), bounds.Depth()+kernel.Epsilon, "box %d y", p.Box().ID())
		assert.LessOrEqual(t, p.MaxZ(), bounds.Height()+kernel.Epsilon, "box %d z", p.Box().ID())
		for _, q := range placed[i+1:] {
			assert.False(t, p.Overlaps(q), "boxes %d and %d overlap", p.Box().ID(), q.Box().ID())
		}
		used += p.Volume()
	}

	m := result.Metrics()
	assert.Equal(t, len(input), m.TotalBoxes)
	assert.Equal(t, len(placed), m.PlacedCount)
	assert.Equal(t, len(overflow), m.OverflowCount)
	assert.InDelta(t, used, m.UsedVolumeCm3, 1e-6)
	assert.InDelta(t, kernel.Round2(used/container.VolumeCm3()*100), m.VolumeOccupancyPct, 1e-9)
}

func TestLoadPacker_Pack(t *testing.T) {
	packer := services.NewLoadPacker(services.DefaultScoreWeights())

	t.Run("should place two cubes side by side and a small cube beside them", func(t *testing.T) {
		container := mustContainer(t, 200, 150, 150)
		boxes := newBoxes(t,
			[4]float64{50, 50, 50, 1},
			[4]float64{100, 100, 100, 10},
			[4]float64{100, 100, 100, 10},
		)

		result, err := packer.Pack(boxes, container, 0, 100)

		require.NoError(t, err)
		assertPlanInvariants(t, boxes, container, 0, result)
		require.Empty(t, result.Overflow())
		placed := result.Placed()
		require.Len(t, placed, 3)
		// Largest first, input order among equals.
		assert.Equal(t, 1, placed[0].Box().ID())
		assert.Equal(t, "(0,0,0)", placed[0].Position().String())
		assert.Equal(t, 2, placed[1].Box().ID())
		assert.Equal(t, "(0,100,0)", placed[1].Position().String())
		assert.Equal(t, 0, placed[2].Box().ID())
		assert.Equal(t, "(100,0,0)", placed[2].Position().String())

		m := result.Metrics()
		assert.InDelta(t, 2_125_000.0, m.UsedVolumeCm3, 0)
		assert.InDelta(t, 47.22, m.VolumeOccupancyPct, 1e-9)
		assert.InDelta(t, 21.0, m.TotalWeightKg, 1e-9)
		assert.Equal(t, plan.Seguro, m.Status)
	})

	t.Run("should overflow a box too large in every orientation", func(t *testing.T) {
		container := mustContainer(t, 200, 150, 150)
		boxes := newBoxes(t, [4]float64{210, 160, 155, 40})

		result, err := packer.Pack(boxes, container, 0, 100)

		require.NoError(t, err)
		assert.Empty(t, result.Placed())
		require.Len(t, result.Overflow(), 1)
		assert.Equal(t, "210x160x155", result.Overflow()[0].Size().String(), "overflow keeps original orientation")
		m := result.Metrics()
		assert.Equal(t, 1, m.OverflowCount)
		assert.InDelta(t, 40.0, m.OverflowWeightKg, 0)
		assert.Equal(t, plan.Exceso, m.Status)
	})

	t.Run("should flag overweight loads even when everything fits", func(t *testing.T) {
		container := mustContainer(t, 600, 240, 220)
		boxes := repeatBox(t, 200, [4]float64{40, 30, 25, 5})

		result, err := packer.Pack(boxes, container, 5, 900)

		require.NoError(t, err)
		assertPlanInvariants(t, boxes, container, 5, result)
		m := result.Metrics()
		assert.Equal(t, 200, m.PlacedCount)
		assert.Equal(t, 0, m.OverflowCount)
		assert.InDelta(t, 1000.0, m.TotalWeightKg, 1e-9)
		assert.InDelta(t, 111.11, m.WeightOccupancyPct, 1e-9)
		assert.Less(t, m.VolumeOccupancyPct, 90.0)
		assert.Equal(t, plan.Exceso, m.Status)
	})

	t.Run("should rotate a box to make it fit", func(t *testing.T) {
		container := mustContainer(t, 100, 50, 30)
		boxes := newBoxes(t, [4]float64{30, 100, 50, 1})

		result, err := packer.Pack(boxes, container, 0, 0)

		require.NoError(t, err)
		require.Len(t, result.Placed(), 1)
		assert.Equal(t, "50x100x30", result.Placed()[0].Size().String())
		assert.InDelta(t, 100.0, result.Metrics().VolumeOccupancyPct, 1e-9)
		assert.Equal(t, plan.Optimo, result.Status())
	})

	t.Run("should return an empty plan for no boxes", func(t *testing.T) {
		container := mustContainer(t, 600, 240, 220)

		result, err := packer.Pack(nil, container, 5, 900)

		require.NoError(t, err)
		assert.Empty(t, result.Placed())
		assert.Empty(t, result.Overflow())
		assert.Equal(t, plan.Seguro, result.Status())
	})

	t.Run("should reject invalid geometry before packing", func(t *testing.T) {
		boxes := append(newBoxes(t, [4]float64{1, 1, 1, 1}), cargo.Box{})

		_, err := packer.Pack(boxes, truck.Container{}, -1, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, cargo.ErrBoxIsNotConstructed)
		assert.ErrorIs(t, err, truck.ErrContainerIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestLoadPacker_Tolerance(t *testing.T) {
	packer := services.NewLoadPacker(services.DefaultScoreWeights())
	container := mustContainer(t, 100, 100, 100)
	// 102 cm never fits the nominal 100 cm footprint.
	boxes := repeatBox(t, 4, [4]float64{102, 50, 100, 1})

	t.Run("should use the overhang only when tolerated", func(t *testing.T) {
		strict, err := packer.Pack(boxes, container, 0, 0)
		require.NoError(t, err)
		assert.Len(t, strict.Overflow(), 4)

		tolerant, err := packer.Pack(boxes, container, 5, 0)
		require.NoError(t, err)
		assertPlanInvariants(t, boxes, container, 5, tolerant)
		assert.Len(t, tolerant.Placed(), 2)
		for _, p := range tolerant.Placed() {
			assert.LessOrEqual(t, p.MaxZ(), 100.0, "height is never tolerated")
		}
	})

	t.Run("overflow should not grow with tolerance", func(t *testing.T) {
		previous := len(boxes) + 1
		for _, tol := range []float64{0, 1, 2, 5, 10, 20} {
			result, err := packer.Pack(boxes, container, tol, 0)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(result.Overflow()), previous, "tolerance %v", tol)
			previous = len(result.Overflow())
		}
	})
}

func TestLoadPacker_ToleranceIsMonotonic(t *testing.T) {
	packer := services.NewLoadPacker(services.DefaultScoreWeights())
	ladder := []float64{0, 1, 2, 5, 10, 15, 20, 30, 50, 100}

	assertMonotonic := func(t *testing.T, boxes []cargo.Box, container truck.Container, label string) {
		t.Helper()
		previous := len(boxes)
		for _, tol := range ladder {
			result, err := packer.Pack(boxes, container, tol, 0)
			require.NoError(t, err)
			assertPlanInvariants(t, boxes, container, tol, result)
			require.LessOrEqual(t, len(result.Overflow()), previous, "%s: tolerance %v", label, tol)
			previous = len(result.Overflow())
		}
	}

	t.Run("mixed boxes in a small container", func(t *testing.T) {
		container := mustContainer(t, 100, 80, 60)
		boxes := newBoxes(t,
			[4]float64{49, 66, 49, 1},
			[4]float64{17, 43, 12, 1},
			[4]float64{10, 39, 15, 1},
			[4]float64{40, 48, 44, 1},
			[4]float64{56, 52, 41, 1},
			[4]float64{42, 15, 41, 1},
			[4]float64{57, 36, 48, 1},
		)

		assertMonotonic(t, boxes, container, "fixed")
	})

	t.Run("random boxes", func(t *testing.T) {
		container := mustContainer(t, 100, 80, 60)
		for seed := range uint64(40) {
			rng := rand.New(rand.NewPCG(seed, 7)) //nolint:gosec // deterministic test data
			sizes := make([][4]float64, 4+rng.IntN(8))
			for i := range sizes {
				sizes[i] = [4]float64{
					float64(10 + rng.IntN(50)),
					float64(10 + rng.IntN(60)),
					float64(10 + rng.IntN(40)),
					1,
				}
			}

			assertMonotonic(t, newBoxes(t, sizes...), container, fmt.Sprintf("seed %d", seed))
		}
	})
}

func TestLoadPacker_RejectsBadSettings(t *testing.T) {
	container := mustContainer(t, 600, 240, 220)
	boxes := newBoxes(t, [4]float64{40, 30, 25, 5})

	t.Run("tolerance above the maximum", func(t *testing.T) {
		packer := services.NewLoadPacker(services.DefaultScoreWeights())

		for _, tol := range []float64{truck.MaxTolerancePct + 1, 1e308, math.Inf(1), math.NaN()} {
			_, err := packer.Pack(boxes, container, tol, 0)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "tolerance %v", tol)
		}
	})

	t.Run("maximum tolerance is accepted", func(t *testing.T) {
		packer := services.NewLoadPacker(services.DefaultScoreWeights())

		result, err := packer.Pack(boxes, container, truck.MaxTolerancePct, 0)

		require.NoError(t, err)
		assert.Len(t, result.Placed(), 1)
	})

	t.Run("non-finite weights", func(t *testing.T) {
		packer := services.NewLoadPacker(services.ScoreWeights{FootprintFit: math.NaN(), Shelf: 10, Corner: math.Inf(-1)})

		_, err := packer.Pack(boxes, container, 5, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorContains(t, err, "footprint weight")
		assert.ErrorContains(t, err, "corner weight")
	})
}

func TestLoadPacker_Properties(t *testing.T) {
	packer := services.NewLoadPacker(services.DefaultScoreWeights())
	container := mustContainer(t, 600, 240, 220)

	for seed := range uint64(5) {
		rng := rand.New(rand.NewPCG(seed, 42)) //nolint:gosec // deterministic test data
		sizes := make([][4]float64, 80)
		for i := range sizes {
			sizes[i] = [4]float64{
				float64(10 + rng.IntN(90)),
				float64(10 + rng.IntN(90)),
				float64(10 + rng.IntN(90)),
				float64(1 + rng.IntN(30)),
			}
		}
		boxes := newBoxes(t, sizes...)

		first, err := packer.Pack(boxes, container, 5, 2000)
		require.NoError(t, err)
		assertPlanInvariants(t, boxes, container, 5, first)

		second, err := packer.Pack(boxes, container, 5, 2000)
		require.NoError(t, err)
		require.Equal(t, len(first.Placed()), len(second.Placed()), "seed %d", seed)
		for i, p := range first.Placed() {
			q := second.Placed()[i]
			assert.Equal(t, p.Box().ID(), q.Box().ID(), "seed %d", seed)
			assert.Equal(t, p.Position().String(), q.Position().String(), "seed %d", seed)
			assert.Equal(t, p.Size().String(), q.Size().String(), "seed %d", seed)
		}
		assert.Equal(t, first.Metrics(), second.Metrics())
	}
}

func TestLoadPacker_Weights(t *testing.T) {
	t.Run("defaults should be 1000, 10 and 1", func(t *testing.T) {
		w := services.NewLoadPacker(services.DefaultScoreWeights()).Weights()

		assert.InDelta(t, 1000.0, w.FootprintFit, 0)
		assert.InDelta(t, 10.0, w.Shelf, 0)
		assert.InDelta(t, 1.0, w.Corner, 0)
	})

	t.Run("custom weights should still produce a valid plan", func(t *testing.T) {
		packer := services.NewLoadPacker(services.ScoreWeights{FootprintFit: 1, Shelf: 100, Corner: 0})
		container := mustContainer(t, 200, 150, 150)
		boxes := repeatBox(t, 10, [4]float64{50, 40, 30, 2})

		result, err := packer.Pack(boxes, container, 0, 0)

		require.NoError(t, err)
		assertPlanInvariants(t, boxes, container, 0, result)
		assert.Empty(t, result.Overflow())
	})
}
