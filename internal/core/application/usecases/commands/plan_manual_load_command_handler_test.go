package commands_test

import (
	"testing"

	"loadplanner/internal/core/application/usecases/commands"
	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/plan"
	"loadplanner/internal/core/domain/services"
	"loadplanner/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlanManualLoadCommandHandler_Handle(t *testing.T) {
	packer := services.NewLoadPacker(services.DefaultScoreWeights())

	t.Run("should plan items without writing anything", func(t *testing.T) {
		ctx := t.Context()
		factory := new(MockPlanningUoWFactory)
		uow := new(MockUoW)
		trucks := new(MockTruckRepository)
		articles := new(MockArticleRepository)
		observer := new(MockPlanObserver)
		items := []cargo.ManualItem{
			{ArticleCode: "OIL", Quantity: 2},
			{ArticleCode: " OIL ", Quantity: 1},
			{ArticleCode: "CRATE", Quantity: 1, LengthCm: 100, WidthCm: 80, HeightCm: 60, WeightKg: 40},
		}
		cmd, err := commands.NewPlanManualLoadCommand("V01", items, ptr(0))
		require.NoError(t, err)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("TruckRepository").Return(trucks).Once()
		uow.On("ArticleRepository").Return(articles).Once()
		trucks.On("Get", ctx, "V01").Return(newTestTruck(t), nil).Once()
		articles.On("GetDimensions", ctx, []string{"OIL", "CRATE"}).
			Return(cargo.Catalog{"OIL": newOilArticle(t)}, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		observer.On("ObservePlan", commands.SourceManual, "SEGURO", 4, 0, mock.Anything, mock.Anything).Once()

		handler := commands.NewPlanManualLoadCommandHandler(factory, packer, observer)
		resp, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Nil(t, resp.Date)
		assert.InDelta(t, 0.0, resp.TolerancePct, 0)
		require.Len(t, resp.Boxes, 4)
		assert.Equal(t, "Olive oil", resp.Boxes[0].Reference().Label)
		assert.InDelta(t, 100.0, resp.Boxes[3].Size().Width(), 0)
		assert.InDelta(t, 40.0, resp.Boxes[3].WeightKg(), 0)
		assert.Equal(t, plan.Seguro, resp.Result.Status())
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		mock.AssertExpectationsForObjects(t, factory, uow, trucks, articles, observer)
	})

	t.Run("should skip the catalog when no item names an article", func(t *testing.T) {
		ctx := t.Context()
		factory := new(MockPlanningUoWFactory)
		uow := new(MockUoW)
		trucks := new(MockTruckRepository)
		cmd, err := commands.NewPlanManualLoadCommand("V01", []cargo.ManualItem{
			{Quantity: 1, LengthCm: 700, WidthCm: 100, HeightCm: 100, WeightKg: 10},
		}, ptr(0))
		require.NoError(t, err)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("TruckRepository").Return(trucks).Once()
		trucks.On("Get", ctx, "V01").Return(newTestTruck(t), nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewPlanManualLoadCommandHandler(factory, packer, nil)
		resp, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Len(t, resp.Result.Overflow(), 1)
		assert.Equal(t, plan.Exceso, resp.Result.Status())
		uow.AssertNotCalled(t, "ArticleRepository")
		mock.AssertExpectationsForObjects(t, factory, uow, trucks)
	})

	t.Run("should report an unknown vehicle", func(t *testing.T) {
		ctx := t.Context()
		factory := new(MockPlanningUoWFactory)
		uow := new(MockUoW)
		trucks := new(MockTruckRepository)
		cmd, err := commands.NewPlanManualLoadCommand("NOPE", []cargo.ManualItem{{ArticleCode: "OIL"}}, nil)
		require.NoError(t, err)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("TruckRepository").Return(trucks).Once()
		trucks.On("Get", ctx, "NOPE").Return(nil, errs.NewObjectNotFoundError("vehicle", "NOPE")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewPlanManualLoadCommandHandler(factory, packer, nil)
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrVehicleNotFound)
		mock.AssertExpectationsForObjects(t, factory, uow, trucks)
	})
}
