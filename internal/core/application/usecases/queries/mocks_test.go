package queries_test

import (
	"context"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/truck"

	"github.com/stretchr/testify/mock"
)

type MockTruckRepository struct {
	mock.Mock
}

func (m *MockTruckRepository) Get(ctx context.Context, code string) (*truck.Truck, error) {
	args := m.Called(ctx, code)
	t, _ := args.Get(0).(*truck.Truck)
	return t, args.Error(1)
}

func (m *MockTruckRepository) GetAll(ctx context.Context) ([]*truck.Truck, error) {
	args := m.Called(ctx)
	trucks, _ := args.Get(0).([]*truck.Truck)
	return trucks, args.Error(1)
}

func (m *MockTruckRepository) UpdateInterior(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) GetDimensions(ctx context.Context, codes []string) (cargo.Catalog, error) {
	args := m.Called(ctx, codes)
	catalog, _ := args.Get(0).(cargo.Catalog)
	return catalog, args.Error(1)
}

func (m *MockArticleRepository) Get(ctx context.Context, code string) (cargo.Article, error) {
	args := m.Called(ctx, code)
	article, _ := args.Get(0).(cargo.Article)
	return article, args.Error(1)
}

func (m *MockArticleRepository) Save(ctx context.Context, article cargo.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

type MockOrderLineRepository struct {
	mock.Mock
}

func (m *MockOrderLineRepository) GetForVehicle(
	ctx context.Context,
	vehicleCode string,
	date kernel.PlanDate,
) ([]cargo.OrderLine, error) {
	args := m.Called(ctx, vehicleCode, date)
	lines, _ := args.Get(0).([]cargo.OrderLine)
	return lines, args.Error(1)
}

func (m *MockOrderLineRepository) GetVehicleCodesWithOrders(ctx context.Context, date kernel.PlanDate) ([]string, error) {
	args := m.Called(ctx, date)
	codes, _ := args.Get(0).([]string)
	return codes, args.Error(1)
}
