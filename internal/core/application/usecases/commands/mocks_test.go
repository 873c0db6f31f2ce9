package commands_test

import (
	"context"
	"time"

	"loadplanner/internal/core/application/usecases/commands"
	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/plan"
	"loadplanner/internal/core/domain/model/truck"
	"loadplanner/internal/core/ports"

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

type MockLoadHistoryRepository struct {
	mock.Mock
}

func (m *MockLoadHistoryRepository) Add(ctx context.Context, record *plan.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}

func (m *MockUoW) ArticleRepository() ports.ArticleRepository {
	args := m.Called()
	return args.Get(0).(ports.ArticleRepository)
}

func (m *MockUoW) OrderLineRepository() ports.OrderLineRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderLineRepository)
}

func (m *MockUoW) LoadHistoryRepository() ports.LoadHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadHistoryRepository)
}

type MockPlanningUoWFactory struct {
	mock.Mock
}

func (m *MockPlanningUoWFactory) Create() commands.PlanningUoW {
	args := m.Called()
	return args.Get(0).(commands.PlanningUoW)
}

type MockTruckUoWFactory struct {
	mock.Mock
}

func (m *MockTruckUoWFactory) Create() commands.TruckUoW {
	args := m.Called()
	return args.Get(0).(commands.TruckUoW)
}

type MockArticleUoWFactory struct {
	mock.Mock
}

func (m *MockArticleUoWFactory) Create() commands.ArticleUoW {
	args := m.Called()
	return args.Get(0).(commands.ArticleUoW)
}

type MockPlanObserver struct {
	mock.Mock
}

func (m *MockPlanObserver) ObservePlan(
	source string,
	status string,
	placed int,
	overflow int,
	volumePct float64,
	elapsed time.Duration,
) {
	m.Called(source, status, placed, overflow, volumePct, elapsed)
}
