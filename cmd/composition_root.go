package cmd

import (
	"log/slog"

	httpin "loadplanner/internal/adapters/in/http"
	"loadplanner/internal/adapters/out/postgres"
	"loadplanner/internal/adapters/out/postgres/articlerepo"
	"loadplanner/internal/adapters/out/postgres/orderlinerepo"
	"loadplanner/internal/adapters/out/postgres/truckrepo"
	"loadplanner/internal/core/application/usecases/commands"
	"loadplanner/internal/core/application/usecases/queries"
	"loadplanner/internal/core/domain/services"
	"loadplanner/internal/jobs"
	"loadplanner/internal/pkg/monitoring"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	packer     services.LoadPacker
	metrics    *monitoring.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		packer:     services.NewLoadPacker(config.ScoreWeights()),
		metrics:    monitoring.NewMetrics(),
		logger:     logger,
	}
}

func (c *CompositionRoot) Metrics() *monitoring.Metrics {
	return c.metrics
}

func (c *CompositionRoot) CreatePlanLoadCommandHandler() commands.PlanLoadCommandHandler {
	var f commands.PlanningUoWFactory = FuncPlanningUoWFactory(func() commands.PlanningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlanLoadCommandHandler(f, c.packer, c.metrics, c.logger)
}

func (c *CompositionRoot) CreatePlanManualLoadCommandHandler() commands.PlanManualLoadCommandHandler {
	var f commands.PlanningUoWFactory = FuncPlanningUoWFactory(func() commands.PlanningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlanManualLoadCommandHandler(f, c.packer, c.metrics)
}

func (c *CompositionRoot) CreateUpdateTruckConfigCommandHandler() commands.UpdateTruckConfigCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTruckConfigCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateArticleDimensionsCommandHandler() commands.UpdateArticleDimensionsCommandHandler {
	var f commands.ArticleUoWFactory = FuncArticleUoWFactory(func() commands.ArticleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateArticleDimensionsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetVehiclesQueryHandler() queries.GetVehiclesQueryHandler {
	return queries.NewGetVehiclesQueryHandler(
		truckrepo.NewGormTruckRepository(c.gormDB),
		orderlinerepo.NewGormOrderLineRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetTruckConfigQueryHandler() queries.GetTruckConfigQueryHandler {
	return queries.NewGetTruckConfigQueryHandler(truckrepo.NewGormTruckRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetArticleDimensionsQueryHandler() queries.GetArticleDimensionsQueryHandler {
	return queries.NewGetArticleDimensionsQueryHandler(articlerepo.NewGormArticleRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetTruckOrdersQueryHandler() queries.GetTruckOrdersQueryHandler {
	return queries.NewGetTruckOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadHistoryQueryHandler() queries.GetLoadHistoryQueryHandler {
	return queries.NewGetLoadHistoryQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP surface.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		PlanLoad:                c.CreatePlanLoadCommandHandler(),
		PlanManualLoad:          c.CreatePlanManualLoadCommandHandler(),
		UpdateTruckConfig:       c.CreateUpdateTruckConfigCommandHandler(),
		UpdateArticleDimensions: c.CreateUpdateArticleDimensionsCommandHandler(),
		GetVehicles:             c.CreateGetVehiclesQueryHandler(),
		GetTruckConfig:          c.CreateGetTruckConfigQueryHandler(),
		GetArticleDimensions:    c.CreateGetArticleDimensionsQueryHandler(),
		GetTruckOrders:          c.CreateGetTruckOrdersQueryHandler(),
		GetLoadHistory:          c.CreateGetLoadHistoryQueryHandler(),
	}, c.logger)
	return httpin.NewEcho(server, c.metrics, c.logger)
}

// CreateJobManager returns the background jobs enabled by the configuration.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var scheduled []jobs.Job
	if c.config.SnapshotEnabled {
		scheduled = append(scheduled, jobs.NewLoadPlanSnapshotJob(
			c.CreatePlanLoadCommandHandler(),
			orderlinerepo.NewGormOrderLineRepository(c.gormDB),
			c.metrics,
			c.config.SnapshotCron,
			c.config.SnapshotConcurrency,
			c.logger,
		))
	}
	return jobs.NewJobManager(c.logger, scheduled...)
}

type FuncPlanningUoWFactory func() commands.PlanningUoW

func (f FuncPlanningUoWFactory) Create() commands.PlanningUoW {
	return f()
}

type FuncTruckUoWFactory func() commands.TruckUoW

func (f FuncTruckUoWFactory) Create() commands.TruckUoW {
	return f()
}

type FuncArticleUoWFactory func() commands.ArticleUoW

func (f FuncArticleUoWFactory) Create() commands.ArticleUoW {
	return f()
}
