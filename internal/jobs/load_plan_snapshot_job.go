package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"loadplanner/internal/core/application/usecases/commands"
	"loadplanner/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultSnapshotSchedule runs the snapshot at 06:00 every day. The
	// expression includes a leading seconds field.
	DefaultSnapshotSchedule = "0 0 6 * * *"
	// DefaultSnapshotConcurrency bounds how many trucks are planned at once.
	DefaultSnapshotConcurrency = 4
	// SnapshotUser is recorded as the author of snapshot plans.
	SnapshotUser = "SNAPSHOT"
)

// PlanLoadHandler plans one truck for one day.
type PlanLoadHandler interface {
	Handle(ctx context.Context, command commands.PlanLoadCommand) (commands.PlanResponse, error)
}

// VehicleSource lists the vehicles that have orders on a day.
type VehicleSource interface {
	GetVehicleCodesWithOrders(ctx context.Context, date kernel.PlanDate) ([]string, error)
}

// SnapshotObserver receives the outcome of each snapshot run.
type SnapshotObserver interface {
	ObserveSnapshot(planned, failed int)
}

// SnapshotSummary counts the trucks of one run.
type SnapshotSummary struct {
	Planned int
	Failed  int
}

// LoadPlanSnapshotJob plans every truck with orders for the current day, so
// the morning's plans are in the load history before the warehouse opens.
// A truck that fails to plan is logged and skipped.
type LoadPlanSnapshotJob struct {
	handler     PlanLoadHandler
	vehicles    VehicleSource
	observer    SnapshotObserver
	schedule    string
	concurrency int
	cron        *cron.Cron
	logger      *slog.Logger
	now         func() time.Time
}

// NewLoadPlanSnapshotJob creates the job. An empty schedule means
// DefaultSnapshotSchedule and a concurrency below 1 means
// DefaultSnapshotConcurrency. observer may be nil.
func NewLoadPlanSnapshotJob(
	handler PlanLoadHandler,
	vehicles VehicleSource,
	observer SnapshotObserver,
	schedule string,
	concurrency int,
	logger *slog.Logger,
) *LoadPlanSnapshotJob {
	if schedule == "" {
		schedule = DefaultSnapshotSchedule
	}
	if concurrency < 1 {
		concurrency = DefaultSnapshotConcurrency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadPlanSnapshotJob{
		handler:     handler,
		vehicles:    vehicles,
		observer:    observer,
		schedule:    schedule,
		concurrency: concurrency,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "load_plan_snapshot_job"),
		now:         time.Now,
	}
}

// Name identifies the job in logs.
func (j *LoadPlanSnapshotJob) Name() string {
	return "load plan snapshot"
}

// Start schedules the job. It fails when the schedule does not parse.
func (j *LoadPlanSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx, kernel.PlanDateOf(j.now())); err != nil {
			j.logger.ErrorContext(ctx, "Load plan snapshot failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Load plan snapshot job started", "schedule", j.schedule)
	return nil
}

// Stop unschedules the job and waits for a running snapshot to finish.
func (j *LoadPlanSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Load plan snapshot job stopped")
}

// RunOnce plans every vehicle with orders on date. Per-vehicle failures are
// counted, not returned; the error reports only a failure to list vehicles.
func (j *LoadPlanSnapshotJob) RunOnce(ctx context.Context, date kernel.PlanDate) (SnapshotSummary, error) {
	codes, err := j.vehicles.GetVehicleCodesWithOrders(ctx, date)
	if err != nil {
		return SnapshotSummary{}, err
	}

	var planned, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(j.concurrency)

	for _, code := range codes {
		g.Go(func() error {
			if err := j.planVehicle(ctx, code, date); err != nil {
				failed.Add(1)
				j.logger.WarnContext(ctx, "Vehicle not planned",
					"vehicle", code,
					"date", date.String(),
					"error", err,
				)
				return nil
			}
			planned.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	summary := SnapshotSummary{
		Planned: int(planned.Load()),
		Failed:  int(failed.Load()),
	}
	if j.observer != nil {
		j.observer.ObserveSnapshot(summary.Planned, summary.Failed)
	}
	j.logger.InfoContext(ctx, "Load plan snapshot finished",
		"date", date.String(),
		"vehicles", len(codes),
		"planned", summary.Planned,
		"failed", summary.Failed,
	)
	return summary, nil
}

func (j *LoadPlanSnapshotJob) planVehicle(ctx context.Context, code string, date kernel.PlanDate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cmd, err := commands.NewPlanLoadCommand(code, date, nil, SnapshotUser)
	if err != nil {
		return err
	}

	resp, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if resp.Truck == nil {
		return errors.New("plan returned no truck")
	}

	m := resp.Result.Metrics()
	j.logger.DebugContext(ctx, "Vehicle planned",
		"vehicle", code,
		"status", m.Status.String(),
		"placed", m.PlacedCount,
		"overflow", m.OverflowCount,
	)
	return nil
}
