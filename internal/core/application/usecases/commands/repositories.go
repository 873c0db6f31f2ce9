// Package commands contains the planner operations that run inside a unit of
// work: planning a truck's load and maintaining truck and article master data.
// Every command is built through its constructor, validated again by its
// handler, and executed against repositories bound to one transaction.
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loadplanner/internal/core/domain/model/truck"
	"loadplanner/internal/core/ports"
	"loadplanner/internal/pkg/errs"
)

var (
	// ErrVehicleNotFound is returned when the requested vehicle code has no
	// registered vehicle. It also matches errs.ErrObjectNotFound.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrNoItems is returned when a manual plan carries no items.
	ErrNoItems = errors.New("at least one item is required")
)

// Unit of Work interfaces give each handler exactly the repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TruckRepoFactory provides the truck repository within a transaction.
	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	// ArticleRepoFactory provides the article repository within a transaction.
	ArticleRepoFactory interface {
		ArticleRepository() ports.ArticleRepository
	}

	// OrderLineRepoFactory provides the order line repository within a transaction.
	OrderLineRepoFactory interface {
		OrderLineRepository() ports.OrderLineRepository
	}

	// LoadHistoryRepoFactory provides the history repository within a transaction.
	LoadHistoryRepoFactory interface {
		LoadHistoryRepository() ports.LoadHistoryRepository
	}

	// PlanningUoW covers everything a plan needs: the truck, its order lines,
	// article dimensions and the history table.
	PlanningUoW interface {
		TxManager
		TruckRepoFactory
		ArticleRepoFactory
		OrderLineRepoFactory
		LoadHistoryRepoFactory
	}

	// PlanningUoWFactory creates planning units of work.
	PlanningUoWFactory interface {
		Create() PlanningUoW
	}

	// TruckUoW manages transactions for truck configuration changes.
	TruckUoW interface {
		TxManager
		TruckRepoFactory
	}

	// TruckUoWFactory creates truck units of work.
	TruckUoWFactory interface {
		Create() TruckUoW
	}

	// ArticleUoW manages transactions for article master data changes.
	ArticleUoW interface {
		TxManager
		ArticleRepoFactory
	}

	// ArticleUoWFactory creates article units of work.
	ArticleUoWFactory interface {
		Create() ArticleUoW
	}
)

// Plan sources reported to a PlanObserver.
const (
	SourceOrders = "orders"
	SourceManual = "manual"
)

// PlanObserver receives one notification per finished plan.
type PlanObserver interface {
	ObservePlan(source string, status string, placed int, overflow int, volumePct float64, elapsed time.Duration)
}

// NopPlanObserver discards plan notifications.
type NopPlanObserver struct{}

// ObservePlan does nothing.
func (NopPlanObserver) ObservePlan(string, string, int, int, float64, time.Duration) {}

func getTruck(ctx context.Context, repo ports.TruckRepository, code string) (*truck.Truck, error) {
	t, err := repo.Get(ctx, code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrVehicleNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}
