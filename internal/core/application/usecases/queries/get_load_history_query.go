package queries

import (
	"errors"
	"strings"
	"time"

	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/plan"
	"loadplanner/internal/pkg/guard"
)

const (
	// DefaultHistoryLimit applies when the caller asks for no limit.
	DefaultHistoryLimit = 20
	// MaxHistoryLimit caps the number of history entries returned.
	MaxHistoryLimit = 200
)

var ErrGetLoadHistoryQueryIsNotConstructed = errors.New(
	"GetLoadHistoryQuery must be created via NewGetLoadHistoryQuery constructor",
)

// GetLoadHistoryQuery lists recorded plans, newest first.
type GetLoadHistoryQuery struct {
	vehicleCode string
	limit       int
	guard       guard.ConstructorGuard
}

// NewGetLoadHistoryQuery creates the query. A blank vehicleCode lists every
// vehicle. limit is clamped to [1, MaxHistoryLimit]; values below 1 mean
// DefaultHistoryLimit.
func NewGetLoadHistoryQuery(vehicleCode string, limit int) GetLoadHistoryQuery {
	switch {
	case limit < 1:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return GetLoadHistoryQuery{
		vehicleCode: strings.TrimSpace(vehicleCode),
		limit:       limit,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetLoadHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadHistoryQueryIsNotConstructed)
}

func (q GetLoadHistoryQuery) VehicleCode() string { return q.vehicleCode }

func (q GetLoadHistoryQuery) Limit() int { return q.limit }

// GetLoadHistoryQueryResponse is one recorded plan.
type GetLoadHistoryQueryResponse struct {
	ID          kernel.UUID
	VehicleCode string
	PlanDate    kernel.PlanDate
	Metrics     plan.Metrics
	CreatedBy   string
	CreatedAt   time.Time
}
