package plan

import (
	"errors"
	"strings"
	"time"

	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record was not built by NewRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is the history entry written each time a truck's load is planned.
// It keeps the headline figures only, never the placements.
type Record struct {
	id            kernel.UUID
	vehicleCode   string
	planDate      kernel.PlanDate
	metrics       Metrics
	createdBy     string
	createdAt     time.Time
	isConstructed bool
}

// NewRecord validates and creates a Record.
//
// Parameters:
//   - id: identifier of the entry
//   - vehicleCode: the planned truck, required
//   - planDate: the day the load is for
//   - metrics: the plan metrics; Status must be valid
//   - createdBy: who requested the plan, defaults to "SYSTEM"
//   - createdAt: when the plan was computed
func NewRecord(
	id kernel.UUID,
	vehicleCode string,
	planDate kernel.PlanDate,
	metrics Metrics,
	createdBy string,
	createdAt time.Time,
) (*Record, error) {
	r := &Record{
		metrics:       metrics,
		createdBy:     strings.TrimSpace(createdBy),
		createdAt:     createdAt,
		isConstructed: true,
	}
	if r.createdBy == "" {
		r.createdBy = "SYSTEM"
	}

	vehicleCode = strings.TrimSpace(vehicleCode)
	var codeErr error
	if vehicleCode == "" {
		codeErr = errs.NewValueIsRequiredError("vehicle code")
	}
	r.vehicleCode = vehicleCode

	if err := errors.Join(
		id.Validate(),
		codeErr,
		planDate.Validate(),
		metrics.Status.Validate(),
	); err != nil {
		return nil, err
	}

	r.id = id
	r.planDate = planDate
	return r, nil
}

// Validate ensures the record was built by NewRecord.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the identifier of the entry.
func (r *Record) ID() kernel.UUID { return r.id }

// VehicleCode returns the planned truck.
func (r *Record) VehicleCode() string { return r.vehicleCode }

// PlanDate returns the day the load is for.
func (r *Record) PlanDate() kernel.PlanDate { return r.planDate }

// Metrics returns the recorded plan metrics.
func (r *Record) Metrics() Metrics { return r.metrics }

// CreatedBy returns who requested the plan.
func (r *Record) CreatedBy() string { return r.createdBy }

// CreatedAt returns when the plan was computed.
func (r *Record) CreatedAt() time.Time { return r.createdAt }
