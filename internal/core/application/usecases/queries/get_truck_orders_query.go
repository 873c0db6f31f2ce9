package queries

import (
	"errors"
	"strings"

	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

var ErrGetTruckOrdersQueryIsNotConstructed = errors.New(
	"GetTruckOrdersQuery must be created via NewGetTruckOrdersQuery constructor",
)

// GetTruckOrdersQuery lists the order lines loaded on a vehicle for a day,
// joined with the packaging data the planner would use.
type GetTruckOrdersQuery struct {
	vehicleCode string
	date        kernel.PlanDate
	guard       guard.ConstructorGuard
}

func NewGetTruckOrdersQuery(vehicleCode string, date kernel.PlanDate) (GetTruckOrdersQuery, error) {
	query := GetTruckOrdersQuery{
		vehicleCode: strings.TrimSpace(vehicleCode),
		date:        date,
		guard:       guard.NewConstructorGuard(),
	}

	var codeErr error
	if query.vehicleCode == "" {
		codeErr = errs.NewValueIsRequiredError("vehicle code")
	}
	if err := errors.Join(codeErr, date.Validate()); err != nil {
		return GetTruckOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTruckOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetTruckOrdersQueryIsNotConstructed)
}

func (q GetTruckOrdersQuery) VehicleCode() string { return q.vehicleCode }

func (q GetTruckOrdersQuery) Date() kernel.PlanDate { return q.date }

// GetTruckOrdersQueryResponse is one order line. Box holds the recorded
// article packaging, or the default box when HasDimensions is false.
type GetTruckOrdersQueryResponse struct {
	OrderYear     int
	OrderNumber   int
	LineNumber    int
	ClientCode    string
	DriverCode    string
	ArticleCode   string
	ArticleName   string
	Units         float64
	Packages      float64
	UnitWeightKg  float64
	Box           kernel.Dimensions
	HasDimensions bool
}
