package orderlinerepo

import (
	"context"
	"strings"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderLineRepository implements ports.OrderLineRepository using GORM.
type GormOrderLineRepository struct {
	db *gorm.DB
}

// NewGormOrderLineRepository creates a repository bound to db.
func NewGormOrderLineRepository(db *gorm.DB) *GormOrderLineRepository {
	return &GormOrderLineRepository{db: db}
}

// GetForVehicle returns the lines delivered by vehicleCode on date.
func (r *GormOrderLineRepository) GetForVehicle(
	ctx context.Context,
	vehicleCode string,
	date kernel.PlanDate,
) ([]cargo.OrderLine, error) {
	vehicleCode = strings.TrimSpace(vehicleCode)
	if vehicleCode == "" {
		return nil, errs.NewValueIsRequiredError("vehicle code")
	}
	if err := date.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderLineDTO
	if err := r.db.WithContext(ctx).
		Where("vehicle_code = ? AND delivery_date = ?", vehicleCode, date.String()).
		Order("order_year, order_number, line_number").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	lines := make([]cargo.OrderLine, 0, len(dtos))
	for _, dto := range dtos {
		lines = append(lines, toDomain(dto))
	}
	return lines, nil
}

// GetVehicleCodesWithOrders returns the vehicles with deliveries on date.
func (r *GormOrderLineRepository) GetVehicleCodesWithOrders(ctx context.Context, date kernel.PlanDate) ([]string, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	codes := make([]string, 0)
	if err := r.db.WithContext(ctx).
		Model(&OrderLineDTO{}).
		Distinct("vehicle_code").
		Where("delivery_date = ?", date.String()).
		Order("vehicle_code").
		Pluck("vehicle_code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}
