package truckrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"loadplanner/internal/core/domain/model/truck"
	"loadplanner/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTruckRepository implements ports.TruckRepository using GORM.
type GormTruckRepository struct {
	db *gorm.DB
}

// NewGormTruckRepository creates a repository bound to db, which may be a
// transaction.
func NewGormTruckRepository(db *gorm.DB) *GormTruckRepository {
	return &GormTruckRepository{db: db}
}

// Get retrieves a vehicle by code.
func (r *GormTruckRepository) Get(ctx context.Context, code string) (*truck.Truck, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("vehicle code")
	}

	var v VehicleDTO
	if err := r.db.WithContext(ctx).First(&v, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", code)
		}
		return nil, err
	}

	var cfgs []TruckConfigDTO
	if err := r.db.WithContext(ctx).Where("vehicle_code = ?", code).Limit(1).Find(&cfgs).Error; err != nil {
		return nil, err
	}

	var cfg *TruckConfigDTO
	if len(cfgs) > 0 {
		cfg = &cfgs[0]
	}
	return toDomain(v, cfg)
}

// GetAll retrieves every vehicle ordered by code.
func (r *GormTruckRepository) GetAll(ctx context.Context) ([]*truck.Truck, error) {
	var vehicles []VehicleDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return []*truck.Truck{}, nil
	}

	codes := make(pq.StringArray, 0, len(vehicles))
	for _, v := range vehicles {
		codes = append(codes, v.Code)
	}

	var cfgs []TruckConfigDTO
	if err := r.db.WithContext(ctx).Where("vehicle_code = ANY(?)", codes).Find(&cfgs).Error; err != nil {
		return nil, err
	}
	byCode := make(map[string]*TruckConfigDTO, len(cfgs))
	for i := range cfgs {
		byCode[cfgs[i].VehicleCode] = &cfgs[i]
	}

	trucks := make([]*truck.Truck, 0, len(vehicles))
	for _, v := range vehicles {
		t, err := toDomain(v, byCode[v.Code])
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}
	return trucks, nil
}

// UpdateInterior upserts the truck configuration row.
func (r *GormTruckRepository) UpdateInterior(ctx context.Context, t *truck.Truck) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := configFromDomain(t, time.Now().UTC())
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vehicle_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"length_cm", "width_cm", "height_cm", "tolerance_pct", "updated_at"}),
	}).Create(&dto).Error
}
