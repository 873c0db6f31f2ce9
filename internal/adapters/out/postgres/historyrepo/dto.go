// Package historyrepo appends load plan records.
package historyrepo

import (
	"time"

	"loadplanner/internal/core/domain/model/plan"

	"github.com/google/uuid"
)

// LoadHistoryDTO is one row of the load history table.
type LoadHistoryDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleCode        string    `gorm:"size:16;index:idx_load_history_vehicle_created"`
	PlanDate           time.Time `gorm:"type:date"`
	TotalBoxes         int
	PlacedCount        int
	OverflowCount      int
	ContainerVolumeCm3 float64
	UsedVolumeCm3      float64
	VolumeOccupancyPct float64
	TotalWeightKg      float64
	OverflowWeightKg   float64
	MaxPayloadKg       float64
	WeightOccupancyPct float64
	Status             string    `gorm:"size:8"`
	CreatedBy          string    `gorm:"size:64"`
	CreatedAt          time.Time `gorm:"index:idx_load_history_vehicle_created"`
}

// TableName overrides GORM's default naming.
func (LoadHistoryDTO) TableName() string {
	return "load_history"
}

func fromDomain(r *plan.Record) LoadHistoryDTO {
	m := r.Metrics()
	return LoadHistoryDTO{
		ID:                 r.ID().Value(),
		VehicleCode:        r.VehicleCode(),
		PlanDate:           r.PlanDate().Time(),
		TotalBoxes:         m.TotalBoxes,
		PlacedCount:        m.PlacedCount,
		OverflowCount:      m.OverflowCount,
		ContainerVolumeCm3: m.ContainerVolumeCm3,
		UsedVolumeCm3:      m.UsedVolumeCm3,
		VolumeOccupancyPct: m.VolumeOccupancyPct,
		TotalWeightKg:      m.TotalWeightKg,
		OverflowWeightKg:   m.OverflowWeightKg,
		MaxPayloadKg:       m.MaxPayloadKg,
		WeightOccupancyPct: m.WeightOccupancyPct,
		Status:             m.Status.String(),
		CreatedBy:          r.CreatedBy(),
		CreatedAt:          r.CreatedAt(),
	}
}
