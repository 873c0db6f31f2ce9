// Package truckrepo persists vehicles and their measured interiors.
package truckrepo

import (
	"time"

	"loadplanner/internal/core/domain/model/truck"
)

// VehicleDTO is the vehicle registry row. ContainerVolumeM3 and MaxPayloadKg
// come from the fleet system and may be zero.
type VehicleDTO struct {
	Code              string `gorm:"primaryKey;size:16"`
	Description       string
	Plate             string `gorm:"size:16"`
	ContainerVolumeM3 float64
	MaxPayloadKg      float64
}

// TableName overrides GORM's default naming.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// TruckConfigDTO is the measured interior entered from the warehouse screen.
type TruckConfigDTO struct {
	VehicleCode  string `gorm:"primaryKey;size:16"`
	LengthCm     float64
	WidthCm      float64
	HeightCm     float64
	TolerancePct float64
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming.
func (TruckConfigDTO) TableName() string {
	return "truck_configs"
}

// toDomain resolves the plannable truck from the registry row and the
// optional configuration.
func toDomain(v VehicleDTO, cfg *TruckConfigDTO) (*truck.Truck, error) {
	var lengthCm, widthCm, heightCm float64
	tolerance := truck.DefaultTolerancePct
	if cfg != nil {
		lengthCm, widthCm, heightCm = cfg.LengthCm, cfg.WidthCm, cfg.HeightCm
		tolerance = cfg.TolerancePct
	}

	container, estimated, err := truck.ResolveContainer(lengthCm, widthCm, heightCm, v.ContainerVolumeM3)
	if err != nil {
		return nil, err
	}

	t, err := truck.NewTruck(
		v.Code,
		v.Description,
		v.Plate,
		container,
		truck.ResolvePayloadKg(v.MaxPayloadKg, v.ContainerVolumeM3),
		tolerance,
	)
	if err != nil {
		return nil, err
	}
	if estimated {
		t.MarkInteriorEstimated()
	}
	return t, nil
}

func configFromDomain(t *truck.Truck, now time.Time) TruckConfigDTO {
	c := t.Container()
	return TruckConfigDTO{
		VehicleCode:  t.Code(),
		LengthCm:     c.LengthCm(),
		WidthCm:      c.WidthCm(),
		HeightCm:     c.HeightCm(),
		TolerancePct: t.TolerancePct(),
		UpdatedAt:    now,
	}
}
