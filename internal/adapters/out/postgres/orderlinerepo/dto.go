// Package orderlinerepo reads delivery order lines by vehicle and day.
package orderlinerepo

import (
	"time"

	"loadplanner/internal/core/domain/model/cargo"
)

// OrderLineDTO is one order line scheduled for delivery. DeliveryDate is a
// calendar date with no time zone.
type OrderLineDTO struct {
	ID           uint      `gorm:"primaryKey"`
	OrderYear    int       `gorm:"index:idx_order_lines_order"`
	OrderNumber  int       `gorm:"index:idx_order_lines_order"`
	LineNumber   int       `gorm:"index:idx_order_lines_order"`
	VehicleCode  string    `gorm:"size:16;index:idx_order_lines_vehicle_date"`
	DeliveryDate time.Time `gorm:"type:date;index:idx_order_lines_vehicle_date"`
	DriverCode   string    `gorm:"size:16"`
	ClientCode   string    `gorm:"size:16"`
	ArticleCode  string    `gorm:"size:32"`
	Units        float64
	Packages     float64
}

// TableName overrides GORM's default naming.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func toDomain(dto OrderLineDTO) cargo.OrderLine {
	return cargo.OrderLine{
		OrderYear:   dto.OrderYear,
		OrderNumber: dto.OrderNumber,
		DriverCode:  dto.DriverCode,
		ClientCode:  dto.ClientCode,
		ArticleCode: dto.ArticleCode,
		Units:       dto.Units,
		Packages:    dto.Packages,
	}
}
