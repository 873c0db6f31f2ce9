package queries

import (
	"context"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetTruckOrdersQueryHandler reads order lines with raw SQL.
type GetTruckOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetTruckOrdersQueryHandler(db *gorm.DB) GetTruckOrdersQueryHandler {
	return GetTruckOrdersQueryHandler{db: db}
}

// Handle returns the lines ordered by order number, client and line number.
// The slice is empty, not nil, when the vehicle has nothing that day.
func (h GetTruckOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetTruckOrdersQuery,
) ([]GetTruckOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetTruckOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ol.order_year,
			ol.order_number,
			ol.line_number,
			ol.client_code,
			ol.driver_code,
			ol.article_code,
			COALESCE(a.name, ''),
			ol.units,
			ol.packages,
			COALESCE(a.unit_weight_kg, 0),
			a.length_cm,
			a.width_cm,
			a.height_cm
		FROM order_lines ol
		LEFT JOIN articles a ON a.code = ol.article_code
		WHERE ol.vehicle_code = ? AND ol.delivery_date = ?
		ORDER BY ol.order_number, ol.client_code, ol.line_number
	`, query.VehicleCode(), query.Date().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var order GetTruckOrdersQueryResponse
		var length, width, height *float64

		err = rows.Scan(
			&order.OrderYear,
			&order.OrderNumber,
			&order.LineNumber,
			&order.ClientCode,
			&order.DriverCode,
			&order.ArticleCode,
			&order.ArticleName,
			&order.Units,
			&order.Packages,
			&order.UnitWeightKg,
			&length,
			&width,
			&height,
		)
		if err != nil {
			return nil, err
		}

		order.Box = cargo.DefaultArticle(order.ArticleCode).Box()
		if length != nil && width != nil && height != nil {
			if box, boxErr := kernel.NewDimensions(*length, *width, *height); boxErr == nil {
				order.Box = box
				order.HasDimensions = true
			}
		}

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
