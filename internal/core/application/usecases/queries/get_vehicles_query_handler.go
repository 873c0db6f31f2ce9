package queries

import (
	"context"

	"loadplanner/internal/core/ports"
)

// GetVehiclesQueryHandler lists vehicles in code order.
type GetVehiclesQueryHandler struct {
	trucks ports.TruckRepository
	lines  ports.OrderLineRepository
}

func NewGetVehiclesQueryHandler(trucks ports.TruckRepository, lines ports.OrderLineRepository) GetVehiclesQueryHandler {
	return GetVehiclesQueryHandler{trucks: trucks, lines: lines}
}

// Handle returns every vehicle, never nil.
func (h GetVehiclesQueryHandler) Handle(ctx context.Context, query GetVehiclesQuery) ([]GetVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trucks, err := h.trucks.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	withOrders := map[string]struct{}{}
	if date := query.Date(); date != nil {
		codes, err := h.lines.GetVehicleCodesWithOrders(ctx, *date)
		if err != nil {
			return nil, err
		}
		for _, code := range codes {
			withOrders[code] = struct{}{}
		}
	}

	vehicles := make([]GetVehiclesQueryResponse, 0, len(trucks))
	for _, t := range trucks {
		_, hasOrders := withOrders[t.Code()]
		vehicles = append(vehicles, GetVehiclesQueryResponse{Truck: t, HasOrders: hasOrders})
	}

	return vehicles, nil
}
