package commands

import (
	"context"

	"loadplanner/internal/core/domain/model/truck"
)

// UpdateTruckConfigCommandHandler stores a measured interior for a vehicle.
type UpdateTruckConfigCommandHandler struct {
	uowFactory TruckUoWFactory
}

func NewUpdateTruckConfigCommandHandler(uowFactory TruckUoWFactory) UpdateTruckConfigCommandHandler {
	return UpdateTruckConfigCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reconfigures the vehicle and returns it as stored.
// Unknown vehicles yield ErrVehicleNotFound.
func (h UpdateTruckConfigCommandHandler) Handle(
	ctx context.Context,
	command UpdateTruckConfigCommand,
) (*truck.Truck, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TruckRepository()

	t, err := getTruck(ctx, repo, command.VehicleCode())
	if err != nil {
		return nil, err
	}

	if err := t.Reconfigure(command.Container(), command.TolerancePct()); err != nil {
		return nil, err
	}

	if err := repo.UpdateInterior(ctx, t); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}
