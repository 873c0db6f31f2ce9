package commands

import (
	"context"
	"strings"
	"time"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/services"
)

// PlanManualLoadCommandHandler packs hand-entered items into a vehicle.
// It reads master data only and never writes.
type PlanManualLoadCommandHandler struct {
	uowFactory PlanningUoWFactory
	packer     services.LoadPacker
	expander   services.BoxExpander
	observer   PlanObserver
}

// NewPlanManualLoadCommandHandler creates the handler. A nil observer is
// replaced by NopPlanObserver.
func NewPlanManualLoadCommandHandler(
	uowFactory PlanningUoWFactory,
	packer services.LoadPacker,
	observer PlanObserver,
) PlanManualLoadCommandHandler {
	if observer == nil {
		observer = NopPlanObserver{}
	}
	return PlanManualLoadCommandHandler{
		uowFactory: uowFactory,
		packer:     packer,
		expander:   services.NewBoxExpander(),
		observer:   observer,
	}
}

// Handle plans the items of the command on its vehicle.
func (h PlanManualLoadCommandHandler) Handle(ctx context.Context, command PlanManualLoadCommand) (PlanResponse, error) {
	if err := command.Validate(); err != nil {
		return PlanResponse{}, err
	}
	started := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlanResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	t, err := getTruck(ctx, uow.TruckRepository(), command.VehicleCode())
	if err != nil {
		return PlanResponse{}, err
	}

	tolerance, err := t.EffectiveTolerance(command.TolerancePct())
	if err != nil {
		return PlanResponse{}, err
	}

	items := command.Items()
	catalog := cargo.Catalog{}
	if codes := manualArticleCodes(items); len(codes) > 0 {
		catalog, err = uow.ArticleRepository().GetDimensions(ctx, codes)
		if err != nil {
			return PlanResponse{}, err
		}
	}

	boxes, err := h.expander.FromManualItems(items, catalog)
	if err != nil {
		return PlanResponse{}, err
	}

	result, err := h.packer.Pack(boxes, t.Container(), tolerance, t.MaxPayloadKg())
	if err != nil {
		return PlanResponse{}, err
	}

	m := result.Metrics()
	h.observer.ObservePlan(SourceManual, m.Status.String(), m.PlacedCount, m.OverflowCount,
		m.VolumeOccupancyPct, time.Since(started))

	return PlanResponse{
		Truck:        t,
		TolerancePct: tolerance,
		Boxes:        boxes,
		Result:       result,
	}, nil
}

// manualArticleCodes lists each non-blank article code once.
func manualArticleCodes(items []cargo.ManualItem) []string {
	seen := make(map[string]struct{}, len(items))
	var codes []string
	for _, item := range items {
		code := strings.TrimSpace(item.ArticleCode)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}
