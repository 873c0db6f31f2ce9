package commands

import (
	"context"
	"log/slog"
	"time"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/plan"
	"loadplanner/internal/core/domain/model/truck"
	"loadplanner/internal/core/domain/services"
)

// PlanLoadCommandHandler plans a truck from its order lines for a date.
//
// The handler reads the truck, its order lines and the dimensions of the
// ordered articles, expands the lines into boxes and packs them. A history
// record is written for every non-empty plan; a failed write is logged and
// the plan is still returned.
//
// Example:
//
//	resp, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrVehicleNotFound):
//	    // 404
//	case err != nil:
//	    return err
//	}
//	fmt.Println(resp.Result.Status())
type PlanLoadCommandHandler struct {
	uowFactory PlanningUoWFactory
	packer     services.LoadPacker
	expander   services.BoxExpander
	observer   PlanObserver
	logger     *slog.Logger
	now        func() time.Time
}

// NewPlanLoadCommandHandler creates the handler. A nil observer is replaced
// by NopPlanObserver and a nil logger by slog.Default().
func NewPlanLoadCommandHandler(
	uowFactory PlanningUoWFactory,
	packer services.LoadPacker,
	observer PlanObserver,
	logger *slog.Logger,
) PlanLoadCommandHandler {
	if observer == nil {
		observer = NopPlanObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return PlanLoadCommandHandler{
		uowFactory: uowFactory,
		packer:     packer,
		expander:   services.NewBoxExpander(),
		observer:   observer,
		logger:     logger.With("component", "PlanLoadCommandHandler"),
		now:        time.Now,
	}
}

// Handle plans the vehicle named by the command.
//
// An empty order list yields an empty SEGURO plan and no history record.
func (h PlanLoadCommandHandler) Handle(ctx context.Context, command PlanLoadCommand) (PlanResponse, error) {
	if err := command.Validate(); err != nil {
		return PlanResponse{}, err
	}
	started := h.now()

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

	date := command.Date()
	lines, err := uow.OrderLineRepository().GetForVehicle(ctx, t.Code(), date)
	if err != nil {
		return PlanResponse{}, err
	}

	response := PlanResponse{
		Truck:        t,
		Date:         &date,
		TolerancePct: tolerance,
	}

	if len(lines) == 0 {
		response.Result = plan.EmptyResult(t.Container(), t.MaxPayloadKg())
		h.observe(response.Result, started)
		return response, nil
	}

	catalog, err := uow.ArticleRepository().GetDimensions(ctx, orderedArticleCodes(lines))
	if err != nil {
		return PlanResponse{}, err
	}

	boxes, err := h.expander.FromOrderLines(lines, catalog)
	if err != nil {
		return PlanResponse{}, err
	}

	result, err := h.packer.Pack(boxes, t.Container(), tolerance, t.MaxPayloadKg())
	if err != nil {
		return PlanResponse{}, err
	}

	response.Boxes = boxes
	response.Result = result
	h.observe(result, started)
	h.recordHistory(ctx, uow, t, command, result)

	return response, nil
}

func (h PlanLoadCommandHandler) observe(result plan.Result, started time.Time) {
	m := result.Metrics()
	h.observer.ObservePlan(SourceOrders, m.Status.String(), m.PlacedCount, m.OverflowCount,
		m.VolumeOccupancyPct, h.now().Sub(started))
}

func (h PlanLoadCommandHandler) recordHistory(
	ctx context.Context,
	uow PlanningUoW,
	t *truck.Truck,
	command PlanLoadCommand,
	result plan.Result,
) {
	record, err := plan.NewRecord(
		kernel.NewUUID(),
		t.Code(),
		command.Date(),
		result.Metrics(),
		command.RequestedBy(),
		h.now().UTC(),
	)
	if err == nil {
		err = uow.LoadHistoryRepository().Add(ctx, record)
	}
	if err == nil {
		err = uow.Commit(ctx)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "load history not recorded",
			"vehicle", t.Code(),
			"date", command.Date().String(),
			"error", err,
		)
	}
}

// orderedArticleCodes lists each article code once, in first-seen order.
func orderedArticleCodes(lines []cargo.OrderLine) []string {
	seen := make(map[string]struct{}, len(lines))
	codes := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ArticleCode]; ok {
			continue
		}
		seen[line.ArticleCode] = struct{}{}
		codes = append(codes, line.ArticleCode)
	}
	return codes
}
