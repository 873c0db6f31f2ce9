package queries

import (
	"context"
	"time"

	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/core/domain/model/plan"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLoadHistoryQueryHandler reads the load history table with raw SQL.
type GetLoadHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetLoadHistoryQueryHandler(db *gorm.DB) GetLoadHistoryQueryHandler {
	return GetLoadHistoryQueryHandler{db: db}
}

// Handle returns at most query.Limit() entries, newest first.
func (h GetLoadHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetLoadHistoryQuery,
) ([]GetLoadHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetLoadHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_code,
			plan_date,
			total_boxes,
			placed_count,
			overflow_count,
			container_volume_cm3,
			used_volume_cm3,
			volume_occupancy_pct,
			total_weight_kg,
			overflow_weight_kg,
			max_payload_kg,
			weight_occupancy_pct,
			status,
			created_by,
			created_at
		FROM load_history
		WHERE (?::text = '' OR vehicle_code = ?)
		ORDER BY created_at DESC, id
		LIMIT ?
	`, query.VehicleCode(), query.VehicleCode(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetLoadHistoryQueryResponse
		var id uuid.UUID
		var planDate time.Time
		var status string
		m := &entry.Metrics

		err = rows.Scan(
			&id,
			&entry.VehicleCode,
			&planDate,
			&m.TotalBoxes,
			&m.PlacedCount,
			&m.OverflowCount,
			&m.ContainerVolumeCm3,
			&m.UsedVolumeCm3,
			&m.VolumeOccupancyPct,
			&m.TotalWeightKg,
			&m.OverflowWeightKg,
			&m.MaxPayloadKg,
			&m.WeightOccupancyPct,
			&status,
			&entry.CreatedBy,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entry.ID = kernel.UUIDOf(id)
		entry.PlanDate = kernel.PlanDateOf(planDate)
		if m.Status, err = plan.ParseStatus(status); err != nil {
			return nil, err
		}

		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
