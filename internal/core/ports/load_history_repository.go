package ports

import (
	"context"

	"loadplanner/internal/core/domain/model/plan"
)

// LoadHistoryRepository appends plan records. Listing lives in the queries.
type LoadHistoryRepository interface {
	Add(ctx context.Context, record *plan.Record) error
}
