package ports

import (
	"context"

	"loadplanner/internal/core/domain/model/cargo"
)

// ArticleRepository gives access to per-article packaging data.
type ArticleRepository interface {
	// GetDimensions returns a catalog holding an entry for every code. Codes
	// without usable data get the default box flagged as estimated.
	GetDimensions(ctx context.Context, codes []string) (cargo.Catalog, error)

	// Get returns the stored article or an errs.ObjectNotFoundError.
	Get(ctx context.Context, code string) (cargo.Article, error)

	// Save creates or replaces the packaging data of the article.
	Save(ctx context.Context, article cargo.Article) error
}
