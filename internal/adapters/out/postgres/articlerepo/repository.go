package articlerepo

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormArticleRepository implements ports.ArticleRepository using GORM.
type GormArticleRepository struct {
	db *gorm.DB
}

// NewGormArticleRepository creates a repository bound to db.
func NewGormArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

// GetDimensions loads the packaging data of every code in one query and
// completes the catalog with default boxes.
func (r *GormArticleRepository) GetDimensions(ctx context.Context, codes []string) (cargo.Catalog, error) {
	wanted := make(pq.StringArray, 0, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code != "" && !slices.Contains(wanted, code) {
			wanted = append(wanted, code)
		}
	}
	if len(wanted) == 0 {
		return cargo.Catalog{}, nil
	}

	var dtos []ArticleDTO
	if err := r.db.WithContext(ctx).Where("code = ANY(?)", wanted).Find(&dtos).Error; err != nil {
		return nil, err
	}

	catalog := make(cargo.Catalog, len(wanted))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		catalog[a.Code()] = a
	}
	return catalog.Complete(wanted), nil
}

// Get retrieves one article by code.
func (r *GormArticleRepository) Get(ctx context.Context, code string) (cargo.Article, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return cargo.Article{}, errs.NewValueIsRequiredError("article code")
	}

	var dto ArticleDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cargo.Article{}, errs.NewObjectNotFoundError("article", code)
		}
		return cargo.Article{}, err
	}
	return toDomain(dto)
}

// Save upserts the article. The unit weight column belongs to the product
// master and is left untouched.
func (r *GormArticleRepository) Save(ctx context.Context, article cargo.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	dto := fromDomain(article, time.Now().UTC())
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "length_cm", "width_cm", "height_cm", "box_weight_kg", "units_per_box", "updated_at",
		}),
	}).Create(&dto).Error
}
