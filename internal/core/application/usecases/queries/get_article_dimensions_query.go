package queries

import (
	"context"
	"errors"
	"strings"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/ports"
	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

var ErrGetArticleDimensionsQueryIsNotConstructed = errors.New(
	"GetArticleDimensionsQuery must be created via NewGetArticleDimensionsQuery constructor",
)

// GetArticleDimensionsQuery reads the packaging the planner uses for one
// article code.
type GetArticleDimensionsQuery struct {
	code  string
	guard guard.ConstructorGuard
}

func NewGetArticleDimensionsQuery(code string) (GetArticleDimensionsQuery, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return GetArticleDimensionsQuery{}, errs.NewValueIsRequiredError("article code")
	}
	return GetArticleDimensionsQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetArticleDimensionsQuery) Validate() error {
	return q.guard.Validate(ErrGetArticleDimensionsQueryIsNotConstructed)
}

func (q GetArticleDimensionsQuery) Code() string {
	return q.code
}

// GetArticleDimensionsQueryHandler resolves an article through the same
// catalog lookup the planner uses.
type GetArticleDimensionsQueryHandler struct {
	articles ports.ArticleRepository
}

func NewGetArticleDimensionsQueryHandler(articles ports.ArticleRepository) GetArticleDimensionsQueryHandler {
	return GetArticleDimensionsQueryHandler{articles: articles}
}

// Handle never reports unknown codes as missing: they resolve to the default
// box with Estimated set.
func (h GetArticleDimensionsQueryHandler) Handle(
	ctx context.Context,
	query GetArticleDimensionsQuery,
) (cargo.Article, error) {
	if err := query.Validate(); err != nil {
		return cargo.Article{}, err
	}

	catalog, err := h.articles.GetDimensions(ctx, []string{query.Code()})
	if err != nil {
		return cargo.Article{}, err
	}
	return catalog.Lookup(query.Code()), nil
}
