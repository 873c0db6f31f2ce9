package commands

import (
	"context"
	"errors"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/pkg/errs"
)

// UpdateArticleDimensionsCommandHandler upserts an article's packaging.
type UpdateArticleDimensionsCommandHandler struct {
	uowFactory ArticleUoWFactory
}

func NewUpdateArticleDimensionsCommandHandler(uowFactory ArticleUoWFactory) UpdateArticleDimensionsCommandHandler {
	return UpdateArticleDimensionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle saves the article and returns it. Name and units per box fall back
// to the stored article when the command leaves them unset.
func (h UpdateArticleDimensionsCommandHandler) Handle(
	ctx context.Context,
	command UpdateArticleDimensionsCommand,
) (cargo.Article, error) {
	if err := command.Validate(); err != nil {
		return cargo.Article{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return cargo.Article{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ArticleRepository()

	name, unitsPerBox := command.Name(), command.UnitsPerBox()
	existing, err := repo.Get(ctx, command.Code())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return cargo.Article{}, err
	default:
		if name == "" {
			name = existing.Name()
		}
		if unitsPerBox < 1 {
			unitsPerBox = existing.UnitsPerBox()
		}
	}

	article, err := cargo.NewArticle(command.Code(), name, command.Box(), command.WeightKg(), unitsPerBox, false)
	if err != nil {
		return cargo.Article{}, err
	}

	if err := repo.Save(ctx, article); err != nil {
		return cargo.Article{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return cargo.Article{}, err
	}

	return article, nil
}
