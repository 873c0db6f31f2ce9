// Package postgres provides the GORM-based Unit of Work over the planner
// repositories, plus connection and migration helpers.
//
// A command obtains a fresh unit of work, begins it, reads and writes through
// its repositories and commits:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	t, err := uow.TruckRepository().Get(ctx, code)
//	if err != nil {
//	    return err
//	}
//	if err := uow.TruckRepository().UpdateInterior(ctx, t); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction,
// which the deferred call ignores.
//
// Each unit of work owns one transaction. Goroutines must not share one.
package postgres

import (
	"context"

	"loadplanner/internal/adapters/out/postgres/articlerepo"
	"loadplanner/internal/adapters/out/postgres/historyrepo"
	"loadplanner/internal/adapters/out/postgres/orderlinerepo"
	"loadplanner/internal/adapters/out/postgres/truckrepo"
	"loadplanner/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory over db.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a unit of work with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork binds the planner repositories to a single GORM transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. A second call while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit commits and closes the transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards and closes the transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// TruckRepository returns the vehicle repository bound to the current
// transaction, or to the pool when none is active.
func (uow *GormUnitOfWork) TruckRepository() ports.TruckRepository {
	return truckrepo.NewGormTruckRepository(uow.conn())
}

// ArticleRepository returns the article repository bound like TruckRepository.
func (uow *GormUnitOfWork) ArticleRepository() ports.ArticleRepository {
	return articlerepo.NewGormArticleRepository(uow.conn())
}

// OrderLineRepository returns the order line repository bound like TruckRepository.
func (uow *GormUnitOfWork) OrderLineRepository() ports.OrderLineRepository {
	return orderlinerepo.NewGormOrderLineRepository(uow.conn())
}

// LoadHistoryRepository returns the history repository bound like TruckRepository.
func (uow *GormUnitOfWork) LoadHistoryRepository() ports.LoadHistoryRepository {
	return historyrepo.NewGormLoadHistoryRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
