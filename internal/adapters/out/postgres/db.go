package postgres

import (
	"fmt"

	"loadplanner/internal/adapters/out/postgres/articlerepo"
	"loadplanner/internal/adapters/out/postgres/historyrepo"
	"loadplanner/internal/adapters/out/postgres/orderlinerepo"
	"loadplanner/internal/adapters/out/postgres/truckrepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a libpq keyword/value connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)
}

// Open connects to PostgreSQL through the lib/pq driver.
func Open(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Models lists every table the planner owns, in migration order.
func Models() []any {
	return []any{
		&truckrepo.VehicleDTO{},
		&truckrepo.TruckConfigDTO{},
		&articlerepo.ArticleDTO{},
		&orderlinerepo.OrderLineDTO{},
		&historyrepo.LoadHistoryDTO{},
	}
}

// Migrate creates or updates the planner tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
