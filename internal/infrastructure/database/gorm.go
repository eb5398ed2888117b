package database

import (
	"fmt"

	"remodeling_proposals/internal/adapter/persistence/models"
	"remodeling_proposals/internal/domain/entities"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectCatalogDB opens the catalog and pricing database and migrates its
// schema. driver is "postgres" or "sqlite".
func ConnectCatalogDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported catalog db driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if driver == "postgres" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the catalog, pricing and history tables. It is idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.ServiceModel{},
		&models.MaterialModel{},
		&models.PriceHistoryModel{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	// The six pricing tables share one row shape, so their unique key
	// indexes are named per table instead of through struct tags.
	for _, dim := range entities.PricingDimensions() {
		table := dim.Table()
		if err := db.Table(table).AutoMigrate(&models.PricingModel{}); err != nil {
			return fmt.Errorf("AutoMigrate %s: %w", table, err)
		}
		stmt := fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS uidx_%s_item_key ON %s (item_key)", table, table)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("index %s: %w", table, err)
		}
	}
	return nil
}
