package infra

import (
	"fmt"

	"github.com/caffeinepub/supply-chain-management-app/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx.
// Migrations are applied separately via RunMigrations.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// RunMigrations applies the schema. Also used by the integration suite so
// test containers start from the same DDL as production.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Vendor{},
		&model.QuotationRequest{},
		&model.Quotation{},
		&model.PurchaseRequisition{},
		&model.RequisitionItem{},
		&model.ApprovalRecord{},
	)
}
