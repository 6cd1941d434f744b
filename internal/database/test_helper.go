package database

import (
	"testing"

	"fundtransfer-api/internal/config"
	"fundtransfer-api/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestAccount(t *testing.T, db *DB, ownerID int64, currency string, balance decimal.Decimal) *models.Account {
	t.Helper()

	account := &models.Account{
		OwnerID:  ownerID,
		Currency: currency,
		Balance:  balance,
		Status:   models.AccountStatusActive,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	sqlDB, err := db.DB.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB for cleanup: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("failed to close test database: %v", err)
	}
}
