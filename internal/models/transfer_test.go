package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// FundTransferTestSuite is the test suite for FundTransfer model
type FundTransferTestSuite struct {
	suite.Suite
	db *gorm.DB
}

// SetupTest runs before each test
func (s *FundTransferTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&FundTransfer{})
	require.NoError(s.T(), err)

	s.db = db
}

// TearDownTest runs after each test
func (s *FundTransferTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestFundTransferTestSuite runs the test suite
func TestFundTransferTestSuite(t *testing.T) {
	suite.Run(t, new(FundTransferTestSuite))
}

// TestFundTransfer_BeforeCreate_GeneratesID tests ID generation
func (s *FundTransferTestSuite) TestFundTransfer_BeforeCreate_GeneratesID() {
	transfer := &FundTransfer{
		SourceAccountID:      uuid.New(),
		DestinationAccountID: uuid.New(),
		Amount:               decimal.NewFromFloat(100.00),
	}

	err := s.db.Create(transfer).Error
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, transfer.ID)
}

// TestFundTransfer_BeforeCreate_SetsTransactionDate tests date defaulting
func (s *FundTransferTestSuite) TestFundTransfer_BeforeCreate_SetsTransactionDate() {
	transfer := &FundTransfer{
		SourceAccountID:      uuid.New(),
		DestinationAccountID: uuid.New(),
		Amount:               decimal.NewFromFloat(100.00),
	}

	err := s.db.Create(transfer).Error
	require.NoError(s.T(), err)
	assert.False(s.T(), transfer.TransactionDate.IsZero())
	assert.WithinDuration(s.T(), time.Now(), transfer.TransactionDate, 5*time.Second)
}

// TestFundTransfer_BeforeCreate_KeepsExplicitDate tests explicit date preserved
func (s *FundTransferTestSuite) TestFundTransfer_BeforeCreate_KeepsExplicitDate() {
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	transfer := &FundTransfer{
		SourceAccountID:      uuid.New(),
		DestinationAccountID: uuid.New(),
		Amount:               decimal.NewFromFloat(100.00),
		TransactionDate:      date,
	}

	err := s.db.Create(transfer).Error
	require.NoError(s.T(), err)
	assert.True(s.T(), transfer.TransactionDate.Equal(date))
}

// TestFundTransfer_Validate_RejectsSameAccounts tests same-account validation
func (s *FundTransferTestSuite) TestFundTransfer_Validate_RejectsSameAccounts() {
	id := uuid.New()
	transfer := &FundTransfer{
		SourceAccountID:      id,
		DestinationAccountID: id,
		Amount:               decimal.NewFromFloat(100.00),
	}

	err := s.db.Create(transfer).Error
	assert.ErrorIs(s.T(), err, ErrSameTransferAccounts)
}

// TestFundTransfer_Validate_RejectsNonPositiveAmount tests amount validation
func (s *FundTransferTestSuite) TestFundTransfer_Validate_RejectsNonPositiveAmount() {
	transfer := &FundTransfer{
		SourceAccountID:      uuid.New(),
		DestinationAccountID: uuid.New(),
		Amount:               decimal.Zero,
	}

	err := s.db.Create(transfer).Error
	assert.ErrorIs(s.T(), err, ErrInvalidTransferAmount)
}

// TestFundTransfer_Validate_RequiresAccountIDs tests required IDs
func (s *FundTransferTestSuite) TestFundTransfer_Validate_RequiresAccountIDs() {
	transfer := &FundTransfer{
		Amount: decimal.NewFromFloat(100.00),
	}

	err := s.db.Create(transfer).Error
	assert.Error(s.T(), err)
}
