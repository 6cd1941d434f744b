package models

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AccountTestSuite is the test suite for Account model
type AccountTestSuite struct {
	suite.Suite
	db *gorm.DB
}

// SetupTest runs before each test
func (s *AccountTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&Account{})
	require.NoError(s.T(), err)

	s.db = db
}

// TearDownTest runs after each test
func (s *AccountTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// TestAccountTestSuite runs the test suite
func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

func (s *AccountTestSuite) newAccount() *Account {
	return &Account{
		OwnerID:  int64(gofakeit.Number(1, 100000)),
		Currency: "USD",
		Balance:  decimal.NewFromInt(500),
	}
}

// TestAccount_BeforeCreate_GeneratesID tests ID generation
func (s *AccountTestSuite) TestAccount_BeforeCreate_GeneratesID() {
	account := s.newAccount()

	err := s.db.Create(account).Error
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, account.ID)
}

// TestAccount_BeforeCreate_DefaultsToActive tests default status
func (s *AccountTestSuite) TestAccount_BeforeCreate_DefaultsToActive() {
	account := s.newAccount()

	err := s.db.Create(account).Error
	require.NoError(s.T(), err)
	assert.Equal(s.T(), AccountStatusActive, account.Status)
	assert.True(s.T(), account.IsActive())
}

// TestAccount_BeforeCreate_RejectsNegativeBalance tests balance validation
func (s *AccountTestSuite) TestAccount_BeforeCreate_RejectsNegativeBalance() {
	account := s.newAccount()
	account.Balance = decimal.NewFromInt(-1)

	err := s.db.Create(account).Error
	assert.ErrorIs(s.T(), err, ErrInvalidBalance)
}

// TestAccount_BeforeCreate_RejectsInvalidCurrency tests currency validation
func (s *AccountTestSuite) TestAccount_BeforeCreate_RejectsInvalidCurrency() {
	account := s.newAccount()
	account.Currency = "DOLLARS"

	err := s.db.Create(account).Error
	assert.Error(s.T(), err)
}

// TestAccount_BeforeCreate_RejectsInvalidStatus tests status validation
func (s *AccountTestSuite) TestAccount_BeforeCreate_RejectsInvalidStatus() {
	account := s.newAccount()
	account.Status = "FROZEN"

	err := s.db.Create(account).Error
	assert.ErrorIs(s.T(), err, ErrInvalidAccountStatus)
}

func (s *AccountTestSuite) TestAccount_Debit_ReducesBalance() {
	account := s.newAccount()

	err := account.Debit(decimal.NewFromInt(200))
	require.NoError(s.T(), err)
	assert.True(s.T(), account.Balance.Equal(decimal.NewFromInt(300)))
}

func (s *AccountTestSuite) TestAccount_Debit_InsufficientFunds() {
	account := s.newAccount()

	err := account.Debit(decimal.NewFromInt(600))
	assert.ErrorIs(s.T(), err, ErrInsufficientFunds)
	assert.True(s.T(), account.Balance.Equal(decimal.NewFromInt(500)))
}

func (s *AccountTestSuite) TestAccount_Debit_ExactBalance() {
	account := s.newAccount()

	err := account.Debit(decimal.NewFromInt(500))
	require.NoError(s.T(), err)
	assert.True(s.T(), account.Balance.IsZero())
}

func (s *AccountTestSuite) TestAccount_Debit_InactiveAccount() {
	account := s.newAccount()
	account.Deactivate()

	err := account.Debit(decimal.NewFromInt(100))
	assert.ErrorIs(s.T(), err, ErrAccountNotActive)
}

func (s *AccountTestSuite) TestAccount_Credit_IncreasesBalance() {
	account := s.newAccount()

	err := account.Credit(decimal.NewFromFloat(110.55))
	require.NoError(s.T(), err)
	assert.True(s.T(), account.Balance.Equal(decimal.NewFromFloat(610.55)))
}

func (s *AccountTestSuite) TestAccount_Credit_RejectsNonPositiveAmount() {
	account := s.newAccount()

	err := account.Credit(decimal.Zero)
	assert.Error(s.T(), err)
}

func (s *AccountTestSuite) TestAccount_HasSameCurrency_CaseInsensitive() {
	a := &Account{Currency: "usd"}
	b := &Account{Currency: "USD"}
	c := &Account{Currency: "EUR"}

	assert.True(s.T(), a.HasSameCurrency(b))
	assert.False(s.T(), a.HasSameCurrency(c))
}

func (s *AccountTestSuite) TestAccount_ActivateDeactivate() {
	account := s.newAccount()
	account.Status = AccountStatusActive

	account.Deactivate()
	assert.Equal(s.T(), AccountStatusInactive, account.Status)
	assert.False(s.T(), account.IsActive())

	account.Activate()
	assert.Equal(s.T(), AccountStatusActive, account.Status)
	assert.True(s.T(), account.IsActive())
}

func (s *AccountTestSuite) TestAccount_CanWithdraw() {
	account := s.newAccount()

	assert.True(s.T(), account.CanWithdraw(decimal.NewFromInt(500)))
	assert.False(s.T(), account.CanWithdraw(decimal.NewFromInt(501)))
	assert.False(s.T(), account.CanWithdraw(decimal.Zero))

	account.Deactivate()
	assert.False(s.T(), account.CanWithdraw(decimal.NewFromInt(1)))
}

func TestIsValidAccountStatus(t *testing.T) {
	assert.True(t, IsValidAccountStatus(AccountStatusActive))
	assert.True(t, IsValidAccountStatus(AccountStatusInactive))
	assert.False(t, IsValidAccountStatus("CLOSED"))
	assert.False(t, IsValidAccountStatus(""))
}
