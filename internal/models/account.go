package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountStatusActive   = "ACTIVE"
	AccountStatusInactive = "INACTIVE"
)

var (
	ErrInvalidAccountStatus = errors.New("invalid account status")
	ErrInvalidBalance       = errors.New("balance cannot be negative")
	ErrAccountNotActive     = errors.New("account is not active")
	ErrInsufficientFunds    = errors.New("insufficient funds")
)

// Account represents a balance-holding account owned by a customer
type Account struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   int64           `gorm:"not null;index" json:"owner_id"`
	Currency  string          `gorm:"type:varchar(3);not null" json:"currency"`
	Balance   decimal.Decimal `gorm:"type:decimal(19,4);not null;default:0" json:"balance"`
	Status    string          `gorm:"type:varchar(20);not null;default:'ACTIVE';index" json:"status"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"last_updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Status == "" {
		a.Status = AccountStatusActive
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.OwnerID <= 0 {
		return errors.New("owner ID must be positive")
	}

	if len(a.Currency) != 3 {
		return errors.New("currency must be a 3-letter ISO-4217 code")
	}

	if !IsValidAccountStatus(a.Status) {
		return ErrInvalidAccountStatus
	}

	if a.Balance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}

	return nil
}

// IsActive returns true if the account is active
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// Activate activates the account
func (a *Account) Activate() {
	a.Status = AccountStatusActive
}

// Deactivate deactivates the account. Deactivation is a soft state change;
// accounts are never physically deleted.
func (a *Account) Deactivate() {
	a.Status = AccountStatusInactive
}

// HasSameCurrency reports whether the account holds the same currency as other,
// compared case-insensitively
func (a *Account) HasSameCurrency(other *Account) bool {
	return strings.EqualFold(a.Currency, other.Currency)
}

// CanWithdraw checks if the amount can be withdrawn
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return a.IsActive() && a.Balance.GreaterThanOrEqual(amount) && amount.GreaterThan(decimal.Zero)
}

// Debit debits the account
func (a *Account) Debit(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("debit amount must be positive")
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Credit credits the account
func (a *Account) Credit(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("credit amount must be positive")
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusActive, AccountStatusInactive:
		return true
	default:
		return false
	}
}
