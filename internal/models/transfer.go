package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidTransferAmount = errors.New("transfer amount must be positive")
	ErrSameTransferAccounts  = errors.New("source and destination accounts cannot be the same")
)

// FundTransfer is the ledger record of a completed transfer. The amount is
// denominated in the source account's currency, before conversion. Records are
// created exactly once per successful transfer and never updated or deleted.
type FundTransfer struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SourceAccountID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_transfer_source_account" json:"source_account_id"`
	DestinationAccountID uuid.UUID       `gorm:"type:uuid;not null;index:idx_transfer_destination_account" json:"destination_account_id"`
	Amount               decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"amount"`
	TransactionDate      time.Time       `gorm:"not null;index:idx_transfer_transaction_date" json:"transaction_date"`
}

// BeforeCreate hook for FundTransfer
func (t *FundTransfer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.TransactionDate.IsZero() {
		t.TransactionDate = time.Now()
	}

	return t.Validate()
}

// Validate validates the transfer fields
func (t *FundTransfer) Validate() error {
	if t.SourceAccountID == uuid.Nil {
		return errors.New("source account ID is required")
	}

	if t.DestinationAccountID == uuid.Nil {
		return errors.New("destination account ID is required")
	}

	if t.SourceAccountID == t.DestinationAccountID {
		return ErrSameTransferAccounts
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTransferAmount
	}

	return nil
}

// TableName returns the table name for FundTransfer
func (t *FundTransfer) TableName() string {
	return "fund_transfers"
}
