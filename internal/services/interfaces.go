package services

import (
	"context"
	"time"

	"fundtransfer-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferServiceInterface defines the transfer execution engine exposed to the
// transport layer
type TransferServiceInterface interface {
	ExecuteTransfer(ctx context.Context, sourceID, destinationID uuid.UUID, amount decimal.Decimal) (*models.FundTransfer, error)
	ListTransfers() ([]models.FundTransfer, error)
}

// AccountServiceInterface defines account lifecycle operations
type AccountServiceInterface interface {
	CreateAccount(ownerID int64, currency string, balance decimal.Decimal) (*models.Account, error)
	GetAccountByID(id uuid.UUID) (*models.Account, error)
	GetAllAccounts() ([]models.Account, error)
	UpdateAccount(id uuid.UUID, ownerID int64, currency string, balance decimal.Decimal) (*models.Account, error)
	ActivateAccount(id uuid.UUID) error
	DeactivateAccount(id uuid.UUID) error
}

// RateSourceInterface supplies currency conversion multipliers. A returned rate
// is valid only for the single operation that requested it; no caching or
// staleness contract is implied.
type RateSourceInterface interface {
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
}

// AccountLockerInterface serializes balance mutations that touch a given
// account pair while letting disjoint pairs proceed in parallel
type AccountLockerInterface interface {
	WithAccountsLocked(idA, idB uuid.UUID, fn func() error) error
}

// CircuitBreakerInterface guards calls to an unreliable downstream service
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
}

// MetricsRecorderInterface records operational metrics for transfers and rate lookups
type MetricsRecorderInterface interface {
	RecordTransfer(status string, duration time.Duration, amount decimal.Decimal)
	RecordRateLookup(status string, duration time.Duration)
	RecordCircuitBreakerState(service string, state CircuitBreakerState)
	RecordAccountOperation(operation string)
}
