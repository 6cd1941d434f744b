package repositories

import (
	"fundtransfer-api/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	FindByID(id uuid.UUID) (*models.Account, error)
	FindActiveByID(id uuid.UUID) (*models.Account, error)
	FindAll() ([]models.Account, error)
	Update(account *models.Account) error
	UpdateStatus(id uuid.UUID, status string) error
	TransferBalances(source, destination *models.Account) error
}

// TransferRepositoryInterface defines the contract for the transfer ledger.
// The ledger is append-only: records are created once and never updated.
type TransferRepositoryInterface interface {
	Create(transfer *models.FundTransfer) error
	FindByID(id uuid.UUID) (*models.FundTransfer, error)
	FindAll() ([]models.FundTransfer, error)
	FindByAccountID(accountID uuid.UUID) ([]models.FundTransfer, error)
}
