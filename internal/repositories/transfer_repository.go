package repositories

import (
	"errors"
	"fmt"

	"fundtransfer-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransferNotFound = errors.New("transfer not found")
)

// transferRepository implements TransferRepositoryInterface
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *gorm.DB) TransferRepositoryInterface {
	return &transferRepository{
		db: db,
	}
}

// Create appends a new transfer to the ledger
func (r *transferRepository) Create(transfer *models.FundTransfer) error {
	if transfer == nil {
		return errors.New("transfer cannot be nil")
	}

	if err := r.db.Create(transfer).Error; err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}

	return nil
}

// FindByID retrieves a transfer by ID
func (r *transferRepository) FindByID(id uuid.UUID) (*models.FundTransfer, error) {
	transfer := &models.FundTransfer{ID: id}
	if err := r.db.First(transfer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to find transfer by ID: %w", err)
	}

	return transfer, nil
}

// FindAll retrieves all transfers in insertion order
func (r *transferRepository) FindAll() ([]models.FundTransfer, error) {
	var transfers []models.FundTransfer
	if err := r.db.Order("transaction_date ASC").Find(&transfers).Error; err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	return transfers, nil
}

// FindByAccountID retrieves transfers where the account is either side
func (r *transferRepository) FindByAccountID(accountID uuid.UUID) ([]models.FundTransfer, error) {
	var transfers []models.FundTransfer
	if err := r.db.
		Where("source_account_id = ? OR destination_account_id = ?", accountID, accountID).
		Order("transaction_date ASC").
		Find(&transfers).Error; err != nil {
		return nil, fmt.Errorf("failed to list transfers for account: %w", err)
	}

	return transfers, nil
}
