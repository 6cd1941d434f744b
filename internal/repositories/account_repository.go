package repositories

import (
	"errors"
	"fmt"
	"time"

	"fundtransfer-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// FindByID retrieves an account by ID regardless of status
func (r *accountRepository) FindByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{ID: id}
	if err := r.db.First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// FindActiveByID retrieves an account by ID with an ACTIVE status filter.
// Inactive accounts are reported as not found, matching the lookup contract
// used on the transfer path.
func (r *accountRepository) FindActiveByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ? AND status = ?", id, models.AccountStatusActive).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get active account: %w", err)
	}
	return &account, nil
}

// FindAll retrieves all accounts
func (r *accountRepository) FindAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// Update updates an account
func (r *accountRepository) Update(account *models.Account) error {
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// UpdateStatus updates the status of an account
func (r *accountRepository) UpdateStatus(id uuid.UUID, status string) error {
	if !models.IsValidAccountStatus(status) {
		return models.ErrInvalidAccountStatus
	}

	// Hooks are skipped: the validation hook expects a fully populated
	// account, and this is a single-column state change.
	result := r.db.Session(&gorm.Session{SkipHooks: true}).
		Model(&models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})

	if result.Error != nil {
		return fmt.Errorf("failed to update account status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// TransferBalances persists the already-mutated source and destination accounts
// inside a single database transaction. Either both balance writes commit or
// neither does, so a half-applied transfer can never be observed.
func (r *accountRepository) TransferBalances(source, destination *models.Account) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(source).Error; err != nil {
			return fmt.Errorf("failed to persist source account: %w", err)
		}

		if err := tx.Save(destination).Error; err != nil {
			return fmt.Errorf("failed to persist destination account: %w", err)
		}

		return nil
	})
}
