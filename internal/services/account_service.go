package services

import (
	"fmt"
	"log/slog"
	"strings"

	"fundtransfer-api/internal/models"
	"fundtransfer-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewAccountService creates a service for account management operations
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo: accountRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateAccount opens a new account. Accounts always start ACTIVE regardless
// of what the caller supplies.
func (s *accountService) CreateAccount(ownerID int64, currency string, balance decimal.Decimal) (*models.Account, error) {
	account := &models.Account{
		OwnerID:  ownerID,
		Currency: strings.ToUpper(strings.TrimSpace(currency)),
		Balance:  balance,
		Status:   models.AccountStatusActive,
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.recordOperation("create")
	s.logger.Info("account created",
		"account_id", account.ID,
		"owner_id", ownerID,
		"currency", account.Currency,
	)

	return account, nil
}

// GetAccountByID returns the account only when it exists and is ACTIVE
func (s *accountService) GetAccountByID(id uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.FindActiveByID(id)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAllAccounts() ([]models.Account, error) {
	accounts, err := s.accountRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount replaces the mutable account fields. Updates keep the account
// ACTIVE; status transitions go through Activate/Deactivate.
func (s *accountService) UpdateAccount(id uuid.UUID, ownerID int64, currency string, balance decimal.Decimal) (*models.Account, error) {
	account, err := s.accountRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	account.OwnerID = ownerID
	account.Currency = strings.ToUpper(strings.TrimSpace(currency))
	account.Balance = balance
	account.Status = models.AccountStatusActive

	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.recordOperation("update")
	return account, nil
}

// ActivateAccount marks the account ACTIVE so it can participate in transfers
func (s *accountService) ActivateAccount(id uuid.UUID) error {
	if err := s.accountRepo.UpdateStatus(id, models.AccountStatusActive); err != nil {
		return err
	}

	s.recordOperation("activate")
	s.logger.Info("account activated", "account_id", id)
	return nil
}

// DeactivateAccount is a soft delete: the row remains but the account stops
// resolving for transfers and lookups.
func (s *accountService) DeactivateAccount(id uuid.UUID) error {
	if err := s.accountRepo.UpdateStatus(id, models.AccountStatusInactive); err != nil {
		return err
	}

	s.recordOperation("deactivate")
	s.logger.Info("account deactivated", "account_id", id)
	return nil
}

func (s *accountService) recordOperation(operation string) {
	if s.metrics != nil {
		s.metrics.RecordAccountOperation(operation)
	}
}
