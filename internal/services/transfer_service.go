package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fundtransfer-api/internal/events"
	"fundtransfer-api/internal/models"
	"fundtransfer-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSameAccountTransfer = errors.New("debit and credit account should not be same for fund transfer")
	ErrInvalidAmount       = errors.New("transfer amount must be positive")
	ErrAccountNotFound     = errors.New("either the debit or the credit account does not exist")
	ErrInsufficientBalance = errors.New("the balance of the debit account is not sufficient")

	// Side-specific lookup failures. Both unwrap to ErrAccountNotFound so the
	// transport keeps a single not-found kind while logs stay diagnostic.
	ErrSourceAccountNotFound      = fmt.Errorf("source account: %w", ErrAccountNotFound)
	ErrDestinationAccountNotFound = fmt.Errorf("destination account: %w", ErrAccountNotFound)
)

// transferService is the transfer execution engine. It validates a request,
// resolves both accounts, obtains the conversion rate, mutates both balances
// under the per-account-pair guard and appends the ledger entry.
//
// Account lookup, the advisory sufficiency check and rate resolution all run
// outside the guard so that a slow rate lookup never blocks unrelated
// transfers. The authoritative sufficiency check happens again inside the
// guard against freshly loaded state.
type transferService struct {
	accountRepo  repositories.AccountRepositoryInterface
	transferRepo repositories.TransferRepositoryInterface
	rateSource   RateSourceInterface
	locks        AccountLockerInterface
	publisher    events.PublisherInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewTransferService creates the transfer execution engine
func NewTransferService(
	accountRepo repositories.AccountRepositoryInterface,
	transferRepo repositories.TransferRepositoryInterface,
	rateSource RateSourceInterface,
	locks AccountLockerInterface,
	publisher events.PublisherInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransferServiceInterface {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &transferService{
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		rateSource:   rateSource,
		locks:        locks,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
	}
}

// ExecuteTransfer moves amount (denominated in the source account's currency)
// from the source account to the destination account, converting it when the
// currencies differ. On success exactly one ledger entry records the original
// pre-conversion amount.
func (s *transferService) ExecuteTransfer(ctx context.Context, sourceID, destinationID uuid.UUID, amount decimal.Decimal) (*models.FundTransfer, error) {
	start := time.Now()

	transfer, err := s.executeTransfer(ctx, sourceID, destinationID, amount)

	if s.metrics != nil {
		status := "success"
		if err != nil {
			status = "failure"
		}
		s.metrics.RecordTransfer(status, time.Since(start), amount)
	}

	return transfer, err
}

func (s *transferService) executeTransfer(ctx context.Context, sourceID, destinationID uuid.UUID, amount decimal.Decimal) (*models.FundTransfer, error) {
	if sourceID == destinationID {
		return nil, ErrSameAccountTransfer
	}

	// Upstream validation already rejects non-positive amounts; re-checked here
	// so the engine is safe regardless of caller.
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	source, destination, err := s.resolveAccounts(sourceID, destinationID)
	if err != nil {
		return nil, err
	}

	// Advisory fast-fail only: the balance may change before the guard is
	// acquired, so the authoritative check runs again under the lock.
	if source.Balance.LessThan(amount) {
		return nil, ErrInsufficientBalance
	}

	rate, err := s.resolveRate(ctx, source, destination)
	if err != nil {
		return nil, err
	}

	if err := s.locks.WithAccountsLocked(sourceID, destinationID, func() error {
		return s.applyTransfer(sourceID, destinationID, amount, rate)
	}); err != nil {
		return nil, err
	}

	transfer := &models.FundTransfer{
		SourceAccountID:      sourceID,
		DestinationAccountID: destinationID,
		Amount:               amount,
		TransactionDate:      time.Now(),
	}

	if err := s.transferRepo.Create(transfer); err != nil {
		return nil, fmt.Errorf("failed to record transfer: %w", err)
	}

	s.publishCompleted(ctx, transfer, source.Currency)

	s.logger.Info("fund transfer completed successfully",
		"transfer_id", transfer.ID,
		"source_account_id", sourceID,
		"destination_account_id", destinationID,
		"amount", amount.String(),
	)

	return transfer, nil
}

// resolveAccounts fetches both accounts with the ACTIVE status filter
func (s *transferService) resolveAccounts(sourceID, destinationID uuid.UUID) (*models.Account, *models.Account, error) {
	source, err := s.accountRepo.FindActiveByID(sourceID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, nil, ErrSourceAccountNotFound
		}
		return nil, nil, fmt.Errorf("failed to get source account: %w", err)
	}

	destination, err := s.accountRepo.FindActiveByID(destinationID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, nil, ErrDestinationAccountNotFound
		}
		return nil, nil, fmt.Errorf("failed to get destination account: %w", err)
	}

	return source, destination, nil
}

// resolveRate returns exactly 1 for same-currency transfers without touching
// the rate source; conversion across currencies asks the external provider.
// Rate resolution happens strictly before lock acquisition so a hanging
// provider never holds an account lock. Failures are not retried by the
// engine; the caller may retry the whole operation.
func (s *transferService) resolveRate(ctx context.Context, source, destination *models.Account) (decimal.Decimal, error) {
	if source.HasSameCurrency(destination) {
		return decimal.NewFromInt(1), nil
	}

	rate, err := s.rateSource.GetRate(ctx, source.Currency, destination.Currency)
	if err != nil {
		if errors.Is(err, ErrRateUnavailable) {
			return decimal.Zero, err
		}
		return decimal.Zero, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}

	return rate, nil
}

// applyTransfer is the critical section: it runs while both account locks are
// held. State read before the lock is discarded; both accounts are re-fetched
// and sufficiency is re-validated against the authoritative balance before
// any mutation. Both saves commit in one storage transaction.
func (s *transferService) applyTransfer(sourceID, destinationID uuid.UUID, amount, rate decimal.Decimal) error {
	source, destination, err := s.resolveAccounts(sourceID, destinationID)
	if err != nil {
		return err
	}

	if source.Balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	convertedAmount := amount.Mul(rate)

	if err := source.Debit(amount); err != nil {
		return err
	}
	if err := destination.Credit(convertedAmount); err != nil {
		return err
	}

	if err := s.accountRepo.TransferBalances(source, destination); err != nil {
		return fmt.Errorf("failed to persist balances: %w", err)
	}

	return nil
}

// publishCompleted emits the transfer.completed event. Publishing is
// best-effort: the transfer is already committed, so a broker failure is
// logged and swallowed.
func (s *transferService) publishCompleted(ctx context.Context, transfer *models.FundTransfer, currency string) {
	event := events.TransferCompletedEvent{
		TransferID:           transfer.ID.String(),
		SourceAccountID:      transfer.SourceAccountID.String(),
		DestinationAccountID: transfer.DestinationAccountID.String(),
		Amount:               transfer.Amount.String(),
		Currency:             currency,
		TransactionDate:      transfer.TransactionDate,
	}

	if err := s.publisher.PublishTransferCompleted(ctx, event); err != nil {
		s.logger.Error("failed to publish transfer event",
			"error", err,
			"transfer_id", transfer.ID,
		)
	}
}

// ListTransfers returns all recorded transfers in storage insertion order
func (s *transferService) ListTransfers() ([]models.FundTransfer, error) {
	transfers, err := s.transferRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get transfers: %w", err)
	}
	return transfers, nil
}
