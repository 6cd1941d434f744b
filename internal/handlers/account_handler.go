package handlers

import (
	stderrors "errors"
	"net/http"

	"fundtransfer-api/internal/dto"
	"fundtransfer-api/internal/errors"
	"fundtransfer-api/internal/repositories"
	"fundtransfer-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AccountHandler handles account management HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// CreateAccount opens a new account
// @Summary Create a new account
// @Description Open a new account with an owner, currency and opening balance
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse "Account created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	balance, err := decimal.NewFromString(req.Balance)
	if err != nil || balance.IsNegative() {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid opening balance"))
	}

	account, err := h.accountService.CreateAccount(req.OwnerID, req.Currency, balance)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewAccountResponse(account))
}

// GetAccount retrieves a single active account
// @Summary Get account by ID
// @Description Retrieve an active account by its ID
// @Tags Accounts
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountResponse "Account details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	account, err := h.accountService.GetAccountByID(accountID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrAccountNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// ListAccounts retrieves every account
// @Summary List accounts
// @Description Retrieve all accounts regardless of status
// @Tags Accounts
// @Produce json
// @Success 200 {object} dto.AccountListResponse "List of accounts"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountService.GetAllAccounts()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountListResponse(accounts))
}

// UpdateAccount replaces the mutable fields of an account
// @Summary Update account
// @Description Replace the owner, currency and balance of an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.UpdateAccountRequest true "Account details"
// @Success 200 {object} dto.AccountResponse "Updated account"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [put]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	balance, err := decimal.NewFromString(req.Balance)
	if err != nil || balance.IsNegative() {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid balance"))
	}

	account, err := h.accountService.UpdateAccount(accountID, req.OwnerID, req.Currency, balance)
	if err != nil {
		if stderrors.Is(err, repositories.ErrAccountNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// ActivateAccount marks an account ACTIVE
// @Summary Activate account
// @Tags Accounts
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Account activated"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId}/activate [put]
func (h *AccountHandler) ActivateAccount(c echo.Context) error {
	return h.setStatus(c, h.accountService.ActivateAccount, "Account activated successfully")
}

// DeactivateAccount marks an account INACTIVE
// @Summary Deactivate account
// @Tags Accounts
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Account deactivated"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId}/deactivate [put]
func (h *AccountHandler) DeactivateAccount(c echo.Context) error {
	return h.setStatus(c, h.accountService.DeactivateAccount, "Account deactivated successfully")
}

func (h *AccountHandler) setStatus(c echo.Context, op func(uuid.UUID) error, message string) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	if err := op(accountID); err != nil {
		if stderrors.Is(err, repositories.ErrAccountNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}
