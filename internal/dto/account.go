package dto

import (
	"time"

	"fundtransfer-api/internal/models"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for opening a new account
type CreateAccountRequest struct {
	OwnerID  int64  `json:"owner_id" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"required,currency"`
	Balance  string `json:"balance" validate:"required"`
}

// UpdateAccountRequest represents the request payload for replacing account fields
type UpdateAccountRequest struct {
	OwnerID  int64  `json:"owner_id" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"required,currency"`
	Balance  string `json:"balance" validate:"required"`
}

// Account Response DTOs

// AccountResponse represents a single account in API responses
type AccountResponse struct {
	ID        string `json:"id"`
	OwnerID   int64  `json:"owner_id"`
	Currency  string `json:"currency"`
	Balance   string `json:"balance"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// AccountListResponse represents a list of accounts
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// NewAccountResponse maps an account model to its API representation. Mapping
// is explicit field by field; no reflection.
func NewAccountResponse(account *models.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		OwnerID:   account.OwnerID,
		Currency:  account.Currency,
		Balance:   account.Balance.String(),
		Status:    account.Status,
		CreatedAt: account.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: account.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// NewAccountListResponse maps a slice of account models
func NewAccountListResponse(accounts []models.Account) AccountListResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, NewAccountResponse(&accounts[i]))
	}
	return AccountListResponse{
		Accounts: responses,
		Total:    len(responses),
	}
}
