package dto

import (
	"time"

	"fundtransfer-api/internal/models"
)

// Transfer Request DTOs

// TransferRequest represents the request payload for executing a fund transfer.
// The amount is carried as a string so no precision is lost before it reaches
// the decimal type.
type TransferRequest struct {
	SourceAccountID      string `json:"source_account_id" validate:"required,uuid"`
	DestinationAccountID string `json:"destination_account_id" validate:"required,uuid"`
	Amount               string `json:"amount" validate:"required,positive_amount"`
}

// Transfer Response DTOs

// TransferResponse represents a completed transfer in API responses. Amount is
// the original debit amount in the source account's currency.
type TransferResponse struct {
	ID                   string `json:"id"`
	SourceAccountID      string `json:"source_account_id"`
	DestinationAccountID string `json:"destination_account_id"`
	Amount               string `json:"amount"`
	TransactionDate      string `json:"transaction_date"`
}

// TransferListResponse represents a list of recorded transfers
type TransferListResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	Total     int                `json:"total"`
}

// NewTransferResponse maps a transfer model to its API representation
func NewTransferResponse(transfer *models.FundTransfer) TransferResponse {
	return TransferResponse{
		ID:                   transfer.ID.String(),
		SourceAccountID:      transfer.SourceAccountID.String(),
		DestinationAccountID: transfer.DestinationAccountID.String(),
		Amount:               transfer.Amount.String(),
		TransactionDate:      transfer.TransactionDate.UTC().Format(time.RFC3339),
	}
}

// NewTransferListResponse maps a slice of transfer models
func NewTransferListResponse(transfers []models.FundTransfer) TransferListResponse {
	responses := make([]TransferResponse, 0, len(transfers))
	for i := range transfers {
		responses = append(responses, NewTransferResponse(&transfers[i]))
	}
	return TransferListResponse{
		Transfers: responses,
		Total:     len(responses),
	}
}
