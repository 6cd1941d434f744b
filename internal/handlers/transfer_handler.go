package handlers

import (
	stderrors "errors"
	"net/http"

	"fundtransfer-api/internal/dto"
	"fundtransfer-api/internal/errors"
	"fundtransfer-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransferHandler handles fund transfer HTTP requests
type TransferHandler struct {
	transferService services.TransferServiceInterface
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService services.TransferServiceInterface) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// ExecuteTransfer moves funds between two accounts
// @Summary Execute a fund transfer
// @Description Transfer an amount from the source account to the destination account, converting currency when needed
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse "Transfer completed"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 402 {object} errors.ErrorResponse "TRANSFER_001/TRANSFER_002 - Same account or insufficient balance"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 503 {object} errors.ErrorResponse "RATE_001 - Exchange rate unavailable"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transfers [post]
func (h *TransferHandler) ExecuteTransfer(c echo.Context) error {
	var req dto.TransferRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	sourceID, err := uuid.Parse(req.SourceAccountID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid source account ID"))
	}

	destinationID, err := uuid.Parse(req.DestinationAccountID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid destination account ID"))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.TransferInvalidAmount, errors.WithDetails("Invalid transfer amount"))
	}

	transfer, err := h.transferService.ExecuteTransfer(c.Request().Context(), sourceID, destinationID, amount)
	if err != nil {
		return h.sendTransferError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransferResponse(transfer))
}

// sendTransferError maps engine failures onto the error code catalog
func (h *TransferHandler) sendTransferError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrSameAccountTransfer):
		return SendError(c, errors.TransferSameAccount)
	case stderrors.Is(err, services.ErrInvalidAmount):
		return SendError(c, errors.TransferInvalidAmount)
	case stderrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case stderrors.Is(err, services.ErrInsufficientBalance):
		return SendError(c, errors.TransferInsufficientFunds)
	case stderrors.Is(err, services.ErrRateUnavailable):
		return SendError(c, errors.RateUnavailable)
	default:
		return SendSystemError(c, err)
	}
}

// ListTransfers returns all recorded transfers
// @Summary List transfers
// @Description Retrieve every recorded fund transfer
// @Tags Transfers
// @Produce json
// @Success 200 {object} dto.TransferListResponse "List of transfers"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transfers [get]
func (h *TransferHandler) ListTransfers(c echo.Context) error {
	transfers, err := h.transferService.ListTransfers()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransferListResponse(transfers))
}
