package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
	ValidationInvalidCurrency ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound              ErrorCode = "ACCOUNT_001"
	AccountInactive              ErrorCode = "ACCOUNT_002"
	AccountInsufficientBalance   ErrorCode = "ACCOUNT_003"
	AccountInvalidID             ErrorCode = "ACCOUNT_004"
	AccountOperationNotPermitted ErrorCode = "ACCOUNT_005"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferSameAccount       ErrorCode = "TRANSFER_001"
	TransferInsufficientFunds ErrorCode = "TRANSFER_002"
	TransferInvalidAmount     ErrorCode = "TRANSFER_003"
	TransferNotFound          ErrorCode = "TRANSFER_004"
)

// Exchange rate error codes (RATE_*)
const (
	RateUnavailable ErrorCode = "RATE_001"
	RateInvalidPair ErrorCode = "RATE_002"
)

// Authentication error codes (AUTH_*)
const (
	AuthMissingCredentials ErrorCode = "AUTH_001"
	AuthInvalidCredentials ErrorCode = "AUTH_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationOutOfRange:      "Field value is out of allowed range",
	ValidationInvalidCurrency: "Invalid currency format",

	// Account errors
	AccountNotFound:              "Either the debit or the credit account does not exist",
	AccountInactive:              "Account is inactive",
	AccountInsufficientBalance:   "Insufficient account balance",
	AccountInvalidID:             "Invalid account ID format",
	AccountOperationNotPermitted: "Account operation not permitted",

	// Transfer errors
	TransferSameAccount:       "Debit and credit account should not be same for fund transfer",
	TransferInsufficientFunds: "The balance of the debit account is not sufficient",
	TransferInvalidAmount:     "Transfer amount must be greater than 0",
	TransferNotFound:          "Transfer not found",

	// Exchange rate errors
	RateUnavailable: "The exchange rate cannot be retrieved",
	RateInvalidPair: "Unsupported currency pair",

	// Authentication errors
	AuthMissingCredentials: "Credentials are required",
	AuthInvalidCredentials: "Invalid credentials",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
