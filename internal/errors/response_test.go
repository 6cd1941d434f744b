package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AccountNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("ACCOUNT_001", response.Error.Code)
	s.Equal("Either the debit or the credit account does not exist", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"Field validation failed", "Currency is required"}
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails(details...))

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithMessage tests overriding the default message
func (s *ResponseTestSuite) TestNewErrorResponse_WithMessage() {
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithMessage("custom message"))

	s.Equal("custom message", response.Error.Message)
}

// TestNewValidationError tests field-level validation error responses
func (s *ResponseTestSuite) TestNewValidationError() {
	response := NewValidationError(map[string]string{
		"amount": "must be a decimal amount greater than 0",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Len(response.Error.Details, 1)
	s.Contains(response.Error.Details[0], "amount")
}

// TestWrapSystemError tests hiding internal errors behind a generic response
func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("pq: connection refused")
	response, err := WrapSystemError(internal, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "pq:")
	s.Equal(internal, err)
}

// TestToJSON tests serialization of the error envelope
func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(RateUnavailable, s.traceID)

	data, err := response.ToJSON()
	s.NoError(err)

	var decoded ErrorResponse
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal("RATE_001", decoded.Error.Code)
	s.Equal(s.traceID, decoded.Error.TraceID)
}

// TestGetHTTPStatus tests the error code to HTTP status mapping
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{TransferInvalidAmount, http.StatusBadRequest},
		{AuthMissingCredentials, http.StatusUnauthorized},
		{AuthInvalidCredentials, http.StatusUnauthorized},
		{TransferSameAccount, http.StatusPaymentRequired},
		{TransferInsufficientFunds, http.StatusPaymentRequired},
		{AccountNotFound, http.StatusNotFound},
		{TransferNotFound, http.StatusNotFound},
		{AccountInactive, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{RateUnavailable, http.StatusServiceUnavailable},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("NOPE_001"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

// TestIsClientError_IsServerError tests error classification helpers
func (s *ResponseTestSuite) TestIsClientError_IsServerError() {
	clientErr := NewErrorResponse(AccountNotFound, s.traceID)
	s.True(clientErr.IsClientError())
	s.False(clientErr.IsServerError())

	serverErr := NewErrorResponse(SystemInternalError, s.traceID)
	s.False(serverErr.IsClientError())
	s.True(serverErr.IsServerError())
}
