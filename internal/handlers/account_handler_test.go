package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fundtransfer-api/internal/dto"
	"fundtransfer-api/internal/models"
	"fundtransfer-api/internal/repositories"
	"fundtransfer-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountHandlerSuite defines the test suite for AccountHandler
type AccountHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockAccountServiceInterface
	handler     *AccountHandler
	echo        *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *AccountHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.handler = NewAccountHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

// TearDownTest runs after each test in the suite
func (s *AccountHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAccountHandlerSuite runs the test suite
func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerSuite))
}

func (s *AccountHandlerSuite) createContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, uuid.New().String())
	return c, rec
}

func testAccount(id uuid.UUID) *models.Account {
	return &models.Account{
		ID:       id,
		OwnerID:  1,
		Currency: "USD",
		Balance:  decimal.NewFromInt(500),
		Status:   models.AccountStatusActive,
	}
}

func (s *AccountHandlerSuite) TestCreateAccount_Success() {
	accountID := uuid.New()

	s.mockService.EXPECT().
		CreateAccount(int64(1), "USD", gomock.Any()).
		DoAndReturn(func(ownerID int64, currency string, balance decimal.Decimal) (*models.Account, error) {
			s.True(balance.Equal(decimal.NewFromFloat(500.25)))
			return testAccount(accountID), nil
		})

	c, rec := s.createContext("POST", "/api/v1/accounts", dto.CreateAccountRequest{
		OwnerID:  1,
		Currency: "USD",
		Balance:  "500.25",
	})

	err := s.handler.CreateAccount(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.AccountResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(accountID.String(), resp.ID)
	s.Equal("ACTIVE", resp.Status)
}

func (s *AccountHandlerSuite) TestCreateAccount_InvalidCurrency() {
	c, rec := s.createContext("POST", "/api/v1/accounts", dto.CreateAccountRequest{
		OwnerID:  1,
		Currency: "DOLLAR",
		Balance:  "100",
	})

	err := s.handler.CreateAccount(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AccountHandlerSuite) TestCreateAccount_NegativeBalance() {
	c, rec := s.createContext("POST", "/api/v1/accounts", dto.CreateAccountRequest{
		OwnerID:  1,
		Currency: "USD",
		Balance:  "-100",
	})

	err := s.handler.CreateAccount(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AccountHandlerSuite) TestGetAccount_Success() {
	accountID := uuid.New()

	s.mockService.EXPECT().
		GetAccountByID(accountID).
		Return(testAccount(accountID), nil)

	c, rec := s.createContext("GET", "/api/v1/accounts/"+accountID.String(), nil)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.GetAccount(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AccountHandlerSuite) TestGetAccount_InvalidID() {
	c, rec := s.createContext("GET", "/api/v1/accounts/not-a-uuid", nil)
	c.SetParamNames("accountId")
	c.SetParamValues("not-a-uuid")

	err := s.handler.GetAccount(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AccountHandlerSuite) TestGetAccount_NotFound() {
	accountID := uuid.New()

	s.mockService.EXPECT().
		GetAccountByID(accountID).
		Return(nil, repositories.ErrAccountNotFound)

	c, rec := s.createContext("GET", "/api/v1/accounts/"+accountID.String(), nil)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.GetAccount(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *AccountHandlerSuite) TestListAccounts() {
	s.mockService.EXPECT().
		GetAllAccounts().
		Return([]models.Account{*testAccount(uuid.New()), *testAccount(uuid.New())}, nil)

	c, rec := s.createContext("GET", "/api/v1/accounts", nil)

	err := s.handler.ListAccounts(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AccountListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Total)
}

func (s *AccountHandlerSuite) TestUpdateAccount_Success() {
	accountID := uuid.New()

	s.mockService.EXPECT().
		UpdateAccount(accountID, int64(7), "EUR", gomock.Any()).
		Return(testAccount(accountID), nil)

	c, rec := s.createContext("PUT", "/api/v1/accounts/"+accountID.String(), dto.UpdateAccountRequest{
		OwnerID:  7,
		Currency: "EUR",
		Balance:  "250",
	})
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.UpdateAccount(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AccountHandlerSuite) TestActivateAccount() {
	accountID := uuid.New()

	s.mockService.EXPECT().
		ActivateAccount(accountID).
		Return(nil)

	c, rec := s.createContext("PUT", "/api/v1/accounts/"+accountID.String()+"/activate", nil)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.ActivateAccount(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AccountHandlerSuite) TestDeactivateAccount_NotFound() {
	accountID := uuid.New()

	s.mockService.EXPECT().
		DeactivateAccount(accountID).
		Return(repositories.ErrAccountNotFound)

	c, rec := s.createContext("PUT", "/api/v1/accounts/"+accountID.String()+"/deactivate", nil)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	err := s.handler.DeactivateAccount(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}
