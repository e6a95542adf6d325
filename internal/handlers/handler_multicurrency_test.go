package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	portssvc "github.com/SscSPs/pos_multi_currency/internal/core/ports/services"
	"github.com/SscSPs/pos_multi_currency/internal/dto"
	"github.com/SscSPs/pos_multi_currency/internal/handlers"
	"github.com/SscSPs/pos_multi_currency/internal/middleware"
	"github.com/SscSPs/pos_multi_currency/internal/utils/currencymath"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// --- Mock MultiCurrencyService ---
type MockMultiCurrencyService struct {
	mock.Mock
}

func (m *MockMultiCurrencyService) IsActive() bool      { return m.Called().Bool(0) }
func (m *MockMultiCurrencyService) IsConfigured() bool  { return m.Called().Bool(0) }
func (m *MockMultiCurrencyService) AllowRateEdit() bool { return m.Called().Bool(0) }
func (m *MockMultiCurrencyService) CanEditRate() bool   { return m.Called().Bool(0) }

func (m *MockMultiCurrencyService) AllowedCurrencies() []domain.Currency {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Currency)
}

func (m *MockMultiCurrencyService) BaseCurrency() *domain.Currency {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Currency)
}

func (m *MockMultiCurrencyService) BaseCurrencyID() int64 {
	return m.Called().Get(0).(int64)
}

func (m *MockMultiCurrencyService) Rates() domain.RateTable {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(domain.RateTable)
}

func (m *MockMultiCurrencyService) Init(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockMultiCurrencyService) RefreshRates(ctx context.Context) domain.RateTable {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(domain.RateTable)
}

func (m *MockMultiCurrencyService) SetSessionEnabled(enabled bool) {
	m.Called(enabled)
}

func (m *MockMultiCurrencyService) AssignPaymentCurrency(ctx context.Context, line *domain.Payment, currencyID int64) error {
	return m.Called(ctx, line, currencyID).Error(0)
}

func (m *MockMultiCurrencyService) StampFixedCurrency(ctx context.Context, line *domain.Payment, method *domain.PaymentMethod) error {
	return m.Called(ctx, line, method).Error(0)
}

func (m *MockMultiCurrencyService) ValidateManualRate(manualRate float64, currencyID int64) currencymath.Validation {
	args := m.Called(manualRate, currencyID)
	return args.Get(0).(currencymath.Validation)
}

// Ensure mock implements the interface
var _ portssvc.MultiCurrencySvcFacade = (*MockMultiCurrencyService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) SummarizeForeignPayments(order *domain.Order) []dto.ForeignPaymentSummaryRow {
	args := m.Called(order)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]dto.ForeignPaymentSummaryRow)
}

func (m *MockReportingService) ActiveRates(order *domain.Order) []domain.ActiveRate {
	args := m.Called(order)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ActiveRate)
}

func (m *MockReportingService) OrderForeignStats(order *domain.Order) dto.OrderForeignStatsResponse {
	args := m.Called(order)
	return args.Get(0).(dto.OrderForeignStatsResponse)
}

func (m *MockReportingService) SessionStatistics(ctx context.Context, sessionID int64) dto.SessionStatisticsResponse {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(dto.SessionStatisticsResponse)
}

// Ensure mock implements the interface
var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type MultiCurrencyHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockMCService *MockMultiCurrencyService
	mockReporting *MockReportingService
	jwtSecret     string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *MultiCurrencyHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pos-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *MultiCurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockMCService = new(MockMultiCurrencyService)
	suite.mockReporting = new(MockReportingService)

	rate, _ := limiter.NewRateFromFormatted("100-M")
	refreshLimiter := limiter.New(memory.NewStore(), rate)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterMultiCurrencyRoutes(v1, suite.mockMCService, suite.mockReporting, refreshLimiter)
}

func (suite *MultiCurrencyHandlerTestSuite) doRequest(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("cashier-1"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *MultiCurrencyHandlerTestSuite) TestGetConfig() {
	usd := &domain.Currency{CurrencyID: 1, Name: "US Dollar", Symbol: "$", Rounding: 0.01}
	suite.mockMCService.On("IsConfigured").Return(true)
	suite.mockMCService.On("IsActive").Return(true)
	suite.mockMCService.On("AllowRateEdit").Return(true)
	suite.mockMCService.On("CanEditRate").Return(false)
	suite.mockMCService.On("AllowedCurrencies").Return([]domain.Currency{*usd})
	suite.mockMCService.On("BaseCurrency").Return(usd)

	w := suite.doRequest(http.MethodGet, "/api/v1/multicurrency/config", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MultiCurrencyConfigResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Enabled)
	suite.True(resp.Active)
	suite.False(resp.CanEditRate)
	suite.Require().NotNil(resp.BaseCurrency)
	suite.Equal(int64(1), resp.BaseCurrency.CurrencyID)
	suite.Len(resp.Currencies, 1)
}

func (suite *MultiCurrencyHandlerTestSuite) TestGetConfig_Unauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/multicurrency/config", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *MultiCurrencyHandlerTestSuite) TestGetRates() {
	suite.mockMCService.On("Rates").Return(domain.RateTable{2: 0.9})
	suite.mockMCService.On("BaseCurrencyID").Return(int64(1))

	w := suite.doRequest(http.MethodGet, "/api/v1/multicurrency/rates", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.BaseCurrencyID)
	suite.InDelta(0.9, resp.Rates[2], 1e-9)
}

func (suite *MultiCurrencyHandlerTestSuite) TestRefreshRates() {
	suite.mockMCService.On("RefreshRates", mock.Anything).Return(domain.RateTable{2: 0.91}).Once()
	suite.mockMCService.On("BaseCurrencyID").Return(int64(1))

	w := suite.doRequest(http.MethodPost, "/api/v1/multicurrency/rates/refresh", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.InDelta(0.91, resp.Rates[2], 1e-9)
	suite.mockMCService.AssertExpectations(suite.T())
}

func (suite *MultiCurrencyHandlerTestSuite) TestValidateRate_DeviationWarning() {
	suite.mockMCService.On("ValidateManualRate", 2.5, int64(2)).Return(currencymath.Validation{
		Valid:   false,
		Message: "Rate deviates more than 50% from market. Confirm to proceed.",
	}).Once()
	suite.mockMCService.On("Rates").Return(domain.RateTable{2: 0.9})
	suite.mockMCService.On("BaseCurrencyID").Return(int64(1))

	w := suite.doRequest(http.MethodPost, "/api/v1/multicurrency/rates/validate", dto.ValidateRateRequest{
		CurrencyID: 2,
		ManualRate: 2.5,
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ValidateRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Valid)
	suite.Contains(resp.Message, "deviates")
	suite.InDelta(0.9, resp.MarketRate, 1e-9)
	suite.mockMCService.AssertExpectations(suite.T())
}

func (suite *MultiCurrencyHandlerTestSuite) TestValidateRate_MissingCurrencyID() {
	w := suite.doRequest(http.MethodPost, "/api/v1/multicurrency/rates/validate", map[string]any{
		"manualRate": 0.9,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMCService.AssertNotCalled(suite.T(), "ValidateManualRate")
}

func (suite *MultiCurrencyHandlerTestSuite) TestGetSessionStatistics() {
	expected := dto.SessionStatisticsResponse{
		SessionID: 5,
		Rows:      []dto.SessionCurrencyStatsRow{{CurrencyID: 2, CurrencyName: "Euro", TotalAmount: 92.5}},
	}
	suite.mockReporting.On("SessionStatistics", mock.Anything, int64(5)).Return(expected).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/multicurrency/statistics/5", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SessionStatisticsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(5), resp.SessionID)
	suite.Require().Len(resp.Rows, 1)
	suite.Equal("Euro", resp.Rows[0].CurrencyName)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *MultiCurrencyHandlerTestSuite) TestGetSessionStatistics_InvalidID() {
	w := suite.doRequest(http.MethodGet, "/api/v1/multicurrency/statistics/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReporting.AssertNotCalled(suite.T(), "SessionStatistics")
}

func (suite *MultiCurrencyHandlerTestSuite) TestSetSessionEnabled() {
	suite.mockMCService.On("SetSessionEnabled", false).Once()
	suite.mockMCService.On("IsConfigured").Return(true)
	suite.mockMCService.On("IsActive").Return(false)
	suite.mockMCService.On("AllowRateEdit").Return(true)
	suite.mockMCService.On("CanEditRate").Return(true)
	suite.mockMCService.On("AllowedCurrencies").Return([]domain.Currency{})
	suite.mockMCService.On("BaseCurrency").Return((*domain.Currency)(nil))

	w := suite.doRequest(http.MethodPost, "/api/v1/multicurrency/session-enabled", dto.SessionEnabledRequest{
		Enabled: boolPtr(false),
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MultiCurrencyConfigResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Enabled)
	suite.False(resp.Active)
	suite.mockMCService.AssertExpectations(suite.T())
}

func (suite *MultiCurrencyHandlerTestSuite) TestSetSessionEnabled_MissingField() {
	w := suite.doRequest(http.MethodPost, "/api/v1/multicurrency/session-enabled", map[string]any{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMCService.AssertNotCalled(suite.T(), "SetSessionEnabled")
}

// boolPtr returns a pointer to the provided bool value.
func boolPtr(b bool) *bool {
	return &b
}

func TestMultiCurrencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MultiCurrencyHandlerTestSuite))
}
