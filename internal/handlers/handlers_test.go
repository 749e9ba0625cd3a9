package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
	"github.com/SscSPs/cash_book_app/internal/dto"
	"github.com/SscSPs/cash_book_app/internal/handlers"
	"github.com/SscSPs/cash_book_app/internal/platform/config"
	"github.com/SscSPs/cash_book_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	jwtSecret       string
	healthErr       error
	mockParty       *MockPartyService
	mockTransaction *MockTransactionService
	mockLedger      *MockLedgerService
	mockRoznamcha   *MockRoznamchaService
	mockUser        *MockUserService
	mockToken       *MockTokenService
	mockBackup      *MockBackupService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.healthErr = nil
	suite.mockParty = new(MockPartyService)
	suite.mockTransaction = new(MockTransactionService)
	suite.mockLedger = new(MockLedgerService)
	suite.mockRoznamcha = new(MockRoznamchaService)
	suite.mockUser = new(MockUserService)
	suite.mockToken = new(MockTokenService)
	suite.mockBackup = new(MockBackupService)

	cfg := &config.Config{
		JWTSecret:      suite.jwtSecret,
		IsProduction:   true,
		RateLimit:      "1000-M",
		LoginRateLimit: "2-M",
	}
	container := &portssvc.ServiceContainer{
		Party:       suite.mockParty,
		Transaction: suite.mockTransaction,
		Ledger:      suite.mockLedger,
		Roznamcha:   suite.mockRoznamcha,
		User:        suite.mockUser,
		Token:       suite.mockToken,
		Backup:      suite.mockBackup,
		HealthCheck: func(_ context.Context) error { return suite.healthErr },
	}

	suite.router = gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, container, nil))
}

// generateTestToken creates a signed JWT for the given role.
func (suite *HandlerTestSuite) generateTestToken(userID string, role domain.Role) string {
	token, _, err := utils.GenerateJWT(userID, role, suite.jwtSecret, time.Hour, "cashbook-test")
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) do(method, url string, role domain.Role, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1", role))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func dayEq(y int, m time.Month, d int) interface{} {
	want := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

// --- Health ---

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.healthErr = errors.New("connection refused")
	w = suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

// --- Auth ---

func (suite *HandlerTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: "u1", Username: "clerk", Role: domain.RoleUser}
	expires := time.Now().Add(time.Hour)
	suite.mockUser.On("AuthenticateUser", mock.Anything, "clerk", "pw").Return(user, nil).Once()
	suite.mockToken.On("GenerateAccessToken", mock.Anything, user).Return("signed", expires, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Username: "clerk", Password: "pw"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed", resp.Token)
	suite.Equal(expires.Unix(), resp.ExpiresAt)
	suite.Equal("u1", resp.User.UserID)
}

func (suite *HandlerTestSuite) TestLogin_BadCredentialsAndRateLimit() {
	suite.mockUser.On("AuthenticateUser", mock.Anything, "clerk", "wrong").Return(nil, apperrors.ErrUnauthorized)
	creds := dto.LoginRequest{Username: "clerk", Password: "wrong"}

	for i := 0; i < 2; i++ {
		w := suite.do(http.MethodPost, "/api/v1/auth/login", "", creds)
		suite.Equal(http.StatusUnauthorized, w.Code)
		suite.Contains(w.Body.String(), "Invalid username or password")
	}
	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", creds)
	suite.Equal(http.StatusTooManyRequests, w.Code)
}

// --- Rights ---

func (suite *HandlerTestSuite) TestProtectedRoutes_RequireToken() {
	w := suite.do(http.MethodGet, "/api/v1/parties", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestUserRole_CannotManage() {
	w := suite.do(http.MethodGet, "/api/v1/users", domain.RoleUser, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/parties", domain.RoleUser, dto.CreatePartyRequest{Name: "X"})
	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockParty.AssertNotCalled(suite.T(), "CreateParty", mock.Anything, mock.Anything, mock.Anything)
}

// --- Users ---

func (suite *HandlerTestSuite) TestCreateUser_Admin() {
	req := dto.CreateUserRequest{Username: "clerk", Name: "Clerk", Password: "password1"}
	suite.mockUser.On("CreateUser", mock.Anything, req, "user-1").
		Return(&domain.User{UserID: "u2", Username: "clerk", Role: domain.RoleUser}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/users", domain.RoleAdmin, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"userID":"u2"`)
	suite.mockUser.AssertExpectations(suite.T())
}

// --- Parties ---

func (suite *HandlerTestSuite) TestCreateParty() {
	req := dto.CreatePartyRequest{Name: "Ali Traders", Phone: "0300"}
	suite.mockParty.On("CreateParty", mock.Anything, req, "user-1").
		Return(&domain.Party{PartyID: "p1", Name: "Ali Traders", Phone: "0300"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/parties", domain.RoleAdmin, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PartyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("p1", resp.PartyID)
}

func (suite *HandlerTestSuite) TestCreateParty_MissingName() {
	w := suite.do(http.MethodPost, "/api/v1/parties", domain.RoleAdmin, map[string]string{"phone": "1"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockParty.AssertNotCalled(suite.T(), "CreateParty", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetParty_NotFound() {
	suite.mockParty.On("GetPartyByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/parties/ghost", domain.RoleUser, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteParty_StillReferenced() {
	referenced := errors.Join(apperrors.ErrValidation, errors.New("party has transactions"))
	suite.mockParty.On("DeleteParty", mock.Anything, "p1", "user-1").Return(referenced).Once()

	w := suite.do(http.MethodDelete, "/api/v1/parties/p1", domain.RoleAdmin, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Transactions ---

func (suite *HandlerTestSuite) TestCreateTransaction() {
	suite.mockTransaction.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
		return r.AccountID == "p1" && r.Amount.Equal(decimal.RequireFromString("150.25"))
	}), "user-1").Return(&domain.Transaction{
		TransactionID:   "t1",
		AccountID:       "p1",
		TransactionType: domain.CashReceived,
		Debit:           decimal.RequireFromString("150.25"),
	}, nil).Once()

	body := map[string]any{"accountID": "p1", "transactionType": "cashReceived", "amount": "150.25"}
	w := suite.do(http.MethodPost, "/api/v1/transactions", domain.RoleAdmin, body)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"transactionID":"t1"`)
	suite.mockTransaction.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateTransaction_InvalidInput() {
	cases := []map[string]any{
		{"accountID": "p1", "transactionType": "gift", "amount": "10"},
		{"accountID": "p1", "transactionType": "cashReceived", "amount": "-5"},
		{"transactionType": "cashReceived", "amount": "10"},
	}
	for _, body := range cases {
		w := suite.do(http.MethodPost, "/api/v1/transactions", domain.RoleAdmin, body)
		suite.Equal(http.StatusBadRequest, w.Code, "body %v", body)
	}
	suite.mockTransaction.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateTransaction_UnknownAccount() {
	suite.mockTransaction.On("CreateTransaction", mock.Anything, mock.Anything, "user-1").
		Return(nil, apperrors.ErrAccountNotFound).Once()

	body := map[string]any{"accountID": "ghost", "transactionType": "expenseVoucher", "amount": "10"}
	w := suite.do(http.MethodPost, "/api/v1/transactions", domain.RoleAdmin, body)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListTransactions_PassesQuery() {
	suite.mockTransaction.On("ListTransactions", mock.Anything, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.AccountID == "p1" && p.StartDate == "2024-05-01" && p.Limit == 20
	})).Return(&dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?accountId=p1&startDate=2024-05-01", domain.RoleUser, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTransaction.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListTransactions_StoreUnavailable() {
	storeErr := apperrors.StoreFailure("list transactions", errors.New("dial tcp: refused"))
	suite.mockTransaction.On("ListTransactions", mock.Anything, mock.Anything).Return(nil, storeErr).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions", domain.RoleUser, nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.NotContains(w.Body.String(), "dial tcp")
}

// --- Roznamcha ---

func (suite *HandlerTestSuite) TestRoznamcha_CreateAndList() {
	suite.mockRoznamcha.On("CreateRoznamcha", mock.Anything, mock.MatchedBy(func(r dto.CreateRoznamchaRequest) bool {
		return r.Description == "Shop rent" && r.TransactionType == domain.ExpenseVoucher
	}), "user-1").Return(&domain.RoznamchaEntry{EntryID: "e1", Description: "Shop rent"}, nil).Once()
	suite.mockRoznamcha.On("ListRoznamcha", mock.Anything, mock.MatchedBy(func(p dto.ListRoznamchaParams) bool {
		return p.Date == "2024-05-09"
	})).Return(&dto.ListRoznamchaResponse{Entries: []dto.RoznamchaResponse{{EntryID: "e1"}}}, nil).Once()

	body := map[string]any{"description": "Shop rent", "transactionType": "expenseVoucher", "amount": 5000}
	w := suite.do(http.MethodPost, "/api/v1/roznamcha", domain.RoleAdmin, body)
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/roznamcha?date=2024-05-09", domain.RoleUser, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"entryID":"e1"`)
	suite.mockRoznamcha.AssertExpectations(suite.T())
}

// --- Ledger ---

func (suite *HandlerTestSuite) TestCashBook() {
	ledger := &domain.DayLedger{
		Date:            time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Order:           domain.OrderChronological,
		PreviousBalance: decimal.NewFromInt(100),
		GrandBalance:    decimal.NewFromInt(120),
	}
	suite.mockLedger.On("GetDayLedger", mock.Anything, dayEq(2024, 3, 2), domain.OrderChronological).Return(ledger, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/cashbook?date=2024-03-02&order=chronological", domain.RoleUser, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DayLedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("120", resp.GrandBalance.String())
	suite.Equal(domain.OrderChronological, resp.Order)
}

func (suite *HandlerTestSuite) TestCashBook_BadInput() {
	w := suite.do(http.MethodGet, "/api/v1/ledger/cashbook?date=02/03/2024", domain.RoleUser, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/ledger/cashbook?order=sideways", domain.RoleUser, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "GetDayLedger", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPartyDetail() {
	rows := []domain.PartyBalanceRow{{PartyID: "p1", Name: "Bilal", Balance: decimal.NewFromInt(-250), Status: domain.StatusReceivable}}
	summary := &domain.PartySummary{Receivable: rows, TotalReceivable: decimal.NewFromInt(-250)}
	suite.mockLedger.On("GetPartySummary", mock.Anything).Return(summary, rows, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/party-detail", domain.RoleUser, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PartyDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Parties, 1)
	suite.Equal("-250", resp.Summary.TotalReceivable.String())
}

func (suite *HandlerTestSuite) TestPartyLedger_Errors() {
	suite.mockLedger.On("GetAccountLedger", mock.Anything, "p1", dayEq(2024, 3, 5), dayEq(2024, 3, 1)).
		Return(nil, apperrors.ErrInvalidRange).Once()
	suite.mockLedger.On("GetAccountLedger", mock.Anything, "ghost", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrAccountNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/party-ledger?accountId=p1&startDate=2024-03-05&endDate=2024-03-01", domain.RoleUser, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/ledger/party-ledger?accountId=ghost&startDate=2024-03-01&endDate=2024-03-05", domain.RoleUser, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/ledger/party-ledger?startDate=2024-03-01&endDate=2024-03-05", domain.RoleUser, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) sampleAccountLedger() *domain.AccountLedger {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	txn := domain.Transaction{
		TransactionID:   "t1",
		AccountID:       "p1",
		TransactionType: domain.CashReceived,
		TransactionDate: start.Add(9 * time.Hour),
		Description:     "Cloth",
		Debit:           decimal.NewFromInt(20),
	}
	return &domain.AccountLedger{
		Party:           domain.Party{PartyID: "p1", Name: "Bilal"},
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, 1),
		PreviousBalance: decimal.NewFromInt(150),
		Transactions:    []domain.Transaction{txn},
		Rows:            []domain.RunningLedgerRow{{Transaction: txn, RunningBalance: decimal.NewFromInt(170)}},
		Totals:          domain.LedgerTotals{TotalDebit: decimal.NewFromInt(20), FinalBalance: decimal.NewFromInt(170)},
	}
}

func (suite *HandlerTestSuite) TestPartyLedgerExport() {
	suite.mockLedger.On("GetAccountLedger", mock.Anything, "p1", dayEq(2024, 3, 1), dayEq(2024, 3, 2)).
		Return(suite.sampleAccountLedger(), nil)
	base := "/api/v1/ledger/party-ledger/export?accountId=p1&startDate=2024-03-01&endDate=2024-03-02"

	w := suite.do(http.MethodGet, base, domain.RoleUser, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.True(strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	suite.Contains(w.Header().Get("Content-Disposition"), "ledger-Bilal-2024-03-01-2024-03-02.csv")
	suite.Contains(w.Body.String(), "Cloth")

	w = suite.do(http.MethodGet, base+"&format=html&lang=ur", domain.RoleUser, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.True(strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	suite.Contains(w.Body.String(), `dir="rtl"`)

	w = suite.do(http.MethodGet, base+"&format=pdf", domain.RoleUser, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPreviousBalance() {
	suite.mockLedger.On("ComputePreviousBalance", mock.Anything, (*string)(nil), dayEq(2024, 3, 2)).
		Return(decimal.NewFromInt(100), nil).Once()
	accountID := "p1"
	suite.mockLedger.On("ComputePreviousBalance", mock.Anything, &accountID, dayEq(2024, 3, 2)).
		Return(decimal.NewFromInt(-40), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/previous-balance?cutoff=2024-03-02", domain.RoleUser, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"previousBalance":"100"`)
	suite.NotContains(w.Body.String(), "accountID")

	w = suite.do(http.MethodGet, "/api/v1/ledger/previous-balance?cutoff=2024-03-02&accountId=p1", domain.RoleUser, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"previousBalance":"-40"`)

	w = suite.do(http.MethodGet, "/api/v1/ledger/previous-balance", domain.RoleUser, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPreviousBalance_UnknownAccount() {
	accountID := "ghost"
	suite.mockLedger.On("ComputePreviousBalance", mock.Anything, &accountID, dayEq(2024, 3, 2)).
		Return(decimal.Zero, fmt.Errorf("%w: ghost", apperrors.ErrAccountNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/previous-balance?cutoff=2024-03-02&accountId=ghost", domain.RoleUser, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.NotContains(w.Body.String(), "previousBalance")
}

// --- Backup ---

func (suite *HandlerTestSuite) TestDownloadBackup() {
	suite.mockBackup.On("WriteBackup", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		_, _ = io.WriteString(args.Get(1).(io.Writer), "SQLite format 3")
	}).Return("cashbook-backup-20240302-101500.db", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/backup/download", domain.RoleAdmin, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), `attachment; filename="cashbook-backup-20240302-101500.db"`)
	suite.Equal("SQLite format 3", w.Body.String())
	suite.mockBackup.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDownloadBackup_AdminOnly() {
	w := suite.do(http.MethodGet, "/api/v1/backup/download", domain.RoleUser, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockBackup.AssertNotCalled(suite.T(), "WriteBackup", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDownloadBackup_StoreUnavailable() {
	suite.mockBackup.On("WriteBackup", mock.Anything, mock.Anything).
		Return("", apperrors.StoreFailure("snapshot database", errors.New("disk I/O error"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/backup/download", domain.RoleAdmin, nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.NotContains(w.Body.String(), "disk I/O")
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
