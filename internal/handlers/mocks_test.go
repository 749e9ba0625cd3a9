package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
	"github.com/SscSPs/cash_book_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock PartyService ---
type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockPartyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}
func (m *MockPartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockPartyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, requestingUserID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}
func (m *MockPartyService) DeleteParty(ctx context.Context, partyID string, requestingUserID string) error {
	return m.Called(ctx, partyID, requestingUserID).Error(0)
}

var _ portssvc.PartySvcFacade = (*MockPartyService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string, requestingUserID string) error {
	return m.Called(ctx, transactionID, requestingUserID).Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ComputePreviousBalance(ctx context.Context, accountID *string, cutoff time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, cutoff)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockLedgerService) SummarizeAllParties(ctx context.Context) ([]domain.PartyBalanceRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartyBalanceRow), args.Error(1)
}
func (m *MockLedgerService) GetPartySummary(ctx context.Context) (*domain.PartySummary, []domain.PartyBalanceRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.PartySummary), args.Get(1).([]domain.PartyBalanceRow), args.Error(2)
}
func (m *MockLedgerService) GetDayLedger(ctx context.Context, date time.Time, order domain.AccumulationOrder) (*domain.DayLedger, error) {
	args := m.Called(ctx, date, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayLedger), args.Error(1)
}
func (m *MockLedgerService) GetAccountLedger(ctx context.Context, accountID string, start, end time.Time) (*domain.AccountLedger, error) {
	args := m.Called(ctx, accountID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountLedger), args.Error(1)
}
func (m *MockLedgerService) Location() *time.Location { return time.UTC }
func (m *MockLedgerService) DefaultOrder() domain.AccumulationOrder {
	return domain.OrderReceivedFirst
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock RoznamchaService ---
type MockRoznamchaService struct {
	mock.Mock
}

func (m *MockRoznamchaService) CreateRoznamcha(ctx context.Context, req dto.CreateRoznamchaRequest, creatorUserID string) (*domain.RoznamchaEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoznamchaEntry), args.Error(1)
}
func (m *MockRoznamchaService) GetRoznamchaByID(ctx context.Context, entryID string) (*domain.RoznamchaEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoznamchaEntry), args.Error(1)
}
func (m *MockRoznamchaService) ListRoznamcha(ctx context.Context, params dto.ListRoznamchaParams) (*dto.ListRoznamchaResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListRoznamchaResponse), args.Error(1)
}
func (m *MockRoznamchaService) UpdateRoznamcha(ctx context.Context, entryID string, req dto.UpdateRoznamchaRequest, requestingUserID string) (*domain.RoznamchaEntry, error) {
	args := m.Called(ctx, entryID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoznamchaEntry), args.Error(1)
}
func (m *MockRoznamchaService) DeleteRoznamcha(ctx context.Context, entryID string, requestingUserID string) error {
	return m.Called(ctx, entryID, requestingUserID).Error(0)
}

var _ portssvc.RoznamchaSvcFacade = (*MockRoznamchaService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) EnsureAdminUser(ctx context.Context, username, password string) (*domain.User, bool, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Bool(1), args.Error(2)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock BackupService ---
type MockBackupService struct {
	mock.Mock
}

var _ portssvc.BackupSvcFacade = (*MockBackupService)(nil)

func (m *MockBackupService) WriteBackup(ctx context.Context, w io.Writer) (string, error) {
	args := m.Called(ctx, w)
	return args.String(0), args.Error(1)
}
