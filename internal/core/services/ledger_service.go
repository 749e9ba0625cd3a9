package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
	"github.com/SscSPs/cash_book_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// LedgerTransactionStore is the subset of the transaction repository the ledger reads from.
type LedgerTransactionStore interface {
	portsrepo.BalanceAggregator
	FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// LedgerService implements the balance aggregator, party summarizer and ledger assemblers.
type LedgerService struct {
	BaseService
	partyRepo    portsrepo.PartyReader
	txnStore     LedgerTransactionStore
	loc          *time.Location
	excluded     []string
	defaultOrder domain.AccumulationOrder
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// LedgerServiceOption is a functional option for configuring the LedgerService
type LedgerServiceOption func(*LedgerService)

// WithLocation sets the timezone that defines calendar days.
func WithLocation(loc *time.Location) LedgerServiceOption {
	return func(s *LedgerService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithExcludedPartyNames replaces the party names left out of party summaries.
func WithExcludedPartyNames(names ...string) LedgerServiceOption {
	return func(s *LedgerService) {
		s.excluded = names
	}
}

// WithDefaultOrder sets the order used when GetDayLedger is called without one.
func WithDefaultOrder(order domain.AccumulationOrder) LedgerServiceOption {
	return func(s *LedgerService) {
		if order != "" {
			s.defaultOrder = order
		}
	}
}

// NewLedgerService creates a LedgerService. By default days are in time.Local, the
// party named "Account" is excluded from summaries and the cash book folds received rows first.
func NewLedgerService(partyRepo portsrepo.PartyReader, txnStore LedgerTransactionStore, options ...LedgerServiceOption) *LedgerService {
	s := &LedgerService{
		BaseService:  newBaseService(),
		partyRepo:    partyRepo,
		txnStore:     txnStore,
		loc:          time.Local,
		excluded:     []string{"Account"},
		defaultOrder: domain.OrderReceivedFirst,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *LedgerService) Location() *time.Location {
	return s.loc
}

func (s *LedgerService) DefaultOrder() domain.AccumulationOrder {
	return s.defaultOrder
}

// ComputePreviousBalance truncates cutoff to 00:00 of its day and sums everything before it.
// A non-nil accountID must name an existing party.
func (s *LedgerService) ComputePreviousBalance(ctx context.Context, accountID *string, cutoff time.Time) (decimal.Decimal, error) {
	if accountID != nil {
		if _, err := s.resolveParty(ctx, *accountID); err != nil {
			return decimal.Zero, err
		}
	}
	return s.previousBalance(ctx, accountID, cutoff)
}

func (s *LedgerService) previousBalance(ctx context.Context, accountID *string, cutoff time.Time) (decimal.Decimal, error) {
	day := accounting.StartOfDay(cutoff, s.loc)
	totals, err := s.txnStore.SumBefore(ctx, accountID, day)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate previous balance", slog.Time("cutoff", day))
		return decimal.Zero, fmt.Errorf("failed to compute previous balance: %w", err)
	}
	return totals.Balance(), nil
}

func (s *LedgerService) SummarizeAllParties(ctx context.Context) ([]domain.PartyBalanceRow, error) {
	parties, err := s.partyRepo.FindParties(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties for summary")
		return nil, fmt.Errorf("failed to summarize parties: %w", err)
	}
	totals, err := s.txnStore.SumByAccount(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate party totals")
		return nil, fmt.Errorf("failed to summarize parties: %w", err)
	}
	return accounting.SummarizeParties(parties, totals, s.excluded), nil
}

func (s *LedgerService) GetPartySummary(ctx context.Context) (*domain.PartySummary, []domain.PartyBalanceRow, error) {
	rows, err := s.SummarizeAllParties(ctx)
	if err != nil {
		return nil, nil, err
	}
	summary := accounting.PartitionPartyBalances(rows)
	return &summary, rows, nil
}

func (s *LedgerService) GetDayLedger(ctx context.Context, date time.Time, order domain.AccumulationOrder) (*domain.DayLedger, error) {
	if order == "" {
		order = s.defaultOrder
	}
	order, err := domain.ParseAccumulationOrder(string(order))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	start, end := accounting.DayRange(date, s.loc)
	previous, err := s.previousBalance(ctx, nil, start)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnStore.FindTransactions(ctx, domain.TransactionFilter{Start: &start, End: &end})
	if err != nil {
		s.LogError(ctx, err, "Failed to load day transactions", slog.Time("date", start))
		return nil, fmt.Errorf("failed to load day ledger: %w", err)
	}

	ledger := accounting.AssembleDayLedger(start, previous, accounting.SortChronologically(txns), order)
	s.LogDebug(ctx, "Day ledger assembled",
		slog.Time("date", start),
		slog.Int("received_rows", len(ledger.ReceivedRows)),
		slog.Int("paid_rows", len(ledger.PaidRows)))
	return &ledger, nil
}

// GetAccountLedger covers [start day, end day] inclusive: the query upper bound is the
// start of the day after end.
func (s *LedgerService) GetAccountLedger(ctx context.Context, accountID string, start, end time.Time) (*domain.AccountLedger, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, fmt.Errorf("%w: accountId is required", apperrors.ErrValidation)
	}
	if err := accounting.ValidateRange(start, end, s.loc); err != nil {
		return nil, err
	}

	party, err := s.resolveParty(ctx, accountID)
	if err != nil {
		return nil, err
	}

	from := accounting.StartOfDay(start, s.loc)
	lastDay, to := accounting.DayRange(end, s.loc)

	previous, err := s.previousBalance(ctx, &accountID, from)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnStore.FindTransactions(ctx, domain.TransactionFilter{
		AccountID: &accountID,
		Start:     &from,
		End:       &to,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load account transactions", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to load account ledger: %w", err)
	}

	sorted := accounting.SortChronologically(txns)
	running := accounting.ComputeRunningBalances(sorted, previous)

	return &domain.AccountLedger{
		Party:           *party,
		StartDate:       from,
		EndDate:         lastDay,
		PreviousBalance: previous,
		Transactions:    sorted,
		Rows:            running.Rows,
		Totals:          running.Totals,
	}, nil
}

// resolveParty maps a missing party to apperrors.ErrAccountNotFound.
func (s *LedgerService) resolveParty(ctx context.Context, accountID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountID)
		}
		s.LogError(ctx, err, "Failed to resolve party", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to resolve party: %w", err)
	}
	return party, nil
}
