package services

import (
	"context"
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceAggregatorSvc computes opening balances.
type BalanceAggregatorSvc interface {
	// ComputePreviousBalance returns sum(debit) - sum(credit) of transactions strictly
	// before the start of cutoff's day, optionally restricted to one account. A non-nil
	// accountID naming no party fails with apperrors.ErrAccountNotFound.
	ComputePreviousBalance(ctx context.Context, accountID *string, cutoff time.Time) (decimal.Decimal, error)
}

// PartySummarySvc derives payable/receivable status per party.
type PartySummarySvc interface {
	// SummarizeAllParties returns one row per non-excluded party.
	SummarizeAllParties(ctx context.Context) ([]domain.PartyBalanceRow, error)

	// GetPartySummary partitions SummarizeAllParties into payable, receivable and settled lists.
	GetPartySummary(ctx context.Context) (*domain.PartySummary, []domain.PartyBalanceRow, error)
}

// LedgerViewSvc assembles the cash book and party ledgers.
type LedgerViewSvc interface {
	// GetDayLedger builds the cash book for date's calendar day.
	GetDayLedger(ctx context.Context, date time.Time, order domain.AccumulationOrder) (*domain.DayLedger, error)

	// GetAccountLedger builds one party's ledger for [start day, end day] inclusive.
	GetAccountLedger(ctx context.Context, accountID string, start, end time.Time) (*domain.AccountLedger, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	BalanceAggregatorSvc
	PartySummarySvc
	LedgerViewSvc

	// Location is the timezone that defines calendar days.
	Location() *time.Location
	// DefaultOrder is the configured cash book accumulation order.
	DefaultOrder() domain.AccumulationOrder
}
