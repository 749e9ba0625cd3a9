package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its ID, with AccountName populated.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactions returns every transaction matching filter in store order
	// (transaction date, then creation time).
	FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// ListTransactions returns one page of matching transactions, newest first.
	// It returns the transactions, a token for the next page (nil on the last page), and an error.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites the mutable fields of an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction permanently removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// BalanceAggregator pushes debit/credit summation down to the store.
type BalanceAggregator interface {
	// SumBefore totals debit and credit of transactions strictly before cutoff,
	// optionally restricted to one account.
	SumBefore(ctx context.Context, accountID *string, cutoff time.Time) (domain.BalanceTotals, error)

	// SumByAccount totals debit and credit per account over all transactions.
	SumByAccount(ctx context.Context) (map[string]domain.BalanceTotals, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	BalanceAggregator
}
