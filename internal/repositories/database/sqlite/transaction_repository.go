package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	"github.com/SscSPs/cash_book_app/internal/models"
	"github.com/SscSPs/cash_book_app/internal/utils/accounting"
	"github.com/SscSPs/cash_book_app/internal/utils/mapping"
	"github.com/SscSPs/cash_book_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// TransactionRepository stores amounts as decimal text, so sums are computed
// in Go rather than with SQL SUM over floating point.
type TransactionRepository struct {
	BaseRepository
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

const txnSelect = `
	SELECT t.transaction_id, t.account_id, p.name, t.transaction_type, t.amount, t.debit, t.credit,
	       t.transaction_date, t.description, t.status, t.external_transaction_id, t.qty, t.price,
	       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
	FROM transactions t
	JOIN parties p ON p.party_id = t.account_id`

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var m models.Transaction
	var txnDate, createdAt, updatedAt int64
	err := row.Scan(
		&m.TransactionID, &m.AccountID, &m.AccountName, &m.TransactionType, &m.Amount, &m.Debit, &m.Credit,
		&txnDate, &m.Description, &m.Status, &m.ExternalTransactionID, &m.Qty, &m.Price,
		&createdAt, &m.CreatedBy, &updatedAt, &m.LastUpdatedBy,
	)
	m.TransactionDate = fromUnix(txnDate)
	m.CreatedAt = fromUnix(createdAt)
	m.LastUpdatedAt = fromUnix(updatedAt)
	return m, err
}

func transactionFilter(filter domain.TransactionFilter) *queryBuilder {
	b := &queryBuilder{}
	if filter.AccountID != nil {
		b.add("t.account_id = ?", *filter.AccountID)
	}
	if filter.TransactionType != nil {
		b.add("t.transaction_type = ?", string(*filter.TransactionType))
	}
	if filter.Status != nil {
		b.add("t.status = ?", string(*filter.Status))
	}
	if filter.ExternalTransactionID != nil {
		b.add("t.external_transaction_id = ?", *filter.ExternalTransactionID)
	}
	if filter.Start != nil {
		b.add("t.transaction_date >= ?", toUnix(*filter.Start))
	}
	if filter.End != nil {
		b.add("t.transaction_date < ?", toUnix(*filter.End))
	}
	return b
}

func (r *TransactionRepository) collect(ctx context.Context, query string, args []any) ([]models.Transaction, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.StoreFailure("query transactions", err)
	}
	defer rows.Close()

	ms := make([]models.Transaction, 0)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.StoreFailure("scan transaction", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreFailure("iterate transactions", err)
	}
	return ms, nil
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO transactions (
			transaction_id, account_id, transaction_type, amount, debit, credit, transaction_date,
			description, status, external_transaction_id, qty, price,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.TransactionID, m.AccountID, m.TransactionType, m.Amount, m.Debit, m.Credit, toUnix(m.TransactionDate),
		m.Description, m.Status, m.ExternalTransactionID, m.Qty, m.Price,
		toUnix(m.CreatedAt), m.CreatedBy, toUnix(m.LastUpdatedAt), m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.StoreFailure("save transaction", err)
	}
	return nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	m, err := scanTransaction(r.DB.QueryRowContext(ctx, txnSelect+` WHERE t.transaction_id = ?`, transactionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.StoreFailure("find transaction "+transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *TransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	b := transactionFilter(filter)
	ms, err := r.collect(ctx, txnSelect+b.where()+` ORDER BY t.transaction_date ASC, t.created_at ASC, t.transaction_id ASC`, b.args)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *TransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	b := transactionFilter(filter)
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		b.add("(t.transaction_date, t.transaction_id) < (?, ?)", toUnix(cursor.Date), cursor.ID)
	}
	args := append(b.args, fetchLimit)
	ms, err := r.collect(ctx, txnSelect+b.where()+` ORDER BY t.transaction_date DESC, t.transaction_id DESC LIMIT ?`, args)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.TransactionID)
		next = &token
		ms = ms[:limit]
	}
	return mapping.ToDomainTransactionSlice(ms), next, nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	res, err := r.DB.ExecContext(ctx, `
		UPDATE transactions
		SET account_id = ?, transaction_type = ?, amount = ?, debit = ?, credit = ?,
		    transaction_date = ?, description = ?, status = ?, external_transaction_id = ?,
		    qty = ?, price = ?, last_updated_at = ?, last_updated_by = ?
		WHERE transaction_id = ?`,
		m.AccountID, m.TransactionType, m.Amount, m.Debit, m.Credit,
		toUnix(m.TransactionDate), m.Description, m.Status, m.ExternalTransactionID,
		m.Qty, m.Price, toUnix(m.LastUpdatedAt), m.LastUpdatedBy, m.TransactionID,
	)
	if err != nil {
		return apperrors.StoreFailure("update transaction", err)
	}
	return requireAffected(res)
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM transactions WHERE transaction_id = ?`, transactionID)
	if err != nil {
		return apperrors.StoreFailure("delete transaction", err)
	}
	return requireAffected(res)
}

func (r *TransactionRepository) SumBefore(ctx context.Context, accountID *string, cutoff time.Time) (domain.BalanceTotals, error) {
	b := &queryBuilder{}
	b.add("transaction_date < ?", toUnix(cutoff))
	if accountID != nil {
		b.add("account_id = ?", *accountID)
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT debit, credit FROM transactions`+b.where(), b.args...)
	if err != nil {
		return domain.BalanceTotals{}, apperrors.StoreFailure("sum transactions before cutoff", err)
	}
	defer rows.Close()

	var amounts []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.Debit, &t.Credit); err != nil {
			return domain.BalanceTotals{}, apperrors.StoreFailure("scan totals", err)
		}
		amounts = append(amounts, t)
	}
	if err := rows.Err(); err != nil {
		return domain.BalanceTotals{}, apperrors.StoreFailure("iterate totals", err)
	}
	return accounting.SumTotals(amounts), nil
}

func (r *TransactionRepository) SumByAccount(ctx context.Context) (map[string]domain.BalanceTotals, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT account_id, debit, credit FROM transactions`)
	if err != nil {
		return nil, apperrors.StoreFailure("sum transactions by account", err)
	}
	defer rows.Close()

	totals := make(map[string]domain.BalanceTotals)
	for rows.Next() {
		var accountID string
		var debit, credit decimal.Decimal
		if err := rows.Scan(&accountID, &debit, &credit); err != nil {
			return nil, apperrors.StoreFailure("scan account totals", err)
		}
		t, ok := totals[accountID]
		if !ok {
			t = domain.BalanceTotals{TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
		}
		t.TotalDebit = t.TotalDebit.Add(debit)
		t.TotalCredit = t.TotalCredit.Add(credit)
		totals[accountID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreFailure("iterate account totals", err)
	}
	return totals, nil
}
