package pgsql

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	"github.com/SscSPs/cash_book_app/internal/models"
	"github.com/SscSPs/cash_book_app/internal/utils/mapping"
	"github.com/SscSPs/cash_book_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const txnSelect = `
	SELECT t.transaction_id, t.account_id, p.name, t.transaction_type, t.amount, t.debit, t.credit,
	       t.transaction_date, t.description, t.status, t.external_transaction_id, t.qty, t.price,
	       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
	FROM transactions t
	JOIN parties p ON p.party_id = t.account_id
`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID, &m.AccountID, &m.AccountName, &m.TransactionType, &m.Amount, &m.Debit, &m.Credit,
		&m.TransactionDate, &m.Description, &m.Status, &m.ExternalTransactionID, &m.Qty, &m.Price,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// queryBuilder collects WHERE clauses with numbered placeholders.
type queryBuilder struct {
	clauses []string
	args    []any
}

func (b *queryBuilder) add(clause string, values ...any) {
	for _, v := range values {
		b.args = append(b.args, v)
		clause = strings.Replace(clause, "?", "$"+strconv.Itoa(len(b.args)), 1)
	}
	b.clauses = append(b.clauses, clause)
}

func (b *queryBuilder) where() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

func (b *queryBuilder) placeholder(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
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
		b.add("t.transaction_date >= ?", *filter.Start)
	}
	if filter.End != nil {
		b.add("t.transaction_date < ?", *filter.End)
	}
	return b
}

func (r *PgxTransactionRepository) collect(ctx context.Context, query string, args []any) ([]models.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
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

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (
			transaction_id, account_id, transaction_type, amount, debit, credit, transaction_date,
			description, status, external_transaction_id, qty, price,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.AccountID, m.TransactionType, m.Amount, m.Debit, m.Credit, m.TransactionDate,
		m.Description, m.Status, m.ExternalTransactionID, m.Qty, m.Price,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.StoreFailure("save transaction", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	m, err := scanTransaction(r.Pool.QueryRow(ctx, txnSelect+` WHERE t.transaction_id = $1;`, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.StoreFailure("find transaction "+transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	b := transactionFilter(filter)
	query := txnSelect + b.where() + ` ORDER BY t.transaction_date ASC, t.created_at ASC, t.transaction_id ASC;`
	ms, err := r.collect(ctx, query, b.args)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	b := transactionFilter(filter)
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		b.add("(t.transaction_date, t.transaction_id) < (?, ?)", cursor.Date, cursor.ID)
	}
	query := txnSelect + b.where() +
		` ORDER BY t.transaction_date DESC, t.transaction_id DESC LIMIT ` + b.placeholder(fetchLimit) + `;`

	ms, err := r.collect(ctx, query, b.args)
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

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET account_id = $2, transaction_type = $3, amount = $4, debit = $5, credit = $6,
		    transaction_date = $7, description = $8, status = $9, external_transaction_id = $10,
		    qty = $11, price = $12, last_updated_at = $13, last_updated_by = $14
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.AccountID, m.TransactionType, m.Amount, m.Debit, m.Credit,
		m.TransactionDate, m.Description, m.Status, m.ExternalTransactionID,
		m.Qty, m.Price, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.StoreFailure("update transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return apperrors.StoreFailure("delete transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) SumBefore(ctx context.Context, accountID *string, cutoff time.Time) (domain.BalanceTotals, error) {
	query := `SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0) FROM transactions WHERE transaction_date < $1`
	args := []any{cutoff}
	if accountID != nil {
		query += ` AND account_id = $2`
		args = append(args, *accountID)
	}

	var totals domain.BalanceTotals
	if err := r.Pool.QueryRow(ctx, query+";", args...).Scan(&totals.TotalDebit, &totals.TotalCredit); err != nil {
		return domain.BalanceTotals{}, apperrors.StoreFailure("sum transactions before cutoff", err)
	}
	return totals, nil
}

func (r *PgxTransactionRepository) SumByAccount(ctx context.Context) (map[string]domain.BalanceTotals, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT account_id, COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
		FROM transactions
		GROUP BY account_id;
	`)
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
		totals[accountID] = domain.BalanceTotals{TotalDebit: debit, TotalCredit: credit}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreFailure("iterate account totals", err)
	}
	return totals, nil
}
