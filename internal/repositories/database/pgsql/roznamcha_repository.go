package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	"github.com/SscSPs/cash_book_app/internal/models"
	"github.com/SscSPs/cash_book_app/internal/utils/mapping"
	"github.com/SscSPs/cash_book_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRoznamchaRepository struct {
	BaseRepository
}

func newPgxRoznamchaRepository(pool *pgxpool.Pool) *PgxRoznamchaRepository {
	return &PgxRoznamchaRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RoznamchaRepositoryFacade = (*PgxRoznamchaRepository)(nil)

const roznamchaColumns = `entry_id, description, transaction_type, status, debit, credit, entry_date, reference_number,
	created_at, created_by, last_updated_at, last_updated_by`

func scanRoznamcha(row pgx.Row) (models.RoznamchaEntry, error) {
	var m models.RoznamchaEntry
	err := row.Scan(&m.EntryID, &m.Description, &m.TransactionType, &m.Status, &m.Debit, &m.Credit,
		&m.EntryDate, &m.ReferenceNumber, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxRoznamchaRepository) SaveRoznamcha(ctx context.Context, entry domain.RoznamchaEntry) error {
	m := mapping.ToModelRoznamcha(entry)
	query := `INSERT INTO roznamcha (` + roznamchaColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	_, err := r.Pool.Exec(ctx, query, m.EntryID, m.Description, m.TransactionType, m.Status, m.Debit, m.Credit,
		m.EntryDate, m.ReferenceNumber, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.StoreFailure("save roznamcha entry", err)
	}
	return nil
}

func (r *PgxRoznamchaRepository) FindRoznamchaByID(ctx context.Context, entryID string) (*domain.RoznamchaEntry, error) {
	m, err := scanRoznamcha(r.Pool.QueryRow(ctx, `SELECT `+roznamchaColumns+` FROM roznamcha WHERE entry_id = $1;`, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.StoreFailure("find roznamcha entry "+entryID, err)
	}
	entry := mapping.ToDomainRoznamcha(m)
	return &entry, nil
}

func (r *PgxRoznamchaRepository) ListRoznamcha(ctx context.Context, filter domain.RoznamchaFilter, limit int, nextToken *string) ([]domain.RoznamchaEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	fetchLimit := limit + 1

	b := &queryBuilder{}
	if filter.Description != nil {
		b.add("description ILIKE '%' || ? || '%'", *filter.Description)
	}
	if filter.TransactionType != nil {
		b.add("transaction_type = ?", string(*filter.TransactionType))
	}
	if filter.Status != nil {
		b.add("status = ?", string(*filter.Status))
	}
	if filter.Start != nil {
		b.add("entry_date >= ?", *filter.Start)
	}
	if filter.End != nil {
		b.add("entry_date < ?", *filter.End)
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		b.add("(entry_date, entry_id) < (?, ?)", cursor.Date, cursor.ID)
	}
	query := `SELECT ` + roznamchaColumns + ` FROM roznamcha` + b.where() +
		` ORDER BY entry_date DESC, entry_id DESC LIMIT ` + b.placeholder(fetchLimit) + `;`

	rows, err := r.Pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, nil, apperrors.StoreFailure("list roznamcha entries", err)
	}
	defer rows.Close()

	ms := make([]models.RoznamchaEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanRoznamcha(rows)
		if err != nil {
			return nil, nil, apperrors.StoreFailure("scan roznamcha entry", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.StoreFailure("iterate roznamcha entries", err)
	}

	var next *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.EntryID)
		next = &token
		ms = ms[:limit]
	}
	return mapping.ToDomainRoznamchaSlice(ms), next, nil
}

func (r *PgxRoznamchaRepository) UpdateRoznamcha(ctx context.Context, entry domain.RoznamchaEntry) error {
	m := mapping.ToModelRoznamcha(entry)
	query := `
		UPDATE roznamcha
		SET description = $2, transaction_type = $3, status = $4, debit = $5, credit = $6,
		    entry_date = $7, reference_number = $8, last_updated_at = $9, last_updated_by = $10
		WHERE entry_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.EntryID, m.Description, m.TransactionType, m.Status, m.Debit, m.Credit,
		m.EntryDate, m.ReferenceNumber, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.StoreFailure("update roznamcha entry", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRoznamchaRepository) DeleteRoznamcha(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM roznamcha WHERE entry_id = $1;`, entryID)
	if err != nil {
		return apperrors.StoreFailure("delete roznamcha entry", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
