package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	"github.com/SscSPs/cash_book_app/internal/models"
	"github.com/SscSPs/cash_book_app/internal/utils/mapping"
	"github.com/SscSPs/cash_book_app/internal/utils/pagination"
)

type RoznamchaRepository struct {
	BaseRepository
}

var _ portsrepo.RoznamchaRepositoryFacade = (*RoznamchaRepository)(nil)

const roznamchaColumns = `entry_id, description, transaction_type, status, debit, credit, entry_date, reference_number,
	created_at, created_by, last_updated_at, last_updated_by`

func scanRoznamcha(row rowScanner) (models.RoznamchaEntry, error) {
	var m models.RoznamchaEntry
	var entryDate, createdAt, updatedAt int64
	err := row.Scan(&m.EntryID, &m.Description, &m.TransactionType, &m.Status, &m.Debit, &m.Credit,
		&entryDate, &m.ReferenceNumber, &createdAt, &m.CreatedBy, &updatedAt, &m.LastUpdatedBy)
	m.EntryDate = fromUnix(entryDate)
	m.CreatedAt = fromUnix(createdAt)
	m.LastUpdatedAt = fromUnix(updatedAt)
	return m, err
}

func (r *RoznamchaRepository) SaveRoznamcha(ctx context.Context, entry domain.RoznamchaEntry) error {
	m := mapping.ToModelRoznamcha(entry)
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO roznamcha (`+roznamchaColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.EntryID, m.Description, m.TransactionType, m.Status, m.Debit, m.Credit,
		toUnix(m.EntryDate), m.ReferenceNumber, toUnix(m.CreatedAt), m.CreatedBy, toUnix(m.LastUpdatedAt), m.LastUpdatedBy)
	if err != nil {
		return apperrors.StoreFailure("save roznamcha entry", err)
	}
	return nil
}

func (r *RoznamchaRepository) FindRoznamchaByID(ctx context.Context, entryID string) (*domain.RoznamchaEntry, error) {
	m, err := scanRoznamcha(r.DB.QueryRowContext(ctx, `SELECT `+roznamchaColumns+` FROM roznamcha WHERE entry_id = ?`, entryID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.StoreFailure("find roznamcha entry "+entryID, err)
	}
	entry := mapping.ToDomainRoznamcha(m)
	return &entry, nil
}

func (r *RoznamchaRepository) ListRoznamcha(ctx context.Context, filter domain.RoznamchaFilter, limit int, nextToken *string) ([]domain.RoznamchaEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	fetchLimit := limit + 1

	b := &queryBuilder{}
	if filter.Description != nil {
		// LIKE is case-insensitive for ASCII in SQLite.
		b.add("description LIKE '%' || ? || '%'", *filter.Description)
	}
	if filter.TransactionType != nil {
		b.add("transaction_type = ?", string(*filter.TransactionType))
	}
	if filter.Status != nil {
		b.add("status = ?", string(*filter.Status))
	}
	if filter.Start != nil {
		b.add("entry_date >= ?", toUnix(*filter.Start))
	}
	if filter.End != nil {
		b.add("entry_date < ?", toUnix(*filter.End))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		b.add("(entry_date, entry_id) < (?, ?)", toUnix(cursor.Date), cursor.ID)
	}
	args := append(b.args, fetchLimit)

	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+roznamchaColumns+` FROM roznamcha`+b.where()+` ORDER BY entry_date DESC, entry_id DESC LIMIT ?`, args...)
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

func (r *RoznamchaRepository) UpdateRoznamcha(ctx context.Context, entry domain.RoznamchaEntry) error {
	m := mapping.ToModelRoznamcha(entry)
	res, err := r.DB.ExecContext(ctx, `
		UPDATE roznamcha
		SET description = ?, transaction_type = ?, status = ?, debit = ?, credit = ?,
		    entry_date = ?, reference_number = ?, last_updated_at = ?, last_updated_by = ?
		WHERE entry_id = ?`,
		m.Description, m.TransactionType, m.Status, m.Debit, m.Credit,
		toUnix(m.EntryDate), m.ReferenceNumber, toUnix(m.LastUpdatedAt), m.LastUpdatedBy, m.EntryID)
	if err != nil {
		return apperrors.StoreFailure("update roznamcha entry", err)
	}
	return requireAffected(res)
}

func (r *RoznamchaRepository) DeleteRoznamcha(ctx context.Context, entryID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM roznamcha WHERE entry_id = ?`, entryID)
	if err != nil {
		return apperrors.StoreFailure("delete roznamcha entry", err)
	}
	return requireAffected(res)
}
