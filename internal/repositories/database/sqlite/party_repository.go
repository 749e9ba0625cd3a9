package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	"github.com/SscSPs/cash_book_app/internal/models"
	"github.com/SscSPs/cash_book_app/internal/utils/mapping"
)

type PartyRepository struct {
	BaseRepository
}

var _ portsrepo.PartyRepositoryFacade = (*PartyRepository)(nil)

const partyColumns = `party_id, name, phone, address, description, created_at, created_by, last_updated_at, last_updated_by`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParty(row rowScanner) (models.Party, error) {
	var m models.Party
	var createdAt, updatedAt int64
	err := row.Scan(&m.PartyID, &m.Name, &m.Phone, &m.Address, &m.Description,
		&createdAt, &m.CreatedBy, &updatedAt, &m.LastUpdatedBy)
	m.CreatedAt = fromUnix(createdAt)
	m.LastUpdatedAt = fromUnix(updatedAt)
	return m, err
}

func (r *PartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO parties (`+partyColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.PartyID, m.Name, m.Phone, m.Address, m.Description,
		toUnix(m.CreatedAt), m.CreatedBy, toUnix(m.LastUpdatedAt), m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: party %s", apperrors.ErrDuplicate, m.PartyID)
		}
		return apperrors.StoreFailure("save party", err)
	}
	return nil
}

func (r *PartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	m, err := scanParty(r.DB.QueryRowContext(ctx, `SELECT `+partyColumns+` FROM parties WHERE party_id = ?`, partyID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.StoreFailure("find party "+partyID, err)
	}
	party := mapping.ToDomainParty(m)
	return &party, nil
}

func (r *PartyRepository) FindParties(ctx context.Context) ([]domain.Party, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+partyColumns+` FROM parties ORDER BY name ASC, party_id ASC`)
	if err != nil {
		return nil, apperrors.StoreFailure("find parties", err)
	}
	defer rows.Close()

	ms := make([]models.Party, 0)
	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, apperrors.StoreFailure("scan party", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreFailure("iterate parties", err)
	}
	return mapping.ToDomainPartySlice(ms), nil
}

func (r *PartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	res, err := r.DB.ExecContext(ctx, `
		UPDATE parties
		SET name = ?, phone = ?, address = ?, description = ?, last_updated_at = ?, last_updated_by = ?
		WHERE party_id = ?`,
		m.Name, m.Phone, m.Address, m.Description, toUnix(m.LastUpdatedAt), m.LastUpdatedBy, m.PartyID)
	if err != nil {
		return apperrors.StoreFailure("update party", err)
	}
	return requireAffected(res)
}

// DeleteParty refuses to remove a party that still has transactions.
func (r *PartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(tx) }()

	var referenced bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM transactions WHERE account_id = ?)`, partyID).Scan(&referenced); err != nil {
		return apperrors.StoreFailure("check party references", err)
	}
	if referenced {
		return fmt.Errorf("%w: party %s still has transactions", apperrors.ErrValidation, partyID)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM parties WHERE party_id = ?`, partyID)
	if err != nil {
		return apperrors.StoreFailure("delete party", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}
	return r.Commit(tx)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.StoreFailure("rows affected", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
