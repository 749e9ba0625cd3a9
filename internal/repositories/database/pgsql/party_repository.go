package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_book_app/internal/core/ports/repositories"
	"github.com/SscSPs/cash_book_app/internal/models"
	"github.com/SscSPs/cash_book_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(pool *pgxpool.Pool) *PgxPartyRepository {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

const partyColumns = `party_id, name, phone, address, description, created_at, created_by, last_updated_at, last_updated_by`

func scanParty(row pgx.Row) (models.Party, error) {
	var m models.Party
	err := row.Scan(&m.PartyID, &m.Name, &m.Phone, &m.Address, &m.Description,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `INSERT INTO parties (` + partyColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.Pool.Exec(ctx, query, m.PartyID, m.Name, m.Phone, m.Address, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: party %s", apperrors.ErrDuplicate, m.PartyID)
		}
		return apperrors.StoreFailure("save party", err)
	}
	return nil
}

func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = $1;`
	m, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.StoreFailure("find party "+partyID, err)
	}
	party := mapping.ToDomainParty(m)
	return &party, nil
}

func (r *PgxPartyRepository) FindParties(ctx context.Context) ([]domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties ORDER BY name ASC, party_id ASC;`
	rows, err := r.Pool.Query(ctx, query)
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

func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		UPDATE parties
		SET name = $2, phone = $3, address = $4, description = $5, last_updated_at = $6, last_updated_by = $7
		WHERE party_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.PartyID, m.Name, m.Phone, m.Address, m.Description, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.StoreFailure("update party", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteParty refuses to remove a party that still has transactions.
func (r *PgxPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var referenced bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM transactions WHERE account_id = $1);`, partyID).Scan(&referenced)
	if err != nil {
		return apperrors.StoreFailure("check party references", err)
	}
	if referenced {
		return fmt.Errorf("%w: party %s still has transactions", apperrors.ErrValidation, partyID)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM parties WHERE party_id = $1;`, partyID)
	if err != nil {
		return apperrors.StoreFailure("delete party", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}
