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

type UserRepository struct {
	BaseRepository
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

const userColumns = `user_id, username, name, role, password_hash, created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row rowScanner) (models.User, error) {
	var m models.User
	var createdAt, updatedAt int64
	err := row.Scan(&m.UserID, &m.Username, &m.Name, &m.Role, &m.PasswordHash,
		&createdAt, &m.CreatedBy, &updatedAt, &m.LastUpdatedBy)
	m.CreatedAt = fromUnix(createdAt)
	m.LastUpdatedAt = fromUnix(updatedAt)
	return m, err
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.UserID, m.Username, m.Name, m.Role, m.PasswordHash,
		toUnix(m.CreatedAt), m.CreatedBy, toUnix(m.LastUpdatedAt), m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %s", apperrors.ErrDuplicate, m.Username)
		}
		return apperrors.StoreFailure("save user", err)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, column string, arg string) (*domain.User, error) {
	m, err := scanUser(r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+column+` = ?`, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.StoreFailure("find user", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id", userID)
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username", username)
}

func (r *UserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY username ASC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, apperrors.StoreFailure("find users", err)
	}
	defer rows.Close()

	ms := make([]models.User, 0)
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.StoreFailure("scan user", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreFailure("iterate users", err)
	}
	return mapping.ToDomainUserSlice(ms), nil
}
