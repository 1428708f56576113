package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laundrify/backoffice/internal/entity"
)

type TokenRepository struct {
	db *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{db: pool}
}

func (r *TokenRepository) SaveToken(ctx context.Context, t entity.Token) error {
	const q = `INSERT INTO tokens (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, q, t.ID, t.UserID, t.ExpiresAt, t.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

// FindToken reports whether the token row is still live. Expired rows count as absent.
func (r *TokenRepository) FindToken(ctx context.Context, id uuid.UUID) error {
	const q = `SELECT id FROM tokens WHERE id = $1 AND expires_at > NOW()`

	var found uuid.UUID

	err := r.db.QueryRow(ctx, q, id).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ErrNotFound
		}

		return err
	}

	return nil
}

func (r *TokenRepository) DeleteToken(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM tokens WHERE id = $1`

	_, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *TokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	const q = `DELETE FROM tokens WHERE user_id = $1`

	_, err := r.db.Exec(ctx, q, userID)
	if err != nil {
		return err
	}

	return nil
}

func (r *TokenRepository) DeleteExpired(ctx context.Context) error {
	const q = `DELETE FROM tokens WHERE expires_at < NOW()`

	_, err := r.db.Exec(ctx, q)
	if err != nil {
		return err
	}

	return nil
}
