package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laundrify/backoffice/internal/entity"
)

const selectPrice = `SELECT
	id,
	user_id,
	service_type,
	price,
	duration,
	is_active,
	created_at,
	updated_at
FROM prices`

type PriceRepository struct {
	db *pgxpool.Pool
}

func NewPriceRepository(pool *pgxpool.Pool) *PriceRepository {
	return &PriceRepository{db: pool}
}

func (r *PriceRepository) CreatePrice(ctx context.Context, p entity.Price) error {
	const q = `
	INSERT INTO prices (id, user_id, service_type, price, duration, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q,
		p.ID,
		p.UserID,
		p.ServiceType,
		p.Price,
		p.Duration,
		p.IsActive,
		p.CreatedAt,
		p.UpdatedAt,
	)

	return err
}

// Price resolves a price regardless of owner. Admin surface only.
func (r *PriceRepository) Price(ctx context.Context, id uuid.UUID) (entity.Price, error) {
	q := selectPrice + " WHERE id = $1"

	p, err := scanPrice(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return entity.Price{}, err
	}

	return p, nil
}

// ActivePriceOfUser resolves a price within the owner's scope and only when it
// is still selectable for new orders.
func (r *PriceRepository) ActivePriceOfUser(ctx context.Context, userID, id uuid.UUID) (entity.Price, error) {
	q := selectPrice + " WHERE id = $1 AND user_id = $2 AND is_active"
	return scanPrice(r.db.QueryRow(ctx, q, id, userID))
}

func (r *PriceRepository) ActivePricesOfUser(ctx context.Context, userID uuid.UUID) ([]entity.Price, error) {
	q := selectPrice + " WHERE user_id = $1 AND is_active ORDER BY service_type ASC"

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []entity.Price

	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, err
		}

		prices = append(prices, p)
	}

	return prices, nil
}

func (r *PriceRepository) Prices(ctx context.Context, f entity.PriceFilter) ([]entity.Price, int, error) {
	stmt := sq.Select(
		"p.id",
		"p.user_id",
		"p.service_type",
		"p.price",
		"p.duration",
		"p.is_active",
		"p.created_at",
		"p.updated_at",
		"u.name",
		"u.email",
		"COUNT(*) OVER() AS total_count",
	).From("prices p").
		Join("users u ON u.id = p.user_id").
		PlaceholderFormat(sq.Dollar)

	if f.Search != "" {
		stmt = stmt.Where(sq.ILike{"p.service_type": "%" + f.Search + "%"})
	}

	if f.IsActive != nil {
		stmt = stmt.Where(sq.Eq{"p.is_active": *f.IsActive})
	}

	if f.UserID != nil {
		stmt = stmt.Where(sq.Eq{"p.user_id": *f.UserID})
	}

	stmt = stmt.
		OrderBy(fmt.Sprintf("p.%s %s", f.SortBy, f.SortDir)).
		Limit(f.PerPage).
		Offset(f.Page*f.PerPage - f.PerPage)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	prices := make([]entity.Price, 0, f.PerPage)

	var totalCount int

	for rows.Next() {
		var p entity.Price

		owner := entity.User{}

		var count int

		err = rows.Scan(
			&p.ID,
			&p.UserID,
			&p.ServiceType,
			&p.Price,
			&p.Duration,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
			&owner.Name,
			&owner.Email,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		owner.ID = p.UserID
		owner.Role = entity.RoleEmployee
		p.User = &owner
		totalCount = count

		prices = append(prices, p)
	}

	return prices, totalCount, nil
}

func (r *PriceRepository) UpdatePrice(ctx context.Context, p entity.Price) error {
	const q = `
	UPDATE prices
	SET user_id = $1, service_type = $2, price = $3, duration = $4, is_active = $5, updated_at = $6
	WHERE id = $7`

	result, err := r.db.Exec(ctx, q,
		p.UserID,
		p.ServiceType,
		p.Price,
		p.Duration,
		p.IsActive,
		p.UpdatedAt,
		p.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *PriceRepository) DeletePrice(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM prices WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanPrice(row pgx.Row) (p entity.Price, err error) {
	err = row.Scan(
		&p.ID,
		&p.UserID,
		&p.ServiceType,
		&p.Price,
		&p.Duration,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Price{}, entity.ErrNotFound
		}

		return entity.Price{}, err
	}

	return p, nil
}
