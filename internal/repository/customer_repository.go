package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laundrify/backoffice/internal/entity"
)

const selectCustomer = `SELECT
	id,
	user_id,
	name,
	email,
	phone,
	address,
	created_at,
	updated_at
FROM customers`

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: pool}
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, c entity.Customer) error {
	const q = `
	INSERT INTO customers (id, user_id, name, email, phone, address, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q,
		c.ID,
		c.UserID,
		c.Name,
		zeronull.Text(c.Email),
		zeronull.Text(c.Phone),
		zeronull.Text(c.Address),
		c.CreatedAt,
		c.UpdatedAt,
	)

	return err
}

// CustomerOfUser resolves a customer only within the owner's scope. A customer
// belonging to someone else is indistinguishable from a missing one.
func (r *CustomerRepository) CustomerOfUser(ctx context.Context, userID, id uuid.UUID) (entity.Customer, error) {
	q := selectCustomer + " WHERE id = $1 AND user_id = $2"
	return scanCustomer(r.db.QueryRow(ctx, q, id, userID))
}

func (r *CustomerRepository) Customers(
	ctx context.Context,
	userID uuid.UUID,
	f entity.CustomerFilter,
) ([]entity.Customer, int, error) {
	stmt := sq.Select(
		"id",
		"user_id",
		"name",
		"email",
		"phone",
		"address",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("customers").Where(sq.Eq{"user_id": userID}).PlaceholderFormat(sq.Dollar)

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		stmt = stmt.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"phone": pattern},
		})
	}

	stmt = stmt.
		OrderBy("created_at DESC").
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

	customers := make([]entity.Customer, 0, f.PerPage)

	var totalCount int

	for rows.Next() {
		var c entity.Customer

		var count int

		err = rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Name,
			(*zeronull.Text)(&c.Email),
			(*zeronull.Text)(&c.Phone),
			(*zeronull.Text)(&c.Address),
			&c.CreatedAt,
			&c.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		customers = append(customers, c)
	}

	return customers, totalCount, nil
}

// QuickSearch returns a shortened customer shape for order-form selection.
func (r *CustomerRepository) QuickSearch(
	ctx context.Context,
	userID uuid.UUID,
	search string,
	limit uint64,
) ([]entity.CustomerRef, error) {
	stmt := sq.Select("id", "name", "email", "phone").
		From("customers").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if search != "" {
		pattern := "%" + search + "%"
		stmt = stmt.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"phone": pattern},
		})
	}

	sqlQuery, args, err := stmt.OrderBy("name ASC").Limit(limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := make([]entity.CustomerRef, 0, limit)

	for rows.Next() {
		var ref entity.CustomerRef

		err = rows.Scan(
			&ref.ID,
			&ref.Name,
			(*zeronull.Text)(&ref.Email),
			(*zeronull.Text)(&ref.Phone),
		)
		if err != nil {
			return nil, err
		}

		refs = append(refs, ref)
	}

	return refs, nil
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, c entity.Customer) error {
	const q = `
	UPDATE customers
	SET name = $1, email = $2, phone = $3, address = $4, updated_at = $5
	WHERE id = $6 AND user_id = $7`

	result, err := r.db.Exec(ctx, q,
		c.Name,
		zeronull.Text(c.Email),
		zeronull.Text(c.Phone),
		zeronull.Text(c.Address),
		c.UpdatedAt,
		c.ID,
		c.UserID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *CustomerRepository) DeleteCustomer(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM customers WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanCustomer(row pgx.Row) (c entity.Customer, err error) {
	err = row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		(*zeronull.Text)(&c.Email),
		(*zeronull.Text)(&c.Phone),
		(*zeronull.Text)(&c.Address),
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Customer{}, entity.ErrNotFound
		}

		return entity.Customer{}, err
	}

	return c, nil
}
