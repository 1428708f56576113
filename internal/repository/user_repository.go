package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laundrify/backoffice/internal/entity"
)

const uniqueViolationCode = "23505"

const selectUser = `SELECT
	id,
	name,
	email,
	password_hash,
	role,
	is_active,
	branch_name,
	branch_address,
	address,
	phone,
	created_at,
	updated_at
FROM users`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: pool}
}

func (r *UserRepository) CreateUser(ctx context.Context, u entity.User) error {
	const q = `
	INSERT INTO users (
		id,
		name,
		email,
		password_hash,
		role,
		is_active,
		branch_name,
		branch_address,
		address,
		phone,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, q,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.IsActive,
		zeronull.Text(u.BranchName),
		zeronull.Text(u.BranchAddress),
		zeronull.Text(u.Address),
		zeronull.Text(u.Phone),
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailTaken
		}

		return err
	}

	return nil
}

func (r *UserRepository) User(ctx context.Context, id uuid.UUID) (entity.User, error) {
	q := selectUser + " WHERE id = $1"
	return scanUser(r.db.QueryRow(ctx, q, id))
}

func (r *UserRepository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	q := selectUser + " WHERE email = $1"
	return scanUser(r.db.QueryRow(ctx, q, email))
}

func (r *UserRepository) Employees(ctx context.Context, f entity.EmployeeFilter) ([]entity.User, int, error) {
	stmt := sq.Select(
		"id",
		"name",
		"email",
		"password_hash",
		"role",
		"is_active",
		"branch_name",
		"branch_address",
		"address",
		"phone",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("users").Where(sq.Eq{"role": entity.RoleEmployee}).PlaceholderFormat(sq.Dollar)

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		stmt = stmt.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"branch_name": pattern},
		})
	}

	if f.IsActive != nil {
		stmt = stmt.Where(sq.Eq{"is_active": *f.IsActive})
	}

	stmt = stmt.
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.SortDir)).
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

	employees := make([]entity.User, 0, f.PerPage)

	var totalCount int

	for rows.Next() {
		var u entity.User

		var count int

		err = rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.PasswordHash,
			&u.Role,
			&u.IsActive,
			(*zeronull.Text)(&u.BranchName),
			(*zeronull.Text)(&u.BranchAddress),
			(*zeronull.Text)(&u.Address),
			(*zeronull.Text)(&u.Phone),
			&u.CreatedAt,
			&u.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		employees = append(employees, u)
	}

	return employees, totalCount, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, u entity.User) error {
	const q = `
	UPDATE users
	SET name = $1,
		email = $2,
		password_hash = $3,
		is_active = $4,
		branch_name = $5,
		branch_address = $6,
		address = $7,
		phone = $8,
		updated_at = $9
	WHERE id = $10`

	result, err := r.db.Exec(ctx, q,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.IsActive,
		zeronull.Text(u.BranchName),
		zeronull.Text(u.BranchAddress),
		zeronull.Text(u.Address),
		zeronull.Text(u.Phone),
		u.UpdatedAt,
		u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailTaken
		}

		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanUser(row pgx.Row) (u entity.User, err error) {
	err = row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		(*zeronull.Text)(&u.BranchName),
		(*zeronull.Text)(&u.BranchAddress),
		(*zeronull.Text)(&u.Address),
		(*zeronull.Text)(&u.Phone),
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
