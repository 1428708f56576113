package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laundrify/backoffice/internal/entity"
)

// Joined order row: order, its customer and its price in one round-trip.
const selectOrderJoined = `SELECT
	o.id,
	o.invoice,
	o.user_id,
	o.customer_id,
	o.price_id,
	o.customer_name,
	o.customer_email,
	o.order_date,
	o.status,
	o.payment_status,
	o.weight,
	o.discount,
	o.total_amount,
	o.payment_method,
	o.pickup_date,
	o.created_at,
	o.updated_at,
	c.name,
	c.email,
	c.phone,
	c.address,
	p.service_type,
	p.price,
	p.duration,
	p.is_active
FROM orders o
JOIN customers c ON c.id = o.customer_id
JOIN prices p ON p.id = o.price_id`

type OrderRepository struct {
	db *pgxpool.Pool
}

// invoiceDay pins the timestamp's local calendar day as a timezone-free
// date value.
func invoiceDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: pool}
}

// CreateOrder persists the order and mints its invoice number in one
// transaction. The per-day counter row is bumped with ON CONFLICT, so two
// concurrent creations on the same day cannot observe the same sequence value.
func (r *OrderRepository) CreateOrder(ctx context.Context, o entity.Order) (entity.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	defer func() { _ = tx.Rollback(ctx) }()

	const counterQ = `
	INSERT INTO invoice_counters (day, counter)
	VALUES ($1, 1)
	ON CONFLICT (day) DO UPDATE SET counter = invoice_counters.counter + 1
	RETURNING counter`

	// The counter row and the invoice text must agree on the calendar day,
	// so both derive from the same date value instead of letting the server
	// cast the timestamp in its own timezone.
	day := invoiceDay(o.CreatedAt)

	var seq int64

	err = tx.QueryRow(ctx, counterQ, day).Scan(&seq)
	if err != nil {
		return entity.Order{}, err
	}

	o.Invoice = entity.FormatInvoice(day, seq)

	const insertQ = `
	INSERT INTO orders (
		id,
		invoice,
		user_id,
		customer_id,
		price_id,
		customer_name,
		customer_email,
		order_date,
		status,
		payment_status,
		weight,
		discount,
		total_amount,
		payment_method,
		pickup_date,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err = tx.Exec(ctx, insertQ,
		o.ID,
		o.Invoice,
		o.UserID,
		o.CustomerID,
		o.PriceID,
		o.CustomerName,
		zeronull.Text(o.CustomerEmail),
		o.OrderDate,
		o.Status,
		o.PaymentStatus,
		o.Weight,
		o.Discount,
		o.TotalAmount,
		o.PaymentMethod,
		o.PickupDate,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err != nil {
		return entity.Order{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	return o, nil
}

// OrderOfUser resolves an order only within the owner's scope, with customer
// and price attached.
func (r *OrderRepository) OrderOfUser(ctx context.Context, userID, id uuid.UUID) (entity.Order, error) {
	q := selectOrderJoined + " WHERE o.id = $1 AND o.user_id = $2"
	return scanOrderJoined(r.db.QueryRow(ctx, q, id, userID))
}

func (r *OrderRepository) Orders(
	ctx context.Context,
	userID uuid.UUID,
	f entity.OrderFilter,
) ([]entity.Order, int, error) {
	stmt := sq.Select(
		"o.id",
		"o.invoice",
		"o.user_id",
		"o.customer_id",
		"o.price_id",
		"o.customer_name",
		"o.customer_email",
		"o.order_date",
		"o.status",
		"o.payment_status",
		"o.weight",
		"o.discount",
		"o.total_amount",
		"o.payment_method",
		"o.pickup_date",
		"o.created_at",
		"o.updated_at",
		"c.name",
		"c.email",
		"c.phone",
		"c.address",
		"p.service_type",
		"p.price",
		"p.duration",
		"p.is_active",
		"COUNT(*) OVER() AS total_count",
	).From("orders o").
		Join("customers c ON c.id = o.customer_id").
		Join("prices p ON p.id = o.price_id").
		Where(sq.Eq{"o.user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"o.status": *f.Status})
	}

	if f.PaymentStatus != nil {
		stmt = stmt.Where(sq.Eq{"o.payment_status": *f.PaymentStatus})
	}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		stmt = stmt.Where(sq.Or{
			sq.ILike{"o.invoice": pattern},
			sq.ILike{"o.customer_name": pattern},
		})
	}

	stmt = stmt.
		OrderBy("o.created_at DESC").
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

	orders := make([]entity.Order, 0, f.PerPage)

	var totalCount int

	for rows.Next() {
		o, count, err := scanOrderJoinedWithCount(rows)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		orders = append(orders, o)
	}

	return orders, totalCount, nil
}

// UpdateOrderStatus applies the status transition. Only supplied optional
// fields are touched.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, userID, id uuid.UUID, u entity.OrderUpdate) error {
	stmt := sq.Update("orders").
		Set("status", u.Status).
		Where(sq.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if u.PaymentStatus != nil {
		stmt = stmt.Set("payment_status", *u.PaymentStatus)
	}

	if u.PickupDate != nil {
		stmt = stmt.Set("pickup_date", *u.PickupDate)
	}

	stmt = stmt.Set("updated_at", sq.Expr("NOW()"))

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *OrderRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders WHERE customer_id = $1`, customerID)
}

func (r *OrderRepository) CountByPrice(ctx context.Context, priceID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders WHERE price_id = $1`, priceID)
}

func (r *OrderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID)
}

// RecentOrders returns the newest orders with customer, price and owning user
// attached. A nil userID means across all users (admin dashboard).
func (r *OrderRepository) RecentOrders(ctx context.Context, userID *uuid.UUID, limit uint64) ([]entity.Order, error) {
	stmt := sq.Select(
		"o.id",
		"o.invoice",
		"o.user_id",
		"o.customer_id",
		"o.price_id",
		"o.customer_name",
		"o.customer_email",
		"o.order_date",
		"o.status",
		"o.payment_status",
		"o.weight",
		"o.discount",
		"o.total_amount",
		"o.payment_method",
		"o.pickup_date",
		"o.created_at",
		"o.updated_at",
		"c.name",
		"c.email",
		"c.phone",
		"c.address",
		"p.service_type",
		"p.price",
		"p.duration",
		"p.is_active",
		"u.name",
		"u.email",
		"u.role",
	).From("orders o").
		Join("customers c ON c.id = o.customer_id").
		Join("prices p ON p.id = o.price_id").
		Join("users u ON u.id = o.user_id").
		PlaceholderFormat(sq.Dollar)

	if userID != nil {
		stmt = stmt.Where(sq.Eq{"o.user_id": *userID})
	}

	sqlQuery, args, err := stmt.OrderBy("o.created_at DESC").Limit(limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0, limit)

	for rows.Next() {
		var (
			o        entity.Order
			customer entity.Customer
			price    entity.Price
			owner    entity.User
		)

		err = rows.Scan(
			&o.ID,
			&o.Invoice,
			&o.UserID,
			&o.CustomerID,
			&o.PriceID,
			&o.CustomerName,
			(*zeronull.Text)(&o.CustomerEmail),
			&o.OrderDate,
			&o.Status,
			&o.PaymentStatus,
			&o.Weight,
			&o.Discount,
			&o.TotalAmount,
			&o.PaymentMethod,
			&o.PickupDate,
			&o.CreatedAt,
			&o.UpdatedAt,
			&customer.Name,
			(*zeronull.Text)(&customer.Email),
			(*zeronull.Text)(&customer.Phone),
			(*zeronull.Text)(&customer.Address),
			&price.ServiceType,
			&price.Price,
			&price.Duration,
			&price.IsActive,
			&owner.Name,
			&owner.Email,
			&owner.Role,
		)
		if err != nil {
			return nil, err
		}

		attachOrderRecords(&o, customer, price)
		owner.ID = o.UserID
		o.User = &owner

		orders = append(orders, o)
	}

	return orders, nil
}

// OrdersOfCustomer returns the customer's newest orders with price attached,
// for the customer detail view.
func (r *OrderRepository) OrdersOfCustomer(ctx context.Context, customerID uuid.UUID, limit uint64) ([]entity.Order, error) {
	q := selectOrderJoined + " WHERE o.customer_id = $1 ORDER BY o.created_at DESC LIMIT $2"

	rows, err := r.db.Query(ctx, q, customerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0, limit)

	for rows.Next() {
		o, err := scanOrderJoined(rows)
		if err != nil {
			return nil, err
		}

		orders = append(orders, o)
	}

	return orders, nil
}

func (r *OrderRepository) count(ctx context.Context, q string, arg any) (int, error) {
	var n int

	err := r.db.QueryRow(ctx, q, arg).Scan(&n)
	if err != nil {
		return 0, err
	}

	return n, nil
}

func scanOrderJoined(row pgx.Row) (entity.Order, error) {
	var (
		o        entity.Order
		customer entity.Customer
		price    entity.Price
	)

	err := row.Scan(
		&o.ID,
		&o.Invoice,
		&o.UserID,
		&o.CustomerID,
		&o.PriceID,
		&o.CustomerName,
		(*zeronull.Text)(&o.CustomerEmail),
		&o.OrderDate,
		&o.Status,
		&o.PaymentStatus,
		&o.Weight,
		&o.Discount,
		&o.TotalAmount,
		&o.PaymentMethod,
		&o.PickupDate,
		&o.CreatedAt,
		&o.UpdatedAt,
		&customer.Name,
		(*zeronull.Text)(&customer.Email),
		(*zeronull.Text)(&customer.Phone),
		(*zeronull.Text)(&customer.Address),
		&price.ServiceType,
		&price.Price,
		&price.Duration,
		&price.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Order{}, entity.ErrNotFound
		}

		return entity.Order{}, err
	}

	attachOrderRecords(&o, customer, price)

	return o, nil
}

func scanOrderJoinedWithCount(row pgx.Row) (entity.Order, int, error) {
	var (
		o        entity.Order
		customer entity.Customer
		price    entity.Price
		count    int
	)

	err := row.Scan(
		&o.ID,
		&o.Invoice,
		&o.UserID,
		&o.CustomerID,
		&o.PriceID,
		&o.CustomerName,
		(*zeronull.Text)(&o.CustomerEmail),
		&o.OrderDate,
		&o.Status,
		&o.PaymentStatus,
		&o.Weight,
		&o.Discount,
		&o.TotalAmount,
		&o.PaymentMethod,
		&o.PickupDate,
		&o.CreatedAt,
		&o.UpdatedAt,
		&customer.Name,
		(*zeronull.Text)(&customer.Email),
		(*zeronull.Text)(&customer.Phone),
		(*zeronull.Text)(&customer.Address),
		&price.ServiceType,
		&price.Price,
		&price.Duration,
		&price.IsActive,
		&count,
	)
	if err != nil {
		return entity.Order{}, 0, err
	}

	attachOrderRecords(&o, customer, price)

	return o, count, nil
}

func attachOrderRecords(o *entity.Order, customer entity.Customer, price entity.Price) {
	customer.ID = o.CustomerID
	customer.UserID = o.UserID
	price.ID = o.PriceID
	price.UserID = o.UserID
	o.Customer = &customer
	o.Price = &price
}
