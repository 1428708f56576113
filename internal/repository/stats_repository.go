package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laundrify/backoffice/internal/entity"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: pool}
}

func (r *StatsRepository) AdminStats(ctx context.Context) (entity.AdminStats, error) {
	const q = `SELECT
		(SELECT COUNT(*) FROM users WHERE role = 'employee'),
		(SELECT COUNT(*) FROM users WHERE role = 'employee' AND is_active),
		(SELECT COUNT(*) FROM customers),
		(SELECT COUNT(*) FROM orders),
		(SELECT COUNT(*) FROM prices WHERE is_active),
		(SELECT COUNT(*) FROM orders WHERE created_at::date = CURRENT_DATE),
		(SELECT COALESCE(SUM(total_amount), 0) FROM orders
			WHERE created_at::date = CURRENT_DATE AND payment_status = 'paid'),
		(SELECT COUNT(*) FROM orders WHERE status = 'pending'),
		(SELECT COUNT(*) FROM orders WHERE status = 'processing'),
		(SELECT COUNT(*) FROM orders WHERE status = 'completed'),
		(SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE payment_status = 'paid'),
		(SELECT COALESCE(SUM(total_amount), 0) FROM orders
			WHERE payment_status = 'paid' AND date_trunc('month', created_at) = date_trunc('month', NOW()))`

	var s entity.AdminStats

	err := r.db.QueryRow(ctx, q).Scan(
		&s.TotalEmployees,
		&s.ActiveEmployees,
		&s.TotalCustomers,
		&s.TotalOrders,
		&s.TotalPrices,
		&s.TodayOrders,
		&s.TodayRevenue,
		&s.PendingOrders,
		&s.ProcessingOrders,
		&s.CompletedOrders,
		&s.TotalRevenue,
		&s.MonthRevenue,
	)
	if err != nil {
		return entity.AdminStats{}, err
	}

	return s, nil
}

func (r *StatsRepository) EmployeeDashboard(ctx context.Context, userID uuid.UUID) (entity.EmployeeDashboard, error) {
	const q = `SELECT
		(SELECT COUNT(*) FROM customers WHERE user_id = $1),
		(SELECT COUNT(*) FROM orders WHERE user_id = $1),
		(SELECT COUNT(*) FROM orders WHERE user_id = $1 AND created_at::date = CURRENT_DATE),
		(SELECT COALESCE(SUM(total_amount), 0) FROM orders
			WHERE user_id = $1 AND created_at::date = CURRENT_DATE AND payment_status = 'paid'),
		(SELECT COUNT(*) FROM orders WHERE user_id = $1 AND status = 'pending'),
		(SELECT COUNT(*) FROM orders WHERE user_id = $1 AND status = 'processing'),
		(SELECT COUNT(*) FROM orders WHERE user_id = $1 AND status = 'completed')`

	var s entity.EmployeeDashboard

	err := r.db.QueryRow(ctx, q, userID).Scan(
		&s.MyCustomers,
		&s.MyOrders,
		&s.TodayOrders,
		&s.TodayRevenue,
		&s.PendingOrders,
		&s.ProcessingOrders,
		&s.CompletedOrders,
	)
	if err != nil {
		return entity.EmployeeDashboard{}, err
	}

	return s, nil
}

// EmployeeOverview is the rollup attached to the admin's employee detail view.
func (r *StatsRepository) EmployeeOverview(ctx context.Context, userID uuid.UUID) (entity.EmployeeStats, error) {
	const q = `SELECT
		(SELECT COUNT(*) FROM customers WHERE user_id = $1),
		(SELECT COUNT(*) FROM orders WHERE user_id = $1),
		(SELECT COALESCE(SUM(total_amount), 0) FROM orders
			WHERE user_id = $1 AND payment_status = 'paid'),
		(SELECT COUNT(*) FROM orders WHERE user_id = $1 AND status = 'pending')`

	var s entity.EmployeeStats

	err := r.db.QueryRow(ctx, q, userID).Scan(
		&s.TotalCustomers,
		&s.TotalOrders,
		&s.TotalRevenue,
		&s.PendingOrders,
	)
	if err != nil {
		return entity.EmployeeStats{}, err
	}

	return s, nil
}
