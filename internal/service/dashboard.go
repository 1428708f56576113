package service

import (
	"context"
	"fmt"

	"github.com/laundrify/backoffice/internal/entity"
)

const (
	adminRecentOrders    = 10
	employeeRecentOrders = 5
)

// AdminOverview aggregates company-wide counters with the latest orders
// across all employees.
type AdminOverview struct {
	Statistics   entity.AdminStats `json:"statistics"`
	RecentOrders []entity.Order    `json:"recent_orders"`
}

type EmployeeOverview struct {
	Statistics   entity.EmployeeDashboard `json:"statistics"`
	RecentOrders []entity.Order           `json:"recent_orders"`
}

func (s *Service) AdminDashboard(ctx context.Context) (AdminOverview, error) {
	stats, err := s.stats.AdminStats(ctx)
	if err != nil {
		return AdminOverview{}, fmt.Errorf("admin stats: %w", err)
	}

	recent, err := s.orders.RecentOrders(ctx, nil, adminRecentOrders)
	if err != nil {
		return AdminOverview{}, fmt.Errorf("recent orders: %w", err)
	}

	return AdminOverview{Statistics: stats, RecentOrders: recent}, nil
}

func (s *Service) EmployeeDashboard(ctx context.Context) (EmployeeOverview, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return EmployeeOverview{}, err
	}

	stats, err := s.stats.EmployeeDashboard(ctx, user.ID)
	if err != nil {
		return EmployeeOverview{}, fmt.Errorf("employee stats: %w", err)
	}

	recent, err := s.orders.RecentOrders(ctx, &user.ID, employeeRecentOrders)
	if err != nil {
		return EmployeeOverview{}, fmt.Errorf("recent orders: %w", err)
	}

	return EmployeeOverview{Statistics: stats, RecentOrders: recent}, nil
}
