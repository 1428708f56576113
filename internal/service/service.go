package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/laundrify/backoffice/internal/entity"
	"github.com/laundrify/backoffice/pkg/config"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u entity.User) error
	User(ctx context.Context, id uuid.UUID) (entity.User, error)
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	Employees(ctx context.Context, f entity.EmployeeFilter) ([]entity.User, int, error)
	UpdateUser(ctx context.Context, u entity.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type TokenRepository interface {
	SaveToken(ctx context.Context, t entity.Token) error
	FindToken(ctx context.Context, id uuid.UUID) error
	DeleteToken(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) error
}

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, c entity.Customer) error
	CustomerOfUser(ctx context.Context, userID, id uuid.UUID) (entity.Customer, error)
	Customers(ctx context.Context, userID uuid.UUID, f entity.CustomerFilter) ([]entity.Customer, int, error)
	QuickSearch(ctx context.Context, userID uuid.UUID, search string, limit uint64) ([]entity.CustomerRef, error)
	UpdateCustomer(ctx context.Context, c entity.Customer) error
	DeleteCustomer(ctx context.Context, userID, id uuid.UUID) error
}

type PriceRepository interface {
	CreatePrice(ctx context.Context, p entity.Price) error
	Price(ctx context.Context, id uuid.UUID) (entity.Price, error)
	ActivePriceOfUser(ctx context.Context, userID, id uuid.UUID) (entity.Price, error)
	ActivePricesOfUser(ctx context.Context, userID uuid.UUID) ([]entity.Price, error)
	Prices(ctx context.Context, f entity.PriceFilter) ([]entity.Price, int, error)
	UpdatePrice(ctx context.Context, p entity.Price) error
	DeletePrice(ctx context.Context, id uuid.UUID) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, o entity.Order) (entity.Order, error)
	OrderOfUser(ctx context.Context, userID, id uuid.UUID) (entity.Order, error)
	Orders(ctx context.Context, userID uuid.UUID, f entity.OrderFilter) ([]entity.Order, int, error)
	UpdateOrderStatus(ctx context.Context, userID, id uuid.UUID, u entity.OrderUpdate) error
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error)
	CountByPrice(ctx context.Context, priceID uuid.UUID) (int, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	RecentOrders(ctx context.Context, userID *uuid.UUID, limit uint64) ([]entity.Order, error)
	OrdersOfCustomer(ctx context.Context, customerID uuid.UUID, limit uint64) ([]entity.Order, error)
}

type StatsRepository interface {
	AdminStats(ctx context.Context) (entity.AdminStats, error)
	EmployeeDashboard(ctx context.Context, userID uuid.UUID) (entity.EmployeeDashboard, error)
	EmployeeOverview(ctx context.Context, userID uuid.UUID) (entity.EmployeeStats, error)
}

type Producer interface {
	OrderCreated(ctx context.Context, o entity.Order)
	OrderStatusChanged(ctx context.Context, o entity.Order)
}

type Service struct {
	cfg       config.Config
	users     UserRepository
	tokens    TokenRepository
	customers CustomerRepository
	prices    PriceRepository
	orders    OrderRepository
	stats     StatsRepository
	producer  Producer
}

func New(
	cfg config.Config,
	users UserRepository,
	tokens TokenRepository,
	customers CustomerRepository,
	prices PriceRepository,
	orders OrderRepository,
	stats StatsRepository,
	producer Producer,
) *Service {
	return &Service{
		cfg:       cfg,
		users:     users,
		tokens:    tokens,
		customers: customers,
		prices:    prices,
		orders:    orders,
		stats:     stats,
		producer:  producer,
	}
}
