package api

import (
	"context"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/laundrify/backoffice/internal/entity"
	"github.com/laundrify/backoffice/internal/service"
)

type Service interface {
	Login(ctx context.Context, email, password string) (entity.User, string, error)
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) error
	Profile(ctx context.Context) (entity.User, error)
	UpdateProfile(ctx context.Context, in service.UpdateProfileInput) (entity.User, error)

	AdminDashboard(ctx context.Context) (service.AdminOverview, error)
	Employees(ctx context.Context, f entity.EmployeeFilter) ([]entity.User, entity.Pagination, error)
	CreateEmployee(ctx context.Context, in service.CreateEmployeeInput) (entity.User, error)
	Employee(ctx context.Context, id uuid.UUID) (service.EmployeeDetail, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, in service.UpdateEmployeeInput) (entity.User, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error

	Prices(ctx context.Context, f entity.PriceFilter) ([]entity.Price, entity.Pagination, error)
	CreatePrice(ctx context.Context, in service.PriceInput) (entity.Price, error)
	Price(ctx context.Context, id uuid.UUID) (entity.Price, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, in service.PriceInput) (entity.Price, error)
	DeletePrice(ctx context.Context, id uuid.UUID) error
	ActivePrices(ctx context.Context) ([]entity.Price, error)

	EmployeeDashboard(ctx context.Context) (service.EmployeeOverview, error)
	Customers(ctx context.Context, f entity.CustomerFilter) ([]entity.Customer, entity.Pagination, error)
	CreateCustomer(ctx context.Context, in service.CustomerInput) (entity.Customer, error)
	Customer(ctx context.Context, id uuid.UUID) (entity.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, in service.CustomerInput) (entity.Customer, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	SearchCustomers(ctx context.Context, query string) ([]entity.CustomerRef, error)

	Orders(ctx context.Context, f entity.OrderFilter) ([]entity.Order, entity.Pagination, error)
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entity.Order, error)
	Order(ctx context.Context, id uuid.UUID) (entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, in service.UpdateOrderStatusInput) (entity.Order, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendData(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
