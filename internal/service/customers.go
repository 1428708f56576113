package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/laundrify/backoffice/internal/entity"
)

const quickSearchLimit = 10

func (s *Service) Customers(ctx context.Context, f entity.CustomerFilter) ([]entity.Customer, entity.Pagination, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, entity.Pagination{}, err
	}

	f.Page = normalizePage(f.Page)
	f.PerPage = normalizePerPage(f.PerPage)

	customers, total, err := s.customers.Customers(ctx, user.ID, f)
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("list customers: %w", err)
	}

	return customers, entity.NewPagination(f.Page, f.PerPage, total), nil
}

type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

func (in CustomerInput) validate() error {
	fields := entity.FieldErrors{}

	if !validName(in.Name) {
		fields["name"] = "name is required and must not exceed 255 characters"
	}

	if in.Email != "" && !validEmail(in.Email) {
		fields["email"] = "email must be valid"
	}

	if !validPhone(in.Phone) {
		fields["phone"] = "phone must not exceed 20 characters"
	}

	if len(in.Address) > AddressMaxLen {
		fields["address"] = "address must not exceed 1000 characters"
	}

	if len(fields) > 0 {
		return fields
	}

	return nil
}

func (s *Service) CreateCustomer(ctx context.Context, in CustomerInput) (entity.Customer, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Customer{}, err
	}

	if err := in.validate(); err != nil {
		return entity.Customer{}, err
	}

	now := time.Now()

	customer := entity.Customer{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    user.ID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.customers.CreateCustomer(ctx, customer)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	return customer, nil
}

// Customer returns one of the caller's customers with their recent orders.
func (s *Service) Customer(ctx context.Context, id uuid.UUID) (entity.Customer, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Customer{}, err
	}

	customer, err := s.customers.CustomerOfUser(ctx, user.ID, id)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("load customer: %w", err)
	}

	orders, err := s.orders.OrdersOfCustomer(ctx, customer.ID, quickSearchLimit)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("load customer orders: %w", err)
	}

	customer.Orders = orders

	return customer, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id uuid.UUID, in CustomerInput) (entity.Customer, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Customer{}, err
	}

	if err := in.validate(); err != nil {
		return entity.Customer{}, err
	}

	customer, err := s.customers.CustomerOfUser(ctx, user.ID, id)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("load customer: %w", err)
	}

	customer.Name = in.Name
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.Address = in.Address
	customer.UpdatedAt = time.Now()

	err = s.customers.UpdateCustomer(ctx, customer)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("update customer: %w", err)
	}

	return customer, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	customer, err := s.customers.CustomerOfUser(ctx, user.ID, id)
	if err != nil {
		return fmt.Errorf("load customer: %w", err)
	}

	n, err := s.orders.CountByCustomer(ctx, customer.ID)
	if err != nil {
		return fmt.Errorf("count customer orders: %w", err)
	}

	if n > 0 {
		return fmt.Errorf("customer has %d order(s): %w", n, entity.ErrConflict)
	}

	err = s.customers.DeleteCustomer(ctx, user.ID, customer.ID)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	return nil
}

// SearchCustomers powers the order form autocomplete.
func (s *Service) SearchCustomers(ctx context.Context, query string) ([]entity.CustomerRef, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	refs, err := s.customers.QuickSearch(ctx, user.ID, query, quickSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}

	return refs, nil
}
