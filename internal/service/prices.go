package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/laundrify/backoffice/internal/entity"
)

func (s *Service) Prices(ctx context.Context, f entity.PriceFilter) ([]entity.Price, entity.Pagination, error) {
	f.Page = normalizePage(f.Page)
	f.PerPage = normalizePerPage(f.PerPage)

	if !f.SortBy.IsValid() {
		f.SortBy = entity.PriceSortByCreatedAt
	}

	if !f.SortDir.IsValid() {
		f.SortDir = entity.SortDesc
	}

	prices, total, err := s.prices.Prices(ctx, f)
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("list prices: %w", err)
	}

	return prices, entity.NewPagination(f.Page, f.PerPage, total), nil
}

type PriceInput struct {
	UserID      uuid.UUID
	ServiceType string
	Price       decimal.Decimal
	Duration    int32
	IsActive    *bool
}

func (in PriceInput) validate() error {
	fields := entity.FieldErrors{}

	if !validName(in.ServiceType) {
		fields["service_type"] = "service type is required and must not exceed 255 characters"
	}

	if in.Price.IsNegative() {
		fields["price"] = "price must not be negative"
	}

	if in.Duration <= 0 {
		fields["duration"] = "duration must be a positive number of days"
	}

	if in.UserID == uuid.Nil {
		fields["user_id"] = "employee is required"
	}

	if len(fields) > 0 {
		return fields
	}

	return nil
}

func (s *Service) CreatePrice(ctx context.Context, in PriceInput) (entity.Price, error) {
	if err := in.validate(); err != nil {
		return entity.Price{}, err
	}

	owner, err := s.employeeByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Price{}, entity.FieldErrors{"user_id": "employee not found"}
		}

		return entity.Price{}, err
	}

	now := time.Now()

	price := entity.Price{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      owner.ID,
		ServiceType: in.ServiceType,
		Price:       in.Price,
		Duration:    in.Duration,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if in.IsActive != nil {
		price.IsActive = *in.IsActive
	}

	err = s.prices.CreatePrice(ctx, price)
	if err != nil {
		return entity.Price{}, fmt.Errorf("create price: %w", err)
	}

	price.User = &owner

	return price, nil
}

func (s *Service) Price(ctx context.Context, id uuid.UUID) (entity.Price, error) {
	price, err := s.prices.Price(ctx, id)
	if err != nil {
		return entity.Price{}, fmt.Errorf("load price: %w", err)
	}

	owner, err := s.users.User(ctx, price.UserID)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return entity.Price{}, fmt.Errorf("load price owner: %w", err)
	}

	if err == nil {
		price.User = &owner
	}

	return price, nil
}

func (s *Service) UpdatePrice(ctx context.Context, id uuid.UUID, in PriceInput) (entity.Price, error) {
	if err := in.validate(); err != nil {
		return entity.Price{}, err
	}

	price, err := s.prices.Price(ctx, id)
	if err != nil {
		return entity.Price{}, fmt.Errorf("load price: %w", err)
	}

	if in.UserID != price.UserID {
		owner, err := s.employeeByID(ctx, in.UserID)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return entity.Price{}, entity.FieldErrors{"user_id": "employee not found"}
			}

			return entity.Price{}, err
		}

		price.UserID = owner.ID
	}

	price.ServiceType = in.ServiceType
	price.Price = in.Price
	price.Duration = in.Duration

	if in.IsActive != nil {
		price.IsActive = *in.IsActive
	}

	price.UpdatedAt = time.Now()

	err = s.prices.UpdatePrice(ctx, price)
	if err != nil {
		return entity.Price{}, fmt.Errorf("update price: %w", err)
	}

	return price, nil
}

// DeletePrice refuses to remove a price that orders still reference, so old
// invoices keep resolving to the service they were billed against.
func (s *Service) DeletePrice(ctx context.Context, id uuid.UUID) error {
	price, err := s.prices.Price(ctx, id)
	if err != nil {
		return fmt.Errorf("load price: %w", err)
	}

	n, err := s.orders.CountByPrice(ctx, price.ID)
	if err != nil {
		return fmt.Errorf("count price orders: %w", err)
	}

	if n > 0 {
		return fmt.Errorf("price is used by %d order(s): %w", n, entity.ErrConflict)
	}

	err = s.prices.DeletePrice(ctx, price.ID)
	if err != nil {
		return fmt.Errorf("delete price: %w", err)
	}

	return nil
}

// ActivePrices lists the caller's own active price entries for the order form.
func (s *Service) ActivePrices(ctx context.Context) ([]entity.Price, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	prices, err := s.prices.ActivePricesOfUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list active prices: %w", err)
	}

	return prices, nil
}
