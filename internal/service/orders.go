package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/laundrify/backoffice/internal/entity"
)

func (s *Service) Orders(ctx context.Context, f entity.OrderFilter) ([]entity.Order, entity.Pagination, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, entity.Pagination{}, err
	}

	f.Page = normalizePage(f.Page)
	f.PerPage = normalizePerPage(f.PerPage)

	if f.Status != nil && !f.Status.IsValid() {
		return nil, entity.Pagination{}, entity.FieldErrors{"status": "unknown order status"}
	}

	if f.PaymentStatus != nil && !f.PaymentStatus.IsValid() {
		return nil, entity.Pagination{}, entity.FieldErrors{"payment_status": "unknown payment status"}
	}

	orders, total, err := s.orders.Orders(ctx, user.ID, f)
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("list orders: %w", err)
	}

	return orders, entity.NewPagination(f.Page, f.PerPage, total), nil
}

type CreateOrderInput struct {
	CustomerID    uuid.UUID
	PriceID       uuid.UUID
	Weight        decimal.Decimal
	Discount      int64
	PaymentMethod entity.PaymentMethod
	OrderDate     *time.Time // nil means the order is dated now
	PickupDate    *time.Time
}

func (in CreateOrderInput) validate() error {
	fields := entity.FieldErrors{}

	if in.CustomerID == uuid.Nil {
		fields["customer_id"] = "customer is required"
	}

	if in.PriceID == uuid.Nil {
		fields["price_id"] = "price is required"
	}

	if in.Weight.IsNegative() || in.Weight.IsZero() {
		fields["weight"] = "weight must be greater than zero"
	}

	if in.Discount < 0 {
		fields["discount"] = "discount must not be negative"
	}

	if !in.PaymentMethod.IsValid() {
		fields["payment_method"] = "payment method must be cash or transfer"
	}

	if len(fields) > 0 {
		return fields
	}

	return nil
}

// CreateOrder books a new order for the calling employee. The customer and
// price must belong to the caller and the price must still be active; anything
// else resolves as not found. The invoice number is minted inside the insert
// transaction, so concurrent creates on the same day never collide.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (entity.Order, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	if err := in.validate(); err != nil {
		return entity.Order{}, err
	}

	customer, err := s.customers.CustomerOfUser(ctx, user.ID, in.CustomerID)
	if err != nil {
		return entity.Order{}, fmt.Errorf("resolve customer: %w", err)
	}

	price, err := s.prices.ActivePriceOfUser(ctx, user.ID, in.PriceID)
	if err != nil {
		return entity.Order{}, fmt.Errorf("resolve price: %w", err)
	}

	total := entity.CalculateTotal(in.Weight, price.Price, in.Discount)
	if total < 0 {
		return entity.Order{}, entity.FieldErrors{"discount": "discount exceeds the order amount"}
	}

	now := time.Now()

	orderDate := now
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}

	order := entity.Order{
		ID:            uuid.Must(uuid.NewV4()),
		UserID:        user.ID,
		CustomerID:    customer.ID,
		PriceID:       price.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		OrderDate:     orderDate,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
		Weight:        in.Weight,
		Discount:      in.Discount,
		TotalAmount:   total,
		PaymentMethod: in.PaymentMethod,
		PickupDate:    in.PickupDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	order, err = s.orders.CreateOrder(ctx, order)
	if err != nil {
		return entity.Order{}, fmt.Errorf("create order: %w", err)
	}

	order.Customer = &customer
	order.Price = &price

	s.producer.OrderCreated(ctx, order)

	return order, nil
}

func (s *Service) Order(ctx context.Context, id uuid.UUID) (entity.Order, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	order, err := s.orders.OrderOfUser(ctx, user.ID, id)
	if err != nil {
		return entity.Order{}, fmt.Errorf("load order: %w", err)
	}

	return order, nil
}

type UpdateOrderStatusInput struct {
	Status        entity.OrderStatus
	PaymentStatus *entity.PaymentStatus
	PickupDate    *time.Time
}

func (in UpdateOrderStatusInput) validate() error {
	fields := entity.FieldErrors{}

	if !in.Status.IsValid() {
		fields["status"] = "status must be pending, processing, completed or cancelled"
	}

	if in.PaymentStatus != nil && !in.PaymentStatus.IsValid() {
		fields["payment_status"] = "payment status must be unpaid, paid or refunded"
	}

	if len(fields) > 0 {
		return fields
	}

	return nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id uuid.UUID, in UpdateOrderStatusInput) (entity.Order, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	if err := in.validate(); err != nil {
		return entity.Order{}, err
	}

	err = s.orders.UpdateOrderStatus(ctx, user.ID, id, entity.OrderUpdate{
		Status:        in.Status,
		PaymentStatus: in.PaymentStatus,
		PickupDate:    in.PickupDate,
	})
	if err != nil {
		return entity.Order{}, fmt.Errorf("update order status: %w", err)
	}

	order, err := s.orders.OrderOfUser(ctx, user.ID, id)
	if err != nil {
		return entity.Order{}, fmt.Errorf("reload order: %w", err)
	}

	s.producer.OrderStatusChanged(ctx, order)

	return order, nil
}
