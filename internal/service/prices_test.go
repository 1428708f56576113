package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/laundrify/backoffice/internal/entity"
)

func TestCreatePrice(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employee := env.addEmployee(t, "emp@example.com", "password1")

	price, err := env.svc.CreatePrice(context.Background(), PriceInput{
		UserID:      employee.ID,
		ServiceType: "Dry Cleaning",
		Price:       decimal.RequireFromString("15000"),
		Duration:    3,
	})
	require.NoError(t, err)
	require.Equal(t, employee.ID, price.UserID)
	require.True(t, price.IsActive)
	require.NotNil(t, price.User)
}

func TestCreatePriceUnknownEmployee(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.svc.CreatePrice(context.Background(), PriceInput{
		UserID:      uuid.Must(uuid.NewV4()),
		ServiceType: "Dry Cleaning",
		Price:       decimal.RequireFromString("15000"),
		Duration:    3,
	})

	var fields entity.FieldErrors
	require.ErrorAs(t, err, &fields)
	require.Contains(t, fields, "user_id")
}

func TestCreatePriceValidation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.svc.CreatePrice(context.Background(), PriceInput{
		ServiceType: "",
		Price:       decimal.RequireFromString("-1"),
		Duration:    0,
	})

	var fields entity.FieldErrors
	require.ErrorAs(t, err, &fields)
	require.Contains(t, fields, "service_type")
	require.Contains(t, fields, "price")
	require.Contains(t, fields, "duration")
	require.Contains(t, fields, "user_id")
}

func TestCreatePriceZeroAllowed(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employee := env.addEmployee(t, "emp@example.com", "password1")

	price, err := env.svc.CreatePrice(context.Background(), PriceInput{
		UserID:      employee.ID,
		ServiceType: "Promo Wash",
		Price:       decimal.Zero,
		Duration:    1,
	})
	require.NoError(t, err)
	require.True(t, price.Price.IsZero())
}

func TestDeletePriceWithOrders(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employee := env.addEmployee(t, "emp@example.com", "password1")
	customer := seedCustomer(env, employee)
	price := seedPrice(env, employee, "1000", true)

	_, err := env.svc.CreateOrder(env.asUser(employee), CreateOrderInput{
		CustomerID:    customer.ID,
		PriceID:       price.ID,
		Weight:        decimal.RequireFromString("1"),
		PaymentMethod: entity.PaymentMethodCash,
	})
	require.NoError(t, err)

	err = env.svc.DeletePrice(context.Background(), price.ID)
	require.ErrorIs(t, err, entity.ErrConflict)
}

func TestActivePricesOnlyOwnAndActive(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employee := env.addEmployee(t, "emp@example.com", "password1")
	other := env.addEmployee(t, "other@example.com", "password1")

	active := seedPrice(env, employee, "1000", true)
	seedPrice(env, employee, "2000", false)
	seedPrice(env, other, "3000", true)

	prices, err := env.svc.ActivePrices(env.asUser(employee))
	require.NoError(t, err)
	require.Len(t, prices, 1)
	require.Equal(t, active.ID, prices[0].ID)
}

func TestUpdatePriceReassignsOwner(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	first := env.addEmployee(t, "first@example.com", "password1")
	second := env.addEmployee(t, "second@example.com", "password1")
	price := seedPrice(env, first, "1000", true)

	inactive := false

	updated, err := env.svc.UpdatePrice(context.Background(), price.ID, PriceInput{
		UserID:      second.ID,
		ServiceType: "Express Wash",
		Price:       decimal.RequireFromString("2500"),
		Duration:    1,
		IsActive:    &inactive,
	})
	require.NoError(t, err)
	require.Equal(t, second.ID, updated.UserID)
	require.Equal(t, "Express Wash", updated.ServiceType)
	require.False(t, updated.IsActive)
}
