package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/laundrify/backoffice/internal/entity"
)

func TestCreateEmployee(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	employee, err := env.svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Name:       "New Hire",
		Email:      "hire@example.com",
		Password:   "password1",
		BranchName: "North Branch",
	})
	require.NoError(t, err)

	require.Equal(t, entity.RoleEmployee, employee.Role)
	require.True(t, employee.IsActive)
	require.NotEqual(t, "password1", employee.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte("password1")))
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.addEmployee(t, "taken@example.com", "password1")

	_, err := env.svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Name:     "Someone",
		Email:    "taken@example.com",
		Password: "password1",
	})

	var fields entity.FieldErrors
	require.ErrorAs(t, err, &fields)
	require.Contains(t, fields, "email")
}

func TestCreateEmployeeValidation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Name:     "",
		Email:    "bad",
		Password: "short",
	})

	var fields entity.FieldErrors
	require.ErrorAs(t, err, &fields)
	require.Contains(t, fields, "name")
	require.Contains(t, fields, "email")
	require.Contains(t, fields, "password")
}

func TestEmployeeHidesAdmins(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	admin := entity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     "Root",
		Email:    "admin@example.com",
		Role:     entity.RoleAdmin,
		IsActive: true,
	}
	env.users.byID[admin.ID] = admin

	_, err := env.svc.Employee(context.Background(), admin.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = env.svc.UpdateEmployee(context.Background(), admin.ID, UpdateEmployeeInput{
		Name:  "Nope",
		Email: "admin@example.com",
	})
	require.ErrorIs(t, err, entity.ErrNotFound)

	err = env.svc.DeleteEmployee(context.Background(), admin.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateEmployee(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employee := env.addEmployee(t, "emp@example.com", "password1")

	inactive := false

	updated, err := env.svc.UpdateEmployee(context.Background(), employee.ID, UpdateEmployeeInput{
		Name:     "Renamed",
		Email:    "renamed@example.com",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, "renamed@example.com", updated.Email)
	require.False(t, updated.IsActive)

	// Password stays untouched when the field is empty.
	require.Equal(t, employee.PasswordHash, updated.PasswordHash)
}

func TestDeleteEmployeeWithOrders(t *testing.T) {
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

	err = env.svc.DeleteEmployee(context.Background(), employee.ID)
	require.ErrorIs(t, err, entity.ErrConflict)

	// The account survives the refused delete.
	_, err = env.svc.Employee(context.Background(), employee.ID)
	require.NoError(t, err)
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employee := env.addEmployee(t, "emp@example.com", "password1")

	require.NoError(t, env.svc.DeleteEmployee(context.Background(), employee.ID))

	_, err := env.svc.Employee(context.Background(), employee.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestEmployeesDefaultsSort(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.addEmployee(t, "a@example.com", "password1")
	env.addEmployee(t, "b@example.com", "password1")

	employees, pagination, err := env.svc.Employees(context.Background(), entity.EmployeeFilter{
		SortBy:  "password_hash", // not on the allow-list, falls back
		SortDir: "sideways",
	})
	require.NoError(t, err)
	require.Len(t, employees, 2)
	require.Equal(t, uint64(1), pagination.CurrentPage)
	require.Equal(t, uint64(DefaultPerPage), pagination.PerPage)
}

