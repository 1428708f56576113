package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/laundrify/backoffice/internal/entity"
	"github.com/laundrify/backoffice/pkg/config"
)

// In-memory repository fakes backing the service tests.

type fakeUsers struct {
	byID map[uuid.UUID]entity.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]entity.User{}}
}

func (f *fakeUsers) CreateUser(_ context.Context, u entity.User) error {
	for _, existing := range f.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return entity.ErrEmailTaken
		}
	}

	f.byID[u.ID] = u

	return nil
}

func (f *fakeUsers) User(_ context.Context, id uuid.UUID) (entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return entity.User{}, entity.ErrNotFound
	}

	return u, nil
}

func (f *fakeUsers) UserByEmail(_ context.Context, email string) (entity.User, error) {
	for _, u := range f.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}

	return entity.User{}, entity.ErrNotFound
}

func (f *fakeUsers) Employees(_ context.Context, _ entity.EmployeeFilter) ([]entity.User, int, error) {
	var out []entity.User
	for _, u := range f.byID {
		if u.Role == entity.RoleEmployee {
			out = append(out, u)
		}
	}

	return out, len(out), nil
}

func (f *fakeUsers) UpdateUser(_ context.Context, u entity.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return entity.ErrNotFound
	}

	for id, existing := range f.byID {
		if id != u.ID && strings.EqualFold(existing.Email, u.Email) {
			return entity.ErrEmailTaken
		}
	}

	f.byID[u.ID] = u

	return nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return entity.ErrNotFound
	}

	delete(f.byID, id)

	return nil
}

type fakeTokens struct {
	byID map[uuid.UUID]entity.Token
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{byID: map[uuid.UUID]entity.Token{}}
}

func (f *fakeTokens) SaveToken(_ context.Context, t entity.Token) error {
	f.byID[t.ID] = t
	return nil
}

func (f *fakeTokens) FindToken(_ context.Context, id uuid.UUID) error {
	t, ok := f.byID[id]
	if !ok || t.ExpiresAt.Before(time.Now()) {
		return entity.ErrNotFound
	}

	return nil
}

func (f *fakeTokens) DeleteToken(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeTokens) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	for id, t := range f.byID {
		if t.UserID == userID {
			delete(f.byID, id)
		}
	}

	return nil
}

func (f *fakeTokens) DeleteExpired(_ context.Context) error {
	for id, t := range f.byID {
		if t.ExpiresAt.Before(time.Now()) {
			delete(f.byID, id)
		}
	}

	return nil
}

type fakeCustomers struct {
	byID map[uuid.UUID]entity.Customer
}

func newFakeCustomers() *fakeCustomers {
	return &fakeCustomers{byID: map[uuid.UUID]entity.Customer{}}
}

func (f *fakeCustomers) CreateCustomer(_ context.Context, c entity.Customer) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCustomers) CustomerOfUser(_ context.Context, userID, id uuid.UUID) (entity.Customer, error) {
	c, ok := f.byID[id]
	if !ok || c.UserID != userID {
		return entity.Customer{}, entity.ErrNotFound
	}

	return c, nil
}

func (f *fakeCustomers) Customers(_ context.Context, userID uuid.UUID, _ entity.CustomerFilter) ([]entity.Customer, int, error) {
	var out []entity.Customer
	for _, c := range f.byID {
		if c.UserID == userID {
			out = append(out, c)
		}
	}

	return out, len(out), nil
}

func (f *fakeCustomers) QuickSearch(_ context.Context, userID uuid.UUID, search string, limit uint64) ([]entity.CustomerRef, error) {
	var out []entity.CustomerRef
	for _, c := range f.byID {
		if c.UserID != userID {
			continue
		}

		if search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			continue
		}

		out = append(out, entity.CustomerRef{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone})
		if uint64(len(out)) == limit {
			break
		}
	}

	return out, nil
}

func (f *fakeCustomers) UpdateCustomer(_ context.Context, c entity.Customer) error {
	if _, ok := f.byID[c.ID]; !ok {
		return entity.ErrNotFound
	}

	f.byID[c.ID] = c

	return nil
}

func (f *fakeCustomers) DeleteCustomer(_ context.Context, userID, id uuid.UUID) error {
	c, ok := f.byID[id]
	if !ok || c.UserID != userID {
		return entity.ErrNotFound
	}

	delete(f.byID, id)

	return nil
}

type fakePrices struct {
	byID map[uuid.UUID]entity.Price
}

func newFakePrices() *fakePrices {
	return &fakePrices{byID: map[uuid.UUID]entity.Price{}}
}

func (f *fakePrices) CreatePrice(_ context.Context, p entity.Price) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakePrices) Price(_ context.Context, id uuid.UUID) (entity.Price, error) {
	p, ok := f.byID[id]
	if !ok {
		return entity.Price{}, entity.ErrNotFound
	}

	return p, nil
}

func (f *fakePrices) ActivePriceOfUser(_ context.Context, userID, id uuid.UUID) (entity.Price, error) {
	p, ok := f.byID[id]
	if !ok || p.UserID != userID || !p.IsActive {
		return entity.Price{}, entity.ErrNotFound
	}

	return p, nil
}

func (f *fakePrices) ActivePricesOfUser(_ context.Context, userID uuid.UUID) ([]entity.Price, error) {
	var out []entity.Price
	for _, p := range f.byID {
		if p.UserID == userID && p.IsActive {
			out = append(out, p)
		}
	}

	return out, nil
}

func (f *fakePrices) Prices(_ context.Context, _ entity.PriceFilter) ([]entity.Price, int, error) {
	var out []entity.Price
	for _, p := range f.byID {
		out = append(out, p)
	}

	return out, len(out), nil
}

func (f *fakePrices) UpdatePrice(_ context.Context, p entity.Price) error {
	if _, ok := f.byID[p.ID]; !ok {
		return entity.ErrNotFound
	}

	f.byID[p.ID] = p

	return nil
}

func (f *fakePrices) DeletePrice(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return entity.ErrNotFound
	}

	delete(f.byID, id)

	return nil
}

type fakeOrders struct {
	byID     map[uuid.UUID]entity.Order
	counters map[string]int64
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{
		byID:     map[uuid.UUID]entity.Order{},
		counters: map[string]int64{},
	}
}

func (f *fakeOrders) CreateOrder(_ context.Context, o entity.Order) (entity.Order, error) {
	day := o.CreatedAt.Format("20060102")
	f.counters[day]++
	o.Invoice = entity.FormatInvoice(o.CreatedAt, f.counters[day])
	f.byID[o.ID] = o

	return o, nil
}

func (f *fakeOrders) OrderOfUser(_ context.Context, userID, id uuid.UUID) (entity.Order, error) {
	o, ok := f.byID[id]
	if !ok || o.UserID != userID {
		return entity.Order{}, entity.ErrNotFound
	}

	return o, nil
}

func (f *fakeOrders) Orders(_ context.Context, userID uuid.UUID, _ entity.OrderFilter) ([]entity.Order, int, error) {
	var out []entity.Order
	for _, o := range f.byID {
		if o.UserID == userID {
			out = append(out, o)
		}
	}

	return out, len(out), nil
}

func (f *fakeOrders) UpdateOrderStatus(_ context.Context, userID, id uuid.UUID, u entity.OrderUpdate) error {
	o, ok := f.byID[id]
	if !ok || o.UserID != userID {
		return entity.ErrNotFound
	}

	o.Status = u.Status
	if u.PaymentStatus != nil {
		o.PaymentStatus = *u.PaymentStatus
	}

	if u.PickupDate != nil {
		o.PickupDate = u.PickupDate
	}

	o.UpdatedAt = time.Now()
	f.byID[id] = o

	return nil
}

func (f *fakeOrders) CountByCustomer(_ context.Context, customerID uuid.UUID) (int, error) {
	n := 0
	for _, o := range f.byID {
		if o.CustomerID == customerID {
			n++
		}
	}

	return n, nil
}

func (f *fakeOrders) CountByPrice(_ context.Context, priceID uuid.UUID) (int, error) {
	n := 0
	for _, o := range f.byID {
		if o.PriceID == priceID {
			n++
		}
	}

	return n, nil
}

func (f *fakeOrders) CountByUser(_ context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for _, o := range f.byID {
		if o.UserID == userID {
			n++
		}
	}

	return n, nil
}

func (f *fakeOrders) RecentOrders(_ context.Context, userID *uuid.UUID, limit uint64) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.byID {
		if userID != nil && o.UserID != *userID {
			continue
		}

		out = append(out, o)
		if uint64(len(out)) == limit {
			break
		}
	}

	return out, nil
}

func (f *fakeOrders) OrdersOfCustomer(_ context.Context, customerID uuid.UUID, limit uint64) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.byID {
		if o.CustomerID != customerID {
			continue
		}

		out = append(out, o)
		if uint64(len(out)) == limit {
			break
		}
	}

	return out, nil
}

type fakeStats struct {
	admin    entity.AdminStats
	employee entity.EmployeeDashboard
	overview entity.EmployeeStats
}

func (f *fakeStats) AdminStats(_ context.Context) (entity.AdminStats, error) {
	return f.admin, nil
}

func (f *fakeStats) EmployeeDashboard(_ context.Context, _ uuid.UUID) (entity.EmployeeDashboard, error) {
	return f.employee, nil
}

func (f *fakeStats) EmployeeOverview(_ context.Context, _ uuid.UUID) (entity.EmployeeStats, error) {
	return f.overview, nil
}

type fakeProducer struct {
	created       []entity.Order
	statusChanged []entity.Order
}

func (f *fakeProducer) OrderCreated(_ context.Context, o entity.Order) {
	f.created = append(f.created, o)
}

func (f *fakeProducer) OrderStatusChanged(_ context.Context, o entity.Order) {
	f.statusChanged = append(f.statusChanged, o)
}

type testEnv struct {
	svc       *Service
	users     *fakeUsers
	tokens    *fakeTokens
	customers *fakeCustomers
	prices    *fakePrices
	orders    *fakeOrders
	stats     *fakeStats
	producer  *fakeProducer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:     newFakeUsers(),
		tokens:    newFakeTokens(),
		customers: newFakeCustomers(),
		prices:    newFakePrices(),
		orders:    newFakeOrders(),
		stats:     &fakeStats{},
		producer:  &fakeProducer{},
	}

	cfg := config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}

	env.svc = New(cfg, env.users, env.tokens, env.customers, env.prices, env.orders, env.stats, env.producer)

	return env
}

func (e *testEnv) addEmployee(t *testing.T, email, password string) entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	u := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Test Employee",
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleEmployee,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	e.users.byID[u.ID] = u

	return u
}

func (e *testEnv) asUser(u entity.User) context.Context {
	return entity.CtxWithUser(context.Background(), u)
}
