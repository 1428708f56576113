package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/laundrify/backoffice/internal/entity"
)

// EmployeeDetail is the admin detail view: the employee plus their rollup.
type EmployeeDetail struct {
	entity.User
	Statistics entity.EmployeeStats `json:"statistics"`
}

func (s *Service) Employees(ctx context.Context, f entity.EmployeeFilter) ([]entity.User, entity.Pagination, error) {
	f.Page = normalizePage(f.Page)
	f.PerPage = normalizePerPage(f.PerPage)

	if !f.SortBy.IsValid() {
		f.SortBy = entity.EmployeeSortByCreatedAt
	}

	if !f.SortDir.IsValid() {
		f.SortDir = entity.SortDesc
	}

	employees, total, err := s.users.Employees(ctx, f)
	if err != nil {
		return nil, entity.Pagination{}, fmt.Errorf("list employees: %w", err)
	}

	return employees, entity.NewPagination(f.Page, f.PerPage, total), nil
}

type CreateEmployeeInput struct {
	Name          string
	Email         string
	Password      string
	BranchName    string
	BranchAddress string
	Address       string
	Phone         string
}

func (in CreateEmployeeInput) validate() error {
	fields := entity.FieldErrors{}

	if !validName(in.Name) {
		fields["name"] = "name is required and must not exceed 255 characters"
	}

	if !validEmail(in.Email) {
		fields["email"] = "a valid email is required"
	}

	if len(in.Password) < PasswordMin {
		fields["password"] = "password must be at least 8 characters"
	}

	if !validPhone(in.Phone) {
		fields["phone"] = "phone must not exceed 20 characters"
	}

	if len(fields) > 0 {
		return fields
	}

	return nil
}

func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (entity.User, error) {
	if err := in.validate(); err != nil {
		return entity.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()

	employee := entity.User{
		ID:            uuid.Must(uuid.NewV4()),
		Name:          in.Name,
		Email:         in.Email,
		PasswordHash:  string(hash),
		Role:          entity.RoleEmployee,
		IsActive:      true,
		BranchName:    in.BranchName,
		BranchAddress: in.BranchAddress,
		Address:       in.Address,
		Phone:         in.Phone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.users.CreateUser(ctx, employee)
	if err != nil {
		if errors.Is(err, entity.ErrEmailTaken) {
			return entity.User{}, entity.FieldErrors{"email": "email already taken"}
		}

		return entity.User{}, fmt.Errorf("create employee: %w", err)
	}

	return employee, nil
}

func (s *Service) Employee(ctx context.Context, id uuid.UUID) (EmployeeDetail, error) {
	employee, err := s.employeeByID(ctx, id)
	if err != nil {
		return EmployeeDetail{}, err
	}

	stats, err := s.stats.EmployeeOverview(ctx, id)
	if err != nil {
		return EmployeeDetail{}, fmt.Errorf("employee overview: %w", err)
	}

	return EmployeeDetail{User: employee, Statistics: stats}, nil
}

type UpdateEmployeeInput struct {
	Name          string
	Email         string
	Password      string // empty means keep the current password
	IsActive      *bool
	BranchName    string
	BranchAddress string
	Address       string
	Phone         string
}

func (in UpdateEmployeeInput) validate() error {
	fields := entity.FieldErrors{}

	if !validName(in.Name) {
		fields["name"] = "name is required and must not exceed 255 characters"
	}

	if !validEmail(in.Email) {
		fields["email"] = "a valid email is required"
	}

	if in.Password != "" && len(in.Password) < PasswordMin {
		fields["password"] = "password must be at least 8 characters"
	}

	if !validPhone(in.Phone) {
		fields["phone"] = "phone must not exceed 20 characters"
	}

	if len(fields) > 0 {
		return fields
	}

	return nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id uuid.UUID, in UpdateEmployeeInput) (entity.User, error) {
	if err := in.validate(); err != nil {
		return entity.User{}, err
	}

	employee, err := s.employeeByID(ctx, id)
	if err != nil {
		return entity.User{}, err
	}

	employee.Name = in.Name
	employee.Email = in.Email
	employee.BranchName = in.BranchName
	employee.BranchAddress = in.BranchAddress
	employee.Address = in.Address
	employee.Phone = in.Phone

	if in.IsActive != nil {
		employee.IsActive = *in.IsActive
	}

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return entity.User{}, fmt.Errorf("hash password: %w", err)
		}

		employee.PasswordHash = string(hash)
	}

	employee.UpdatedAt = time.Now()

	err = s.users.UpdateUser(ctx, employee)
	if err != nil {
		if errors.Is(err, entity.ErrEmailTaken) {
			return entity.User{}, entity.FieldErrors{"email": "email already taken"}
		}

		return entity.User{}, fmt.Errorf("update employee: %w", err)
	}

	return employee, nil
}

// DeleteEmployee refuses to remove an employee who has orders; the ledger is
// the source of truth for that reference count.
func (s *Service) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeByID(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.orders.CountByUser(ctx, employee.ID)
	if err != nil {
		return fmt.Errorf("count employee orders: %w", err)
	}

	if n > 0 {
		return fmt.Errorf("employee has %d order(s): %w", n, entity.ErrConflict)
	}

	err = s.users.DeleteUser(ctx, employee.ID)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}

	return nil
}

// employeeByID loads a user and hides admins behind not-found, so the admin
// employee surface cannot address other admins.
func (s *Service) employeeByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	user, err := s.users.User(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, fmt.Errorf("load user: %w", err)
	}

	if user.Role != entity.RoleEmployee {
		return entity.User{}, entity.ErrNotFound
	}

	return user, nil
}
