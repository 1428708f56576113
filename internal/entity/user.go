package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployee:
		return true
	}

	return false
}

type User struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          Role      `json:"role"`
	IsActive      bool      `json:"is_active"`
	BranchName    string    `json:"branch_name,omitempty"`
	BranchAddress string    `json:"branch_address,omitempty"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EmployeeStats is the per-employee rollup attached to the admin employee detail view.
type EmployeeStats struct {
	TotalCustomers int   `json:"total_customers"`
	TotalOrders    int   `json:"total_orders"`
	TotalRevenue   int64 `json:"total_revenue"`
	PendingOrders  int   `json:"pending_orders"`
}

type EmployeeSortCol string

const (
	EmployeeSortByName      EmployeeSortCol = "name"
	EmployeeSortByEmail     EmployeeSortCol = "email"
	EmployeeSortByBranch    EmployeeSortCol = "branch_name"
	EmployeeSortByCreatedAt EmployeeSortCol = "created_at"
)

func (c EmployeeSortCol) String() string {
	return string(c)
}

func (c EmployeeSortCol) IsValid() bool {
	switch c {
	case EmployeeSortByName, EmployeeSortByEmail, EmployeeSortByBranch, EmployeeSortByCreatedAt:
		return true
	}

	return false
}

type EmployeeFilter struct {
	Search   string
	IsActive *bool
	Page     uint64
	PerPage  uint64
	SortBy   EmployeeSortCol
	SortDir  SortDir
}
