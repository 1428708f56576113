package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Price struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	ServiceType string          `json:"service_type"`
	Price       decimal.Decimal `json:"price"`
	Duration    int32           `json:"duration"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Owning employee, attached on the admin surface.
	User *User `json:"user,omitempty"`
}

type PriceSortCol string

const (
	PriceSortByServiceType PriceSortCol = "service_type"
	PriceSortByPrice       PriceSortCol = "price"
	PriceSortByDuration    PriceSortCol = "duration"
	PriceSortByCreatedAt   PriceSortCol = "created_at"
)

func (c PriceSortCol) String() string {
	return string(c)
}

func (c PriceSortCol) IsValid() bool {
	switch c {
	case PriceSortByServiceType, PriceSortByPrice, PriceSortByDuration, PriceSortByCreatedAt:
		return true
	}

	return false
}

type PriceFilter struct {
	Search   string
	IsActive *bool
	UserID   *uuid.UUID
	Page     uint64
	PerPage  uint64
	SortBy   PriceSortCol
	SortDir  SortDir
}
