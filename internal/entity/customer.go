package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Customer struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Recent orders, attached on the detail view only.
	Orders []Order `json:"orders,omitempty"`
}

type CustomerFilter struct {
	Search  string
	Page    uint64
	PerPage uint64
}

// CustomerRef is the shortened shape returned by the quick-search endpoint.
type CustomerRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
	Phone string    `json:"phone,omitempty"`
}
