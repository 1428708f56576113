package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
)

// Token is a persisted bearer credential. The row existing is what makes the
// JWT with the matching JTI valid; deleting it revokes the credential.
type Token struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

type AuthClaims struct {
	UserID uuid.UUID `json:"uid"`
	Role   Role      `json:"role"`
	jwt.RegisteredClaims
}
