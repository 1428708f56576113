package entity

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type CtxKey int

const (
	CtxKeyUser CtxKey = iota
	CtxKeyTokenID
)

func CtxWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, CtxKeyUser, user)
}

// UserFromCtx returns the authenticated user or ErrUnauthenticated.
func UserFromCtx(ctx context.Context) (User, error) {
	user, ok := ctx.Value(CtxKeyUser).(User)
	if !ok {
		return user, ErrUnauthenticated
	}

	return user, nil
}

func CtxWithTokenID(ctx context.Context, tokenID uuid.UUID) context.Context {
	return context.WithValue(ctx, CtxKeyTokenID, tokenID)
}

// TokenIDFromCtx returns the JTI of the bearer token the request arrived with,
// or uuid.Nil outside an authenticated request.
func TokenIDFromCtx(ctx context.Context) uuid.UUID {
	tokenID, ok := ctx.Value(CtxKeyTokenID).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return tokenID
}
