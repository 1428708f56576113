package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laundrify/backoffice/internal/entity"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employee := env.addEmployee(t, "emp@example.com", "password1")

	user, token, err := env.svc.Login(context.Background(), "emp@example.com", "password1")
	require.NoError(t, err)
	require.Equal(t, employee.ID, user.ID)
	require.NotEmpty(t, token)
}

func TestLoginFailures(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.addEmployee(t, "emp@example.com", "password1")

	inactive := env.addEmployee(t, "gone@example.com", "password1")
	inactive.IsActive = false
	env.users.byID[inactive.ID] = inactive

	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"unknown email", "nobody@example.com", "password1", entity.ErrInvalidCredentials},
		{"wrong password", "emp@example.com", "nope-nope", entity.ErrInvalidCredentials},
		{"inactive account", "gone@example.com", "password1", entity.ErrInactiveAccount},
		{"empty password", "emp@example.com", "", entity.ErrInvalidArgument},
		{"malformed email", "not-an-email", "password1", entity.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.svc.Login(context.Background(), tt.email, tt.password)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthenticateRoundTrip(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employee := env.addEmployee(t, "emp@example.com", "password1")

	_, token, err := env.svc.Login(context.Background(), "emp@example.com", "password1")
	require.NoError(t, err)

	user, tokenID, err := env.svc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, employee.ID, user.ID)
	require.NotEmpty(t, tokenID)
}

func TestAuthenticateRevoked(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employee := env.addEmployee(t, "emp@example.com", "password1")

	user, token, err := env.svc.Login(context.Background(), "emp@example.com", "password1")
	require.NoError(t, err)
	require.Equal(t, employee.ID, user.ID)

	_, tokenID, err := env.svc.Authenticate(context.Background(), token)
	require.NoError(t, err)

	ctx := entity.CtxWithUser(context.Background(), user)
	ctx = entity.CtxWithTokenID(ctx, tokenID)
	require.NoError(t, env.svc.Logout(ctx))

	_, _, err = env.svc.Authenticate(context.Background(), token)
	require.ErrorIs(t, err, entity.ErrTokenRevoked)
}

func TestAuthenticateGarbage(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, _, err := env.svc.Authenticate(context.Background(), "not.a.jwt")
	require.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestLogoutAll(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employee := env.addEmployee(t, "emp@example.com", "password1")

	_, first, err := env.svc.Login(context.Background(), "emp@example.com", "password1")
	require.NoError(t, err)

	_, second, err := env.svc.Login(context.Background(), "emp@example.com", "password1")
	require.NoError(t, err)

	require.NoError(t, env.svc.LogoutAll(env.asUser(employee)))

	_, _, err = env.svc.Authenticate(context.Background(), first)
	require.ErrorIs(t, err, entity.ErrTokenRevoked)

	_, _, err = env.svc.Authenticate(context.Background(), second)
	require.ErrorIs(t, err, entity.ErrTokenRevoked)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	employee := env.addEmployee(t, "emp@example.com", "password1")

	updated, err := env.svc.UpdateProfile(env.asUser(employee), UpdateProfileInput{
		Name:       "New Name",
		BranchName: "Main Branch",
		Phone:      "+6281234567890",
	})
	require.NoError(t, err)
	require.Equal(t, "New Name", updated.Name)
	require.Equal(t, "Main Branch", updated.BranchName)

	stored := env.users.byID[employee.ID]
	require.Equal(t, "New Name", stored.Name)
}
