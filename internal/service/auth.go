package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/laundrify/backoffice/internal/entity"
)

// Login authenticates by email and password and issues a bearer token.
// A missing user and a wrong password are reported identically.
func (s *Service) Login(ctx context.Context, email, password string) (entity.User, string, error) {
	fields := entity.FieldErrors{}
	if !validEmail(email) {
		fields["email"] = "a valid email is required"
	}

	if password == "" {
		fields["password"] = "password is required"
	}

	if len(fields) > 0 {
		return entity.User{}, "", fields
	}

	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, "", entity.ErrInvalidCredentials
		}

		return entity.User{}, "", fmt.Errorf("find user by email: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return entity.User{}, "", entity.ErrInvalidCredentials
	}

	if !user.IsActive {
		return entity.User{}, "", entity.ErrInactiveAccount
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return entity.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *Service) issueToken(ctx context.Context, user entity.User) (string, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.TokenTTL)
	tokenID := uuid.Must(uuid.NewV4())

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, entity.AuthClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	err = s.tokens.SaveToken(ctx, entity.Token{
		ID:        tokenID,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	})
	if err != nil {
		return "", fmt.Errorf("save token: %w", err)
	}

	return signed, nil
}

// Authenticate validates a bearer token: signature, expiry, the token row
// still being present (revocation) and the account still being active.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (entity.User, uuid.UUID, error) {
	var claims entity.AuthClaims

	token, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.User{}, uuid.Nil, entity.ErrTokenExpired
		}

		return entity.User{}, uuid.Nil, fmt.Errorf("parse token: %w", entity.ErrInvalidToken)
	}

	if !token.Valid {
		return entity.User{}, uuid.Nil, entity.ErrInvalidToken
	}

	tokenID, err := uuid.FromString(claims.ID)
	if err != nil {
		return entity.User{}, uuid.Nil, entity.ErrInvalidToken
	}

	err = s.tokens.FindToken(ctx, tokenID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, uuid.Nil, entity.ErrTokenRevoked
		}

		return entity.User{}, uuid.Nil, fmt.Errorf("find token: %w", err)
	}

	user, err := s.users.User(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, uuid.Nil, entity.ErrInvalidToken
		}

		return entity.User{}, uuid.Nil, fmt.Errorf("load user: %w", err)
	}

	if !user.IsActive {
		return entity.User{}, uuid.Nil, entity.ErrInactiveAccount
	}

	return user, tokenID, nil
}

// Logout revokes the credential the request arrived with.
func (s *Service) Logout(ctx context.Context) error {
	tokenID := entity.TokenIDFromCtx(ctx)
	if tokenID == uuid.Nil {
		return entity.ErrUnauthenticated
	}

	err := s.tokens.DeleteToken(ctx, tokenID)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}

	return nil
}

// LogoutAll revokes every credential issued to the authenticated user.
func (s *Service) LogoutAll(ctx context.Context) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.tokens.DeleteByUser(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("delete tokens: %w", err)
	}

	return nil
}

func (s *Service) Profile(ctx context.Context) (entity.User, error) {
	return entity.UserFromCtx(ctx)
}

type UpdateProfileInput struct {
	Name          string
	BranchName    string
	BranchAddress string
	Address       string
	Phone         string
}

func (in UpdateProfileInput) validate() error {
	fields := entity.FieldErrors{}

	if !validName(in.Name) {
		fields["name"] = "name is required and must not exceed 255 characters"
	}

	if !validPhone(in.Phone) {
		fields["phone"] = "phone must not exceed 20 characters"
	}

	if len(fields) > 0 {
		return fields
	}

	return nil
}

func (s *Service) UpdateProfile(ctx context.Context, in UpdateProfileInput) (entity.User, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.User{}, err
	}

	if err := in.validate(); err != nil {
		return entity.User{}, err
	}

	user.Name = in.Name
	user.BranchName = in.BranchName
	user.BranchAddress = in.BranchAddress
	user.Address = in.Address
	user.Phone = in.Phone
	user.UpdatedAt = time.Now()

	err = s.users.UpdateUser(ctx, user)
	if err != nil {
		return entity.User{}, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

// DeleteExpiredTokens backs the periodic cleanup job.
func (s *Service) DeleteExpiredTokens(ctx context.Context) error {
	return s.tokens.DeleteExpired(ctx)
}
