package api

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/laundrify/backoffice/internal/entity"
	"github.com/laundrify/backoffice/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

type AuthService interface {
	Authenticate(ctx context.Context, accessToken string) (entity.User, uuid.UUID, error)
}

type Middleware struct {
	auth AuthService
}

func NewMiddleware(auth AuthService) *Middleware {
	return &Middleware{auth: auth}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			slog.InfoContext(ctx, "incoming request",
				"method", r.Method,
				"path", r.URL.Redacted(),
				"remote", r.RemoteAddr,
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendJSON(ctx, w, http.StatusInternalServerError, Response{Success: false, Message: "Internal server error."})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// BearerAuth verifies the bearer token and puts the user on the context.
func (m *Middleware) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendErr(ctx, w, entity.ErrUnauthenticated)
			return
		}

		user, tokenID, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			SendErr(ctx, w, err)
			return
		}

		ctx = entity.CtxWithUser(ctx, user)
		ctx = entity.CtxWithTokenID(ctx, tokenID)
		ctx = logger.WithUserID(ctx, user.ID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a subtree to the listed roles. It runs after BearerAuth.
func (m *Middleware) RequireRole(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := entity.UserFromCtx(ctx)
			if err != nil {
				SendErr(ctx, w, err)
				return
			}

			if !slices.Contains(roles, user.Role) {
				SendErr(ctx, w, entity.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
