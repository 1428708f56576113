package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/laundrify/backoffice/internal/entity"
)

// Response is the envelope every endpoint answers with. Admin list endpoints
// fill Meta, employee list endpoints fill Pagination; the two shapes are kept
// apart because the two frontends read different keys.
type Response struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       any               `json:"data,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	Meta       *Meta             `json:"meta,omitempty"`
	Pagination *PageInfo         `json:"pagination,omitempty"`
}

type Meta struct {
	CurrentPage uint64 `json:"current_page"`
	LastPage    uint64 `json:"last_page"`
	PerPage     uint64 `json:"per_page"`
	Total       int    `json:"total"`
}

type PageInfo struct {
	CurrentPage uint64 `json:"current_page"`
	TotalPages  uint64 `json:"total_pages"`
	TotalItems  int    `json:"total_items"`
	PerPage     uint64 `json:"per_page"`
}

func metaOf(p entity.Pagination) *Meta {
	return &Meta{
		CurrentPage: p.CurrentPage,
		LastPage:    p.LastPage,
		PerPage:     p.PerPage,
		Total:       p.Total,
	}
}

func pageInfoOf(p entity.Pagination) *PageInfo {
	return &PageInfo{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.LastPage,
		TotalItems:  p.Total,
		PerPage:     p.PerPage,
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

func SendData(ctx context.Context, w http.ResponseWriter, code int, data any) {
	SendJSON(ctx, w, code, Response{Success: true, Data: data})
}

func SendMessage(ctx context.Context, w http.ResponseWriter, msg string) {
	SendJSON(ctx, w, http.StatusOK, Response{Success: true, Message: msg})
}

// SendErr translates service errors into the envelope and status code the
// clients expect. Validation problems carry the per-field detail.
func SendErr(ctx context.Context, w http.ResponseWriter, err error) {
	var fields entity.FieldErrors
	if errors.As(err, &fields) {
		SendJSON(ctx, w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Message: "The given data was invalid.",
			Errors:  fields,
		})

		return
	}

	code, msg := errStatus(err)
	if code == http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", err.Error())
	}

	SendJSON(ctx, w, code, Response{Success: false, Message: msg})
}

func errStatus(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusUnprocessableEntity, "Invalid credentials."
	case errors.Is(err, entity.ErrInactiveAccount):
		return http.StatusForbidden, "This account has been deactivated."
	case errors.Is(err, entity.ErrTokenExpired):
		return http.StatusUnauthorized, "Token has expired."
	case errors.Is(err, entity.ErrTokenRevoked):
		return http.StatusUnauthorized, "Token has been revoked."
	case errors.Is(err, entity.ErrInvalidToken):
		return http.StatusUnauthorized, "Token is invalid."
	case errors.Is(err, entity.ErrUnauthenticated):
		return http.StatusUnauthorized, "Unauthenticated."
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden, "This action is not allowed."
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, "Resource not found."
	case errors.Is(err, entity.ErrConflict):
		return http.StatusBadRequest, "Resource is still referenced and cannot be removed."
	case errors.Is(err, entity.ErrInvalidArgument):
		return http.StatusUnprocessableEntity, "The given data was invalid."
	}

	return http.StatusInternalServerError, "Internal server error."
}
