package api

import (
	"encoding/json"
	"net/http"

	"github.com/laundrify/backoffice/internal/entity"
	"github.com/laundrify/backoffice/internal/service"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User      entity.User `json:"user"`
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSON(ctx, w, http.StatusBadRequest, Response{Success: false, Message: "Invalid JSON."})
		return
	}

	user, token, err := h.s.Login(ctx, req.Email, req.Password)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, LoginResponse{User: user, Token: token, TokenType: "Bearer"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.Logout(ctx)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendMessage(ctx, w, "Logged out successfully.")
}

func (h *Handler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.LogoutAll(ctx)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendMessage(ctx, w, "Logged out from all devices.")
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.s.Profile(ctx)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, user)
}

type UpdateProfileRequest struct {
	Name          string `json:"name"`
	BranchName    string `json:"branch_name"`
	BranchAddress string `json:"branch_address"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateProfileRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSON(ctx, w, http.StatusBadRequest, Response{Success: false, Message: "Invalid JSON."})
		return
	}

	user, err := h.s.UpdateProfile(ctx, service.UpdateProfileInput{
		Name:          req.Name,
		BranchName:    req.BranchName,
		BranchAddress: req.BranchAddress,
		Address:       req.Address,
		Phone:         req.Phone,
	})
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, user)
}
