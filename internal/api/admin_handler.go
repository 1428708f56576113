package api

import (
	"encoding/json"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/laundrify/backoffice/internal/entity"
	"github.com/laundrify/backoffice/internal/service"
)

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	overview, err := h.s.AdminDashboard(ctx)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, overview)
}

func (h *Handler) Employees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f := entity.EmployeeFilter{
		Search:   r.URL.Query().Get("search"),
		IsActive: queryBoolPtr(r, "is_active"),
		Page:     queryUint(r, "page"),
		PerPage:  queryUint(r, "per_page"),
		SortBy:   entity.EmployeeSortCol(r.URL.Query().Get("sort_by")),
		SortDir:  entity.SortDir(r.URL.Query().Get("sort_dir")),
	}

	employees, pagination, err := h.s.Employees(ctx, f)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, Response{
		Success: true,
		Data:    employees,
		Meta:    metaOf(pagination),
	})
}

type EmployeeRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	IsActive      *bool  `json:"is_active"`
	BranchName    string `json:"branch_name"`
	BranchAddress string `json:"branch_address"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EmployeeRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSON(ctx, w, http.StatusBadRequest, Response{Success: false, Message: "Invalid JSON."})
		return
	}

	employee, err := h.s.CreateEmployee(ctx, service.CreateEmployeeInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		BranchName:    req.BranchName,
		BranchAddress: req.BranchAddress,
		Address:       req.Address,
		Phone:         req.Phone,
	})
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusCreated, employee)
}

func (h *Handler) Employee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	detail, err := h.s.Employee(ctx, id)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, detail)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	var req EmployeeRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSON(ctx, w, http.StatusBadRequest, Response{Success: false, Message: "Invalid JSON."})
		return
	}

	employee, err := h.s.UpdateEmployee(ctx, id, service.UpdateEmployeeInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		IsActive:      req.IsActive,
		BranchName:    req.BranchName,
		BranchAddress: req.BranchAddress,
		Address:       req.Address,
		Phone:         req.Phone,
	})
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	err = h.s.DeleteEmployee(ctx, id)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendMessage(ctx, w, "Employee deleted successfully.")
}

func (h *Handler) Prices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f := entity.PriceFilter{
		Search:   r.URL.Query().Get("search"),
		IsActive: queryBoolPtr(r, "is_active"),
		Page:     queryUint(r, "page"),
		PerPage:  queryUint(r, "per_page"),
		SortBy:   entity.PriceSortCol(r.URL.Query().Get("sort_by")),
		SortDir:  entity.SortDir(r.URL.Query().Get("sort_dir")),
	}

	if raw := r.URL.Query().Get("user_id"); raw != "" {
		userID, err := uuid.FromString(raw)
		if err == nil {
			f.UserID = &userID
		}
	}

	prices, pagination, err := h.s.Prices(ctx, f)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, Response{
		Success: true,
		Data:    prices,
		Meta:    metaOf(pagination),
	})
}

type PriceRequest struct {
	UserID      uuid.UUID       `json:"user_id"`
	ServiceType string          `json:"service_type"`
	Price       decimal.Decimal `json:"price"`
	Duration    int32           `json:"duration"`
	IsActive    *bool           `json:"is_active"`
}

func (req PriceRequest) toInput() service.PriceInput {
	return service.PriceInput{
		UserID:      req.UserID,
		ServiceType: req.ServiceType,
		Price:       req.Price,
		Duration:    req.Duration,
		IsActive:    req.IsActive,
	}
}

func (h *Handler) CreatePrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PriceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSON(ctx, w, http.StatusBadRequest, Response{Success: false, Message: "Invalid JSON."})
		return
	}

	price, err := h.s.CreatePrice(ctx, req.toInput())
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusCreated, price)
}

func (h *Handler) Price(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	price, err := h.s.Price(ctx, id)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, price)
}

func (h *Handler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	var req PriceRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSON(ctx, w, http.StatusBadRequest, Response{Success: false, Message: "Invalid JSON."})
		return
	}

	price, err := h.s.UpdatePrice(ctx, id, req.toInput())
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, price)
}

func (h *Handler) DeletePrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	err = h.s.DeletePrice(ctx, id)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendMessage(ctx, w, "Price deleted successfully.")
}
