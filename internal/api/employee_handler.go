package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/laundrify/backoffice/internal/entity"
	"github.com/laundrify/backoffice/internal/service"
)

func (h *Handler) EmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	overview, err := h.s.EmployeeDashboard(ctx)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, overview)
}

func (h *Handler) Customers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f := entity.CustomerFilter{
		Search:  r.URL.Query().Get("search"),
		Page:    queryUint(r, "page"),
		PerPage: queryUint(r, "per_page"),
	}

	customers, pagination, err := h.s.Customers(ctx, f)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, Response{
		Success:    true,
		Data:       customers,
		Pagination: pageInfoOf(pagination),
	})
}

type CustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (req CustomerRequest) toInput() service.CustomerInput {
	return service.CustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CustomerRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSON(ctx, w, http.StatusBadRequest, Response{Success: false, Message: "Invalid JSON."})
		return
	}

	customer, err := h.s.CreateCustomer(ctx, req.toInput())
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusCreated, customer)
}

func (h *Handler) Customer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	customer, err := h.s.Customer(ctx, id)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, customer)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	var req CustomerRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSON(ctx, w, http.StatusBadRequest, Response{Success: false, Message: "Invalid JSON."})
		return
	}

	customer, err := h.s.UpdateCustomer(ctx, id, req.toInput())
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, customer)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	err = h.s.DeleteCustomer(ctx, id)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendMessage(ctx, w, "Customer deleted successfully.")
}

func (h *Handler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	refs, err := h.s.SearchCustomers(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, refs)
}

func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f := entity.OrderFilter{
		Search:  r.URL.Query().Get("search"),
		Page:    queryUint(r, "page"),
		PerPage: queryUint(r, "per_page"),
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := entity.OrderStatus(raw)
		f.Status = &status
	}

	if raw := r.URL.Query().Get("payment_status"); raw != "" {
		status := entity.PaymentStatus(raw)
		f.PaymentStatus = &status
	}

	orders, pagination, err := h.s.Orders(ctx, f)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, Response{
		Success:    true,
		Data:       orders,
		Pagination: pageInfoOf(pagination),
	})
}

type CreateOrderRequest struct {
	CustomerID    uuid.UUID       `json:"customer_id"`
	PriceID       uuid.UUID       `json:"price_id"`
	Weight        decimal.Decimal `json:"weight"`
	Discount      int64           `json:"discount"`
	PaymentMethod string          `json:"payment_method"`
	OrderDate     *time.Time      `json:"order_date"`
	PickupDate    *time.Time      `json:"pickup_date"`
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSON(ctx, w, http.StatusBadRequest, Response{Success: false, Message: "Invalid JSON."})
		return
	}

	order, err := h.s.CreateOrder(ctx, service.CreateOrderInput{
		CustomerID:    req.CustomerID,
		PriceID:       req.PriceID,
		Weight:        req.Weight,
		Discount:      req.Discount,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		OrderDate:     req.OrderDate,
		PickupDate:    req.PickupDate,
	})
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusCreated, order)
}

func (h *Handler) Order(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	order, err := h.s.Order(ctx, id)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, order)
}

type UpdateOrderStatusRequest struct {
	Status        string     `json:"status"`
	PaymentStatus *string    `json:"payment_status"`
	PickupDate    *time.Time `json:"pickup_date"`
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	var req UpdateOrderStatusRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSON(ctx, w, http.StatusBadRequest, Response{Success: false, Message: "Invalid JSON."})
		return
	}

	in := service.UpdateOrderStatusInput{
		Status:     entity.OrderStatus(req.Status),
		PickupDate: req.PickupDate,
	}

	if req.PaymentStatus != nil {
		status := entity.PaymentStatus(*req.PaymentStatus)
		in.PaymentStatus = &status
	}

	order, err := h.s.UpdateOrderStatus(ctx, id, in)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, order)
}

func (h *Handler) ActivePrices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	prices, err := h.s.ActivePrices(ctx)
	if err != nil {
		SendErr(ctx, w, err)
		return
	}

	SendData(ctx, w, http.StatusOK, prices)
}
