package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/laundrify/backoffice/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Login)

			r.Group(func(r chi.Router) {
				r.Use(mw.BearerAuth)
				r.Get("/profile", h.Profile)
				r.Put("/profile", h.UpdateProfile)
				r.Post("/logout", h.Logout)
				r.Post("/logout-all", h.LogoutAll)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.BearerAuth, mw.RequireRole(entity.RoleAdmin))

			r.Get("/dashboard", h.AdminDashboard)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employees)
				r.Post("/", h.CreateEmployee)
				r.Get("/{id}", h.Employee)
				r.Put("/{id}", h.UpdateEmployee)
				r.Delete("/{id}", h.DeleteEmployee)
			})

			r.Route("/prices", func(r chi.Router) {
				r.Get("/", h.Prices)
				r.Post("/", h.CreatePrice)
				r.Get("/{id}", h.Price)
				r.Put("/{id}", h.UpdatePrice)
				r.Delete("/{id}", h.DeletePrice)
			})
		})

		r.Route("/employee", func(r chi.Router) {
			r.Use(mw.BearerAuth, mw.RequireRole(entity.RoleEmployee, entity.RoleAdmin))

			r.Get("/dashboard", h.EmployeeDashboard)
			r.Get("/prices", h.ActivePrices)

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", h.Customers)
				r.Post("/", h.CreateCustomer)
				r.Get("/search", h.SearchCustomers)
				r.Get("/{id}", h.Customer)
				r.Put("/{id}", h.UpdateCustomer)
				r.Delete("/{id}", h.DeleteCustomer)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.Orders)
				r.Post("/", h.CreateOrder)
				r.Get("/{id}", h.Order)
				r.Put("/{id}/status", h.UpdateOrderStatus)
			})
		})
	})

	return mux
}
