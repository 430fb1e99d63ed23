package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the order routes and, when given, the metrics handler.
func NewRouter(handler *Handler, metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/orders", handler.CreateOrder)
	r.Get("/orders", handler.ListOrders)
	r.Get("/orders/{id}", handler.GetOrderByID)
	r.Delete("/orders/{id}", handler.DeleteOrder)

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}
	return r
}
