package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/order-registry/internal/order-service/domain"
	"github.com/jcmexdev/order-registry/internal/order-service/registry"
	"github.com/jcmexdev/order-registry/internal/pkg/metrics"
)

// Handler exposes the order registry over HTTP as a small repository
// surface: create, list, fetch and delete.
type Handler struct {
	reg     *registry.Registry
	metrics *metrics.Registry // nil-safe: counting skipped if nil
	nextID  atomic.Int64
}

// NewHandler initializes the handler with the registry it serves.
// seed is the first order ID the handler will assign.
func NewHandler(reg *registry.Registry, m *metrics.Registry, seed int) *Handler {
	h := &Handler{reg: reg, metrics: m}
	h.nextID.Store(int64(seed - 1))
	return h
}

// CreateOrder validates the request, builds the order through the
// factory and registers it. An unknown discount tag aborts before
// anything is stored.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if req.Customer == "" || len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "customer and items are required")
		return
	}

	items := make([]domain.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Name == "" || it.Quantity < 0 || it.UnitPrice < 0 {
			writeError(w, http.StatusBadRequest, "invalid_item", "name is required and quantity and unit_price must not be negative")
			return
		}
		items = append(items, domain.LineItem{
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}

	status := domain.Status(req.Status)
	if req.Status == "" {
		status = domain.StatusPending
	}
	discountType := domain.DiscountType(req.DiscountType)
	if req.DiscountType == "" {
		discountType = domain.DiscountNone
	}

	id := int(h.nextID.Add(1))
	order, err := domain.CreateOrder(id, domain.Customer{Name: req.Customer}, items, status, discountType, req.DiscountValue)
	if err != nil {
		if domain.IsUnknownDiscountType(err) {
			writeError(w, http.StatusBadRequest, "unknown_discount_type", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "order_creation_failed", err.Error())
		return
	}

	slog.InfoContext(r.Context(), "registering order", "order_id", order.ID(), "customer", order.CustomerName())
	h.reg.Add(order)

	writeJSON(w, http.StatusCreated, mapOrderToResponse(order))
}

// ListOrders returns every registered entry in insertion order.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	entries := h.reg.Entries()
	out := make([]OrderResponse, len(entries))
	for i, e := range entries {
		out[i] = mapEntryToResponse(e)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetOrderByID retrieves a single entry by its numeric ID.
func (h *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	entry, found := h.reg.Get(id)
	if !found {
		writeError(w, http.StatusNotFound, "order_not_found", "")
		return
	}

	writeJSON(w, http.StatusOK, mapEntryToResponse(entry))
}

// DeleteOrder removes every entry with the given ID.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	removed := h.reg.Remove(id)
	if removed == 0 {
		writeError(w, http.StatusNotFound, "order_not_found", "")
		return
	}
	if h.metrics != nil {
		h.metrics.OrdersRemoved.Add(float64(removed))
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_order_id", "order id must be an integer")
		return 0, false
	}
	return id, true
}

// mapOrderToResponse converts a native order, items included.
func mapOrderToResponse(order *domain.Order) OrderResponse {
	items := order.Items()
	out := make([]LineItemDTO, len(items))
	for i, it := range items {
		out[i] = LineItemDTO{
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		}
	}
	return OrderResponse{
		ID:       order.ID(),
		Customer: order.CustomerName(),
		Status:   string(order.Status()),
		Items:    out,
		Total:    order.Total(),
	}
}

// mapEntryToResponse converts any registrable entry. Adapted legacy
// orders have no status or item view, so only native orders carry them.
func mapEntryToResponse(e domain.Registrable) OrderResponse {
	if order, ok := e.(*domain.Order); ok {
		return mapOrderToResponse(order)
	}
	return OrderResponse{
		ID:       e.ID(),
		Customer: e.CustomerName(),
		Total:    e.Total(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
