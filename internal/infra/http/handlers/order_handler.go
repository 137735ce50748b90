package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rsharda/kam-leads/internal/entity"
)

type OrderHandler struct {
	Orders      entity.OrderRepositoryInterface
	Restaurants entity.RestaurantRepositoryInterface
}

func NewOrderHandler(orders entity.OrderRepositoryInterface, restaurants entity.RestaurantRepositoryInterface) *OrderHandler {
	return &OrderHandler{Orders: orders, Restaurants: restaurants}
}

// Create (POST /api/orders)
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RestaurantID string   `json:"restaurant_id"`
		Items        []string `json:"items"`
		TotalAmount  float64  `json:"total_amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if strings.TrimSpace(body.RestaurantID) == "" {
		writeMessage(w, http.StatusBadRequest, "restaurant_id is required")
		return
	}
	if len(body.Items) == 0 {
		writeMessage(w, http.StatusBadRequest, "items are required")
		return
	}
	if body.TotalAmount <= 0 {
		writeMessage(w, http.StatusBadRequest, "total_amount must be positive")
		return
	}

	if _, err := h.Restaurants.FindByID(r.Context(), body.RestaurantID); err != nil {
		writeError(w, err)
		return
	}

	order := entity.NewOrder(body.RestaurantID, body.Items, body.TotalAmount)
	if err := h.Orders.Insert(r.Context(), order); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetByRestaurant (GET /api/restaurants/{id}/orders)
func (h *OrderHandler) GetByRestaurant(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.FindByRestaurant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

// UpdateStatus (PUT /api/orders/{id}/status) follows the lead
// lifecycle pattern: enum check, audit append alongside the write.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if !entity.IsValidOrderStatus(body.Status) {
		writeMessage(w, http.StatusBadRequest, "Invalid status value")
		return
	}

	order, err := h.Orders.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	change := entity.OrderStatusChange{
		Status:    body.Status,
		UpdatedAt: time.Now(),
	}

	updated, err := h.Orders.ApplyStatusChange(r.Context(), order.ID, order.Version, change)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Order status updated successfully",
		"order":   updated,
	})
}
