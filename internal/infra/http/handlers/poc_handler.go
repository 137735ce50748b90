package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rsharda/kam-leads/internal/entity"
)

type POCHandler struct {
	POCs        entity.POCRepositoryInterface
	Restaurants entity.RestaurantRepositoryInterface
}

func NewPOCHandler(pocs entity.POCRepositoryInterface, restaurants entity.RestaurantRepositoryInterface) *POCHandler {
	return &POCHandler{POCs: pocs, Restaurants: restaurants}
}

// Create (POST /api/pocs)
func (h *POCHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RestaurantID string `json:"restaurant_id"`
		Name         string `json:"name"`
		Role         string `json:"role"`
		PhoneNumber  string `json:"phone_number"`
		Email        string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if strings.TrimSpace(body.RestaurantID) == "" || strings.TrimSpace(body.Name) == "" {
		writeMessage(w, http.StatusBadRequest, "restaurant_id and name are required")
		return
	}

	// The referenced restaurant must exist; POCs are never orphaned at
	// creation time.
	if _, err := h.Restaurants.FindByID(r.Context(), body.RestaurantID); err != nil {
		writeError(w, err)
		return
	}

	poc := entity.NewPOC(body.RestaurantID, body.Name, body.Role, body.PhoneNumber, body.Email)
	if err := h.POCs.Insert(r.Context(), poc); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "POC added successfully",
		"poc":     poc,
	})
}

// GetByRestaurant (GET /api/restaurants/{id}/pocs)
func (h *POCHandler) GetByRestaurant(w http.ResponseWriter, r *http.Request) {
	pocs, err := h.POCs.FindByRestaurant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pocs)
}

// GetOne (GET /api/pocs/{id})
func (h *POCHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	poc, err := h.POCs.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, poc)
}

// Update (PUT /api/pocs/{id})
func (h *POCHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Name        string `json:"name"`
		Role        string `json:"role"`
		PhoneNumber string `json:"phone_number"`
		Email       string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	poc, err := h.POCs.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if body.Name != "" {
		poc.Name = body.Name
	}
	if body.Role != "" {
		poc.Role = body.Role
	}
	if body.PhoneNumber != "" {
		poc.PhoneNumber = body.PhoneNumber
	}
	if body.Email != "" {
		poc.Email = body.Email
	}

	if err := h.POCs.Update(r.Context(), poc); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "POC updated successfully",
		"poc":     poc,
	})
}

// Delete (DELETE /api/pocs/{id})
func (h *POCHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.POCs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "POC deleted successfully")
}
