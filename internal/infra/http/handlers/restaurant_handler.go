package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rsharda/kam-leads/internal/entity"
)

type RestaurantHandler struct {
	Restaurants entity.RestaurantRepositoryInterface
}

func NewRestaurantHandler(restaurants entity.RestaurantRepositoryInterface) *RestaurantHandler {
	return &RestaurantHandler{Restaurants: restaurants}
}

// Create (POST /api/restaurants)
func (h *RestaurantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		City    string `json:"city"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if strings.TrimSpace(body.Name) == "" {
		writeMessage(w, http.StatusBadRequest, "name is required")
		return
	}

	restaurant := entity.NewRestaurant(body.Name, body.Address, body.City)
	if err := h.Restaurants.Insert(r.Context(), restaurant); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, restaurant)
}

// GetAll (GET /api/restaurants)
func (h *RestaurantHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

// GetOne (GET /api/restaurants/{id})
func (h *RestaurantHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Restaurants.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}
