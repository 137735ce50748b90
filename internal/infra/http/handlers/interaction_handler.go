package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rsharda/kam-leads/internal/entity"
)

type InteractionHandler struct {
	Interactions entity.InteractionRepositoryInterface
	Leads        entity.LeadRepositoryInterface
}

func NewInteractionHandler(interactions entity.InteractionRepositoryInterface, leads entity.LeadRepositoryInterface) *InteractionHandler {
	return &InteractionHandler{Interactions: interactions, Leads: leads}
}

// Create (POST /api/interactions)
func (h *InteractionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		LeadID          string `json:"leadId"`
		InteractionType string `json:"interactionType"`
		Date            string `json:"date"`
		Notes           string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if strings.TrimSpace(body.LeadID) == "" {
		writeMessage(w, http.StatusBadRequest, "leadId is required")
		return
	}
	if !entity.IsValidInteractionType(body.InteractionType) {
		writeMessage(w, http.StatusBadRequest, "interactionType must be call or order")
		return
	}

	if _, err := h.Leads.FindByID(r.Context(), body.LeadID); err != nil {
		writeError(w, err)
		return
	}

	var date time.Time
	if body.Date != "" {
		parsed, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, body.Date)
		}
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "date must be a valid date (YYYY-MM-DD or RFC3339)")
			return
		}
		date = parsed
	}

	interaction := entity.NewInteraction(body.LeadID, body.InteractionType, body.Notes, date)
	if err := h.Interactions.Insert(r.Context(), interaction); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, interaction)
}

// GetByLead (GET /api/interactions/{leadId})
func (h *InteractionHandler) GetByLead(w http.ResponseWriter, r *http.Request) {
	interactions, err := h.Interactions.FindByLead(r.Context(), chi.URLParam(r, "leadId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"interactions": interactions})
}
