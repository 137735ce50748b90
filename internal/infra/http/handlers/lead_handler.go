package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rsharda/kam-leads/internal/entity"
	"github.com/rsharda/kam-leads/internal/infra/http/middleware"
	"github.com/rsharda/kam-leads/internal/usecase"
)

// UploadStore persists a multipart attachment and returns the opaque
// reference recorded on the lead.
type UploadStore interface {
	Save(header *multipart.FileHeader) (string, error)
}

type LeadHandler struct {
	CreateUC      *usecase.CreateLeadUseCase
	UpdateStatus  *usecase.UpdateLeadStatusUseCase
	AssignUC      *usecase.AssignLeadUseCase
	LogCallUC     *usecase.LogCallUseCase
	CallHistoryUC *usecase.GetCallHistoryUseCase
	Leads         entity.LeadRepositoryInterface
	Uploads       UploadStore
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	updateStatusUC *usecase.UpdateLeadStatusUseCase,
	assignUC *usecase.AssignLeadUseCase,
	logCallUC *usecase.LogCallUseCase,
	callHistoryUC *usecase.GetCallHistoryUseCase,
	leads entity.LeadRepositoryInterface,
	uploads UploadStore,
) *LeadHandler {
	return &LeadHandler{
		CreateUC:      createUC,
		UpdateStatus:  updateStatusUC,
		AssignUC:      assignUC,
		LogCallUC:     logCallUC,
		CallHistoryUC: callHistoryUC,
		Leads:         leads,
		Uploads:       uploads,
	}
}

// Create (POST /api/leads) accepts JSON or multipart/form-data with an
// optional "file" part.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput

	if isMultipart(r) {
		if err := r.ParseMultipartForm(int64(10 << 20)); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
			return
		}

		input = usecase.CreateLeadInput{
			RestaurantName: r.FormValue("restaurant_name"),
			ContactName:    r.FormValue("contact_name"),
			ContactInfo:    r.FormValue("contact_info"),
			CallFrequency:  r.FormValue("call_frequency"),
			LastCallDate:   r.FormValue("last_call_date"),
			NextCallDate:   r.FormValue("next_call_date"),
			Status:         r.FormValue("status"),
			UpdatedBy:      r.FormValue("updatedBy"),
		}

		fileRef, err := h.saveUpload(r)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		input.FileRef = fileRef
	} else {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
			return
		}
	}

	if input.UpdatedBy == "" {
		if caller, ok := middleware.CallerFromContext(r.Context()); ok {
			input.UpdatedBy = caller.Username
		}
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Lead created successfully",
		"lead":    lead,
	})
}

// GetAll (GET /api/leads)
func (h *LeadHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"leads": leads})
}

// GetOne (GET /api/leads/{id})
func (h *LeadHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Leads.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// CallsDue (GET /api/leads/calls-due) lists leads whose next call date
// has passed.
func (h *LeadHandler) CallsDue(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.FindDueForCall(r.Context(), time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"leads": leads})
}

// UpdateStatusAndFile (PUT /api/leads/{id}/status) accepts JSON or
// multipart/form-data with an optional replacement attachment.
func (h *LeadHandler) UpdateStatusAndFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.UpdateLeadStatusInput

	if isMultipart(r) {
		if err := r.ParseMultipartForm(int64(10 << 20)); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
			return
		}
		input.Status = r.FormValue("status")

		fileRef, err := h.saveUpload(r)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		input.FileRef = fileRef
	} else {
		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
			return
		}
		input.Status = body.Status
	}

	if caller, ok := middleware.CallerFromContext(r.Context()); ok {
		input.UpdatedBy = caller.Username
	}

	lead, err := h.UpdateStatus.Execute(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordStatusTransition(lead.Status)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Lead status and file updated successfully",
		"lead":    lead,
	})
}

// Assign (PUT /api/leads/{id}/assign)
func (h *LeadHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.AssignLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	lead, err := h.AssignUC.Execute(r.Context(), id, input.AssignedTo)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordAssignment()
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Lead assigned successfully",
		"lead":    lead,
	})
}

// LogCall (POST /api/leads/{id}/calls)
func (h *LeadHandler) LogCall(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.LogCallInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if input.CallBy == "" {
		if caller, ok := middleware.CallerFromContext(r.Context()); ok {
			input.CallBy = caller.Username
		}
	}

	history, err := h.LogCallUC.Execute(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordCallLogged()
	writeJSON(w, http.StatusCreated, map[string]any{"call_history": history})
}

// GetCallHistory (GET /api/leads/{id}/call-history)
func (h *LeadHandler) GetCallHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.CallHistoryUC.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"call_history": history})
}

// Update (PUT /api/leads/{id}) is the generic CRUD path outside the
// lifecycle core; status and histories are not editable through it.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		RestaurantName string  `json:"restaurant_name"`
		ContactName    string  `json:"contact_name"`
		ContactInfo    string  `json:"contact_info"`
		CallFrequency  string  `json:"call_frequency"`
		LastCallDate   string  `json:"last_call_date"`
		NextCallDate   string  `json:"next_call_date"`
		Score          float64 `json:"score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	lead, err := h.Leads.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if body.RestaurantName != "" {
		lead.RestaurantName = body.RestaurantName
	}
	if body.ContactName != "" {
		lead.ContactName = body.ContactName
	}
	if body.ContactInfo != "" {
		lead.ContactInfo = body.ContactInfo
	}
	if body.CallFrequency != "" {
		lead.CallFrequency = body.CallFrequency
	}
	if body.LastCallDate != "" {
		if t, err := time.Parse("2006-01-02", body.LastCallDate); err == nil {
			lead.LastCallDate = t
		}
	}
	if body.NextCallDate != "" {
		if t, err := time.Parse("2006-01-02", body.NextCallDate); err == nil {
			lead.NextCallDate = t
		}
	}
	if body.Score != 0 {
		lead.Score = body.Score
	}

	if err := h.Leads.Update(r.Context(), lead); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// Delete (DELETE /api/leads/{id})
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Leads.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Lead deleted successfully")
}

func (h *LeadHandler) saveUpload(r *http.Request) (string, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File["file"]) == 0 {
		return "", nil
	}
	return h.Uploads.Save(r.MultipartForm.File["file"][0])
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}
