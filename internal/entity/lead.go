package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead statuses. Every status change is recorded in StatusHistory.
const (
	LeadStatusNew        = "New"
	LeadStatusInProgress = "In Progress"
	LeadStatusFollowUp   = "Follow-up"
	LeadStatusClosed     = "Closed"
)

// DefaultUpdatedBy is recorded when no authenticated caller is known.
const DefaultUpdatedBy = "System"

func IsValidLeadStatus(status string) bool {
	switch status {
	case LeadStatusNew, LeadStatusInProgress, LeadStatusFollowUp, LeadStatusClosed:
		return true
	}
	return false
}

// StatusChange is one entry of a lead's append-only status audit trail.
type StatusChange struct {
	Status    string    `json:"status" bson:"status"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
	UpdatedBy string    `json:"updatedBy" bson:"updated_by"`
}

// CallRecord is one entry of a lead's call log. Duration is in seconds.
type CallRecord struct {
	CallDate time.Time `json:"call_date" bson:"call_date"`
	Duration int       `json:"duration" bson:"duration"`
	CallBy   string    `json:"call_by" bson:"call_by"`
	Purpose  string    `json:"purpose" bson:"purpose"`
	Notes    string    `json:"notes,omitempty" bson:"notes,omitempty"`
}

type Lead struct {
	ID             string         `json:"id" bson:"_id"`
	RestaurantName string         `json:"restaurant_name" bson:"restaurant_name"`
	ContactName    string         `json:"contact_name" bson:"contact_name"`
	ContactInfo    string         `json:"contact_info" bson:"contact_info"`
	CallFrequency  string         `json:"call_frequency" bson:"call_frequency"`
	LastCallDate   time.Time      `json:"last_call_date" bson:"last_call_date"`
	NextCallDate   time.Time      `json:"next_call_date" bson:"next_call_date"`
	Score          float64        `json:"score" bson:"score"`
	Status         string         `json:"status" bson:"status"`
	StatusHistory  []StatusChange `json:"status_history" bson:"status_history"`
	File           string         `json:"file,omitempty" bson:"file,omitempty"`
	AssignedTo     string         `json:"assignedTo,omitempty" bson:"assigned_to,omitempty"`
	LastUpdated    time.Time      `json:"lastUpdated" bson:"last_updated"`
	CallHistory    []CallRecord   `json:"call_history" bson:"call_history"`

	// Version guards read-modify-write races: mutating repository
	// operations match on {_id, version} and bump it on every write.
	Version int64 `json:"-" bson:"version"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewLead builds a lead with exactly one status history entry seeded.
// The seeded entry always mirrors the initial status.
func NewLead(restaurantName, contactName, contactInfo, callFrequency string, lastCall, nextCall time.Time, status, updatedBy, file string) *Lead {
	if status == "" {
		status = LeadStatusNew
	}
	if updatedBy == "" {
		updatedBy = DefaultUpdatedBy
	}

	now := time.Now()
	return &Lead{
		ID:             uuid.New().String(),
		RestaurantName: restaurantName,
		ContactName:    contactName,
		ContactInfo:    contactInfo,
		CallFrequency:  callFrequency,
		LastCallDate:   lastCall,
		NextCallDate:   nextCall,
		Status:         status,
		StatusHistory: []StatusChange{{
			Status:    status,
			UpdatedAt: now,
			UpdatedBy: updatedBy,
		}},
		File:        file,
		LastUpdated: now,
		CallHistory: []CallRecord{},
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CurrentStatusEntry returns the newest audit entry. After any
// successful mutation it matches Lead.Status.
func (l *Lead) CurrentStatusEntry() *StatusChange {
	if len(l.StatusHistory) == 0 {
		return nil
	}
	return &l.StatusHistory[len(l.StatusHistory)-1]
}

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	FindAll(ctx context.Context) ([]Lead, error)
	FindDueForCall(ctx context.Context, now time.Time) ([]Lead, error)

	// ApplyStatusChange sets the status (and, when fileRef is not
	// empty, the file reference), appends the audit entry and
	// refreshes lastUpdated in one write guarded by version.
	ApplyStatusChange(ctx context.Context, id string, version int64, change StatusChange, fileRef string) (*Lead, error)

	// ApplyAssignment sets assignedTo and refreshes lastUpdated,
	// guarded by version.
	ApplyAssignment(ctx context.Context, id string, version int64, assignedTo string) (*Lead, error)

	// AppendCall appends one record to call_history, guarded by
	// version.
	AppendCall(ctx context.Context, id string, version int64, record CallRecord) (*Lead, error)

	Update(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, id string) error
}
