package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	InteractionTypeCall  = "call"
	InteractionTypeOrder = "order"
)

func IsValidInteractionType(t string) bool {
	return t == InteractionTypeCall || t == InteractionTypeOrder
}

type Interaction struct {
	ID              string    `json:"id" bson:"_id"`
	LeadID          string    `json:"leadId" bson:"lead_id"`
	InteractionType string    `json:"interactionType" bson:"interaction_type"`
	Date            time.Time `json:"date" bson:"date"`
	Notes           string    `json:"notes,omitempty" bson:"notes,omitempty"`
}

func NewInteraction(leadID, interactionType, notes string, date time.Time) *Interaction {
	if date.IsZero() {
		date = time.Now()
	}
	return &Interaction{
		ID:              uuid.New().String(),
		LeadID:          leadID,
		InteractionType: interactionType,
		Date:            date,
		Notes:           notes,
	}
}

type InteractionRepositoryInterface interface {
	Insert(ctx context.Context, interaction *Interaction) error
	FindByLead(ctx context.Context, leadID string) ([]Interaction, error)
}
