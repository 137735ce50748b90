package usecase

import (
	"context"
	"log"
	"time"

	"github.com/rsharda/kam-leads/internal/entity"
	"github.com/rsharda/kam-leads/internal/infra/queue"
)

type UpdateLeadStatusUseCase struct {
	Leads    entity.LeadRepositoryInterface
	Producer LeadEventProducerInterface
}

func NewUpdateLeadStatusUseCase(leads entity.LeadRepositoryInterface, producer LeadEventProducerInterface) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{
		Leads:    leads,
		Producer: producer,
	}
}

// Execute transitions a lead to input.Status, appending exactly one
// audit entry alongside the field write. A transition to the current
// status is not rejected; it still appends an entry. Nothing is
// mutated when the status is outside the enumerated set.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, leadID string, input UpdateLeadStatusInput) (*entity.Lead, error) {
	if !entity.IsValidLeadStatus(input.Status) {
		return nil, &InvalidStatusError{Status: input.Status}
	}

	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	updatedBy := input.UpdatedBy
	if updatedBy == "" {
		updatedBy = entity.DefaultUpdatedBy
	}

	change := entity.StatusChange{
		Status:    input.Status,
		UpdatedAt: time.Now(),
		UpdatedBy: updatedBy,
	}

	updated, err := uc.Leads.ApplyStatusChange(ctx, lead.ID, lead.Version, change, input.FileRef)
	if err != nil {
		return nil, err
	}

	if uc.Producer != nil {
		pubErr := uc.Producer.PublishLeadEvent(ctx, queue.LeadEventPayload{
			Event:          queue.EventLeadStatusChanged,
			LeadID:         updated.ID,
			RestaurantName: updated.RestaurantName,
			ContactName:    updated.ContactName,
			Status:         updated.Status,
			UpdatedBy:      updatedBy,
			AssignedTo:     updated.AssignedTo,
			OccurredAt:     time.Now(),
		})
		if pubErr != nil {
			log.Printf("⚠️ lead.status_changed event for %s not published: %v", updated.ID, pubErr)
		}
	}

	return updated, nil
}
