package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/rsharda/kam-leads/internal/entity"
	"github.com/rsharda/kam-leads/internal/infra/queue"
)

type AssignLeadUseCase struct {
	Leads    entity.LeadRepositoryInterface
	Producer LeadEventProducerInterface
}

func NewAssignLeadUseCase(leads entity.LeadRepositoryInterface, producer LeadEventProducerInterface) *AssignLeadUseCase {
	return &AssignLeadUseCase{
		Leads:    leads,
		Producer: producer,
	}
}

// Execute hands the lead to a KAM. Re-assigning the lead to its
// current owner is rejected with AlreadyAssignedError and leaves the
// lead untouched; this is the single assignment entry point.
func (uc *AssignLeadUseCase) Execute(ctx context.Context, leadID, assignedTo string) (*entity.Lead, error) {
	if strings.TrimSpace(assignedTo) == "" {
		return nil, ValidationErrors{{Field: "assignedTo", Message: "is required"}}
	}

	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if lead.AssignedTo == assignedTo {
		return nil, &AlreadyAssignedError{LeadID: lead.ID, AssignedTo: assignedTo}
	}

	updated, err := uc.Leads.ApplyAssignment(ctx, lead.ID, lead.Version, assignedTo)
	if err != nil {
		return nil, err
	}

	if uc.Producer != nil {
		pubErr := uc.Producer.PublishLeadEvent(ctx, queue.LeadEventPayload{
			Event:          queue.EventLeadAssigned,
			LeadID:         updated.ID,
			RestaurantName: updated.RestaurantName,
			ContactName:    updated.ContactName,
			Status:         updated.Status,
			AssignedTo:     updated.AssignedTo,
			NextCallDate:   updated.NextCallDate,
			OccurredAt:     time.Now(),
		})
		if pubErr != nil {
			log.Printf("⚠️ lead.assigned event for %s not published: %v", updated.ID, pubErr)
		}
	}

	return updated, nil
}
