package usecase

import (
	"context"
	"log"
	"time"

	"github.com/rsharda/kam-leads/internal/entity"
	"github.com/rsharda/kam-leads/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Leads    entity.LeadRepositoryInterface
	Producer LeadEventProducerInterface
}

func NewCreateLeadUseCase(leads entity.LeadRepositoryInterface, producer LeadEventProducerInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Leads:    leads,
		Producer: producer,
	}
}

// Execute validates the payload, persists a lead whose status history
// is seeded with exactly one entry, and publishes lead.created.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	lastCall, _ := parseDate(input.LastCallDate)
	nextCall, _ := parseDate(input.NextCallDate)

	lead := entity.NewLead(
		input.RestaurantName,
		input.ContactName,
		input.ContactInfo,
		input.CallFrequency,
		lastCall,
		nextCall,
		input.Status,
		input.UpdatedBy,
		input.FileRef,
	)

	if err := uc.Leads.Insert(ctx, lead); err != nil {
		return nil, &StoreError{Op: "insert lead", Err: err}
	}

	uc.publish(ctx, lead)

	return lead, nil
}

func (uc *CreateLeadUseCase) publish(ctx context.Context, lead *entity.Lead) {
	if uc.Producer == nil {
		return
	}

	err := uc.Producer.PublishLeadEvent(ctx, queue.LeadEventPayload{
		Event:          queue.EventLeadCreated,
		LeadID:         lead.ID,
		RestaurantName: lead.RestaurantName,
		ContactName:    lead.ContactName,
		Status:         lead.Status,
		UpdatedBy:      lead.StatusHistory[0].UpdatedBy,
		OccurredAt:     time.Now(),
	})
	if err != nil {
		// The lead is already persisted; a lost notification must not
		// fail the request.
		log.Printf("⚠️ lead.created event for %s not published: %v", lead.ID, err)
	}
}
