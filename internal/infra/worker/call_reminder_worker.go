package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rsharda/kam-leads/internal/entity"
	"github.com/rsharda/kam-leads/internal/infra/queue"
)

// CallReminderWorker periodically finds leads whose next call date has
// passed and publishes a call_due event for each assigned lead.
type CallReminderWorker struct {
	leads        entity.LeadRepositoryInterface
	producer     queue.LeadEventProducerInterface
	tickInterval time.Duration

	// notified remembers which (lead, due date) pairs were already
	// announced so a lead is not re-flagged on every tick.
	notified map[string]bool
}

func NewCallReminderWorker(leads entity.LeadRepositoryInterface, producer queue.LeadEventProducerInterface, tickInterval time.Duration) *CallReminderWorker {
	if tickInterval <= 0 {
		tickInterval = 1 * time.Hour
	}
	return &CallReminderWorker{
		leads:        leads,
		producer:     producer,
		tickInterval: tickInterval,
		notified:     make(map[string]bool),
	}
}

func (w *CallReminderWorker) Start(ctx context.Context) {
	log.Printf("🕒 Call reminder worker started (every %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.flagDueLeads(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Call reminder worker stopped")
			return
		case <-ticker.C:
			w.flagDueLeads(ctx)
		}
	}
}

func (w *CallReminderWorker) flagDueLeads(ctx context.Context) {
	leads, err := w.leads.FindDueForCall(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Call reminder scan failed: %v", err)
		return
	}

	published := 0
	for _, lead := range leads {
		if lead.AssignedTo == "" {
			continue
		}

		key := fmt.Sprintf("%s|%s", lead.ID, lead.NextCallDate.Format("2006-01-02"))
		if w.notified[key] {
			continue
		}

		err := w.producer.PublishLeadEvent(ctx, queue.LeadEventPayload{
			Event:          queue.EventLeadCallDue,
			LeadID:         lead.ID,
			RestaurantName: lead.RestaurantName,
			ContactName:    lead.ContactName,
			Status:         lead.Status,
			AssignedTo:     lead.AssignedTo,
			NextCallDate:   lead.NextCallDate,
			OccurredAt:     time.Now(),
		})
		if err != nil {
			log.Printf("❌ call_due event for %s not published: %v", lead.ID, err)
			continue
		}

		w.notified[key] = true
		published++
	}

	if published > 0 {
		log.Printf("✅ %d lead(s) flagged for overdue calls", published)
	}
}
