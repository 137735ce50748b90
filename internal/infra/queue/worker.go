package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rsharda/kam-leads/internal/entity"
)

// LeadNotifier delivers a notification for one lead event.
type LeadNotifier interface {
	SendLeadAssigned(to, kamName, restaurantName, leadID string) error
	SendCallReminder(to, kamName, restaurantName, leadID string, nextCallDate string) error
}

// Worker consumes lead events and notifies the assigned KAM by email.
type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadNotifier
	Users    entity.UserRepositoryInterface
}

func NewWorker(ch *amqp.Channel, notifier LeadNotifier, users entity.UserRepositoryInterface) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
		Users:    users,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] consume failed: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] malformed event, rejecting: %s", err)
				// Poison message. Reject without requeue so it hits the DLQ.
				d.Nack(false, false)
				continue
			}

			if err := w.processEvent(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] %s for lead %s failed: %s", payload.Event, payload.LeadID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(ctx context.Context, payload LeadEventPayload) error {
	switch payload.Event {
	case EventLeadAssigned:
		return w.notifyKAM(ctx, payload, false)
	case EventLeadCallDue:
		return w.notifyKAM(ctx, payload, true)
	default:
		// Created and status-changed events are audit-only for now.
		log.Printf("📥 [WORKER] %s lead=%s status=%s", payload.Event, payload.LeadID, payload.Status)
		return nil
	}
}

func (w *Worker) notifyKAM(ctx context.Context, payload LeadEventPayload, reminder bool) error {
	user, err := w.Users.FindByUsername(ctx, payload.AssignedTo)
	if err != nil || user.Email == "" {
		// The KAM identifier is a free-form string; a miss is not a
		// delivery failure worth dead-lettering.
		log.Printf("⚠️ [WORKER] no mailbox for KAM %q, skipping", payload.AssignedTo)
		return nil
	}

	if reminder {
		return w.Notifier.SendCallReminder(user.Email, user.Username, payload.RestaurantName, payload.LeadID, payload.NextCallDate.Format("2006-01-02"))
	}
	return w.Notifier.SendLeadAssigned(user.Email, user.Username, payload.RestaurantName, payload.LeadID)
}
