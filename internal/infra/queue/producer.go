package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Lead event names carried on the wire.
const (
	EventLeadCreated       = "lead.created"
	EventLeadStatusChanged = "lead.status_changed"
	EventLeadAssigned      = "lead.assigned"
	EventLeadCallDue       = "lead.call_due"
)

type LeadEventPayload struct {
	Event          string    `json:"event"`
	LeadID         string    `json:"lead_id"`
	RestaurantName string    `json:"restaurant_name"`
	ContactName    string    `json:"contact_name"`
	Status         string    `json:"status"`
	UpdatedBy      string    `json:"updated_by,omitempty"`
	AssignedTo     string    `json:"assigned_to,omitempty"`
	NextCallDate   time.Time `json:"next_call_date,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type LeadEventProducerInterface interface {
	PublishLeadEvent(ctx context.Context, payload LeadEventPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadEvent(ctx context.Context, payload LeadEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal lead event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish lead event: %w", err)
	}

	return nil
}
