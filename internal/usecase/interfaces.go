package usecase

import (
	"context"

	"github.com/rsharda/kam-leads/internal/infra/queue"
)

type LeadEventProducerInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}
