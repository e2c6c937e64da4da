package queue

import (
	"context"

	"fest-proposal-service/internal/model"
)

// Delivery wraps one decision record pulled off the queue together with its
// settlement callbacks.
type Delivery struct {
	Data *model.DecisionRecord
	Ack  func()
	Nack func(requeue bool)
}

// DecisionQueue carries proposal decisions from the workflow to the audit
// worker. Publishing is fail-open at the call site: an approval never fails
// because its audit message could not be queued.
type DecisionQueue interface {
	PublishDecision(ctx context.Context, record *model.DecisionRecord) error
	SubscribeDecisions(ctx context.Context) (<-chan Delivery, error)
}
