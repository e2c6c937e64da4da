package worker

import (
	"context"

	"fest-proposal-service/internal/queue"
	"fest-proposal-service/internal/repository"
	"fest-proposal-service/pkg/logger"

	"go.uber.org/zap"
)

// AuditWorker drains the decision queue into the proposal_decisions table.
type AuditWorker interface {
	Start(ctx context.Context) error
}

type AuditWorkerImpl struct {
	decisions repository.DecisionRepository
	queue     queue.DecisionQueue
}

func NewAuditWorker(decisions repository.DecisionRepository, queue queue.DecisionQueue) AuditWorker {
	return &AuditWorkerImpl{
		decisions: decisions,
		queue:     queue,
	}
}

func (w *AuditWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeDecisions(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("worker")
		for msg := range msgs {
			_, err := w.decisions.Create(ctx, msg.Data)
			if err != nil {
				log.Error("persist decision failed",
					zap.String("proposal_id", msg.Data.ProposalID.String()),
					zap.Error(err),
				)
				msg.Nack(true)
			} else {
				msg.Ack()
			}
		}
	}()

	return nil
}
