package repository

import (
	"context"

	"fest-proposal-service/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DecisionRepository persists the audit trail of proposal decisions written
// by the audit worker.
type DecisionRepository interface {
	Create(ctx context.Context, record *model.DecisionRecord) (*model.DecisionRecord, error)
}

type DecisionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewDecisionRepository(pool *pgxpool.Pool) DecisionRepository {
	return &DecisionRepositoryImpl{
		pool: pool,
	}
}

func (r *DecisionRepositoryImpl) Create(ctx context.Context, record *model.DecisionRecord) (*model.DecisionRecord, error) {
	query := `
		INSERT INTO proposal_decisions (id, proposal_id, event_name, admin_id, decision, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, proposal_id, event_name, admin_id, decision, decided_at
	`
	err := r.pool.QueryRow(ctx, query,
		record.ID,
		record.ProposalID,
		record.EventName,
		record.AdminID,
		record.Decision,
		record.DecidedAt,
	).Scan(
		&record.ID,
		&record.ProposalID,
		&record.EventName,
		&record.AdminID,
		&record.Decision,
		&record.DecidedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}
