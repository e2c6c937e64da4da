package repository

import (
	"context"
	"time"

	"fest-proposal-service/internal/model"
	apperrors "fest-proposal-service/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProposalRepository interface {
	Create(ctx context.Context, proposal *model.ChangeProposal) (*model.ChangeProposal, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.ChangeProposal, error)
	// ListPending returns pending proposals oldest first, so admins review
	// them in submission order.
	ListPending(ctx context.Context) ([]*model.ChangeProposal, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ProposalStatus) (*model.ChangeProposal, error)
}

type ProposalRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewProposalRepository(pool *pgxpool.Pool) ProposalRepository {
	return &ProposalRepositoryImpl{
		pool: pool,
	}
}

func scanProposal(row pgx.Row) (*model.ChangeProposal, error) {
	var proposal model.ChangeProposal
	err := row.Scan(
		&proposal.ID,
		&proposal.OriginalEventID,
		&proposal.ClubID,
		&proposal.ProposedChanges,
		&proposal.CoordinatorID,
		&proposal.CoordinatorName,
		&proposal.EventName,
		&proposal.Status,
		&proposal.CreatedAt,
		&proposal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *ProposalRepositoryImpl) Create(ctx context.Context, proposal *model.ChangeProposal) (*model.ChangeProposal, error) {
	query := `
		INSERT INTO change_proposals (id, original_event_id, club_id, proposed_changes, coordinator_id, coordinator_name, event_name, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, original_event_id, club_id, proposed_changes, coordinator_id, coordinator_name, event_name, status, created_at, updated_at
	`
	return scanProposal(r.pool.QueryRow(ctx, query,
		proposal.ID,
		proposal.OriginalEventID,
		proposal.ClubID,
		proposal.ProposedChanges,
		proposal.CoordinatorID,
		proposal.CoordinatorName,
		proposal.EventName,
		proposal.Status,
	))
}

func (r *ProposalRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.ChangeProposal, error) {
	query := `
		SELECT id, original_event_id, club_id, proposed_changes, coordinator_id, coordinator_name, event_name, status, created_at, updated_at
		FROM change_proposals
		WHERE id = $1
	`
	proposal, err := scanProposal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrProposalNotFound
		}
		return nil, err
	}
	return proposal, nil
}

func (r *ProposalRepositoryImpl) ListPending(ctx context.Context) ([]*model.ChangeProposal, error) {
	query := `
		SELECT id, original_event_id, club_id, proposed_changes, coordinator_id, coordinator_name, event_name, status, created_at, updated_at
		FROM change_proposals
		WHERE status = $1
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, model.ProposalStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proposals := make([]*model.ChangeProposal, 0)
	for rows.Next() {
		proposal, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, proposal)
	}
	return proposals, rows.Err()
}

func (r *ProposalRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ProposalStatus) (*model.ChangeProposal, error) {
	query := `
		UPDATE change_proposals
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING id, original_event_id, club_id, proposed_changes, coordinator_id, coordinator_name, event_name, status, created_at, updated_at
	`
	proposal, err := scanProposal(r.pool.QueryRow(ctx, query, id, status, time.Now().UTC()))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrProposalNotFound
		}
		return nil, err
	}
	return proposal, nil
}
