package service

import (
	"context"
	"fmt"
	"time"

	"fest-proposal-service/internal/cache"
	"fest-proposal-service/internal/identity"
	"fest-proposal-service/internal/model"
	"fest-proposal-service/internal/queue"
	"fest-proposal-service/internal/repository"
	"fest-proposal-service/internal/schema"
	apperrors "fest-proposal-service/pkg/app_errors"
	"fest-proposal-service/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProposalService is the change-proposal workflow. Coordinators create
// pending proposals; admins approve or reject them. Approval merges the
// stored patch onto the live event; both branches are terminal.
type ProposalService interface {
	Create(ctx context.Context, eventID uuid.UUID, edits model.EventEdits, coordinator identity.User) (*model.ChangeProposal, error)
	// Approve applies the proposal's patch onto the live event, persists the
	// merged event, then marks the proposal approved. Safe to retry: the
	// merge is a full-field overwrite, so re-applying it is a no-op.
	Approve(ctx context.Context, proposalID uuid.UUID, adminID string) (*model.Event, error)
	// Reject marks the proposal rejected. No other side effects. Idempotent
	// when the proposal is already rejected.
	Reject(ctx context.Context, proposalID uuid.UUID, adminID string) (*model.ChangeProposal, error)
	ListPending(ctx context.Context) ([]*model.ChangeProposal, error)
}

type ProposalServiceImpl struct {
	proposals  repository.ProposalRepository
	events     repository.EventRepository
	eventCache cache.RedisEventCacheManager
	decisions  queue.DecisionQueue
}

func NewProposalService(
	proposals repository.ProposalRepository,
	events repository.EventRepository,
	eventCache cache.RedisEventCacheManager,
	decisions queue.DecisionQueue,
) ProposalService {
	return &ProposalServiceImpl{
		proposals:  proposals,
		events:     events,
		eventCache: eventCache,
		decisions:  decisions,
	}
}

// validateEdits enforces method consistency before anything is persisted:
// an external-method patch needs a link and no form fields, an internal one
// needs a non-empty, well-formed schema and no link.
func validateEdits(edits model.EventEdits) error {
	if !edits.RegistrationMethod.IsValid() {
		return fmt.Errorf("%w: registrationMethod %q", apperrors.ErrInvalidInput, edits.RegistrationMethod)
	}
	if edits.Name == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrInvalidInput)
	}
	if edits.RegistrationFee < 0 {
		return fmt.Errorf("%w: registrationFee must not be negative", apperrors.ErrInvalidInput)
	}

	if err := schema.ValidateForSubmission(edits.FormFields, string(edits.RegistrationMethod)); err != nil {
		return err
	}

	switch edits.RegistrationMethod {
	case model.RegistrationExternal:
		if edits.RegistrationLink == "" || len(edits.FormFields) > 0 {
			return apperrors.ErrInconsistentMethod
		}
	case model.RegistrationInternal:
		if edits.RegistrationLink != "" {
			return apperrors.ErrInconsistentMethod
		}
		if err := schema.ValidateDefinitions(edits.FormFields); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProposalServiceImpl) Create(ctx context.Context, eventID uuid.UUID, edits model.EventEdits, coordinator identity.User) (*model.ChangeProposal, error) {
	if coordinator.ID == "" {
		return nil, apperrors.ErrAuthRequired
	}
	if err := validateEdits(edits); err != nil {
		return nil, err
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	proposedChanges, err := model.EncodeEventPatch(edits)
	if err != nil {
		return nil, err
	}

	proposal := &model.ChangeProposal{
		ID:              uuid.New(),
		OriginalEventID: event.ID,
		ClubID:          event.ClubID,
		ProposedChanges: proposedChanges,
		CoordinatorID:   coordinator.ID,
		CoordinatorName: coordinator.Name,
		EventName:       edits.Name,
		Status:          model.ProposalStatusPending,
	}
	return s.proposals.Create(ctx, proposal)
}

func (s *ProposalServiceImpl) Approve(ctx context.Context, proposalID uuid.UUID, adminID string) (*model.Event, error) {
	proposal, err := s.proposals.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	// An already-approved proposal is a retry of a half-finished approval;
	// re-applying the overwrite merge is harmless. Rejected is terminal.
	alreadyApproved := proposal.Status == model.ProposalStatusApproved
	if !alreadyApproved && !proposal.Status.CanTransitionTo(model.ProposalStatusApproved) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	patch, err := model.DecodeEventPatch(proposal.ProposedChanges)
	if err != nil {
		return nil, err
	}

	// The event reference is weak; if it no longer resolves, the proposal
	// stays pending so the admin can reconcile or reject it by hand.
	event, err := s.events.FindByID(ctx, proposal.OriginalEventID)
	if err != nil {
		return nil, err
	}

	merged, err := patch.ApplyTo(*event)
	if err != nil {
		return nil, err
	}

	// Event write happens-before the status transition. If the status write
	// fails the proposal remains pending and the whole call is retried.
	updated, err := s.events.Update(ctx, &merged)
	if err != nil {
		return nil, err
	}

	if err := s.eventCache.Invalidate(ctx, updated.ID); err != nil {
		logger.WithComponent("service").Warn("event cache invalidate failed", zap.String("event_id", updated.ID.String()), zap.Error(err))
	}

	if _, err := s.proposals.UpdateStatus(ctx, proposal.ID, model.ProposalStatusApproved); err != nil {
		return nil, err
	}

	// A retry found the status already written, so the decision record was
	// already published; publishing again would duplicate the audit row.
	if !alreadyApproved {
		s.publishDecision(ctx, proposal, adminID, model.ProposalStatusApproved)
	}
	return updated, nil
}

func (s *ProposalServiceImpl) Reject(ctx context.Context, proposalID uuid.UUID, adminID string) (*model.ChangeProposal, error) {
	proposal, err := s.proposals.FindByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal.Status == model.ProposalStatusRejected {
		return proposal, nil
	}
	if !proposal.Status.CanTransitionTo(model.ProposalStatusRejected) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	rejected, err := s.proposals.UpdateStatus(ctx, proposal.ID, model.ProposalStatusRejected)
	if err != nil {
		return nil, err
	}

	s.publishDecision(ctx, proposal, adminID, model.ProposalStatusRejected)
	return rejected, nil
}

func (s *ProposalServiceImpl) ListPending(ctx context.Context) ([]*model.ChangeProposal, error) {
	return s.proposals.ListPending(ctx)
}

// publishDecision queues the audit record. Fail-open: the decision already
// happened, so a queue failure is logged and swallowed.
func (s *ProposalServiceImpl) publishDecision(ctx context.Context, proposal *model.ChangeProposal, adminID string, decision model.ProposalStatus) {
	record := &model.DecisionRecord{
		ID:         uuid.New(),
		ProposalID: proposal.ID,
		EventName:  proposal.EventName,
		AdminID:    adminID,
		Decision:   decision,
		DecidedAt:  time.Now().UTC(),
	}
	if err := s.decisions.PublishDecision(ctx, record); err != nil {
		logger.WithComponent("service").Error("publish decision failed",
			zap.String("proposal_id", proposal.ID.String()),
			zap.String("decision", string(decision)),
			zap.Error(err),
		)
	}
}
