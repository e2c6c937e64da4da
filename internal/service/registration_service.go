package service

import (
	"context"

	"fest-proposal-service/internal/identity"
	"fest-proposal-service/internal/model"
	"fest-proposal-service/internal/repository"
	"fest-proposal-service/internal/schema"
	apperrors "fest-proposal-service/pkg/app_errors"

	"github.com/google/uuid"
)

type RegistrationService interface {
	// Submit validates the values against the event's current form schema
	// and persists an immutable registration. Only internal-method events
	// take submissions; external ones register off-system via their link.
	Submit(ctx context.Context, eventID uuid.UUID, user *identity.User, values schema.Values) (*model.Registration, error)
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Registration, error)
}

type RegistrationServiceImpl struct {
	repo         repository.RegistrationRepository
	eventService EventService
}

func NewRegistrationService(repo repository.RegistrationRepository, eventService EventService) RegistrationService {
	return &RegistrationServiceImpl{
		repo:         repo,
		eventService: eventService,
	}
}

func (s *RegistrationServiceImpl) Submit(ctx context.Context, eventID uuid.UUID, user *identity.User, values schema.Values) (*model.Registration, error) {
	if user == nil {
		return nil, apperrors.ErrAuthRequired
	}

	event, err := s.eventService.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.RegistrationMethod == model.RegistrationExternal {
		return nil, apperrors.ErrExternalRegistration
	}

	cleaned, err := schema.ValidateSubmission(event.FormFields, values)
	if err != nil {
		return nil, err
	}

	registration := &model.Registration{
		ID:        uuid.New(),
		EventID:   event.ID,
		ClubID:    event.ClubID,
		UserID:    user.ID,
		UserEmail: user.Email,
		FormData:  cleaned,
	}
	return s.repo.Create(ctx, registration)
}

func (s *RegistrationServiceImpl) ListByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Registration, error) {
	return s.repo.ListByClub(ctx, clubID)
}
