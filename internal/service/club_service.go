package service

import (
	"context"

	"fest-proposal-service/internal/model"
	"fest-proposal-service/internal/repository"

	"github.com/google/uuid"
)

// ClubService resolves clubs for the dashboard. Coordinator profiles carry
// the club name, not the id, so the dashboard looks the club up by name
// before querying events and registrations.
type ClubService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Club, error)
	GetByName(ctx context.Context, name string) (*model.Club, error)
}

type ClubServiceImpl struct {
	clubs repository.ClubRepository
}

func NewClubService(clubs repository.ClubRepository) ClubService {
	return &ClubServiceImpl{clubs: clubs}
}

func (s *ClubServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	return s.clubs.FindByID(ctx, id)
}

func (s *ClubServiceImpl) GetByName(ctx context.Context, name string) (*model.Club, error) {
	return s.clubs.FindByName(ctx, name)
}
