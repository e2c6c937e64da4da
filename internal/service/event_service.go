package service

import (
	"context"

	"fest-proposal-service/internal/cache"
	"fest-proposal-service/internal/model"
	"fest-proposal-service/internal/repository"
	"fest-proposal-service/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Event, error)
	// GetByID resolves an event through the redis cache, falling back to the
	// database on a miss. Cache trouble degrades to a plain read.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
}

type EventServiceImpl struct {
	repo       repository.EventRepository
	eventCache cache.RedisEventCacheManager
}

func NewEventService(repo repository.EventRepository, eventCache cache.RedisEventCacheManager) EventService {
	return &EventServiceImpl{repo: repo, eventCache: eventCache}
}

func (s *EventServiceImpl) ListByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Event, error) {
	return s.repo.ListByClub(ctx, clubID)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	cached, err := s.eventCache.Get(ctx, id)
	if err != nil {
		logger.WithComponent("service").Warn("event cache get failed", zap.String("event_id", id.String()), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.eventCache.Set(ctx, event); err != nil {
		logger.WithComponent("service").Warn("event cache set failed", zap.String("event_id", id.String()), zap.Error(err))
	}
	return event, nil
}
