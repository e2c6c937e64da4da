package service_test

import (
	"context"
	"errors"
	"testing"

	cacheMocks "fest-proposal-service/internal/cache/mocks"
	"fest-proposal-service/internal/model"
	repoMocks "fest-proposal-service/internal/repository/mocks"
	"fest-proposal-service/internal/service"
	apperrors "fest-proposal-service/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_GetByID(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")
	event := &model.Event{ID: eventID, Name: "Hackathon", RegistrationMethod: model.RegistrationInternal}

	t.Run("Success - cache hit skips the database", func(t *testing.T) {
		eventRepo := repoMocks.NewMockEventRepository()
		eventCache := cacheMocks.NewMockRedisEventCacheManager()
		eventService := service.NewEventService(eventRepo, eventCache)

		eventCache.On("Get", ctx, eventID).Return(event, nil).Once()

		got, err := eventService.GetByID(ctx, eventID)

		require.NoError(t, err)
		assert.Equal(t, event, got)
		eventCache.AssertExpectations(t)
		eventRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("Success - miss falls back to the database and refills", func(t *testing.T) {
		eventRepo := repoMocks.NewMockEventRepository()
		eventCache := cacheMocks.NewMockRedisEventCacheManager()
		eventService := service.NewEventService(eventRepo, eventCache)

		eventCache.On("Get", ctx, eventID).Return(nil, nil).Once()
		eventRepo.On("FindByID", ctx, eventID).Return(event, nil).Once()
		eventCache.On("Set", ctx, event).Return(nil).Once()

		got, err := eventService.GetByID(ctx, eventID)

		require.NoError(t, err)
		assert.Equal(t, event, got)
		eventRepo.AssertExpectations(t)
		eventCache.AssertExpectations(t)
	})

	t.Run("Success - cache trouble degrades to a plain read", func(t *testing.T) {
		eventRepo := repoMocks.NewMockEventRepository()
		eventCache := cacheMocks.NewMockRedisEventCacheManager()
		eventService := service.NewEventService(eventRepo, eventCache)

		eventCache.On("Get", ctx, eventID).Return(nil, errors.New("redis down")).Once()
		eventRepo.On("FindByID", ctx, eventID).Return(event, nil).Once()
		eventCache.On("Set", ctx, event).Return(errors.New("redis down")).Once()

		got, err := eventService.GetByID(ctx, eventID)

		require.NoError(t, err)
		assert.Equal(t, event, got)
	})

	t.Run("Failed - event not found", func(t *testing.T) {
		eventRepo := repoMocks.NewMockEventRepository()
		eventCache := cacheMocks.NewMockRedisEventCacheManager()
		eventService := service.NewEventService(eventRepo, eventCache)

		eventCache.On("Get", ctx, eventID).Return(nil, nil).Once()
		eventRepo.On("FindByID", ctx, eventID).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := eventService.GetByID(ctx, eventID)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		eventCache.AssertNotCalled(t, "Set")
	})
}
