package mocks

import (
	"context"

	"fest-proposal-service/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRedisEventCacheManager struct {
	mock.Mock
}

func NewMockRedisEventCacheManager() *MockRedisEventCacheManager {
	return &MockRedisEventCacheManager{}
}

func (m *MockRedisEventCacheManager) Get(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockRedisEventCacheManager) Set(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockRedisEventCacheManager) Invalidate(ctx context.Context, eventID uuid.UUID) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}
