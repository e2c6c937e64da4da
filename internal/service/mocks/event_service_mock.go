package mocks

import (
	"context"

	"fest-proposal-service/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockEventService struct {
	mock.Mock
}

func NewMockEventService() *MockEventService {
	return &MockEventService{}
}

func (m *MockEventService) ListByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Event, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *MockEventService) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}
