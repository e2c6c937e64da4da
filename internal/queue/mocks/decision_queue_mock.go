package mocks

import (
	"context"

	"fest-proposal-service/internal/model"
	"fest-proposal-service/internal/queue"

	"github.com/stretchr/testify/mock"
)

type MockDecisionQueue struct {
	mock.Mock
}

func NewMockDecisionQueue() *MockDecisionQueue {
	return &MockDecisionQueue{}
}

func (m *MockDecisionQueue) PublishDecision(ctx context.Context, record *model.DecisionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDecisionQueue) SubscribeDecisions(ctx context.Context) (<-chan queue.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan queue.Delivery), args.Error(1)
}
