package mocks

import (
	"context"

	"fest-proposal-service/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockEventRepository struct {
	mock.Mock
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) ListByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Event, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, event *model.Event) (*model.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

type MockProposalRepository struct {
	mock.Mock
}

func NewMockProposalRepository() *MockProposalRepository {
	return &MockProposalRepository{}
}

func (m *MockProposalRepository) Create(ctx context.Context, proposal *model.ChangeProposal) (*model.ChangeProposal, error) {
	args := m.Called(ctx, proposal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChangeProposal), args.Error(1)
}

func (m *MockProposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ChangeProposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChangeProposal), args.Error(1)
}

func (m *MockProposalRepository) ListPending(ctx context.Context) ([]*model.ChangeProposal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ChangeProposal), args.Error(1)
}

func (m *MockProposalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ProposalStatus) (*model.ChangeProposal, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChangeProposal), args.Error(1)
}

type MockRegistrationRepository struct {
	mock.Mock
}

func NewMockRegistrationRepository() *MockRegistrationRepository {
	return &MockRegistrationRepository{}
}

func (m *MockRegistrationRepository) Create(ctx context.Context, registration *model.Registration) (*model.Registration, error) {
	args := m.Called(ctx, registration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) ListByClub(ctx context.Context, clubID uuid.UUID) ([]*model.Registration, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Registration), args.Error(1)
}

type MockDecisionRepository struct {
	mock.Mock
}

func NewMockDecisionRepository() *MockDecisionRepository {
	return &MockDecisionRepository{}
}

func (m *MockDecisionRepository) Create(ctx context.Context, record *model.DecisionRecord) (*model.DecisionRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DecisionRecord), args.Error(1)
}
