package mocks

import (
	"context"

	"github.com/segyhp/easy-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockNegotiationService struct {
	mock.Mock
}

func (m *MockNegotiationService) PreviewProposals(req *domain.PreviewRequest) (*domain.PreviewResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PreviewResponse), args.Error(1)
}

func (m *MockNegotiationService) RefusalText(req *domain.RefusalRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}

func (m *MockNegotiationService) CreateAgreement(ctx context.Context, req *domain.CreateAgreementRequest) (*domain.AgreementView, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgreementView), args.Error(1)
}

func (m *MockNegotiationService) ListAgreements(ctx context.Context, filter domain.AgreementFilter) ([]domain.AgreementView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AgreementView), args.Error(1)
}

func (m *MockNegotiationService) GetStatistics(ctx context.Context, period domain.Period) (*domain.Statistics, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockNegotiationService) MarkAgreementPaid(ctx context.Context, id int64) (*domain.AgreementView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgreementView), args.Error(1)
}

func (m *MockNegotiationService) MarkAgreementPromised(ctx context.Context, id int64) (*domain.AgreementView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgreementView), args.Error(1)
}

func (m *MockNegotiationService) DeleteAgreement(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockExceptionProposalService struct {
	mock.Mock
}

func (m *MockExceptionProposalService) Create(ctx context.Context, req *domain.CreateExceptionProposalRequest) (*domain.ExceptionProposalResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExceptionProposalResponse), args.Error(1)
}

func (m *MockExceptionProposalService) List(ctx context.Context) ([]*domain.ExceptionProposalRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ExceptionProposalRecord), args.Error(1)
}

func (m *MockExceptionProposalService) Edit(ctx context.Context, id int64, req *domain.EditExceptionProposalRequest) (*domain.ExceptionProposalRecord, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExceptionProposalRecord), args.Error(1)
}

func (m *MockExceptionProposalService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
