package mocks

import (
	"context"
	"time"

	"github.com/segyhp/easy-service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockAgreementRepository struct {
	mock.Mock
}

func (m *MockAgreementRepository) Create(ctx context.Context, agreement *domain.Agreement) error {
	args := m.Called(ctx, agreement)
	return args.Error(0)
}

func (m *MockAgreementRepository) GetByID(ctx context.Context, id int64) (*domain.Agreement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agreement), args.Error(1)
}

func (m *MockAgreementRepository) List(ctx context.Context) ([]*domain.Agreement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Agreement), args.Error(1)
}

func (m *MockAgreementRepository) UpdateFlags(ctx context.Context, agreement *domain.Agreement) error {
	args := m.Called(ctx, agreement)
	return args.Error(0)
}

func (m *MockAgreementRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockExceptionProposalRepository struct {
	mock.Mock
}

func (m *MockExceptionProposalRepository) Create(ctx context.Context, record *domain.ExceptionProposalRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockExceptionProposalRepository) GetByID(ctx context.Context, id int64) (*domain.ExceptionProposalRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExceptionProposalRecord), args.Error(1)
}

func (m *MockExceptionProposalRepository) List(ctx context.Context) ([]*domain.ExceptionProposalRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ExceptionProposalRecord), args.Error(1)
}

func (m *MockExceptionProposalRepository) UpdateCounterProposal(ctx context.Context, id int64, counterProposal decimal.Decimal, installments int) error {
	args := m.Called(ctx, id, counterProposal, installments)
	return args.Error(0)
}

func (m *MockExceptionProposalRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExceptionProposalRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockStatisticsCache struct {
	mock.Mock
}

func (m *MockStatisticsCache) Get(ctx context.Context, period domain.Period, today time.Time) (*domain.Statistics, bool, error) {
	args := m.Called(ctx, period, today)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Statistics), args.Bool(1), args.Error(2)
}

func (m *MockStatisticsCache) Set(ctx context.Context, period domain.Period, today time.Time, stats *domain.Statistics) error {
	args := m.Called(ctx, period, today, stats)
	return args.Error(0)
}

func (m *MockStatisticsCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
