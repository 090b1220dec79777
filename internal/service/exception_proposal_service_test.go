package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/segyhp/easy-service/internal/domain"
	"github.com/segyhp/easy-service/internal/mocks"
	customError "github.com/segyhp/easy-service/pkg/errors"
	"github.com/segyhp/easy-service/pkg/logger"
	"github.com/segyhp/easy-service/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newExceptionProposalService(repo *mocks.MockExceptionProposalRepository) *ExceptionProposalService {
	return &ExceptionProposalService{
		repo:          repo,
		formatter:     money.BRL(),
		location:      time.UTC,
		retentionDays: 31,
		logger:        logger.Discard(),
		now:           func() time.Time { return fixedToday },
	}
}

func validExceptionRequest() *domain.CreateExceptionProposalRequest {
	return &domain.CreateExceptionProposalRequest{
		CPF:       "123.456.789-09",
		Product:   "ep",
		MainValue: "5.000,00",
		Promotion: domain.ProposalRequest{FirstInstallment: "1.000,00"},
		CustomerProposal: domain.ProposalRequest{
			FirstInstallment: "300,00",
			Installments:     3,
			RestInstallment:  "250,00",
			DaysUntilDue:     intPtr(14),
		},
		Email:     "cliente@example.com",
		Phone:     "(11) 98765-4321",
		DelayDays: 120,
	}
}

func TestCreateExceptionProposal_Success(t *testing.T) {
	repo := &mocks.MockExceptionProposalRepository{}
	service := newExceptionProposalService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.ExceptionProposalRecord) bool {
		return r.CustomerID == "12345678909" &&
			r.Value.Equal(decimal.NewFromInt(800)) &&
			r.DaysUntilDue == 14 &&
			!r.CounterProposal.Valid
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.ExceptionProposalRecord).ID = 5
	}).Return(nil)

	resp, err := service.Create(context.Background(), validExceptionRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Record.ID)
	lines := strings.Split(resp.Text, "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "CPF: 123.456.789-09", lines[0])
	assert.Equal(t, "Produto: Epcfi", lines[1])
	assert.Equal(t, "Data proposta para pagamento: 15/01/2024", lines[5])
	assert.Equal(t, "Desconto sobre a ultima proposta: 20,00%", lines[8])
	repo.AssertExpectations(t)
}

func TestCreateExceptionProposal_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *domain.CreateExceptionProposalRequest)
		errTarget error
	}{
		{name: "cpf", mutate: func(r *domain.CreateExceptionProposalRequest) { r.CPF = "123" }, errTarget: customError.ErrValidation},
		{name: "email", mutate: func(r *domain.CreateExceptionProposalRequest) { r.Email = "cliente@" }, errTarget: customError.ErrValidation},
		{name: "phone", mutate: func(r *domain.CreateExceptionProposalRequest) { r.Phone = "12345" }, errTarget: customError.ErrValidation},
		{name: "product", mutate: func(r *domain.CreateExceptionProposalRequest) { r.Product = "" }, errTarget: customError.ErrValidation},
		{name: "main value", mutate: func(r *domain.CreateExceptionProposalRequest) { r.MainValue = "5,000.00" }, errTarget: customError.ErrValidation},
		{name: "delay days", mutate: func(r *domain.CreateExceptionProposalRequest) { r.DelayDays = 1000 }, errTarget: customError.ErrValidation},
		{
			name: "customer proposal due in the past",
			mutate: func(r *domain.CreateExceptionProposalRequest) {
				r.CustomerProposal.DaysUntilDue = nil
				r.CustomerProposal.DueDate = "31/12/2023"
			},
			errTarget: customError.ErrValidation,
		},
		{
			name: "installments above product",
			mutate: func(r *domain.CreateExceptionProposalRequest) {
				r.CustomerProposal.Installments = 19
			},
			errTarget: customError.ErrInstallmentsAboveProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockExceptionProposalRepository{}
			service := newExceptionProposalService(repo)
			req := validExceptionRequest()
			tt.mutate(req)

			_, err := service.Create(context.Background(), req)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.errTarget), "got %v", err)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestEditExceptionProposal(t *testing.T) {
	repo := &mocks.MockExceptionProposalRepository{}
	service := newExceptionProposalService(repo)

	installments := 4
	updated := &domain.ExceptionProposalRecord{
		ID:               3,
		CounterProposal:  decimal.NewNullDecimal(decimal.NewFromInt(650)),
		InstallmentCount: &installments,
	}
	repo.On("UpdateCounterProposal", mock.Anything, int64(3), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(650))
	}), 4).Return(nil)
	repo.On("GetByID", mock.Anything, int64(3)).Return(updated, nil)

	record, err := service.Edit(context.Background(), 3, &domain.EditExceptionProposalRequest{CounterProposal: "650,00", Installments: 4})

	require.NoError(t, err)
	assert.Same(t, updated, record)
	repo.AssertExpectations(t)
}

func TestEditExceptionProposal_Errors(t *testing.T) {
	repo := &mocks.MockExceptionProposalRepository{}
	service := newExceptionProposalService(repo)
	ctx := context.Background()

	_, err := service.Edit(ctx, 1, &domain.EditExceptionProposalRequest{CounterProposal: "", Installments: 1})
	assert.True(t, errors.Is(err, customError.ErrValidation))

	_, err = service.Edit(ctx, 1, &domain.EditExceptionProposalRequest{CounterProposal: "10", Installments: 25})
	assert.True(t, errors.Is(err, customError.ErrValidation))

	repo.On("UpdateCounterProposal", mock.Anything, int64(9), mock.Anything, 2).Return(sql.ErrNoRows)
	_, err = service.Edit(ctx, 9, &domain.EditExceptionProposalRequest{CounterProposal: "10", Installments: 2})
	assert.True(t, errors.Is(err, customError.ErrExceptionProposalNotFound))
}

func TestDeleteExceptionProposal(t *testing.T) {
	repo := &mocks.MockExceptionProposalRepository{}
	service := newExceptionProposalService(repo)

	repo.On("Delete", mock.Anything, int64(1)).Return(nil)
	repo.On("Delete", mock.Anything, int64(2)).Return(sql.ErrNoRows)

	assert.NoError(t, service.Delete(context.Background(), 1))
	assert.True(t, errors.Is(service.Delete(context.Background(), 2), customError.ErrExceptionProposalNotFound))
}

func TestListExceptionProposals(t *testing.T) {
	repo := &mocks.MockExceptionProposalRepository{}
	service := newExceptionProposalService(repo)

	repo.On("List", mock.Anything).Return(nil, errors.New("timeout"))

	_, err := service.List(context.Background())

	var businessErr *customError.BusinessError
	require.True(t, errors.As(err, &businessErr))
	assert.Equal(t, customError.ErrCodeDatabaseError, businessErr.Code)
}

func TestPurgeExpired(t *testing.T) {
	repo := &mocks.MockExceptionProposalRepository{}
	service := newExceptionProposalService(repo)

	cutoff := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	repo.On("DeleteCreatedBefore", mock.Anything, cutoff).Return(int64(3), nil)

	removed, err := service.PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	repo.AssertExpectations(t)
}
