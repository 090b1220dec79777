package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/segyhp/easy-service/internal/config"
	"github.com/segyhp/easy-service/internal/domain"
	"github.com/segyhp/easy-service/internal/repository"
	customError "github.com/segyhp/easy-service/pkg/errors"
	"github.com/segyhp/easy-service/pkg/money"
	"github.com/segyhp/easy-service/pkg/utils"
	"github.com/segyhp/easy-service/pkg/validation"
)

// ExceptionProposalService prepares exception proposals for the manager
// and keeps their history for the retention window.
type ExceptionProposalService struct {
	repo          repository.ExceptionProposalRepository
	formatter     money.Formatter
	location      *time.Location
	retentionDays int
	logger        *slog.Logger
	now           func() time.Time
}

func NewExceptionProposalService(
	repo repository.ExceptionProposalRepository,
	cfg *config.Config,
	logger *slog.Logger,
) *ExceptionProposalService {
	return &ExceptionProposalService{
		repo:          repo,
		formatter:     money.NewFormatter(cfg.Business.CurrencySymbol),
		location:      cfg.Location(),
		retentionDays: cfg.Business.ExceptionProposalRetentionDays,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *ExceptionProposalService) today() time.Time {
	return utils.Today(s.now(), s.location)
}

// Create renders the text sent to the manager and records the proposal.
const fieldDelayDays = "delay_days"

func (s *ExceptionProposalService) Create(ctx context.Context, req *domain.CreateExceptionProposalRequest) (*domain.ExceptionProposalResponse, error) {
	if err := validation.ValidateCPF(req.CPF); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePhone(req.Phone); err != nil {
		return nil, err
	}
	if err := validation.ValidateIntInRange(fieldDelayDays, req.DelayDays, 0, domain.MaxDelayDays); err != nil {
		return nil, err
	}

	product, err := domain.ParseProduct(req.Product)
	if err != nil {
		return nil, err
	}
	mainValue, err := validation.ParseBRL(req.MainValue)
	if err != nil {
		return nil, err
	}

	today := s.today()
	promotion, err := req.Promotion.ToProposal(0, today)
	if err != nil {
		return nil, err
	}
	customerProposal, err := req.CustomerProposal.ToProposal(0, today)
	if err != nil {
		return nil, err
	}
	if err := product.CheckInstallments(customerProposal.InstallmentCount()); err != nil {
		return nil, err
	}

	proposal := &domain.ExceptionProposal{
		CPF:              req.CPF,
		Product:          product,
		MainValue:        mainValue,
		Promotion:        promotion,
		CustomerProposal: customerProposal,
		Email:            req.Email,
		Phone:            req.Phone,
		DelayDays:        req.DelayDays,
	}

	record := proposal.ToRecord(today)
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.logger.Info("exception proposal recorded", "exception_proposal_id", record.ID, "product", product)

	return &domain.ExceptionProposalResponse{
		Text:   proposal.TextToCopy(s.formatter),
		Record: record,
	}, nil
}

func (s *ExceptionProposalService) List(ctx context.Context) ([]*domain.ExceptionProposalRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return records, nil
}

// Edit stores the counter proposal answered by the manager.
func (s *ExceptionProposalService) Edit(ctx context.Context, id int64, req *domain.EditExceptionProposalRequest) (*domain.ExceptionProposalRecord, error) {
	counterProposal, err := validation.ParseBRL(req.CounterProposal)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateIntInRange(validation.FieldInstallments, req.Installments, 1, domain.MaxInstallmentsOverall); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateCounterProposal(ctx, id, counterProposal, req.Installments); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapExceptionProposalNotFound(id)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapExceptionProposalNotFound(id)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	s.logger.Info("exception proposal answered", "exception_proposal_id", id, "installments", req.Installments)
	return record, nil
}

func (s *ExceptionProposalService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return customError.WrapExceptionProposalNotFound(id)
		}
		return customError.WrapDatabaseError(err)
	}

	s.logger.Info("exception proposal deleted", "exception_proposal_id", id)
	return nil
}

// PurgeExpired removes the records older than the retention window.
func (s *ExceptionProposalService) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := utils.AddDays(s.today(), -s.retentionDays)

	removed, err := s.repo.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}
	return removed, nil
}
