package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/segyhp/easy-service/internal/cache"
	"github.com/segyhp/easy-service/internal/config"
	"github.com/segyhp/easy-service/internal/domain"
	"github.com/segyhp/easy-service/internal/repository"
	customError "github.com/segyhp/easy-service/pkg/errors"
	"github.com/segyhp/easy-service/pkg/money"
	"github.com/segyhp/easy-service/pkg/utils"
	"github.com/segyhp/easy-service/pkg/validation"
)

// NegotiationService turns proposals into texts and agreements and keeps
// the agreement control of the team.
type NegotiationService struct {
	agreementRepo repository.AgreementRepository
	statsCache    cache.StatisticsCache
	formatter     money.Formatter
	location      *time.Location
	logger        *slog.Logger
	now           func() time.Time

	// statsGeneration counts invalidations made by this process.
	statsGeneration atomic.Uint64
}

func NewNegotiationService(
	agreementRepo repository.AgreementRepository,
	statsCache cache.StatisticsCache,
	cfg *config.Config,
	logger *slog.Logger,
) *NegotiationService {
	return &NegotiationService{
		agreementRepo: agreementRepo,
		statsCache:    statsCache,
		formatter:     money.NewFormatter(cfg.Business.CurrencySymbol),
		location:      cfg.Location(),
		logger:        logger,
		now:           time.Now,
	}
}

// Today is the current calendar day in the configured zone.
func (s *NegotiationService) Today() time.Time {
	return utils.Today(s.now(), s.location)
}

// PreviewProposals renders each proposal and, from the second one on, its
// discount against the previous offer.
func (s *NegotiationService) PreviewProposals(req *domain.PreviewRequest) (*domain.PreviewResponse, error) {
	proposals, err := domain.ToProposals(req.Proposals, s.Today())
	if err != nil {
		return nil, err
	}

	previews := make([]domain.ProposalPreview, 0, len(proposals))
	for i, p := range proposals {
		preview := domain.ProposalPreview{
			Kind:                 domain.PaymentKind(p),
			Total:                p.Total(),
			DueDate:              p.DueDate(),
			Formatted:            p.Formatted(s.formatter),
			FormattedWithDueDate: p.FormattedWithDueDate(s.formatter),
		}
		if i > 0 {
			discount, err := p.DiscountPercentFrom(proposals[i-1])
			if err == nil {
				preview.DiscountFromPrevious = &discount
			} else if !errors.Is(err, customError.ErrDivisionByZero) {
				return nil, err
			}
		}
		previews = append(previews, preview)
	}

	return &domain.PreviewResponse{Proposals: previews}, nil
}

// RefusalText builds the text registered when the customer refuses every offer.
func (s *NegotiationService) RefusalText(req *domain.RefusalRequest) (string, error) {
	proposals, err := domain.ToProposals(req.Proposals, s.Today())
	if err != nil {
		return "", err
	}
	return domain.RefusalText(proposals, req.Reason, s.formatter)
}

// CreateAgreement stores the proposal the customer accepted.
func (s *NegotiationService) CreateAgreement(ctx context.Context, req *domain.CreateAgreementRequest) (*domain.AgreementView, error) {
	if err := validation.ValidateCPF(req.CPF); err != nil {
		return nil, err
	}

	today := s.Today()
	proposal, err := req.Proposal.ToProposal(0, today)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if req.Product != "" {
		if product, err = domain.ParseProduct(req.Product); err != nil {
			return nil, err
		}
		if err := product.CheckInstallments(proposal.InstallmentCount()); err != nil {
			return nil, err
		}
	}

	agreement := proposal.ToAgreement(req.CPF, today)
	agreement.Product = string(product)

	if err := s.agreementRepo.Create(ctx, agreement); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.logger.Info("agreement created",
		"agreement_id", agreement.ID,
		"value", agreement.Value.String(),
		"due_date", agreement.DueDate().Format("2006-01-02"),
	)
	s.invalidateStatistics(ctx)

	view := domain.NewAgreementView(agreement, today)
	return &view, nil
}

// ListAgreements returns the agreements matching filter with their state resolved.
func (s *NegotiationService) ListAgreements(ctx context.Context, filter domain.AgreementFilter) ([]domain.AgreementView, error) {
	agreements, err := s.agreementRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	today := s.Today()
	filtered := domain.FilterAgreements(agreements, filter, today)

	views := make([]domain.AgreementView, 0, len(filtered))
	for _, a := range filtered {
		views = append(views, domain.NewAgreementView(a, today))
	}
	return views, nil
}

// GetStatistics summarizes the agreements created in period. Results are
// cached per day; cache failures only cost a recomputation.
func (s *NegotiationService) GetStatistics(ctx context.Context, period domain.Period) (*domain.Statistics, error) {
	today := s.Today()

	stats, found, err := s.statsCache.Get(ctx, period, today)
	if err != nil {
		s.logger.Warn("failed to read cached statistics", "period", period, "error", customError.WrapCacheError(err))
	}
	if found {
		return stats, nil
	}

	generation := s.statsGeneration.Load()
	agreements, err := s.agreementRepo.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	stats = domain.Summarize(domain.FilterAgreements(agreements, domain.AgreementFilter{Period: period}, today), today)

	// A mutation landed after the read; caching would keep the old numbers.
	// Invalidations from other instances are only bounded by the TTL.
	if s.statsGeneration.Load() != generation {
		return stats, nil
	}
	if err := s.statsCache.Set(ctx, period, today, stats); err != nil {
		s.logger.Warn("failed to cache statistics", "period", period, "error", customError.WrapCacheError(err))
	}
	return stats, nil
}

func (s *NegotiationService) MarkAgreementPaid(ctx context.Context, id int64) (*domain.AgreementView, error) {
	return s.updateFlags(ctx, id, (*domain.Agreement).MarkPaid)
}

func (s *NegotiationService) MarkAgreementPromised(ctx context.Context, id int64) (*domain.AgreementView, error) {
	return s.updateFlags(ctx, id, (*domain.Agreement).MarkPromised)
}

func (s *NegotiationService) updateFlags(ctx context.Context, id int64, mark func(*domain.Agreement)) (*domain.AgreementView, error) {
	agreement, err := s.getAgreement(ctx, id)
	if err != nil {
		return nil, err
	}

	mark(agreement)

	if err := s.agreementRepo.UpdateFlags(ctx, agreement); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapAgreementNotFound(id)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	s.logger.Info("agreement updated", "agreement_id", id, "paid", agreement.Paid, "promised", agreement.Promised)
	s.invalidateStatistics(ctx)

	view := domain.NewAgreementView(agreement, s.Today())
	return &view, nil
}

func (s *NegotiationService) DeleteAgreement(ctx context.Context, id int64) error {
	if err := s.agreementRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return customError.WrapAgreementNotFound(id)
		}
		return customError.WrapDatabaseError(err)
	}

	s.logger.Info("agreement deleted", "agreement_id", id)
	s.invalidateStatistics(ctx)
	return nil
}

func (s *NegotiationService) getAgreement(ctx context.Context, id int64) (*domain.Agreement, error) {
	agreement, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapAgreementNotFound(id)
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return agreement, nil
}

func (s *NegotiationService) invalidateStatistics(ctx context.Context) {
	s.statsGeneration.Add(1)
	if err := s.statsCache.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate cached statistics", "error", customError.WrapCacheError(err))
	}
}
