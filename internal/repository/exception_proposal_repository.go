package repository

import (
	"context"
	"time"

	"github.com/segyhp/easy-service/internal/domain"
	"github.com/segyhp/easy-service/pkg/utils"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type exceptionProposalRepository struct {
	db *sqlx.DB
}

func NewExceptionProposalRepository(db *sqlx.DB) ExceptionProposalRepository {
	return &exceptionProposalRepository{db: db}
}

func (r *exceptionProposalRepository) Create(ctx context.Context, record *domain.ExceptionProposalRecord) error {
	query := `
		INSERT INTO exception_proposals (customer_id, value, create_date, days_until_due, counter_proposal, installment_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	return r.db.QueryRowxContext(ctx, query,
		record.CustomerID,
		record.Value,
		record.CreateDate,
		record.DaysUntilDue,
		record.CounterProposal,
		record.InstallmentCount,
	).Scan(&record.ID)
}

func (r *exceptionProposalRepository) GetByID(ctx context.Context, id int64) (*domain.ExceptionProposalRecord, error) {
	query := `
		SELECT id, customer_id, value, create_date, days_until_due, counter_proposal, installment_count
		FROM exception_proposals
		WHERE id = $1
	`

	var record domain.ExceptionProposalRecord
	err := r.db.GetContext(ctx, &record, query, id)
	if err != nil {
		return nil, err
	}

	record.CreateDate = utils.Day(record.CreateDate)
	return &record, nil
}

func (r *exceptionProposalRepository) List(ctx context.Context) ([]*domain.ExceptionProposalRecord, error) {
	query := `
		SELECT id, customer_id, value, create_date, days_until_due, counter_proposal, installment_count
		FROM exception_proposals
		ORDER BY id
	`

	var records []*domain.ExceptionProposalRecord
	err := r.db.SelectContext(ctx, &records, query)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		record.CreateDate = utils.Day(record.CreateDate)
	}
	return records, nil
}

func (r *exceptionProposalRepository) UpdateCounterProposal(ctx context.Context, id int64, counterProposal decimal.Decimal, installments int) error {
	query := `
		UPDATE exception_proposals
		SET counter_proposal = $2, installment_count = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, counterProposal, installments)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

func (r *exceptionProposalRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM exception_proposals WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

func (r *exceptionProposalRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM exception_proposals WHERE create_date < $1`, utils.Day(cutoff))
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
