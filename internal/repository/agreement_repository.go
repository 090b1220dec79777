package repository

import (
	"context"
	"database/sql"

	"github.com/segyhp/easy-service/internal/domain"
	"github.com/segyhp/easy-service/pkg/utils"

	"github.com/jmoiron/sqlx"
)

type agreementRepository struct {
	db *sqlx.DB
}

func NewAgreementRepository(db *sqlx.DB) AgreementRepository {
	return &agreementRepository{db: db}
}

func (r *agreementRepository) Create(ctx context.Context, agreement *domain.Agreement) error {
	query := `
		INSERT INTO agreements (customer_id, product, value, create_date, days_until_due, paid, promised)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	return r.db.QueryRowxContext(ctx, query,
		agreement.CustomerID,
		agreement.Product,
		agreement.Value,
		agreement.CreateDate,
		agreement.DaysUntilDue,
		agreement.Paid,
		agreement.Promised,
	).Scan(&agreement.ID)
}

func (r *agreementRepository) GetByID(ctx context.Context, id int64) (*domain.Agreement, error) {
	query := `
		SELECT id, customer_id, product, value, create_date, days_until_due, paid, promised
		FROM agreements
		WHERE id = $1
	`

	var agreement domain.Agreement
	err := r.db.GetContext(ctx, &agreement, query, id)
	if err != nil {
		return nil, err
	}

	agreement.CreateDate = utils.Day(agreement.CreateDate)
	return &agreement, nil
}

func (r *agreementRepository) List(ctx context.Context) ([]*domain.Agreement, error) {
	query := `
		SELECT id, customer_id, product, value, create_date, days_until_due, paid, promised
		FROM agreements
		ORDER BY id
	`

	var agreements []*domain.Agreement
	err := r.db.SelectContext(ctx, &agreements, query)
	if err != nil {
		return nil, err
	}

	for _, a := range agreements {
		a.CreateDate = utils.Day(a.CreateDate)
	}
	return agreements, nil
}

func (r *agreementRepository) UpdateFlags(ctx context.Context, agreement *domain.Agreement) error {
	query := `
		UPDATE agreements
		SET paid = $2, promised = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, agreement.ID, agreement.Paid, agreement.Promised)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

func (r *agreementRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM agreements WHERE id = $1`, id)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

// expectAffected turns an update or delete that matched nothing into sql.ErrNoRows.
func expectAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
