package repository

import (
	"context"
	"time"

	"github.com/segyhp/easy-service/internal/domain"

	"github.com/shopspring/decimal"
)

// AgreementRepository defines the interface for agreement data operations
type AgreementRepository interface {
	// Create stores a new agreement and sets its ID
	Create(ctx context.Context, agreement *domain.Agreement) error

	// GetByID retrieves an agreement by its ID
	GetByID(ctx context.Context, id int64) (*domain.Agreement, error)

	// List retrieves every agreement ordered by ID
	List(ctx context.Context) ([]*domain.Agreement, error)

	// UpdateFlags persists the paid and promised flags of an agreement
	UpdateFlags(ctx context.Context, agreement *domain.Agreement) error

	// Delete removes an agreement
	Delete(ctx context.Context, id int64) error
}

// ExceptionProposalRepository defines the interface for exception proposal history
type ExceptionProposalRepository interface {
	// Create stores a new record and sets its ID
	Create(ctx context.Context, record *domain.ExceptionProposalRecord) error

	// GetByID retrieves a record by its ID
	GetByID(ctx context.Context, id int64) (*domain.ExceptionProposalRecord, error)

	// List retrieves every record ordered by ID
	List(ctx context.Context) ([]*domain.ExceptionProposalRecord, error)

	// UpdateCounterProposal stores the manager's answer
	UpdateCounterProposal(ctx context.Context, id int64, counterProposal decimal.Decimal, installments int) error

	// Delete removes a record
	Delete(ctx context.Context, id int64) error

	// DeleteCreatedBefore removes records created before cutoff and returns how many were removed
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
