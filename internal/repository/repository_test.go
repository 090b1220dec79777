package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/segyhp/easy-service/internal/database"
	"github.com/segyhp/easy-service/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to TEST_DATABASE_URL, migrates it and empties the tables.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, database.Migrate(url))

	db, err := sqlx.Connect("postgres", url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec("TRUNCATE agreements, exception_proposals RESTART IDENTITY")
	require.NoError(t, err)

	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAgreementRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAgreementRepository(db)
	ctx := context.Background()

	agreement := &domain.Agreement{
		CustomerID:   "12345678909",
		Product:      string(domain.ProductCbrcrel),
		Value:        decimal.RequireFromString("200.50"),
		CreateDate:   day(2024, 1, 1),
		DaysUntilDue: 30,
	}
	require.NoError(t, repo.Create(ctx, agreement))
	assert.NotZero(t, agreement.ID)

	got, err := repo.GetByID(ctx, agreement.ID)
	require.NoError(t, err)
	assert.Equal(t, "12345678909", got.CustomerID)
	assert.True(t, got.Value.Equal(agreement.Value))
	assert.Equal(t, day(2024, 1, 1), got.CreateDate)
	assert.Equal(t, day(2024, 1, 31), got.DueDate())

	got.MarkPromised()
	got.MarkPaid()
	require.NoError(t, repo.UpdateFlags(ctx, got))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Paid)
	assert.True(t, list[0].Promised)

	require.NoError(t, repo.Delete(ctx, agreement.ID))
	assert.True(t, errors.Is(repo.Delete(ctx, agreement.ID), sql.ErrNoRows))

	_, err = repo.GetByID(ctx, agreement.ID)
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	missing := &domain.Agreement{ID: 9999}
	assert.True(t, errors.Is(repo.UpdateFlags(ctx, missing), sql.ErrNoRows))
}

func TestExceptionProposalRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExceptionProposalRepository(db)
	ctx := context.Background()

	old := &domain.ExceptionProposalRecord{
		CustomerID:   "12345678909",
		Value:        decimal.NewFromInt(800),
		CreateDate:   day(2024, 1, 1),
		DaysUntilDue: 14,
	}
	recent := &domain.ExceptionProposalRecord{
		CustomerID:   "98765432100",
		Value:        decimal.NewFromInt(300),
		CreateDate:   day(2024, 2, 10),
		DaysUntilDue: 3,
	}
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))

	got, err := repo.GetByID(ctx, old.ID)
	require.NoError(t, err)
	assert.False(t, got.CounterProposal.Valid)
	assert.Nil(t, got.InstallmentCount)

	require.NoError(t, repo.UpdateCounterProposal(ctx, old.ID, decimal.NewFromInt(650), 5))
	got, err = repo.GetByID(ctx, old.ID)
	require.NoError(t, err)
	assert.True(t, got.CounterProposal.Valid)
	assert.True(t, got.CounterProposal.Decimal.Equal(decimal.NewFromInt(650)))
	require.NotNil(t, got.InstallmentCount)
	assert.Equal(t, 5, *got.InstallmentCount)

	removed, err := repo.DeleteCreatedBefore(ctx, day(2024, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, recent.ID, list[0].ID)

	require.NoError(t, repo.Delete(ctx, recent.ID))
	assert.True(t, errors.Is(repo.Delete(ctx, recent.ID), sql.ErrNoRows))
	assert.True(t, errors.Is(repo.UpdateCounterProposal(ctx, recent.ID, decimal.Zero, 1), sql.ErrNoRows))
}
