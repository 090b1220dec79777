package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/segyhp/easy-service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteAgreements(t *testing.T) {
	today := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)
	agreements := []domain.AgreementView{
		domain.NewAgreementView(&domain.Agreement{
			CustomerID:   "12345678909",
			Product:      "Cbrcrel",
			Value:        decimal.RequireFromString("200.5"),
			CreateDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			DaysUntilDue: 30,
			Promised:     true,
		}, today),
		domain.NewAgreementView(&domain.Agreement{
			CustomerID:   "98765432100",
			Value:        decimal.NewFromInt(80),
			CreateDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			DaysUntilDue: 1,
		}, today),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAgreements(&buf, agreements))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{AgreementsSheet}, f.GetSheetList())

	rows, err := f.GetRows(AgreementsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"CPF", "Produto", "Valor", "Criação", "Vencimento", "Pago", "Promessa", "Estado"}, rows[0])
	assert.Equal(t, []string{"123.456.789-09", "Cbrcrel", "200.5", "01/01/2024", "31/01/2024", "Não", "Sim", "Promessa"}, rows[1])
	assert.Equal(t, "Cancelado", rows[2][7])
}

func TestWriteAgreementsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAgreements(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(AgreementsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
