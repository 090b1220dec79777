package export

import (
	"fmt"
	"io"

	"github.com/segyhp/easy-service/internal/domain"
	"github.com/segyhp/easy-service/pkg/utils"
	"github.com/segyhp/easy-service/pkg/validation"

	"github.com/xuri/excelize/v2"
)

const (
	AgreementsSheet = "Acordos"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var agreementHeader = []interface{}{"CPF", "Produto", "Valor", "Criação", "Vencimento", "Pago", "Promessa", "Estado"}

// WriteAgreements writes the agreements as a single-sheet XLSX workbook.
func WriteAgreements(w io.Writer, agreements []domain.AgreementView) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), AgreementsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(AgreementsSheet, "A1", &agreementHeader); err != nil {
		return err
	}

	for i, a := range agreements {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			validation.FormatCPF(a.CustomerID),
			a.Product,
			a.Value.InexactFloat64(),
			utils.FormatDate(a.CreateDate),
			utils.FormatDate(a.DueDate),
			yesNo(a.Paid),
			yesNo(a.Promised),
			a.State.Label(),
		}
		if err := f.SetSheetRow(AgreementsSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}

func yesNo(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}
