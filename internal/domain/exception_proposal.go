package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/segyhp/easy-service/pkg/money"
	"github.com/segyhp/easy-service/pkg/utils"
	"github.com/segyhp/easy-service/pkg/validation"

	"github.com/shopspring/decimal"
)

// ExceptionProposal is an offer outside the regular discount policy that
// needs a manager's approval. Promotion is the best offer the agent could
// make; CustomerProposal is what the customer asked for.
type ExceptionProposal struct {
	CPF              string
	Product          Product
	MainValue        decimal.Decimal
	Promotion        Proposal
	CustomerProposal Proposal
	Email            string
	Phone            string
	DelayDays        int
}

// TextToCopy is the summary sent to the manager.
func (e *ExceptionProposal) TextToCopy(f money.Formatter) string {
	lines := []string{
		"CPF: " + validation.FormatCPF(e.CPF),
		"Produto: " + string(e.Product),
		"Valor atualizado: " + f.Format(e.MainValue),
		"Valor com desconto: " + e.Promotion.Formatted(f),
		fmt.Sprintf("Dias em atraso: %d", e.DelayDays),
		"Data proposta para pagamento: " + utils.FormatDate(e.CustomerProposal.DueDate()),
		"Proposta para pagamento: " + PaymentKind(e.CustomerProposal),
		"Valor proposto para pagamento: " + e.CustomerProposal.Formatted(f),
	}
	if discount, err := e.CustomerProposal.DiscountPercentFrom(e.Promotion); err == nil {
		lines = append(lines, "Desconto sobre a ultima proposta: "+money.FormatAmount(discount)+"%")
	}
	lines = append(lines,
		"Telefone: "+validation.FormatPhone(e.Phone),
		"E-mail: "+e.Email,
	)
	return strings.Join(lines, "\n")
}

// ToRecord is the history entry kept for the exception proposal.
func (e *ExceptionProposal) ToRecord(today time.Time) *ExceptionProposalRecord {
	today = utils.Day(today)
	return &ExceptionProposalRecord{
		CustomerID:   validation.NormalizeCPF(e.CPF),
		Value:        e.CustomerProposal.Total(),
		CreateDate:   today,
		DaysUntilDue: utils.DaysBetween(today, e.CustomerProposal.DueDate()),
	}
}

// ExceptionProposalRecord is the stored history of an exception proposal.
// CounterProposal and InstallmentCount are filled in once the manager answers.
type ExceptionProposalRecord struct {
	ID               int64               `json:"id" db:"id"`
	CustomerID       string              `json:"customer_id" db:"customer_id"`
	Value            decimal.Decimal     `json:"value" db:"value"`
	CreateDate       time.Time           `json:"create_date" db:"create_date"`
	DaysUntilDue     int                 `json:"days_until_due" db:"days_until_due"`
	CounterProposal  decimal.NullDecimal `json:"counter_proposal" db:"counter_proposal"`
	InstallmentCount *int                `json:"installment_count" db:"installment_count"`
}

func (r *ExceptionProposalRecord) DueDate() time.Time {
	return utils.AddDays(r.CreateDate, r.DaysUntilDue)
}

// ExpiredBefore reports whether the record was created more than retentionDays ago.
func (r *ExceptionProposalRecord) ExpiredBefore(today time.Time, retentionDays int) bool {
	return utils.DaysBetween(r.CreateDate, today) > retentionDays
}
