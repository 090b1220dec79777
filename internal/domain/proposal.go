package domain

import (
	"fmt"
	"time"

	customError "github.com/segyhp/easy-service/pkg/errors"
	"github.com/segyhp/easy-service/pkg/money"
	"github.com/segyhp/easy-service/pkg/utils"
	"github.com/segyhp/easy-service/pkg/validation"

	"github.com/shopspring/decimal"
)

// Days given to pay when the agent does not pick a due date:
// the first offer is due tomorrow, any later one in three days.
const (
	FirstProposalDaysForPayment = 1
	ElseProposalsDaysForPayment = 3
)

const (
	PaymentInCash      = "À vista"
	PaymentInstallment = "Parcelado"
)

var minusHundred = decimal.NewFromInt(-100)

// Proposal is a payment offer made to a customer. It is either a
// CashProposal or an InstallmentProposal; both are immutable values.
type Proposal interface {
	IsInstallment() bool
	InstallmentCount() int
	FirstInstallment() decimal.Decimal
	RestInstallment() (decimal.Decimal, bool)
	DueDate() time.Time
	Total() decimal.Decimal
	Formatted(f money.Formatter) string
	FormattedWithDueDate(f money.Formatter) string
	DiscountPercentFrom(other Proposal) (decimal.Decimal, error)
	ToAgreement(customerID string, today time.Time) *Agreement

	isProposal()
}

// CashProposal is a single payment of Amount due on Due.
type CashProposal struct {
	Amount decimal.Decimal
	Due    time.Time
}

// InstallmentProposal is a First payment followed by Count-1 payments of Rest.
type InstallmentProposal struct {
	First decimal.Decimal
	Rest  decimal.Decimal
	Count int
	Due   time.Time
}

// NewProposal builds the proposal variant matching count. rest is ignored
// for cash proposals and required for installment ones.
func NewProposal(first decimal.Decimal, count int, rest *decimal.Decimal, dueDate time.Time) (Proposal, error) {
	if count < 1 {
		return nil, customError.WrapInvalidProposal(fmt.Sprintf("installment count must be at least 1, got %d", count))
	}
	if first.IsNegative() {
		return nil, customError.WrapInvalidProposal("first installment must not be negative")
	}

	if count == 1 {
		return CashProposal{Amount: first, Due: utils.Day(dueDate)}, nil
	}

	if rest == nil {
		return nil, customError.WrapInvalidProposal("installment proposal without rest installment")
	}
	if rest.IsNegative() {
		return nil, customError.WrapInvalidProposal("rest installment must not be negative")
	}

	return InstallmentProposal{First: first, Rest: *rest, Count: count, Due: utils.Day(dueDate)}, nil
}

func (CashProposal) IsInstallment() bool { return false }

func (CashProposal) InstallmentCount() int { return 1 }

func (p CashProposal) FirstInstallment() decimal.Decimal { return p.Amount }

func (CashProposal) RestInstallment() (decimal.Decimal, bool) { return decimal.Zero, false }

func (p CashProposal) DueDate() time.Time { return p.Due }

func (p CashProposal) Total() decimal.Decimal { return p.Amount }

func (p CashProposal) Formatted(f money.Formatter) string {
	return f.Format(p.Amount)
}

func (p CashProposal) FormattedWithDueDate(f money.Formatter) string {
	return formattedWithDueDate(p, f)
}

func (p CashProposal) DiscountPercentFrom(other Proposal) (decimal.Decimal, error) {
	return discountPercent(p, other)
}

func (p CashProposal) ToAgreement(customerID string, today time.Time) *Agreement {
	return toAgreement(p, customerID, today)
}

func (CashProposal) isProposal() {}

func (InstallmentProposal) IsInstallment() bool { return true }

func (p InstallmentProposal) InstallmentCount() int { return p.Count }

func (p InstallmentProposal) FirstInstallment() decimal.Decimal { return p.First }

func (p InstallmentProposal) RestInstallment() (decimal.Decimal, bool) { return p.Rest, true }

func (p InstallmentProposal) DueDate() time.Time { return p.Due }

// Total is First + (Count-1) * Rest.
func (p InstallmentProposal) Total() decimal.Decimal {
	return p.First.Add(p.Rest.Mul(decimal.NewFromInt(int64(p.Count - 1))))
}

// Formatted renders "<first> + <N-1>x <rest>".
func (p InstallmentProposal) Formatted(f money.Formatter) string {
	return fmt.Sprintf("%s + %dx %s", f.Format(p.First), p.Count-1, f.Format(p.Rest))
}

func (p InstallmentProposal) FormattedWithDueDate(f money.Formatter) string {
	return formattedWithDueDate(p, f)
}

func (p InstallmentProposal) DiscountPercentFrom(other Proposal) (decimal.Decimal, error) {
	return discountPercent(p, other)
}

func (p InstallmentProposal) ToAgreement(customerID string, today time.Time) *Agreement {
	return toAgreement(p, customerID, today)
}

func (InstallmentProposal) isProposal() {}

// formattedWithDueDate renders the proposal followed by " até dd/mm.".
func formattedWithDueDate(p Proposal, f money.Formatter) string {
	return fmt.Sprintf("%s até %s.", p.Formatted(f), utils.FormatDayMonth(p.DueDate()))
}

// discountPercent is round((p/other - 1) * -100, 2); positive means p is cheaper.
func discountPercent(p, other Proposal) (decimal.Decimal, error) {
	otherTotal := other.Total()
	if otherTotal.IsZero() {
		return decimal.Zero, customError.WrapDivisionByZero()
	}
	return p.Total().Div(otherTotal).Sub(decimal.NewFromInt(1)).Mul(minusHundred).Round(2), nil
}

func toAgreement(p Proposal, customerID string, today time.Time) *Agreement {
	today = utils.Day(today)
	return &Agreement{
		CustomerID:   validation.NormalizeCPF(customerID),
		Value:        p.Total(),
		CreateDate:   today,
		DaysUntilDue: utils.DaysBetween(today, p.DueDate()),
	}
}

// PaymentKind labels a proposal as in cash or in installments.
func PaymentKind(p Proposal) string {
	if p.IsInstallment() {
		return PaymentInstallment
	}
	return PaymentInCash
}

// DefaultDueDate is the due date of the index-th proposal of a negotiation
// when the agent did not choose one.
func DefaultDueDate(index int, today time.Time) time.Time {
	if index == 0 {
		return utils.AddDays(today, FirstProposalDaysForPayment)
	}
	return utils.AddDays(today, ElseProposalsDaysForPayment)
}
