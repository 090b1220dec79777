package domain

import (
	"time"

	customError "github.com/segyhp/easy-service/pkg/errors"
	"github.com/segyhp/easy-service/pkg/utils"
	"github.com/segyhp/easy-service/pkg/validation"

	"github.com/shopspring/decimal"
)

// ProposalRequest is a proposal as typed by the agent. Amounts are BRL
// strings ("1.234,56"). Without DueDate or DaysUntilDue the proposal falls
// due on its default D+X day.
type ProposalRequest struct {
	FirstInstallment string `json:"first_installment" validate:"required,brl"`
	Installments     int    `json:"installments" validate:"omitempty,gte=1,lte=24"`
	RestInstallment  string `json:"rest_installment,omitempty" validate:"omitempty,brl"`
	DaysUntilDue     *int   `json:"days_until_due,omitempty" validate:"omitempty,gte=0"`
	DueDate          string `json:"due_date,omitempty" validate:"omitempty,br_date"`
}

// ToProposal builds the proposal; index is its position in the negotiation
// and picks the default due date.
func (r ProposalRequest) ToProposal(index int, today time.Time) (Proposal, error) {
	first, err := validation.ParseBRL(r.FirstInstallment)
	if err != nil {
		return nil, err
	}

	count := r.Installments
	if count == 0 {
		count = 1
	}

	var rest *decimal.Decimal
	if count > 1 {
		value, err := validation.ParseBRL(r.RestInstallment)
		if err != nil {
			return nil, err
		}
		rest = &value
	}

	due := DefaultDueDate(index, today)
	switch {
	case r.DueDate != "":
		if due, err = validation.ParseDate(r.DueDate); err != nil {
			return nil, err
		}
	case r.DaysUntilDue != nil:
		due = utils.AddDays(today, *r.DaysUntilDue)
	}
	if due.Before(utils.Day(today)) {
		return nil, customError.NewValidationError(validation.FieldDate, "Data de vencimento no passado.")
	}

	return NewProposal(first, count, rest, due)
}

// ToProposals converts a negotiation's proposals in order.
func ToProposals(requests []ProposalRequest, today time.Time) ([]Proposal, error) {
	proposals := make([]Proposal, 0, len(requests))
	for i, r := range requests {
		p, err := r.ToProposal(i, today)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, nil
}

type PreviewRequest struct {
	Proposals []ProposalRequest `json:"proposals" validate:"required,min=1,dive"`
}

type ProposalPreview struct {
	Kind                 string           `json:"kind"`
	Total                decimal.Decimal  `json:"total"`
	DueDate              time.Time        `json:"due_date"`
	Formatted            string           `json:"formatted"`
	FormattedWithDueDate string           `json:"formatted_with_due_date"`
	DiscountFromPrevious *decimal.Decimal `json:"discount_from_previous,omitempty"`
}

type PreviewResponse struct {
	Proposals []ProposalPreview `json:"proposals"`
}

type RefusalRequest struct {
	Proposals []ProposalRequest `json:"proposals" validate:"dive"`
	Reason    string            `json:"reason"`
}

type RefusalResponse struct {
	Text string `json:"text"`
}

type CreateAgreementRequest struct {
	CPF      string          `json:"cpf" validate:"required,cpf"`
	Product  string          `json:"product,omitempty"`
	Proposal ProposalRequest `json:"proposal"`
}

type CreateExceptionProposalRequest struct {
	CPF              string          `json:"cpf" validate:"required,cpf"`
	Product          string          `json:"product" validate:"required"`
	MainValue        string          `json:"main_value" validate:"required,brl"`
	Promotion        ProposalRequest `json:"promotion"`
	CustomerProposal ProposalRequest `json:"customer_proposal"`
	Email            string          `json:"email" validate:"required,br_email"`
	Phone            string          `json:"phone" validate:"required,br_phone"`
	DelayDays        int             `json:"delay_days" validate:"gte=0,lte=999"`
}

type ExceptionProposalResponse struct {
	Text   string                   `json:"text"`
	Record *ExceptionProposalRecord `json:"record"`
}

// EditExceptionProposalRequest carries the manager's counter proposal.
type EditExceptionProposalRequest struct {
	CounterProposal string `json:"counter_proposal" validate:"required,brl"`
	Installments    int    `json:"installments" validate:"gte=1,lte=24"`
}
