package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/segyhp/easy-service/pkg/utils"

	"github.com/shopspring/decimal"
)

// CancelInDays is how long after its due date an unpaid agreement is cancelled.
const CancelInDays = 10

type AgreementState string

const (
	StatePaid     AgreementState = "paid"
	StatePromise  AgreementState = "promise"
	StateCanceled AgreementState = "canceled"
	StateOverdue  AgreementState = "overdue"
	StateActive   AgreementState = "active"
)

// States lists every state in priority order.
var States = []AgreementState{StatePaid, StatePromise, StateCanceled, StateOverdue, StateActive}

var stateLabels = map[AgreementState]string{
	StatePaid:     "Pago",
	StatePromise:  "Promessa",
	StateCanceled: "Cancelado",
	StateOverdue:  "Atrasado",
	StateActive:   "Ativo",
}

// Label is the Portuguese name shown to agents.
func (s AgreementState) Label() string {
	return stateLabels[s]
}

// ParseState accepts either the state code or its Portuguese label.
func ParseState(s string) (AgreementState, error) {
	for _, state := range States {
		if strings.EqualFold(s, string(state)) || strings.EqualFold(s, state.Label()) {
			return state, nil
		}
	}
	return "", fmt.Errorf("unknown agreement state %q", s)
}

// Agreement is a negotiated debt the customer accepted. Its state is never
// stored; it is derived from the dates and flags on every query.
type Agreement struct {
	ID           int64           `json:"id" db:"id"`
	CustomerID   string          `json:"customer_id" db:"customer_id"`
	Product      string          `json:"product,omitempty" db:"product"`
	Value        decimal.Decimal `json:"value" db:"value"`
	CreateDate   time.Time       `json:"create_date" db:"create_date"`
	DaysUntilDue int             `json:"days_until_due" db:"days_until_due"`
	Paid         bool            `json:"paid" db:"paid"`
	Promised     bool            `json:"promised" db:"promised"`
}

// DueDate is CreateDate + DaysUntilDue.
func (a *Agreement) DueDate() time.Time {
	return utils.AddDays(a.CreateDate, a.DaysUntilDue)
}

// CancelDate is DueDate + CancelInDays.
func (a *Agreement) CancelDate() time.Time {
	return utils.AddDays(a.DueDate(), CancelInDays)
}

func (a *Agreement) IsCancelled(today time.Time) bool {
	return utils.DaysBetween(a.CancelDate(), today) >= 0
}

func (a *Agreement) IsOverdue(today time.Time) bool {
	return utils.DaysBetween(a.DueDate(), today) > 0 && !a.IsCancelled(today)
}

func (a *Agreement) IsActive(today time.Time) bool {
	return !a.Paid && !a.Promised && !a.IsOverdue(today) && !a.IsCancelled(today)
}

// State resolves the lifecycle state; paid beats promise beats
// cancelled beats overdue beats active.
func (a *Agreement) State(today time.Time) AgreementState {
	switch {
	case a.Paid:
		return StatePaid
	case a.Promised:
		return StatePromise
	case a.IsCancelled(today):
		return StateCanceled
	case a.IsOverdue(today):
		return StateOverdue
	default:
		return StateActive
	}
}

// MarkPaid sets the paid flag. Promised is left as is.
func (a *Agreement) MarkPaid() {
	a.Paid = true
}

// MarkPromised sets the promised flag. Paid is left as is.
func (a *Agreement) MarkPromised() {
	a.Promised = true
}

// AgreementView is an agreement with its derived dates and state resolved for a given day.
type AgreementView struct {
	*Agreement
	DueDate    time.Time      `json:"due_date"`
	CancelDate time.Time      `json:"cancel_date"`
	State      AgreementState `json:"state"`
}

func NewAgreementView(a *Agreement, today time.Time) AgreementView {
	return AgreementView{
		Agreement:  a,
		DueDate:    a.DueDate(),
		CancelDate: a.CancelDate(),
		State:      a.State(today),
	}
}
