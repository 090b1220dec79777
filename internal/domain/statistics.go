package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/segyhp/easy-service/pkg/money"
	"github.com/segyhp/easy-service/pkg/utils"

	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodAny   Period = "any"
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(s)) {
	case "", PeriodAny:
		return PeriodAny, nil
	case PeriodToday:
		return PeriodToday, nil
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodMonth:
		return PeriodMonth, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Contains reports whether day falls inside the period around today:
// the day itself, its Monday-started week, or its calendar month.
func (p Period) Contains(day, today time.Time) bool {
	day = utils.Day(day)
	var start, end time.Time
	switch p {
	case PeriodToday:
		start = utils.Day(today)
		end = start.AddDate(0, 0, 1)
	case PeriodWeek:
		start = utils.StartOfWeek(today)
		end = start.AddDate(0, 0, 7)
	case PeriodMonth:
		start = utils.StartOfMonth(today)
		end = start.AddDate(0, 1, 0)
	default:
		return true
	}
	return !day.Before(start) && day.Before(end)
}

// Sort keys accepted by AgreementFilter.
const (
	SortByCPF        = "cpf"
	SortByValue      = "value"
	SortByCreateDate = "create_date"
	SortByDueDate    = "due_date"
	SortByPaid       = "paid"
	SortByPromised   = "promised"
)

// ParseSortBy accepts one of the sort keys, case-insensitively; empty keeps storage order.
func ParseSortBy(s string) (string, error) {
	key := strings.ToLower(s)
	if key == "" || agreementLess(key) != nil {
		return key, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

type AgreementFilter struct {
	State   *AgreementState
	CPF     string
	Period  Period
	SortBy  string
	Reverse bool
}

// FilterAgreements keeps the agreements matching filter, sorted as requested.
// The input slice is not modified.
func FilterAgreements(agreements []*Agreement, filter AgreementFilter, today time.Time) []*Agreement {
	cpf := strings.NewReplacer(".", "", "-", "").Replace(filter.CPF)

	result := make([]*Agreement, 0, len(agreements))
	for _, a := range agreements {
		if filter.State != nil && a.State(today) != *filter.State {
			continue
		}
		if cpf != "" && !strings.Contains(a.CustomerID, cpf) {
			continue
		}
		if !filter.Period.Contains(a.CreateDate, today) {
			continue
		}
		result = append(result, a)
	}

	if less := agreementLess(filter.SortBy); less != nil {
		sort.SliceStable(result, func(i, j int) bool {
			if filter.Reverse {
				return less(result[j], result[i])
			}
			return less(result[i], result[j])
		})
	}
	return result
}

func agreementLess(key string) func(a, b *Agreement) bool {
	switch key {
	case SortByCPF:
		return func(a, b *Agreement) bool { return a.CustomerID < b.CustomerID }
	case SortByValue:
		return func(a, b *Agreement) bool { return a.Value.LessThan(b.Value) }
	case SortByCreateDate:
		return func(a, b *Agreement) bool { return a.CreateDate.Before(b.CreateDate) }
	case SortByDueDate:
		return func(a, b *Agreement) bool { return a.DueDate().Before(b.DueDate()) }
	case SortByPaid:
		return func(a, b *Agreement) bool { return !a.Paid && b.Paid }
	case SortByPromised:
		return func(a, b *Agreement) bool { return !a.Promised && b.Promised }
	}
	return nil
}

type StateStatistics struct {
	Total           decimal.Decimal `json:"total"`
	TotalPercent    decimal.Decimal `json:"total_percent"`
	Quantity        int             `json:"quantity"`
	QuantityPercent decimal.Decimal `json:"quantity_percent"`
}

// Statistics sums the agreements of a period, overall and per state.
type Statistics struct {
	Negotiated decimal.Decimal                    `json:"negotiated"`
	Quantity   int                                `json:"quantity"`
	ByState    map[AgreementState]StateStatistics `json:"by_state"`
}

func Summarize(agreements []*Agreement, today time.Time) *Statistics {
	stats := &Statistics{
		Negotiated: decimal.Zero,
		ByState:    make(map[AgreementState]StateStatistics, len(States)),
	}
	for _, state := range States {
		stats.ByState[state] = StateStatistics{
			Total:           decimal.Zero,
			TotalPercent:    decimal.Zero,
			QuantityPercent: decimal.Zero,
		}
	}

	for _, a := range agreements {
		state := a.State(today)
		entry := stats.ByState[state]
		entry.Total = entry.Total.Add(a.Value)
		entry.Quantity++
		stats.ByState[state] = entry

		stats.Negotiated = stats.Negotiated.Add(a.Value)
		stats.Quantity++
	}

	quantity := decimal.NewFromInt(int64(stats.Quantity))
	for state, entry := range stats.ByState {
		entry.TotalPercent = money.Percent(entry.Total, stats.Negotiated)
		entry.QuantityPercent = money.Percent(decimal.NewFromInt(int64(entry.Quantity)), quantity)
		stats.ByState[state] = entry
	}

	return stats
}
