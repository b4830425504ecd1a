package cashflow

import (
	"fmt"
	"time"
)

// Frequency is how often an income source pays out within a month.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// ParseFrequency normalizes a stored frequency value. Anything outside the
// known set is treated as monthly, matching the permissive posture of the
// rest of the package.
func ParseFrequency(s string) Frequency {
	switch Frequency(s) {
	case FrequencyWeekly, FrequencyBiweekly:
		return Frequency(s)
	default:
		return FrequencyMonthly
	}
}

// PeriodCount returns how many payment occurrences the frequency produces
// per month.
func (f Frequency) PeriodCount() int {
	switch f {
	case FrequencyWeekly:
		return 4
	case FrequencyBiweekly:
		return 2
	default:
		return 1
	}
}

// IncomeSource is the snapshot of an income row the computations consume.
// Amount is the per-period fallback in cents; Amounts carries per-period
// overrides for weekly (4) and biweekly (2) sources.
type IncomeSource struct {
	ID        string
	Amount    int64
	Frequency Frequency
	Amounts   []int64
}

// periodAmount returns the amount for period i, falling back to the scalar
// amount when the override is missing or zero. A zero override falls back
// on purpose: it means the cell was never filled in, not a zero paycheck.
func (s IncomeSource) periodAmount(i int) int64 {
	if i < len(s.Amounts) && s.Amounts[i] != 0 {
		return s.Amounts[i]
	}
	return s.Amount
}

// MonthlyEquivalent returns the canonical monthly amount of an income
// source: the scalar amount for monthly sources, the sum of the per-period
// amounts otherwise.
func MonthlyEquivalent(src IncomeSource) int64 {
	freq := ParseFrequency(string(src.Frequency))
	if freq == FrequencyMonthly {
		return src.Amount
	}
	var total int64
	for i := 0; i < freq.PeriodCount(); i++ {
		total += src.periodAmount(i)
	}
	return total
}

// Occurrence is a single expected payment within the reference month.
type Occurrence struct {
	ID     string    `json:"id"`
	Label  string    `json:"label,omitempty"`
	Amount int64     `json:"amount"`
	Date   time.Time `json:"date"`
}

// ExpandOccurrences expands an income source into its individual payment
// occurrences for the month containing refMonth. Weekly sources produce
// four rows at days 1, 8, 15, 22 and biweekly two rows at days 1 and 15;
// these dates exist only to give the rows a stable sort order and make no
// claim about the real payroll calendar. Monthly sources produce a single
// unlabeled row whose occurrence ID is the source ID itself.
func ExpandOccurrences(src IncomeSource, refMonth time.Time) []Occurrence {
	year, month := refMonth.Year(), refMonth.Month()

	switch ParseFrequency(string(src.Frequency)) {
	case FrequencyWeekly:
		occurrences := make([]Occurrence, 0, 4)
		for i := 0; i < 4; i++ {
			occurrences = append(occurrences, Occurrence{
				ID:     fmt.Sprintf("%s_week_%d", src.ID, i),
				Label:  fmt.Sprintf("Week %d", i+1),
				Amount: src.periodAmount(i),
				Date:   time.Date(year, month, 1+7*i, 0, 0, 0, 0, time.UTC),
			})
		}
		return occurrences

	case FrequencyBiweekly:
		labels := [2]string{"1st Paycheck", "2nd Paycheck"}
		days := [2]int{1, 15}
		occurrences := make([]Occurrence, 0, 2)
		for i := 0; i < 2; i++ {
			occurrences = append(occurrences, Occurrence{
				ID:     fmt.Sprintf("%s_bi_%d", src.ID, i),
				Label:  labels[i],
				Amount: src.periodAmount(i),
				Date:   time.Date(year, month, days[i], 0, 0, 0, 0, time.UTC),
			})
		}
		return occurrences

	default:
		return []Occurrence{{
			ID:     src.ID,
			Amount: src.Amount,
			Date:   time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		}}
	}
}

// ForwardFill applies the creation-wizard cascade to a slice of per-period
// amounts: every zero slot inherits the nearest earlier non-zero value, so
// filling in Week 1 pre-populates Weeks 2-4 while leaving anything already
// entered alone. Earlier slots are never back-filled. This runs only when
// a source is created; inline edits afterwards touch exactly one index.
func ForwardFill(amounts []int64) []int64 {
	out := make([]int64, len(amounts))
	var carry int64
	for i, v := range amounts {
		if v != 0 {
			carry = v
		}
		out[i] = carry
	}
	return out
}
