package cashflow

import "time"

// Standing is the presentational band for the month-end balance.
type Standing string

const (
	StandingInTheRed    Standing = "in_the_red"
	StandingCloseToZero Standing = "close_to_zero"
	StandingInTheGreen  Standing = "in_the_green"
)

// closeToZeroThreshold is the fixed cutoff, in cents, under which a
// non-negative month-end balance is flagged as getting close to zero.
const closeToZeroThreshold = 50000 // $500.00

// AccountSnapshot is the slice of a bank account the aggregator reads.
type AccountSnapshot struct {
	Name     string
	Balance  int64
	IsActive bool
}

// CardSnapshot is the slice of a credit card the aggregator reads.
// Balance is the amount owed.
type CardSnapshot struct {
	ID       string
	Balance  int64
	IsActive bool
}

// ExpenseSnapshot is the slice of an expense or subscription row the
// aggregator reads.
type ExpenseSnapshot struct {
	ID     string
	Amount int64
}

// AggregateInput carries everything the aggregation needs: row snapshots
// plus the session-local received/paid override sets keyed by occurrence
// and row IDs.
type AggregateInput struct {
	Accounts []AccountSnapshot
	Incomes  []IncomeSource
	Expenses []ExpenseSnapshot
	Cards    []CardSnapshot
	Received map[string]struct{}
	Paid     map[string]struct{}
	Month    time.Time
}

// Summary holds the four headline numbers plus the standing band.
// All amounts are cents.
type Summary struct {
	CurrentCash     int64    `json:"current_cash"`
	UpcomingIncome  int64    `json:"upcoming_income"`
	ForecastedCash  int64    `json:"forecasted_cash"`
	TotalExpenses   int64    `json:"total_expenses"`
	MonthEndBalance int64    `json:"month_end_balance"`
	Standing        Standing `json:"standing"`
}

// Aggregate reduces the snapshots into the dashboard summary.
//
// Current cash sums active bank accounts, excluding the "Cash"
// pseudo-account. Upcoming income sums the expanded income occurrences not
// yet marked received. Total expenses sums unpaid expenses and
// subscriptions plus the balances of active credit cards. The month-end
// balance is forecasted cash minus total expenses.
func Aggregate(in AggregateInput) Summary {
	var currentCash int64
	for _, account := range in.Accounts {
		if account.IsActive && account.Name != "Cash" {
			currentCash += account.Balance
		}
	}

	var upcomingIncome int64
	for _, src := range in.Incomes {
		for _, occ := range ExpandOccurrences(src, in.Month) {
			if _, received := in.Received[occ.ID]; !received {
				upcomingIncome += occ.Amount
			}
		}
	}

	var totalExpenses int64
	for _, expense := range in.Expenses {
		if _, paid := in.Paid[expense.ID]; !paid {
			totalExpenses += expense.Amount
		}
	}
	for _, card := range in.Cards {
		if card.IsActive {
			totalExpenses += card.Balance
		}
	}

	forecastedCash := currentCash + upcomingIncome
	monthEnd := forecastedCash - totalExpenses

	return Summary{
		CurrentCash:     currentCash,
		UpcomingIncome:  upcomingIncome,
		ForecastedCash:  forecastedCash,
		TotalExpenses:   totalExpenses,
		MonthEndBalance: monthEnd,
		Standing:        standingFor(monthEnd),
	}
}

func standingFor(balance int64) Standing {
	switch {
	case balance < 0:
		return StandingInTheRed
	case balance < closeToZeroThreshold:
		return StandingCloseToZero
	default:
		return StandingInTheGreen
	}
}
