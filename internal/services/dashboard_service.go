package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"oneview/internal/cashflow"
	apperrors "oneview/internal/errors"
	"oneview/internal/models"
	"oneview/internal/settlement"
)

// dashboardService computes the month-level dashboard from the user's rows
// and the session-local settlement sets.
type dashboardService struct {
	db          *gorm.DB
	settlements *settlement.Store
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB, settlements *settlement.Store) DashboardServicer {
	return &dashboardService{db: db, settlements: settlements}
}

// GetSummary loads the user's accounts, income sources, expenses, and
// cards, then reduces them into the headline numbers plus the expanded
// income occurrence rows. All date math is anchored on the caller's today.
func (s *dashboardService) GetSummary(userID string, today time.Time) (*DashboardSummary, error) {
	rows, err := s.loadRows(userID)
	if err != nil {
		return nil, err
	}

	received := s.settlements.Snapshot(userID, settlement.KindIncome)
	paid := s.settlements.Snapshot(userID, settlement.KindExpense)

	in := cashflow.AggregateInput{
		Accounts: make([]cashflow.AccountSnapshot, 0, len(rows.accounts)),
		Incomes:  make([]cashflow.IncomeSource, 0, len(rows.incomes)),
		Expenses: make([]cashflow.ExpenseSnapshot, 0, len(rows.expenses)),
		Cards:    make([]cashflow.CardSnapshot, 0, len(rows.cards)),
		Received: received,
		Paid:     paid,
		Month:    today,
	}
	for _, a := range rows.accounts {
		in.Accounts = append(in.Accounts, cashflow.AccountSnapshot{Name: a.Name, Balance: a.Balance, IsActive: a.IsActive})
	}
	for _, inc := range rows.incomes {
		in.Incomes = append(in.Incomes, incomeSnapshot(inc))
	}
	for _, e := range rows.expenses {
		in.Expenses = append(in.Expenses, cashflow.ExpenseSnapshot{ID: e.ID, Amount: e.Amount})
	}
	for _, c := range rows.cards {
		in.Cards = append(in.Cards, cashflow.CardSnapshot{ID: c.ID, Balance: c.Balance, IsActive: c.IsActive})
	}

	summary := cashflow.Aggregate(in)

	occurrenceRows := make([]IncomeOccurrenceRow, 0)
	for _, inc := range rows.incomes {
		for _, occ := range cashflow.ExpandOccurrences(incomeSnapshot(inc), today) {
			_, isReceived := received[occ.ID]
			occurrenceRows = append(occurrenceRows, IncomeOccurrenceRow{
				OccurrenceID: occ.ID,
				SourceID:     inc.ID,
				Source:       inc.Source,
				Label:        occ.Label,
				Amount:       occ.Amount,
				Date:         occ.Date,
				Received:     isReceived,
			})
		}
	}
	sort.SliceStable(occurrenceRows, func(i, j int) bool {
		return occurrenceRows[i].Date.Before(occurrenceRows[j].Date)
	})

	return &DashboardSummary{Summary: summary, IncomeOccurrences: occurrenceRows}, nil
}

// GetUpcoming returns the user's upcoming bills: expenses and
// subscriptions at their stored due dates and active credit cards at the
// next occurrence of their due day, sorted soonest first.
func (s *dashboardService) GetUpcoming(userID string, today time.Time) ([]UpcomingItem, error) {
	rows, err := s.loadRows(userID)
	if err != nil {
		return nil, err
	}

	paid := s.settlements.Snapshot(userID, settlement.KindExpense)

	items := make([]UpcomingItem, 0, len(rows.expenses)+len(rows.cards))
	for _, e := range rows.expenses {
		_, isPaid := paid[e.ID]
		items = append(items, UpcomingItem{
			ID:       e.ID,
			Name:     e.Name,
			Kind:     string(e.Type),
			Amount:   e.Amount,
			DueDate:  e.DueDate,
			DueLabel: cashflow.DueLabel(e.DueDate, today),
			Paid:     isPaid,
		})
	}
	for _, c := range rows.cards {
		if !c.IsActive {
			continue
		}
		due := cashflow.NextOccurrence(c.DueDay, today)
		_, isPaid := paid[c.ID]
		items = append(items, UpcomingItem{
			ID:       c.ID,
			Name:     c.Name,
			Kind:     "credit_card",
			Amount:   c.Balance,
			DueDate:  due,
			DueLabel: cashflow.DueLabel(due, today),
			Paid:     isPaid,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueDate.Before(items[j].DueDate)
	})
	return items, nil
}

// ToggleSettlement flips one item between pending and settled for the
// session and reports the new state.
func (s *dashboardService) ToggleSettlement(userID string, kind settlement.Kind, itemID string) bool {
	return s.settlements.Toggle(userID, kind, itemID)
}

// ResetSettlements returns every item to pending for the user.
func (s *dashboardService) ResetSettlements(userID string) {
	s.settlements.Reset(userID)
}

// userRows bundles one snapshot of all dashboard inputs.
type userRows struct {
	accounts []models.Account
	incomes  []models.IncomeSource
	expenses []models.Expense
	cards    []models.CreditCard
}

func (s *dashboardService) loadRows(userID string) (*userRows, error) {
	var rows userRows
	if err := s.db.Where("user_id = ?", userID).Find(&rows.accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Where("user_id = ?", userID).Find(&rows.incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Where("user_id = ?", userID).Find(&rows.expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Where("user_id = ?", userID).Find(&rows.cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &rows, nil
}

func incomeSnapshot(inc models.IncomeSource) cashflow.IncomeSource {
	return cashflow.IncomeSource{
		ID:        inc.ID,
		Amount:    inc.Amount,
		Frequency: cashflow.ParseFrequency(inc.Frequency),
		Amounts:   inc.Amounts,
	}
}
