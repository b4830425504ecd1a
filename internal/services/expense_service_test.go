package services

import (
	"testing"
	"time"

	"oneview/internal/models"
	"oneview/internal/pagination"
	"oneview/internal/testutil"
)

func TestCreateExpense(t *testing.T) {
	today := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("due_day_resolved_to_next_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense, err := svc.CreateExpense(user.ID, "Rent", 150000, 15, "Housing", models.ExpenseTypeExpense, "", today)
		testutil.AssertNoError(t, err)

		want := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
		if !expense.DueDate.Equal(want) {
			t.Errorf("expected due date %v, got %v", want, expense.DueDate)
		}
	})

	t.Run("passed_day_rolls_to_next_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense, err := svc.CreateExpense(user.ID, "Gym", 4500, 5, "Health", models.ExpenseTypeSubscription, "", today)
		testutil.AssertNoError(t, err)

		want := time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC)
		if !expense.DueDate.Equal(want) {
			t.Errorf("expected due date %v, got %v", want, expense.DueDate)
		}
	})

	t.Run("invalid_due_day_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, "Rent", 150000, 0, "", models.ExpenseTypeExpense, "", today)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateExpense(user.ID, "Rent", 150000, 32, "", models.ExpenseTypeExpense, "", today)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_type_defaults_to_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense, err := svc.CreateExpense(user.ID, "Misc", 1000, 1, "", models.ExpenseType("weird"), "", today)
		testutil.AssertNoError(t, err)
		if expense.Type != models.ExpenseTypeExpense {
			t.Errorf("expected expense type, got %s", expense.Type)
		}
	})
}

func TestGetUserExpenses(t *testing.T) {
	t.Run("type_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)
		due := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

		testutil.CreateTestExpense(t, db, user.ID, 20000, models.ExpenseTypeExpense, due)
		testutil.CreateTestExpense(t, db, user.ID, 1500, models.ExpenseTypeSubscription, due)
		testutil.CreateTestExpense(t, db, user.ID, 999, models.ExpenseTypeSubscription, due)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		subs := models.ExpenseTypeSubscription
		result, err := svc.GetUserExpenses(user.ID, page, &subs)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 subscriptions, got %d", result.TotalItems)
		}
	})

	t.Run("sorted_by_due_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		late := testutil.CreateTestExpense(t, db, user.ID, 1, models.ExpenseTypeExpense,
			time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC))
		early := testutil.CreateTestExpense(t, db, user.ID, 1, models.ExpenseTypeExpense,
			time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserExpenses(user.ID, page, nil)
		testutil.AssertNoError(t, err)

		if len(result.Data) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(result.Data))
		}
		if result.Data[0].ID != early.ID || result.Data[1].ID != late.ID {
			t.Error("expected expenses ordered by due date")
		}
	})
}

func TestDeleteExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewExpenseService(db)
	user := testutil.CreateTestUser(t, db)
	expense := testutil.CreateTestExpense(t, db, user.ID, 20000, models.ExpenseTypeExpense,
		time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC))

	testutil.AssertNoError(t, svc.DeleteExpense(user.ID, expense.ID))

	_, err := svc.GetExpenseByID(user.ID, expense.ID)
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}
