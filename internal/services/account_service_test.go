package services

import (
	"testing"

	"oneview/internal/models"
	"oneview/internal/pagination"
	"oneview/internal/testutil"
)

func TestCreateAccount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		account, err := svc.CreateAccount(user.ID, "Main Checking", models.AccountTypeChecking, 123450, "Chase", "")
		testutil.AssertNoError(t, err)

		if account.ID == "" {
			t.Fatal("expected non-empty account ID")
		}
		if account.Balance != 123450 {
			t.Errorf("expected balance 123450, got %d", account.Balance)
		}
		if !account.IsActive {
			t.Error("expected account to be active")
		}
	})

	t.Run("missing_name_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateAccount(user.ID, "", models.AccountTypeSavings, 0, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserAccounts(t *testing.T) {
	t.Run("returns_user_accounts_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestAccount(t, db, user1.ID, 100000)
		testutil.CreateTestAccount(t, db, user1.ID, 50000)
		testutil.CreateTestAccount(t, db, user2.ID, 77777)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserAccounts(user1.ID, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 accounts, got %d", result.TotalItems)
		}
	})
}

func TestUpdateAccount(t *testing.T) {
	t.Run("balance_edit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID, 100000)

		balance := int64(-2500) // balances are signed
		updated, err := svc.UpdateAccount(user.ID, account.ID, AccountUpdateFields{Balance: &balance})
		testutil.AssertNoError(t, err)

		if updated.Balance != -2500 {
			t.Errorf("expected balance -2500, got %d", updated.Balance)
		}
	})

	t.Run("is_active_toggle", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID, 100000)

		inactive := false
		updated, err := svc.UpdateAccount(user.ID, account.ID, AccountUpdateFields{IsActive: &inactive})
		testutil.AssertNoError(t, err)

		if updated.IsActive {
			t.Error("expected account to be inactive")
		}
	})

	t.Run("wrong_user_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, owner.ID, 100000)

		name := "Hijacked"
		_, err := svc.UpdateAccount(other.ID, account.ID, AccountUpdateFields{Name: &name})
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestDeleteAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccountService(db)
	user := testutil.CreateTestUser(t, db)
	account := testutil.CreateTestAccount(t, db, user.ID, 100000)

	testutil.AssertNoError(t, svc.DeleteAccount(user.ID, account.ID))

	_, err := svc.GetAccountByID(user.ID, account.ID)
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
}
