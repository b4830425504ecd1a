package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"oneview/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates an active checking account with the given balance (in cents).
func CreateTestAccount(t *testing.T, db *gorm.DB, userID string, balance int64) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Account %d", nextID()),
		Type:     models.AccountTypeChecking,
		Balance:  balance,
		IsActive: true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCard creates an active credit card with the given balance owed (in cents).
func CreateTestCard(t *testing.T, db *gorm.DB, userID string, balance int64, dueDay int) *models.CreditCard {
	t.Helper()

	card := &models.CreditCard{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Card %d", nextID()),
		Balance:  balance,
		DueDay:   dueDay,
		IsActive: true,
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}
	return card
}

// CreateTestIncomeSource creates an income source with the given frequency
// and per-period overrides (nil for monthly).
func CreateTestIncomeSource(t *testing.T, db *gorm.DB, userID string, amount int64, frequency string, amounts []int64) *models.IncomeSource {
	t.Helper()

	income := &models.IncomeSource{
		UserID:    userID,
		Source:    fmt.Sprintf("Test Income %d", nextID()),
		Amount:    amount,
		Frequency: frequency,
		Category:  "Salary",
		Amounts:   amounts,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income source: %v", err)
	}
	return income
}

// CreateTestExpense creates an expense of the given type due on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, amount int64, expenseType models.ExpenseType, dueDate time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Expense %d", nextID()),
		Amount:   amount,
		DueDate:  dueDate,
		Category: "Bills",
		Type:     expenseType,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
