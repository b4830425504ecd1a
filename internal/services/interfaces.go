package services

import (
	"time"

	"oneview/internal/cashflow"
	"oneview/internal/models"
	"oneview/internal/pagination"
	"oneview/internal/settlement"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// AccountUpdateFields holds the optional fields for a bank account update.
// Nil fields are left unchanged.
type AccountUpdateFields struct {
	Name     *string
	Type     *models.AccountType
	Balance  *int64
	IsActive *bool
	Provider *string
	LogoURL  *string
}

// AccountServicer defines the contract for bank-account business logic.
type AccountServicer interface {
	CreateAccount(userID, name string, accountType models.AccountType, balance int64, provider, logoURL string) (*models.Account, error)
	GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	GetAccountByID(userID, accountID string) (*models.Account, error)
	UpdateAccount(userID, accountID string, fields AccountUpdateFields) (*models.Account, error)
	DeleteAccount(userID, accountID string) error
}

// CardUpdateFields holds the optional fields for a credit-card update.
type CardUpdateFields struct {
	Name     *string
	Balance  *int64
	DueDay   *int
	IsActive *bool
	LogoURL  *string
}

// CardServicer defines the contract for credit-card business logic.
type CardServicer interface {
	CreateCard(userID, name string, balance int64, dueDay int, logoURL string) (*models.CreditCard, error)
	GetUserCards(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.CreditCard], error)
	GetCardByID(userID, cardID string) (*models.CreditCard, error)
	UpdateCard(userID, cardID string, fields CardUpdateFields) (*models.CreditCard, error)
	DeleteCard(userID, cardID string) error
}

// IncomeUpdateFields holds the optional fields for an income-source update.
type IncomeUpdateFields struct {
	Source    *string
	Amount    *int64
	Frequency *string
	Category  *string
}

// IncomeServicer defines the contract for income-source business logic.
type IncomeServicer interface {
	CreateIncomeSource(userID, source string, amount int64, frequency, category string, amounts []int64) (*models.IncomeSource, error)
	GetUserIncomeSources(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.IncomeSource], error)
	GetIncomeSourceByID(userID, incomeID string) (*models.IncomeSource, error)
	UpdateIncomeSource(userID, incomeID string, fields IncomeUpdateFields) (*models.IncomeSource, error)
	UpdatePeriodAmount(userID, incomeID string, index int, amount int64) (*models.IncomeSource, error)
	DeleteIncomeSource(userID, incomeID string) error
}

// ExpenseUpdateFields holds the optional fields for an expense update.
type ExpenseUpdateFields struct {
	Name     *string
	Amount   *int64
	DueDate  *time.Time
	Category *string
	Type     *models.ExpenseType
	LogoURL  *string
}

// ExpenseServicer defines the contract for expense business logic.
type ExpenseServicer interface {
	CreateExpense(userID, name string, amount int64, dueDay int, category string, expenseType models.ExpenseType, logoURL string, today time.Time) (*models.Expense, error)
	GetUserExpenses(userID string, page pagination.PageRequest, typeFilter *models.ExpenseType) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, fields ExpenseUpdateFields) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
}

// IncomeOccurrenceRow is one expected payment row on the dashboard.
type IncomeOccurrenceRow struct {
	OccurrenceID string    `json:"occurrence_id"`
	SourceID     string    `json:"source_id"`
	Source       string    `json:"source"`
	Label        string    `json:"label,omitempty"`
	Amount       int64     `json:"amount"`
	Date         time.Time `json:"date"`
	Received     bool      `json:"received"`
}

// UpcomingItem is one upcoming bill row on the dashboard: an expense,
// subscription, or credit card with its projected due date.
type UpcomingItem struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Amount   int64     `json:"amount"`
	DueDate  time.Time `json:"due_date"`
	DueLabel string    `json:"due_label"`
	Paid     bool      `json:"paid"`
}

// DashboardSummary bundles the headline numbers with the display rows.
type DashboardSummary struct {
	cashflow.Summary
	IncomeOccurrences []IncomeOccurrenceRow `json:"income_occurrences"`
}

// DashboardServicer defines the contract for the dashboard computations.
type DashboardServicer interface {
	GetSummary(userID string, today time.Time) (*DashboardSummary, error)
	GetUpcoming(userID string, today time.Time) ([]UpcomingItem, error)
	ToggleSettlement(userID string, kind settlement.Kind, itemID string) bool
	ResetSettlements(userID string)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
