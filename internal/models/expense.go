package models

import "time"

// ExpenseType discriminates one-off expenses from subscriptions
type ExpenseType string

const (
	ExpenseTypeExpense      ExpenseType = "expense"
	ExpenseTypeSubscription ExpenseType = "subscription"
)

// Expense represents a recurring expense or subscription. DueDate is a
// literal calendar date; the time component is always midnight UTC and
// must never be timezone-converted.
type Expense struct {
	Base
	UserID   string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string      `gorm:"not null" json:"name"`
	Amount   int64       `gorm:"type:bigint;not null" json:"amount"`
	DueDate  time.Time   `gorm:"not null" json:"due_date"`
	Category string      `json:"category"`
	Type     ExpenseType `gorm:"not null;default:'expense'" json:"type"`
	LogoURL  string      `json:"logo_url,omitempty"`
}
