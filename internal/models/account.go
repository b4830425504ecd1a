package models

// AccountType represents the type of bank account
type AccountType string

const (
	AccountTypeChecking    AccountType = "checking"
	AccountTypeSavings     AccountType = "savings"
	AccountTypeMoneyMarket AccountType = "money_market"
	AccountTypeCD          AccountType = "cd"
)

// CashAccountName is the conventional name of the cash pseudo-account.
// Accounts with this name are excluded from the current-cash total.
const CashAccountName = "Cash"

// Account represents a bank account in the system
type Account struct {
	Base
	UserID   string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string      `gorm:"not null" json:"name"`
	Type     AccountType `gorm:"not null" json:"type"`
	Balance  int64       `gorm:"type:bigint;not null;default:0" json:"balance"`
	IsActive bool        `gorm:"default:true" json:"is_active"`
	Provider string      `json:"provider,omitempty"`
	LogoURL  string      `json:"logo_url,omitempty"`
}
