package models

// CreditCard represents a credit card with a balance owed and a monthly due day
type CreditCard struct {
	Base
	UserID   string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string `gorm:"not null" json:"name"`
	Balance  int64  `gorm:"type:bigint;not null;default:0" json:"balance"`
	DueDay   int    `gorm:"not null" json:"due_day"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
	LogoURL  string `json:"logo_url,omitempty"`
}
