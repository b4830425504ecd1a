package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PeriodAmounts holds per-period amount overrides in cents, stored as a
// JSON array column so it works on both postgres and sqlite.
type PeriodAmounts []int64

// Value implements driver.Valuer.
func (p PeriodAmounts) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	data, err := json.Marshal([]int64(p))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (p *PeriodAmounts) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for PeriodAmounts: %T", value)
	}
	return json.Unmarshal(data, (*[]int64)(p))
}

// IncomeSource represents a recurring income source. Amount is the
// per-period fallback in cents; weekly and biweekly sources may carry
// per-period overrides in Amounts.
type IncomeSource struct {
	Base
	UserID    string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Source    string        `gorm:"not null" json:"source"`
	Amount    int64         `gorm:"type:bigint;not null" json:"amount"`
	Frequency string        `gorm:"not null" json:"frequency"`
	Category  string        `json:"category"`
	Amounts   PeriodAmounts `gorm:"type:text" json:"amounts,omitempty"`
}
