package services

import (
	"errors"

	"gorm.io/gorm"

	"oneview/internal/cashflow"
	apperrors "oneview/internal/errors"
	"oneview/internal/models"
	"oneview/internal/pagination"
)

// incomeService handles income-source business logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncomeSource creates a new income source. For weekly and biweekly
// sources the per-period amounts from the creation wizard are cascaded
// forward (an entered Week 1 pre-fills Weeks 2-4) and must not exceed the
// frequency's period count. Monthly sources carry no per-period amounts.
func (s *incomeService) CreateIncomeSource(userID, source string, amount int64, frequency, category string, amounts []int64) (*models.IncomeSource, error) {
	if source == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income source name is required")
	}

	freq := cashflow.ParseFrequency(frequency)
	periods := freq.PeriodCount()

	var periodAmounts models.PeriodAmounts
	if freq == cashflow.FrequencyMonthly {
		if len(amounts) > 0 {
			return nil, apperrors.ErrMonthlyHasNoPeriods
		}
	} else {
		if len(amounts) > periods {
			return nil, apperrors.ErrInvalidPeriodCount
		}
		// Pad to the full period count, then apply the wizard cascade.
		padded := make([]int64, periods)
		copy(padded, amounts)
		periodAmounts = cashflow.ForwardFill(padded)
	}

	income := &models.IncomeSource{
		UserID:    userID,
		Source:    source,
		Amount:    amount,
		Frequency: string(freq),
		Category:  category,
		Amounts:   periodAmounts,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return income, nil
}

// GetUserIncomeSources retrieves a paginated list of income sources for a user.
func (s *incomeService) GetUserIncomeSources(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.IncomeSource], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.IncomeSource{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.IncomeSource
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at").Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetIncomeSourceByID retrieves an income source by ID for a specific user
func (s *incomeService) GetIncomeSourceByID(userID, incomeID string) (*models.IncomeSource, error) {
	var income models.IncomeSource
	if err := s.db.Where("id = ? AND user_id = ?", incomeID, userID).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// UpdateIncomeSource updates the scalar fields of an income source. A
// frequency change resets the per-period amounts to the new period count
// since the old overrides no longer line up.
func (s *incomeService) UpdateIncomeSource(userID, incomeID string, fields IncomeUpdateFields) (*models.IncomeSource, error) {
	income, err := s.GetIncomeSourceByID(userID, incomeID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Source != nil && *fields.Source != "" {
		updates["source"] = *fields.Source
	}
	if fields.Amount != nil {
		updates["amount"] = *fields.Amount
	}
	if fields.Category != nil {
		updates["category"] = *fields.Category
	}
	if fields.Frequency != nil {
		freq := cashflow.ParseFrequency(*fields.Frequency)
		updates["frequency"] = string(freq)
		if string(freq) != income.Frequency {
			if freq == cashflow.FrequencyMonthly {
				updates["amounts"] = nil
			} else {
				reset, marshalErr := models.PeriodAmounts(make([]int64, freq.PeriodCount())).Value()
				if marshalErr != nil {
					return nil, apperrors.Wrap(apperrors.ErrInternalServer, marshalErr)
				}
				updates["amounts"] = reset
			}
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(income).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", income.ID).First(income).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return income, nil
}

// UpdatePeriodAmount edits the amount of a single payment period. It
// touches exactly the given index: no cascade, no recomputation of the
// other periods. Monthly sources have no sub-occurrences to edit.
func (s *incomeService) UpdatePeriodAmount(userID, incomeID string, index int, amount int64) (*models.IncomeSource, error) {
	income, err := s.GetIncomeSourceByID(userID, incomeID)
	if err != nil {
		return nil, err
	}

	freq := cashflow.ParseFrequency(income.Frequency)
	if freq == cashflow.FrequencyMonthly {
		return nil, apperrors.ErrMonthlyHasNoPeriods
	}
	periods := freq.PeriodCount()
	if index < 0 || index >= periods {
		return nil, apperrors.ErrInvalidPeriodIndex
	}

	// Rows created before overrides existed may have a short or missing
	// array; pad with zeros so the write lands at the right index.
	amounts := make([]int64, periods)
	copy(amounts, income.Amounts)
	amounts[index] = amount

	if err := s.db.Model(income).Update("amounts", models.PeriodAmounts(amounts)).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	income.Amounts = amounts

	return income, nil
}

// DeleteIncomeSource soft-deletes an income source.
func (s *incomeService) DeleteIncomeSource(userID, incomeID string) error {
	income, err := s.GetIncomeSourceByID(userID, incomeID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
