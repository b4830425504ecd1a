package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"oneview/internal/cashflow"
	apperrors "oneview/internal/errors"
	"oneview/internal/models"
	"oneview/internal/pagination"
)

// expenseService handles expense and subscription business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense creates a new expense or subscription. The form supplies a
// due day of month; it is resolved to the next concrete calendar date at
// creation time and stored as a literal date.
func (s *expenseService) CreateExpense(userID, name string, amount int64, dueDay int, category string, expenseType models.ExpenseType, logoURL string, today time.Time) (*models.Expense, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense name is required")
	}
	if dueDay < 1 || dueDay > 31 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due day must be between 1 and 31")
	}
	if expenseType != models.ExpenseTypeExpense && expenseType != models.ExpenseTypeSubscription {
		expenseType = models.ExpenseTypeExpense
	}

	expense := &models.Expense{
		UserID:   userID,
		Name:     name,
		Amount:   amount,
		DueDate:  cashflow.NextOccurrence(dueDay, today),
		Category: category,
		Type:     expenseType,
		LogoURL:  logoURL,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetUserExpenses retrieves a paginated list of expenses for a user,
// optionally filtered to expenses or subscriptions.
func (s *expenseService) GetUserExpenses(userID string, page pagination.PageRequest, typeFilter *models.ExpenseType) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	if typeFilter != nil {
		base = base.Where("type = ?", *typeFilter)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.Paginate(page)).Order("due_date").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpenseByID retrieves an expense by ID for a specific user
func (s *expenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense updates an existing expense via the full edit form.
// Nil fields are left unchanged.
func (s *expenseService) UpdateExpense(userID, expenseID string, fields ExpenseUpdateFields) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.Amount != nil {
		updates["amount"] = *fields.Amount
	}
	if fields.DueDate != nil {
		updates["due_date"] = *fields.DueDate
	}
	if fields.Category != nil {
		updates["category"] = *fields.Category
	}
	if fields.Type != nil {
		updates["type"] = *fields.Type
	}
	if fields.LogoURL != nil {
		updates["logo_url"] = *fields.LogoURL
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", expense.ID).First(expense).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return expense, nil
}

// DeleteExpense soft-deletes an expense.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
