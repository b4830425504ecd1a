package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "oneview/internal/errors"
	"oneview/internal/models"
	"oneview/internal/pagination"
)

// cardService handles credit-card business logic.
type cardService struct {
	db *gorm.DB
}

// NewCardService creates a new CardServicer.
func NewCardService(db *gorm.DB) CardServicer {
	return &cardService{db: db}
}

// CreateCard creates a new credit card for a user. Balance is the amount
// owed; dueDay is the statement due day of month (1-31).
func (s *cardService) CreateCard(userID, name string, balance int64, dueDay int, logoURL string) (*models.CreditCard, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "card name is required")
	}
	if dueDay < 1 || dueDay > 31 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due day must be between 1 and 31")
	}
	if balance < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "balance owed cannot be negative")
	}

	card := &models.CreditCard{
		UserID:   userID,
		Name:     name,
		Balance:  balance,
		DueDay:   dueDay,
		IsActive: true,
		LogoURL:  logoURL,
	}

	if err := s.db.Create(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return card, nil
}

// GetUserCards retrieves a paginated list of credit cards for a user.
func (s *cardService) GetUserCards(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.CreditCard], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.CreditCard{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var cards []models.CreditCard
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at").Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(cards, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCardByID retrieves a credit card by ID for a specific user
func (s *cardService) GetCardByID(userID, cardID string) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := s.db.Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &card, nil
}

// UpdateCard updates an existing credit card. Nil fields are left unchanged.
func (s *cardService) UpdateCard(userID, cardID string, fields CardUpdateFields) (*models.CreditCard, error) {
	card, err := s.GetCardByID(userID, cardID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.Balance != nil {
		if *fields.Balance < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "balance owed cannot be negative")
		}
		updates["balance"] = *fields.Balance
	}
	if fields.DueDay != nil {
		if *fields.DueDay < 1 || *fields.DueDay > 31 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due day must be between 1 and 31")
		}
		updates["due_day"] = *fields.DueDay
	}
	if fields.IsActive != nil {
		updates["is_active"] = *fields.IsActive
	}
	if fields.LogoURL != nil {
		updates["logo_url"] = *fields.LogoURL
	}

	if len(updates) > 0 {
		if err := s.db.Model(card).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", card.ID).First(card).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return card, nil
}

// DeleteCard soft-deletes a credit card.
func (s *cardService) DeleteCard(userID, cardID string) error {
	card, err := s.GetCardByID(userID, cardID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(card).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
