package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "oneview/internal/errors"
	"oneview/internal/models"
	"oneview/internal/pagination"
	"oneview/internal/services"
)

// --- mock card service ---

type mockCardService struct {
	createCardFn   func(userID, name string, balance int64, dueDay int, logoURL string) (*models.CreditCard, error)
	getUserCardsFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.CreditCard], error)
	getCardByIDFn  func(userID, cardID string) (*models.CreditCard, error)
	updateCardFn   func(userID, cardID string, fields services.CardUpdateFields) (*models.CreditCard, error)
	deleteCardFn   func(userID, cardID string) error
}

func (m *mockCardService) CreateCard(userID, name string, balance int64, dueDay int, logoURL string) (*models.CreditCard, error) {
	if m.createCardFn != nil {
		return m.createCardFn(userID, name, balance, dueDay, logoURL)
	}
	return &models.CreditCard{}, nil
}

func (m *mockCardService) GetUserCards(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.CreditCard], error) {
	if m.getUserCardsFn != nil {
		return m.getUserCardsFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.CreditCard{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockCardService) GetCardByID(userID, cardID string) (*models.CreditCard, error) {
	if m.getCardByIDFn != nil {
		return m.getCardByIDFn(userID, cardID)
	}
	return &models.CreditCard{}, nil
}

func (m *mockCardService) UpdateCard(userID, cardID string, fields services.CardUpdateFields) (*models.CreditCard, error) {
	if m.updateCardFn != nil {
		return m.updateCardFn(userID, cardID, fields)
	}
	return &models.CreditCard{}, nil
}

func (m *mockCardService) DeleteCard(userID, cardID string) error {
	if m.deleteCardFn != nil {
		return m.deleteCardFn(userID, cardID)
	}
	return nil
}

// verify interface compliance
var _ services.CardServicer = (*mockCardService)(nil)

const testCardID = "0195da67-4444-7000-8000-000000000004"

func setupCardRouter(handler *CardHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/cards", handler.CreateCard)
	auth.GET("/cards", handler.GetUserCards)
	auth.GET("/cards/:id", handler.GetCardByID)
	auth.PUT("/cards/:id", handler.UpdateCard)
	auth.DELETE("/cards/:id", handler.DeleteCard)
	return r
}

func TestCardHandler_CreateCard(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		cardSvc := &mockCardService{
			createCardFn: func(userID, name string, balance int64, dueDay int, _ string) (*models.CreditCard, error) {
				return &models.CreditCard{
					Base:     models.Base{ID: testCardID},
					UserID:   userID,
					Name:     name,
					Balance:  balance,
					DueDay:   dueDay,
					IsActive: true,
				}, nil
			},
		}
		handler := NewCardHandler(cardSvc, &mockAuditService{})
		r := setupCardRouter(handler)

		rec := doRequest(r, "POST", "/cards", `{"name":"Sapphire","balance":45000,"due_day":15}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		card := result["card"].(map[string]interface{})
		if card["due_day"] != float64(15) {
			t.Errorf("expected due_day 15, got %v", card["due_day"])
		}
	})

	t.Run("returns 400 for due_day outside 1-31", func(t *testing.T) {
		handler := NewCardHandler(&mockCardService{}, &mockAuditService{})
		r := setupCardRouter(handler)

		rec := doRequest(r, "POST", "/cards", `{"name":"Sapphire","balance":45000,"due_day":32}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), apperrors.ErrInvalidInput.Code)
	})
}

func TestCardHandler_UpdateCard(t *testing.T) {
	t.Run("passes only provided fields to the service", func(t *testing.T) {
		var captured services.CardUpdateFields
		cardSvc := &mockCardService{
			updateCardFn: func(_, _ string, fields services.CardUpdateFields) (*models.CreditCard, error) {
				captured = fields
				return &models.CreditCard{Base: models.Base{ID: testCardID}}, nil
			},
		}
		handler := NewCardHandler(cardSvc, &mockAuditService{})
		r := setupCardRouter(handler)

		rec := doRequest(r, "PUT", "/cards/"+testCardID, `{"due_day":28,"is_active":false}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.DueDay == nil || *captured.DueDay != 28 {
			t.Errorf("expected due_day 28, got %v", captured.DueDay)
		}
		if captured.IsActive == nil || *captured.IsActive {
			t.Errorf("expected is_active false, got %v", captured.IsActive)
		}
		if captured.Name != nil || captured.Balance != nil {
			t.Error("expected omitted fields to stay nil")
		}
	})

	t.Run("returns 404 when card does not exist", func(t *testing.T) {
		cardSvc := &mockCardService{
			updateCardFn: func(_, _ string, _ services.CardUpdateFields) (*models.CreditCard, error) {
				return nil, apperrors.ErrCardNotFound
			},
		}
		handler := NewCardHandler(cardSvc, &mockAuditService{})
		r := setupCardRouter(handler)

		rec := doRequest(r, "PUT", "/cards/"+testCardID, `{"due_day":28}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestCardHandler_DeleteCard(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		handler := NewCardHandler(&mockCardService{}, &mockAuditService{})
		r := setupCardRouter(handler)

		rec := doRequest(r, "DELETE", "/cards/"+testCardID, "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})
}
