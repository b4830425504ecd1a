package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "oneview/internal/errors"
	"oneview/internal/pagination"
	"oneview/internal/services"
)

// CardHandler handles credit-card-related requests.
type CardHandler struct {
	cardService  services.CardServicer
	auditService services.AuditServicer
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService services.CardServicer, auditService services.AuditServicer) *CardHandler {
	return &CardHandler{cardService: cardService, auditService: auditService}
}

// CreateCardRequest represents the request payload for creating a credit card.
type CreateCardRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Balance int64  `json:"balance" binding:"gte=0"`
	DueDay  int    `json:"due_day" binding:"required,day_of_month"`
	LogoURL string `json:"logo_url" binding:"omitempty,url,max=500"`
}

// UpdateCardRequest represents the request payload for updating a credit card.
// Nil fields are left unchanged.
type UpdateCardRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Balance  *int64  `json:"balance" binding:"omitempty,gte=0"`
	DueDay   *int    `json:"due_day" binding:"omitempty,day_of_month"`
	IsActive *bool   `json:"is_active"`
	LogoURL  *string `json:"logo_url" binding:"omitempty,url,max=500"`
}

// CardResponse represents a credit card in the response.
type CardResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Balance  int64  `json:"balance"`
	DueDay   int    `json:"due_day"`
	IsActive bool   `json:"is_active"`
	LogoURL  string `json:"logo_url"`
}

// CreateCard handles the creation of a new credit card.
// @Summary     Create a credit card
// @Description Create a new credit card for the authenticated user
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCardRequest true "Card details"
// @Success     201 {object} CardResponse "Card created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.cardService.CreateCard(userID, req.Name, req.Balance, req.DueDay, req.LogoURL)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_CARD", "credit_card", card.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "due_day": req.DueDay})

	c.JSON(http.StatusCreated, gin.H{"card": card})
}

// GetUserCards handles the retrieval of credit cards for a user.
// @Summary     Get user credit cards
// @Description Get a paginated list of credit cards for the authenticated user
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.CreditCard] "Paginated cards"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards [get]
func (h *CardHandler) GetUserCards(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.cardService.GetUserCards(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCardByID handles the retrieval of a specific credit card.
// @Summary     Get card by ID
// @Description Get a specific credit card by ID for the authenticated user
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Card ID"
// @Success     200 {object} CardResponse "Card details"
// @Failure     400 {object} ErrorResponse "Invalid card ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id} [get]
func (h *CardHandler) GetCardByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	card, err := h.cardService.GetCardByID(userID, cardID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"card": card})
}

// UpdateCard handles updating a credit card.
// @Summary     Update card
// @Description Update an existing credit card for the authenticated user
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Card ID"
// @Param       request body UpdateCardRequest true "Updated card details"
// @Success     200 {object} CardResponse "Updated card"
// @Failure     400 {object} ErrorResponse "Invalid input or card ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id} [put]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.cardService.UpdateCard(userID, cardID, services.CardUpdateFields{
		Name:     req.Name,
		Balance:  req.Balance,
		DueDay:   req.DueDay,
		IsActive: req.IsActive,
		LogoURL:  req.LogoURL,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_CARD", "credit_card", card.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"card": card})
}

// DeleteCard handles deleting a credit card.
// @Summary     Delete card
// @Description Delete a credit card for the authenticated user
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Card ID"
// @Success     204 "Card deleted"
// @Failure     400 {object} ErrorResponse "Invalid card ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.cardService.DeleteCard(userID, cardID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_CARD", "credit_card", cardID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
