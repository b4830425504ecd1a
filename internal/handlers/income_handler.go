package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "oneview/internal/errors"
	"oneview/internal/pagination"
	"oneview/internal/services"
)

// IncomeHandler handles income-source-related requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
	auditService  services.AuditServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer, auditService services.AuditServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService, auditService: auditService}
}

// CreateIncomeRequest represents the request payload for creating an income source.
// Amounts is optional for weekly and biweekly sources; when provided, its length
// must not exceed the period count for the frequency (4 for weekly, 2 for
// biweekly). Monthly sources must not send amounts.
type CreateIncomeRequest struct {
	Source    string  `json:"source" binding:"required,min=1,max=100"`
	Amount    int64   `json:"amount" binding:"gte=0"`
	Frequency string  `json:"frequency" binding:"required,frequency"`
	Category  string  `json:"category" binding:"max=100"`
	Amounts   []int64 `json:"amounts" binding:"omitempty,dive,gte=0"`
}

// UpdateIncomeRequest represents the request payload for updating an income source.
// Nil fields are left unchanged. Changing the frequency resets any per-period
// amounts to the new frequency's period count.
type UpdateIncomeRequest struct {
	Source    *string `json:"source" binding:"omitempty,min=1,max=100"`
	Amount    *int64  `json:"amount" binding:"omitempty,gte=0"`
	Frequency *string `json:"frequency" binding:"omitempty,frequency"`
	Category  *string `json:"category" binding:"omitempty,max=100"`
}

// UpdatePeriodAmountRequest represents the request payload for overriding a
// single per-period amount on a weekly or biweekly income source.
type UpdatePeriodAmountRequest struct {
	Amount int64 `json:"amount" binding:"gte=0"`
}

// IncomeResponse represents an income source in the response.
type IncomeResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Source    string  `json:"source"`
	Amount    int64   `json:"amount"`
	Frequency string  `json:"frequency"`
	Category  string  `json:"category"`
	Amounts   []int64 `json:"amounts"`
}

// CreateIncomeSource handles the creation of a new income source.
// @Summary     Create an income source
// @Description Create a new income source for the authenticated user
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateIncomeRequest true "Income source details"
// @Success     201 {object} IncomeResponse "Income source created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes [post]
func (h *IncomeHandler) CreateIncomeSource(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	income, err := h.incomeService.CreateIncomeSource(
		userID,
		req.Source,
		req.Amount,
		req.Frequency,
		req.Category,
		req.Amounts,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_INCOME", "income_source", income.ID, c.ClientIP(),
		map[string]interface{}{"source": req.Source, "frequency": req.Frequency})

	c.JSON(http.StatusCreated, gin.H{"income": income})
}

// GetUserIncomeSources handles the retrieval of income sources for a user.
// @Summary     Get user income sources
// @Description Get a paginated list of income sources for the authenticated user
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.IncomeSource] "Paginated income sources"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes [get]
func (h *IncomeHandler) GetUserIncomeSources(c *gin.Context) {
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

	result, err := h.incomeService.GetUserIncomeSources(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetIncomeSourceByID handles the retrieval of a specific income source.
// @Summary     Get income source by ID
// @Description Get a specific income source by ID for the authenticated user
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income source ID"
// @Success     200 {object} IncomeResponse "Income source details"
// @Failure     400 {object} ErrorResponse "Invalid income source ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income source not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes/{id} [get]
func (h *IncomeHandler) GetIncomeSourceByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.GetIncomeSourceByID(userID, incomeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// UpdateIncomeSource handles updating an income source.
// @Summary     Update income source
// @Description Update an existing income source for the authenticated user. Changing the frequency resets per-period amounts.
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income source ID"
// @Param       request body UpdateIncomeRequest true "Updated income source details"
// @Success     200 {object} IncomeResponse "Updated income source"
// @Failure     400 {object} ErrorResponse "Invalid input or income source ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income source not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes/{id} [put]
func (h *IncomeHandler) UpdateIncomeSource(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	income, err := h.incomeService.UpdateIncomeSource(userID, incomeID, services.IncomeUpdateFields{
		Source:    req.Source,
		Amount:    req.Amount,
		Frequency: req.Frequency,
		Category:  req.Category,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_INCOME", "income_source", income.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// UpdatePeriodAmount handles overriding a single per-period amount.
// @Summary     Update a per-period amount
// @Description Override the amount for one period of a weekly or biweekly income source. Index is zero-based.
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id    path string true "Income source ID"
// @Param       index path int    true "Zero-based period index"
// @Param       request body UpdatePeriodAmountRequest true "New period amount"
// @Success     200 {object} IncomeResponse "Updated income source"
// @Failure     400 {object} ErrorResponse "Invalid input, income source ID, or period index"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income source not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes/{id}/amounts/{index} [put]
func (h *IncomeHandler) UpdatePeriodAmount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	index, err := parsePathIndex(c, "index")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePeriodAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	income, err := h.incomeService.UpdatePeriodAmount(userID, incomeID, index, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_INCOME_PERIOD", "income_source", income.ID, c.ClientIP(),
		map[string]interface{}{"index": index, "amount": req.Amount})

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// DeleteIncomeSource handles deleting an income source.
// @Summary     Delete income source
// @Description Delete an income source for the authenticated user
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Income source ID"
// @Success     204 "Income source deleted"
// @Failure     400 {object} ErrorResponse "Invalid income source ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Income source not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /incomes/{id} [delete]
func (h *IncomeHandler) DeleteIncomeSource(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.incomeService.DeleteIncomeSource(userID, incomeID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_INCOME", "income_source", incomeID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
