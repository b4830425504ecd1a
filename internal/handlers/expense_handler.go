package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "oneview/internal/errors"
	"oneview/internal/models"
	"oneview/internal/pagination"
	"oneview/internal/services"
)

// ExpenseHandler handles expense and subscription requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// CreateExpenseRequest represents the request payload for creating an expense.
// DueDay is the day of the month the expense is due; it is projected onto the
// next occurrence at creation time.
type CreateExpenseRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Amount   int64  `json:"amount" binding:"gte=0"`
	DueDay   int    `json:"due_day" binding:"required,day_of_month"`
	Category string `json:"category" binding:"max=100"`
	Type     string `json:"type" binding:"omitempty,expense_type"`
	LogoURL  string `json:"logo_url" binding:"omitempty,url,max=500"`
}

// UpdateExpenseRequest represents the request payload for updating an expense.
// Nil fields are left unchanged. DueDate replaces the stored due date directly
// (format 2006-01-02).
type UpdateExpenseRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Amount   *int64  `json:"amount" binding:"omitempty,gte=0"`
	DueDate  *string `json:"due_date"`
	Category *string `json:"category" binding:"omitempty,max=100"`
	Type     *string `json:"type" binding:"omitempty,expense_type"`
	LogoURL  *string `json:"logo_url" binding:"omitempty,url,max=500"`
}

// ExpenseResponse represents an expense in the response.
type ExpenseResponse struct {
	ID       string             `json:"id"`
	UserID   string             `json:"user_id"`
	Name     string             `json:"name"`
	Amount   int64              `json:"amount"`
	DueDate  time.Time          `json:"due_date"`
	Category string             `json:"category"`
	Type     models.ExpenseType `json:"type"`
	LogoURL  string             `json:"logo_url"`
}

// CreateExpense handles the creation of a new expense or subscription.
// @Summary     Create an expense
// @Description Create a new expense or subscription for the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} ExpenseResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(
		userID,
		req.Name,
		req.Amount,
		req.DueDay,
		req.Category,
		models.ExpenseType(req.Type),
		req.LogoURL,
		time.Now().UTC(),
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "type": string(expense.Type)})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetUserExpenses handles the retrieval of expenses for a user.
// @Summary     Get user expenses
// @Description Get a paginated list of expenses for the authenticated user, optionally filtered by type
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       type      query string false "Filter by type (expense or subscription)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid type filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetUserExpenses(c *gin.Context) {
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

	var typeFilter *models.ExpenseType
	if raw := c.Query("type"); raw != "" {
		t := models.ExpenseType(raw)
		if t != models.ExpenseTypeExpense && t != models.ExpenseTypeSubscription {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid type filter"))
			return
		}
		typeFilter = &t
	}

	result, err := h.expenseService.GetUserExpenses(userID, page, typeFilter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetExpenseByID handles the retrieval of a specific expense.
// @Summary     Get expense by ID
// @Description Get a specific expense by ID for the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} ExpenseResponse "Expense details"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles updating an expense.
// @Summary     Update expense
// @Description Update an existing expense for the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Updated expense details"
// @Success     200 {object} ExpenseResponse "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input or expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.ExpenseUpdateFields{
		Name:     req.Name,
		Amount:   req.Amount,
		Category: req.Category,
		LogoURL:  req.LogoURL,
	}
	if req.Type != nil {
		expenseType := models.ExpenseType(*req.Type)
		fields.Type = &expenseType
	}
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, parseErr := time.Parse("2006-01-02", *req.DueDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid due_date format"))
			return
		}
		fields.DueDate = &parsed
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_EXPENSE", "expense", expense.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles deleting an expense.
// @Summary     Delete expense
// @Description Delete an expense for the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     204 "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
