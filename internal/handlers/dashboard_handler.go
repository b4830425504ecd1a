package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "oneview/internal/errors"
	"oneview/internal/services"
	"oneview/internal/settlement"
)

// DashboardHandler handles dashboard and settlement requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// ToggleSettlementRequest represents the request payload for toggling a
// settlement mark on an income occurrence or a bill.
type ToggleSettlementRequest struct {
	Kind   string `json:"kind" binding:"required"`
	ItemID string `json:"item_id" binding:"required,min=1,max=200"`
}

// ToggleSettlementResponse represents the new settled state after a toggle.
type ToggleSettlementResponse struct {
	Kind    string `json:"kind"`
	ItemID  string `json:"item_id"`
	Settled bool   `json:"settled"`
}

// GetSummary returns the cash-flow summary for the current month.
// @Summary     Get dashboard summary
// @Description Get the authenticated user's cash-flow summary: current cash, upcoming income, forecasted cash, total expenses, month-end balance, standing, and the expected income occurrences
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardSummary "Dashboard summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.GetSummary(userID, time.Now().UTC())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetUpcoming returns the upcoming bills sorted by due date.
// @Summary     Get upcoming bills
// @Description Get the authenticated user's expenses, subscriptions, and credit card payments sorted by projected due date
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.UpcomingItem "Upcoming bills"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/upcoming [get]
func (h *DashboardHandler) GetUpcoming(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items, err := h.dashboardService.GetUpcoming(userID, time.Now().UTC())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"upcoming": items})
}

// ToggleSettlement flips the received/paid mark on a dashboard item.
// @Summary     Toggle a settlement mark
// @Description Mark an income occurrence as received or a bill as paid, or clear the mark if already set
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ToggleSettlementRequest true "Settlement toggle"
// @Success     200 {object} ToggleSettlementResponse "New settled state"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/settlements/toggle [post]
func (h *DashboardHandler) ToggleSettlement(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ToggleSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	kind := settlement.Kind(req.Kind)
	if kind != settlement.KindIncome && kind != settlement.KindExpense {
		respondWithError(c, apperrors.ErrInvalidSettlementKind)
		return
	}

	settled := h.dashboardService.ToggleSettlement(userID, kind, req.ItemID)

	c.JSON(http.StatusOK, gin.H{
		"kind":    req.Kind,
		"item_id": req.ItemID,
		"settled": settled,
	})
}

// ResetSettlements clears all settlement marks for the user.
// @Summary     Reset settlement marks
// @Description Clear all received/paid marks for the authenticated user, typically at the start of a new month
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     204 "Settlements cleared"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard/settlements [delete]
func (h *DashboardHandler) ResetSettlements(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.dashboardService.ResetSettlements(userID)

	c.Status(http.StatusNoContent)
}
