package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	payrollapp "github.com/laundrify/backend/internal/application/payroll"
)

// PayrollHandler handles daily salary settlement
type PayrollHandler struct {
	BaseHandler
	settlementService *payrollapp.SettlementService
}

// NewPayrollHandler creates a new PayrollHandler
func NewPayrollHandler(settlementService *payrollapp.SettlementService) *PayrollHandler {
	return &PayrollHandler{settlementService: settlementService}
}

// RegisterRoutes registers payroll routes on the API group
func (h *PayrollHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payroll := rg.Group("/payroll")
	{
		payroll.POST("/pay", h.Pay)
		payroll.POST("/unpay", h.Unpay)
	}
}

// SettlementRequest identifies the staff member and day being settled
type SettlementRequest struct {
	StaffID uuid.UUID `json:"staff_id" binding:"required"`
	Date    string    `json:"date" binding:"required,dateonly"`
}

// Pay handles POST /payroll/pay
func (h *PayrollHandler) Pay(c *gin.Context) {
	var req SettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.settlementService.Pay(c.Request.Context(), req.StaffID, req.Date, getActorEmail(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Unpay handles POST /payroll/unpay
func (h *PayrollHandler) Unpay(c *gin.Context) {
	var req SettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.settlementService.Unpay(c.Request.Context(), req.StaffID, req.Date, getActorEmail(c)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
