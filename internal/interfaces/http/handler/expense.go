package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	expenseapp "github.com/laundrify/backend/internal/application/expense"
	"github.com/laundrify/backend/internal/interfaces/http/dto"
)

// ExpenseHandler handles expense ledger entries
type ExpenseHandler struct {
	BaseHandler
	expenseService *expenseapp.Service
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *expenseapp.Service) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// RegisterRoutes registers expense routes on the API group
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.Create)
		expenses.GET("", h.List)
		expenses.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseapp.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.expenseService.Create(c.Request.Context(), req, getActorEmail(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	var filter expenseapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.expenseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Delete handles DELETE /expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid ID format")
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid ID format")
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), id, getActorEmail(c)); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
