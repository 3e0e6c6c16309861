package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/laundrify/backend/internal/domain/audit"
	"github.com/laundrify/backend/internal/domain/shared"
)

// AuditHandler exposes the audit trail for back-office review
type AuditHandler struct {
	BaseHandler
	auditRepo audit.Repository
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditRepo audit.Repository) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo}
}

// RegisterRoutes registers audit routes on the API group
func (h *AuditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/audit-logs", h.List)
}

// AuditListRequest represents filter options for the audit log list
type AuditListRequest struct {
	Action     string `form:"action"`
	EntityType string `form:"entity_type"`
	EntityID   string `form:"entity_id"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

// AuditLogResponse represents an audit log entry in API responses
type AuditLogResponse struct {
	ID          uuid.UUID `json:"id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	EntityType  string    `json:"entity_type,omitempty"`
	EntityID    string    `json:"entity_id,omitempty"`
	ActorEmail  string    `json:"actor_email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// List handles GET /audit-logs
func (h *AuditHandler) List(c *gin.Context) {
	var req AuditListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	f := shared.DefaultFilter()
	if req.Page > 0 {
		f.Page = req.Page
	}
	if req.PageSize > 0 {
		f.PageSize = req.PageSize
	}
	f.Search = req.Search
	if req.Action != "" {
		f.Filters["action"] = req.Action
	}
	if req.EntityType != "" {
		f.Filters["entity_type"] = req.EntityType
	}
	if req.EntityID != "" {
		f.Filters["entity_id"] = req.EntityID
	}

	ctx := c.Request.Context()
	logs, err := h.listLogs(ctx, f)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	total, err := h.auditRepo.Count(ctx, f)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, logs, total, f.Page, f.PageSize)
}

func (h *AuditHandler) listLogs(ctx context.Context, f shared.Filter) ([]AuditLogResponse, error) {
	logs, err := h.auditRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]AuditLogResponse, len(logs))
	for i, l := range logs {
		out[i] = AuditLogResponse{
			ID:          l.ID,
			Action:      l.Action,
			Description: l.Description,
			EntityType:  l.EntityType,
			EntityID:    l.EntityID,
			ActorEmail:  l.ActorEmail,
			CreatedAt:   l.CreatedAt,
		}
	}
	return out, nil
}
