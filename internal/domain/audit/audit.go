package audit

import (
	"context"
	"strings"

	"github.com/laundrify/backend/internal/domain/shared"
)

// Action kinds recorded in the audit trail
const (
	ActionOrderCreated    = "order_created"
	ActionOrderUpdated    = "order_updated"
	ActionOrderDeleted    = "order_deleted"
	ActionStatusChanged   = "order_status_changed"
	ActionExpenseCreated  = "expense_created"
	ActionExpenseDeleted  = "expense_deleted"
	ActionPayrollPaid     = "payroll_paid"
	ActionPayrollUnpaid   = "payroll_unpaid"
	ActionStaffCreated    = "staff_created"
	ActionAttendanceSaved = "attendance_saved"
)

// Log is one entry of the audit trail
type Log struct {
	shared.BaseEntity
	Action      string
	Description string
	EntityType  string
	EntityID    string
	ActorEmail  string
}

// NewLog creates an audit log entry
func NewLog(action, description, entityType, entityID, actorEmail string) (*Log, error) {
	if strings.TrimSpace(action) == "" {
		return nil, shared.NewDomainError("INVALID_ACTION", "Audit action is required")
	}
	return &Log{
		BaseEntity:  shared.NewBaseEntity(),
		Action:      action,
		Description: description,
		EntityType:  entityType,
		EntityID:    entityID,
		ActorEmail:  actorEmail,
	}, nil
}

// Repository defines the interface for audit log persistence
type Repository interface {
	// Save persists an audit log entry
	Save(ctx context.Context, l *Log) error

	// FindAll lists audit log entries with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]Log, error)

	// Count counts audit log entries matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// Recorder records audit events fire-and-forget. Implementations must
// never let a recording failure reach the caller; they log and continue.
type Recorder interface {
	Record(ctx context.Context, action, description, entityType, entityID, actorEmail string)
}
