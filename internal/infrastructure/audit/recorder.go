package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/laundrify/backend/internal/domain/audit"
)

// Recorder persists audit log entries through the audit repository.
// Recording is fire-and-forget: failures are logged and never returned,
// so a broken audit trail cannot block business operations.
type Recorder struct {
	repo   audit.Repository
	logger *zap.Logger
}

// NewRecorder creates a Recorder backed by the given repository
func NewRecorder(repo audit.Repository, logger *zap.Logger) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

// Record writes one audit log entry
func (r *Recorder) Record(ctx context.Context, action, description, entityType, entityID, actorEmail string) {
	entry, err := audit.NewLog(action, description, entityType, entityID, actorEmail)
	if err != nil {
		r.logger.Warn("audit entry rejected",
			zap.String("action", action),
			zap.Error(err))
		return
	}
	if err := r.repo.Save(ctx, entry); err != nil {
		r.logger.Warn("audit entry not persisted",
			zap.String("action", action),
			zap.String("entity_type", entityType),
			zap.String("entity_id", entityID),
			zap.Error(err))
	}
}
