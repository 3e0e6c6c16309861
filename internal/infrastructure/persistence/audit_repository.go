package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/laundrify/backend/internal/domain/audit"
	"github.com/laundrify/backend/internal/domain/shared"
	"github.com/laundrify/backend/internal/infrastructure/persistence/models"
)

// GormAuditLogRepository implements audit.Repository using GORM
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GormAuditLogRepository
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Save persists an audit log entry
func (r *GormAuditLogRepository) Save(ctx context.Context, l *audit.Log) error {
	var model models.AuditLogModel
	model.FromDomain(l)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindAll finds audit log entries with filtering and pagination
func (r *GormAuditLogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]audit.Log, error) {
	var logModels []models.AuditLogModel
	query := r.db.WithContext(ctx).Model(&models.AuditLogModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	sortField := ValidateSortField(filter.OrderBy, AuditLogSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}
	logs := make([]audit.Log, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

// Count counts audit log entries matching the filter
func (r *GormAuditLogRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.AuditLogModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormAuditLogRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Search+"%")
	}
	if action, ok := filter.Filters["action"]; ok {
		query = query.Where("action = ?", action)
	}
	if entityType, ok := filter.Filters["entity_type"]; ok {
		query = query.Where("entity_type = ?", entityType)
	}
	if entityID, ok := filter.Filters["entity_id"]; ok {
		query = query.Where("entity_id = ?", entityID)
	}
	return query
}
