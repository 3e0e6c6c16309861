package models

import (
	"github.com/laundrify/backend/internal/domain/audit"
	"github.com/laundrify/backend/internal/domain/shared"
)

// AuditLogModel maps audit.Log to the audit_logs table
type AuditLogModel struct {
	BaseModel
	Action      string `gorm:"type:varchar(50);not null;index"`
	Description string `gorm:"type:varchar(500)"`
	EntityType  string `gorm:"type:varchar(50);index"`
	EntityID    string `gorm:"type:varchar(50);index"`
	ActorEmail  string `gorm:"type:varchar(100);index"`
}

// TableName specifies the table name
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// ToDomain converts AuditLogModel to a domain audit.Log
func (m *AuditLogModel) ToDomain() *audit.Log {
	l := &audit.Log{
		Action:      m.Action,
		Description: m.Description,
		EntityType:  m.EntityType,
		EntityID:    m.EntityID,
		ActorEmail:  m.ActorEmail,
	}
	l.BaseEntity = shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
	return l
}

// FromDomain populates AuditLogModel from a domain audit.Log
func (m *AuditLogModel) FromDomain(l *audit.Log) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.Action = l.Action
	m.Description = l.Description
	m.EntityType = l.EntityType
	m.EntityID = l.EntityID
	m.ActorEmail = l.ActorEmail
}
