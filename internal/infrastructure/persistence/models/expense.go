package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/laundrify/backend/internal/domain/expense"
	"github.com/laundrify/backend/internal/domain/shared"
)

// ExpenseModel maps the Expense aggregate to the expenses table
type ExpenseModel struct {
	BaseModel
	Category    string          `gorm:"type:varchar(50);not null;index"`
	Description string          `gorm:"type:varchar(200)"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IncurredOn  time.Time       `gorm:"type:date;not null;index"`
	Notes       string          `gorm:"type:text"`
	CreatedBy   string          `gorm:"type:varchar(100)"`
}

// TableName specifies the table name
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts ExpenseModel to a domain Expense
func (m *ExpenseModel) ToDomain() *expense.Expense {
	e := &expense.Expense{
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		IncurredOn:  m.IncurredOn,
		Notes:       m.Notes,
		CreatedBy:   m.CreatedBy,
	}
	e.BaseEntity = shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
	return e
}

// FromDomain populates ExpenseModel from a domain Expense
func (m *ExpenseModel) FromDomain(e *expense.Expense) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Category = e.Category
	m.Description = e.Description
	m.Amount = e.Amount
	m.IncurredOn = e.IncurredOn
	m.Notes = e.Notes
	m.CreatedBy = e.CreatedBy
}
