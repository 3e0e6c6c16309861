package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/laundrify/backend/internal/domain/expense"
	"github.com/laundrify/backend/internal/domain/shared"
	"github.com/laundrify/backend/internal/infrastructure/persistence/models"
)

// GormExpenseRepository implements expense.Repository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	var model models.ExpenseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds expenses with filtering and pagination
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]expense.Expense, error) {
	var expenseModels []models.ExpenseModel
	query := r.db.WithContext(ctx).Model(&models.ExpenseModel{})
	query = r.applyFilter(query, filter)

	if err := query.Find(&expenseModels).Error; err != nil {
		return nil, err
	}
	expenses := make([]expense.Expense, len(expenseModels))
	for i, model := range expenseModels {
		expenses[i] = *model.ToDomain()
	}
	return expenses, nil
}

// FindByIncurredRange finds expenses incurred within [start, end] inclusive.
// A zero start or end leaves that bound open.
func (r *GormExpenseRepository) FindByIncurredRange(ctx context.Context, start, end time.Time) ([]expense.Expense, error) {
	var expenseModels []models.ExpenseModel
	query := r.db.WithContext(ctx).Model(&models.ExpenseModel{})
	if !start.IsZero() {
		query = query.Where("incurred_on >= ?", start)
	}
	if !end.IsZero() {
		query = query.Where("incurred_on <= ?", end)
	}
	if err := query.Order("incurred_on ASC").Find(&expenseModels).Error; err != nil {
		return nil, err
	}
	expenses := make([]expense.Expense, len(expenseModels))
	for i, model := range expenseModels {
		expenses[i] = *model.ToDomain()
	}
	return expenses, nil
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, e *expense.Expense) error {
	var model models.ExpenseModel
	model.FromDomain(e)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes an expense
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeletePayrollEntry deletes the payroll expense matching the given
// incurred date and exact description. Returns nil when no row matches.
func (r *GormExpenseRepository) DeletePayrollEntry(ctx context.Context, incurredOn time.Time, description string) error {
	return r.db.WithContext(ctx).
		Where("category = ? AND incurred_on = ? AND description = ?",
			expense.PayrollCategory, incurredOn, description).
		Delete(&models.ExpenseModel{}).Error
}

// Count counts expenses matching the filter
func (r *GormExpenseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.ExpenseModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter conditions, sorting and pagination to the query
func (r *GormExpenseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	sortField := ValidateSortField(filter.OrderBy, ExpenseSortFields, "incurred_on")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	return query
}

// applyFilterWithoutPagination applies filter conditions without pagination
func (r *GormExpenseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("(description ILIKE ? OR notes ILIKE ?)", searchPattern, searchPattern)
	}

	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	if startDate, ok := filter.Filters["start_date"]; ok {
		query = query.Where("incurred_on >= ?", startDate)
	}
	if endDate, ok := filter.Filters["end_date"]; ok {
		query = query.Where("incurred_on <= ?", endDate)
	}

	return query
}
