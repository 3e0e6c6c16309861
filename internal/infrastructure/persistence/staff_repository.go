package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/laundrify/backend/internal/domain/shared"
	"github.com/laundrify/backend/internal/domain/staff"
	"github.com/laundrify/backend/internal/infrastructure/persistence/models"
)

// GormStaffRepository implements staff.Repository using GORM
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository creates a new GormStaffRepository
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// FindByID finds a staff member by ID
func (r *GormStaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Staff, error) {
	var model models.StaffModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds staff members with filtering
func (r *GormStaffRepository) FindAll(ctx context.Context, filter shared.Filter) ([]staff.Staff, error) {
	var staffModels []models.StaffModel
	query := r.db.WithContext(ctx).Model(&models.StaffModel{})

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if active, ok := filter.Filters["active"]; ok {
		query = query.Where("active = ?", active)
	}

	sortField := ValidateSortField(filter.OrderBy, StaffSortFields, "name")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if err := query.Find(&staffModels).Error; err != nil {
		return nil, err
	}
	result := make([]staff.Staff, len(staffModels))
	for i, model := range staffModels {
		result[i] = *model.ToDomain()
	}
	return result, nil
}

// Save creates or updates a staff member
func (r *GormStaffRepository) Save(ctx context.Context, s *staff.Staff) error {
	var model models.StaffModel
	model.FromDomain(s)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a staff member
func (r *GormStaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.StaffModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormAttendanceRepository implements staff.AttendanceRepository using GORM
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewGormAttendanceRepository creates a new GormAttendanceRepository
func NewGormAttendanceRepository(db *gorm.DB) *GormAttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// FindByDate finds all attendance records for a calendar date
func (r *GormAttendanceRepository) FindByDate(ctx context.Context, date time.Time) ([]staff.Attendance, error) {
	var attendanceModels []models.AttendanceModel
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("created_at ASC").
		Find(&attendanceModels).Error; err != nil {
		return nil, err
	}
	result := make([]staff.Attendance, len(attendanceModels))
	for i, model := range attendanceModels {
		result[i] = *model.ToDomain()
	}
	return result, nil
}

// Upsert creates or replaces the attendance row keyed on (staff, date)
func (r *GormAttendanceRepository) Upsert(ctx context.Context, a *staff.Attendance) error {
	var model models.AttendanceModel
	model.FromDomain(a)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "staff_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&model).Error
}

// GormSalaryRepository implements staff.SalaryRepository using GORM
type GormSalaryRepository struct {
	db *gorm.DB
}

// NewGormSalaryRepository creates a new GormSalaryRepository
func NewGormSalaryRepository(db *gorm.DB) *GormSalaryRepository {
	return &GormSalaryRepository{db: db}
}

// FindByStaffAndDate finds the salary row for (staff, date).
// Returns shared.ErrNotFound when no row exists.
func (r *GormSalaryRepository) FindByStaffAndDate(ctx context.Context, staffID uuid.UUID, date time.Time) (*staff.Salary, error) {
	var model models.SalaryModel
	if err := r.db.WithContext(ctx).
		Where("staff_id = ? AND salary_date = ?", staffID, date).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Upsert creates or replaces the salary row keyed on (staff, date)
func (r *GormSalaryRepository) Upsert(ctx context.Context, s *staff.Salary) error {
	var model models.SalaryModel
	model.FromDomain(s)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "staff_id"}, {Name: "salary_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"days_worked", "rate", "gross_amount", "deductions", "net_amount",
			"payment_status", "payment_date", "updated_at",
		}),
	}).Create(&model).Error
}
