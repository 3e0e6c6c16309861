package staff

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/laundrify/backend/internal/domain/shared"
)

// Repository defines the interface for staff persistence
type Repository interface {
	// FindByID finds a staff member by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Staff, error)

	// FindAll finds staff members with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Staff, error)

	// Save creates or updates a staff member
	Save(ctx context.Context, s *Staff) error

	// Delete deletes a staff member
	Delete(ctx context.Context, id uuid.UUID) error
}

// AttendanceRepository defines the interface for attendance persistence
type AttendanceRepository interface {
	// FindByDate finds all attendance records for a calendar date
	FindByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// Upsert creates or replaces the attendance row keyed on (staff, date)
	Upsert(ctx context.Context, a *Attendance) error
}

// SalaryRepository defines the interface for salary persistence
type SalaryRepository interface {
	// FindByStaffAndDate finds the salary row for (staff, date).
	// Returns shared.ErrNotFound when no row exists.
	FindByStaffAndDate(ctx context.Context, staffID uuid.UUID, date time.Time) (*Salary, error)

	// Upsert creates or replaces the salary row keyed on (staff, date)
	Upsert(ctx context.Context, s *Salary) error
}
