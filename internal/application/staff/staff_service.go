package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laundrify/backend/internal/domain/audit"
	"github.com/laundrify/backend/internal/domain/shared"
	"github.com/laundrify/backend/internal/domain/staff"
)

// Service handles staff administration and attendance
type Service struct {
	staffRepo      staff.Repository
	attendanceRepo staff.AttendanceRepository
	recorder       audit.Recorder
}

// NewService creates a new staff Service
func NewService(staffRepo staff.Repository, attendanceRepo staff.AttendanceRepository, recorder audit.Recorder) *Service {
	return &Service{
		staffRepo:      staffRepo,
		attendanceRepo: attendanceRepo,
		recorder:       recorder,
	}
}

// CreateStaffRequest represents a request to register a staff member
type CreateStaffRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=100"`
	Role      string          `json:"role"`
	DailyRate decimal.Decimal `json:"daily_rate"`
}

// AttendanceEntry is one staff member's status for the date being saved
type AttendanceEntry struct {
	StaffID uuid.UUID `json:"staff_id" binding:"required"`
	Status  string    `json:"status" binding:"required"`
}

// SaveAttendanceRequest upserts attendance rows for one calendar date
type SaveAttendanceRequest struct {
	Date    string            `json:"date" binding:"required,dateonly"`
	Entries []AttendanceEntry `json:"entries" binding:"required,min=1"`
}

// StaffResponse represents a staff member in API responses
type StaffResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Role      string          `json:"role,omitempty"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
}

// AttendanceResponse represents an attendance row in API responses
type AttendanceResponse struct {
	ID      uuid.UUID `json:"id"`
	StaffID uuid.UUID `json:"staff_id"`
	Date    string    `json:"date"`
	Status  string    `json:"status"`
}

func toStaffResponse(m *staff.Staff) StaffResponse {
	return StaffResponse{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		DailyRate: m.DailyRate,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
}

// Create registers a new staff member
func (s *Service) Create(ctx context.Context, req CreateStaffRequest, actorEmail string) (*StaffResponse, error) {
	m, err := staff.NewStaff(req.Name, req.Role, req.DailyRate)
	if err != nil {
		return nil, err
	}
	if err := s.staffRepo.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("save staff: %w", err)
	}

	s.recorder.Record(ctx, audit.ActionStaffCreated,
		fmt.Sprintf("Registered staff member %s", m.Name),
		"staff", m.ID.String(), actorEmail)

	resp := toStaffResponse(m)
	return &resp, nil
}

// List retrieves staff members. When activeOnly is set, inactive members
// are filtered out at the repository.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]StaffResponse, error) {
	f := shared.DefaultFilter()
	if activeOnly {
		f.Filters["active"] = true
	}
	members, err := s.staffRepo.FindAll(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	out := make([]StaffResponse, len(members))
	for i := range members {
		out[i] = toStaffResponse(&members[i])
	}
	return out, nil
}

// SaveAttendance upserts attendance rows for one date. Each entry is
// keyed on (staff, date); resubmitting the form replaces prior statuses.
func (s *Service) SaveAttendance(ctx context.Context, req SaveAttendanceRequest, actorEmail string) ([]AttendanceResponse, error) {
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE",
			fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", req.Date))
	}

	out := make([]AttendanceResponse, 0, len(req.Entries))
	for _, entry := range req.Entries {
		a, err := staff.NewAttendance(entry.StaffID, day, staff.AttendanceStatus(entry.Status))
		if err != nil {
			return nil, err
		}
		if err := s.attendanceRepo.Upsert(ctx, a); err != nil {
			return nil, fmt.Errorf("save attendance: %w", err)
		}
		out = append(out, AttendanceResponse{
			ID:      a.ID,
			StaffID: a.StaffID,
			Date:    a.Date.Format("2006-01-02"),
			Status:  a.Status.String(),
		})
	}

	s.recorder.Record(ctx, audit.ActionAttendanceSaved,
		fmt.Sprintf("Saved attendance for %d staff on %s", len(req.Entries), req.Date),
		"attendance", req.Date, actorEmail)
	return out, nil
}

// AttendanceByDate lists the attendance rows recorded for a date
func (s *Service) AttendanceByDate(ctx context.Context, date string) ([]AttendanceResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE",
			fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", date))
	}
	rows, err := s.attendanceRepo.FindByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	out := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		out[i] = AttendanceResponse{
			ID:      a.ID,
			StaffID: a.StaffID,
			Date:    a.Date.Format("2006-01-02"),
			Status:  a.Status.String(),
		}
	}
	return out, nil
}
