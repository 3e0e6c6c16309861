package staff

import (
	"time"

	"github.com/google/uuid"

	"github.com/laundrify/backend/internal/domain/shared"
)

// AttendanceStatus represents a staff member's attendance on a date
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceOff     AttendanceStatus = "off"
)

// IsValid checks if the status is a valid AttendanceStatus
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceOff:
		return true
	}
	return false
}

// String returns the string representation of AttendanceStatus
func (s AttendanceStatus) String() string {
	return string(s)
}

// Attendance records one staff member's status for one calendar date.
// At most one row exists per (staff, date); saves upsert on that key.
type Attendance struct {
	shared.BaseEntity
	StaffID uuid.UUID
	Date    time.Time
	Status  AttendanceStatus
}

// NewAttendance creates an attendance record for a date
func NewAttendance(staffID uuid.UUID, date time.Time, status AttendanceStatus) (*Attendance, error) {
	if staffID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STAFF", "Staff ID cannot be empty")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Attendance date is required")
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_ATTENDANCE_STATUS", "Invalid attendance status: "+string(status))
	}

	return &Attendance{
		BaseEntity: shared.NewBaseEntity(),
		StaffID:    staffID,
		Date:       truncateToDate(date),
		Status:     status,
	}, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
