package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laundrify/backend/internal/domain/shared"
	"github.com/laundrify/backend/internal/domain/staff"
)

// StaffModel maps the Staff aggregate to the staff table
type StaffModel struct {
	BaseModel
	Name      string          `gorm:"type:varchar(100);not null"`
	Role      string          `gorm:"type:varchar(50)"`
	DailyRate decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Active    bool            `gorm:"not null;default:true;index"`
}

// TableName specifies the table name
func (StaffModel) TableName() string {
	return "staff"
}

// ToDomain converts StaffModel to a domain Staff
func (m *StaffModel) ToDomain() *staff.Staff {
	s := &staff.Staff{
		Name:      m.Name,
		Role:      m.Role,
		DailyRate: m.DailyRate,
		Active:    m.Active,
	}
	s.BaseEntity = shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
	return s
}

// FromDomain populates StaffModel from a domain Staff
func (m *StaffModel) FromDomain(s *staff.Staff) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Name = s.Name
	m.Role = s.Role
	m.DailyRate = s.DailyRate
	m.Active = s.Active
}

// AttendanceModel maps Attendance to the staff_attendance table.
// The (staff_id, date) pair is the upsert key.
type AttendanceModel struct {
	BaseModel
	StaffID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_staff_date"`
	Date    time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_staff_date"`
	Status  string    `gorm:"type:varchar(20);not null"`
}

// TableName specifies the table name
func (AttendanceModel) TableName() string {
	return "staff_attendance"
}

// ToDomain converts AttendanceModel to a domain Attendance
func (m *AttendanceModel) ToDomain() *staff.Attendance {
	a := &staff.Attendance{
		StaffID: m.StaffID,
		Date:    m.Date,
		Status:  staff.AttendanceStatus(m.Status),
	}
	a.BaseEntity = shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
	return a
}

// FromDomain populates AttendanceModel from a domain Attendance
func (m *AttendanceModel) FromDomain(a *staff.Attendance) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.StaffID = a.StaffID
	m.Date = a.Date
	m.Status = a.Status.String()
}

// SalaryModel maps Salary to the staff_salaries table.
// The (staff_id, salary_date) pair is the upsert key.
type SalaryModel struct {
	BaseModel
	StaffID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_salary_staff_date"`
	SalaryDate    time.Time       `gorm:"type:date;not null;uniqueIndex:idx_salary_staff_date"`
	DaysWorked    int             `gorm:"not null;default:1"`
	Rate          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	GrossAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Deductions    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	NetAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentStatus string          `gorm:"type:varchar(20);not null"`
	PaymentDate   *time.Time
}

// TableName specifies the table name
func (SalaryModel) TableName() string {
	return "staff_salaries"
}

// ToDomain converts SalaryModel to a domain Salary
func (m *SalaryModel) ToDomain() *staff.Salary {
	s := &staff.Salary{
		StaffID:       m.StaffID,
		SalaryDate:    m.SalaryDate,
		DaysWorked:    m.DaysWorked,
		Rate:          m.Rate,
		GrossAmount:   m.GrossAmount,
		Deductions:    m.Deductions,
		NetAmount:     m.NetAmount,
		PaymentStatus: staff.SalaryPaymentStatus(m.PaymentStatus),
		PaymentDate:   m.PaymentDate,
	}
	s.BaseEntity = shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
	return s
}

// FromDomain populates SalaryModel from a domain Salary
func (m *SalaryModel) FromDomain(s *staff.Salary) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.StaffID = s.StaffID
	m.SalaryDate = s.SalaryDate
	m.DaysWorked = s.DaysWorked
	m.Rate = s.Rate
	m.GrossAmount = s.GrossAmount
	m.Deductions = s.Deductions
	m.NetAmount = s.NetAmount
	m.PaymentStatus = s.PaymentStatus.String()
	m.PaymentDate = s.PaymentDate
}
