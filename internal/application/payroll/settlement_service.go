package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/laundrify/backend/internal/domain/audit"
	"github.com/laundrify/backend/internal/domain/expense"
	"github.com/laundrify/backend/internal/domain/shared"
	"github.com/laundrify/backend/internal/domain/staff"
)

// SettlementService converts attendance days into salary records and
// their payroll expense entries, and reverses them.
type SettlementService struct {
	staffRepo   staff.Repository
	salaryRepo  staff.SalaryRepository
	expenseRepo expense.Repository
	recorder    audit.Recorder
	logger      *zap.Logger
}

// NewSettlementService creates a new SettlementService
func NewSettlementService(staffRepo staff.Repository, salaryRepo staff.SalaryRepository,
	expenseRepo expense.Repository, recorder audit.Recorder, logger *zap.Logger) *SettlementService {
	return &SettlementService{
		staffRepo:   staffRepo,
		salaryRepo:  salaryRepo,
		expenseRepo: expenseRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

// SalaryResponse represents a salary record in API responses
type SalaryResponse struct {
	ID            uuid.UUID  `json:"id"`
	StaffID       uuid.UUID  `json:"staff_id"`
	SalaryDate    string     `json:"salary_date"`
	DaysWorked    int        `json:"days_worked"`
	Rate          string     `json:"rate"`
	GrossAmount   string     `json:"gross_amount"`
	Deductions    string     `json:"deductions"`
	NetAmount     string     `json:"net_amount"`
	PaymentStatus string     `json:"payment_status"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
}

func toSalaryResponse(s *staff.Salary) SalaryResponse {
	return SalaryResponse{
		ID:            s.ID,
		StaffID:       s.StaffID,
		SalaryDate:    s.SalaryDate.Format("2006-01-02"),
		DaysWorked:    s.DaysWorked,
		Rate:          s.Rate.StringFixed(2),
		GrossAmount:   s.GrossAmount.StringFixed(2),
		Deductions:    s.Deductions.StringFixed(2),
		NetAmount:     s.NetAmount.StringFixed(2),
		PaymentStatus: s.PaymentStatus.String(),
		PaymentDate:   s.PaymentDate,
	}
}

// Pay settles one attendance day for a staff member: it upserts the
// salary row for (staff, date) as paid and records the matching payroll
// expense. The expense insert is best-effort; a failure there leaves the
// salary paid and is only logged.
func (s *SettlementService) Pay(ctx context.Context, staffID uuid.UUID, date string, actorEmail string) (*SalaryResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	member, err := s.staffRepo.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if member.DailyRate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_DAILY_RATE", "Staff member has no valid daily rate")
	}

	salary, err := s.salaryRepo.FindByStaffAndDate(ctx, staffID, day)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("look up salary: %w", err)
	}
	if salary == nil {
		salary, err = staff.NewSalary(staffID, day, member.DailyRate)
		if err != nil {
			return nil, err
		}
	} else if !salary.IsPaid() {
		// An existing unpaid row carries amounts from an earlier
		// settlement; rebuild them from the current daily rate.
		if err := salary.Recompute(member.DailyRate); err != nil {
			return nil, err
		}
	}

	if err := salary.MarkPaid(time.Now()); err != nil {
		return nil, err
	}

	if err := s.salaryRepo.Upsert(ctx, salary); err != nil {
		return nil, fmt.Errorf("save salary: %w", err)
	}

	description := staff.PayrollDescription(member.Name, day)
	entry, err := expense.NewExpense(expense.PayrollCategory, description, salary.NetAmount, day, "", actorEmail)
	if err == nil {
		err = s.expenseRepo.Save(ctx, entry)
	}
	if err != nil {
		s.logger.Warn("payroll expense insert failed, salary remains paid",
			zap.String("staff_id", staffID.String()),
			zap.String("date", date),
			zap.Error(err))
	}

	s.recorder.Record(ctx, audit.ActionPayrollPaid, description, "salary", salary.ID.String(), actorEmail)

	resp := toSalaryResponse(salary)
	return &resp, nil
}

// Unpay reverses a settlement: it marks the salary row unpaid, clears the
// payment timestamp, and deletes the payroll expense that Pay recorded.
// When no salary row exists for (staff, date) the call is a no-op.
func (s *SettlementService) Unpay(ctx context.Context, staffID uuid.UUID, date string, actorEmail string) error {
	day, err := parseDate(date)
	if err != nil {
		return err
	}

	salary, err := s.salaryRepo.FindByStaffAndDate(ctx, staffID, day)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("look up salary: %w", err)
	}

	salary.MarkUnpaid()
	if err := s.salaryRepo.Upsert(ctx, salary); err != nil {
		return fmt.Errorf("save salary: %w", err)
	}

	member, err := s.staffRepo.FindByID(ctx, staffID)
	if err != nil {
		return err
	}

	description := staff.PayrollDescription(member.Name, day)
	if err := s.expenseRepo.DeletePayrollEntry(ctx, day, description); err != nil {
		s.logger.Warn("payroll expense delete failed, salary remains unpaid",
			zap.String("staff_id", staffID.String()),
			zap.String("date", date),
			zap.Error(err))
	}

	s.recorder.Record(ctx, audit.ActionPayrollUnpaid, description, "salary", salary.ID.String(), actorEmail)
	return nil
}

func parseDate(date string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE",
			fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", date))
	}
	return day, nil
}
