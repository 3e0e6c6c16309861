package staff

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/laundrify/backend/internal/domain/shared"
)

const maxNameLength = 100

// Staff represents a staff member with a daily pay rate
type Staff struct {
	shared.BaseAggregateRoot
	Name      string
	Role      string
	DailyRate decimal.Decimal
	Active    bool
}

// NewStaff creates a new staff member
func NewStaff(name, role string, dailyRate decimal.Decimal) (*Staff, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_STAFF_NAME", "Staff name is required")
	}
	if len(name) > maxNameLength {
		return nil, shared.NewDomainError("INVALID_STAFF_NAME", "Staff name is too long")
	}
	if dailyRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DAILY_RATE", "Daily rate cannot be negative")
	}

	return &Staff{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Role:              strings.TrimSpace(role),
		DailyRate:         dailyRate,
		Active:            true,
	}, nil
}

// UpdateDailyRate changes the staff member's daily rate
func (s *Staff) UpdateDailyRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_DAILY_RATE", "Daily rate cannot be negative")
	}
	s.DailyRate = rate
	s.UpdatedAt = time.Now()
	return nil
}

// Deactivate marks the staff member as inactive
func (s *Staff) Deactivate() {
	s.Active = false
	s.UpdatedAt = time.Now()
}
