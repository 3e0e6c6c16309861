package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laundrify/backend/internal/domain/audit"
	"github.com/laundrify/backend/internal/domain/expense"
	"github.com/laundrify/backend/internal/domain/shared"
)

// Service handles manual expense ledger entries
type Service struct {
	expenseRepo expense.Repository
	recorder    audit.Recorder
}

// NewService creates a new expense Service
func NewService(expenseRepo expense.Repository, recorder audit.Recorder) *Service {
	return &Service{
		expenseRepo: expenseRepo,
		recorder:    recorder,
	}
}

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	IncurredOn  string          `json:"incurred_on" binding:"required,dateonly"`
	Notes       string          `json:"notes"`
}

// ListFilter represents filter options for the expense list
type ListFilter struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Category  string `form:"category"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IncurredOn  string          `json:"incurred_on"`
	Notes       string          `json:"notes,omitempty"`
	CreatedBy   string          `json:"created_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToExpenseResponse converts a domain expense to its API representation
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		IncurredOn:  e.IncurredOn.Format("2006-01-02"),
		Notes:       e.Notes,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}

// Create records a manual expense entry
func (s *Service) Create(ctx context.Context, req CreateExpenseRequest, actorEmail string) (*ExpenseResponse, error) {
	incurredOn, err := time.Parse("2006-01-02", req.IncurredOn)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE",
			fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", req.IncurredOn))
	}

	e, err := expense.NewExpense(req.Category, req.Description, req.Amount, incurredOn, req.Notes, actorEmail)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("save expense: %w", err)
	}

	s.recorder.Record(ctx, audit.ActionExpenseCreated,
		fmt.Sprintf("Recorded %s expense of %s", e.Category, e.Amount.StringFixed(2)),
		"expense", e.ID.String(), actorEmail)

	resp := ToExpenseResponse(e)
	return &resp, nil
}

// List retrieves expenses with filtering and pagination
func (s *Service) List(ctx context.Context, filter ListFilter) (*shared.Paginated[ExpenseResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.Category != "" {
		f.Filters["category"] = filter.Category
	}
	for key, value := range map[string]string{"start_date": filter.StartDate, "end_date": filter.EndDate} {
		if value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return nil, shared.NewDomainError("INVALID_DATE",
				fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", value))
		}
		f.Filters[key] = value
	}

	expenses, err := s.expenseRepo.FindAll(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	total, err := s.expenseRepo.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count expenses: %w", err)
	}

	items := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		items[i] = ToExpenseResponse(&expenses[i])
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// Delete removes an expense entry
func (s *Service) Delete(ctx context.Context, id uuid.UUID, actorEmail string) error {
	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	s.recorder.Record(ctx, audit.ActionExpenseDeleted,
		fmt.Sprintf("Deleted %s expense of %s", e.Category, e.Amount.StringFixed(2)),
		"expense", id.String(), actorEmail)
	return nil
}
