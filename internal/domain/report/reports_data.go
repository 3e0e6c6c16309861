package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the headline revenue figures for a reporting period
type Summary struct {
	GrossRevenue         decimal.Decimal `json:"gross_revenue"`
	TotalExpenses        decimal.Decimal `json:"total_expenses"`
	TotalPayroll         decimal.Decimal `json:"total_payroll"`
	NetRevenue           decimal.Decimal `json:"net_revenue"`
	TotalOrders          int             `json:"total_orders"`
	CompletedOrdersCount int             `json:"completed_orders_count"`
	AverageOrderValue    decimal.Decimal `json:"average_order_value"`
	PeriodLabel          string          `json:"period_label"`
}

// StatusBreakdown is one row of the order status distribution
type StatusBreakdown struct {
	Status     string          `json:"status"`
	Count      int             `json:"count"`
	Revenue    decimal.Decimal `json:"revenue"`
	Percentage decimal.Decimal `json:"percentage"`
}

// PaymentMethodBreakdown is one row of the payment method analysis
type PaymentMethodBreakdown struct {
	Method      string          `json:"method"`
	Count       int             `json:"count"`
	Percentage  decimal.Decimal `json:"percentage"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ServiceTypeBreakdown is one row of the service type performance table
type ServiceTypeBreakdown struct {
	ServiceType  string          `json:"service_type"`
	OrderCount   int             `json:"order_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	AveragePrice decimal.Decimal `json:"average_price"`
	Percentage   decimal.Decimal `json:"percentage"`
}

// MonthlyTrend is one calendar-month bucket of the trend sequence.
// Buckets are contiguous from the earliest to the latest order month,
// including months with no orders.
type MonthlyTrend struct {
	Month             string          `json:"month"`
	Year              int             `json:"year"`
	Revenue           decimal.Decimal `json:"revenue"`
	OrderCount        int             `json:"order_count"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// ExpenseCategoryBreakdown is one row of the expense breakdown,
// covering general and payroll categories alike
type ExpenseCategoryBreakdown struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DateRange is the resolved reporting window
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ReportsData is the derived analytics aggregate for a date window.
// It has no persistent lifecycle and is recomputed on every request.
type ReportsData struct {
	Summary                Summary                    `json:"summary"`
	StatusDistribution     []StatusBreakdown          `json:"status_distribution"`
	PaymentMethodAnalysis  []PaymentMethodBreakdown   `json:"payment_method_analysis"`
	ServiceTypePerformance []ServiceTypeBreakdown     `json:"service_type_performance"`
	MonthlyTrends          []MonthlyTrend             `json:"monthly_trends"`
	AvailableYears         []int                      `json:"available_years"`
	ExpenseBreakdown       []ExpenseCategoryBreakdown `json:"expense_breakdown"`
	DateRange              DateRange                  `json:"date_range"`
}
