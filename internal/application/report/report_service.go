package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/laundrify/backend/internal/domain/expense"
	"github.com/laundrify/backend/internal/domain/order"
	"github.com/laundrify/backend/internal/domain/report"
	"github.com/laundrify/backend/internal/domain/shared"
)

// OrderReader is the order read access the aggregator needs
type OrderReader interface {
	FindByCreatedRange(ctx context.Context, start, end time.Time) ([]order.Order, error)
}

// ExpenseReader is the expense read access the aggregator needs
type ExpenseReader interface {
	FindByIncurredRange(ctx context.Context, start, end time.Time) ([]expense.Expense, error)
}

// Cache stores computed reports keyed by date range. A nil Cache
// disables caching; misses and storage failures fall through to a
// fresh computation.
type Cache interface {
	Get(ctx context.Context, key string) (*report.ReportsData, bool)
	Set(ctx context.Context, key string, data *report.ReportsData)
}

// Service computes the analytics report over a date window. It performs
// reads only; any store failure aborts the whole aggregation.
type Service struct {
	orders   OrderReader
	expenses ExpenseReader
	cache    Cache
	logger   *zap.Logger
}

// NewService creates a new report Service. cache may be nil.
func NewService(orders OrderReader, expenses ExpenseReader, cache Cache, logger *zap.Logger) *Service {
	return &Service{
		orders:   orders,
		expenses: expenses,
		cache:    cache,
		logger:   logger,
	}
}

const unknownBucket = "unknown"

// Generate computes the report for [startDate, endDate], both formatted
// YYYY-MM-DD. Empty strings mean "all available data".
func (s *Service) Generate(ctx context.Context, startDate, endDate string) (*report.ReportsData, error) {
	window, err := resolveWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("reports:%s:%s", startDate, endDate)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			return cached, nil
		}
	}

	orders, err := s.orders.FindByCreatedRange(ctx, window.orderStart, window.orderEnd)
	if err != nil {
		return nil, fmt.Errorf("fetch orders for report: %w", err)
	}
	expenses, err := s.expenses.FindByIncurredRange(ctx, window.expenseStart, window.expenseEnd)
	if err != nil {
		return nil, fmt.Errorf("fetch expenses for report: %w", err)
	}

	data := aggregate(orders, expenses, window)
	s.logger.Debug("report computed",
		zap.String("period", data.Summary.PeriodLabel),
		zap.Int("orders", data.Summary.TotalOrders),
		zap.Int("expenses", len(expenses)))

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, data)
	}
	return data, nil
}

// window is the resolved reporting bounds. Zero order bounds mean
// "all data"; the final date range is then derived from the orders.
type window struct {
	explicit     bool
	orderStart   time.Time
	orderEnd     time.Time
	expenseStart time.Time
	expenseEnd   time.Time
	startDay     time.Time
	endDay       time.Time
}

func resolveWindow(startDate, endDate string) (window, error) {
	if startDate == "" && endDate == "" {
		return window{}, nil
	}
	if startDate == "" || endDate == "" {
		return window{}, shared.NewDomainError("INVALID_DATE", "Both start and end dates are required for a ranged report")
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return window{}, shared.NewDomainError("INVALID_DATE",
			fmt.Sprintf("Invalid start date %q, expected YYYY-MM-DD", startDate))
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return window{}, shared.NewDomainError("INVALID_DATE",
			fmt.Sprintf("Invalid end date %q, expected YYYY-MM-DD", endDate))
	}
	if end.Before(start) {
		return window{}, shared.NewDomainError("INVALID_DATE", "End date cannot be before start date")
	}

	return window{
		explicit:     true,
		orderStart:   start,
		orderEnd:     endOfDay(end),
		expenseStart: start,
		expenseEnd:   endOfDay(end),
		startDay:     start,
		endDay:       end,
	}, nil
}

func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func aggregate(orders []order.Order, expenses []expense.Expense, w window) *report.ReportsData {
	summary, dateRange := buildSummary(orders, expenses, w)

	return &report.ReportsData{
		Summary:                summary,
		StatusDistribution:     buildStatusDistribution(orders),
		PaymentMethodAnalysis:  buildPaymentMethodAnalysis(orders),
		ServiceTypePerformance: buildServiceTypePerformance(orders),
		MonthlyTrends:          buildMonthlyTrends(orders),
		AvailableYears:         collectYears(orders),
		ExpenseBreakdown:       buildExpenseBreakdown(expenses),
		DateRange:              dateRange,
	}
}

func buildSummary(orders []order.Order, expenses []expense.Expense, w window) (report.Summary, report.DateRange) {
	gross := decimal.Zero
	completed := 0
	for _, o := range orders {
		if o.Status == order.OrderStatusCompleted {
			gross = gross.Add(o.TotalAmount)
			completed++
		}
	}

	general, payroll := expense.Classify(expenses)
	totalExpenses := expense.SumAmounts(general)
	totalPayroll := expense.SumAmounts(payroll)
	net := gross.Sub(totalExpenses).Sub(totalPayroll)

	avg := decimal.Zero
	if completed > 0 {
		avg = gross.Div(decimal.NewFromInt(int64(completed))).Round(2)
	}

	label, dateRange := periodLabel(orders, w)

	return report.Summary{
		GrossRevenue:         gross,
		TotalExpenses:        totalExpenses,
		TotalPayroll:         totalPayroll,
		NetRevenue:           net,
		TotalOrders:          len(orders),
		CompletedOrdersCount: completed,
		AverageOrderValue:    avg,
		PeriodLabel:          label,
	}, dateRange
}

// periodLabel derives the human-readable period description and the
// resolved date range. Explicit 7/30/90 day spans get their shorthand
// labels; an absent range is described from the data itself.
func periodLabel(orders []order.Order, w window) (string, report.DateRange) {
	if w.explicit {
		days := inclusiveDays(w.startDay, w.endDay)
		dateRange := report.DateRange{Start: w.startDay, End: endOfDay(w.endDay)}
		switch days {
		case 7, 30, 90:
			return fmt.Sprintf("Last %d Days", days), dateRange
		}
		return fmt.Sprintf("%d Days (%s - %s)",
			days, w.startDay.Format("Jan 2, 2006"), w.endDay.Format("Jan 2, 2006")), dateRange
	}

	if len(orders) == 0 {
		end := dateOnly(time.Now())
		start := end.AddDate(0, 0, -30)
		return "Last 30 Days", report.DateRange{Start: start, End: endOfDay(end)}
	}

	earliest, latest := orders[0].CreatedAt, orders[0].CreatedAt
	for _, o := range orders[1:] {
		if o.CreatedAt.Before(earliest) {
			earliest = o.CreatedAt
		}
		if o.CreatedAt.After(latest) {
			latest = o.CreatedAt
		}
	}
	start := dateOnly(earliest)
	end := dateOnly(latest)
	days := inclusiveDays(start, end)
	return fmt.Sprintf("All Data (%d days)", days), report.DateRange{Start: start, End: endOfDay(end)}
}

func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func buildStatusDistribution(orders []order.Order) []report.StatusBreakdown {
	type bucket struct {
		count   int
		revenue decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	keys := make([]string, 0)

	for _, o := range orders {
		key := o.Status.String()
		if key == "" {
			key = unknownBucket
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{revenue: decimal.Zero}
			buckets[key] = b
			keys = append(keys, key)
		}
		b.count++
		b.revenue = b.revenue.Add(o.TotalAmount)
	}

	out := make([]report.StatusBreakdown, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		out = append(out, report.StatusBreakdown{
			Status:     key,
			Count:      b.count,
			Revenue:    b.revenue,
			Percentage: percentage(b.count, len(orders)),
		})
	}
	return out
}

func buildPaymentMethodAnalysis(orders []order.Order) []report.PaymentMethodBreakdown {
	type bucket struct {
		count int
		total decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	keys := make([]string, 0)

	for _, o := range orders {
		key := o.PaymentMethod.String()
		if key == "" {
			key = unknownBucket
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{total: decimal.Zero}
			buckets[key] = b
			keys = append(keys, key)
		}
		b.count++
		b.total = b.total.Add(o.TotalAmount)
	}

	out := make([]report.PaymentMethodBreakdown, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		out = append(out, report.PaymentMethodBreakdown{
			Method:      key,
			Count:       b.count,
			Percentage:  percentage(b.count, len(orders)),
			TotalAmount: b.total,
		})
	}
	return out
}

func buildServiceTypePerformance(orders []order.Order) []report.ServiceTypeBreakdown {
	type bucket struct {
		count   int
		revenue decimal.Decimal
		prices  decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	keys := make([]string, 0)

	for _, o := range orders {
		key := o.ServiceType
		if key == "" {
			key = unknownBucket
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{revenue: decimal.Zero, prices: decimal.Zero}
			buckets[key] = b
			keys = append(keys, key)
		}
		b.count++
		b.revenue = b.revenue.Add(o.TotalAmount)
		b.prices = b.prices.Add(o.UnitPrice)
	}

	out := make([]report.ServiceTypeBreakdown, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		out = append(out, report.ServiceTypeBreakdown{
			ServiceType:  key,
			OrderCount:   b.count,
			TotalRevenue: b.revenue,
			AveragePrice: b.prices.Div(decimal.NewFromInt(int64(b.count))).Round(2),
			Percentage:   percentage(b.count, len(orders)),
		})
	}
	return out
}

// buildMonthlyTrends emits one bucket per calendar month from the
// earliest to the latest order month, gapless, in chronological order.
func buildMonthlyTrends(orders []order.Order) []report.MonthlyTrend {
	if len(orders) == 0 {
		return []report.MonthlyTrend{}
	}

	earliest, latest := orders[0].CreatedAt, orders[0].CreatedAt
	for _, o := range orders[1:] {
		if o.CreatedAt.Before(earliest) {
			earliest = o.CreatedAt
		}
		if o.CreatedAt.After(latest) {
			latest = o.CreatedAt
		}
	}

	type bucket struct {
		revenue decimal.Decimal
		count   int
	}
	buckets := make(map[string]*bucket)
	monthKey := func(t time.Time) string { return t.Format("2006-01") }
	for _, o := range orders {
		key := monthKey(o.CreatedAt)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{revenue: decimal.Zero}
			buckets[key] = b
		}
		b.count++
		b.revenue = b.revenue.Add(o.TotalAmount)
	}

	out := make([]report.MonthlyTrend, 0)
	cursor := time.Date(earliest.Year(), earliest.Month(), 1, 0, 0, 0, 0, earliest.Location())
	last := time.Date(latest.Year(), latest.Month(), 1, 0, 0, 0, 0, latest.Location())
	for !cursor.After(last) {
		trend := report.MonthlyTrend{
			Month:             cursor.Month().String(),
			Year:              cursor.Year(),
			Revenue:           decimal.Zero,
			AverageOrderValue: decimal.Zero,
		}
		if b, ok := buckets[monthKey(cursor)]; ok {
			trend.Revenue = b.revenue
			trend.OrderCount = b.count
			trend.AverageOrderValue = b.revenue.Div(decimal.NewFromInt(int64(b.count))).Round(2)
		}
		out = append(out, trend)
		cursor = cursor.AddDate(0, 1, 0)
	}
	return out
}

func collectYears(orders []order.Order) []int {
	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, o := range orders {
		y := o.CreatedAt.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// buildExpenseBreakdown groups all expenses, payroll included, by
// category, sorted by amount descending.
func buildExpenseBreakdown(expenses []expense.Expense) []report.ExpenseCategoryBreakdown {
	totals := make(map[string]decimal.Decimal)
	keys := make([]string, 0)
	for _, e := range expenses {
		if _, ok := totals[e.Category]; !ok {
			keys = append(keys, e.Category)
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	out := make([]report.ExpenseCategoryBreakdown, 0, len(keys))
	for _, key := range keys {
		out = append(out, report.ExpenseCategoryBreakdown{Category: key, Amount: totals[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

func percentage(count, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(count)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
