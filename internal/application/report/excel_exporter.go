package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/laundrify/backend/internal/domain/report"
	"github.com/laundrify/backend/internal/domain/shared/valueobject"
)

// pesos renders a monetary cell in the shop currency
func pesos(d decimal.Decimal) string {
	return valueobject.NewMoneyPHP(d).StringFixed(2)
}

// ExcelExporter renders a ReportsData aggregate as an XLSX workbook
type ExcelExporter struct{}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export writes the workbook to w. Sheets: Summary, Status, Payment
// Methods, Service Types, Monthly Trends, Expenses.
func (e *ExcelExporter) Export(data *report.ReportsData, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeSummary(f, data); err != nil {
		return err
	}
	e.writeStatusSheet(f, data)
	e.writePaymentSheet(f, data)
	e.writeServiceSheet(f, data)
	e.writeTrendSheet(f, data)
	e.writeExpenseSheet(f, data)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (e *ExcelExporter) writeSummary(f *excelize.File, data *report.ReportsData) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	s := data.Summary
	rows := [][]interface{}{
		{"Period", s.PeriodLabel},
		{"Currency", string(valueobject.DefaultCurrency)},
		{"Gross Revenue", pesos(s.GrossRevenue)},
		{"Total Expenses", pesos(s.TotalExpenses)},
		{"Total Payroll", pesos(s.TotalPayroll)},
		{"Net Revenue", pesos(s.NetRevenue)},
		{"Total Orders", s.TotalOrders},
		{"Completed Orders", s.CompletedOrdersCount},
		{"Average Order Value", pesos(s.AverageOrderValue)},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		f.SetSheetRow(sheet, cell, &row)
	}
	return nil
}

func (e *ExcelExporter) writeStatusSheet(f *excelize.File, data *report.ReportsData) {
	const sheet = "Status"
	f.NewSheet(sheet)
	header := []interface{}{"Status", "Count", "Revenue", "Percentage"}
	f.SetSheetRow(sheet, "A1", &header)
	for i, b := range data.StatusDistribution {
		row := []interface{}{b.Status, b.Count, pesos(b.Revenue), b.Percentage.StringFixed(2)}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &row)
	}
}

func (e *ExcelExporter) writePaymentSheet(f *excelize.File, data *report.ReportsData) {
	const sheet = "Payment Methods"
	f.NewSheet(sheet)
	header := []interface{}{"Method", "Count", "Percentage", "Total Amount"}
	f.SetSheetRow(sheet, "A1", &header)
	for i, b := range data.PaymentMethodAnalysis {
		row := []interface{}{b.Method, b.Count, b.Percentage.StringFixed(2), pesos(b.TotalAmount)}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &row)
	}
}

func (e *ExcelExporter) writeServiceSheet(f *excelize.File, data *report.ReportsData) {
	const sheet = "Service Types"
	f.NewSheet(sheet)
	header := []interface{}{"Service Type", "Orders", "Revenue", "Average Price", "Percentage"}
	f.SetSheetRow(sheet, "A1", &header)
	for i, b := range data.ServiceTypePerformance {
		row := []interface{}{b.ServiceType, b.OrderCount, pesos(b.TotalRevenue),
			pesos(b.AveragePrice), b.Percentage.StringFixed(2)}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &row)
	}
}

func (e *ExcelExporter) writeTrendSheet(f *excelize.File, data *report.ReportsData) {
	const sheet = "Monthly Trends"
	f.NewSheet(sheet)
	header := []interface{}{"Month", "Year", "Revenue", "Orders", "Average Order Value"}
	f.SetSheetRow(sheet, "A1", &header)
	for i, b := range data.MonthlyTrends {
		row := []interface{}{b.Month, b.Year, pesos(b.Revenue), b.OrderCount, pesos(b.AverageOrderValue)}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &row)
	}
}

func (e *ExcelExporter) writeExpenseSheet(f *excelize.File, data *report.ReportsData) {
	const sheet = "Expenses"
	f.NewSheet(sheet)
	header := []interface{}{"Category", "Amount"}
	f.SetSheetRow(sheet, "A1", &header)
	for i, b := range data.ExpenseBreakdown {
		row := []interface{}{b.Category, pesos(b.Amount)}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &row)
	}
}
