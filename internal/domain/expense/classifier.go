package expense

import "github.com/shopspring/decimal"

// Classify partitions expenses into general entries and payroll entries.
// The split is an exact match on the reserved category name; anything
// else, including blank categories, counts as general.
func Classify(expenses []Expense) (general, payroll []Expense) {
	general = make([]Expense, 0, len(expenses))
	payroll = make([]Expense, 0)
	for _, e := range expenses {
		if e.IsPayroll() {
			payroll = append(payroll, e)
		} else {
			general = append(general, e)
		}
	}
	return general, payroll
}

// SumAmounts returns the total amount across the given expenses
func SumAmounts(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
