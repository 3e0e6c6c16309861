package persistence

import "strings"

// Sort field whitelists per table. Anything outside the whitelist falls
// back to the default to keep user input out of the ORDER BY clause.
var (
	OrderSortFields = map[string]bool{
		"created_at":     true,
		"updated_at":     true,
		"order_number":   true,
		"customer_name":  true,
		"status":         true,
		"payment_status": true,
		"total_amount":   true,
	}

	ExpenseSortFields = map[string]bool{
		"created_at":  true,
		"updated_at":  true,
		"category":    true,
		"amount":      true,
		"incurred_on": true,
	}

	StaffSortFields = map[string]bool{
		"created_at": true,
		"name":       true,
		"daily_rate": true,
	}

	AuditLogSortFields = map[string]bool{
		"created_at": true,
		"action":     true,
	}
)

// ValidateSortField returns the field if whitelisted, otherwise the fallback
func ValidateSortField(field string, allowed map[string]bool, fallback string) string {
	if allowed[field] {
		return field
	}
	return fallback
}

// ValidateSortOrder normalizes the sort direction to ASC or DESC
func ValidateSortOrder(dir string) string {
	if strings.EqualFold(dir, "asc") {
		return "ASC"
	}
	return "DESC"
}
