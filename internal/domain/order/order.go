package order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laundrify/backend/internal/domain/shared"
	"github.com/laundrify/backend/internal/domain/shared/valueobject"
)

// OrderStatus represents the fulfillment status of a laundry order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusUnpaid, PaymentStatusPartial:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// PaymentMethod represents how the customer pays
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodGCash        PaymentMethod = "gcash"
	PaymentMethodPayMaya      PaymentMethod = "paymaya"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodGCash, PaymentMethodPayMaya, PaymentMethodBankTransfer, PaymentMethodCreditCard:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

const (
	maxCustomerNameLength = 100
	maxRemarksLength      = 500

	// MaxLoadWeightKg is the per-load weight cap. A single machine load
	// cannot exceed 8 kg.
	MaxLoadWeightKg = 8.0

	// MaxLoadCount is the per-order load cap. Pricing is per-load, and the
	// shop floor holds at most this many loads for one ticket.
	MaxLoadCount = 8.3
)

var (
	// phonePattern accepts loose international formats: digits with
	// optional leading + and common separators, 7 to 15 characters.
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{7,15}$`)

	// markupPatterns flag markup/script-like content in free-text fields.
	markupPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<[^>]*>`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)on\w+\s*=`),
	}
)

func containsMarkup(s string) bool {
	for _, p := range markupPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// LoadDetail represents one physical machine load of an order
type LoadDetail struct {
	ID       uuid.UUID       `json:"id"`
	WeightKg decimal.Decimal `json:"weight_kg"`
}

// NewLoadDetail creates a load detail after range-checking the weight.
// index identifies the load position in the intake form (0-based) and is
// used to produce a human-readable failure message.
func NewLoadDetail(index int, weightKg decimal.Decimal) (*LoadDetail, error) {
	if weightKg.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_LOAD_WEIGHT",
			fmt.Sprintf("Load %d: weight must be greater than 0 kg", index+1))
	}
	if weightKg.GreaterThan(decimal.NewFromFloat(MaxLoadWeightKg)) {
		return nil, shared.NewDomainError("INVALID_LOAD_WEIGHT",
			fmt.Sprintf("Load %d: weight cannot exceed %v kg", index+1, MaxLoadWeightKg))
	}
	return &LoadDetail{
		ID:       uuid.New(),
		WeightKg: weightKg,
	}, nil
}

// OrderAddOn represents an extra service attached to an order
type OrderAddOn struct {
	ID         uuid.UUID       `json:"id"`
	AddOnID    uuid.UUID       `json:"add_on_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// NewOrderAddOn creates an add-on line with its derived line total
func NewOrderAddOn(addOnID uuid.UUID, name string, quantity int, unitPrice decimal.Decimal) (*OrderAddOn, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ADD_ON", "Add-on name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_ADD_ON", "Add-on quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_ADD_ON", "Add-on unit price cannot be negative")
	}
	return &OrderAddOn{
		ID:         uuid.New(),
		AddOnID:    addOnID,
		Name:       name,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Order represents a laundry order aggregate root.
// Loads are priced per-load (not per-kg): subtotal = loadCount * unitPrice.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber    string
	CustomerName   string
	CustomerPhone  string
	ServiceType    string
	Status         OrderStatus
	PaymentStatus  PaymentStatus
	PaymentMethod  PaymentMethod
	LoadDetails    []LoadDetail
	AddOns         []OrderAddOn
	LoadCount      int
	TotalWeightKg  decimal.Decimal
	UnitPrice      decimal.Decimal
	SubtotalAmount decimal.Decimal
	AddOnsAmount   decimal.Decimal
	TotalAmount    decimal.Decimal
	PickupDate     *time.Time
	DeliveryDate   *time.Time
	Remarks        string
}

// LoadInput is a raw load entry from intake (weight in kilograms)
type LoadInput struct {
	WeightKg decimal.Decimal
}

// AddOnInput is a raw add-on selection from intake
type AddOnInput struct {
	AddOnID   uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// NewOrder creates and prices a new laundry order. Validation runs in a
// fixed sequence so the first offending field wins: customer name, phone,
// remarks, unit price, load weights, load count. The order number comes
// from the repository, not from here.
func NewOrder(orderNumber, customerName, customerPhone, serviceType string,
	paymentMethod PaymentMethod, loads []LoadInput, unitPrice decimal.Decimal,
	addOns []AddOnInput, remarks string) (*Order, error) {

	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		Status:            OrderStatusPending,
		PaymentStatus:     PaymentStatusUnpaid,
	}

	if err := o.applyIntake(customerName, customerPhone, serviceType, paymentMethod, loads, unitPrice, addOns, remarks); err != nil {
		return nil, err
	}

	o.AddDomainEvent(NewOrderCreatedEvent(o))
	return o, nil
}

// Reprice re-runs the full validation and pricing pipeline against new
// intake data, keeping identity, status, and payment state untouched.
func (o *Order) Reprice(customerName, customerPhone, serviceType string,
	paymentMethod PaymentMethod, loads []LoadInput, unitPrice decimal.Decimal,
	addOns []AddOnInput, remarks string) error {

	if err := o.applyIntake(customerName, customerPhone, serviceType, paymentMethod, loads, unitPrice, addOns, remarks); err != nil {
		return err
	}
	o.UpdatedAt = time.Now()
	o.AddDomainEvent(NewOrderRepricedEvent(o))
	return nil
}

func (o *Order) applyIntake(customerName, customerPhone, serviceType string,
	paymentMethod PaymentMethod, loads []LoadInput, unitPrice decimal.Decimal,
	addOns []AddOnInput, remarks string) error {

	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name is required")
	}
	if len(customerName) > maxCustomerNameLength {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME",
			fmt.Sprintf("Customer name cannot exceed %d characters", maxCustomerNameLength))
	}
	if containsMarkup(customerName) {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name contains invalid characters")
	}

	customerPhone = strings.TrimSpace(customerPhone)
	if customerPhone == "" {
		return shared.NewDomainError("INVALID_PHONE", "Customer phone is required")
	}
	if !phonePattern.MatchString(customerPhone) {
		return shared.NewDomainError("INVALID_PHONE", "Customer phone must be a valid phone number")
	}

	if remarks != "" {
		if len(remarks) > maxRemarksLength {
			return shared.NewDomainError("INVALID_REMARKS",
				fmt.Sprintf("Remarks cannot exceed %d characters", maxRemarksLength))
		}
		if containsMarkup(remarks) {
			return shared.NewDomainError("INVALID_REMARKS", "Remarks contain invalid characters")
		}
	}

	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
	}

	if paymentMethod != "" && !paymentMethod.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD",
			fmt.Sprintf("Invalid payment method: %s", paymentMethod))
	}

	details := make([]LoadDetail, 0, len(loads))
	totalWeight := decimal.Zero
	for i, l := range loads {
		d, err := NewLoadDetail(i, l.WeightKg)
		if err != nil {
			return err
		}
		details = append(details, *d)
		totalWeight = totalWeight.Add(l.WeightKg)
	}

	loadCount := len(details)
	if loadCount == 0 {
		return shared.NewDomainError("INVALID_LOAD_COUNT", "At least one load is required")
	}
	if decimal.NewFromInt(int64(loadCount)).GreaterThan(decimal.NewFromFloat(MaxLoadCount)) {
		return shared.NewDomainError("INVALID_LOAD_COUNT",
			fmt.Sprintf("Load count cannot exceed %v", MaxLoadCount))
	}

	addOnLines := make([]OrderAddOn, 0, len(addOns))
	addOnsAmount := decimal.Zero
	for _, a := range addOns {
		line, err := NewOrderAddOn(a.AddOnID, a.Name, a.Quantity, a.UnitPrice)
		if err != nil {
			return err
		}
		addOnLines = append(addOnLines, *line)
		addOnsAmount = addOnsAmount.Add(line.TotalPrice)
	}

	subtotal := decimal.NewFromInt(int64(loadCount)).Mul(unitPrice).Round(2)

	o.CustomerName = customerName
	o.CustomerPhone = customerPhone
	o.ServiceType = strings.TrimSpace(serviceType)
	o.PaymentMethod = paymentMethod
	o.LoadDetails = details
	o.AddOns = addOnLines
	o.LoadCount = loadCount
	o.TotalWeightKg = totalWeight.Round(2)
	o.UnitPrice = unitPrice
	o.SubtotalAmount = subtotal
	o.AddOnsAmount = addOnsAmount
	o.TotalAmount = subtotal.Add(addOnsAmount)
	o.Remarks = remarks

	return nil
}

// ChangeStatus transitions the order to a new fulfillment status.
// Any status may follow any other, except that an order cannot be
// completed while its payment status is unpaid.
func (o *Order) ChangeStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS",
			fmt.Sprintf("Invalid order status: %s", target))
	}
	if target == OrderStatusCompleted && o.PaymentStatus == PaymentStatusUnpaid {
		return shared.NewDomainError("COMPLETED_UNPAID",
			"Cannot mark order as completed while payment status is unpaid")
	}

	from := o.Status
	o.Status = target
	o.UpdatedAt = time.Now()
	o.AddDomainEvent(NewOrderStatusChangedEvent(o, from, target))
	return nil
}

// ChangePaymentStatus transitions the order's payment status
func (o *Order) ChangePaymentStatus(target PaymentStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_STATUS",
			fmt.Sprintf("Invalid payment status: %s", target))
	}

	from := o.PaymentStatus
	o.PaymentStatus = target
	o.UpdatedAt = time.Now()
	o.AddDomainEvent(NewOrderPaymentStatusChangedEvent(o, from, target))
	return nil
}

// ApplyTransition applies status and/or payment status changes as one
// operation. The payment status is applied first so the completion guard
// is evaluated against the resulting payment state, not the prior one.
// Nil pointers mean "leave unchanged".
func (o *Order) ApplyTransition(status *OrderStatus, paymentStatus *PaymentStatus) error {
	if paymentStatus != nil {
		if err := o.ChangePaymentStatus(*paymentStatus); err != nil {
			return err
		}
	}
	if status != nil {
		if err := o.ChangeStatus(*status); err != nil {
			return err
		}
	}
	return nil
}

// SetPickupDate sets the scheduled pickup date
func (o *Order) SetPickupDate(t *time.Time) {
	o.PickupDate = t
	o.UpdatedAt = time.Now()
}

// SetDeliveryDate sets the scheduled delivery date
func (o *Order) SetDeliveryDate(t *time.Time) {
	o.DeliveryDate = t
	o.UpdatedAt = time.Now()
}

// AddOnsSummary returns a display string describing the order's add-ons,
// e.g. "Fabric Softener x2, Bleach x1". Empty when there are none.
func (o *Order) AddOnsSummary() string {
	if len(o.AddOns) == 0 {
		return ""
	}
	parts := make([]string, 0, len(o.AddOns))
	for _, a := range o.AddOns {
		parts = append(parts, fmt.Sprintf("%s x%d", a.Name, a.Quantity))
	}
	return strings.Join(parts, ", ")
}

// AddOnsQuantity returns the total quantity across all add-on lines
func (o *Order) AddOnsQuantity() int {
	total := 0
	for _, a := range o.AddOns {
		total += a.Quantity
	}
	return total
}

// GetTotalMoney returns the order total as a Money value object
func (o *Order) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyPHP(o.TotalAmount)
}
