package order

import (
	"github.com/shopspring/decimal"

	"github.com/laundrify/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderCreated              = "OrderCreated"
	EventTypeOrderRepriced             = "OrderRepriced"
	EventTypeOrderStatusChanged        = "OrderStatusChanged"
	EventTypeOrderPaymentStatusChanged = "OrderPaymentStatusChanged"
)

// OrderCreatedEvent is raised when a new order is created
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber  string          `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	LoadCount    int             `json:"load_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(o *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, o.ID),
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		LoadCount:       o.LoadCount,
		TotalAmount:     o.TotalAmount,
	}
}

// EventType returns the event type name
func (e *OrderCreatedEvent) EventType() string {
	return EventTypeOrderCreated
}

// OrderRepricedEvent is raised when an order's intake data is edited and
// its amounts are recomputed
type OrderRepricedEvent struct {
	shared.BaseDomainEvent
	OrderNumber    string          `json:"order_number"`
	LoadCount      int             `json:"load_count"`
	SubtotalAmount decimal.Decimal `json:"subtotal_amount"`
	AddOnsAmount   decimal.Decimal `json:"add_ons_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// NewOrderRepricedEvent creates a new OrderRepricedEvent
func NewOrderRepricedEvent(o *Order) *OrderRepricedEvent {
	return &OrderRepricedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderRepriced, AggregateTypeOrder, o.ID),
		OrderNumber:     o.OrderNumber,
		LoadCount:       o.LoadCount,
		SubtotalAmount:  o.SubtotalAmount,
		AddOnsAmount:    o.AddOnsAmount,
		TotalAmount:     o.TotalAmount,
	}
}

// EventType returns the event type name
func (e *OrderRepricedEvent) EventType() string {
	return EventTypeOrderRepriced
}

// OrderStatusChangedEvent is raised when the fulfillment status changes
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string      `json:"order_number"`
	FromStatus  OrderStatus `json:"from_status"`
	ToStatus    OrderStatus `json:"to_status"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(o *Order, from, to OrderStatus) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, AggregateTypeOrder, o.ID),
		OrderNumber:     o.OrderNumber,
		FromStatus:      from,
		ToStatus:        to,
	}
}

// EventType returns the event type name
func (e *OrderStatusChangedEvent) EventType() string {
	return EventTypeOrderStatusChanged
}

// OrderPaymentStatusChangedEvent is raised when the payment status changes
type OrderPaymentStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string        `json:"order_number"`
	FromStatus  PaymentStatus `json:"from_status"`
	ToStatus    PaymentStatus `json:"to_status"`
}

// NewOrderPaymentStatusChangedEvent creates a new OrderPaymentStatusChangedEvent
func NewOrderPaymentStatusChangedEvent(o *Order, from, to PaymentStatus) *OrderPaymentStatusChangedEvent {
	return &OrderPaymentStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPaymentStatusChanged, AggregateTypeOrder, o.ID),
		OrderNumber:     o.OrderNumber,
		FromStatus:      from,
		ToStatus:        to,
	}
}

// EventType returns the event type name
func (e *OrderPaymentStatusChangedEvent) EventType() string {
	return EventTypeOrderPaymentStatusChanged
}
