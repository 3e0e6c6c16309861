package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laundrify/backend/internal/domain/order"
)

// LoadInput is one weighed load from the intake form
type LoadInput struct {
	WeightKg decimal.Decimal `json:"weight_kg" binding:"required"`
}

// AddOnInput is one add-on selection from the intake form
type AddOnInput struct {
	AddOnID   uuid.UUID       `json:"add_on_id"`
	Name      string          `json:"name" binding:"required,min=1,max=100"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	CustomerName  string          `json:"customer_name" binding:"required"`
	CustomerPhone string          `json:"customer_phone" binding:"required"`
	ServiceType   string          `json:"service_type"`
	PaymentMethod string          `json:"payment_method"`
	Loads         []LoadInput     `json:"loads" binding:"required,min=1"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	AddOns        []AddOnInput    `json:"add_ons"`
	PickupDate    *time.Time      `json:"pickup_date"`
	DeliveryDate  *time.Time      `json:"delivery_date"`
	Remarks       string          `json:"remarks"`
}

// UpdateOrderRequest represents a request to edit an order's intake data.
// The full pricing pipeline re-runs against the submitted fields.
type UpdateOrderRequest struct {
	CustomerName  string          `json:"customer_name" binding:"required"`
	CustomerPhone string          `json:"customer_phone" binding:"required"`
	ServiceType   string          `json:"service_type"`
	PaymentMethod string          `json:"payment_method"`
	Loads         []LoadInput     `json:"loads" binding:"required,min=1"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	AddOns        []AddOnInput    `json:"add_ons"`
	PickupDate    *time.Time      `json:"pickup_date"`
	DeliveryDate  *time.Time      `json:"delivery_date"`
	Remarks       string          `json:"remarks"`
}

// TransitionRequest represents a status and/or payment status change.
// Nil fields are left unchanged.
type TransitionRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

// ListFilter represents filter options for the order list
type ListFilter struct {
	Status        string `form:"status"`
	PaymentStatus string `form:"payment_status"`
	Search        string `form:"search"`
	Page          int    `form:"page"`
	PageSize      int    `form:"page_size"`
}

// LoadDetailResponse is one load in an order response
type LoadDetailResponse struct {
	ID       uuid.UUID       `json:"id"`
	WeightKg decimal.Decimal `json:"weight_kg"`
}

// AddOnResponse is one add-on line in an order response
type AddOnResponse struct {
	ID         uuid.UUID       `json:"id"`
	AddOnID    uuid.UUID       `json:"add_on_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID             uuid.UUID            `json:"id"`
	OrderNumber    string               `json:"order_number"`
	CustomerName   string               `json:"customer_name"`
	CustomerPhone  string               `json:"customer_phone"`
	ServiceType    string               `json:"service_type"`
	Status         string               `json:"status"`
	PaymentStatus  string               `json:"payment_status"`
	PaymentMethod  string               `json:"payment_method"`
	LoadDetails    []LoadDetailResponse `json:"load_details"`
	AddOns         []AddOnResponse      `json:"add_ons"`
	LoadCount      int                  `json:"load_count"`
	TotalWeightKg  decimal.Decimal      `json:"total_weight_kg"`
	UnitPrice      decimal.Decimal      `json:"unit_price"`
	SubtotalAmount decimal.Decimal      `json:"subtotal_amount"`
	AddOnsAmount   decimal.Decimal      `json:"add_ons_amount"`
	TotalAmount    decimal.Decimal      `json:"total_amount"`
	Currency       string               `json:"currency"`
	AddOnsSummary  string               `json:"add_ons_summary"`
	AddOnsQuantity int                  `json:"add_ons_quantity"`
	PickupDate     *time.Time           `json:"pickup_date,omitempty"`
	DeliveryDate   *time.Time           `json:"delivery_date,omitempty"`
	Remarks        string               `json:"remarks,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// ToOrderResponse converts a domain order to its API representation
func ToOrderResponse(o *order.Order) OrderResponse {
	loads := make([]LoadDetailResponse, len(o.LoadDetails))
	for i, l := range o.LoadDetails {
		loads[i] = LoadDetailResponse{ID: l.ID, WeightKg: l.WeightKg}
	}
	addOns := make([]AddOnResponse, len(o.AddOns))
	for i, a := range o.AddOns {
		addOns[i] = AddOnResponse{
			ID:         a.ID,
			AddOnID:    a.AddOnID,
			Name:       a.Name,
			Quantity:   a.Quantity,
			UnitPrice:  a.UnitPrice,
			TotalPrice: a.TotalPrice,
		}
	}
	return OrderResponse{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerName:   o.CustomerName,
		CustomerPhone:  o.CustomerPhone,
		ServiceType:    o.ServiceType,
		Status:         o.Status.String(),
		PaymentStatus:  o.PaymentStatus.String(),
		PaymentMethod:  o.PaymentMethod.String(),
		LoadDetails:    loads,
		AddOns:         addOns,
		LoadCount:      o.LoadCount,
		TotalWeightKg:  o.TotalWeightKg,
		UnitPrice:      o.UnitPrice,
		SubtotalAmount: o.SubtotalAmount,
		AddOnsAmount:   o.AddOnsAmount,
		TotalAmount:    o.TotalAmount,
		Currency:       string(o.GetTotalMoney().Currency()),
		AddOnsSummary:  o.AddOnsSummary(),
		AddOnsQuantity: o.AddOnsQuantity(),
		PickupDate:     o.PickupDate,
		DeliveryDate:   o.DeliveryDate,
		Remarks:        o.Remarks,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func toLoadInputs(loads []LoadInput) []order.LoadInput {
	out := make([]order.LoadInput, len(loads))
	for i, l := range loads {
		out[i] = order.LoadInput{WeightKg: l.WeightKg}
	}
	return out
}

func toAddOnInputs(addOns []AddOnInput) []order.AddOnInput {
	out := make([]order.AddOnInput, len(addOns))
	for i, a := range addOns {
		out[i] = order.AddOnInput{
			AddOnID:   a.AddOnID,
			Name:      a.Name,
			Quantity:  a.Quantity,
			UnitPrice: a.UnitPrice,
		}
	}
	return out
}
