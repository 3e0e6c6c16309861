package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laundrify/backend/internal/domain/order"
	"github.com/laundrify/backend/internal/domain/shared"
)

// loadDetailJSON is the persisted shape of one load entry
type loadDetailJSON struct {
	ID       uuid.UUID       `json:"id"`
	WeightKg decimal.Decimal `json:"weight_kg"`
}

// orderAddOnJSON is the persisted shape of one add-on line
type orderAddOnJSON struct {
	ID         uuid.UUID       `json:"id"`
	AddOnID    uuid.UUID       `json:"add_on_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderModel maps the Order aggregate to the orders table.
// Loads and add-ons are embedded as jsonb; they have no life outside
// their order and are always read and written together with it.
type OrderModel struct {
	BaseModel
	OrderNumber    string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerName   string          `gorm:"type:varchar(100);not null"`
	CustomerPhone  string          `gorm:"type:varchar(20);not null"`
	ServiceType    string          `gorm:"type:varchar(50)"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	PaymentStatus  string          `gorm:"type:varchar(20);not null;index"`
	PaymentMethod  string          `gorm:"type:varchar(20)"`
	LoadDetails    json.RawMessage `gorm:"type:jsonb"`
	AddOns         json.RawMessage `gorm:"type:jsonb"`
	LoadCount      int             `gorm:"not null"`
	TotalWeightKg  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SubtotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AddOnsAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PickupDate     *time.Time
	DeliveryDate   *time.Time
	Remarks        string `gorm:"type:varchar(500)"`
}

// TableName specifies the table name
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts OrderModel to a domain Order
func (m *OrderModel) ToDomain() (*order.Order, error) {
	var loadJSON []loadDetailJSON
	if len(m.LoadDetails) > 0 {
		if err := json.Unmarshal(m.LoadDetails, &loadJSON); err != nil {
			return nil, fmt.Errorf("decode load details for order %s: %w", m.ID, err)
		}
	}
	loads := make([]order.LoadDetail, len(loadJSON))
	for i, l := range loadJSON {
		loads[i] = order.LoadDetail{ID: l.ID, WeightKg: l.WeightKg}
	}

	var addOnJSON []orderAddOnJSON
	if len(m.AddOns) > 0 {
		if err := json.Unmarshal(m.AddOns, &addOnJSON); err != nil {
			return nil, fmt.Errorf("decode add-ons for order %s: %w", m.ID, err)
		}
	}
	addOns := make([]order.OrderAddOn, len(addOnJSON))
	for i, a := range addOnJSON {
		addOns[i] = order.OrderAddOn{
			ID:         a.ID,
			AddOnID:    a.AddOnID,
			Name:       a.Name,
			Quantity:   a.Quantity,
			UnitPrice:  a.UnitPrice,
			TotalPrice: a.TotalPrice,
		}
	}

	o := &order.Order{
		OrderNumber:    m.OrderNumber,
		CustomerName:   m.CustomerName,
		CustomerPhone:  m.CustomerPhone,
		ServiceType:    m.ServiceType,
		Status:         order.OrderStatus(m.Status),
		PaymentStatus:  order.PaymentStatus(m.PaymentStatus),
		PaymentMethod:  order.PaymentMethod(m.PaymentMethod),
		LoadDetails:    loads,
		AddOns:         addOns,
		LoadCount:      m.LoadCount,
		TotalWeightKg:  m.TotalWeightKg,
		UnitPrice:      m.UnitPrice,
		SubtotalAmount: m.SubtotalAmount,
		AddOnsAmount:   m.AddOnsAmount,
		TotalAmount:    m.TotalAmount,
		PickupDate:     m.PickupDate,
		DeliveryDate:   m.DeliveryDate,
		Remarks:        m.Remarks,
	}
	o.BaseEntity = shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
	return o, nil
}

// FromDomain populates OrderModel from a domain Order
func (m *OrderModel) FromDomain(o *order.Order) error {
	loadJSON := make([]loadDetailJSON, len(o.LoadDetails))
	for i, l := range o.LoadDetails {
		loadJSON[i] = loadDetailJSON{ID: l.ID, WeightKg: l.WeightKg}
	}
	loads, err := json.Marshal(loadJSON)
	if err != nil {
		return fmt.Errorf("encode load details: %w", err)
	}

	addOnJSON := make([]orderAddOnJSON, len(o.AddOns))
	for i, a := range o.AddOns {
		addOnJSON[i] = orderAddOnJSON{
			ID:         a.ID,
			AddOnID:    a.AddOnID,
			Name:       a.Name,
			Quantity:   a.Quantity,
			UnitPrice:  a.UnitPrice,
			TotalPrice: a.TotalPrice,
		}
	}
	addOns, err := json.Marshal(addOnJSON)
	if err != nil {
		return fmt.Errorf("encode add-ons: %w", err)
	}

	m.FromDomainBaseEntity(o.BaseEntity)
	m.OrderNumber = o.OrderNumber
	m.CustomerName = o.CustomerName
	m.CustomerPhone = o.CustomerPhone
	m.ServiceType = o.ServiceType
	m.Status = o.Status.String()
	m.PaymentStatus = o.PaymentStatus.String()
	m.PaymentMethod = o.PaymentMethod.String()
	m.LoadDetails = loads
	m.AddOns = addOns
	m.LoadCount = o.LoadCount
	m.TotalWeightKg = o.TotalWeightKg
	m.UnitPrice = o.UnitPrice
	m.SubtotalAmount = o.SubtotalAmount
	m.AddOnsAmount = o.AddOnsAmount
	m.TotalAmount = o.TotalAmount
	m.PickupDate = o.PickupDate
	m.DeliveryDate = o.DeliveryDate
	m.Remarks = o.Remarks
	return nil
}
