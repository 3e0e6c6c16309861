package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/laundrify/backend/internal/domain/audit"
	"github.com/laundrify/backend/internal/domain/order"
	"github.com/laundrify/backend/internal/domain/shared"
)

// Service handles order intake, editing, and state transitions
type Service struct {
	orderRepo order.Repository
	recorder  audit.Recorder
}

// NewService creates a new order Service
func NewService(orderRepo order.Repository, recorder audit.Recorder) *Service {
	return &Service{
		orderRepo: orderRepo,
		recorder:  recorder,
	}
}

// Create prices and persists a new order. The order number is generated
// by the repository before the aggregate is built.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest, actorEmail string) (*OrderResponse, error) {
	orderNumber, err := s.orderRepo.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate order number: %w", err)
	}

	o, err := order.NewOrder(
		orderNumber,
		req.CustomerName,
		req.CustomerPhone,
		req.ServiceType,
		order.PaymentMethod(req.PaymentMethod),
		toLoadInputs(req.Loads),
		req.UnitPrice,
		toAddOnInputs(req.AddOns),
		req.Remarks,
	)
	if err != nil {
		return nil, err
	}

	if req.PickupDate != nil {
		o.SetPickupDate(req.PickupDate)
	}
	if req.DeliveryDate != nil {
		o.SetDeliveryDate(req.DeliveryDate)
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.recorder.Record(ctx, audit.ActionOrderCreated,
		fmt.Sprintf("Created order %s for %s", o.OrderNumber, o.CustomerName),
		"order", o.ID.String(), actorEmail)

	resp := ToOrderResponse(o)
	return &resp, nil
}

// Update re-runs the pricing pipeline on an existing order
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest, actorEmail string) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = o.Reprice(
		req.CustomerName,
		req.CustomerPhone,
		req.ServiceType,
		order.PaymentMethod(req.PaymentMethod),
		toLoadInputs(req.Loads),
		req.UnitPrice,
		toAddOnInputs(req.AddOns),
		req.Remarks,
	)
	if err != nil {
		return nil, err
	}

	o.SetPickupDate(req.PickupDate)
	o.SetDeliveryDate(req.DeliveryDate)

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.recorder.Record(ctx, audit.ActionOrderUpdated,
		fmt.Sprintf("Updated order %s", o.OrderNumber),
		"order", o.ID.String(), actorEmail)

	resp := ToOrderResponse(o)
	return &resp, nil
}

// Transition applies status and/or payment status changes. The payment
// status is applied before the fulfillment status so that completing and
// paying in one request passes the completion guard.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, req TransitionRequest, actorEmail string) (*OrderResponse, error) {
	if req.Status == nil && req.PaymentStatus == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "No status change requested")
	}

	var status *order.OrderStatus
	if req.Status != nil {
		v := order.OrderStatus(*req.Status)
		if !v.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS",
				fmt.Sprintf("Invalid order status: %s", *req.Status))
		}
		status = &v
	}
	var paymentStatus *order.PaymentStatus
	if req.PaymentStatus != nil {
		v := order.PaymentStatus(*req.PaymentStatus)
		if !v.IsValid() {
			return nil, shared.NewDomainError("INVALID_PAYMENT_STATUS",
				fmt.Sprintf("Invalid payment status: %s", *req.PaymentStatus))
		}
		paymentStatus = &v
	}

	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.ApplyTransition(status, paymentStatus); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.recorder.Record(ctx, audit.ActionStatusChanged,
		fmt.Sprintf("Order %s is now %s / %s", o.OrderNumber, o.Status, o.PaymentStatus),
		"order", o.ID.String(), actorEmail)

	resp := ToOrderResponse(o)
	return &resp, nil
}

// GetByID retrieves an order by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// List retrieves orders with filtering and pagination
func (s *Service) List(ctx context.Context, filter ListFilter) (*shared.Paginated[OrderResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search
	if filter.Status != "" {
		if !order.OrderStatus(filter.Status).IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS",
				fmt.Sprintf("Invalid order status: %s", filter.Status))
		}
		f.Filters["status"] = filter.Status
	}
	if filter.PaymentStatus != "" {
		if !order.PaymentStatus(filter.PaymentStatus).IsValid() {
			return nil, shared.NewDomainError("INVALID_PAYMENT_STATUS",
				fmt.Sprintf("Invalid payment status: %s", filter.PaymentStatus))
		}
		f.Filters["payment_status"] = filter.PaymentStatus
	}

	orders, err := s.orderRepo.FindAll(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	total, err := s.orderRepo.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	items := make([]OrderResponse, len(orders))
	for i := range orders {
		items[i] = ToOrderResponse(&orders[i])
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// Delete removes an order
func (s *Service) Delete(ctx context.Context, id uuid.UUID, actorEmail string) error {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	s.recorder.Record(ctx, audit.ActionOrderDeleted,
		fmt.Sprintf("Deleted order %s", o.OrderNumber),
		"order", id.String(), actorEmail)
	return nil
}
