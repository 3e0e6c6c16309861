package order

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laundrify/backend/internal/domain/order"
	"github.com/laundrify/backend/internal/domain/shared"
)

// fakeOrderRepo is an in-memory order.Repository for service tests
type fakeOrderRepo struct {
	orders  map[uuid.UUID]*order.Order
	nextSeq int
	saveErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*order.Order)}
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) FindByOrderNumber(_ context.Context, orderNumber string) (*order.Order, error) {
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeOrderRepo) FindAll(_ context.Context, filter shared.Filter) ([]order.Order, error) {
	out := make([]order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if status, ok := filter.Filters["status"]; ok && o.Status.String() != status {
			continue
		}
		if ps, ok := filter.Filters["payment_status"]; ok && o.PaymentStatus.String() != ps {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) FindByCreatedRange(_ context.Context, start, end time.Time) ([]order.Order, error) {
	out := make([]order.Order, 0)
	for _, o := range r.orders {
		if !o.CreatedAt.Before(start) && !o.CreatedAt.After(end) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Save(_ context.Context, o *order.Order) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	orders, _ := r.FindAll(ctx, filter)
	return int64(len(orders)), nil
}

func (r *fakeOrderRepo) GenerateOrderNumber(_ context.Context) (string, error) {
	r.nextSeq++
	return fmt.Sprintf("ORD-%04d", r.nextSeq), nil
}

// fakeRecorder captures audit calls
type fakeRecorder struct {
	actions []string
}

func (r *fakeRecorder) Record(_ context.Context, action, _, _, _, _ string) {
	r.actions = append(r.actions, action)
}

func newTestService() (*Service, *fakeOrderRepo, *fakeRecorder) {
	repo := newFakeOrderRepo()
	rec := &fakeRecorder{}
	return NewService(repo, rec), repo, rec
}

func validCreateRequest() CreateOrderRequest {
	return CreateOrderRequest{
		CustomerName:  "Maria Santos",
		CustomerPhone: "+63 917 123 4567",
		ServiceType:   "Wash & Fold",
		PaymentMethod: "cash",
		Loads: []LoadInput{
			{WeightKg: decimal.NewFromFloat(5.5)},
			{WeightKg: decimal.NewFromFloat(6.0)},
		},
		UnitPrice: decimal.NewFromInt(150),
	}
}

func TestService_Create(t *testing.T) {
	svc, repo, rec := newTestService()

	resp, err := svc.Create(context.Background(), validCreateRequest(), "owner@laundrify.ph")
	require.NoError(t, err)

	assert.Equal(t, "ORD-0001", resp.OrderNumber)
	assert.Equal(t, 2, resp.LoadCount)
	assert.True(t, decimal.NewFromInt(300).Equal(resp.TotalAmount))
	assert.Equal(t, "PHP", resp.Currency)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "unpaid", resp.PaymentStatus)
	assert.Len(t, repo.orders, 1)
	assert.Equal(t, []string{"order_created"}, rec.actions)
}

func TestService_Create_ValidationFailureWritesNothing(t *testing.T) {
	svc, repo, rec := newTestService()

	req := validCreateRequest()
	req.Loads = []LoadInput{{WeightKg: decimal.NewFromInt(9)}}

	_, err := svc.Create(context.Background(), req, "owner@laundrify.ph")
	require.Error(t, err)
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "INVALID_LOAD_WEIGHT", de.Code)
	assert.Empty(t, repo.orders)
	assert.Empty(t, rec.actions)
}

func TestService_Update_Reprices(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.Create(context.Background(), validCreateRequest(), "owner@laundrify.ph")
	require.NoError(t, err)

	req := UpdateOrderRequest{
		CustomerName:  "Maria Santos",
		CustomerPhone: "09171234567",
		ServiceType:   "Dry Clean",
		PaymentMethod: "gcash",
		Loads:         []LoadInput{{WeightKg: decimal.NewFromInt(4)}},
		UnitPrice:     decimal.NewFromInt(200),
		AddOns: []AddOnInput{
			{AddOnID: uuid.New(), Name: "Press", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
		},
	}
	resp, err := svc.Update(context.Background(), created.ID, req, "owner@laundrify.ph")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.LoadCount)
	assert.True(t, decimal.NewFromInt(200).Equal(resp.SubtotalAmount))
	assert.True(t, decimal.NewFromInt(20).Equal(resp.AddOnsAmount))
	assert.True(t, decimal.NewFromInt(220).Equal(resp.TotalAmount))
	assert.Equal(t, "Dry Clean", resp.ServiceType)
}

func TestService_Transition_CompletedUnpaidRejected(t *testing.T) {
	svc, _, rec := newTestService()
	created, err := svc.Create(context.Background(), validCreateRequest(), "owner@laundrify.ph")
	require.NoError(t, err)
	rec.actions = nil

	status := "completed"
	_, err = svc.Transition(context.Background(), created.ID, TransitionRequest{Status: &status}, "owner@laundrify.ph")
	require.Error(t, err)
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "COMPLETED_UNPAID", de.Code)
	assert.Empty(t, rec.actions)
}

func TestService_Transition_PaymentAppliedFirst(t *testing.T) {
	svc, _, rec := newTestService()
	created, err := svc.Create(context.Background(), validCreateRequest(), "owner@laundrify.ph")
	require.NoError(t, err)

	status := "completed"
	payment := "paid"
	resp, err := svc.Transition(context.Background(), created.ID,
		TransitionRequest{Status: &status, PaymentStatus: &payment}, "owner@laundrify.ph")
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Contains(t, rec.actions, "order_status_changed")
}

func TestService_Transition_UnknownEnumRejected(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.Create(context.Background(), validCreateRequest(), "owner@laundrify.ph")
	require.NoError(t, err)

	bad := "delivered"
	_, err = svc.Transition(context.Background(), created.ID, TransitionRequest{Status: &bad}, "owner@laundrify.ph")
	require.Error(t, err)
	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "INVALID_STATUS", de.Code)
}

func TestService_Transition_NothingRequested(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Transition(context.Background(), uuid.New(), TransitionRequest{}, "owner@laundrify.ph")
	require.Error(t, err)
}

func TestService_List_FiltersByStatus(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, validCreateRequest(), "owner@laundrify.ph")
	require.NoError(t, err)
	_, err = svc.Create(ctx, validCreateRequest(), "owner@laundrify.ph")
	require.NoError(t, err)

	status := "processing"
	_, err = svc.Transition(ctx, first.ID, TransitionRequest{Status: &status}, "owner@laundrify.ph")
	require.NoError(t, err)

	page, err := svc.List(ctx, ListFilter{Status: "processing"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, first.ID, page.Items[0].ID)
	assert.Equal(t, int64(1), page.Total)

	_, err = svc.List(ctx, ListFilter{Status: "bogus"})
	require.Error(t, err)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, repo, rec := newTestService()
	created, err := svc.Create(context.Background(), validCreateRequest(), "owner@laundrify.ph")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID, "owner@laundrify.ph"))
	assert.Empty(t, repo.orders)
	assert.Contains(t, rec.actions, "order_deleted")
}
