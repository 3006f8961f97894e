package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) DeleteByID(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type fixedIDGen struct{ id string }

func (g fixedIDGen) NewID() string { return g.id }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newOrderUsecase(r repo.OrderRepository) *OrderUsecase {
	return NewOrderUsecase(r,
		fixedIDGen{id: "order-1"},
		fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	)
}

func validInput() SubmitOrderInput {
	return SubmitOrderInput{
		TableNumber:  "7",
		CustomerName: "Amina",
		Type:         "qr",
		Items: []SubmitOrderItemInput{
			{MenuItemID: 1, Quantity: 2, Price: 100},
			{MenuItemID: 2, Quantity: 1, Price: 250},
		},
	}
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	he, ok := AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
}

// =====================
// Submit
// =====================

func TestOrderUsecase_Submit_Success(t *testing.T) {
	r := new(OrderRepoMock)
	uc := newOrderUsecase(r)

	r.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.ID == "order-1" &&
			o.Status == model.OrderStatusSentToKitchen &&
			o.Timestamp.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)) &&
			len(o.Items) == 2
	})).Return(model.Order{ID: "order-1"}, nil)

	out, err := uc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "order-1", out.OrderID)
	r.AssertExpectations(t)
}

func TestOrderUsecase_Submit_RejectsBlankCustomerName(t *testing.T) {
	r := new(OrderRepoMock)
	uc := newOrderUsecase(r)

	in := validInput()
	in.CustomerName = "   "

	_, err := uc.Submit(context.Background(), in)
	assertStatus(t, err, http.StatusBadRequest)
	r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_Submit_RejectsBlankTableNumber(t *testing.T) {
	uc := newOrderUsecase(new(OrderRepoMock))

	in := validInput()
	in.TableNumber = ""

	_, err := uc.Submit(context.Background(), in)
	assertStatus(t, err, http.StatusBadRequest)
}

func TestOrderUsecase_Submit_RejectsEmptyItems(t *testing.T) {
	uc := newOrderUsecase(new(OrderRepoMock))

	in := validInput()
	in.Items = nil

	_, err := uc.Submit(context.Background(), in)
	assertStatus(t, err, http.StatusBadRequest)
}

func TestOrderUsecase_Submit_RejectsZeroQuantity(t *testing.T) {
	uc := newOrderUsecase(new(OrderRepoMock))

	in := validInput()
	in.Items[0].Quantity = 0

	_, err := uc.Submit(context.Background(), in)
	assertStatus(t, err, http.StatusBadRequest)
}

func TestOrderUsecase_Submit_RejectsNegativePrice(t *testing.T) {
	r := new(OrderRepoMock)
	uc := newOrderUsecase(r)

	in := validInput()
	in.Items[1].Price = model.Price(-100)

	_, err := uc.Submit(context.Background(), in)
	assertStatus(t, err, http.StatusBadRequest)
	r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// =====================
// Advance
// =====================

func TestOrderUsecase_Advance_StepsForward(t *testing.T) {
	r := new(OrderRepoMock)
	uc := newOrderUsecase(r)

	r.On("FindByID", mock.Anything, "o1").
		Return(model.Order{ID: "o1", Status: model.OrderStatusSentToKitchen}, nil).Once()
	r.On("UpdateStatus", mock.Anything, "o1", model.OrderStatusInProgress).Return(nil).Once()

	out, err := uc.Advance(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusInProgress, out.Status)
	r.AssertExpectations(t)
}

func TestOrderUsecase_Advance_ServedIsNoOp(t *testing.T) {
	r := new(OrderRepoMock)
	uc := newOrderUsecase(r)

	r.On("FindByID", mock.Anything, "o1").
		Return(model.Order{ID: "o1", Status: model.OrderStatusServed}, nil).Once()

	out, err := uc.Advance(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusServed, out.Status)
	r.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_Advance_FullChain(t *testing.T) {
	r := new(OrderRepoMock)
	uc := newOrderUsecase(r)

	// sent_to_kitchen → in_progress → ready → served、以後は進まない
	statuses := []model.OrderStatus{
		model.OrderStatusSentToKitchen,
		model.OrderStatusInProgress,
		model.OrderStatusReady,
		model.OrderStatusServed,
	}
	expected := []model.OrderStatus{
		model.OrderStatusInProgress,
		model.OrderStatusReady,
		model.OrderStatusServed,
		model.OrderStatusServed,
	}

	for i, st := range statuses {
		r.On("FindByID", mock.Anything, "o1").
			Return(model.Order{ID: "o1", Status: st}, nil).Once()
		if next, ok := st.Next(); ok {
			r.On("UpdateStatus", mock.Anything, "o1", next).Return(nil).Once()
		}

		out, err := uc.Advance(context.Background(), "o1")
		require.NoError(t, err)
		assert.Equal(t, expected[i], out.Status)
	}
}

func TestOrderUsecase_Advance_NotFound(t *testing.T) {
	r := new(OrderRepoMock)
	uc := newOrderUsecase(r)

	r.On("FindByID", mock.Anything, "zzz").Return(model.Order{}, repo.ErrNotFound).Once()

	_, err := uc.Advance(context.Background(), "zzz")
	assertStatus(t, err, http.StatusNotFound)
}

// =====================
// Delete / List
// =====================

func TestOrderUsecase_Delete_NotFound(t *testing.T) {
	r := new(OrderRepoMock)
	uc := newOrderUsecase(r)

	r.On("DeleteByID", mock.Anything, "zzz").Return(repo.ErrNotFound).Once()

	err := uc.Delete(context.Background(), "zzz")
	assertStatus(t, err, http.StatusNotFound)
}

func TestOrderUsecase_List(t *testing.T) {
	r := new(OrderRepoMock)
	uc := newOrderUsecase(r)

	r.On("List", mock.Anything).Return([]model.Order{{ID: "a"}, {ID: "b"}}, nil).Once()

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
