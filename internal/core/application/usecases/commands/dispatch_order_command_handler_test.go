package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/deliverer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDispatchOrderRepository struct{ mock.Mock }

func (m *MockDispatchOrderRepository) Add(ctx context.Context, o *cart.CustomerOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockDispatchOrderRepository) Update(ctx context.Context, o *cart.CustomerOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockDispatchOrderRepository) RemoveByID(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDispatchOrderRepository) Get(ctx context.Context, id kernel.UUID) (*cart.CustomerOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CustomerOrder), args.Error(1)
}

func (m *MockDispatchOrderRepository) GetOpenByUser(ctx context.Context, userID kernel.UUID) (*cart.CustomerOrder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CustomerOrder), args.Error(1)
}

func (m *MockDispatchOrderRepository) GetAllPending(ctx context.Context) ([]*cart.CustomerOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.CustomerOrder), args.Error(1)
}

func (m *MockDispatchOrderRepository) GetFirstPending(ctx context.Context) (*cart.CustomerOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CustomerOrder), args.Error(1)
}

func (m *MockDispatchOrderRepository) GetInProcessByUser(ctx context.Context, userID kernel.UUID) ([]*cart.CustomerOrder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.CustomerOrder), args.Error(1)
}

func (m *MockDispatchOrderRepository) GetInProcessByDeliverer(ctx context.Context, delivererID kernel.UUID) ([]*cart.CustomerOrder, error) {
	args := m.Called(ctx, delivererID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.CustomerOrder), args.Error(1)
}

func (m *MockDispatchOrderRepository) GetArchiveByUser(ctx context.Context, userID kernel.UUID) ([]*cart.CustomerOrder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.CustomerOrder), args.Error(1)
}

func (m *MockDispatchOrderRepository) GetStaleOpen(ctx context.Context, cutoff time.Time) ([]*cart.CustomerOrder, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.CustomerOrder), args.Error(1)
}

func (m *MockDispatchOrderRepository) Claim(ctx context.Context, orderID, delivererID kernel.UUID) (*cart.CustomerOrder, error) {
	args := m.Called(ctx, orderID, delivererID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CustomerOrder), args.Error(1)
}

type MockDispatchDelivererRepository struct{ mock.Mock }

func (m *MockDispatchDelivererRepository) Add(ctx context.Context, d *deliverer.Deliverer) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDispatchDelivererRepository) Get(ctx context.Context, id kernel.UUID) (*deliverer.Deliverer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverer.Deliverer), args.Error(1)
}

func (m *MockDispatchDelivererRepository) GetAll(ctx context.Context) ([]*deliverer.Deliverer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*deliverer.Deliverer), args.Error(1)
}

type MockDispatchTransportRepository struct{ mock.Mock }

func (m *MockDispatchTransportRepository) Add(ctx context.Context, tr *deliverer.Transport) error {
	args := m.Called(ctx, tr)
	return args.Error(0)
}

func (m *MockDispatchTransportRepository) Get(ctx context.Context, id kernel.UUID) (*deliverer.Transport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverer.Transport), args.Error(1)
}

func (m *MockDispatchTransportRepository) GetAll(ctx context.Context) ([]*deliverer.Transport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*deliverer.Transport), args.Error(1)
}

func pendingTestOrder(t *testing.T) *cart.CustomerOrder {
	t.Helper()
	order, err := cart.NewCustomerOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, order.Confirm(kernel.NewUUID(), cart.PaymentCash, mustPrice(t, 30000)))
	return order
}

func testDeliverer(t *testing.T, name string, transportID kernel.UUID) *deliverer.Deliverer {
	t.Helper()
	d, err := deliverer.NewDeliverer(kernel.NewUUID(), name, "", transportID)
	require.NoError(t, err)
	return d
}

func testTransport(t *testing.T, name string, speed int) *deliverer.Transport {
	t.Helper()
	tr, err := deliverer.NewTransport(kernel.NewUUID(), name, speed)
	require.NoError(t, err)
	return tr
}

func TestDispatchOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewDispatchOrderCommand()

	testOrder := pendingTestOrder(t)
	bicycle := testTransport(t, "bicycle", 15)
	car := testTransport(t, "car", 60)
	slow := testDeliverer(t, "slow", bicycle.ID())
	fast := testDeliverer(t, "fast", car.ID())

	orders := new(MockDispatchOrderRepository)
	deliverers := new(MockDispatchDelivererRepository)
	transports := new(MockDispatchTransportRepository)

	orders.On("GetFirstPending", ctx).Return(testOrder, nil).Once()
	deliverers.On("GetAll", ctx).Return([]*deliverer.Deliverer{slow, fast}, nil).Once()
	orders.On("GetInProcessByDeliverer", ctx, slow.ID()).Return([]*cart.CustomerOrder{}, nil).Once()
	orders.On("GetInProcessByDeliverer", ctx, fast.ID()).Return([]*cart.CustomerOrder{}, nil).Once()
	transports.On("GetAll", ctx).Return([]*deliverer.Transport{bicycle, car}, nil).Once()
	orders.On("Claim", ctx, testOrder.ID(), fast.ID()).Return(testOrder, nil).Once()

	handler := commands.NewDispatchOrderCommandHandler(orders, deliverers, transports)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orders.AssertExpectations(t)
	deliverers.AssertExpectations(t)
	transports.AssertExpectations(t)
}

func TestDispatchOrderCommandHandler_Handle_NoPendingOrders(t *testing.T) {
	ctx := context.Background()

	orders := new(MockDispatchOrderRepository)
	deliverers := new(MockDispatchDelivererRepository)
	transports := new(MockDispatchTransportRepository)

	orders.On("GetFirstPending", ctx).Return(nil, errs.ErrObjectNotFound).Once()

	handler := commands.NewDispatchOrderCommandHandler(orders, deliverers, transports)
	err := handler.Handle(ctx, commands.NewDispatchOrderCommand())

	require.ErrorIs(t, err, commands.ErrNoPendingOrders)
	deliverers.AssertNotCalled(t, "GetAll")
}

func TestDispatchOrderCommandHandler_Handle_NoFreeDeliverers(t *testing.T) {
	ctx := context.Background()

	testOrder := pendingTestOrder(t)
	bicycle := testTransport(t, "bicycle", 15)
	busy := testDeliverer(t, "busy", bicycle.ID())
	activeOrder := pendingTestOrder(t)

	orders := new(MockDispatchOrderRepository)
	deliverers := new(MockDispatchDelivererRepository)
	transports := new(MockDispatchTransportRepository)

	orders.On("GetFirstPending", ctx).Return(testOrder, nil).Once()
	deliverers.On("GetAll", ctx).Return([]*deliverer.Deliverer{busy}, nil).Once()
	orders.On("GetInProcessByDeliverer", ctx, busy.ID()).
		Return([]*cart.CustomerOrder{activeOrder}, nil).Once()

	handler := commands.NewDispatchOrderCommandHandler(orders, deliverers, transports)
	err := handler.Handle(ctx, commands.NewDispatchOrderCommand())

	require.ErrorIs(t, err, commands.ErrNoFreeDeliverers)
	transports.AssertNotCalled(t, "GetAll")
}

func TestDispatchOrderCommandHandler_Handle_ClaimConflict(t *testing.T) {
	ctx := context.Background()

	testOrder := pendingTestOrder(t)
	car := testTransport(t, "car", 60)
	fast := testDeliverer(t, "fast", car.ID())

	orders := new(MockDispatchOrderRepository)
	deliverers := new(MockDispatchDelivererRepository)
	transports := new(MockDispatchTransportRepository)

	orders.On("GetFirstPending", ctx).Return(testOrder, nil).Once()
	deliverers.On("GetAll", ctx).Return([]*deliverer.Deliverer{fast}, nil).Once()
	orders.On("GetInProcessByDeliverer", ctx, fast.ID()).Return([]*cart.CustomerOrder{}, nil).Once()
	transports.On("GetAll", ctx).Return([]*deliverer.Transport{car}, nil).Once()
	orders.On("Claim", ctx, testOrder.ID(), fast.ID()).
		Return(nil, errs.NewConflictError("customerOrder", testOrder.ID().String())).Once()

	handler := commands.NewDispatchOrderCommandHandler(orders, deliverers, transports)
	err := handler.Handle(ctx, commands.NewDispatchOrderCommand())

	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestDispatchOrderCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := context.Background()

	orders := new(MockDispatchOrderRepository)
	deliverers := new(MockDispatchDelivererRepository)
	transports := new(MockDispatchTransportRepository)

	orders.On("GetFirstPending", ctx).Return(nil, errors.New("store error")).Once()

	handler := commands.NewDispatchOrderCommandHandler(orders, deliverers, transports)
	err := handler.Handle(ctx, commands.NewDispatchOrderCommand())

	require.Error(t, err)
	assert.EqualError(t, err, "store error")
}

func TestDispatchOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()

	orders := new(MockDispatchOrderRepository)
	deliverers := new(MockDispatchDelivererRepository)
	transports := new(MockDispatchTransportRepository)

	handler := commands.NewDispatchOrderCommandHandler(orders, deliverers, transports)
	err := handler.Handle(ctx, commands.DispatchOrderCommand{})

	require.ErrorIs(t, err, commands.ErrDispatchOrderCommandIsNotConstructed)
	orders.AssertNotCalled(t, "GetFirstPending")
}
