package commands_test

import (
	"context"
	"testing"
	"time"

	"jelantah/internal/core/application/usecases/commands"
	"jelantah/internal/core/domain/model/customer"
	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/core/domain/model/order"
	"jelantah/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetWithReferrer(ctx context.Context, id kernel.UUID) (*customer.Customer, *customer.Customer, error) {
	args := m.Called(ctx, id)
	var c, ref *customer.Customer
	if args.Get(0) != nil {
		c = args.Get(0).(*customer.Customer)
	}
	if args.Get(1) != nil {
		ref = args.Get(1).(*customer.Customer)
	}
	return c, ref, args.Error(2)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ MockOrderUoW }

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishStatusChanged(ctx context.Context, o *order.Order, transition order.Transition) error {
	args := m.Called(ctx, o, transition)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderAssigned(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockNotifier) NotifyOrderPaid(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockReportCache struct{ mock.Mock }

func (m *MockReportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockReportCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, payload, ttl)
	return args.Error(0)
}

func (m *MockReportCache) InvalidateByPrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

func testActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func testCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Warung Bu Siti", "081234567890", "Jl. Merdeka No. 1", "Coblong", "Bandung")
	require.NoError(t, err)
	return c
}

// orderInStatus drives a fresh order to the requested status and returns
// it with the courier actor that owns it.
func orderInStatus(t *testing.T, target order.Status) (*order.Order, kernel.Actor) {
	t.Helper()
	snapshot, err := order.NewCustomerSnapshot("Warung Bu Siti", "081234567890", "Coblong", "Bandung")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), snapshot, 20)
	require.NoError(t, err)

	courier := testActor(t, kernel.RoleCourier)
	if target == order.Pending {
		return o, courier
	}
	require.NoError(t, o.Assign(courier, courier.ID()))
	if target == order.Assigned {
		return o, courier
	}
	require.NoError(t, o.Start(courier))
	if target == order.InProgress {
		return o, courier
	}
	require.NoError(t, o.Complete(courier, 22, "evidence/pickup-1.jpg"))
	if target == order.Completed {
		return o, courier
	}
	require.NoError(t, o.Verify(testActor(t, kernel.RoleWarehouse)))
	return o, courier
}
