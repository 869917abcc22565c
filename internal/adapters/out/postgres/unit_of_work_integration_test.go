package postgres_test

import (
	"context"
	"testing"
	"time"

	"jelantah/internal/adapters/out/postgres"
	"jelantah/internal/adapters/out/postgres/customerrepo"
	"jelantah/internal/adapters/out/postgres/orderrepo"
	"jelantah/internal/adapters/out/postgres/tierrepo"
	"jelantah/internal/core/domain/model/customer"
	"jelantah/internal/core/domain/model/kernel"
	"jelantah/internal/core/domain/model/order"
	"jelantah/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction coordination across
// the order and customer repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&customerrepo.CustomerDTO{},
		&tierrepo.PriceTierDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, customers, price_tiers").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndCustomerAtomically() {
	ctx := context.Background()
	client, aggregate := suite.seedVerifiableOrder(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	warehouse, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleWarehouse)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Verify(warehouse))
	suite.Require().NoError(client.AddCollectedLiters(*aggregate.ActualLiters()))

	suite.Require().NoError(uow.OrderRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.CustomerRepository().Update(ctx, client))
	suite.Require().NoError(uow.Commit(ctx))

	reloadedOrder, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Verified, reloadedOrder.Status())

	reloadedCustomer, err := suite.factory.Create().CustomerRepository().Get(ctx, client.ID())
	suite.Require().NoError(err)
	suite.Equal(22, reloadedCustomer.TotalLiters())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsBothWrites() {
	ctx := context.Background()
	client, aggregate := suite.seedVerifiableOrder(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	warehouse, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleWarehouse)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Verify(warehouse))
	suite.Require().NoError(client.AddCollectedLiters(*aggregate.ActualLiters()))

	suite.Require().NoError(uow.OrderRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.CustomerRepository().Update(ctx, client))
	suite.Require().NoError(uow.Rollback(ctx))

	reloadedOrder, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, reloadedOrder.Status())

	reloadedCustomer, err := suite.factory.Create().CustomerRepository().Get(ctx, client.ID())
	suite.Require().NoError(err)
	suite.Equal(0, reloadedCustomer.TotalLiters())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPriceTierRepository_ReadsSeededTiers() {
	ctx := context.Background()

	err := suite.db.Exec(`
		INSERT INTO price_tiers (min_liter, max_liter, price_per_liter)
		VALUES (0, 50, 7000), (51, 100, 7500), (101, -1, 8000)
	`).Error
	suite.Require().NoError(err)

	table, err := suite.factory.Create().PriceTierRepository().GetTable(ctx)
	suite.Require().NoError(err)

	rate, err := table.RateFor(22)
	suite.Require().NoError(err)
	suite.Equal(int64(7000), rate)

	rate, err = table.RateFor(500)
	suite.Require().NoError(err)
	suite.Equal(int64(8000), rate)
}

// seedVerifiableOrder persists a customer and a completed order for it
// outside any test transaction.
func (suite *UnitOfWorkIntegrationTestSuite) seedVerifiableOrder(ctx context.Context) (*customer.Customer, *order.Order) {
	client, err := customer.NewCustomer(
		kernel.NewUUID(), "Warung Bu Siti", "081234567890", "Jl. Merdeka No. 1", "Coblong", "Bandung",
	)
	suite.Require().NoError(err)

	snapshot, err := client.Snapshot()
	suite.Require().NoError(err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), client.ID(), snapshot, 20)
	suite.Require().NoError(err)

	courier, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCourier)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Assign(courier, courier.ID()))
	suite.Require().NoError(aggregate.Start(courier))
	suite.Require().NoError(aggregate.Complete(courier, 22, "evidence/pickup-1.jpg"))

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.CustomerRepository().Add(ctx, client))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(seed.Commit(ctx))

	return client, aggregate
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
