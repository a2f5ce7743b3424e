package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "opspro/internal/adapters/out/postgres"
	"opspro/internal/adapters/out/postgres/accountrepo"
	"opspro/internal/adapters/out/postgres/orderrepo"
	"opspro/internal/adapters/out/postgres/partnerrepo"
	"opspro/internal/core/application/usecases/commands"
	"opspro/internal/core/domain/model/order"
	"opspro/internal/core/domain/model/partner"
	"opspro/internal/core/ports"
	"opspro/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &partnerrepo.PartnerDTO{}, &accountrepo.AccountDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, delivery_partners, accounts RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.PartnerRepository())
	suite.NotNil(uow1.AccountRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Commit without begin
	err := uow.Commit(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)

	// Rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentWorkflow() {
	ctx := context.Background()
	now := time.Now().UTC()

	// Seed an order and a partner
	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.Begin(ctx))

	testOrder, err := order.NewOrder("ORD-FLOW", "Biryani", 25, now)
	suite.Require().NoError(err)
	suite.Require().NoError(setupUow.OrderRepository().Add(ctx, testOrder))

	testPartner, err := partner.NewDeliveryPartner("flowrider", "Flow Rider", "+91-9111111111",
		true, now)
	suite.Require().NoError(err)
	suite.Require().NoError(setupUow.PartnerRepository().Add(ctx, testPartner))

	suite.Require().NoError(setupUow.Commit(ctx))

	// Assign the partner inside a second transaction using locked reads
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	lockedOrder, err := uow.OrderRepository().GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)

	lockedPartner, err := uow.PartnerRepository().GetForUpdate(ctx, testPartner.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(lockedOrder.Assign(lockedPartner.ID(), now))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, lockedOrder))

	suite.Require().NoError(uow.Commit(ctx))

	// Verify the assignment is visible outside the transaction
	verifyUow := suite.factory.Create()
	persistedOrder, err := verifyUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(persistedOrder.AssignedPartner())
	suite.True(testPartner.ID().IsEqual(*persistedOrder.AssignedPartner()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	now := time.Now().UTC()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder, err := order.NewOrder("ORD-ROLLBACK", "Dosa", 10, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Rollback(ctx))

	// The insert must not be visible after rollback
	var count int64
	err = suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	now := time.Now().UTC()

	// Repositories obtained without Begin execute immediately
	uow := suite.factory.Create()

	testPartner, err := partner.NewDeliveryPartner("noTx", "No Tx", "+91-9222222222", true, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PartnerRepository().Add(ctx, testPartner))

	persistedPartner, err := uow.PartnerRepository().Get(ctx, testPartner.ID())
	suite.Require().NoError(err)
	suite.Equal("noTx", persistedPartner.Username())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_QueryConsistency() {
	ctx := context.Background()
	now := time.Now().UTC()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	// Writes within the transaction are visible to reads in the same transaction
	testOrder, err := order.NewOrder("ORD-CONSISTENT", "Thali", 30, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	inTxOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("ORD-CONSISTENT", inTxOrder.OrderID())

	// But invisible to other connections before commit
	outsideUow := suite.factory.Create()
	_, err = outsideUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err)

	suite.Require().NoError(uow.Commit(ctx))

	committedOrder, err := outsideUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("ORD-CONSISTENT", committedOrder.OrderID())
}

// assignUoWFactory narrows the full unit-of-work factory to what the
// assignment command needs.
type assignUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f assignUoWFactory) Create() commands.UoW {
	return f.factory.Create()
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentAssignsClaimPartnerOnce() {
	ctx := context.Background()
	now := time.Now().UTC()

	seedUow := suite.factory.Create()
	suite.Require().NoError(seedUow.Begin(ctx))

	firstOrder, err := order.NewOrder("ORD-RACE-1", "Momos", 15, now)
	suite.Require().NoError(err)
	suite.Require().NoError(seedUow.OrderRepository().Add(ctx, firstOrder))

	secondOrder, err := order.NewOrder("ORD-RACE-2", "Chaat", 10, now)
	suite.Require().NoError(err)
	suite.Require().NoError(seedUow.OrderRepository().Add(ctx, secondOrder))

	racedPartner, err := partner.NewDeliveryPartner("racer", "Racer", "+91-9333333333",
		true, now)
	suite.Require().NoError(err)
	suite.Require().NoError(seedUow.PartnerRepository().Add(ctx, racedPartner))

	suite.Require().NoError(seedUow.Commit(ctx))

	handler := commands.NewAssignPartnerCommandHandler(assignUoWFactory{factory: suite.factory})

	firstCmd, err := commands.NewAssignPartnerCommand(firstOrder.ID(), racedPartner.ID())
	suite.Require().NoError(err)
	secondCmd, err := commands.NewAssignPartnerCommand(secondOrder.ID(), racedPartner.ID())
	suite.Require().NoError(err)

	// Both assignments race for the same partner; the FOR UPDATE lock on the
	// partner row serializes them and the loser must see the winner's commit.
	results := make(chan error, 2)
	for _, cmd := range []commands.AssignPartnerCommand{firstCmd, secondCmd} {
		go func(c commands.AssignPartnerCommand) {
			results <- handler.Handle(ctx, c)
		}(cmd)
	}

	successes := 0
	for i := 0; i < 2; i++ {
		if err := <-results; err == nil {
			successes++
		} else {
			suite.Require().ErrorIs(err, errs.ErrPartnerUnavailable)
		}
	}
	suite.Equal(1, successes)

	var assignedCount int64
	err = suite.db.Model(&orderrepo.OrderDTO{}).
		Where("assigned_partner_id = ?", racedPartner.ID().Int64()).
		Count(&assignedCount).Error
	suite.Require().NoError(err)
	suite.EqualValues(1, assignedCount)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
