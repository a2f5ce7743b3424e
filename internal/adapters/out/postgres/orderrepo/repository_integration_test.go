package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"opspro/internal/adapters/out/postgres/orderrepo"
	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/core/domain/model/order"
	"opspro/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_AssignsIdentifier() {
	ctx := context.Background()

	testOrder := suite.newTestOrder("ORD-1001")

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// The database assigned an identifier and the repository attached it
	suite.Require().NoError(testOrder.ID().Validate())
	suite.Positive(testOrder.ID().Int64())

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	originalOrder := suite.newTestOrder("ORD-2001")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.True(originalOrder.ID().IsEqual(retrievedOrder.ID()))
	suite.Equal("ORD-2001", retrievedOrder.OrderID())
	suite.Equal("Margherita Pizza x2", retrievedOrder.Items())
	suite.Equal(15, retrievedOrder.PrepTime())
	suite.Equal(order.Prep, retrievedOrder.Status())
	suite.Nil(retrievedOrder.AssignedPartner())
	suite.Nil(retrievedOrder.DispatchTime())
	suite.Nil(retrievedOrder.DeliveryTime())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	missingID, err := kernel.NewID(999999)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.repository.Get(ctx, missingID)

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycleChanges() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	testOrder := suite.newTestOrder("ORD-3001")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Move the order forward and assign a partner
	suite.Require().NoError(testOrder.Advance(order.Ready, kernel.NewManagerActor(), now))

	partnerID, err := kernel.NewID(42)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Assign(partnerID, now))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Ready, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.AssignedPartner())
	suite.True(partnerID.IsEqual(*retrievedOrder.AssignedPartner()))
	suite.Require().NotNil(retrievedOrder.DispatchTime())
	suite.Nil(retrievedOrder.DeliveryTime())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()
	now := time.Now().UTC()

	missingID, err := kernel.NewID(424242)
	suite.Require().NoError(err)

	phantomOrder, err := order.RestoreOrder(missingID, "ORD-GONE", "Nothing", 5,
		order.Prep, nil, nil, nil, now, now)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, phantomOrder)
	suite.Require().Error(err)
	suite.Contains(strings.ToLower(err.Error()), "record not found")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsEveryOrder() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), mock.Anything).Times(3)
	for _, ref := range []string{"ORD-01", "ORD-02", "ORD-03"} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newTestOrder(ref)))
	}

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(orders, 3)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_ExcludesDeliveredOrders() {
	ctx := context.Background()
	now := time.Now().UTC()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), mock.Anything).Times(3)

	activeOrder := suite.newTestOrder("ORD-ACTIVE")
	suite.Require().NoError(suite.repository.Add(ctx, activeOrder))

	assignedOrder := suite.newTestOrder("ORD-ASSIGNED")
	suite.Require().NoError(suite.repository.Add(ctx, assignedOrder))

	deliveredSeed := suite.newTestOrder("ORD-DONE")
	suite.Require().NoError(suite.repository.Add(ctx, deliveredSeed))

	// Rewrite one row as a finished delivery
	partnerID, err := kernel.NewID(7)
	suite.Require().NoError(err)
	deliveredOrder, err := order.RestoreOrder(deliveredSeed.ID(), "ORD-DONE", "Sushi Platter", 20,
		order.Delivered, &partnerID, &now, &now, now, now)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", deliveredOrder.ID(), deliveredOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, deliveredOrder))

	activeOrders, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Len(activeOrders, 2)
	for _, o := range activeOrders {
		suite.NotEqual(order.Delivered, o.Status())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_ReturnsLockedRow() {
	ctx := context.Background()

	testOrder := suite.newTestOrder("ORD-LOCK")
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Lock inside an explicit transaction so the clause is valid
	tx := suite.db.WithContext(ctx).Begin()
	suite.Require().NoError(tx.Error)
	txRepository := orderrepo.NewGormOrderRepository(tx, suite.tracker)

	lockedOrder, err := txRepository.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(lockedOrder.ID()))

	suite.Require().NoError(tx.Commit().Error)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with zero-value identifier",
			operation: func() error {
				var invalidID kernel.ID
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "created via newid",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				missingID, _ := kernel.NewID(888888)
				_, err := suite.repository.Get(context.Background(), missingID)
				return err
			},
			expected: "not found",
		},
		{
			name: "duplicate external order reference",
			operation: func() error {
				suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.ID"), mock.Anything).Once()
				first := suite.newTestOrder("ORD-DUP")
				if err := suite.repository.Add(context.Background(), first); err != nil {
					return err
				}
				second := suite.newTestOrder("ORD-DUP")
				return suite.repository.Add(context.Background(), second)
			},
			expected: "duplicate",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// newTestOrder creates a basic test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) newTestOrder(orderRef string) *order.Order {
	testOrder, err := order.NewOrder(orderRef, "Margherita Pizza x2", 15, time.Now().UTC())
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
