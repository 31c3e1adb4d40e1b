package deliveryrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/adapters/out/postgres/deliveryrepo"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/delivery"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DeliveryRepositoryIntegrationTestSuite provides integration tests for DeliveryRepository
// using PostgreSQL containers to verify database persistence behavior.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ValidDelivery_Success() {
	ctx := context.Background()

	testDelivery := suite.createPendingDelivery()

	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Once()

	err := suite.repository.Add(ctx, testDelivery)
	suite.Require().NoError(err)

	suite.assertDeliveryCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_ExistingDelivery_ReturnsDelivery() {
	ctx := context.Background()

	originalDelivery := suite.createPendingDelivery()
	suite.tracker.On("TrackAggregate", originalDelivery.ID(), originalDelivery).Once()

	err := suite.repository.Add(ctx, originalDelivery)
	suite.Require().NoError(err)

	retrievedDelivery, err := suite.repository.Get(ctx, originalDelivery.ID())
	suite.Require().NoError(err)

	suite.Equal(originalDelivery.ID(), retrievedDelivery.ID())
	suite.Equal(originalDelivery.ProductID(), retrievedDelivery.ProductID())
	suite.Equal(originalDelivery.DistributionPointID(), retrievedDelivery.DistributionPointID())
	suite.Equal(delivery.Pending, retrievedDelivery.Status())
	suite.Nil(retrievedDelivery.Vehicle())
	suite.Nil(retrievedDelivery.Route())
	suite.Nil(retrievedDelivery.DeliveredAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_NonExistentDelivery_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedDelivery, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedDelivery)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_LifecycleTransitions() {
	testCases := []struct {
		name   string
		mutate func(*delivery.Delivery)
		verify func(*delivery.Delivery)
	}{
		{
			name: "pending to in progress",
			mutate: func(d *delivery.Delivery) {
				suite.Require().NoError(d.Assign(kernel.NewUUID()))
			},
			verify: func(d *delivery.Delivery) {
				suite.Equal(delivery.InProgress, d.Status())
				suite.NotNil(d.Vehicle())
			},
		},
		{
			name: "in progress to delivered",
			mutate: func(d *delivery.Delivery) {
				suite.Require().NoError(d.Assign(kernel.NewUUID()))
				suite.Require().NoError(d.Complete(time.Now().UTC()))
			},
			verify: func(d *delivery.Delivery) {
				suite.Equal(delivery.Delivered, d.Status())
				suite.NotNil(d.DeliveredAt())
			},
		},
		{
			name: "in progress to failed",
			mutate: func(d *delivery.Delivery) {
				suite.Require().NoError(d.Assign(kernel.NewUUID()))
				suite.Require().NoError(d.Fail())
			},
			verify: func(d *delivery.Delivery) {
				suite.Equal(delivery.Failed, d.Status())
				suite.Nil(d.Vehicle())
				suite.Nil(d.DeliveredAt())
			},
		},
		{
			name: "pending to cancelled",
			mutate: func(d *delivery.Delivery) {
				suite.Require().NoError(d.Cancel())
			},
			verify: func(d *delivery.Delivery) {
				suite.Equal(delivery.Cancelled, d.Status())
			},
		},
		{
			name: "in progress to cancelled",
			mutate: func(d *delivery.Delivery) {
				suite.Require().NoError(d.Assign(kernel.NewUUID()))
				suite.Require().NoError(d.Cancel())
			},
			verify: func(d *delivery.Delivery) {
				suite.Equal(delivery.Cancelled, d.Status())
				suite.Nil(d.Vehicle())
			},
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			testDelivery := suite.createPendingDelivery()
			suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Twice()

			err := suite.repository.Add(ctx, testDelivery)
			suite.Require().NoError(err)

			tc.mutate(testDelivery)
			err = suite.repository.Update(ctx, testDelivery)
			suite.Require().NoError(err)

			retrievedDelivery, err := suite.repository.Get(ctx, testDelivery.ID())
			suite.Require().NoError(err)
			tc.verify(retrievedDelivery)
		})
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdateFrom_MatchingStatus_Succeeds() {
	ctx := context.Background()

	testDelivery := suite.createPendingDelivery()
	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Twice()

	err := suite.repository.Add(ctx, testDelivery)
	suite.Require().NoError(err)

	suite.Require().NoError(testDelivery.Assign(kernel.NewUUID()))
	err = suite.repository.UpdateFrom(ctx, testDelivery, delivery.Pending)
	suite.Require().NoError(err)

	retrievedDelivery, err := suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.InProgress, retrievedDelivery.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdateFrom_StaleStatus_ReturnsInvalidTransition() {
	ctx := context.Background()

	testDelivery := suite.createPendingDelivery()
	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Twice()

	err := suite.repository.Add(ctx, testDelivery)
	suite.Require().NoError(err)

	// First writer moves the delivery to in progress
	suite.Require().NoError(testDelivery.Assign(kernel.NewUUID()))
	err = suite.repository.UpdateFrom(ctx, testDelivery, delivery.Pending)
	suite.Require().NoError(err)

	// Second writer still believes the delivery is pending
	staleDelivery, err := delivery.RestoreDelivery(
		testDelivery.ID(),
		testDelivery.ProductID(),
		testDelivery.DistributionPointID(),
		delivery.Pending,
		testDelivery.CreatedAt(),
		nil,
		nil,
		nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(staleDelivery.Cancel())

	err = suite.repository.UpdateFrom(ctx, staleDelivery, delivery.Pending)
	suite.Require().ErrorIs(err, errs.ErrInvalidTransition)

	retrievedDelivery, err := suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.InProgress, retrievedDelivery.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetFirstInPendingStatus_ReturnsOldestPending() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	older := suite.createPendingDeliveryAt(time.Now().UTC().Add(-2 * time.Hour))
	newer := suite.createPendingDeliveryAt(time.Now().UTC().Add(-1 * time.Hour))
	inProgress := suite.createPendingDeliveryAt(time.Now().UTC().Add(-3 * time.Hour))
	suite.Require().NoError(inProgress.Assign(kernel.NewUUID()))

	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, inProgress))

	firstPending, err := suite.repository.GetFirstInPendingStatus(ctx)
	suite.Require().NoError(err)
	suite.Equal(older.ID(), firstPending.ID(), "Oldest pending delivery should come first")

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetFirstInPendingStatus_NoPending_ReturnsNotFoundError() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()

	completed := suite.createPendingDelivery()
	suite.Require().NoError(completed.Assign(kernel.NewUUID()))
	suite.Require().NoError(completed.Complete(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Add(ctx, completed))

	firstPending, err := suite.repository.GetFirstInPendingStatus(ctx)

	suite.Nil(firstPending)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetAllInProgress_ReturnsOnlyInProgress() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	pending := suite.createPendingDelivery()
	active := suite.createPendingDelivery()
	suite.Require().NoError(active.Assign(kernel.NewUUID()))
	cancelled := suite.createPendingDelivery()
	suite.Require().NoError(cancelled.Cancel())

	suite.Require().NoError(suite.repository.Add(ctx, pending))
	suite.Require().NoError(suite.repository.Add(ctx, active))
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	inProgress, err := suite.repository.GetAllInProgress(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(inProgress, 1)
	suite.Equal(active.ID(), inProgress[0].ID())
	suite.Equal(delivery.InProgress, inProgress[0].Status())
	suite.NotNil(inProgress[0].Vehicle())

	suite.tracker.AssertExpectations(suite.T())
}

// TestDeliveryRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *DeliveryRepositoryIntegrationTestSuite) TestDeliveryRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				invalidID := kernel.UUID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent delivery",
			operation: func() error {
				_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent delivery",
			operation: func() error {
				return suite.repository.Update(context.Background(), suite.createPendingDelivery())
			},
			expected: "record not found",
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

// createPendingDelivery creates a basic pending delivery with default values.
func (suite *DeliveryRepositoryIntegrationTestSuite) createPendingDelivery() *delivery.Delivery {
	return suite.createPendingDeliveryAt(time.Now().UTC())
}

// createPendingDeliveryAt creates a pending delivery with a fixed creation time.
func (suite *DeliveryRepositoryIntegrationTestSuite) createPendingDeliveryAt(createdAt time.Time) *delivery.Delivery {
	testDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		createdAt,
	)
	suite.Require().NoError(err)
	return testDelivery
}

// assertDeliveryCount verifies the number of deliveries in the database.
func (suite *DeliveryRepositoryIntegrationTestSuite) assertDeliveryCount(expected int) {
	var count int64
	err := suite.db.Model(&deliveryrepo.DeliveryDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
