package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/adapters/out/postgres/vehiclerepo"
	"github.com/Gumierow/GIS-ISI/internal/core/application/usecases/queries"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetAvailableVehiclesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAvailableVehiclesQueryHandler
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&vehiclerepo.VehicleDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAvailableVehiclesQueryHandler(db)
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE vehicles CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAvailableVehiclesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) TestHandle_ReturnsVehiclesInDispatchOrder() {
	suite.addVehicle("ABC-1001", "Fiorino", 400)
	suite.addVehicle("ABC-1002", "Sprinter", 1200)
	suite.addVehicle("ABC-1003", "Kangoo", 650)

	query := queries.NewGetAvailableVehiclesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("Sprinter", result[0].Model)
	suite.Equal(1200, result[0].Capacity)
	suite.Equal("Kangoo", result[1].Model)
	suite.Equal(650, result[1].Capacity)
	suite.Equal("Fiorino", result[2].Model)
	suite.Equal(400, result[2].Capacity)
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) TestHandle_CapacityTie_BreaksByID() {
	suite.addVehicle("ABC-2001", "Ducato", 900)
	suite.addVehicle("ABC-2002", "Master", 900)
	suite.addVehicle("ABC-2003", "Boxer", 900)

	query := queries.NewGetAvailableVehiclesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	for i := 1; i < len(result); i++ {
		suite.Less(
			result[i-1].ID.String(),
			result[i].ID.String(),
			"tied capacities must come back in ascending ID order",
		)
	}
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) TestHandle_FiltersBusyVehicles() {
	suite.addVehicle("ABC-3001", "Sprinter", 1200)

	busy, err := vehicle.RestoreVehicle(kernel.NewUUID(), "ABC-3002", "Fiorino", 400, false)
	suite.Require().NoError(err)
	repo := vehiclerepo.NewGormVehicleRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), busy))

	query := queries.NewGetAvailableVehiclesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("ABC-3001", result[0].Plate)
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAvailableVehiclesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetAvailableVehiclesQueryIsNotConstructed)
}

func (suite *GetAvailableVehiclesQueryHandlerTestSuite) addVehicle(plate, model string, capacity int) *vehicle.Vehicle {
	aggregate, err := vehicle.NewVehicle(kernel.NewUUID(), plate, model, capacity)
	suite.Require().NoError(err)

	repo := vehiclerepo.NewGormVehicleRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func TestGetAvailableVehiclesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailableVehiclesQueryHandlerTestSuite))
}
