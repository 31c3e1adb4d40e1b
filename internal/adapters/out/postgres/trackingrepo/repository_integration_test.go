package trackingrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/adapters/out/postgres/trackingrepo"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/tracking"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LocationFixRepositoryIntegrationTestSuite provides integration tests for
// LocationFixRepository using PostgreSQL containers.
type LocationFixRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *trackingrepo.GormLocationFixRepository
}

func (suite *LocationFixRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&trackingrepo.LocationFixDTO{}))
}

func (suite *LocationFixRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE location_fixes").Error)

	suite.repository = trackingrepo.NewGormLocationFixRepository(suite.db)
}

func (suite *LocationFixRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LocationFixRepositoryIntegrationTestSuite) TestAdd_ValidFix_RoundTrips() {
	ctx := context.Background()
	vehicleID := kernel.NewUUID()
	recordedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	fix := suite.createFix(vehicleID, -23.5505, -46.6333, recordedAt)
	suite.Require().NoError(suite.repository.Add(ctx, fix))

	latest, err := suite.repository.GetLatest(ctx, vehicleID)
	suite.Require().NoError(err)
	suite.True(latest.IsEqual(fix))
	suite.InDelta(-23.5505, latest.Point().Latitude(), 0.0001)
	suite.InDelta(-46.6333, latest.Point().Longitude(), 0.0001)
	suite.Equal(recordedAt, latest.RecordedAt().UTC())
}

func (suite *LocationFixRepositoryIntegrationTestSuite) TestGetLatest_ReturnsNewestFix() {
	ctx := context.Background()
	vehicleID := kernel.NewUUID()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	oldest := suite.createFix(vehicleID, -23.5505, -46.6333, base)
	newest := suite.createFix(vehicleID, -23.5440, -46.6420, base.Add(10*time.Minute))
	middle := suite.createFix(vehicleID, -23.5489, -46.6388, base.Add(5*time.Minute))

	suite.Require().NoError(suite.repository.Add(ctx, oldest))
	suite.Require().NoError(suite.repository.Add(ctx, newest))
	suite.Require().NoError(suite.repository.Add(ctx, middle))

	latest, err := suite.repository.GetLatest(ctx, vehicleID)
	suite.Require().NoError(err)
	suite.True(latest.IsEqual(newest))
}

func (suite *LocationFixRepositoryIntegrationTestSuite) TestGetLatest_NoFixes_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.GetLatest(ctx, kernel.NewUUID())

	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *LocationFixRepositoryIntegrationTestSuite) TestGetRange_FiltersWindowAndVehicle() {
	ctx := context.Background()
	vehicleID := kernel.NewUUID()
	otherVehicleID := kernel.NewUUID()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	inside1 := suite.createFix(vehicleID, -23.5505, -46.6333, base)
	inside2 := suite.createFix(vehicleID, -23.5489, -46.6388, base.Add(5*time.Minute))
	outside := suite.createFix(vehicleID, -23.5440, -46.6420, base.Add(time.Hour))
	otherVehicle := suite.createFix(otherVehicleID, -23.5440, -46.6420, base.Add(time.Minute))

	suite.Require().NoError(suite.repository.Add(ctx, inside2))
	suite.Require().NoError(suite.repository.Add(ctx, outside))
	suite.Require().NoError(suite.repository.Add(ctx, inside1))
	suite.Require().NoError(suite.repository.Add(ctx, otherVehicle))

	track, err := suite.repository.GetRange(ctx, vehicleID, base, base.Add(30*time.Minute))
	suite.Require().NoError(err)

	suite.Require().Len(track, 2)
	suite.True(track[0].IsEqual(inside1), "Track should come back oldest first")
	suite.True(track[1].IsEqual(inside2))
}

func (suite *LocationFixRepositoryIntegrationTestSuite) TestGetRange_EmptyWindow_ReturnsEmptySlice() {
	ctx := context.Background()
	vehicleID := kernel.NewUUID()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	fix := suite.createFix(vehicleID, -23.5505, -46.6333, base)
	suite.Require().NoError(suite.repository.Add(ctx, fix))

	track, err := suite.repository.GetRange(ctx, vehicleID, base.Add(time.Hour), base.Add(2*time.Hour))
	suite.Require().NoError(err)
	suite.NotNil(track)
	suite.Empty(track)
}

// createFix creates a valid location fix for testing purposes.
func (suite *LocationFixRepositoryIntegrationTestSuite) createFix(
	vehicleID kernel.UUID,
	latitude, longitude float64,
	recordedAt time.Time,
) tracking.LocationFix {
	point, err := kernel.NewGeoPoint(latitude, longitude)
	suite.Require().NoError(err)

	fix, err := tracking.NewLocationFix(kernel.NewUUID(), vehicleID, point, recordedAt)
	suite.Require().NoError(err)
	return fix
}

func TestLocationFixRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LocationFixRepositoryIntegrationTestSuite))
}
