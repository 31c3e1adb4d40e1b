package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/Gumierow/GIS-ISI/internal/core/application/usecases/commands"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/tracking"
	"github.com/Gumierow/GIS-ISI/internal/core/ports"
	"github.com/Gumierow/GIS-ISI/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLocationFixRepository struct{ mock.Mock }

func (m *MockLocationFixRepository) Add(ctx context.Context, fix tracking.LocationFix) error {
	args := m.Called(ctx, fix)
	return args.Error(0)
}

func (m *MockLocationFixRepository) GetLatest(ctx context.Context, vehicleID kernel.UUID) (tracking.LocationFix, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).(tracking.LocationFix), args.Error(1)
}

func (m *MockLocationFixRepository) GetRange(
	ctx context.Context,
	vehicleID kernel.UUID,
	from, to time.Time,
) ([]tracking.LocationFix, error) {
	args := m.Called(ctx, vehicleID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracking.LocationFix), args.Error(1)
}

type MockTrackingUoW struct{ mock.Mock }

func (m *MockTrackingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackingUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockTrackingUoW) LocationFixRepository() ports.LocationFixRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationFixRepository)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

func TestRecordLocationFixCommandHandler_Handle_FirstFix(t *testing.T) {
	// Arrange
	ctx := t.Context()
	v := newFleetVehicle(t, 1500)
	recordedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cmd, err := commands.NewRecordLocationFixCommand(v.ID(), -23.5505, -46.6333, recordedAt)
	require.NoError(t, err)

	var capturedFix tracking.LocationFix
	mockVehicleRepo := new(MockVehicleRepository)
	mockFixRepo := new(MockLocationFixRepository)
	mockUoW := new(MockTrackingUoW)
	mockFactory := new(MockTrackingUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockVehicleRepo.On("GetForUpdate", ctx, v.ID()).Return(v, nil).Once(),
		mockUoW.On("LocationFixRepository").Return(mockFixRepo).Once(),
		mockFixRepo.On("GetLatest", ctx, v.ID()).
			Return(tracking.LocationFix{}, errs.NewObjectNotFoundError("vehicleId", v.ID().String())).Once(),
		mockFixRepo.On("Add", ctx, mock.MatchedBy(func(fix tracking.LocationFix) bool {
			capturedFix = fix
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRecordLocationFixCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NoError(t, capturedFix.Validate())
	assert.True(t, capturedFix.VehicleID().IsEqual(v.ID()))
	assert.Equal(t, recordedAt, capturedFix.RecordedAt())
	assert.InDelta(t, -23.5505, capturedFix.Point().Latitude(), 0.0001)
	assert.InDelta(t, -46.6333, capturedFix.Point().Longitude(), 0.0001)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockVehicleRepo.AssertExpectations(t)
	mockFixRepo.AssertExpectations(t)
}

func TestRecordLocationFixCommandHandler_Handle_NewerFixAccepted(t *testing.T) {
	// Arrange
	ctx := t.Context()
	v := newFleetVehicle(t, 1500)
	earlier := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := earlier.Add(5 * time.Minute)

	point, err := kernel.NewGeoPoint(-23.5505, -46.6333)
	require.NoError(t, err)
	latestFix, err := tracking.NewLocationFix(kernel.NewUUID(), v.ID(), point, earlier)
	require.NoError(t, err)

	cmd, err := commands.NewRecordLocationFixCommand(v.ID(), -23.5489, -46.6388, later)
	require.NoError(t, err)

	mockVehicleRepo := new(MockVehicleRepository)
	mockFixRepo := new(MockLocationFixRepository)
	mockUoW := new(MockTrackingUoW)
	mockFactory := new(MockTrackingUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockVehicleRepo.On("GetForUpdate", ctx, v.ID()).Return(v, nil).Once(),
		mockUoW.On("LocationFixRepository").Return(mockFixRepo).Once(),
		mockFixRepo.On("GetLatest", ctx, v.ID()).Return(latestFix, nil).Once(),
		mockFixRepo.On("Add", ctx, mock.AnythingOfType("tracking.LocationFix")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRecordLocationFixCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFixRepo.AssertExpectations(t)
}

func TestRecordLocationFixCommandHandler_Handle_OutOfOrderFixRejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	v := newFleetVehicle(t, 1500)
	latestAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stale := latestAt.Add(-time.Minute)

	point, err := kernel.NewGeoPoint(-23.5505, -46.6333)
	require.NoError(t, err)
	latestFix, err := tracking.NewLocationFix(kernel.NewUUID(), v.ID(), point, latestAt)
	require.NoError(t, err)

	cmd, err := commands.NewRecordLocationFixCommand(v.ID(), -23.5489, -46.6388, stale)
	require.NoError(t, err)

	mockVehicleRepo := new(MockVehicleRepository)
	mockFixRepo := new(MockLocationFixRepository)
	mockUoW := new(MockTrackingUoW)
	mockFactory := new(MockTrackingUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockVehicleRepo.On("GetForUpdate", ctx, v.ID()).Return(v, nil).Once(),
		mockUoW.On("LocationFixRepository").Return(mockFixRepo).Once(),
		mockFixRepo.On("GetLatest", ctx, v.ID()).Return(latestFix, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRecordLocationFixCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	mockFixRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	mockFixRepo.AssertExpectations(t)
}

func TestRecordLocationFixCommandHandler_Handle_UnknownVehicle(t *testing.T) {
	// Arrange
	ctx := t.Context()
	vehicleID := kernel.NewUUID()

	cmd, err := commands.NewRecordLocationFixCommand(vehicleID, -23.5505, -46.6333, time.Now())
	require.NoError(t, err)

	mockVehicleRepo := new(MockVehicleRepository)
	mockUoW := new(MockTrackingUoW)
	mockFactory := new(MockTrackingUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockVehicleRepo).Once(),
		mockVehicleRepo.On("GetForUpdate", ctx, vehicleID).
			Return(nil, errs.NewObjectNotFoundError("vehicleId", vehicleID.String())).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRecordLocationFixCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockVehicleRepo.AssertExpectations(t)
}

func TestNewRecordLocationFixCommand_Validation(t *testing.T) {
	t.Run("should reject out-of-range coordinates", func(t *testing.T) {
		_, err := commands.NewRecordLocationFixCommand(kernel.NewUUID(), 91, 0, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject zero timestamp", func(t *testing.T) {
		_, err := commands.NewRecordLocationFixCommand(kernel.NewUUID(), 0, 0, time.Time{})

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrRecordedAtIsRequired)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.RecordLocationFixCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrRecordLocationFixCommandIsNotConstructed)
	})
}
