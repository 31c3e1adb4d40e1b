package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gumierow/GIS-ISI/internal/core/application/usecases/commands"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/delivery"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/kernel"
	"github.com/Gumierow/GIS-ISI/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	productID := kernel.NewUUID()
	distributionPointID := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryCommand(productID, distributionPointID)
	require.NoError(t, err)

	var capturedDelivery *delivery.Delivery
	mockRepo := new(MockAssignDeliveryRepository)
	mockUoW := new(MockDeliveryUoW)
	mockFactory := new(MockDeliveryUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DeliveryRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(d *delivery.Delivery) bool {
			capturedDelivery = d
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateDeliveryCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedDelivery)
	assert.True(t, capturedDelivery.ID().IsEqual(cmd.DeliveryID()))
	assert.True(t, capturedDelivery.ProductID().IsEqual(productID))
	assert.True(t, capturedDelivery.DistributionPointID().IsEqual(distributionPointID))
	assert.Equal(t, delivery.Pending, capturedDelivery.Status())
	assert.Nil(t, capturedDelivery.Vehicle())
	assert.False(t, capturedDelivery.CreatedAt().IsZero())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	mockFactory := new(MockDeliveryUoWFactory)
	handler := commands.NewCreateDeliveryCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, commands.CreateDeliveryCommand{})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateDeliveryCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestCreateDeliveryCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	expectedErr := errors.New("insert failed")

	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	mockRepo := new(MockAssignDeliveryRepository)
	mockUoW := new(MockDeliveryUoW)
	mockFactory := new(MockDeliveryUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DeliveryRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(expectedErr).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateDeliveryCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestNewCreateDeliveryCommand_Validation(t *testing.T) {
	t.Run("should reject zero product reference", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(kernel.UUID{}, kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject zero distribution point reference", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should generate unique delivery IDs", func(t *testing.T) {
		first, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		second, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		assert.False(t, first.DeliveryID().IsEqual(second.DeliveryID()))
	})
}
