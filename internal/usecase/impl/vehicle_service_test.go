package impl

import (
	"context"
	"strings"
	"testing"

	"citycard/internal/domain/entity"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/domain/repository"
	mockRepo "citycard/internal/mocks/repository"
	"citycard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vehicleServiceFixtures struct {
	service     usecase.VehicleUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	vehicleRepo *mockRepo.MockVehicleRepository
	fineRepo    *mockRepo.MockFineRepository
}

func createTestVehicleService(t *testing.T, floats []float64, ints []int) vehicleServiceFixtures {
	txManager, factory := newTxMocks(t)

	return vehicleServiceFixtures{
		service: NewVehicleService(VehicleServiceParams{
			TxManager: txManager,
			Generator: newScriptedGenerator(floats, ints),
			Logger:    newDiscardLogger(),
		}),
		txManager:   txManager,
		factory:     factory,
		vehicleRepo: mockRepo.NewMockVehicleRepository(t),
		fineRepo:    mockRepo.NewMockFineRepository(t),
	}
}

func TestVehicleService_AddVehicle_WithFines(t *testing.T) {
	// generate, count=1, catalog 0, age 5, number offset 23456
	fx := createTestVehicleService(t, []float64{0.9}, []int{1, 0, 4, 23456})
	ctx := context.Background()

	expectUnitOfWork(fx.txManager, fx.factory)
	fx.factory.EXPECT().VehicleRepo().Return(fx.vehicleRepo)
	fx.factory.EXPECT().FineRepo().Return(fx.fineRepo)
	fx.vehicleRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Vehicle")).
		Run(func(_ context.Context, vehicle *entity.Vehicle) {
			vehicle.ID = 21
		}).
		Return(nil)
	fx.fineRepo.EXPECT().CreateBatch(ctx, mock.AnythingOfType("[]*entity.Fine")).Return(nil)

	vehicle := &entity.Vehicle{UserID: 1, PlateNumber: "А123ВС78"}
	fines, err := fx.service.AddVehicle(ctx, vehicle)
	require.NoError(t, err)
	assert.Equal(t, int64(21), vehicle.ID)
	require.Len(t, fines, 1)
	assert.Equal(t, int64(21), fines[0].VehicleID)
	assert.Equal(t, "18810123456", fines[0].FineNumber)
	assert.True(t, strings.HasPrefix(fines[0].FineNumber, "18810"))
}

func TestVehicleService_AddVehicle_NoFines(t *testing.T) {
	fx := createTestVehicleService(t, []float64{0.2}, nil)
	ctx := context.Background()

	expectUnitOfWork(fx.txManager, fx.factory)
	fx.factory.EXPECT().VehicleRepo().Return(fx.vehicleRepo)
	fx.factory.EXPECT().FineRepo().Return(fx.fineRepo)
	fx.vehicleRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.fineRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(nil)

	fines, err := fx.service.AddVehicle(ctx, &entity.Vehicle{UserID: 1, PlateNumber: "В777ОР98"})
	require.NoError(t, err)
	assert.Empty(t, fines)
}

func TestVehicleService_AddVehicle_UnknownUser(t *testing.T) {
	fx := createTestVehicleService(t, nil, nil)
	ctx := context.Background()

	expectUnitOfWork(fx.txManager, fx.factory)
	fx.factory.EXPECT().VehicleRepo().Return(fx.vehicleRepo)
	fx.vehicleRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserNotFound)

	_, err := fx.service.AddVehicle(ctx, &entity.Vehicle{UserID: 404})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestVehicleService_GetFines(t *testing.T) {
	ctx := context.Background()

	t.Run("without user returns the vehicle fines", func(t *testing.T) {
		fx := createTestVehicleService(t, nil, nil)

		expectUnitOfWork(fx.txManager, fx.factory)
		fx.factory.EXPECT().FineRepo().Return(fx.fineRepo)
		fx.fineRepo.EXPECT().FindByVehicle(ctx, int64(21)).Return(nil, nil)

		fines, err := fx.service.GetFines(ctx, 21, nil)
		require.NoError(t, err)
		assert.NotNil(t, fines)
		assert.Empty(t, fines)
	})

	t.Run("owner mismatch", func(t *testing.T) {
		fx := createTestVehicleService(t, nil, nil)

		expectUnitOfWork(fx.txManager, fx.factory)
		fx.factory.EXPECT().VehicleRepo().Return(fx.vehicleRepo)
		fx.vehicleRepo.EXPECT().FindByID(ctx, int64(21)).Return(&entity.Vehicle{ID: 21, UserID: 1}, nil)

		_, err := fx.service.GetFines(ctx, 21, int64Ptr(2))
		assert.ErrorIs(t, err, domainerrors.ErrOwnershipMismatch)
	})

	t.Run("owner match", func(t *testing.T) {
		fx := createTestVehicleService(t, nil, nil)

		expectUnitOfWork(fx.txManager, fx.factory)
		fx.factory.EXPECT().VehicleRepo().Return(fx.vehicleRepo)
		fx.factory.EXPECT().FineRepo().Return(fx.fineRepo)
		fx.vehicleRepo.EXPECT().FindByID(ctx, int64(21)).Return(&entity.Vehicle{ID: 21, UserID: 1}, nil)
		fx.fineRepo.EXPECT().FindByVehicle(ctx, int64(21)).Return([]*entity.Fine{{ID: 1, VehicleID: 21}}, nil)

		fines, err := fx.service.GetFines(ctx, 21, int64Ptr(1))
		require.NoError(t, err)
		assert.Len(t, fines, 1)
	})
}
