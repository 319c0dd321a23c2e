package impl

import (
	"context"
	"testing"
	"time"

	"citycard/internal/domain/entity"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/domain/repository"
	"citycard/internal/domain/service"
	mockRepo "citycard/internal/mocks/repository"
	mockSvc "citycard/internal/mocks/service"
	"citycard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type documentServiceFixtures struct {
	service      usecase.DocumentUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	passportRepo *mockRepo.MockPassportRepository
	qr           *mockSvc.MockQRCodeService
}

func createTestDocumentService(t *testing.T) documentServiceFixtures {
	txManager, factory := newTxMocks(t)
	qr := mockSvc.NewMockQRCodeService(t)

	return documentServiceFixtures{
		service: NewDocumentService(DocumentServiceParams{
			TxManager: txManager,
			QRService: qr,
			Logger:    newDiscardLogger(),
		}),
		txManager:    txManager,
		factory:      factory,
		userRepo:     mockRepo.NewMockUserRepository(t),
		passportRepo: mockRepo.NewMockPassportRepository(t),
		qr:           qr,
	}
}

var testUser = &entity.User{
	ID:         3,
	FirstName:  "Ivan",
	LastName:   "Petrov",
	MiddleName: "Sergeevich",
	BirthDate:  time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
}

func TestDocumentService_AddPassport_UnknownUser(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()

	expectUnitOfWork(fx.txManager, fx.factory)
	fx.factory.EXPECT().PassportRepo().Return(fx.passportRepo)
	fx.passportRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserNotFound)

	err := fx.service.AddPassport(ctx, &entity.Passport{UserID: 404, Series: "4010", Number: "123456"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestDocumentService_AddIntercom(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()
	intercomRepo := mockRepo.NewMockIntercomRepository(t)

	expectUnitOfWork(fx.txManager, fx.factory)
	fx.factory.EXPECT().IntercomRepo().Return(intercomRepo)
	intercomRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Intercom")).
		Run(func(_ context.Context, intercom *entity.Intercom) {
			intercom.ID = 8
		}).
		Return(nil)

	intercom := &entity.Intercom{UserID: 3, City: "Saint Petersburg", House: "12"}
	require.NoError(t, fx.service.AddIntercom(ctx, intercom))
	assert.Equal(t, int64(8), intercom.ID)
}

func TestDocumentService_IdentityQR(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()

	expectUnitOfWork(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(testUser, nil)
	fx.qr.EXPECT().GenerateIdentityQR(&service.IdentityQRData{
		FirstName:  "Ivan",
		LastName:   "Petrov",
		MiddleName: "Sergeevich",
		BirthDate:  "1990-05-01",
	}).Return([]byte("png"), nil)

	png, err := fx.service.IdentityQR(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestDocumentService_PassportQR_ForeignPassport(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()

	expectUnitOfWork(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().PassportRepo().Return(fx.passportRepo)
	fx.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(testUser, nil)
	fx.passportRepo.EXPECT().FindByID(ctx, int64(50)).Return(&entity.Passport{ID: 50, UserID: 4}, nil)

	_, err := fx.service.PassportQR(ctx, 3, 50)
	assert.ErrorIs(t, err, domainerrors.ErrPassportNotFound)
}

func TestDocumentService_PassportQR(t *testing.T) {
	fx := createTestDocumentService(t)
	ctx := context.Background()

	expectUnitOfWork(fx.txManager, fx.factory)
	fx.factory.EXPECT().UserRepo().Return(fx.userRepo)
	fx.factory.EXPECT().PassportRepo().Return(fx.passportRepo)
	fx.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(testUser, nil)
	fx.passportRepo.EXPECT().FindByID(ctx, int64(50)).
		Return(&entity.Passport{ID: 50, UserID: 3, Series: "4010", Number: "123456", INN: "780000000000"}, nil)
	fx.qr.EXPECT().
		GeneratePassportQR(mock.MatchedBy(func(data *service.PassportQRData) bool {
			return data.Series == "4010" && data.INN == "780000000000" && data.BirthDate == "1990-05-01"
		})).
		Return([]byte("png"), nil)

	_, err := fx.service.PassportQR(ctx, 3, 50)
	require.NoError(t, err)
}
