package impl

import (
	"context"
	"testing"

	"citycard/internal/domain/entity"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/domain/repository"
	"citycard/internal/domain/service"
	"citycard/internal/errors"
	mockRepo "citycard/internal/mocks/repository"
	mockSvc "citycard/internal/mocks/service"
	"citycard/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type walletServiceFixtures struct {
	service   usecase.WalletUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	cardRepo  *mockRepo.MockTransitCardRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestWalletService(t *testing.T, ints ...int) walletServiceFixtures {
	txManager, factory := newTxMocks(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return walletServiceFixtures{
		service: NewWalletService(WalletServiceParams{
			TxManager: txManager,
			Generator: newScriptedGenerator(nil, ints),
			Publisher: publisher,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		factory:   factory,
		cardRepo:  mockRepo.NewMockTransitCardRepository(t),
		publisher: publisher,
	}
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestWalletService_Pay_Success(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()

	expectUnitOfWork(fx.txManager, fx.factory)
	fx.factory.EXPECT().TransitCardRepo().Return(fx.cardRepo)

	lock := fx.cardRepo.EXPECT().FindByIDForUpdate(ctx, int64(9)).
		Return(&entity.TransitCard{ID: 9, UserID: 1, Balance: amount(100)}, nil)
	debit := fx.cardRepo.EXPECT().AdjustBalance(ctx, int64(9), amount(-60)).Return(amount(40), nil)
	ledger := fx.cardRepo.EXPECT().
		AppendTransaction(ctx, mock.MatchedBy(func(tx *entity.TransitTransaction) bool {
			return tx.CardID == 9 &&
				tx.Type == entity.TransitPayment &&
				tx.Amount.Equal(amount(-60)) &&
				tx.Description == entity.TransitPaymentDescription
		})).
		Return(nil)
	mock.InOrder(lock.Call, debit.Call, ledger.Call)

	fx.publisher.EXPECT().
		PublishTransitLedgerEvent(ctx, mock.MatchedBy(func(event *service.TransitLedgerEvent) bool {
			return event.CardID == 9 && event.Type == "payment" && event.Amount == -60 && event.Balance == 40
		})).
		Return(nil)

	balance, err := fx.service.Pay(ctx, usecase.TransitOperationInput{CardID: 9, Amount: amount(60)})
	require.NoError(t, err)
	assert.True(t, amount(40).Equal(balance))
}

func TestWalletService_Pay_InsufficientFunds(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()

	expectUnitOfWork(fx.txManager, fx.factory)
	fx.factory.EXPECT().TransitCardRepo().Return(fx.cardRepo)
	fx.cardRepo.EXPECT().FindByIDForUpdate(ctx, int64(9)).
		Return(&entity.TransitCard{ID: 9, UserID: 1, Balance: amount(50)}, nil)

	_, err := fx.service.Pay(ctx, usecase.TransitOperationInput{CardID: 9, Amount: amount(60)})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientFunds)
	fx.cardRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishTransitLedgerEvent", mock.Anything, mock.Anything)
}

func TestWalletService_Pay_ExactBalanceIsAllowed(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()

	expectUnitOfWork(fx.txManager, fx.factory)
	fx.factory.EXPECT().TransitCardRepo().Return(fx.cardRepo)
	fx.cardRepo.EXPECT().FindByIDForUpdate(ctx, int64(9)).
		Return(&entity.TransitCard{ID: 9, UserID: 1, Balance: amount(60)}, nil)
	fx.cardRepo.EXPECT().AdjustBalance(ctx, int64(9), amount(-60)).Return(decimal.Zero, nil)
	fx.cardRepo.EXPECT().AppendTransaction(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishTransitLedgerEvent(ctx, mock.Anything).Return(nil)

	balance, err := fx.service.Pay(ctx, usecase.TransitOperationInput{CardID: 9, Amount: amount(60)})
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

// Callers that send userId get an ownership check; callers that omit it do not.
func TestWalletService_Pay_Ownership(t *testing.T) {
	ctx := context.Background()

	t.Run("mismatch is rejected before any mutation", func(t *testing.T) {
		fx := createTestWalletService(t)

		expectUnitOfWork(fx.txManager, fx.factory)
		fx.factory.EXPECT().TransitCardRepo().Return(fx.cardRepo)
		fx.cardRepo.EXPECT().FindByIDForUpdate(ctx, int64(9)).
			Return(&entity.TransitCard{ID: 9, UserID: 1, Balance: amount(500)}, nil)

		_, err := fx.service.Pay(ctx, usecase.TransitOperationInput{CardID: 9, UserID: int64Ptr(2), Amount: amount(60)})
		assert.ErrorIs(t, err, domainerrors.ErrOwnershipMismatch)
	})

	t.Run("omitted user still debits a foreign card", func(t *testing.T) {
		fx := createTestWalletService(t)

		expectUnitOfWork(fx.txManager, fx.factory)
		fx.factory.EXPECT().TransitCardRepo().Return(fx.cardRepo)
		fx.cardRepo.EXPECT().FindByIDForUpdate(ctx, int64(9)).
			Return(&entity.TransitCard{ID: 9, UserID: 1, Balance: amount(500)}, nil)
		fx.cardRepo.EXPECT().AdjustBalance(ctx, int64(9), amount(-60)).Return(amount(440), nil)
		fx.cardRepo.EXPECT().AppendTransaction(ctx, mock.Anything).Return(nil)
		fx.publisher.EXPECT().PublishTransitLedgerEvent(ctx, mock.Anything).Return(nil)

		_, err := fx.service.Pay(ctx, usecase.TransitOperationInput{CardID: 9, Amount: amount(60)})
		require.NoError(t, err)
	})
}

func TestWalletService_NonPositiveAmount(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()

	_, err := fx.service.Pay(ctx, usecase.TransitOperationInput{CardID: 9, Amount: decimal.Zero})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.TopUp(ctx, usecase.TransitOperationInput{CardID: 9, Amount: amount(-5)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestWalletService_TopUp(t *testing.T) {
	ctx := context.Background()

	t.Run("credits and records ledger entry", func(t *testing.T) {
		fx := createTestWalletService(t)

		expectUnitOfWork(fx.txManager, fx.factory)
		fx.factory.EXPECT().TransitCardRepo().Return(fx.cardRepo)
		fx.cardRepo.EXPECT().FindByIDForUpdate(ctx, int64(9)).
			Return(&entity.TransitCard{ID: 9, UserID: 1, Balance: amount(100)}, nil)
		fx.cardRepo.EXPECT().AdjustBalance(ctx, int64(9), amount(500)).Return(amount(600), nil)
		fx.cardRepo.EXPECT().
			AppendTransaction(ctx, mock.MatchedBy(func(tx *entity.TransitTransaction) bool {
				return tx.Type == entity.TransitTopUp && tx.Amount.Equal(amount(500))
			})).
			Return(nil)
		fx.publisher.EXPECT().PublishTransitLedgerEvent(ctx, mock.Anything).Return(errors.New("topic unavailable"))

		balance, err := fx.service.TopUp(ctx, usecase.TransitOperationInput{CardID: 9, UserID: int64Ptr(1), Amount: amount(500)})
		require.NoError(t, err, "publish failures do not fail a committed top-up")
		assert.True(t, amount(600).Equal(balance))
	})

	t.Run("unknown card", func(t *testing.T) {
		fx := createTestWalletService(t)

		expectUnitOfWork(fx.txManager, fx.factory)
		fx.factory.EXPECT().TransitCardRepo().Return(fx.cardRepo)
		fx.cardRepo.EXPECT().FindByIDForUpdate(ctx, int64(77)).Return(nil, repository.ErrTransitCardNotFound)

		_, err := fx.service.TopUp(ctx, usecase.TransitOperationInput{CardID: 77, Amount: amount(500)})
		assert.ErrorIs(t, err, domainerrors.ErrTransitCardNotFound)
	})
}

func TestWalletService_AddTransitCard(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a card number", func(t *testing.T) {
		fx := createTestWalletService(t, 234, 5677)

		expectUnitOfWork(fx.txManager, fx.factory)
		fx.factory.EXPECT().TransitCardRepo().Return(fx.cardRepo)
		fx.cardRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.TransitCard")).
			Run(func(_ context.Context, card *entity.TransitCard) {
				card.ID = 5
			}).
			Return(nil)

		card, err := fx.service.AddTransitCard(ctx, usecase.AddTransitCardInput{UserID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(5), card.ID)
		assert.Equal(t, "1234-6677", card.CardNumber)
		assert.True(t, card.Balance.IsZero())
	})

	t.Run("negative opening balance", func(t *testing.T) {
		fx := createTestWalletService(t)

		_, err := fx.service.AddTransitCard(ctx, usecase.AddTransitCardInput{UserID: 1, Balance: amount(-1)})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestWalletService(t)

		expectUnitOfWork(fx.txManager, fx.factory)
		fx.factory.EXPECT().TransitCardRepo().Return(fx.cardRepo)
		fx.cardRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserNotFound)

		_, err := fx.service.AddTransitCard(ctx, usecase.AddTransitCardInput{UserID: 404, CardNumber: "1111-2222"})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestWalletService_AddBankCard_ClassifiesIssuer(t *testing.T) {
	fx := createTestWalletService(t)
	ctx := context.Background()
	bankRepo := mockRepo.NewMockBankCardRepository(t)

	expectUnitOfWork(fx.txManager, fx.factory)
	fx.factory.EXPECT().BankCardRepo().Return(bankRepo)
	bankRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.BankCard")).Return(nil)

	card, err := fx.service.AddBankCard(ctx, usecase.AddBankCardInput{
		UserID:     1,
		CardNumber: "2202 2000 0000 0000",
		HolderName: "IVAN PETROV",
		ExpireDate: "12/27",
		BankName:   "СберБанк",
	})
	require.NoError(t, err)
	assert.True(t, card.IsSber)
	assert.Equal(t, 1000, card.SberSpasibo)
}
