package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "citycard/internal/delivery/context"
	"citycard/internal/domain/entity"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/domain/repository"
	"citycard/internal/domain/rules"
	"citycard/internal/domain/service"
	"citycard/internal/domain/synthetic"
	"citycard/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const transitCardResource = "podorozhnik"

// walletService implements the WalletUsecase interface.
type walletService struct {
	txManager repository.TransactionManager
	generator *synthetic.Generator
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// WalletServiceParams holds dependencies for WalletService, injected by Fx.
type WalletServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Generator *synthetic.Generator
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewWalletService is the constructor for walletService.
func NewWalletService(params WalletServiceParams) usecase.WalletUsecase {
	return &walletService{
		txManager: params.TxManager,
		generator: params.Generator,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *walletService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddTransitCard stores a card, generating a number when none is given.
func (srv *walletService) AddTransitCard(ctx context.Context, input usecase.AddTransitCardInput) (*entity.TransitCard, error) {
	if input.Balance.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("balance must not be negative")
	}

	card := &entity.TransitCard{
		UserID:     input.UserID,
		CardNumber: input.CardNumber,
		Balance:    input.Balance,
	}
	if card.CardNumber == "" {
		card.CardNumber = srv.generator.TransitCardNumber()
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.TransitCardRepo().Create(ctx, card)
	}); err != nil {
		return nil, translateRepositoryError(err)
	}

	srv.log(ctx).Info("Transit card added", slog.Int64("userID", card.UserID), slog.Int64("cardID", card.ID))

	return card, nil
}

// TopUp credits the card under a row lock and records the ledger entry.
func (srv *walletService) TopUp(ctx context.Context, input usecase.TransitOperationInput) (decimal.Decimal, error) {
	if !input.Amount.IsPositive() {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("amount must be greater than zero")
	}

	var (
		balance decimal.Decimal
		ledger  *entity.TransitTransaction
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cards := repoFactory.TransitCardRepo()

		card, err := cards.FindByIDForUpdate(ctx, input.CardID)
		if err != nil {
			return err
		}
		if err := checkOwnership(ctx, srv.log(ctx), transitCardResource, card.ID, card.UserID, input.UserID); err != nil {
			return err
		}

		if balance, err = cards.AdjustBalance(ctx, card.ID, input.Amount); err != nil {
			return err
		}
		ledger = entity.NewTopUpTransaction(card.ID, input.Amount)

		return cards.AppendTransaction(ctx, ledger)
	})
	if err != nil {
		return decimal.Zero, translateRepositoryError(err)
	}

	srv.publishLedgerEvent(ctx, ledger, balance)

	return balance, nil
}

// Pay locks the card, refuses when the balance does not cover amount, then debits it.
// Two concurrent payments on one card serialize on the row lock.
func (srv *walletService) Pay(ctx context.Context, input usecase.TransitOperationInput) (decimal.Decimal, error) {
	if !input.Amount.IsPositive() {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("amount must be greater than zero")
	}

	var (
		balance decimal.Decimal
		ledger  *entity.TransitTransaction
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cards := repoFactory.TransitCardRepo()

		card, err := cards.FindByIDForUpdate(ctx, input.CardID)
		if err != nil {
			return err
		}
		if err := checkOwnership(ctx, srv.log(ctx), transitCardResource, card.ID, card.UserID, input.UserID); err != nil {
			return err
		}
		if card.Balance.LessThan(input.Amount) {
			return domainerrors.ErrInsufficientFunds
		}

		if balance, err = cards.AdjustBalance(ctx, card.ID, input.Amount.Neg()); err != nil {
			return err
		}
		ledger = entity.NewPaymentTransaction(card.ID, input.Amount)

		return cards.AppendTransaction(ctx, ledger)
	})
	if err != nil {
		return decimal.Zero, translateRepositoryError(err)
	}

	srv.publishLedgerEvent(ctx, ledger, balance)

	return balance, nil
}

// AddBankCard links a bank card and applies the issuer bonus.
func (srv *walletService) AddBankCard(ctx context.Context, input usecase.AddBankCardInput) (*entity.BankCard, error) {
	isSber, points := rules.ClassifyBankCard(input.HolderName, input.BankName)

	card := &entity.BankCard{
		UserID:      input.UserID,
		CardNumber:  input.CardNumber,
		HolderName:  input.HolderName,
		ExpireDate:  input.ExpireDate,
		BankName:    input.BankName,
		IsSber:      isSber,
		SberSpasibo: points,
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.BankCardRepo().Create(ctx, card)
	}); err != nil {
		return nil, translateRepositoryError(err)
	}

	return card, nil
}

// publishLedgerEvent runs after commit. A failure is logged and never reaches the caller.
func (srv *walletService) publishLedgerEvent(ctx context.Context, ledger *entity.TransitTransaction, balance decimal.Decimal) {
	event := &service.TransitLedgerEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		CardID:     ledger.CardID,
		Type:       string(ledger.Type),
		Amount:     ledger.Amount.InexactFloat64(),
		Balance:    balance.InexactFloat64(),
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishTransitLedgerEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish transit ledger event",
			slog.Int64("cardID", ledger.CardID),
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
