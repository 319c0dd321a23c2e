package handler

import (
	"net/http"
	"testing"

	"citycard/internal/domain/entity"
	domainerrors "citycard/internal/domain/errors"
	"citycard/internal/errors"
	mockUC "citycard/internal/mocks/usecase"
	"citycard/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWalletHandler(t *testing.T) (*WalletHandler, *mockUC.MockWalletUsecase) {
	walletUC := mockUC.NewMockWalletUsecase(t)

	return NewWalletHandler(WalletHandlerParams{WalletUC: walletUC, Logger: newDiscardLogger()}), walletUC
}

func TestWalletHandler_TopUpDefaultsAmount(t *testing.T) {
	h, walletUC := newWalletHandler(t)

	walletUC.EXPECT().TopUp(mock.Anything, mock.MatchedBy(func(in usecase.TransitOperationInput) bool {
		return in.CardID == 9 && in.UserID == nil && in.Amount.Equal(decimal.NewFromInt(500))
	})).Return(decimal.RequireFromString("600.00"), nil).Once()

	c, rec := newContext(http.MethodPost, "/?action=podorozhnik-topup", `{"cardId":9}`)
	require.NoError(t, h.TopUp(c))

	assert.JSONEq(t, `{"newBalance":600,"success":true}`, rec.Body.String())
}

func TestWalletHandler_PayWithOwnerAndAmount(t *testing.T) {
	h, walletUC := newWalletHandler(t)

	walletUC.EXPECT().Pay(mock.Anything, mock.MatchedBy(func(in usecase.TransitOperationInput) bool {
		return in.CardID == 9 &&
			in.UserID != nil && *in.UserID == 2 &&
			in.Amount.Equal(decimal.RequireFromString("45.50"))
	})).Return(decimal.RequireFromString("54.50"), nil).Once()

	c, rec := newContext(http.MethodPost, "/?action=podorozhnik-pay", `{"cardId":9,"userId":2,"amount":45.50}`)
	require.NoError(t, h.Pay(c))

	assert.JSONEq(t, `{"newBalance":54.5,"success":true}`, rec.Body.String())
}

func TestWalletHandler_PayRequiresCard(t *testing.T) {
	h, _ := newWalletHandler(t)

	c, _ := newContext(http.MethodPost, "/?action=podorozhnik-pay", `{"amount":10}`)
	err := h.Pay(c)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestWalletHandler_AddTransitCard(t *testing.T) {
	h, walletUC := newWalletHandler(t)

	walletUC.EXPECT().AddTransitCard(mock.Anything, mock.MatchedBy(func(in usecase.AddTransitCardInput) bool {
		return in.UserID == 1 && in.CardNumber == "" && in.Balance.IsZero()
	})).Return(&entity.TransitCard{ID: 11, UserID: 1, CardNumber: "1234-5678"}, nil).Once()

	c, rec := newContext(http.MethodPost, "/?action=add-podorozhnik", `{"userId":1}`)
	require.NoError(t, h.AddTransitCard(c))

	assert.JSONEq(t, `{"id":11,"cardNumber":"1234-5678","success":true}`, rec.Body.String())
}

func TestWalletHandler_AddBankCard(t *testing.T) {
	h, walletUC := newWalletHandler(t)

	walletUC.EXPECT().AddBankCard(mock.Anything, usecase.AddBankCardInput{
		UserID:     1,
		CardNumber: "2202 0000 0000 0001",
		HolderName: "IVAN PETROV",
		ExpireDate: "12/27",
		BankName:   "СберБанк",
	}).Return(&entity.BankCard{ID: 4, IsSber: true, SberSpasibo: 1000}, nil).Once()

	c, rec := newContext(http.MethodPost, "/?action=add-bank-card",
		`{"userId":1,"cardNumber":"2202 0000 0000 0001","holderName":"IVAN PETROV","expireDate":"12/27","bankName":"СберБанк"}`)
	require.NoError(t, h.AddBankCard(c))

	assert.JSONEq(t, `{"id":4,"isSber":true,"sberSpasibo":1000,"success":true}`, rec.Body.String())
}
