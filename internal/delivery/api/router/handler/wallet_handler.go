package handler

import (
	"log/slog"

	"citycard/internal/delivery/api/response"
	"citycard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Amounts applied when a transit request names none.
//
//nolint:gochecknoglobals
var (
	defaultTopUpAmount   = decimal.NewFromInt(500)
	defaultPaymentAmount = decimal.NewFromInt(60)
)

// WalletHandlerParams holds dependencies for WalletHandler, injected by Fx.
type WalletHandlerParams struct {
	fx.In

	WalletUC usecase.WalletUsecase
	Logger   *slog.Logger
}

// WalletHandler serves transit card and bank card actions.
type WalletHandler struct {
	walletUC usecase.WalletUsecase
	logger   *slog.Logger
}

// NewWalletHandler is the constructor for WalletHandler
func NewWalletHandler(params WalletHandlerParams) *WalletHandler {
	return &WalletHandler{
		walletUC: params.WalletUC,
		logger:   params.Logger,
	}
}

// AddTransitCardRequest is the body of add-podorozhnik.
type AddTransitCardRequest struct {
	UserID     int64            `json:"userId" validate:"required"`
	CardNumber string           `json:"cardNumber"`
	Balance    *decimal.Decimal `json:"balance"`
}

// TransitOperationRequest is the body of podorozhnik-topup and podorozhnik-pay.
type TransitOperationRequest struct {
	CardID int64            `json:"cardId" validate:"required"`
	UserID *int64           `json:"userId"`
	Amount *decimal.Decimal `json:"amount"`
}

// AddBankCardRequest is the body of add-bank-card.
type AddBankCardRequest struct {
	UserID     int64  `json:"userId" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required"`
	HolderName string `json:"holderName" validate:"required"`
	ExpireDate string `json:"expireDate" validate:"required"`
	BankName   string `json:"bankName" validate:"required"`
}

type addTransitCardResponse struct {
	ID         int64  `json:"id"`
	CardNumber string `json:"cardNumber"`
	Success    bool   `json:"success"`
}

type balanceResponse struct {
	NewBalance float64 `json:"newBalance"`
	Success    bool    `json:"success"`
}

type addBankCardResponse struct {
	ID          int64 `json:"id"`
	IsSber      bool  `json:"isSber"`
	SberSpasibo int   `json:"sberSpasibo"`
	Success     bool  `json:"success"`
}

// AddTransitCard handles the add-podorozhnik action.
func (h *WalletHandler) AddTransitCard(c echo.Context) error {
	var req AddTransitCardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	balance := decimal.Zero
	if req.Balance != nil {
		balance = *req.Balance
	}

	card, err := h.walletUC.AddTransitCard(c.Request().Context(), usecase.AddTransitCardInput{
		UserID:     req.UserID,
		CardNumber: req.CardNumber,
		Balance:    balance,
	})
	if err != nil {
		return err
	}

	return response.OK(c, addTransitCardResponse{
		ID:         card.ID,
		CardNumber: card.CardNumber,
		Success:    true,
	})
}

// TopUp handles the podorozhnik-topup action.
func (h *WalletHandler) TopUp(c echo.Context) error {
	input, err := h.bindTransitOperation(c, defaultTopUpAmount)
	if err != nil {
		return err
	}

	balance, err := h.walletUC.TopUp(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.OK(c, balanceResponse{NewBalance: response.Money(balance), Success: true})
}

// Pay handles the podorozhnik-pay action.
func (h *WalletHandler) Pay(c echo.Context) error {
	input, err := h.bindTransitOperation(c, defaultPaymentAmount)
	if err != nil {
		return err
	}

	balance, err := h.walletUC.Pay(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.OK(c, balanceResponse{NewBalance: response.Money(balance), Success: true})
}

// AddBankCard handles the add-bank-card action.
func (h *WalletHandler) AddBankCard(c echo.Context) error {
	var req AddBankCardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	card, err := h.walletUC.AddBankCard(c.Request().Context(), usecase.AddBankCardInput{
		UserID:     req.UserID,
		CardNumber: req.CardNumber,
		HolderName: req.HolderName,
		ExpireDate: req.ExpireDate,
		BankName:   req.BankName,
	})
	if err != nil {
		return err
	}

	return response.OK(c, addBankCardResponse{
		ID:          card.ID,
		IsSber:      card.IsSber,
		SberSpasibo: card.SberSpasibo,
		Success:     true,
	})
}

func (h *WalletHandler) bindTransitOperation(c echo.Context, defaultAmount decimal.Decimal) (usecase.TransitOperationInput, error) {
	var req TransitOperationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return usecase.TransitOperationInput{}, err
	}

	amount := defaultAmount
	if req.Amount != nil {
		amount = *req.Amount
	}

	return usecase.TransitOperationInput{
		CardID: req.CardID,
		UserID: req.UserID,
		Amount: amount,
	}, nil
}
