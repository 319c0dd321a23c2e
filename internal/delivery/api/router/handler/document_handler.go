package handler

import (
	"log/slog"

	"citycard/internal/delivery/api/response"
	"citycard/internal/domain/entity"
	"citycard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DocumentHandlerParams holds dependencies for DocumentHandler, injected by Fx.
type DocumentHandlerParams struct {
	fx.In

	DocumentUC usecase.DocumentUsecase
	Logger     *slog.Logger
}

// DocumentHandler serves passport, intercom and QR actions.
type DocumentHandler struct {
	documentUC usecase.DocumentUsecase
	logger     *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler
func NewDocumentHandler(params DocumentHandlerParams) *DocumentHandler {
	return &DocumentHandler{
		documentUC: params.DocumentUC,
		logger:     params.Logger,
	}
}

// AddPassportRequest is the body of add-passport.
type AddPassportRequest struct {
	UserID int64  `json:"userId" validate:"required"`
	Series string `json:"series" validate:"required"`
	Number string `json:"number" validate:"required"`
	INN    string `json:"inn"`
}

// AddIntercomRequest is the body of add-intercom.
type AddIntercomRequest struct {
	UserID    int64  `json:"userId" validate:"required"`
	City      string `json:"city" validate:"required"`
	Street    string `json:"street" validate:"required"`
	House     string `json:"house" validate:"required"`
	Apartment string `json:"apartment" validate:"required"`
	Entrance  string `json:"entrance"`
	Brand     string `json:"brand" validate:"required"`
	Provider  string `json:"provider" validate:"required"`
	ImageURL  string `json:"imageUrl"`
}

// PassportQRQuery reads the passport-qr query parameters.
type PassportQRQuery struct {
	UserID     int64 `query:"userId" validate:"required"`
	PassportID int64 `query:"passportId" validate:"required"`
}

// AddPassport handles the add-passport action.
func (h *DocumentHandler) AddPassport(c echo.Context) error {
	var req AddPassportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	passport := &entity.Passport{
		UserID: req.UserID,
		Series: req.Series,
		Number: req.Number,
		INN:    req.INN,
	}
	if err := h.documentUC.AddPassport(c.Request().Context(), passport); err != nil {
		return err
	}

	return response.Created(c, passport.ID)
}

// AddIntercom handles the add-intercom action.
func (h *DocumentHandler) AddIntercom(c echo.Context) error {
	var req AddIntercomRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	intercom := &entity.Intercom{
		UserID:    req.UserID,
		City:      req.City,
		Street:    req.Street,
		House:     req.House,
		Apartment: req.Apartment,
		Entrance:  req.Entrance,
		Brand:     req.Brand,
		Provider:  req.Provider,
		ImageURL:  req.ImageURL,
	}
	if err := h.documentUC.AddIntercom(c.Request().Context(), intercom); err != nil {
		return err
	}

	return response.Created(c, intercom.ID)
}

// IdentityQR handles the identity-qr action.
func (h *DocumentHandler) IdentityQR(c echo.Context) error {
	var req UserIDQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	png, err := h.documentUC.IdentityQR(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}

	return response.PNG(c, png)
}

// PassportQR handles the passport-qr action.
func (h *DocumentHandler) PassportQR(c echo.Context) error {
	var req PassportQRQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	png, err := h.documentUC.PassportQR(c.Request().Context(), req.UserID, req.PassportID)
	if err != nil {
		return err
	}

	return response.PNG(c, png)
}
