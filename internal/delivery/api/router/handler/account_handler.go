// Package handler contains the operations behind each dispatched action.
package handler

import (
	"log/slog"

	"citycard/internal/delivery/api/response"
	"citycard/internal/domain/entity"
	"citycard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves registration, login and profile actions.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// RegisterRequest is the body of the register action.
type RegisterRequest struct {
	Phone      string `json:"phone" validate:"required"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	MiddleName string `json:"middleName"`
	BirthDate  string `json:"birthDate" validate:"required,datetime=2006-01-02"`
}

// LoginRequest is the body of the login action.
type LoginRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// UserIDQuery reads the userId query parameter.
type UserIDQuery struct {
	UserID int64 `query:"userId" validate:"required"`
}

// UpdateUserRequest is the body of update-user. Absent fields are left untouched.
type UpdateUserRequest struct {
	UserID     int64   `json:"userId" validate:"required"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	MiddleName *string `json:"middleName"`
	BirthDate  *string `json:"birthDate" validate:"omitnil,datetime=2006-01-02"`
	PhotoURL   *string `json:"photoUrl"`
}

type registerResponse struct {
	UserID  int64 `json:"userId"`
	Success bool  `json:"success"`
}

type userView struct {
	UserID      int64   `json:"userId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	MiddleName  string  `json:"middleName"`
	BirthDate   string  `json:"birthDate"`
	Balance     float64 `json:"balance"`
	BonusPoints int     `json:"bonusPoints"`
	PhotoURL    *string `json:"photoUrl"`
	Phone       string  `json:"phone"`
}

type userDataResponse struct {
	userView
	Passports   []passportView    `json:"passports"`
	Podorozhnik []transitCardView `json:"podorozhnik"`
	BankCards   []bankCardView    `json:"bankCards"`
	Vehicles    []vehicleView     `json:"vehicles"`
	Intercoms   []intercomView    `json:"intercoms"`
	Widgets     []widgetView      `json:"widgets"`
	WeatherCity *string           `json:"weatherCity"`
}

// Register handles the register action.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	birthDate, err := parseDate("birthDate", req.BirthDate)
	if err != nil {
		return err
	}

	user, err := h.accountUC.Register(c.Request().Context(), usecase.RegisterInput{
		Phone:      req.Phone,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		BirthDate:  birthDate,
	})
	if err != nil {
		return err
	}

	return response.OK(c, registerResponse{UserID: user.ID, Success: true})
}

// Login handles the login action. The phone number is the only identity proof.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.Login(c.Request().Context(), req.Phone)
	if err != nil {
		return err
	}

	return response.OK(c, toUserView(user))
}

// GetUserData handles the user-data action.
func (h *AccountHandler) GetUserData(c echo.Context) error {
	var req UserIDQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.GetUserData(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}

	return response.OK(c, userDataResponse{
		userView:    toUserView(output.User),
		Passports:   mapViews(output.Passports, toPassportView),
		Podorozhnik: mapViews(output.TransitCards, toTransitCardView),
		BankCards:   mapViews(output.BankCards, toBankCardView),
		Vehicles:    mapViews(output.Vehicles, toVehicleView),
		Intercoms:   mapViews(output.Intercoms, toIntercomView),
		Widgets:     mapViews(output.Widgets, toWidgetView),
		WeatherCity: output.WeatherCity,
	})
}

// UpdateUser handles the update-user action.
func (h *AccountHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	update := entity.UserProfileUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		PhotoURL:   req.PhotoURL,
	}
	if req.BirthDate != nil {
		birthDate, err := parseDate("birthDate", *req.BirthDate)
		if err != nil {
			return err
		}
		update.BirthDate = &birthDate
	}

	if err := h.accountUC.UpdateUser(c.Request().Context(), req.UserID, update); err != nil {
		return err
	}

	return response.Success(c)
}

func toUserView(user *entity.User) userView {
	return userView{
		UserID:      user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		MiddleName:  user.MiddleName,
		BirthDate:   response.Date(user.BirthDate),
		Balance:     response.Money(user.Balance),
		BonusPoints: user.BonusPoints,
		PhotoURL:    response.NullableString(user.PhotoURL),
		Phone:       user.Phone,
	}
}
