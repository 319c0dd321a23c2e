package handler

import (
	"log/slog"

	"citycard/internal/delivery/api/response"
	"citycard/internal/domain/entity"
	"citycard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VehicleHandlerParams holds dependencies for VehicleHandler, injected by Fx.
type VehicleHandlerParams struct {
	fx.In

	VehicleUC usecase.VehicleUsecase
	Logger    *slog.Logger
}

// VehicleHandler serves vehicle and fine actions.
type VehicleHandler struct {
	vehicleUC usecase.VehicleUsecase
	logger    *slog.Logger
}

// NewVehicleHandler is the constructor for VehicleHandler
func NewVehicleHandler(params VehicleHandlerParams) *VehicleHandler {
	return &VehicleHandler{
		vehicleUC: params.VehicleUC,
		logger:    params.Logger,
	}
}

// AddVehicleRequest is the body of add-vehicle.
type AddVehicleRequest struct {
	UserID      int64  `json:"userId" validate:"required"`
	PlateNumber string `json:"plateNumber" validate:"required"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        *int   `json:"year"`
}

// GetFinesQuery reads the get-fines query parameters. userId is optional and parsed separately.
type GetFinesQuery struct {
	VehicleID int64 `query:"vehicleId" validate:"required"`
}

type finesResponse struct {
	Fines []fineView `json:"fines"`
}

// AddVehicle handles the add-vehicle action. Generated fines are not echoed back.
func (h *VehicleHandler) AddVehicle(c echo.Context) error {
	var req AddVehicleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	vehicle := &entity.Vehicle{
		UserID:      req.UserID,
		PlateNumber: req.PlateNumber,
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
	}
	if _, err := h.vehicleUC.AddVehicle(c.Request().Context(), vehicle); err != nil {
		return err
	}

	return response.Created(c, vehicle.ID)
}

// GetFines handles the get-fines action.
func (h *VehicleHandler) GetFines(c echo.Context) error {
	var req GetFinesQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	userID, err := optionalInt64(c, "userId")
	if err != nil {
		return err
	}

	fines, err := h.vehicleUC.GetFines(c.Request().Context(), req.VehicleID, userID)
	if err != nil {
		return err
	}

	return response.OK(c, finesResponse{Fines: mapViews(fines, toFineView)})
}
