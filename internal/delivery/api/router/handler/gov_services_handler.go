package handler

import (
	"citycard/internal/delivery/api/response"
	"citycard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GovServicesHandler serves the gosuslugi action.
type GovServicesHandler struct {
	govServicesUC usecase.GovServicesUsecase
}

// NewGovServicesHandler is the constructor for GovServicesHandler
func NewGovServicesHandler(govServicesUC usecase.GovServicesUsecase) *GovServicesHandler {
	return &GovServicesHandler{govServicesUC: govServicesUC}
}

type govServicesResponse struct {
	Taxes    []taxView     `json:"taxes"`
	Benefits []benefitView `json:"benefits"`
}

// GetGovServices handles the gosuslugi action.
func (h *GovServicesHandler) GetGovServices(c echo.Context) error {
	var req UserIDQuery
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.govServicesUC.GetGovServices(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}

	return response.OK(c, govServicesResponse{
		Taxes:    mapViews(output.Taxes, toTaxView),
		Benefits: mapViews(output.Benefits, toBenefitView),
	})
}
