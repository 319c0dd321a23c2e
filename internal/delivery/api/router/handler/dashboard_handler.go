package handler

import (
	"citycard/internal/delivery/api/response"
	"citycard/internal/domain/entity"
	"citycard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the widgets action.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// WidgetRequest is one slot of the widgets body.
type WidgetRequest struct {
	WidgetType string `json:"widgetType" validate:"required"`
	IsVisible  bool   `json:"isVisible"`
	Position   int    `json:"position"`
}

// SaveWidgetsRequest is the body of widgets.
type SaveWidgetsRequest struct {
	UserID  int64           `json:"userId" validate:"required"`
	Widgets []WidgetRequest `json:"widgets" validate:"dive"`
}

// SaveWidgets handles the widgets action. An empty list clears the layout.
func (h *DashboardHandler) SaveWidgets(c echo.Context) error {
	var req SaveWidgetsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	widgets := make([]*entity.WidgetSetting, 0, len(req.Widgets))
	for _, w := range req.Widgets {
		widgets = append(widgets, &entity.WidgetSetting{
			UserID:     req.UserID,
			WidgetType: w.WidgetType,
			IsVisible:  w.IsVisible,
			Position:   w.Position,
		})
	}

	if err := h.dashboardUC.SaveWidgets(c.Request().Context(), req.UserID, widgets); err != nil {
		return err
	}

	return response.Success(c)
}
