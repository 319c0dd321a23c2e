package usecase

import (
	"context"

	"citycard/internal/domain/entity"
)

// DashboardUsecase manages the dashboard layout.
type DashboardUsecase interface {
	// SaveWidgets replaces the user's widget set, keeping the given order.
	SaveWidgets(ctx context.Context, userID int64, widgets []*entity.WidgetSetting) error
}
