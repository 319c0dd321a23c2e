package impl

import (
	"context"

	"citycard/internal/domain/entity"
	"citycard/internal/domain/repository"
	"citycard/internal/usecase"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	txManager repository.TransactionManager
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(txManager repository.TransactionManager) usecase.DashboardUsecase {
	return &dashboardService{txManager: txManager}
}

func (srv *dashboardService) SaveWidgets(ctx context.Context, userID int64, widgets []*entity.WidgetSetting) error {
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PreferenceRepo().ReplaceWidgets(ctx, userID, widgets)
	}); err != nil {
		return translateRepositoryError(err)
	}

	return nil
}
