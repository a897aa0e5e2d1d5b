package dashboard

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ascendops/internal/repositories"
	"ascendops/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(
	dashboardRepo repositories.DashboardRepository,
	eventRepo repositories.EventRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo, eventRepo)
}
