package event_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ascendops/internal/repositories"
	"ascendops/internal/services"
)

var Module = fx.Provide(
	provideEventRepo, provideEventService)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(eventRepo repositories.EventRepository) services.EventServiceInterface {
	return services.NewEventService(eventRepo)
}
