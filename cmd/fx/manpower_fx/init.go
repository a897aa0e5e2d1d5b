package manpower_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ascendops/internal/repositories"
	"ascendops/internal/services"
)

var Module = fx.Provide(
	provideManpowerRepo, provideManpowerService)

func provideManpowerRepo(db *gorm.DB) repositories.ManpowerRepository {
	return repositories.NewManpowerRepository(db)
}

func provideManpowerService(
	manpowerRepo repositories.ManpowerRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
) services.ManpowerServiceInterface {
	return services.NewManpowerService(manpowerRepo, eventRepo, userRepo)
}
