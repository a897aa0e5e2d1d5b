package sdcard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ascendops/internal/config"
	"ascendops/internal/repositories"
	"ascendops/internal/services"
)

var Module = fx.Provide(
	provideSdCardRepo, provideSdCardService)

func provideSdCardRepo(db *gorm.DB) repositories.SdCardRepository {
	return repositories.NewSdCardRepository(db)
}

func provideSdCardService(
	cardRepo repositories.SdCardRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
	cfg *config.Config,
) services.SdCardServiceInterface {
	return services.NewSdCardService(cardRepo, eventRepo, userRepo, cfg.BaseURL)
}
