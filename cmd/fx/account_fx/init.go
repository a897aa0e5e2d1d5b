package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ascendops/internal/repositories"
	"ascendops/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAuthService, provideUserService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepository) services.AuthServiceInterface {
	return services.NewAuthService(userRepo)
}

func provideUserService(userRepo repositories.UserRepository) services.UserServiceInterface {
	return services.NewUserService(userRepo)
}
