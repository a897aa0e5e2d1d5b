package package_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ascendops/internal/repositories"
	"ascendops/internal/services"
)

var Module = fx.Provide(
	providePackageRepo, providePackageService)

func providePackageRepo(db *gorm.DB) repositories.PackageRepository {
	return repositories.NewPackageRepository(db)
}

func providePackageService(packageRepo repositories.PackageRepository) services.PackageServiceInterface {
	return services.NewPackageService(packageRepo)
}
