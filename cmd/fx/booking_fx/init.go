package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ascendops/internal/repositories"
	"ascendops/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	eventRepo repositories.EventRepository,
	packageRepo repositories.PackageRepository,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, eventRepo, packageRepo)
}
