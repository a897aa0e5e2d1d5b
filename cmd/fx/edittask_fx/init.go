package edittask_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ascendops/internal/repositories"
	"ascendops/internal/services"
)

var Module = fx.Provide(
	provideEditTaskRepo, provideEditTaskService)

func provideEditTaskRepo(db *gorm.DB) repositories.EditTaskRepository {
	return repositories.NewEditTaskRepository(db)
}

func provideEditTaskService(
	taskRepo repositories.EditTaskRepository,
	bookingRepo repositories.BookingRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
) services.EditTaskServiceInterface {
	return services.NewEditTaskService(taskRepo, bookingRepo, eventRepo, userRepo)
}
