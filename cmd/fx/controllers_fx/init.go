package controllers_fx

import (
	"go.uber.org/fx"

	"ascendops/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewEventController),
	fx.Provide(controllers.NewPackageController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewSdCardController),
	fx.Provide(controllers.NewManpowerController),
	fx.Provide(controllers.NewEditTaskController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewHealthController))
