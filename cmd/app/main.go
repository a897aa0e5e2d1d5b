package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ascendops/cmd/fx/account_fx"
	"ascendops/cmd/fx/booking_fx"
	"ascendops/cmd/fx/controllers_fx"
	"ascendops/cmd/fx/dashboard"
	"ascendops/cmd/fx/db_fx"
	"ascendops/cmd/fx/edittask_fx"
	"ascendops/cmd/fx/event_fx"
	"ascendops/cmd/fx/manpower_fx"
	"ascendops/cmd/fx/package_fx"
	"ascendops/cmd/fx/sdcard_fx"
	"ascendops/internal/api/controllers"
	"ascendops/internal/config"
	"ascendops/internal/infra"
	"ascendops/pkg/middleware"
	"ascendops/pkg/utils"
)

func main() {
	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		event_fx.Module,
		package_fx.Module,
		booking_fx.Module,
		sdcard_fx.Module,
		manpower_fx.Module,
		edittask_fx.Module,
		dashboard.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	utils.ConfigureJWT(cfg.JWTSecret)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	userController *controllers.UserController,
	eventController *controllers.EventController,
	packageController *controllers.PackageController,
	bookingController *controllers.BookingController,
	sdCardController *controllers.SdCardController,
	manpowerController *controllers.ManpowerController,
	editTaskController *controllers.EditTaskController,
	dashboardController *controllers.DashboardController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		authController,
		userController,
		eventController,
		packageController,
		bookingController,
		sdCardController,
		manpowerController,
		editTaskController,
		dashboardController,
		healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	eventController *controllers.EventController,
	packageController *controllers.PackageController,
	bookingController *controllers.BookingController,
	sdCardController *controllers.SdCardController,
	manpowerController *controllers.ManpowerController,
	editTaskController *controllers.EditTaskController,
	dashboardController *controllers.DashboardController,
	healthController *controllers.HealthController) {

	r.GET("/healthz", healthController.Healthz)

	authGroup := r.Group("/auth")
	authGroup.POST("/login", authController.Login)

	// Everything below requires a verified token. Role checks live in
	// the services, not here.
	api := r.Group("/")
	api.Use(middleware.JWTAuthMiddleware())

	api.GET("/dashboard/stats", dashboardController.GetDashboard)

	api.GET("/users", userController.ListUsers)
	api.POST("/users", userController.CreateUser)
	api.POST("/users/:id/toggle-active", userController.ToggleActive)
	api.POST("/users/:id/role", userController.ChangeRole)

	api.GET("/events", eventController.ListEvents)
	api.POST("/events", eventController.CreateEvent)
	api.GET("/events/:id", eventController.GetEvent)

	api.GET("/sessions", eventController.ListSessions)
	api.POST("/sessions", eventController.CreateSession)
	api.GET("/sessions/:id/roster", bookingController.SessionRoster)
	api.GET("/sessions/:id/roster.csv", bookingController.SessionRosterCSV)

	api.GET("/packages", packageController.ListPackages)
	api.POST("/packages", packageController.CreatePackage)

	api.GET("/bookings", bookingController.ListBookings)
	api.POST("/bookings", bookingController.CreateBooking)

	api.GET("/sd-cards", sdCardController.ListCards)
	api.POST("/sd-cards", sdCardController.CreateCard)
	api.GET("/sd-cards/open-logs", sdCardController.ListOpenLogs)
	api.GET("/sd-cards/:id/qr", sdCardController.CardQRCode)
	api.POST("/sd-cards/checkout", sdCardController.Checkout)
	api.POST("/sd-cards/return", sdCardController.Return)

	api.GET("/manpower", manpowerController.ListAllocations)
	api.POST("/manpower", manpowerController.Allocate)

	api.GET("/edit-tasks", editTaskController.ListTasks)
	api.POST("/edit-tasks", editTaskController.CreateTask)
	api.PATCH("/edit-tasks/:id", editTaskController.UpdateTask)
}
