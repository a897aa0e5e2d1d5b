package db_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"ascendops/internal/config"
	"ascendops/internal/infra"
)

var Module = fx.Provide(
	provideConfig, provideDB)

func provideConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	return cfg
}

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
