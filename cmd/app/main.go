package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/helper"
	"frontdesk/shared/logger"

	_ "frontdesk/docs"

	"github.com/rs/zerolog/log"
)

// @title						Front Desk API
// @version					1.0
// @description				Rooms, bookings, payment and cleaning status for the hotel front desk.
// @BasePath					/api
// @accept						json
// @produce					json
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
