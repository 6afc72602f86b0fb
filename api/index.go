package handler

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	_ "frontdesk/docs"
)

var (
	service     http.Handler
	serviceOnce sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	serviceOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		log.Info().Msg("Initializing serverless handler")

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
