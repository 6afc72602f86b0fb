//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/google/wire"

	authService "frontdesk/internal/domains/auth/service"
	bookingIdgen "frontdesk/internal/domains/booking/idgen"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	brandingRepository "frontdesk/internal/domains/branding/repository"
	brandingService "frontdesk/internal/domains/branding/service"
	cleaningRepository "frontdesk/internal/domains/cleaning/repository"
	cleaningService "frontdesk/internal/domains/cleaning/service"
	customerRepository "frontdesk/internal/domains/customer/repository"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	userRepository "frontdesk/internal/domains/user/repository"
	authHandler "frontdesk/internal/handlers/auth"
	bookingHandler "frontdesk/internal/handlers/booking"
	brandingHandler "frontdesk/internal/handlers/branding"
	cleaningHandler "frontdesk/internal/handlers/cleaning"
	roomHandler "frontdesk/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var cleaningDomain = wire.NewSet(
	cleaningRepository.New,
	cleaningService.New,
)

var bookingDomain = wire.NewSet(
	customerRepository.New,
	bookingRepository.New,
	bookingRepository.NewAssignment,
	bookingIdgen.New,
	bookingService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var brandingDomain = wire.NewSet(
	brandingRepository.New,
	brandingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	cleaningDomain,
	bookingDomain,
	authDomain,
	brandingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	cleaningHandler.New,
	brandingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
