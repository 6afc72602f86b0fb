package router

import (
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/branding"
	"frontdesk/internal/handlers/cleaning"
	"frontdesk/internal/handlers/room"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Room     room.Handler
	Booking  booking.Handler
	Cleaning cleaning.Handler
	Branding branding.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain onto router, which is already scoped to the base path.
func (r *Router) SetupRoutes(router chi.Router, basePath string) {
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(basePath+"/swagger/doc.json")))

	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Room.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Cleaning.Router(router)
	r.DomainHandlers.Branding.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
