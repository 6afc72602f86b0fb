package branding

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/branding/model/dto"
	"frontdesk/internal/domains/branding/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Branding
	otel    otel.Otel
}

func New(service service.Branding, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/branding/logo", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetLogo)
		routerGroup.Put("/", handler.SetLogo)
		routerGroup.Delete("/", handler.DeleteLogo)
	})
}

// GetLogo returns the shared desk logo.
// @Summary Get logo
// @Description URL of the current logo, null when none is set.
// @Tags Branding
// @Produce json
// @Success 200 {object} dto.LogoResponse
// @Failure 500 {object} response.Error
// @Router /branding/logo [get]
func (handler *Handler) GetLogo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLogo")
	defer scope.End()

	res, err := handler.service.GetLogo(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get logo")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SetLogo uploads a new logo.
// @Summary Set logo
// @Description Upload a logo given as a base64 data URL.
// @Tags Branding
// @Accept json
// @Produce json
// @Param request body dto.SetLogoRequest true "Logo"
// @Success 200 {object} dto.SetLogoResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /branding/logo [put]
func (handler *Handler) SetLogo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetLogo")
	defer scope.End()

	req := dto.SetLogoRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode logo")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SetLogo(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set logo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Logo uploaded successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteLogo removes the logo.
// @Summary Delete logo
// @Tags Branding
// @Produce json
// @Success 200 {object} response.Success
// @Failure 500 {object} response.Error
// @Router /branding/logo [delete]
func (handler *Handler) DeleteLogo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteLogo")
	defer scope.End()

	if err := handler.service.DeleteLogo(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete logo")

		response.WithError(writer, err)

		return
	}

	response.WithSuccess(writer)
}
