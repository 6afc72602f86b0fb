package cleaning

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/cleaning/model/dto"
	"frontdesk/internal/domains/cleaning/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CleaningStatus
	otel    otel.Otel
}

func New(service service.CleaningStatus, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cleaning_status", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCleaningStatuses)
		routerGroup.Put("/", handler.SetCleaningStatus)
	})
}

// GetCleaningStatuses returns the status of every room.
// @Summary List cleaning statuses
// @Description Map of room number to CLEAN or DIRTY.
// @Tags Cleaning
// @Produce json
// @Success 200 {object} dto.CleaningStatusResponse
// @Failure 500 {object} response.Error
// @Router /cleaning_status [get]
func (handler *Handler) GetCleaningStatuses(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCleaningStatuses")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cleaning statuses")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SetCleaningStatus marks a room clean or dirty.
// @Summary Set cleaning status
// @Description Set the cleaning status of one room.
// @Tags Cleaning
// @Accept json
// @Produce json
// @Param request body dto.SetCleaningStatusRequest true "Cleaning status"
// @Success 200 {object} response.Success
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /cleaning_status [put]
func (handler *Handler) SetCleaningStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetCleaningStatus")
	defer scope.End()

	req := dto.SetCleaningStatusRequest{}

	if err := validator.DecodeOrZero(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode cleaning status")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.SetStatus(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set cleaning status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Cleaning status updated successfully")

	response.WithSuccess(writer)
}
