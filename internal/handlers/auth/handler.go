package auth

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/internal/domains/auth/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/login", handler.Login)
}

// Login checks operator credentials
// @Summary Login
// @Description Check a username and password. No session or token is issued.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} dto.LoginResponse
// @Failure 500 {object} response.Error
// @Router /login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.DecodeOrZero(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode login request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Login(ctx, req); err != nil {
		scope.TraceError(err)

		if failure.IsCode(err, http.StatusUnauthorized) {
			response.WithJSON(w, http.StatusUnauthorized, dto.LoginResponse{Success: false, Error: err.Error()})

			return
		}

		log.Error().Err(err).Msg("failed to login user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(w, http.StatusOK, dto.LoginResponse{Success: true})
}
