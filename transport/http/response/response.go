package response

import (
	"encoding/json"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
	"net/http"

	"github.com/rs/zerolog/log"
)

type Error struct {
	Error string `json:"error" example:"Missing required fields."`
}

type Success struct {
	Success bool `json:"success" example:"true"`
}

type Health struct {
	Status string `json:"status" example:"ok"`
}

// WithJSON sends payload as the response body
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithSuccess sends {"success": true}
func WithSuccess(writer http.ResponseWriter) {
	response(writer, http.StatusOK, Success{Success: true})
}

// WithError sends the failure message with its code. Server side failures never leak their detail.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("code", code).Msg("request failed")

		errMsg = constant.ResponseErrorInternal
	}

	response(writer, code, Error{Error: errMsg})
}

// WithErrorMessage sends an error body with the given code
func WithErrorMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Error{Error: message})
}

// WithNotFound sends the default response for unknown paths
func WithNotFound(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusNotFound, constant.ResponseErrorNotFound)
}

// WithMethodNotAllowed sends the default response for a known path hit with an unsupported method
func WithMethodNotAllowed(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusMethodNotAllowed, constant.ResponseErrorMethodNotAllowed)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithErrorMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
