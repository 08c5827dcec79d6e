package util

import (
	"errors"

	"github.com/fadilmartias/cover-letter-assistant/internal/apperr"
	"github.com/fadilmartias/cover-letter-assistant/internal/config"
	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Interner Serverfehler"

type OrderedErrorResponse struct {
	Error      string            `json:"error"`
	Kind       apperr.Kind       `json:"kind"`
	DevMessage string            `json:"dev_message,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
}

// BuildErrorResponse maps err to a status code and body. Details beyond the
// user-facing message are only filled in when debug is set.
func BuildErrorResponse(err error, debug bool) (int, OrderedErrorResponse) {
	var (
		appErr   *apperr.Error
		fiberErr *fiber.Error
	)
	switch {
	case errors.As(err, &appErr):
		resp := OrderedErrorResponse{Error: appErr.Message, Kind: appErr.Kind}
		if debug {
			resp.DevMessage = err.Error()
			resp.Fields = appErr.Fields
		}
		return apperr.HTTPStatus(appErr.Kind), resp
	case errors.As(err, &fiberErr):
		kind := apperr.KindInternal
		if fiberErr.Code < fiber.StatusInternalServerError {
			kind = apperr.KindInvalidInput
		}
		return fiberErr.Code, OrderedErrorResponse{Error: fiberErr.Message, Kind: kind}
	default:
		resp := OrderedErrorResponse{Error: internalErrorMessage, Kind: apperr.KindInternal}
		if debug && err != nil {
			resp.DevMessage = err.Error()
		}
		return fiber.StatusInternalServerError, resp
	}
}

// ErrorResponse writes the JSON error body for err.
func ErrorResponse(c *fiber.Ctx, err error) error {
	code, resp := BuildErrorResponse(err, !config.LoadAppConfig().IsProduction())
	return c.Status(code).JSON(resp)
}

// ErrorHandler is installed as fiber.Config.ErrorHandler so errors returned
// from handlers and middleware share one body shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return ErrorResponse(c, err)
}
