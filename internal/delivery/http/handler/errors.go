package handler

import (
	"errors"

	"kaamwala/internal/delivery/http/middleware"
	"kaamwala/internal/infrastructure/marketplace"
	"kaamwala/internal/pkg/response"
	"kaamwala/internal/pkg/validate"
	"kaamwala/internal/session"
	"kaamwala/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// LoginRedirect is sent with every 401 so that clients send the user back to
// the login page.
const LoginRedirect = "/login"

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *marketplace.APIError
	switch {
	case errors.Is(err, usecase.ErrInvalidImage):
		return middleware.NewAppError(fiber.StatusBadRequest, "Please upload an image file of at most 5 MB", fieldErrors(err), err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageValidationFailed, fieldErrors(err), err)
	case errors.Is(err, usecase.ErrSubmitInProgress):
		return middleware.NewAppError(fiber.StatusConflict, response.MessageSubmitInProgress, nil, err)
	case errors.Is(err, marketplace.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageSessionExpired, loginRedirect(), err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", loginRedirect(), err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, nil, err)
	case errors.Is(err, session.ErrInvalidSession):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, loginRedirect(), err)
	case errors.Is(err, marketplace.ErrNetwork):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, marketplace.MessageNetwork, nil, err)
	case errors.As(err, &apiErr):
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = fiber.StatusBadGateway
		}
		return middleware.NewAppError(status, apiErr.Message, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func loginRedirect() map[string]string {
	return map[string]string{"redirect": LoginRedirect}
}

func fieldErrors(err error) []fieldErrorResponse {
	var fields validate.Errors
	if !errors.As(err, &fields) {
		return nil
	}
	out := make([]fieldErrorResponse, 0, len(fields))
	for _, fe := range fields {
		out = append(out, fieldErrorResponse{Field: fe.Field, Rule: fe.Rule, Message: fe.Message()})
	}
	return out
}

func badRequest(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
}
