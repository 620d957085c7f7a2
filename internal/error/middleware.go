package middleware

import (
	"errors"

	"github.com/captainwycliffe/farmbetter-user-management-system/internal/constants"
	"github.com/captainwycliffe/farmbetter-user-management-system/internal/service"
	"github.com/gofiber/fiber/v2"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(Response{
				Code:    constants.ErrCodeInternalError,
				Message: fiberErr.Message,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(Response{
			Code:    constants.ErrCodeInternalError,
			Message: constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == 500 && err.Code != constants.ErrCodeInternalError {
		errorCode = constants.ErrCodeInternalError
	}

	return c.Status(status).JSON(Response{
		Code:    errorCode,
		Message: constants.GetErrorMessage(errorCode),
	})
}
