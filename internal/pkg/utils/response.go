package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/besttime-service/internal/pkg/errors"
)

// Response - единый конверт ответа API.
// data:null вместе с success:false означает "данных нет", а не ошибку сервера.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

func SendSuccess(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendNotFound отдаёт 404 в том же конверте, что и успешный ответ
func SendNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
