package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"helpmap/internal/http/middleware"
)

const (
	statusSuccess = "success"
	statusError   = "error"
	statusOK      = "ok"
)

// statusPayload is the JSON body of every non-list response.
type statusPayload struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// writeStatus writes a {"status","message"} body with the given HTTP status.
// Error bodies carry the request id; messages never include internal error text.
func writeStatus(c *fiber.Ctx, code int, status, message string) error {
	res := statusPayload{Status: status, Message: message}
	if status == statusError {
		res.RequestID = middleware.RequestIDFromCtx(c)
	}
	return c.Status(code).JSON(res)
}

func writeError(c *fiber.Ctx, code int, message string) error {
	return writeStatus(c, code, statusError, message)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		switch code {
		case fiber.StatusBadRequest:
			return writeError(c, code, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, code, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, code, "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, code, "request body too large")
		default:
			log.WithFields(logrus.Fields{
				"request_id": middleware.RequestIDFromCtx(c),
				"path":       c.Path(),
			}).WithError(err).Error("unhandled error")
			return writeError(c, code, "internal server error")
		}
	}
}
