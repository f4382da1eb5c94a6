package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"helpmap/internal/http/middleware"
	"helpmap/internal/service"
)

const (
	msgSubmitted     = "Help request submitted successfully"
	msgDeleted       = "Request deleted successfully"
	msgMissingFields = "All fields are required"
	msgBadCoords     = "Latitude and longitude must be numbers"
	msgForbidden     = "Request not found or not authorized to delete"
	msgNotFound      = "Request not found"
	msgDatabase      = "Database error"
)

// SubmitRequest godoc
// @Summary Submit a help request
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Name"
// @Param contact formData string true "Contact"
// @Param location formData string true "Location label"
// @Param latitude formData number true "Latitude"
// @Param longitude formData number true "Longitude"
// @Param message formData string true "Message"
// @Success 200 {object} statusPayload
// @Failure 400 {object} statusPayload
// @Failure 500 {object} statusPayload
// @Router /submit_request [post]
func SubmitRequest(svc service.HelpRequestService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.SubmitInput{
			Name:      c.FormValue("name"),
			Contact:   c.FormValue("contact"),
			Location:  c.FormValue("location"),
			Latitude:  c.FormValue("latitude"),
			Longitude: c.FormValue("longitude"),
			Message:   c.FormValue("message"),
		}

		err := svc.Submit(c.UserContext(), in, c.IP())
		switch {
		case err == nil:
			return writeStatus(c, fiber.StatusOK, statusSuccess, msgSubmitted)
		case errors.Is(err, service.ErrMissingFields):
			return writeError(c, fiber.StatusBadRequest, msgMissingFields)
		case errors.Is(err, service.ErrInvalidCoordinates):
			return writeError(c, fiber.StatusBadRequest, msgBadCoords)
		default:
			logFailure(c, log, err, "submit help request")
			return writeError(c, fiber.StatusInternalServerError, msgDatabase)
		}
	}
}

// ListRequests godoc
// @Summary List all help requests
// @Produce json
// @Success 200 {array} model.HelpRequest
// @Failure 500 {object} statusPayload
// @Router /api/requests [get]
func ListRequests(svc service.HelpRequestService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			logFailure(c, log, err, "list help requests")
			return writeError(c, fiber.StatusInternalServerError, msgDatabase)
		}
		return c.JSON(items)
	}
}

// GetRequest godoc
// @Summary Get a help request by ID
// @Produce json
// @Param id path int true "Help request ID"
// @Success 200 {object} model.HelpRequest
// @Failure 404 {object} statusPayload
// @Failure 500 {object} statusPayload
// @Router /api/requests/{id} [get]
func GetRequest(svc service.HelpRequestService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return writeError(c, fiber.StatusNotFound, msgNotFound)
		}

		hr, err := svc.Get(c.UserContext(), int64(id))
		switch {
		case err == nil:
			return c.JSON(hr)
		case errors.Is(err, service.ErrNotFound):
			return writeError(c, fiber.StatusNotFound, msgNotFound)
		default:
			logFailure(c, log, err, "get help request")
			return writeError(c, fiber.StatusInternalServerError, msgDatabase)
		}
	}
}

// DeleteRequest godoc
// @Summary Delete a help request submitted from the caller's IP
// @Produce json
// @Param id path int true "Help request ID"
// @Success 200 {object} statusPayload
// @Failure 403 {object} statusPayload
// @Failure 500 {object} statusPayload
// @Router /delete_request/{id} [delete]
func DeleteRequest(svc service.HelpRequestService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return writeError(c, fiber.StatusForbidden, msgForbidden)
		}

		err = svc.Delete(c.UserContext(), int64(id), c.IP())
		switch {
		case err == nil:
			return writeStatus(c, fiber.StatusOK, statusSuccess, msgDeleted)
		case errors.Is(err, service.ErrForbidden):
			return writeError(c, fiber.StatusForbidden, msgForbidden)
		default:
			logFailure(c, log, err, "delete help request")
			return writeError(c, fiber.StatusInternalServerError, msgDatabase)
		}
	}
}

func logFailure(c *fiber.Ctx, log logrus.FieldLogger, err error, op string) {
	log.WithFields(logrus.Fields{
		"request_id": middleware.RequestIDFromCtx(c),
		"op":         op,
	}).WithError(err).Error("storage failure")
}
