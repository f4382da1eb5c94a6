package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"helpmap/internal/service"
)

// RegisterRoutes attaches the HTTP routes to app.
func RegisterRoutes(app *fiber.App, db Pinger, svc service.HelpRequestService, log logrus.FieldLogger) {
	app.Get("/", IndexPage())
	app.Get("/requests", RequestsPage())

	app.Post("/submit_request", SubmitRequest(svc, log))
	app.Delete("/delete_request/:id", DeleteRequest(svc, log))

	api := app.Group("/api")
	api.Get("/requests", ListRequests(svc, log))
	api.Get("/requests/:id", GetRequest(svc, log))

	app.Get("/health", HealthCheck())
	app.Get("/ready", Readiness(db))
}
