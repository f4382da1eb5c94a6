package handler

import "github.com/gofiber/fiber/v2"

const layout = "layouts/main"

// IndexPage renders the map with the submission form.
func IndexPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{
			"Title": "Request help",
		}, layout)
	}
}

// RequestsPage renders the list of submitted requests. Rows are loaded client-side from /api/requests.
func RequestsPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("requests", fiber.Map{
			"Title": "Help requests",
		}, layout)
	}
}
