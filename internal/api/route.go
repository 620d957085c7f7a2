package api

import (
	"net/http"

	v1 "github.com/captainwycliffe/farmbetter-user-management-system/internal/api/v1"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, graphql http.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/users", handler.CreateUser)
	app.Get("/users", handler.ListUsers)
	app.Get("/users/:id", handler.GetUser)
	app.Patch("/users/:id", handler.UpdateUser)

	app.Post("/webhook", handler.Webhook)

	app.All("/graphql", adaptor.HTTPHandler(graphql))
}
