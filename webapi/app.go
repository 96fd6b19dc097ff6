// Package webapi assembles the Fiber application.
package webapi

import (
	"github.com/amirasaad/carddemo/infra/initializer"
	accountsvc "github.com/amirasaad/carddemo/pkg/service/account"
	"github.com/amirasaad/carddemo/webapi/account"
	"github.com/amirasaad/carddemo/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	_ "github.com/amirasaad/carddemo/cmd/server/docs"
)

// New builds the services and returns the Fiber app with all routes registered.
func New(deps *initializer.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "carddemo",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working!")
	})
	app.Get("/swagger/*", swagger.HandlerDefault)

	svc := accountsvc.NewService(deps.Uow, deps.Logger)
	account.Routes(app, svc)

	return app
}
