package api

import (
	"matcha-budget/docs"
	"matcha-budget/internal/api/handlers"
	"matcha-budget/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	expenseHandler *handlers.ExpenseHandler,
	locationHandler *handlers.LocationHandler,
	cfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Swagger - importing the docs package registers the spec via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)
	appLogger.Info("Swagger UI enabled", zap.String("path", "/swagger/index.html"))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Matcha Budget API. See /swagger/index.html for the OpenAPI UI.",
		})
	})

	expenses := app.Group("/expenses")
	expenses.Post("", expenseHandler.CreateExpense)
	expenses.Get("", expenseHandler.ListExpenses)
	expenses.Get("/:id", expenseHandler.GetExpense)
	expenses.Patch("/:id", expenseHandler.UpdateExpense)
	expenses.Delete("/:id", expenseHandler.DeleteExpense)

	locations := app.Group("/locations")
	locations.Post("", locationHandler.CreateLocation)
	locations.Get("", locationHandler.ListLocations)
	locations.Get("/:id", locationHandler.GetLocation)
	locations.Patch("/:id", locationHandler.UpdateLocation)
	locations.Delete("/:id", locationHandler.DeleteLocation)

	return app
}
