package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"portalacademico_backend/internals/middlewares/logger"
)

// SetupMiddlewares monta los middlewares base en orden
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
