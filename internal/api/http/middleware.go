package http

import (
	"net/http"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/observability"
)

// RegisterMiddlewares attaches global middlewares such as panic recovery
// and request logging to the ops HTTP surface.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger) {
	app.Use(recoverMiddleware(logger))
	app.Use(observability.RequestLogger(logger))
}

func recoverMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				c.Status(http.StatusInternalServerError)
				err = c.JSON(fiber.Map{"error": "internal server error"})
			}
		}()
		return c.Next()
	}
}
