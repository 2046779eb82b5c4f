package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	gatewayReady func() bool
}

// NewHealthHandler constructs the handler. gatewayReady reports whether the
// platform session is open.
func NewHealthHandler(gatewayReady func() bool) *HealthHandler {
	return &HealthHandler{gatewayReady: gatewayReady}
}

// Live GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready GET /health/ready. Ready only when the gateway session is open.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.gatewayReady == nil || !h.gatewayReady() {
		c.Status(http.StatusServiceUnavailable)
		return c.JSON(fiber.Map{"status": "unavailable", "gateway": "closed"})
	}
	return c.JSON(fiber.Map{"status": "ok", "gateway": "open"})
}
