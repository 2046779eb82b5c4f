package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-bot/internal/observability"
)

// MetricsHandler exposes the in-memory interaction counters.
type MetricsHandler struct {
	metrics *observability.Metrics
}

// NewMetricsHandler constructs the handler.
func NewMetricsHandler(metrics *observability.Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Snapshot GET /metrics.
func (h *MetricsHandler) Snapshot(c *fiber.Ctx) error {
	interactions, errorCounts := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"interactions": interactions,
		"errors":       errorCounts,
	})
}
