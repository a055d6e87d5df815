package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/careerpathai/backend/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// Health: basic liveness check.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "healthy",
		"service": "CareerPath AI Backend",
	})
}

// Ready: readiness check with per-dependency detail.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	report := h.svc.Report(ctx)
	status := fiber.StatusOK
	state := "ready"
	for _, v := range report {
		if v != "ok" {
			status = fiber.StatusServiceUnavailable
			state = "not_ready"
			break
		}
	}
	return c.Status(status).JSON(fiber.Map{
		"status":       state,
		"dependencies": report,
	})
}
