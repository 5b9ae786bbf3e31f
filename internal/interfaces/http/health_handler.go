package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Careplus-api/internal/application/dto"
)

// healthTimeout tiempo máximo del ping a la base en /health.
const healthTimeout = 2 * time.Second

// Pinger lo cumple *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler expone el estado del servicio y de PostgreSQL.
type HealthHandler struct {
	db      Pinger
	service string
}

// NewHealthHandler construye el handler.
func NewHealthHandler(db Pinger, service string) *HealthHandler {
	return &HealthHandler{db: db, service: service}
}

// Check GET /health: 200 si la base responde, 503 si no.
// @Summary      Estado del servicio y de PostgreSQL
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		GetLogger(c).Warn().Err(err).Msg("health: ping a PostgreSQL")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "unavailable", Service: h.service})
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Service: h.service})
}
