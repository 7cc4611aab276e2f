package levels

import (
	"errors"

	"levelcode/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for level codes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SaveRequest is a custom level to store. Code is the level's JSON text.
type SaveRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// RegisterRoutes registers the levels routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/levels")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleSave)
}

// HandleList lists level codes.
// @Summary List Levels
// @Description Lists custom levels first, then built-in levels. Optional name filter.
// @Tags levels
// @Produce json
// @Param q query string false "Name filter (case-insensitive)"
// @Success 200 {array} levels.Level "Levels"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /levels [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	levels, err := h.service.List(c.UserContext(), c.Query("q"))
	if err != nil {
		l.Error("Listing levels failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(levels)
}

// HandleSave stores a custom level.
// @Summary Save Custom Level
// @Description Stores a named level code. The code must be a JSON object and the name unused.
// @Tags levels
// @Accept json
// @Produce json
// @Param request body levels.SaveRequest true "Level"
// @Success 201 {object} levels.Level "Saved level"
// @Failure 400 {object} map[string]string "Invalid level"
// @Failure 409 {object} map[string]string "Name already exists"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /levels [post]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	level, err := h.service.Save(c.UserContext(), req.Name, req.Code)
	switch {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(level)
	case errors.Is(err, ErrInvalidLevel):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrLevelExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrStoreUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Saving level failed", zap.String("name", req.Name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
