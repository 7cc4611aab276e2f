package combo

import (
	"errors"

	"levelcode/core/catalog"
	"levelcode/core/logger"
	"levelcode/core/remote"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for combination codes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GenerateRequest is the selection to generate a code for.
type GenerateRequest struct {
	IDs []string `json:"ids"`
}

// RegisterRoutes registers the combo routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/combo")
	group.Get("/modes", h.HandleListModes)
	group.Get("/modes/:id", h.HandleGetMode)
	group.Post("/modes/:id/generate", h.HandleGenerate)
}

// HandleListModes lists the generator modes.
// @Summary List Modes
// @Description Lists the multi-plant and multi-costume generator modes.
// @Tags combo
// @Produce json
// @Success 200 {array} catalog.Mode "Modes"
// @Router /combo/modes [get]
func (h *Handler) HandleListModes(c *fiber.Ctx) error {
	return c.JSON(h.service.Modes())
}

// HandleGetMode returns one mode with its selectable items.
// @Summary Get Mode
// @Description Returns a mode and its items in reference order.
// @Tags combo
// @Produce json
// @Param id path string true "Mode ID (e.g. '3_of_8')"
// @Success 200 {object} combo.ModeDetail "Mode"
// @Failure 404 {object} map[string]string "Unknown mode"
// @Router /combo/modes/{id} [get]
func (h *Handler) HandleGetMode(c *fiber.Ctx) error {
	detail, err := h.service.Mode(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(detail)
}

// HandleGenerate generates the code for a selection.
// @Summary Generate Code
// @Description Looks up the code for the selected identifiers. Selection order does not matter.
// @Tags combo
// @Accept json
// @Produce json
// @Param id path string true "Mode ID"
// @Param request body combo.GenerateRequest true "Selected identifiers"
// @Success 200 {object} combo.Code "Code"
// @Failure 400 {object} map[string]string "Invalid selection"
// @Failure 404 {object} map[string]string "No code found"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /combo/modes/{id}/generate [post]
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	modeID := c.Params("id")

	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	code, err := h.service.Generate(c.UserContext(), modeID, req.IDs)
	if err != nil {
		status := statusOf(err)
		if status >= fiber.StatusInternalServerError {
			l.Error("Code generation failed", zap.String("mode", modeID), zap.Error(err))
		} else {
			l.Info("Code generation rejected", zap.String("mode", modeID), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(code)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrUnknownMode), errors.Is(err, catalog.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrSelectionCount):
		return fiber.StatusBadRequest
	default:
		return remote.HTTPStatus(err)
	}
}
