package search

import (
	"errors"

	"levelcode/core/logger"
	"levelcode/core/remote"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for single code search.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CodeRequest names the item to search.
type CodeRequest struct {
	Keyword string `json:"keyword"`
}

// RegisterRoutes registers the search routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/search")
	group.Get("/suggestions", h.HandleSuggestions)
	group.Post("/code", h.HandleCode)
}

// HandleSuggestions returns fuzzy name matches.
// @Summary Search Suggestions
// @Description Returns item names matching the query, as known by the backend.
// @Tags search
// @Produce json
// @Param q query string true "Partial item name"
// @Success 200 {object} remote.Suggestions "Suggestions"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Router /search/suggestions [get]
func (h *Handler) HandleSuggestions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.Suggestions(c.UserContext(), c.Query("q"))
	if err != nil {
		l.Warn("Suggestions failed", zap.Error(err))
		return c.Status(remote.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(out)
}

// HandleCode returns the code of a single plant or costume.
// @Summary Search Code
// @Description Resolves an item name to its code through the backend.
// @Tags search
// @Accept json
// @Produce json
// @Param request body search.CodeRequest true "Keyword"
// @Success 200 {object} search.Result "Code"
// @Failure 400 {object} map[string]string "Missing keyword"
// @Failure 403 {object} map[string]string "License not activated"
// @Failure 404 {object} map[string]string "No code found"
// @Router /search/code [post]
func (h *Handler) HandleCode(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.Code(c.UserContext(), req.Keyword)
	if err != nil {
		status := remote.HTTPStatus(err)
		if errors.Is(err, ErrEmptyKeyword) {
			status = fiber.StatusBadRequest
		}
		l.Info("Code search failed", zap.String("keyword", req.Keyword), zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}
