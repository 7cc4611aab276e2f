package integrity

import (
	"errors"

	"levelcode/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/sources", h.HandleSourcesCheck)
	group.Get("/bucket", h.HandleBucketCheck)
	group.Get("/catalogs", h.HandleCatalogsCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs every check (Sources, Bucket, Catalogs, Schema). Catalog extraction may take a while.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.CheckAll(c.UserContext()))
}

// HandleSourcesCheck checks that every manifest file exists.
// @Summary Check Sources
// @Description Verifies the manifest, names, levels and catalog files exist in the catalog source.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SourcesReport "Sources Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/sources [get]
func (h *Handler) HandleSourcesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSources(c.UserContext())
	if err != nil {
		l.Error("Sources check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(report.Missing) > 0 {
		l.Warn("Missing catalog files detected", zap.Strings("missing", report.Missing))
	}
	return c.JSON(report)
}

// HandleBucketCheck checks and optionally creates the catalog bucket.
// @Summary Check Bucket
// @Description Checks the catalog bucket exists. Optionally creates it.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} checks.BucketReport "Bucket Report"
// @Failure 400 {object} map[string]string "Catalogs are not read from a bucket"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/bucket [get]
func (h *Handler) HandleBucketCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckBucket(c.UserContext(), fix)
	if errors.Is(err, ErrNoBucket) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Bucket check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleCatalogsCheck extracts every catalog and reports its statistics.
// @Summary Check Catalogs
// @Description Extracts every local catalog file and reports entry, dropped and duplicate counts.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.CatalogsReport "Catalogs Report"
// @Router /integrity/catalogs [get]
func (h *Handler) HandleCatalogsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting catalog check")

	report := h.service.CheckCatalogs(c.UserContext())
	if !report.Healthy {
		l.Warn("Unhealthy catalogs detected")
	}
	return c.JSON(report)
}

// HandleSchemaCheck checks the custom level table schema.
// @Summary Check Schema
// @Description Checks the custom_levels table matches the expected model.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
