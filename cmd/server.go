package cmd

import (
	"context"

	"levelcode/core/catalog"
	"levelcode/core/loader"
	"levelcode/core/logger"
	"levelcode/core/middleware/auth"
	"levelcode/core/middleware/rayid"
	"levelcode/core/remote"
	"levelcode/feature/combo"
	"levelcode/feature/integrity"
	"levelcode/feature/levels"
	"levelcode/feature/search"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "levelcode/docs/swagger"
)

// newServer wires the features onto a fiber app. Catalogs are preloaded
// before the app is returned. db may be nil.
func newServer(ctx context.Context, rt *runtime, db *gorm.DB) (*fiber.App, error) {
	logg := rt.logger

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every log line carries it.
	app.Use(rayid.New())
	app.Use(requestLogger(logg))

	// Swagger stays public.
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Use(auth.New(auth.Config{
		ApiKey: rt.cfg.Server.ApiKey,
		Skip:   []string{"/swagger"},
	}))

	cache := catalog.NewCache(rt.source, logg.Named("catalog"))
	cache.Preload(ctx, rt.manifest.CatalogFiles())

	client := remote.NewClient(rt.cfg.Remote, nil, logg.Named("remote"))
	if !rt.cfg.Remote.Activated() {
		logg.Warn("No license key configured, remote code search is disabled")
	}

	levelSvc, err := levels.NewService(db, rt.source, rt.manifest.LevelsFile, logg.Named("levels"))
	if err != nil {
		return nil, err
	}

	mgr := loader.NewManager(logg)
	mgr.Register(combo.NewFeature(rt.manifest, rt.names, cache, client, logg.Named("combo")))
	mgr.Register(search.NewFeature(client, rt.cfg.Remote.BaseURL, logg.Named("search")))
	mgr.Register(levels.NewFeature(levelSvc))
	mgr.Register(integrity.NewFeature(rt.integritySources(), rt.integrityBucket(), db, logg.Named("integrity")))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	return app, nil
}

func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	}
}
