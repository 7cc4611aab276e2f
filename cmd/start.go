package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Levelcode API
// @version 1.0
// @description Serves redemption codes for plants, costumes and levels.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the levelcode server",
	Long:  `Loads the catalog manifest, preloads every catalog and starts the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := rt.cfg.Server.Validate(); err != nil {
			return fmt.Errorf("invalid server config: %w", err)
		}
		if err := rt.loadManifest(ctx); err != nil {
			return err
		}

		db := rt.connectDB()

		app, err := newServer(ctx, rt, db)
		if err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		go func() {
			logg.Info("Starting server",
				zap.String("addr", rt.cfg.Server.Addr()),
				zap.String("catalog_source", rt.source.Describe()),
				zap.Int("modes", len(rt.manifest.Modes)),
			)
			if err := app.Listen(rt.cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		logg.Info("Shutting down server...")
		timeout := time.Duration(rt.cfg.Server.ShutdownSeconds) * time.Second
		if err := app.ShutdownWithTimeout(timeout); err != nil {
			logg.Error("Graceful shutdown failed", zap.Error(err))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
