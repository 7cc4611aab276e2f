package cmd

import (
	"fmt"

	"levelcode/core/catalog"
	"levelcode/core/storage"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogCmd groups catalog maintenance commands.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage catalog files",
}

// pushCmd uploads a local catalog directory to the configured bucket.
var pushCmd = &cobra.Command{
	Use:   "push <dir>",
	Short: "Upload a local catalog directory to the bucket",
	Long: `Reads the manifest from <dir>, validates it and uploads it together with
every file it references to the storage bucket under the catalog prefix.
The bucket is created when it does not exist.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()

		store := rt.store
		if store == nil {
			if store, err = storage.NewClient(rt.cfg.Storage); err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}

		local := catalog.NewFSSource(afero.NewOsFs(), args[0])
		logg.Info("Publishing catalog",
			zap.String("from", local.Describe()),
			zap.String("bucket", rt.cfg.Storage.Bucket),
			zap.String("prefix", rt.cfg.Catalog.Prefix),
		)

		uploaded, err := catalog.Publish(ctx, local, rt.cfg.Catalog.Manifest, store, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region, rt.cfg.Catalog.Prefix)
		if err != nil {
			return fmt.Errorf("publish failed after %d files: %w", len(uploaded), err)
		}

		logg.Info("Catalog published", zap.Strings("objects", uploaded))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(pushCmd)
}
