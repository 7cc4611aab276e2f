package cmd

import (
	"context"
	"fmt"

	"levelcode/core/utils"
	"levelcode/feature/integrity"
	"levelcode/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the catalogs and the level store",
	Long:  `Runs every check and prints the combined report as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIntegrity(cmd.Context(), func(ctx context.Context, svc *integrity.Service, logg *zap.Logger) error {
			out, err := utils.PrettyJSON(svc.CheckAll(ctx))
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(out)
			return nil
		})
	},
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Check that every file the manifest references exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIntegrity(cmd.Context(), func(ctx context.Context, svc *integrity.Service, logg *zap.Logger) error {
			logg.Info("Checking catalog sources...")
			report, err := svc.CheckSources(ctx)
			if err != nil {
				return fmt.Errorf("sources check failed: %w", err)
			}
			if len(report.Missing) == 0 {
				logg.Info("All catalog files are present.", zap.String("source", report.Source), zap.Int("checked", report.Checked))
			} else {
				logg.Warn("Missing catalog files detected", zap.String("source", report.Source), zap.Strings("missing", report.Missing))
			}
			return nil
		})
	},
}

var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Check and fix the catalog bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIntegrity(cmd.Context(), func(ctx context.Context, svc *integrity.Service, logg *zap.Logger) error {
			logg.Info("Checking catalog bucket...")
			report, err := svc.CheckBucket(ctx, fixFlag)
			if err != nil {
				return fmt.Errorf("bucket check failed: %w", err)
			}
			switch {
			case report.Created:
				logg.Info("Bucket created.", zap.String("bucket", report.Bucket))
			case report.Exists:
				logg.Info("Bucket exists.", zap.String("bucket", report.Bucket))
			default:
				logg.Warn("Bucket is missing. Run with --fix to create it.", zap.String("bucket", report.Bucket))
			}
			return nil
		})
	},
}

var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "Extract every catalog and report dropped entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIntegrity(cmd.Context(), func(ctx context.Context, svc *integrity.Service, logg *zap.Logger) error {
			logg.Info("Checking catalogs (this might take a while)...")
			report := svc.CheckCatalogs(ctx)
			for _, c := range report.Catalogs {
				fields := []zap.Field{
					zap.String("mode", c.Mode),
					zap.String("file", c.File),
					zap.Int("entries", c.Stats.Entries),
					zap.Int("dropped", c.Stats.Dropped),
					zap.Int("duplicates", c.Stats.Duplicates),
				}
				switch c.Status {
				case checks.StatusOK:
					logg.Info("Catalog is healthy", fields...)
				case checks.StatusWarning:
					logg.Warn("Catalog has dropped or duplicate entries", fields...)
				default:
					logg.Error("Catalog unreadable", append(fields, zap.String("error", c.Error))...)
				}
			}
			if !report.Healthy {
				logg.Warn("Catalog check found problems", zap.Int("catalogs", len(report.Catalogs)))
			}
			return nil
		})
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the custom level table against its model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIntegrity(cmd.Context(), func(ctx context.Context, svc *integrity.Service, logg *zap.Logger) error {
			logg.Info("Checking level store schema...")
			report, err := svc.CheckSchema()
			if err != nil {
				return fmt.Errorf("schema check failed: %w", err)
			}
			if report.Matched {
				logg.Info("Schema matches the level model.", zap.String("driver", report.Driver))
				return nil
			}

			logg.Warn("Schema mismatches found", zap.String("driver", report.Driver))
			for table, tblReport := range report.Tables {
				if tblReport.Status == checks.StatusOK {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(sourcesCmd, bucketCmd, catalogsCmd, schemaCmd)

	bucketCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when it is missing")
}

// withIntegrity builds the integrity service and runs fn with it. A manifest
// that cannot be loaded is reported by the checks instead of aborting.
func withIntegrity(ctx context.Context, fn func(context.Context, *integrity.Service, *zap.Logger) error) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	logg := rt.logger
	defer logg.Sync()

	if err := rt.loadManifest(ctx); err != nil {
		logg.Warn("Manifest unavailable", zap.Error(err))
	}

	svc := integrity.NewService(rt.integritySources(), rt.integrityBucket(), rt.connectDB(), logg)
	return fn(ctx, svc, logg)
}
