package cmd

import (
	"fmt"

	"levelcode/core/catalog"
	"levelcode/core/remote"
	"levelcode/core/utils"
	"levelcode/feature/combo"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// lookupCmd generates the code of one combination from the command line.
var lookupCmd = &cobra.Command{
	Use:   "lookup <mode> <id>...",
	Short: "Look up the code of a combination",
	Long: `Canonicalizes the selected identifiers against the mode's pool and prints
the matching code. Identifiers may be given as separate arguments or as a
comma separated list.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()

		if err := rt.loadManifest(ctx); err != nil {
			return err
		}

		var ids []string
		for _, arg := range args[1:] {
			ids = append(ids, utils.SplitIDs(arg)...)
		}

		cache := catalog.NewCache(rt.source, logg.Named("catalog"))
		client := remote.NewClient(rt.cfg.Remote, nil, logg.Named("remote"))
		svc := combo.NewService(rt.manifest, rt.names, cache, client, logg.Named("combo"))

		code, err := svc.Generate(ctx, args[0], ids)
		if err != nil {
			return err
		}

		logg.Info("Code found",
			zap.String("mode", code.Mode),
			zap.String("key", code.Key),
			zap.String("source", code.Source),
		)
		fmt.Println(code.Text)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lookupCmd)
}
