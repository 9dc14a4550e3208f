package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fredsor/fred"
)

var (
	sourcesFlags    listFlags
	sourcesReleases bool
)

// sourcesCmd lists data sources, or one source and its releases
var sourcesCmd = &cobra.Command{
	Use:   "sources [source-id]",
	Short: "List sources of economic data",
	Long: `Without an id, list all sources. With an id, show that source, or its
releases with --releases.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := sourcesFlags.options()
		if err != nil {
			return err
		}

		switch {
		case len(args) == 0:
			return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
				return client.GetSources(ctx, opts, format)
			})
		case sourcesReleases:
			return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
				return client.GetSourceReleases(ctx, args[0], opts, format)
			})
		default:
			return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
				return client.GetSource(ctx, args[0], opts.Realtime, format)
			})
		}
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)

	sourcesFlags.register(sourcesCmd)
	sourcesCmd.Flags().BoolVar(&sourcesReleases, "releases", false, "list the releases of the given source")
}
