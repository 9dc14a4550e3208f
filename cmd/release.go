package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fredsor/fred"
)

var (
	releasesFlags        listFlags
	releasesIncludeDates bool
	releasesIncludeEmpty bool
	releaseGetFlags      realtimeFlags
	releaseDatesFlagSet  releaseDatesFlags
	releaseSeriesFlags   seriesListFlags
	releaseSourcesFlags  realtimeFlags
	releaseTagsFlags     tagFlags
	releaseRelatedFlags  tagFlags
	releaseTablesElement int
	releaseTablesValues  bool
	releaseTablesObsDate string
)

// releaseDatesFlags add the no-data switch to release date listings
type releaseDatesFlags struct {
	listFlags
	includeEmpty bool
}

func (f *releaseDatesFlags) register(cmd *cobra.Command) {
	f.listFlags.register(cmd)
	cmd.Flags().BoolVar(&f.includeEmpty, "include-empty", false, "include release dates without data yet")
}

func (f *releaseDatesFlags) options() (fred.ReleaseDatesOptions, error) {
	list, err := f.listFlags.options()
	if err != nil {
		return fred.ReleaseDatesOptions{}, err
	}
	return fred.ReleaseDatesOptions{
		Realtime:                      list.Realtime,
		Paging:                        list.Paging,
		Sorting:                       list.Sorting,
		IncludeReleaseDatesWithNoData: f.includeEmpty,
	}, nil
}

// releasesCmd lists all releases, or their dates with --dates
var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "List all releases of economic data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := releasesFlags.options()
		if err != nil {
			return err
		}
		if releasesIncludeDates {
			datesOpts := fred.ReleaseDatesOptions{
				Realtime:                      opts.Realtime,
				Paging:                        opts.Paging,
				Sorting:                       opts.Sorting,
				IncludeReleaseDatesWithNoData: releasesIncludeEmpty,
			}
			return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
				return client.GetReleasesDates(ctx, datesOpts, format)
			})
		}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetReleases(ctx, opts, format)
		})
	},
}

// releaseCmd groups the single-release endpoints
var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Inspect a release of economic data",
}

var releaseGetCmd = &cobra.Command{
	Use:   "get <release-id>",
	Short: "Show a release",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := releaseGetFlags.options()
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetRelease(ctx, args[0], opts, format)
		})
	},
}

var releaseDatesCmd = &cobra.Command{
	Use:   "dates <release-id>",
	Short: "List the dates a release was published",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := releaseDatesFlagSet.options()
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetReleaseDates(ctx, args[0], opts, format)
		})
	},
}

var releaseSeriesCmd = &cobra.Command{
	Use:   "series <release-id>",
	Short: "List the series in a release",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := releaseSeriesFlags.options()
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetReleaseSeries(ctx, args[0], opts, format)
		})
	},
}

var releaseSourcesCmd = &cobra.Command{
	Use:   "sources <release-id>",
	Short: "List the sources of a release",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := releaseSourcesFlags.options()
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetReleaseSources(ctx, args[0], opts, format)
		})
	},
}

var releaseTagsCmd = &cobra.Command{
	Use:   "tags <release-id>",
	Short: "List the tags of the series in a release",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := releaseTagsFlags.options()
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetReleaseTags(ctx, args[0], opts, format)
		})
	},
}

var releaseRelatedTagsCmd = &cobra.Command{
	Use:   "related-tags <release-id> --tag NAME",
	Short: "List tags related to the given tags within a release",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := releaseRelatedFlags.relatedOptions()
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetReleaseRelatedTags(ctx, args[0], opts, format)
		})
	},
}

var releaseTablesCmd = &cobra.Command{
	Use:   "tables <release-id>",
	Short: "Show the table tree of a release",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		obsDate, err := parseDateFlag("observation-date", releaseTablesObsDate)
		if err != nil {
			return err
		}
		opts := fred.ReleaseTablesOptions{
			ElementID:                releaseTablesElement,
			IncludeObservationValues: releaseTablesValues,
			ObservationDate:          obsDate,
		}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetReleaseTables(ctx, args[0], opts, format)
		})
	},
}

func init() {
	rootCmd.AddCommand(releasesCmd, releaseCmd)
	releaseCmd.AddCommand(releaseGetCmd, releaseDatesCmd, releaseSeriesCmd, releaseSourcesCmd,
		releaseTagsCmd, releaseRelatedTagsCmd, releaseTablesCmd)

	releasesFlags.register(releasesCmd)
	releasesCmd.Flags().BoolVar(&releasesIncludeDates, "dates", false, "list release dates instead of releases")
	releasesCmd.Flags().BoolVar(&releasesIncludeEmpty, "include-empty", false, "with --dates, include release dates without data yet")

	releaseGetFlags.register(releaseGetCmd)
	releaseDatesFlagSet.register(releaseDatesCmd)
	releaseSeriesFlags.register(releaseSeriesCmd)
	releaseSourcesFlags.register(releaseSourcesCmd)
	releaseTagsFlags.register(releaseTagsCmd)
	releaseRelatedFlags.register(releaseRelatedTagsCmd)

	releaseTablesCmd.Flags().IntVar(&releaseTablesElement, "element", 0, "table element id (default is the root)")
	releaseTablesCmd.Flags().BoolVar(&releaseTablesValues, "values", false, "include observation values")
	releaseTablesCmd.Flags().StringVar(&releaseTablesObsDate, "observation-date", "", "observation date for values (YYYY-MM-DD)")
}
