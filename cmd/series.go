package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fredsor/fred"
)

var (
	seriesGetFlags        realtimeFlags
	seriesCategoriesFlags realtimeFlags
	seriesReleaseFlags    realtimeFlags
	seriesObsFlags        observationFlags
	seriesTagsFlags       listFlags
	seriesUpdatesFlags    updatesFlags
	seriesVintageFlags    listFlags
)

// observationFlags select and transform the observations of a series
type observationFlags struct {
	realtimeFlags
	offset       int
	limit        int
	sortOrder    string
	start        string
	end          string
	units        string
	frequency    string
	aggregation  string
	outputType   string
	vintageDates []string
}

func (f *observationFlags) register(cmd *cobra.Command) {
	f.realtimeFlags.register(cmd)
	cmd.Flags().IntVar(&f.offset, "offset", 0, "number of observations to skip")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "maximum number of observations to return")
	cmd.Flags().StringVar(&f.sortOrder, "sort-order", "", "ascending or descending")
	cmd.Flags().StringVar(&f.start, "start", "", "first observation date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "last observation date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.units, "units", "", "data transformation, e.g. chg, pch, pc1, log")
	cmd.Flags().StringVar(&f.frequency, "frequency", "", "aggregate to a lower frequency, e.g. a, q, m, w")
	cmd.Flags().StringVar(&f.aggregation, "aggregation", "", "aggregation method: avg, sum or eop")
	cmd.Flags().StringVar(&f.outputType, "output-type", "", "output type 1-4")
	cmd.Flags().StringSliceVar(&f.vintageDates, "vintage-date", nil, "vintage dates (YYYY-MM-DD)")
}

func (f *observationFlags) options() (fred.ObservationsOptions, error) {
	rt, err := f.realtimeFlags.options()
	if err != nil {
		return fred.ObservationsOptions{}, err
	}
	start, err := parseDateFlag("start", f.start)
	if err != nil {
		return fred.ObservationsOptions{}, err
	}
	end, err := parseDateFlag("end", f.end)
	if err != nil {
		return fred.ObservationsOptions{}, err
	}

	vintages := make([]time.Time, 0, len(f.vintageDates))
	for _, raw := range f.vintageDates {
		d, err := parseDateFlag("vintage-date", raw)
		if err != nil {
			return fred.ObservationsOptions{}, err
		}
		if d != nil {
			vintages = append(vintages, *d)
		}
	}

	return fred.ObservationsOptions{
		Realtime:          rt,
		Paging:            fred.Paging{Offset: f.offset, Limit: f.limit},
		SortOrder:         fred.SortOrder(f.sortOrder),
		ObservationStart:  start,
		ObservationEnd:    end,
		Units:             fred.Units(f.units),
		Frequency:         fred.Frequency(f.frequency),
		AggregationMethod: fred.AggregationMethod(f.aggregation),
		OutputType:        fred.OutputType(f.outputType),
		VintageDates:      vintages,
	}, nil
}

// updatesFlags select recently updated series
type updatesFlags struct {
	realtimeFlags
	offset int
	limit  int
	filter string
	since  time.Duration
}

func (f *updatesFlags) register(cmd *cobra.Command) {
	f.realtimeFlags.register(cmd)
	cmd.Flags().IntVar(&f.offset, "offset", 0, "number of series to skip")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "maximum number of series to return")
	cmd.Flags().StringVar(&f.filter, "filter", "", "all, macro or regional")
	cmd.Flags().DurationVar(&f.since, "since", 0, "only series updated within this window, e.g. 6h")
}

func (f *updatesFlags) options(now time.Time) (fred.SeriesUpdatesOptions, error) {
	rt, err := f.realtimeFlags.options()
	if err != nil {
		return fred.SeriesUpdatesOptions{}, err
	}
	opts := fred.SeriesUpdatesOptions{
		Realtime:    rt,
		Paging:      fred.Paging{Offset: f.offset, Limit: f.limit},
		FilterValue: fred.UpdateFilter(f.filter),
	}
	if f.since > 0 {
		start := now.Add(-f.since)
		opts.StartTime, opts.EndTime = &start, &now
	}
	return opts, nil
}

// seriesCmd groups the series endpoints
var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Inspect economic data series",
}

var seriesGetCmd = &cobra.Command{
	Use:   "get <series-id>...",
	Short: "Show one or more series",
	Long: `Show one or more series. Several ids are fetched concurrently, bounded by
batch.concurrency, and printed as one object keyed by id.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := seriesGetFlags.options()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
				return client.GetSeries(ctx, args[0], opts, format)
			})
		}
		results, err := client.BatchGetSeries(cmd.Context(), args, opts, cfg.Batch.Concurrency, format)
		if err != nil {
			return err
		}
		return renderBatch(cmd.OutOrStdout(), args, results, whereExpr)
	},
}

var seriesObservationsCmd = &cobra.Command{
	Use:     "observations <series-id>...",
	Aliases: []string{"obs"},
	Short:   "Fetch the observations of one or more series",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := seriesObsFlags.options()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
				return client.GetSeriesObservations(ctx, args[0], opts, format)
			})
		}
		results, err := client.BatchGetSeriesObservations(cmd.Context(), args, opts, cfg.Batch.Concurrency, format)
		if err != nil {
			return err
		}
		return renderBatch(cmd.OutOrStdout(), args, results, whereExpr)
	},
}

var seriesCategoriesCmd = &cobra.Command{
	Use:   "categories <series-id>",
	Short: "List the categories of a series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := seriesCategoriesFlags.options()
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetSeriesCategories(ctx, args[0], opts, format)
		})
	},
}

var seriesReleaseCmd = &cobra.Command{
	Use:   "release <series-id>",
	Short: "Show the release of a series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := seriesReleaseFlags.options()
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetSeriesRelease(ctx, args[0], opts, format)
		})
	},
}

var seriesTagsCmd = &cobra.Command{
	Use:   "tags <series-id>",
	Short: "List the tags of a series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := seriesTagsFlags.options()
		if err != nil {
			return err
		}
		if list.Offset != 0 || list.Limit != 0 {
			return fmt.Errorf("series tags does not support --offset or --limit")
		}
		opts := fred.SeriesTagsOptions{Realtime: list.Realtime, Sorting: list.Sorting}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetSeriesTags(ctx, args[0], opts, format)
		})
	},
}

var seriesUpdatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "List recently updated series",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := seriesUpdatesFlags.options(time.Now())
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetSeriesUpdates(ctx, opts, format)
		})
	},
}

var seriesVintageDatesCmd = &cobra.Command{
	Use:   "vintagedates <series-id>",
	Short: "List the dates a series was revised or released",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := seriesVintageFlags.options()
		if err != nil {
			return err
		}
		if list.OrderBy != "" {
			return fmt.Errorf("series vintagedates does not support --order-by")
		}
		opts := fred.VintageDatesOptions{Realtime: list.Realtime, Paging: list.Paging, SortOrder: list.SortOrder}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetSeriesVintageDates(ctx, args[0], opts, format)
		})
	},
}

func init() {
	rootCmd.AddCommand(seriesCmd)
	seriesCmd.AddCommand(seriesGetCmd, seriesObservationsCmd, seriesCategoriesCmd, seriesReleaseCmd,
		seriesTagsCmd, seriesUpdatesCmd, seriesVintageDatesCmd)

	seriesGetFlags.register(seriesGetCmd)
	seriesObsFlags.register(seriesObservationsCmd)
	seriesCategoriesFlags.register(seriesCategoriesCmd)
	seriesReleaseFlags.register(seriesReleaseCmd)
	seriesTagsFlags.register(seriesTagsCmd)
	seriesUpdatesFlags.register(seriesUpdatesCmd)
	seriesVintageFlags.register(seriesVintageDatesCmd)
}
