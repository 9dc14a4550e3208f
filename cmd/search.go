package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fredsor/fred"
)

var (
	searchFlags        seriesListFlags
	searchType         string
	searchTagsFlags    tagFlags
	searchRelatedFlags tagFlags
)

// searchCmd searches series by keywords
var searchCmd = &cobra.Command{
	Use:   "search <words>...",
	Short: "Search for series by keywords",
	Long: `Search for series whose attributes match the given words.

  fredsor search monetary service index --order-by popularity --sort-order descending
  fredsor search tags "mortgage rate" --group geo
  fredsor search related-tags "mortgage rate" --tag 30-year`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := searchFlags.options()
		if err != nil {
			return err
		}
		opts := fred.SeriesSearchOptions{SeriesListOptions: list, SearchType: fred.SearchType(searchType)}
		text := strings.Join(args, " ")
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetSeriesSearch(ctx, text, opts, format)
		})
	},
}

var searchTagsCmd = &cobra.Command{
	Use:   "tags <words>...",
	Short: "List the tags of the series matching a search",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := searchTagsFlags.searchOptions()
		if err != nil {
			return err
		}
		text := strings.Join(args, " ")
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetSeriesSearchTags(ctx, text, opts, format)
		})
	},
}

var searchRelatedTagsCmd = &cobra.Command{
	Use:   "related-tags <words>... --tag NAME",
	Short: "List tags related to the given tags among the series matching a search",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tagOpts, err := searchRelatedFlags.searchOptions()
		if err != nil {
			return err
		}
		opts := fred.SeriesSearchRelatedTagsOptions{
			SeriesSearchTagsOptions: tagOpts,
			ExcludeTagNames:         searchRelatedFlags.excludeTags,
		}
		text := strings.Join(args, " ")
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetSeriesSearchRelatedTags(ctx, text, opts, format)
		})
	},
}

// searchOptions maps tag flags onto a series search tag query, where
// --search narrows the tag names rather than the series.
func (f *tagFlags) searchOptions() (fred.SeriesSearchTagsOptions, error) {
	opts, err := f.options()
	if err != nil {
		return fred.SeriesSearchTagsOptions{}, err
	}
	return fred.SeriesSearchTagsOptions{
		Realtime:      opts.Realtime,
		Paging:        opts.Paging,
		Sorting:       opts.Sorting,
		TagNames:      opts.TagNames,
		TagGroupID:    opts.TagGroupID,
		TagSearchText: opts.SearchText,
	}, nil
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.AddCommand(searchTagsCmd, searchRelatedTagsCmd)

	searchFlags.register(searchCmd)
	searchCmd.Flags().StringVar(&searchType, "type", "", "full_text or series_id")
	searchTagsFlags.register(searchTagsCmd)
	searchRelatedFlags.register(searchRelatedTagsCmd)
}
