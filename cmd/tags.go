package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fredsor/fred"
)

var (
	tagsFlags        tagFlags
	tagsRelated      bool
	tagsSeriesFlags  listFlags
	tagsSeriesTags   []string
	tagsSeriesExcept []string
)

// tagsCmd lists FRED tags
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags, or tags related to --tag with --related",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tagsRelated {
			opts, err := tagsFlags.relatedOptions()
			if err != nil {
				return err
			}
			return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
				return client.GetRelatedTags(ctx, opts, format)
			})
		}
		opts, err := tagsFlags.options()
		if err != nil {
			return err
		}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetTags(ctx, opts, format)
		})
	},
}

var tagsSeriesCmd = &cobra.Command{
	Use:   "series --tag NAME",
	Short: "List the series carrying all of the given tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := tagsSeriesFlags.options()
		if err != nil {
			return err
		}
		opts := fred.TagsSeriesOptions{
			Realtime:        list.Realtime,
			Paging:          list.Paging,
			Sorting:         list.Sorting,
			ExcludeTagNames: tagsSeriesExcept,
		}
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.GetTagsSeries(ctx, tagsSeriesTags, opts, format)
		})
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsSeriesCmd)

	tagsFlags.register(tagsCmd)
	tagsCmd.Flags().BoolVar(&tagsRelated, "related", false, "list tags related to --tag")

	tagsSeriesFlags.register(tagsSeriesCmd)
	tagsSeriesCmd.Flags().StringSliceVar(&tagsSeriesTags, "tag", nil, "tags every series must carry")
	tagsSeriesCmd.Flags().StringSliceVar(&tagsSeriesExcept, "exclude-tag", nil, "tags no series may carry")
}
