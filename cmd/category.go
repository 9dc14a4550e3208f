package cmd

import (
	"github.com/spf13/cobra"
)

var (
	categoryChildrenFlags    realtimeFlags
	categoryRelatedFlags     realtimeFlags
	categorySeriesFlags      seriesListFlags
	categoryTagsFlags        tagFlags
	categoryRelatedTagsFlags tagFlags
)

// categoryCmd groups the category endpoints
var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Browse the FRED category tree",
	Long: `Browse the FRED category tree. Category 0 is the root; omit the id to
start from it.`,
}

var categoryGetCmd = &cobra.Command{
	Use:   "get [category-id]",
	Short: "Show a category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.GetCategory(cmd.Context(), categoryArg(args), format)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result, whereExpr)
	},
}

var categoryChildrenCmd = &cobra.Command{
	Use:   "children [category-id]",
	Short: "List the child categories of a category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := categoryChildrenFlags.options()
		if err != nil {
			return err
		}
		result, err := client.GetCategoryChildren(cmd.Context(), categoryArg(args), opts, format)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result, whereExpr)
	},
}

var categoryRelatedCmd = &cobra.Command{
	Use:   "related [category-id]",
	Short: "List categories related to a category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := categoryRelatedFlags.options()
		if err != nil {
			return err
		}
		result, err := client.GetCategoryRelated(cmd.Context(), categoryArg(args), opts, format)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result, whereExpr)
	},
}

var categorySeriesCmd = &cobra.Command{
	Use:   "series [category-id]",
	Short: "List the series in a category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := categorySeriesFlags.options()
		if err != nil {
			return err
		}
		result, err := client.GetCategorySeries(cmd.Context(), categoryArg(args), opts, format)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result, whereExpr)
	},
}

var categoryTagsCmd = &cobra.Command{
	Use:   "tags [category-id]",
	Short: "List the tags of the series in a category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := categoryTagsFlags.options()
		if err != nil {
			return err
		}
		result, err := client.GetCategoryTags(cmd.Context(), categoryArg(args), opts, format)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result, whereExpr)
	},
}

var categoryRelatedTagsCmd = &cobra.Command{
	Use:   "related-tags [category-id] --tag NAME",
	Short: "List tags related to the given tags within a category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := categoryRelatedTagsFlags.relatedOptions()
		if err != nil {
			return err
		}
		result, err := client.GetCategoryRelatedTags(cmd.Context(), categoryArg(args), opts, format)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), result, whereExpr)
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryGetCmd, categoryChildrenCmd, categoryRelatedCmd,
		categorySeriesCmd, categoryTagsCmd, categoryRelatedTagsCmd)

	categoryChildrenFlags.register(categoryChildrenCmd)
	categoryRelatedFlags.register(categoryRelatedCmd)
	categorySeriesFlags.register(categorySeriesCmd)
	categoryTagsFlags.register(categoryTagsCmd)
	categoryRelatedTagsFlags.register(categoryRelatedTagsCmd)
}

// categoryArg returns the category id argument; empty selects the root.
func categoryArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
