package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fredsor/fred"
)

var rawParams []string

// getCmd calls any endpoint path with hand-written parameters
var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Call an endpoint path directly",
	Long: `Call an endpoint path directly, for endpoints or parameters the other
commands do not cover. The API key and file type are added automatically.

  fredsor get fred/series/observations --param series_id=GNPCA --param units=pch`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(rawParams)
		if err != nil {
			return err
		}
		path := "/" + strings.TrimPrefix(args[0], "/")
		return runQuery(cmd, func(ctx context.Context) (fred.Result, error) {
			return client.Execute(ctx, path, fred.Assemble(params...), format)
		})
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, "query parameter as name=value (repeatable)")
}
