package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fredsor/fred"
)

// realtimeFlags are the real-time period flags shared by most commands
type realtimeFlags struct {
	start string
	end   string
}

func (f *realtimeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "realtime-start", "", "start of the real-time period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "realtime-end", "", "end of the real-time period (YYYY-MM-DD)")
}

func (f *realtimeFlags) options() (fred.Realtime, error) {
	start, err := parseDateFlag("realtime-start", f.start)
	if err != nil {
		return fred.Realtime{}, err
	}
	end, err := parseDateFlag("realtime-end", f.end)
	if err != nil {
		return fred.Realtime{}, err
	}
	return fred.Realtime{RealtimeStart: start, RealtimeEnd: end}, nil
}

// listFlags cover paginated, sortable listings
type listFlags struct {
	realtimeFlags
	offset    int
	limit     int
	orderBy   string
	sortOrder string
}

func (f *listFlags) register(cmd *cobra.Command) {
	f.realtimeFlags.register(cmd)
	cmd.Flags().IntVar(&f.offset, "offset", 0, "number of records to skip")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "maximum number of records to return")
	cmd.Flags().StringVar(&f.orderBy, "order-by", "", "field to order results by")
	cmd.Flags().StringVar(&f.sortOrder, "sort-order", "", "ascending or descending")
}

func (f *listFlags) options() (fred.ListOptions, error) {
	rt, err := f.realtimeFlags.options()
	if err != nil {
		return fred.ListOptions{}, err
	}
	return fred.ListOptions{
		Realtime: rt,
		Paging:   fred.Paging{Offset: f.offset, Limit: f.limit},
		Sorting:  fred.Sorting{OrderBy: fred.OrderBy(f.orderBy), SortOrder: fred.SortOrder(f.sortOrder)},
	}, nil
}

// seriesListFlags add attribute and tag filtering to series listings
type seriesListFlags struct {
	listFlags
	filterVariable string
	filterValue    string
	tagNames       []string
	excludeTags    []string
}

func (f *seriesListFlags) register(cmd *cobra.Command) {
	f.listFlags.register(cmd)
	cmd.Flags().StringVar(&f.filterVariable, "filter-variable", "", "attribute to filter on: frequency, units or seasonal_adjustment")
	cmd.Flags().StringVar(&f.filterValue, "filter-value", "", "value of the filter attribute")
	cmd.Flags().StringSliceVar(&f.tagNames, "tag", nil, "only series with all of these tags")
	cmd.Flags().StringSliceVar(&f.excludeTags, "exclude-tag", nil, "exclude series with any of these tags")
}

func (f *seriesListFlags) options() (fred.SeriesListOptions, error) {
	list, err := f.listFlags.options()
	if err != nil {
		return fred.SeriesListOptions{}, err
	}
	return fred.SeriesListOptions{
		Realtime:        list.Realtime,
		Paging:          list.Paging,
		Sorting:         list.Sorting,
		FilterVariable:  fred.FilterVariable(f.filterVariable),
		FilterValue:     f.filterValue,
		TagNames:        f.tagNames,
		ExcludeTagNames: f.excludeTags,
	}, nil
}

// tagFlags cover tag listings; related listings also use the exclusions
type tagFlags struct {
	listFlags
	tagNames    []string
	excludeTags []string
	groupID     string
	searchText  string
}

func (f *tagFlags) register(cmd *cobra.Command) {
	f.listFlags.register(cmd)
	cmd.Flags().StringSliceVar(&f.tagNames, "tag", nil, "tag names to match or relate to")
	cmd.Flags().StringSliceVar(&f.excludeTags, "exclude-tag", nil, "tag names to exclude (related tags only)")
	cmd.Flags().StringVar(&f.groupID, "group", "", "tag group: freq, gen, geo, geot, rls, seas or src")
	cmd.Flags().StringVar(&f.searchText, "search", "", "words to find in tag names and notes")
}

func (f *tagFlags) options() (fred.TagsOptions, error) {
	list, err := f.listFlags.options()
	if err != nil {
		return fred.TagsOptions{}, err
	}
	return fred.TagsOptions{
		Realtime:   list.Realtime,
		Paging:     list.Paging,
		Sorting:    list.Sorting,
		TagNames:   f.tagNames,
		TagGroupID: fred.TagGroupID(f.groupID),
		SearchText: f.searchText,
	}, nil
}

func (f *tagFlags) relatedOptions() (fred.RelatedTagsOptions, error) {
	opts, err := f.options()
	if err != nil {
		return fred.RelatedTagsOptions{}, err
	}
	return fred.RelatedTagsOptions{TagsOptions: opts, ExcludeTagNames: f.excludeTags}, nil
}

// parseDateFlag parses a YYYY-MM-DD flag value; empty means unset.
func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(fred.WireDateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD", name, value)
	}
	return &t, nil
}

// parseParams turns repeated name=value flags into parameter tuples.
func parseParams(raw []string) ([]fred.Param, error) {
	params := make([]fred.Param, 0, len(raw))
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --param %q: expected name=value", kv)
		}
		params = append(params, fred.P(name, value))
	}
	return params, nil
}
