package fred

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// updateTimeLayout is the minute-resolution timestamp used by series/updates.
const updateTimeLayout = "200601021504"

// ObservationsOptions applies to series observations.
type ObservationsOptions struct {
	Realtime
	Paging
	SortOrder         SortOrder
	ObservationStart  *time.Time
	ObservationEnd    *time.Time
	Units             Units
	Frequency         Frequency
	AggregationMethod AggregationMethod
	OutputType        OutputType
	VintageDates      []time.Time
}

func (o ObservationsOptions) build() ([]Param, error) {
	if err := checkEnums(
		enumField{"sort_order", o.SortOrder},
		enumField{"units", o.Units},
		enumField{"frequency", o.Frequency},
		enumField{"aggregation_method", o.AggregationMethod},
		enumField{"output_type", o.OutputType},
	); err != nil {
		return nil, err
	}
	params, err := collect(o.Realtime, o.Paging)
	if err != nil {
		return nil, err
	}

	vintages := make([]string, 0, len(o.VintageDates))
	for i := range o.VintageDates {
		vintages = append(vintages, DateToWire(&o.VintageDates[i]))
	}

	return append(params,
		enumParam("sort_order", o.SortOrder),
		dateParam("observation_start", o.ObservationStart),
		dateParam("observation_end", o.ObservationEnd),
		enumParam("units", o.Units),
		enumParam("frequency", o.Frequency),
		enumParam("aggregation_method", o.AggregationMethod),
		enumParam("output_type", o.OutputType),
		P("vintage_dates", strings.Join(vintages, ",")),
	), nil
}

// SeriesSearchOptions applies to full-text and id series searches.
type SeriesSearchOptions struct {
	SeriesListOptions
	SearchType SearchType
}

func (o SeriesSearchOptions) build() ([]Param, error) {
	if err := checkEnums(enumField{"search_type", o.SearchType}); err != nil {
		return nil, err
	}
	params, err := o.SeriesListOptions.build()
	if err != nil {
		return nil, err
	}
	return append(params, enumParam("search_type", o.SearchType)), nil
}

// SeriesSearchTagsOptions applies to tags of a series search.
type SeriesSearchTagsOptions struct {
	Realtime
	Paging
	Sorting
	TagNames      []string
	TagGroupID    TagGroupID
	TagSearchText string
}

func (o SeriesSearchTagsOptions) build() ([]Param, error) {
	if err := checkEnums(enumField{"tag_group_id", o.TagGroupID}); err != nil {
		return nil, err
	}
	params, err := collect(o.Realtime, o.Paging, o.Sorting)
	if err != nil {
		return nil, err
	}
	return append(params,
		listParam("tag_names", o.TagNames),
		enumParam("tag_group_id", o.TagGroupID),
		P("tag_search_text", o.TagSearchText),
	), nil
}

// SeriesSearchRelatedTagsOptions applies to related tags of a series search.
type SeriesSearchRelatedTagsOptions struct {
	SeriesSearchTagsOptions
	ExcludeTagNames []string
}

func (o SeriesSearchRelatedTagsOptions) build() ([]Param, error) {
	if len(o.TagNames) == 0 {
		return nil, fmt.Errorf("%w: tag_names is required", ErrInvalidParameter)
	}
	params, err := o.SeriesSearchTagsOptions.build()
	if err != nil {
		return nil, err
	}
	return append(params, listParam("exclude_tag_names", o.ExcludeTagNames)), nil
}

// SeriesTagsOptions applies to the tags of a single series.
type SeriesTagsOptions struct {
	Realtime
	Sorting
}

func (o SeriesTagsOptions) build() ([]Param, error) {
	return collect(o.Realtime, o.Sorting)
}

// SeriesUpdatesOptions applies to the recently updated series listing.
type SeriesUpdatesOptions struct {
	Realtime
	Paging
	FilterValue UpdateFilter
	StartTime   *time.Time
	EndTime     *time.Time
}

func (o SeriesUpdatesOptions) build() ([]Param, error) {
	if err := checkEnums(enumField{"filter_value", o.FilterValue}); err != nil {
		return nil, err
	}
	if (o.StartTime == nil) != (o.EndTime == nil) {
		return nil, fmt.Errorf("%w: start_time and end_time must be set together", ErrInvalidParameter)
	}
	params, err := collect(o.Realtime, o.Paging)
	if err != nil {
		return nil, err
	}
	params = append(params, enumParam("filter_value", o.FilterValue))
	if o.StartTime != nil {
		params = append(params,
			P("start_time", o.StartTime.UTC().Format(updateTimeLayout)),
			P("end_time", o.EndTime.UTC().Format(updateTimeLayout)),
		)
	}
	return params, nil
}

// VintageDatesOptions applies to the vintage dates of a series.
type VintageDatesOptions struct {
	Realtime
	Paging
	SortOrder SortOrder
}

func (o VintageDatesOptions) build() ([]Param, error) {
	if err := checkEnums(enumField{"sort_order", o.SortOrder}); err != nil {
		return nil, err
	}
	params, err := collect(o.Realtime, o.Paging)
	if err != nil {
		return nil, err
	}
	return append(params, enumParam("sort_order", o.SortOrder)), nil
}

// GetSeries returns a single series.
func (c *Client) GetSeries(ctx context.Context, seriesID string, opts Realtime, format ResponseFormat) (Result, error) {
	if err := requireID("series_id", seriesID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/series", format, opts, P("series_id", seriesID))
}

// GetSeriesCategories returns the categories a series belongs to.
func (c *Client) GetSeriesCategories(ctx context.Context, seriesID string, opts Realtime, format ResponseFormat) (Result, error) {
	if err := requireID("series_id", seriesID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/series/categories", format, opts, P("series_id", seriesID))
}

// GetSeriesObservations returns the observations or data values of a series.
func (c *Client) GetSeriesObservations(ctx context.Context, seriesID string, opts ObservationsOptions, format ResponseFormat) (Result, error) {
	if err := requireID("series_id", seriesID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/series/observations", format, opts, P("series_id", seriesID))
}

// GetSeriesRelease returns the release a series belongs to.
func (c *Client) GetSeriesRelease(ctx context.Context, seriesID string, opts Realtime, format ResponseFormat) (Result, error) {
	if err := requireID("series_id", seriesID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/series/release", format, opts, P("series_id", seriesID))
}

// GetSeriesSearch returns series matching searchText.
func (c *Client) GetSeriesSearch(ctx context.Context, searchText string, opts SeriesSearchOptions, format ResponseFormat) (Result, error) {
	if err := requireID("search_text", searchText); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/series/search", format, opts, P("search_text", searchText))
}

// GetSeriesSearchTags returns the tags of the series matching searchText.
func (c *Client) GetSeriesSearchTags(ctx context.Context, searchText string, opts SeriesSearchTagsOptions, format ResponseFormat) (Result, error) {
	if err := requireID("series_search_text", searchText); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/series/search/tags", format, opts, P("series_search_text", searchText))
}

// GetSeriesSearchRelatedTags returns related tags of the series matching searchText.
func (c *Client) GetSeriesSearchRelatedTags(ctx context.Context, searchText string, opts SeriesSearchRelatedTagsOptions, format ResponseFormat) (Result, error) {
	if err := requireID("series_search_text", searchText); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/series/search/related_tags", format, opts, P("series_search_text", searchText))
}

// GetSeriesTags returns the tags of a series.
func (c *Client) GetSeriesTags(ctx context.Context, seriesID string, opts SeriesTagsOptions, format ResponseFormat) (Result, error) {
	if err := requireID("series_id", seriesID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/series/tags", format, opts, P("series_id", seriesID))
}

// GetSeriesUpdates returns recently updated series.
func (c *Client) GetSeriesUpdates(ctx context.Context, opts SeriesUpdatesOptions, format ResponseFormat) (Result, error) {
	return c.query(ctx, "/fred/series/updates", format, opts)
}

// GetSeriesVintageDates returns the dates a series' data changed.
func (c *Client) GetSeriesVintageDates(ctx context.Context, seriesID string, opts VintageDatesOptions, format ResponseFormat) (Result, error) {
	if err := requireID("series_id", seriesID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/series/vintagedates", format, opts, P("series_id", seriesID))
}
