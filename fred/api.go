package fred

import (
	"context"
)

// Dispatcher executes assembled requests.
type Dispatcher interface {
	Execute(ctx context.Context, path string, params *Params, format ResponseFormat) (Result, error)
	SetAPIKey(apiKey string)
	SetBaseURL(baseURL string)
}

// API defines the FRED endpoints exposed by Client
type API interface {
	Dispatcher

	// Categories
	GetCategory(ctx context.Context, categoryID string, format ResponseFormat) (Result, error)
	GetCategoryChildren(ctx context.Context, categoryID string, opts Realtime, format ResponseFormat) (Result, error)
	GetCategoryRelated(ctx context.Context, categoryID string, opts Realtime, format ResponseFormat) (Result, error)
	GetCategorySeries(ctx context.Context, categoryID string, opts SeriesListOptions, format ResponseFormat) (Result, error)
	GetCategoryTags(ctx context.Context, categoryID string, opts TagsOptions, format ResponseFormat) (Result, error)
	GetCategoryRelatedTags(ctx context.Context, categoryID string, opts RelatedTagsOptions, format ResponseFormat) (Result, error)

	// Releases
	GetReleases(ctx context.Context, opts ListOptions, format ResponseFormat) (Result, error)
	GetReleasesDates(ctx context.Context, opts ReleaseDatesOptions, format ResponseFormat) (Result, error)
	GetRelease(ctx context.Context, releaseID string, opts Realtime, format ResponseFormat) (Result, error)
	GetReleaseDates(ctx context.Context, releaseID string, opts ReleaseDatesOptions, format ResponseFormat) (Result, error)
	GetReleaseSeries(ctx context.Context, releaseID string, opts SeriesListOptions, format ResponseFormat) (Result, error)
	GetReleaseSources(ctx context.Context, releaseID string, opts Realtime, format ResponseFormat) (Result, error)
	GetReleaseTags(ctx context.Context, releaseID string, opts TagsOptions, format ResponseFormat) (Result, error)
	GetReleaseRelatedTags(ctx context.Context, releaseID string, opts RelatedTagsOptions, format ResponseFormat) (Result, error)
	GetReleaseTables(ctx context.Context, releaseID string, opts ReleaseTablesOptions, format ResponseFormat) (Result, error)

	// Series
	GetSeries(ctx context.Context, seriesID string, opts Realtime, format ResponseFormat) (Result, error)
	GetSeriesCategories(ctx context.Context, seriesID string, opts Realtime, format ResponseFormat) (Result, error)
	GetSeriesObservations(ctx context.Context, seriesID string, opts ObservationsOptions, format ResponseFormat) (Result, error)
	GetSeriesRelease(ctx context.Context, seriesID string, opts Realtime, format ResponseFormat) (Result, error)
	GetSeriesSearch(ctx context.Context, searchText string, opts SeriesSearchOptions, format ResponseFormat) (Result, error)
	GetSeriesSearchTags(ctx context.Context, searchText string, opts SeriesSearchTagsOptions, format ResponseFormat) (Result, error)
	GetSeriesSearchRelatedTags(ctx context.Context, searchText string, opts SeriesSearchRelatedTagsOptions, format ResponseFormat) (Result, error)
	GetSeriesTags(ctx context.Context, seriesID string, opts SeriesTagsOptions, format ResponseFormat) (Result, error)
	GetSeriesUpdates(ctx context.Context, opts SeriesUpdatesOptions, format ResponseFormat) (Result, error)
	GetSeriesVintageDates(ctx context.Context, seriesID string, opts VintageDatesOptions, format ResponseFormat) (Result, error)

	// Sources
	GetSources(ctx context.Context, opts ListOptions, format ResponseFormat) (Result, error)
	GetSource(ctx context.Context, sourceID string, opts Realtime, format ResponseFormat) (Result, error)
	GetSourceReleases(ctx context.Context, sourceID string, opts ListOptions, format ResponseFormat) (Result, error)

	// Tags
	GetTags(ctx context.Context, opts TagsOptions, format ResponseFormat) (Result, error)
	GetRelatedTags(ctx context.Context, opts RelatedTagsOptions, format ResponseFormat) (Result, error)
	GetTagsSeries(ctx context.Context, tagNames []string, opts TagsSeriesOptions, format ResponseFormat) (Result, error)
}

var _ API = (*Client)(nil)
