package fred

import (
	"context"
	"time"
)

// ReleaseDatesOptions applies to release date listings.
type ReleaseDatesOptions struct {
	Realtime
	Paging
	Sorting
	IncludeReleaseDatesWithNoData bool
}

func (o ReleaseDatesOptions) build() ([]Param, error) {
	params, err := collect(o.Realtime, o.Paging, o.Sorting)
	if err != nil {
		return nil, err
	}
	return append(params, boolParam("include_release_dates_with_no_data", o.IncludeReleaseDatesWithNoData)), nil
}

// ReleaseTablesOptions selects a release table element.
type ReleaseTablesOptions struct {
	ElementID                int
	IncludeObservationValues bool
	ObservationDate          *time.Time
}

func (o ReleaseTablesOptions) build() ([]Param, error) {
	return []Param{
		intParam("element_id", o.ElementID),
		boolParam("include_observation_values", o.IncludeObservationValues),
		dateParam("observation_date", o.ObservationDate),
	}, nil
}

// GetReleases returns all releases of economic data.
func (c *Client) GetReleases(ctx context.Context, opts ListOptions, format ResponseFormat) (Result, error) {
	return c.query(ctx, "/fred/releases", format, opts)
}

// GetReleasesDates returns release dates across all releases.
func (c *Client) GetReleasesDates(ctx context.Context, opts ReleaseDatesOptions, format ResponseFormat) (Result, error) {
	return c.query(ctx, "/fred/releases/dates", format, opts)
}

// GetRelease returns a single release.
func (c *Client) GetRelease(ctx context.Context, releaseID string, opts Realtime, format ResponseFormat) (Result, error) {
	if err := requireID("release_id", releaseID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/release", format, opts, P("release_id", releaseID))
}

// GetReleaseDates returns the dates of a single release.
func (c *Client) GetReleaseDates(ctx context.Context, releaseID string, opts ReleaseDatesOptions, format ResponseFormat) (Result, error) {
	if err := requireID("release_id", releaseID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/release/dates", format, opts, P("release_id", releaseID))
}

// GetReleaseSeries returns the series in a release.
func (c *Client) GetReleaseSeries(ctx context.Context, releaseID string, opts SeriesListOptions, format ResponseFormat) (Result, error) {
	if err := requireID("release_id", releaseID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/release/series", format, opts, P("release_id", releaseID))
}

// GetReleaseSources returns the sources of a release.
func (c *Client) GetReleaseSources(ctx context.Context, releaseID string, opts Realtime, format ResponseFormat) (Result, error) {
	if err := requireID("release_id", releaseID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/release/sources", format, opts, P("release_id", releaseID))
}

// GetReleaseTags returns the tags for a release.
func (c *Client) GetReleaseTags(ctx context.Context, releaseID string, opts TagsOptions, format ResponseFormat) (Result, error) {
	if err := requireID("release_id", releaseID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/release/tags", format, opts, P("release_id", releaseID))
}

// GetReleaseRelatedTags returns tags related to the given tags within a release.
func (c *Client) GetReleaseRelatedTags(ctx context.Context, releaseID string, opts RelatedTagsOptions, format ResponseFormat) (Result, error) {
	if err := requireID("release_id", releaseID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/release/related_tags", format, opts, P("release_id", releaseID))
}

// GetReleaseTables returns the table tree of a release.
func (c *Client) GetReleaseTables(ctx context.Context, releaseID string, opts ReleaseTablesOptions, format ResponseFormat) (Result, error) {
	if err := requireID("release_id", releaseID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/release/tables", format, opts, P("release_id", releaseID))
}
