package fred

import "context"

// GetTags returns tags, optionally narrowed by name, group or search text.
func (c *Client) GetTags(ctx context.Context, opts TagsOptions, format ResponseFormat) (Result, error) {
	return c.query(ctx, "/fred/tags", format, opts)
}

// GetRelatedTags returns tags related to one or more tags.
func (c *Client) GetRelatedTags(ctx context.Context, opts RelatedTagsOptions, format ResponseFormat) (Result, error) {
	return c.query(ctx, "/fred/related_tags", format, opts)
}

// TagsSeriesOptions applies to the series-by-tags listing.
type TagsSeriesOptions struct {
	Realtime
	Paging
	Sorting
	ExcludeTagNames []string
}

func (o TagsSeriesOptions) build() ([]Param, error) {
	params, err := collect(o.Realtime, o.Paging, o.Sorting)
	if err != nil {
		return nil, err
	}
	return append(params, listParam("exclude_tag_names", o.ExcludeTagNames)), nil
}

// GetTagsSeries returns the series matching all of tagNames.
func (c *Client) GetTagsSeries(ctx context.Context, tagNames []string, opts TagsSeriesOptions, format ResponseFormat) (Result, error) {
	if len(tagNames) == 0 {
		return nil, requireID("tag_names", "")
	}
	return c.query(ctx, "/fred/tags/series", format, opts, listParam("tag_names", tagNames))
}
