package fred

import "context"

// GetCategory returns a single category. An empty id selects the root category.
func (c *Client) GetCategory(ctx context.Context, categoryID string, format ResponseFormat) (Result, error) {
	return c.query(ctx, "/fred/category", format, nil, P("category_id", categoryID))
}

// GetCategoryChildren returns the child categories of a category.
func (c *Client) GetCategoryChildren(ctx context.Context, categoryID string, opts Realtime, format ResponseFormat) (Result, error) {
	return c.query(ctx, "/fred/category/children", format, opts, P("category_id", categoryID))
}

// GetCategoryRelated returns categories related to a category.
func (c *Client) GetCategoryRelated(ctx context.Context, categoryID string, opts Realtime, format ResponseFormat) (Result, error) {
	return c.query(ctx, "/fred/category/related", format, opts, P("category_id", categoryID))
}

// GetCategorySeries returns the series in a category.
func (c *Client) GetCategorySeries(ctx context.Context, categoryID string, opts SeriesListOptions, format ResponseFormat) (Result, error) {
	return c.query(ctx, "/fred/category/series", format, opts, P("category_id", categoryID))
}

// GetCategoryTags returns the tags for a category.
func (c *Client) GetCategoryTags(ctx context.Context, categoryID string, opts TagsOptions, format ResponseFormat) (Result, error) {
	return c.query(ctx, "/fred/category/tags", format, opts, P("category_id", categoryID))
}

// GetCategoryRelatedTags returns tags related to the given tags within a category.
func (c *Client) GetCategoryRelatedTags(ctx context.Context, categoryID string, opts RelatedTagsOptions, format ResponseFormat) (Result, error) {
	return c.query(ctx, "/fred/category/related_tags", format, opts, P("category_id", categoryID))
}
