package fred

import "context"

// GetSources returns all sources of economic data.
func (c *Client) GetSources(ctx context.Context, opts ListOptions, format ResponseFormat) (Result, error) {
	return c.query(ctx, "/fred/sources", format, opts)
}

// GetSource returns a single source.
func (c *Client) GetSource(ctx context.Context, sourceID string, opts Realtime, format ResponseFormat) (Result, error) {
	if err := requireID("source_id", sourceID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/source", format, opts, P("source_id", sourceID))
}

// GetSourceReleases returns the releases published by a source.
func (c *Client) GetSourceReleases(ctx context.Context, sourceID string, opts ListOptions, format ResponseFormat) (Result, error) {
	if err := requireID("source_id", sourceID); err != nil {
		return nil, err
	}
	return c.query(ctx, "/fred/source/releases", format, opts, P("source_id", sourceID))
}
