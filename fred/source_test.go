package fred

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceEndpoints(t *testing.T) {
	client, rec := newRecorder(t, `{"sources":[]}`)
	ctx := context.Background()

	_, err := client.GetSources(ctx, ListOptions{
		Paging:  Paging{Limit: 5},
		Sorting: Sorting{OrderBy: OrderBySourceID},
	}, FormatJSON)
	require.NoError(t, err)
	req := rec.last(t)
	assert.Equal(t, "/fred/sources", req.URL.Path)
	assert.Equal(t, "limit=5&order_by=source_id&file_type=json&api_key=K", req.URL.RawQuery)

	_, err = client.GetSource(ctx, "1", Realtime{RealtimeStart: Date(2020, 1, 1)}, FormatXML)
	require.NoError(t, err)
	req = rec.last(t)
	assert.Equal(t, "/fred/source", req.URL.Path)
	assert.Equal(t, "source_id=1&realtime_start=2020-01-01&file_type=xml&api_key=K", req.URL.RawQuery)

	_, err = client.GetSourceReleases(ctx, "1", ListOptions{}, FormatObject)
	require.NoError(t, err)
	req = rec.last(t)
	assert.Equal(t, "/fred/source/releases", req.URL.Path)
	assert.Equal(t, "1", req.URL.Query().Get("source_id"))
}

func TestTagEndpoints(t *testing.T) {
	client, rec := newRecorder(t, `{"tags":[]}`)
	ctx := context.Background()

	_, err := client.GetTags(ctx, TagsOptions{
		TagNames:   []string{"gdp", "oecd"},
		TagGroupID: TagGroupGeography,
		SearchText: "product & services",
	}, FormatObject)
	require.NoError(t, err)
	req := rec.last(t)
	assert.Equal(t, "/fred/tags", req.URL.Path)
	assert.Equal(t, "tag_names=gdp%3Boecd&tag_group_id=geo&search_text=product+%26+services&file_type=json&api_key=K", req.URL.RawQuery)

	_, err = client.GetRelatedTags(ctx, RelatedTagsOptions{}, FormatObject)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = client.GetRelatedTags(ctx, RelatedTagsOptions{
		TagsOptions:     TagsOptions{TagNames: []string{"monetary aggregates"}},
		ExcludeTagNames: []string{"discontinued"},
	}, FormatObject)
	require.NoError(t, err)
	req = rec.last(t)
	assert.Equal(t, "/fred/related_tags", req.URL.Path)
	assert.Equal(t, "monetary aggregates", req.URL.Query().Get("tag_names"))
	assert.Equal(t, "discontinued", req.URL.Query().Get("exclude_tag_names"))
}
