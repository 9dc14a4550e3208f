package fred

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// paramBuilder is implemented by every endpoint options struct.
type paramBuilder interface {
	build() ([]Param, error)
}

// Realtime bounds the real-time period of a request. Nil dates use the
// service defaults (today).
type Realtime struct {
	RealtimeStart *time.Time
	RealtimeEnd   *time.Time
}

func (r Realtime) build() ([]Param, error) {
	if r.RealtimeStart != nil && r.RealtimeEnd != nil && r.RealtimeEnd.Before(*r.RealtimeStart) {
		return nil, fmt.Errorf("%w: realtime_end before realtime_start", ErrInvalidParameter)
	}
	return []Param{
		dateParam("realtime_start", r.RealtimeStart),
		dateParam("realtime_end", r.RealtimeEnd),
	}, nil
}

// Paging selects a window of a listing. Zero values use the service defaults.
type Paging struct {
	Offset int
	Limit  int
}

func (p Paging) build() ([]Param, error) {
	if p.Offset < 0 || p.Limit < 0 {
		return nil, fmt.Errorf("%w: offset and limit must not be negative", ErrInvalidParameter)
	}
	return []Param{intParam("offset", p.Offset), intParam("limit", p.Limit)}, nil
}

// Sorting orders a listing.
type Sorting struct {
	OrderBy   OrderBy
	SortOrder SortOrder
}

func (s Sorting) build() ([]Param, error) {
	if err := checkEnums(enumField{"order_by", s.OrderBy}, enumField{"sort_order", s.SortOrder}); err != nil {
		return nil, err
	}
	return []Param{enumParam("order_by", s.OrderBy), enumParam("sort_order", s.SortOrder)}, nil
}

// ListOptions applies to plain paginated listings.
type ListOptions struct {
	Realtime
	Paging
	Sorting
}

func (o ListOptions) build() ([]Param, error) {
	return collect(o.Realtime, o.Paging, o.Sorting)
}

// SeriesListOptions applies to listings of series that can be filtered by
// attribute and tags.
type SeriesListOptions struct {
	Realtime
	Paging
	Sorting
	FilterVariable  FilterVariable
	FilterValue     string
	TagNames        []string
	ExcludeTagNames []string
}

func (o SeriesListOptions) build() ([]Param, error) {
	if err := checkEnums(enumField{"filter_variable", o.FilterVariable}); err != nil {
		return nil, err
	}
	if o.FilterValue != "" && o.FilterVariable == "" {
		return nil, fmt.Errorf("%w: filter_value requires filter_variable", ErrInvalidParameter)
	}
	params, err := collect(o.Realtime, o.Paging, o.Sorting)
	if err != nil {
		return nil, err
	}
	return append(params,
		enumParam("filter_variable", o.FilterVariable),
		P("filter_value", o.FilterValue),
		listParam("tag_names", o.TagNames),
		listParam("exclude_tag_names", o.ExcludeTagNames),
	), nil
}

// TagsOptions applies to tag listings.
type TagsOptions struct {
	Realtime
	Paging
	Sorting
	TagNames   []string
	TagGroupID TagGroupID
	SearchText string
}

func (o TagsOptions) build() ([]Param, error) {
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
		P("search_text", o.SearchText),
	), nil
}

// RelatedTagsOptions applies to related-tag listings, which need at least
// one tag to relate to.
type RelatedTagsOptions struct {
	TagsOptions
	ExcludeTagNames []string
}

func (o RelatedTagsOptions) build() ([]Param, error) {
	if len(o.TagNames) == 0 {
		return nil, fmt.Errorf("%w: tag_names is required", ErrInvalidParameter)
	}
	params, err := o.TagsOptions.build()
	if err != nil {
		return nil, err
	}
	return append(params, listParam("exclude_tag_names", o.ExcludeTagNames)), nil
}

// collect concatenates the parameters of several builders, joining any
// validation errors.
func collect(builders ...paramBuilder) ([]Param, error) {
	var (
		params []Param
		errs   []error
	)
	for _, b := range builders {
		p, err := b.build()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		params = append(params, p...)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return params, nil
}

// requireID rejects an empty identifier before anything is sent.
func requireID(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidParameter, name)
	}
	return nil
}

// query validates opts, assembles the fixed params followed by the option
// params, and executes the request.
func (c *Client) query(ctx context.Context, path string, format ResponseFormat, opts paramBuilder, params ...Param) (Result, error) {
	if opts != nil {
		extra, err := opts.build()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		params = append(params, extra...)
	}
	return c.Execute(ctx, path, Assemble(params...), format)
}
